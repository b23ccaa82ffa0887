package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/msto63/rpn2tex/internal/config"
	"github.com/msto63/rpn2tex/internal/rpn"
	"github.com/msto63/rpn2tex/internal/rpn/diag"
	"github.com/msto63/rpn2tex/internal/rpn/latex"
	"github.com/msto63/rpn2tex/internal/rpn/parser"
)

var (
	cfgFile    string
	outputPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "rpn2tex [input]",
	Short: "Convert Reverse Polish Notation expressions to LaTeX",
	Long: `rpn2tex converts Reverse Polish Notation (RPN) arithmetic
expressions into LaTeX inline-math notation.

The input is a file path, or "-" (or no argument) for stdin. The result
is written to stdout, or to a file with -o/--output.

Examples:
  echo "5 3 +" | rpn2tex
  rpn2tex expression.rpn
  rpn2tex expression.rpn -o expression.tex
  rpn2tex repl`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runConvert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file, TOML or YAML (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	input, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "read %d bytes of input\n", len(input))
	}

	opts := latex.Options{
		TimesSymbol: cfg.Output.TimesSymbol,
		DivSymbol:   cfg.Output.DivSymbol,
	}

	result, err := rpn.Convert(input, opts)
	if err != nil {
		reportPipelineError(input, cfg, err)
		return err
	}

	if err := writeOutput(outputPath, result, cfg.Output.TrailingNewline); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	return nil
}

// readInput reads the expression text from the file named in args, or
// from stdin when no argument or "-" is given
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("Error reading from stdin: %v", err)
		}
		return string(data), nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("Error: Input file not found: %s", path)
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("Error: Permission denied reading: %s", path)
		}
		return "", fmt.Errorf("Error reading file %s: %v", path, err)
	}
	return string(data), nil
}

// writeOutput writes the result to the given file, or to stdout when no
// path is set. File output gets a trailing newline when configured.
func writeOutput(path, content string, trailingNewline bool) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}

	if trailingNewline {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("Error: Permission denied writing: %s", path)
		}
		return fmt.Errorf("Error writing to file %s: %v", path, err)
	}

	fmt.Fprintf(os.Stderr, "Generated: %s\n", path)
	return nil
}

// reportPipelineError prints a lexer or parser error with source context
// and a caret under the offending column
func reportPipelineError(input string, cfg *config.Config, err error) {
	formatter := diag.NewFormatter(input).WithColor(colorEnabled(cfg))

	var lexErr *parser.LexError
	var parseErr *parser.ParseError

	switch {
	case errors.As(err, &lexErr):
		fmt.Fprintln(os.Stderr, formatter.Format(
			fmt.Sprintf("Error: %s", lexErr.Message), lexErr.Line, lexErr.Column))
	case errors.As(err, &parseErr):
		fmt.Fprintln(os.Stderr, formatter.Format(
			fmt.Sprintf("Error: %s", parseErr.Message), parseErr.Line, parseErr.Column))
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// colorEnabled resolves the configured color mode against the terminal
func colorEnabled(cfg *config.Config) bool {
	switch cfg.General.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd())
	}
}
