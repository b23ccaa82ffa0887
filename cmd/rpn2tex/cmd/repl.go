package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/rpn2tex/internal/config"
	"github.com/msto63/rpn2tex/internal/rpn/latex"
	"github.com/msto63/rpn2tex/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive converter",
	Long: `Starts an interactive terminal session that converts RPN
expressions to LaTeX as you type.

The result updates as you type.

Keys:
  Ctrl+L    - Clear the input
  Ctrl+C    - Quit (Esc also quits)`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	opts := latex.Options{
		TimesSymbol: cfg.Output.TimesSymbol,
		DivSymbol:   cfg.Output.DivSymbol,
	}

	p := tea.NewProgram(
		tui.NewModel(opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "REPL error: %v\n", err)
		return err
	}

	return nil
}
