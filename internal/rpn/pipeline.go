// File: pipeline.go
// Title: RPN Conversion Pipeline
// Description: Composes the three processing stages (tokenize, parse,
//              generate) into a single conversion entry point shared by
//              the CLI and the interactive TUI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial pipeline implementation

// Package rpn wires the lexer, parser, and LaTeX generator into the
// complete text-to-LaTeX conversion. Each stage is a pure function; the
// pipeline halts at the first error and returns it unchanged, so callers
// can inspect the typed *parser.LexError and *parser.ParseError values
// for source positions.
package rpn

import (
	"github.com/msto63/rpn2tex/internal/rpn/latex"
	"github.com/msto63/rpn2tex/internal/rpn/parser"
)

// Convert runs the full pipeline over the given expression text and
// returns the LaTeX rendering
func Convert(input string, opts latex.Options) (string, error) {
	tokens, err := parser.TokenizeInput(input)
	if err != nil {
		return "", err
	}

	tree, err := parser.Parse(tokens)
	if err != nil {
		return "", err
	}

	return latex.NewGeneratorWithOptions(opts).Generate(tree), nil
}
