// File: errors.go
// Title: RPN Lexer and Parser Error Types
// Description: Defines the two error kinds produced by the RPN pipeline.
//              Both carry the 1-based source position of the offending
//              character or token so callers can render source context.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial error type definitions

package parser

import "fmt"

// LexError represents an invalid character encountered during scanning
type LexError struct {
	Message string // Error description
	Line    int    // Line number (1-based)
	Column  int    // Column number (1-based)
}

func (le *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s",
		le.Line, le.Column, le.Message)
}

// ParseError represents a malformed RPN token sequence
type ParseError struct {
	Message string // Error description
	Line    int    // Line number (1-based)
	Column  int    // Column number (1-based)
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s",
		pe.Line, pe.Column, pe.Message)
}
