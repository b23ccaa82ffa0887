// File: doc.go
// Title: Diagnostics Package Documentation
// Description: Renders lexer and parser errors against the original
//              source text with a caret marking the offending column.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial formatter implementation

/*
Package diag formats pipeline errors with source context.

Given the original input text and an error's 1-based line and column,
the formatter produces the error message followed by the offending
source line and a caret row pointing at the exact column:

	Error: Unexpected character '^'

	1 | 2 3 ^
	  |     ^

Color output via lipgloss is optional and off by default so that piped
output and tests see plain text.
*/
package diag
