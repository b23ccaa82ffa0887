// File: formatter.go
// Title: Source-Context Error Formatter
// Description: Implements caret-style error rendering for lexer and
//              parser errors. Shows the offending source line with a
//              caret under the error column, optionally styled with
//              lipgloss for terminal output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial formatter implementation

package diag

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
)

// Styles
var (
	messageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	gutterStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)

// Formatter renders errors with source context
type Formatter struct {
	lines []string
	color bool
}

// NewFormatter creates a formatter for the given source text
func NewFormatter(source string) *Formatter {
	return &Formatter{
		lines: strings.Split(source, "\n"),
	}
}

// WithColor enables or disables lipgloss styling and returns the formatter
func (f *Formatter) WithColor(enabled bool) *Formatter {
	f.color = enabled
	return f
}

// Format renders the message followed by the offending source line and a
// caret row pointing at the 1-based column. When the position lies
// outside the source, only the message is returned.
func (f *Formatter) Format(message string, line, column int) string {
	var result strings.Builder

	result.WriteString(f.styled(messageStyle, message))

	if line < 1 || line > len(f.lines) {
		return result.String()
	}
	sourceLine := f.lines[line-1]

	result.WriteString("\n\n")

	// Gutter width follows the line number so multi-digit lines align
	numWidth := len(fmt.Sprintf("%d", line))

	linePrefix := fmt.Sprintf("%*d | ", numWidth, line)
	result.WriteString(f.styled(gutterStyle, linePrefix))
	result.WriteString(sourceLine)
	result.WriteString("\n")

	caretPrefix := strings.Repeat(" ", numWidth) + " | "
	result.WriteString(f.styled(gutterStyle, caretPrefix))
	result.WriteString(strings.Repeat(" ", column-1))
	result.WriteString(f.styled(caretStyle, "^"))

	return result.String()
}

// styled applies a style only when color output is enabled
func (f *Formatter) styled(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}
