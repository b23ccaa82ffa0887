// File: lexer.go
// Title: RPN Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of RPN processing.
//              Converts expression strings into streams of tokens for
//              the parser. Handles numbers, operators, and whitespace
//              and provides position information for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lexer implementation

package parser

import "fmt"

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals
	TokenNumber // 123, 3.14, -2

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenMult  // *
	TokenDiv   // /
)

// Token represents a lexical token with position information
type Token struct {
	Type   TokenType // Token type
	Value  string    // Token text; empty for EOF
	Line   int       // Line number (1-based)
	Column int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenMult:
		return "MULT"
	case TokenDiv:
		return "DIV"
	default:
		return "UNKNOWN"
	}
}

// Operator returns the operator character for operator tokens
func (tt TokenType) Operator() (byte, bool) {
	switch tt {
	case TokenPlus:
		return '+', true
	case TokenMinus:
		return '-', true
	case TokenMult:
		return '*', true
	case TokenDiv:
		return '/', true
	default:
		return 0, false
	}
}

// Lexer performs lexical analysis of RPN expression text
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// Tokenize scans the entire input and returns the complete token list,
// always terminated by exactly one EOF token. Scanning stops at the
// first invalid character; there is no recovery.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		l.skipWhitespace()

		line := l.line
		column := l.column

		switch {
		case l.ch == 0:
			tokens = append(tokens, Token{Type: TokenEOF, Value: "", Line: line, Column: column})
			return tokens, nil
		case l.ch == '+':
			tokens = append(tokens, newToken(TokenPlus, l.ch, line, column))
			l.readChar()
		case l.ch == '*':
			tokens = append(tokens, newToken(TokenMult, l.ch, line, column))
			l.readChar()
		case l.ch == '/':
			tokens = append(tokens, newToken(TokenDiv, l.ch, line, column))
			l.readChar()
		case l.ch == '-':
			// A minus directly followed by a digit is a numeric sign
			// prefix, otherwise it is the subtraction operator.
			if isDigit(l.peekChar()) {
				tokens = append(tokens, l.readNumber(line, column))
			} else {
				tokens = append(tokens, newToken(TokenMinus, l.ch, line, column))
				l.readChar()
			}
		case isDigit(l.ch):
			tokens = append(tokens, l.readNumber(line, column))
		default:
			return nil, &LexError{
				Message: fmt.Sprintf("Unexpected character '%c'", l.ch),
				Line:    line,
				Column:  column,
			}
		}
	}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL character represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readNumber reads a numeric literal (integer or decimal), including an
// already-detected leading minus sign. The returned token's value is the
// exact consumed text.
func (l *Lexer) readNumber(line, column int) Token {
	start := l.position

	if l.ch == '-' {
		l.readChar()
	}

	// Read integer part
	for isDigit(l.ch) {
		l.readChar()
	}

	// The decimal point is consumed only when a digit follows
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return Token{
		Type:   TokenNumber,
		Value:  l.input[start:l.position],
		Line:   line,
		Column: column,
	}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// newToken creates a new single-character token
func newToken(tokenType TokenType, ch byte, line, column int) Token {
	return Token{
		Type:   tokenType,
		Value:  string(ch),
		Line:   line,
		Column: column,
	}
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// TokenizeInput is a convenience function that tokenizes input and returns tokens or error
func TokenizeInput(input string) ([]Token, error) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
