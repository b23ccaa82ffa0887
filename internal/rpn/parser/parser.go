// File: parser.go
// Title: RPN Stack-Based Parser
// Description: Implements the parsing phase of RPN processing. Converts
//              token streams into abstract syntax trees using an explicit
//              operand stack with a single left-to-right pass.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	"github.com/msto63/rpn2tex/internal/rpn/ast"
)

// Parser converts RPN token streams into abstract syntax trees.
//
// The parser implements the standard stack-based RPN algorithm: numbers
// are pushed as leaf nodes, operators pop two operands and push the
// combined node. A well-formed sequence leaves exactly one node on the
// stack when EOF is reached.
type Parser struct {
	tokens   []Token // The token stream to parse (must end with EOF)
	position int     // Current position in the token stream
}

// NewParser creates a new parser for the given token stream
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:   tokens,
		position: 0,
	}
}

// Parse processes all tokens and returns the root AST node
func (p *Parser) Parse() (ast.Node, error) {
	var stack []ast.Node

	for ; p.position < len(p.tokens); p.position++ {
		tok := p.tokens[p.position]

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenNumber {
			stack = append(stack, &ast.Number{
				Value: tok.Value,
				Pos:   ast.Position{Line: tok.Line, Column: tok.Column},
			})
			continue
		}

		op, ok := tok.Type.Operator()
		if !ok {
			return nil, &ParseError{
				Message: fmt.Sprintf("Unexpected token '%s'", tok.Value),
				Line:    tok.Line,
				Column:  tok.Column,
			}
		}

		if len(stack) < 2 {
			return nil, &ParseError{
				Message: fmt.Sprintf("Operator '%c' requires two operands", op),
				Line:    tok.Line,
				Column:  tok.Column,
			}
		}

		// Pop right first, then left: this order is what makes
		// "5 3 -" mean 5 - 3 rather than 3 - 5.
		right := stack[len(stack)-1]
		left := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		stack = append(stack, &ast.BinaryOp{
			Operator: op,
			Left:     left,
			Right:    right,
			Pos:      ast.Position{Line: tok.Line, Column: tok.Column},
		})
	}

	eof := p.eofToken()

	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return nil, &ParseError{
			Message: "Empty expression",
			Line:    eof.Line,
			Column:  eof.Column,
		}
	default:
		return nil, &ParseError{
			Message: fmt.Sprintf("Invalid RPN: %d values remain on stack (missing operators?)", len(stack)),
			Line:    eof.Line,
			Column:  eof.Column,
		}
	}
}

// eofToken returns the terminating EOF token of the stream
func (p *Parser) eofToken() Token {
	for _, tok := range p.tokens {
		if tok.Type == TokenEOF {
			return tok
		}
	}
	// Token streams from the lexer always end with EOF; fall back to the
	// origin position for hand-built streams that omit it.
	return Token{Type: TokenEOF, Line: 1, Column: 1}
}

// Parse is a convenience function that parses a token stream into an AST
func Parse(tokens []Token) (ast.Node, error) {
	return NewParser(tokens).Parse()
}
