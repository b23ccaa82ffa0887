// File: parser_test.go
// Title: RPN Parser Unit Tests
// Description: Unit tests for the stack-based RPN parser. Covers tree
//              construction, operand pop order, position propagation,
//              and all malformed-sequence error cases.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial test suite

package parser

import (
	"errors"
	"testing"

	"github.com/msto63/rpn2tex/internal/rpn/ast"
)

// mustTokenize tokenizes the input or fails the test
func mustTokenize(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := TokenizeInput(input)
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, node ast.Node)
	}{
		{
			name:  "Single number",
			input: "42",
			check: func(t *testing.T, node ast.Node) {
				num, ok := node.(*ast.Number)
				if !ok {
					t.Fatalf("Expected *ast.Number, got %T", node)
				}
				if num.Value != "42" {
					t.Errorf("Expected value 42, got %s", num.Value)
				}
				if num.Pos.Line != 1 || num.Pos.Column != 1 {
					t.Errorf("Expected position 1:1, got %d:%d", num.Pos.Line, num.Pos.Column)
				}
			},
		},
		{
			name:  "Literal text is preserved",
			input: "3.14",
			check: func(t *testing.T, node ast.Node) {
				num, ok := node.(*ast.Number)
				if !ok {
					t.Fatalf("Expected *ast.Number, got %T", node)
				}
				if num.Value != "3.14" {
					t.Errorf("Expected value 3.14, got %s", num.Value)
				}
			},
		},
		{
			name:  "Simple addition",
			input: "5 3 +",
			check: func(t *testing.T, node ast.Node) {
				op, ok := node.(*ast.BinaryOp)
				if !ok {
					t.Fatalf("Expected *ast.BinaryOp, got %T", node)
				}
				if op.Operator != '+' {
					t.Errorf("Expected operator +, got %c", op.Operator)
				}
				if op.Pos.Line != 1 || op.Pos.Column != 5 {
					t.Errorf("Expected operator position 1:5, got %d:%d", op.Pos.Line, op.Pos.Column)
				}
				left, ok := op.Left.(*ast.Number)
				if !ok || left.Value != "5" {
					t.Errorf("Expected left operand 5, got %v", op.Left)
				}
				right, ok := op.Right.(*ast.Number)
				if !ok || right.Value != "3" {
					t.Errorf("Expected right operand 3, got %v", op.Right)
				}
			},
		},
		{
			name:  "Pop order makes subtraction left-to-right",
			input: "5 3 -",
			check: func(t *testing.T, node ast.Node) {
				if got := node.String(); got != "(5 - 3)" {
					t.Errorf("Expected (5 - 3), got %s", got)
				}
			},
		},
		{
			name:  "Left-associative chain",
			input: "5 3 - 2 -",
			check: func(t *testing.T, node ast.Node) {
				if got := node.String(); got != "((5 - 3) - 2)" {
					t.Errorf("Expected ((5 - 3) - 2), got %s", got)
				}
			},
		},
		{
			name:  "Nested operands",
			input: "1 2 + 3 4 + *",
			check: func(t *testing.T, node ast.Node) {
				if got := node.String(); got != "((1 + 2) * (3 + 4))" {
					t.Errorf("Expected ((1 + 2) * (3 + 4)), got %s", got)
				}
			},
		},
		{
			name:  "Right subtree built from later tokens",
			input: "2 3 4 + *",
			check: func(t *testing.T, node ast.Node) {
				if got := node.String(); got != "(2 * (3 + 4))" {
					t.Errorf("Expected (2 * (3 + 4)), got %s", got)
				}
			},
		},
		{
			name:  "Negative numbers as operands",
			input: "-5 -3 +",
			check: func(t *testing.T, node ast.Node) {
				if got := node.String(); got != "(-5 + -3)" {
					t.Errorf("Expected (-5 + -3), got %s", got)
				}
			},
		},
		{
			name:  "Division chain",
			input: "100 10 / 5 / 2 /",
			check: func(t *testing.T, node ast.Node) {
				if got := node.String(); got != "(((100 / 10) / 5) / 2)" {
					t.Errorf("Expected (((100 / 10) / 5) / 2), got %s", got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(mustTokenize(t, tt.input))
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			tt.check(t, node)
		})
	}
}

func TestParser_ParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMsg    string
		wantLine   int
		wantColumn int
	}{
		{
			name:       "Operator without operands",
			input:      "+",
			wantMsg:    "Operator '+' requires two operands",
			wantLine:   1,
			wantColumn: 1,
		},
		{
			name:       "Operator with one operand",
			input:      "5 +",
			wantMsg:    "Operator '+' requires two operands",
			wantLine:   1,
			wantColumn: 3,
		},
		{
			name:       "Empty expression",
			input:      "",
			wantMsg:    "Empty expression",
			wantLine:   1,
			wantColumn: 1,
		},
		{
			name:       "Whitespace-only expression",
			input:      "   ",
			wantMsg:    "Empty expression",
			wantLine:   1,
			wantColumn: 4,
		},
		{
			name:       "Two leftover values",
			input:      "5 3",
			wantMsg:    "Invalid RPN: 2 values remain on stack (missing operators?)",
			wantLine:   1,
			wantColumn: 4,
		},
		{
			name:       "Three leftover values",
			input:      "1 2 3 4 +",
			wantMsg:    "Invalid RPN: 3 values remain on stack (missing operators?)",
			wantLine:   1,
			wantColumn: 10,
		},
		{
			name:       "Depth check happens per operator",
			input:      "5 3 + +",
			wantMsg:    "Operator '+' requires two operands",
			wantLine:   1,
			wantColumn: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(mustTokenize(t, tt.input))
			if err == nil {
				t.Fatalf("Expected error, got node: %v", node)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Expected *ParseError, got %T: %v", err, err)
			}

			if parseErr.Message != tt.wantMsg {
				t.Errorf("Expected message %q, got %q", tt.wantMsg, parseErr.Message)
			}
			if parseErr.Line != tt.wantLine {
				t.Errorf("Expected line %d, got %d", tt.wantLine, parseErr.Line)
			}
			if parseErr.Column != tt.wantColumn {
				t.Errorf("Expected column %d, got %d", tt.wantColumn, parseErr.Column)
			}
		})
	}
}

func TestParser_StackBalance(t *testing.T) {
	// parse succeeds exactly when numbers (+1) and operators (-1) keep
	// the running depth >= 2 before each operator and end at depth 1
	tests := []struct {
		input string
		valid bool
	}{
		{"5", true},
		{"5 3 +", true},
		{"5 3 + 2 *", true},
		{"1 2 3 * +", true},
		{"", false},
		{"+", false},
		{"5 +", false},
		{"5 3", false},
		{"5 3 + 2", false},
	}

	for _, tt := range tests {
		_, err := Parse(mustTokenize(t, tt.input))
		if (err == nil) != tt.valid {
			t.Errorf("Parse(%q): valid = %v, want %v (err: %v)", tt.input, err == nil, tt.valid, err)
		}
	}
}
