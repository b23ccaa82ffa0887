// File: nodes.go
// Title: RPN AST Node Definitions
// Description: Defines the AST node types for RPN expressions: numeric
//              literals and binary operations. Provides string
//              representations and source position accessors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial AST node definitions

package ast

import "fmt"

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// exprNode is a marker method restricting implementations to this package
	exprNode()
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// Number represents a numeric literal.
//
// Value holds the exact text consumed by the lexer, including a leading
// minus sign and any decimal part. It is never parsed into a numeric
// type: the pipeline is format-preserving, not arithmetic.
type Number struct {
	Value string   // Verbatim literal text, e.g. "3.14", "-2"
	Pos   Position // Source position of the literal's first character
}

// BinaryOp represents a binary arithmetic operation.
//
// Operator is one of '+', '-', '*', '/'. Left and Right are exclusively
// owned children; the tree is finite and acyclic.
type BinaryOp struct {
	Operator byte     // Operator character
	Left     Node     // Left operand
	Right    Node     // Right operand
	Pos      Position // Source position of the operator token
}

func (n *Number) String() string {
	return n.Value
}

func (n *Number) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

func (n *Number) Position() Position {
	return n.Pos
}

func (n *Number) exprNode() {}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left.String(), b.Operator, b.Right.String())
}

func (b *BinaryOp) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryOp(b)
}

func (b *BinaryOp) Position() Position {
	return b.Pos
}

func (b *BinaryOp) exprNode() {}
