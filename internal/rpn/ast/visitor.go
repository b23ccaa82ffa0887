// File: visitor.go
// Title: RPN AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing RPN expression
//              trees. Provides a base visitor with default traversal and a
//              collector visitor used for analysis and testing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial visitor pattern implementation

package ast

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitNumber(n *Number) interface{}
	VisitBinaryOp(b *BinaryOp) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitNumber(n *Number) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBinaryOp(b *BinaryOp) interface{} {
	if b.Left != nil {
		b.Left.Accept(bv)
	}
	if b.Right != nil {
		b.Right.Accept(bv)
	}
	return nil
}

// CollectorVisitor collects nodes from the AST by kind
type CollectorVisitor struct {
	Numbers   []*Number
	Operators []*BinaryOp
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Numbers:   make([]*Number, 0),
		Operators: make([]*BinaryOp, 0),
	}
}

// Reset clears all collected nodes
func (cv *CollectorVisitor) Reset() {
	cv.Numbers = cv.Numbers[:0]
	cv.Operators = cv.Operators[:0]
}

func (cv *CollectorVisitor) VisitNumber(n *Number) interface{} {
	cv.Numbers = append(cv.Numbers, n)
	return nil
}

func (cv *CollectorVisitor) VisitBinaryOp(b *BinaryOp) interface{} {
	cv.Operators = append(cv.Operators, b)
	if b.Left != nil {
		b.Left.Accept(cv)
	}
	if b.Right != nil {
		b.Right.Accept(cv)
	}
	return nil
}

// CollectNodes collects numbers and operators from an AST
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}
