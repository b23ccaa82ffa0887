// File: generator.go
// Title: LaTeX Generator for RPN Expression Trees
// Description: Implements the rendering phase of RPN processing. Walks
//              the AST as a visitor, looks up operator symbols and
//              precedence, and parenthesizes only where required to
//              preserve the expression's meaning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial LaTeX generator implementation

package latex

import (
	"fmt"

	"github.com/msto63/rpn2tex/internal/rpn/ast"
)

// Default LaTeX symbols for the multiplication and division operators
const (
	DefaultTimesSymbol = `\times`
	DefaultDivSymbol   = `\div`
)

// precedence ranks the four operators; higher binds tighter
var precedence = map[byte]int{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
}

// Options configures generator output
type Options struct {
	// TimesSymbol overrides the LaTeX symbol for '*' (default \times)
	TimesSymbol string
	// DivSymbol overrides the LaTeX symbol for '/' (default \div)
	DivSymbol string
}

// Generator renders RPN expression trees as LaTeX inline math
type Generator struct {
	symbols map[byte]string
}

// NewGenerator creates a generator with the default symbol table
func NewGenerator() *Generator {
	return NewGeneratorWithOptions(Options{})
}

// NewGeneratorWithOptions creates a generator with the given options.
// Empty option fields fall back to the defaults.
func NewGeneratorWithOptions(opts Options) *Generator {
	times := opts.TimesSymbol
	if times == "" {
		times = DefaultTimesSymbol
	}
	div := opts.DivSymbol
	if div == "" {
		div = DefaultDivSymbol
	}

	return &Generator{
		symbols: map[byte]string{
			'+': "+",
			'-': "-",
			'*': times,
			'/': div,
		},
	}
}

// Generate renders the given AST as LaTeX, wrapped in dollar signs
func (g *Generator) Generate(node ast.Node) string {
	return fmt.Sprintf("$%s$", node.Accept(g).(string))
}

// VisitNumber renders a numeric literal verbatim
func (g *Generator) VisitNumber(n *ast.Number) interface{} {
	return n.Value
}

// VisitBinaryOp renders a binary operation with single spaces around the
// operator symbol and parentheses where precedence requires them
func (g *Generator) VisitBinaryOp(b *ast.BinaryOp) interface{} {
	parentPrec := precedence[b.Operator]

	left := b.Left.Accept(g).(string)
	if needsParens(b.Left, parentPrec, false) {
		left = fmt.Sprintf("( %s )", left)
	}

	right := b.Right.Accept(g).(string)
	if needsParens(b.Right, parentPrec, true) {
		right = fmt.Sprintf("( %s )", right)
	}

	return fmt.Sprintf("%s %s %s", left, g.symbols[b.Operator], right)
}

// needsParens reports whether a child subtree must be parenthesized.
//
// Numbers never need parentheses. A binary child needs them when it
// binds looser than its parent, or when it sits on the parent's right
// side at equal precedence under a non-commutative operator: without
// the group, "5 - ( 3 - 2 )" would silently read as "5 - 3 - 2".
func needsParens(child ast.Node, parentPrec int, isRight bool) bool {
	op, ok := child.(*ast.BinaryOp)
	if !ok {
		return false
	}

	childPrec := precedence[op.Operator]
	if childPrec < parentPrec {
		return true
	}

	if childPrec == parentPrec && isRight {
		return op.Operator == '-' || op.Operator == '/'
	}

	return false
}
