// File: doc.go
// Title: LaTeX Generator Package Documentation
// Description: Converts RPN expression trees into LaTeX inline-math
//              notation with precedence-driven parenthesization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial LaTeX generator implementation

/*
Package latex renders RPN expression trees as LaTeX inline math.

Rendering walks the tree recursively and joins operands with the LaTeX
symbol for each operator, wrapping the whole result in dollar signs.
Parentheses are inserted only where the infix reading would otherwise
change the expression's meaning: around lower-precedence subtrees, and
around right-hand subtrees of equal precedence under the non-commutative
operators (subtraction and division). Left-associative chains like
"a - b - c" therefore render without spurious grouping.

Rendering always succeeds; a well-formed tree is always renderable.
*/
package latex
