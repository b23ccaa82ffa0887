// File: doc.go
// Title: RPN AST Package Documentation
// Description: Defines the abstract syntax tree for parsed RPN expressions.
//              The tree has exactly two node kinds (numbers and binary
//              operations) and carries source positions for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial AST node definitions

/*
Package ast defines the abstract syntax tree produced by the RPN parser.

An expression tree consists of two node kinds:

  • Number    - a numeric literal, kept as its verbatim source text
  • BinaryOp  - one of the four arithmetic operators with two children

Trees are built bottom-up by the parser and are immutable afterwards.
Leaves are always Number nodes. Every node carries the 1-based line and
column of its defining token (the literal for numbers, the operator for
binary operations) so downstream consumers can point back into the
source.

The package also provides a Visitor interface for traversing trees
without type switches scattered across consumers; the LaTeX generator is
the primary visitor implementation.
*/
package ast
