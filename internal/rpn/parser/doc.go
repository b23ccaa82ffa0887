// File: doc.go
// Title: RPN Parser Package Documentation
// Description: Implements the lexical analyzer and stack-based parser for
//              RPN expressions. Converts expression text into token streams
//              and token streams into AST representations with position
//              information for error reporting.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-31
// Modified: 2026-08-31
//
// Change History:
// - 2026-08-31 v0.1.0: Initial lexer and parser implementation

/*
Package parser provides lexical analysis and parsing for RPN expressions.

The lexer scans raw input text into a flat token stream, tracking 1-based
line and column positions. It recognizes numeric literals (integers and
decimals, with an optional leading minus sign when the sign is directly
followed by a digit) and the four arithmetic operators. Any other
character stops scanning with a LexError at the offending position.

The parser consumes the token stream with a single left-to-right pass
over an explicit operand stack: numbers are pushed, operators pop two
operands (right first, then left) and push the combined node. A
well-formed RPN sequence leaves exactly one node on the stack; anything
else is a ParseError.

Both stages are pure functions of their input. There is no error
recovery: the first error is the final error.
*/
package parser
