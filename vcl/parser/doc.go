// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for the VCL lexer and parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package parser implements lexical analysis and error-tolerant
// recursive-descent parsing for the Video Command Language.
//
// The lexer (Tokenize) converts source text into a flat token stream
// with 1-based line/column positions. It never stops: malformed input
// produces diagnostics while scanning continues, and the stream always
// ends with exactly one EndOfProgram token.
//
// The parser (New, ParseProgram) consumes that stream with one-token
// lookahead. Each statement becomes one AST node; a statement that
// fails to parse becomes an error node after panic-mode recovery skips
// to the next statement boundary. Assignment right-hand sides are
// evaluated during parsing, so each statement sees the bindings of the
// statements before it.
//
// Typical usage:
//
//	tokens, lexDiags := parser.Tokenize(source)
//	p := parser.New(tokens, parser.Options{})
//	program, parseDiags := p.ParseProgram()
package parser
