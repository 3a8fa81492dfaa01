// File: doc.go
// Title: VCL Token Package Documentation
// Description: Package documentation for the VCL token model.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

/*
Package token defines the lexical token model shared by every stage of the
VCL compiler.

Tokens are immutable value types produced by the lexer. Their ordering in
the token slice is the only structural relationship between them; all
later stages (parser, evaluator, translator) consume tokens by position.
Every token carries 1-based line and column information for diagnostics.
*/
package token
