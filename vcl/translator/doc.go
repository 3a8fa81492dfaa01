// File: doc.go
// Title: Translator Package Documentation
// Description: Package documentation for the AST-to-operation translator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package translator converts parsed VCL programs into ordered
// sequences of abstract media operations.
//
// Translation walks the program's statements in order. Assignments
// contribute nothing (their bindings were established while parsing),
// conditionals are decided here by evaluating both guard expressions,
// and each command statement maps to one Operation variant after its
// argument expressions are evaluated and type-checked. A statement
// whose arguments fail never suppresses the statements after it.
package translator
