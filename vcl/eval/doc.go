// File: doc.go
// Title: VCL Evaluator Package Documentation
// Description: Package documentation for the VCL expression evaluator.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

/*
Package eval implements the VCL expression evaluator and the variable
environment.

The evaluator is shared between the parse phase (let right-hand sides are
evaluated inline while parsing) and the translation phase (command
arguments and if guards), so both phases see identical semantics. The
environment is a single flat name table, constructed per compilation and
discarded with it.
*/
package eval
