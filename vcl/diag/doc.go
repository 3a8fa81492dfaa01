// File: doc.go
// Title: VCL Diagnostics Package Documentation
// Description: Package documentation for the VCL diagnostics model.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

/*
Package diag defines the diagnostic model shared by all VCL compiler
stages.

Two independent streams exist: lexical diagnostics produced while
tokenizing, and syntactic/semantic diagnostics produced while parsing,
evaluating, and translating. Both share the same shape and ordering
policy: diagnostics accumulate in discovery order and the pass always
runs to completion.
*/
package diag
