// File: doc.go
// Title: VCL AST Package Documentation
// Description: Package documentation for the VCL abstract syntax tree.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

/*
Package ast defines the abstract syntax tree and the runtime value model
for VCL programs.

The tree is an owned recursive structure: every node holds its child
statements by value, so a program's lifetime management is entirely
automatic and no two nodes ever share a child. Statement expressions stay
unevaluated in the tree as flat token chains; the eval package turns them
into Value instances on demand.

The package also provides TimePosition, the normalized minutes:seconds
value that backs VCL time literals and arithmetic.
*/
package ast
