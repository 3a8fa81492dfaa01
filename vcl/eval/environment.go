// File: environment.go
// Title: VCL Variable Environment
// Description: Implements the flat name-to-value table built while
//              parsing let statements. The environment is owned by a
//              single compilation and discarded with it.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial environment implementation

package eval

import "github.com/msto63/vcl/vcl/ast"

// Environment maps variable names to evaluated values. VCL has a single
// flat scope; a later let for the same name replaces the binding.
type Environment struct {
	vars map[string]ast.Value
}

// NewEnvironment creates an empty environment
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]ast.Value)}
}

// Define binds a name to a value, replacing any previous binding
func (e *Environment) Define(name string, value ast.Value) {
	e.vars[name] = value
}

// Lookup returns the value bound to the name, if any
func (e *Environment) Lookup(name string) (ast.Value, bool) {
	value, ok := e.vars[name]
	return value, ok
}

// Len returns the number of bindings
func (e *Environment) Len() int {
	return len(e.vars)
}
