// File: nodes.go
// Title: VCL AST Node Definitions
// Description: Defines the statement tree for parsed VCL programs. Each
//              node owns its children by value, so the tree shape is
//              strictly exclusive with no sharing or back-references.
//              Expressions are kept as flat token chains and evaluated
//              later; parentheses never survive into the chains.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST node definitions

package ast

import (
	"strings"

	"github.com/msto63/vcl/vcl/token"
)

// NodeKind identifies the statement variant of a node
type NodeKind int

const (
	// KindProgram is the root node; its Statements hold every top-level
	// statement in source order
	KindProgram NodeKind = iota

	// KindLet binds a variable; carries VarName and Expr1
	KindLet

	// KindIf guards exactly one child statement; carries the two guard
	// expressions in Expr1 and Expr2
	KindIf

	// KindFrame extracts a single frame; Expr1 source, Expr2 frame
	// number, Destination output file
	KindFrame

	// KindConcat concatenates two clips; Expr1 and Expr2 sources,
	// Destination output file
	KindConcat

	// KindAudio extracts an audio range; Expr1 source, Expr2 start,
	// Expr3 end, Destination output file
	KindAudio

	// KindPlay plays a clip; Expr1 source, optionally Expr2/Expr3 as a
	// start/end range
	KindPlay

	// KindError marks a statement whose syntax did not fully match its
	// production; already diagnosed, contributes nothing downstream
	KindError
)

// String returns the display name of the node kind
func (nk NodeKind) String() string {
	switch nk {
	case KindProgram:
		return "program"
	case KindLet:
		return "let"
	case KindIf:
		return "if"
	case KindFrame:
		return "frame"
	case KindConcat:
		return "concat"
	case KindAudio:
		return "audio"
	case KindPlay:
		return "play"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Node represents one VCL statement (or the whole program). Expressions
// are ordered token sequences representing unevaluated term chains; up
// to three are meaningful depending on Kind.
type Node struct {
	Kind        NodeKind
	VarName     string        // Let only
	Expr1       []token.Token // first expression
	Expr2       []token.Token // second expression
	Expr3       []token.Token // third expression
	Destination string        // output file for frame/concat/audio
	Statements  []Node        // Program: all statements; If: exactly one
}

// ErrorNode returns the placeholder node for a failed statement
func ErrorNode() Node {
	return Node{Kind: KindError}
}

// ExprString renders an expression token chain as source-like text
func ExprString(expr []token.Token) string {
	parts := make([]string, 0, len(expr))
	for _, t := range expr {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}

// String returns a compact single-line rendering of the node, used in
// logs and test failure output
func (n Node) String() string {
	var b strings.Builder
	b.WriteString(n.Kind.String())
	if n.VarName != "" {
		b.WriteString(" " + n.VarName)
	}
	for _, expr := range [][]token.Token{n.Expr1, n.Expr2, n.Expr3} {
		if len(expr) > 0 {
			b.WriteString(" [" + ExprString(expr) + "]")
		}
	}
	if n.Destination != "" {
		b.WriteString(" to " + n.Destination)
	}
	for _, stmt := range n.Statements {
		b.WriteString(" { " + stmt.String() + " }")
	}
	return b.String()
}

// Walk calls fn for the node and then, while fn returns true, for each
// child statement in order, depth-first
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, stmt := range n.Statements {
		Walk(stmt, fn)
	}
}

// CountKind returns how many nodes of the given kind the tree contains
func CountKind(n Node, kind NodeKind) int {
	count := 0
	Walk(n, func(node Node) bool {
		if node.Kind == kind {
			count++
		}
		return true
	})
	return count
}
