// File: diag.go
// Title: VCL Diagnostics Model
// Description: Defines the diagnostic value type shared by the lexer,
//              parser, evaluator, and translator. Diagnostics accumulate
//              in discovery order and never halt a compilation pass on
//              their own.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial diagnostics model

package diag

import "fmt"

// Kind classifies a diagnostic
type Kind int

const (
	// Lexical diagnostics
	UnterminatedComment Kind = iota
	UnclosedString
	EmptyString
	InvalidTime
	InvalidCharacter

	// Syntactic and semantic diagnostics
	UnexpectedToken
	InvalidExpression
	InvalidStatement
	UnknownCommand
	UnknownIdentifier
	TypeError
)

// String returns the display name of the diagnostic kind
func (k Kind) String() string {
	switch k {
	case UnterminatedComment:
		return "UnterminatedComment"
	case UnclosedString:
		return "UnclosedString"
	case EmptyString:
		return "EmptyString"
	case InvalidTime:
		return "InvalidTime"
	case InvalidCharacter:
		return "InvalidCharacter"
	case UnexpectedToken:
		return "UnexpectedToken"
	case InvalidExpression:
		return "InvalidExpression"
	case InvalidStatement:
		return "InvalidStatement"
	case UnknownCommand:
		return "UnknownCommand"
	case UnknownIdentifier:
		return "UnknownIdentifier"
	case TypeError:
		return "TypeError"
	default:
		return "Unknown"
	}
}

// IsLexical reports whether the kind belongs to the lexical stream
func (k Kind) IsLexical() bool {
	switch k {
	case UnterminatedComment, UnclosedString, EmptyString, InvalidTime, InvalidCharacter:
		return true
	default:
		return false
	}
}

// Diagnostic represents a single finding at a source position. Line and
// column are 1-based so the message can point a script author at the
// exact spot in their editor.
type Diagnostic struct {
	Line    int
	Column  int
	Kind    Kind
	Message string
}

// New creates a diagnostic at the given position
func New(line, column int, kind Kind, message string) Diagnostic {
	return Diagnostic{Line: line, Column: column, Kind: kind, Message: message}
}

// String renders the diagnostic for direct display
func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d:%d: %s - %s", d.Line, d.Column, d.Kind, d.Message)
}
