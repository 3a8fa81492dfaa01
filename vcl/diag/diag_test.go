// File: diag_test.go
// Title: VCL Diagnostics Unit Tests
// Description: Tests for diagnostic kind names, stream classification,
//              and rendering.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial diagnostics tests

package diag

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{UnterminatedComment, "UnterminatedComment"},
		{UnclosedString, "UnclosedString"},
		{EmptyString, "EmptyString"},
		{InvalidTime, "InvalidTime"},
		{InvalidCharacter, "InvalidCharacter"},
		{UnexpectedToken, "UnexpectedToken"},
		{InvalidExpression, "InvalidExpression"},
		{InvalidStatement, "InvalidStatement"},
		{UnknownCommand, "UnknownCommand"},
		{UnknownIdentifier, "UnknownIdentifier"},
		{TypeError, "TypeError"},
		{Kind(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKind_IsLexical(t *testing.T) {
	lexical := []Kind{UnterminatedComment, UnclosedString, EmptyString, InvalidTime, InvalidCharacter}
	for _, k := range lexical {
		if !k.IsLexical() {
			t.Errorf("%s.IsLexical() = false, want true", k)
		}
	}

	semantic := []Kind{UnexpectedToken, InvalidExpression, InvalidStatement, UnknownCommand, UnknownIdentifier, TypeError}
	for _, k := range semantic {
		if k.IsLexical() {
			t.Errorf("%s.IsLexical() = true, want false", k)
		}
	}
}

func TestDiagnostic_String(t *testing.T) {
	d := New(3, 14, UnexpectedToken, "expected SEMICOLON, got frame")
	want := "line 3:14: UnexpectedToken - expected SEMICOLON, got frame"
	if got := d.String(); got != want {
		t.Errorf("Diagnostic.String() = %q, want %q", got, want)
	}
}
