// File: token_test.go
// Title: VCL Token Model Unit Tests
// Description: Tests for token type display names and word classification.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial token tests

package token

import "testing"

func TestType_String(t *testing.T) {
	tests := []struct {
		tt   Type
		want string
	}{
		{EndOfProgram, "END_OF_PROGRAM"},
		{Identifier, "IDENTIFIER"},
		{Integer, "INTEGER"},
		{String, "STRING"},
		{Time, "TIME"},
		{Keyword, "KEYWORD"},
		{Let, "LET"},
		{If, "IF"},
		{Then, "THEN"},
		{To, "TO"},
		{Print, "PRINT"},
		{Assign, "ASSIGN_OP"},
		{Equals, "EQUALS_OP"},
		{Add, "ADD_OP"},
		{Mul, "MUL_OP"},
		{OpenParen, "OPEN_PAREN"},
		{CloseParen, "CLOSE_PAREN"},
		{Semicolon, "SEMICOLON"},
		{Type(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.tt.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", int(tt.tt), got, tt.want)
		}
	}
}

func TestLookupWord(t *testing.T) {
	tests := []struct {
		word string
		want Type
	}{
		{"let", Let},
		{"if", If},
		{"then", Then},
		{"to", To},
		{"print", Print},
		{"frame", Keyword},
		{"concat", Keyword},
		{"audio", Keyword},
		{"play", Keyword},
		{"start", Identifier},
		{"LET", Identifier}, // keywords are case-sensitive
		{"frames", Identifier},
	}

	for _, tt := range tests {
		if got := LookupWord(tt.word); got != tt.want {
			t.Errorf("LookupWord(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestIsCommandWord(t *testing.T) {
	for _, word := range []string{"frame", "concat", "audio", "play"} {
		if !IsCommandWord(word) {
			t.Errorf("IsCommandWord(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"let", "print", "stop", ""} {
		if IsCommandWord(word) {
			t.Errorf("IsCommandWord(%q) = true, want false", word)
		}
	}
}

func TestToken_String(t *testing.T) {
	tok := Token{Type: Keyword, Text: "frame", Line: 1, Column: 1}
	if got, want := tok.String(), "KEYWORD(frame)"; got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}

	eop := Token{Type: EndOfProgram, Line: 3, Column: 7}
	if got, want := eop.String(), "EOF"; got != want {
		t.Errorf("EndOfProgram Token.String() = %q, want %q", got, want)
	}
}
