// File: lexer_test.go
// Title: Lexer Tests
// Description: Tests for VCL lexical analysis including token
//              classification, position tracking, comment handling,
//              and lexical diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package parser

import (
	"strings"
	"testing"

	"github.com/msto63/vcl/vcl/diag"
	"github.com/msto63/vcl/vcl/token"
)

func kinds(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func TestTokenizeFrameStatement(t *testing.T) {
	tokens, diags := Tokenize(`frame "video.mp4" 10 to "frame10.bmp";`)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}

	want := []token.Type{
		token.Keyword, token.String, token.Integer, token.To,
		token.String, token.Semicolon, token.EndOfProgram,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}

	if tokens[1].Text != "video.mp4" {
		t.Errorf("string text = %q, want %q", tokens[1].Text, "video.mp4")
	}
	if tokens[2].Text != "10" {
		t.Errorf("integer text = %q, want %q", tokens[2].Text, "10")
	}
}

func TestTokenizeIsTotal(t *testing.T) {
	// Arbitrary garbage still yields a stream ending in exactly one
	// EndOfProgram token.
	inputs := []string{
		"",
		"@@@ %% $",
		"let x = \"unclosed",
		"## never closed",
		"frame frame frame",
		strings.Repeat("\n", 50),
	}

	for _, input := range inputs {
		tokens, _ := Tokenize(input)
		if len(tokens) == 0 {
			t.Fatalf("Tokenize(%q) returned no tokens", input)
		}
		eopCount := 0
		for _, tok := range tokens {
			if tok.Type == token.EndOfProgram {
				eopCount++
			}
		}
		if eopCount != 1 {
			t.Errorf("Tokenize(%q) has %d EndOfProgram tokens, want 1", input, eopCount)
		}
		if tokens[len(tokens)-1].Type != token.EndOfProgram {
			t.Errorf("Tokenize(%q) does not end in EndOfProgram", input)
		}
	}
}

func TestPositionTracking(t *testing.T) {
	source := "let x = 5;\nplay \"a.mp4\";"
	tokens, diags := Tokenize(source)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}

	tests := []struct {
		index  int
		line   int
		column int
	}{
		{0, 1, 1},  // let
		{1, 1, 5},  // x
		{2, 1, 7},  // =
		{3, 1, 9},  // 5
		{4, 1, 10}, // ;
		{5, 2, 1},  // play
		{6, 2, 6},  // "a.mp4"
		{7, 2, 13}, // ;
	}

	for _, tt := range tests {
		tok := tokens[tt.index]
		if tok.Line != tt.line || tok.Column != tt.column {
			t.Errorf("token %d (%s) at %d:%d, want %d:%d",
				tt.index, tok, tok.Line, tok.Column, tt.line, tt.column)
		}
	}
}

func TestWordClassification(t *testing.T) {
	tokens, _ := Tokenize("let if then to print frame concat audio play duration")

	want := []token.Type{
		token.Let, token.If, token.Then, token.To, token.Print,
		token.Keyword, token.Keyword, token.Keyword, token.Keyword,
		token.Identifier, token.EndOfProgram,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTimeLiteral(t *testing.T) {
	tokens, diags := Tokenize(`"00:10"`)

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if tokens[0].Type != token.Time {
		t.Errorf("token type = %v, want Time", tokens[0].Type)
	}
	if tokens[0].Text != "00:10" {
		t.Errorf("token text = %q, want %q", tokens[0].Text, "00:10")
	}
}

func TestInvalidTimeLiteral(t *testing.T) {
	tokens, diags := Tokenize(`"12:ab"`)

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if diags[0].Kind != diag.InvalidTime {
		t.Errorf("diagnostic kind = %v, want InvalidTime", diags[0].Kind)
	}
	if diags[0].Line != 1 || diags[0].Column != 1 {
		t.Errorf("diagnostic at %d:%d, want 1:1 (opening quote)", diags[0].Line, diags[0].Column)
	}
	if tokens[0].Type != token.EndOfProgram {
		t.Error("invalid time literal should produce no token")
	}
}

func TestEmptyStringLiteral(t *testing.T) {
	_, diags := Tokenize(`play "";`)

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if diags[0].Kind != diag.EmptyString {
		t.Errorf("diagnostic kind = %v, want EmptyString", diags[0].Kind)
	}
}

func TestUnclosedString(t *testing.T) {
	_, diags := Tokenize("let x = \"never closed")

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if diags[0].Kind != diag.UnclosedString {
		t.Errorf("diagnostic kind = %v, want UnclosedString", diags[0].Kind)
	}
	// Position is the opening quote, not the end of input.
	if diags[0].Line != 1 || diags[0].Column != 9 {
		t.Errorf("diagnostic at %d:%d, want 1:9", diags[0].Line, diags[0].Column)
	}
}

func TestLineComment(t *testing.T) {
	tokens, diags := Tokenize("# just a comment\nplay \"a.mp4\";")

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if tokens[0].Type != token.Keyword || tokens[0].Line != 2 {
		t.Errorf("first token = %s at line %d, want play at line 2", tokens[0], tokens[0].Line)
	}
}

func TestBlockComment(t *testing.T) {
	tokens, diags := Tokenize("## spans\nlines ##\nplay \"a.mp4\";")

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if tokens[0].Type != token.Keyword || tokens[0].Line != 3 {
		t.Errorf("first token = %s at line %d, want play at line 3", tokens[0], tokens[0].Line)
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	tokens, diags := Tokenize("## never closed")

	if len(diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %v", diags)
	}
	if diags[0].Kind != diag.UnterminatedComment {
		t.Errorf("diagnostic kind = %v, want UnterminatedComment", diags[0].Kind)
	}
	// Nothing inside the comment may leak out as tokens.
	if len(tokens) != 1 || tokens[0].Type != token.EndOfProgram {
		t.Errorf("tokens = %v, want only EndOfProgram", tokens)
	}
}

func TestOperators(t *testing.T) {
	tokens, diags := Tokenize("= == + * ( ) ;")

	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}

	want := []token.Type{
		token.Assign, token.Equals, token.Add, token.Mul,
		token.OpenParen, token.CloseParen, token.Semicolon,
		token.EndOfProgram,
	}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInvalidCharacter(t *testing.T) {
	tokens, diags := Tokenize("play $ \"a.mp4\";")

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", diags)
	}
	if diags[0].Kind != diag.InvalidCharacter {
		t.Errorf("diagnostic kind = %v, want InvalidCharacter", diags[0].Kind)
	}
	if !strings.Contains(diags[0].Message, "$") {
		t.Errorf("message %q should name the character", diags[0].Message)
	}

	// Scanning continues past the bad character.
	want := []token.Type{token.Keyword, token.String, token.Semicolon, token.EndOfProgram}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("token kinds = %v, want %v", got, want)
	}
}

func TestStringWithEmbeddedNewlinePosition(t *testing.T) {
	// The token after a multi-line string must still carry a correct
	// position.
	tokens, _ := Tokenize("play \"a\nb\";")

	semi := tokens[len(tokens)-2]
	if semi.Type != token.Semicolon {
		t.Fatalf("expected semicolon before EOF, got %s", semi)
	}
	if semi.Line != 2 || semi.Column != 3 {
		t.Errorf("semicolon at %d:%d, want 2:3", semi.Line, semi.Column)
	}
}
