// File: token.go
// Title: VCL Token Model
// Description: Defines the lexical token types for the VCL video scripting
//              language. Tokens carry their source text along with 1-based
//              line and column positions so that every later stage can
//              report exact source locations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial token model

package token

import "fmt"

// Type represents the type of a lexical token
type Type int

const (
	// EndOfProgram marks the end of the token stream. The lexer always
	// appends exactly one, positioned at the last line/column reached.
	EndOfProgram Type = iota

	// Identifiers and literals
	Identifier // variable names
	Integer    // 123 (decimal, non-negative)
	String     // "clip.mp4"
	Time       // "MM:SS" literal, validated by the lexer

	// Keywords
	Keyword // frame, concat, audio, play
	Let     // let
	If      // if
	Then    // then
	To      // to
	Print   // print (reserved, no grammar production consumes it)

	// Operators
	Assign // =
	Equals // ==
	Add    // +
	Mul    // *

	// Delimiters
	OpenParen  // (
	CloseParen // )
	Semicolon  // ;
)

// Token represents a lexical token with position information
type Token struct {
	Type   Type   // Token type
	Text   string // Token source text
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == EndOfProgram {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Text)
}

// String returns the display name of the token type, as used in
// diagnostics shown to the script author
func (tt Type) String() string {
	switch tt {
	case EndOfProgram:
		return "END_OF_PROGRAM"
	case Identifier:
		return "IDENTIFIER"
	case Integer:
		return "INTEGER"
	case String:
		return "STRING"
	case Time:
		return "TIME"
	case Keyword:
		return "KEYWORD"
	case Let:
		return "LET"
	case If:
		return "IF"
	case Then:
		return "THEN"
	case To:
		return "TO"
	case Print:
		return "PRINT"
	case Assign:
		return "ASSIGN_OP"
	case Equals:
		return "EQUALS_OP"
	case Add:
		return "ADD_OP"
	case Mul:
		return "MUL_OP"
	case OpenParen:
		return "OPEN_PAREN"
	case CloseParen:
		return "CLOSE_PAREN"
	case Semicolon:
		return "SEMICOLON"
	default:
		return "UNKNOWN"
	}
}

// Word-class keywords with a dedicated token type
var keywords = map[string]Type{
	"let":   Let,
	"if":    If,
	"then":  Then,
	"to":    To,
	"print": Print,
}

// Command words share the Keyword type; the parser dispatches on the text
var commandWords = map[string]bool{
	"frame":  true,
	"concat": true,
	"audio":  true,
	"play":   true,
}

// LookupWord classifies an alphanumeric word as a keyword, a command
// word, or a plain identifier
func LookupWord(word string) Type {
	if t, ok := keywords[word]; ok {
		return t
	}
	if commandWords[word] {
		return Keyword
	}
	return Identifier
}

// IsCommandWord reports whether the word is one of the four command
// keywords (frame, concat, audio, play)
func IsCommandWord(word string) bool {
	return commandWords[word]
}
