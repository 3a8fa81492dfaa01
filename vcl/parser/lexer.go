// File: lexer.go
// Title: VCL Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of VCL compilation.
//              Converts VCL source text into a flat token stream with
//              exact 1-based line/column positions, accumulating lexical
//              diagnostics instead of stopping. Handles line and block
//              comments, string and time literals, and the operator set.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/vcl/vcl/ast"
	"github.com/msto63/vcl/vcl/diag"
	"github.com/msto63/vcl/vcl/token"
)

// Lexer performs lexical analysis of VCL source text
type Lexer struct {
	source string
	pos    int // Byte position in source
	line   int // Current line number (1-based)
	column int // Current column number (1-based)

	tokens []token.Token
	diags  []diag.Diagnostic
}

// NewLexer creates a new lexer for the given source text
func NewLexer(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole source and returns the token stream plus the
// lexical diagnostics. Scanning is total: it always runs to the end of
// the input and always appends exactly one EndOfProgram token positioned
// at the final line/column reached.
func Tokenize(source string) ([]token.Token, []diag.Diagnostic) {
	return NewLexer(source).Tokenize()
}

// Tokenize scans the lexer's source text
func (l *Lexer) Tokenize() ([]token.Token, []diag.Diagnostic) {
	for l.pos < len(l.source) {
		ch := l.source[l.pos]
		switch {
		case ch == '\n':
			l.line++
			l.column = 1
			l.pos++

		case ch == ' ' || ch == '\t' || ch == '\r':
			l.column++
			l.pos++

		case ch == '#':
			l.scanComment()

		case isAlpha(ch):
			l.scanWord()

		case ch == '"':
			l.scanString()

		case isDigit(ch):
			l.scanInteger()

		case ch == '=':
			if l.pos+1 < len(l.source) && l.source[l.pos+1] == '=' {
				l.emit(token.Equals, "==")
			} else {
				l.emit(token.Assign, "=")
			}

		case ch == '+':
			l.emit(token.Add, "+")

		case ch == '*':
			l.emit(token.Mul, "*")

		case ch == '(':
			l.emit(token.OpenParen, "(")

		case ch == ')':
			l.emit(token.CloseParen, ")")

		case ch == ';':
			l.emit(token.Semicolon, ";")

		default:
			l.report(l.line, l.column, diag.InvalidCharacter,
				"unexpected character: %q", string(ch))
			l.pos++
			l.column++
		}
	}

	l.tokens = append(l.tokens, token.Token{
		Type:   token.EndOfProgram,
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, l.diags
}

// emit appends a token at the current position and consumes its text
func (l *Lexer) emit(t token.Type, text string) {
	l.tokens = append(l.tokens, token.Token{
		Type:   t,
		Text:   text,
		Line:   l.line,
		Column: l.column,
	})
	l.pos += len(text)
	l.column += len(text)
}

// report appends a lexical diagnostic
func (l *Lexer) report(line, column int, kind diag.Kind, format string, args ...interface{}) {
	l.diags = append(l.diags, diag.New(line, column, kind, fmt.Sprintf(format, args...)))
}

// scanComment consumes a line comment ("# ...") or a block comment
// ("## ... ##"). The leading '#' is at the current position.
func (l *Lexer) scanComment() {
	l.pos++
	l.column++

	if l.pos < len(l.source) && l.source[l.pos] == '#' {
		l.pos++
		l.column++
		l.scanBlockComment()
		return
	}

	// Line comment: consume through end of line, exclusive. The newline
	// itself is handled by the main loop.
	for l.pos < len(l.source) && l.source[l.pos] != '\n' {
		l.pos++
		l.column++
	}
}

// scanBlockComment consumes a block comment body terminated by the next
// "##" sequence. The opening "##" has already been consumed. If the
// input ends first, an UnterminatedComment diagnostic is emitted at the
// point of failure and the rest of the input counts as consumed.
func (l *Lexer) scanBlockComment() {
	for l.pos < len(l.source) {
		if l.source[l.pos] == '#' && l.pos+1 < len(l.source) && l.source[l.pos+1] == '#' {
			l.pos += 2
			l.column += 2
			return
		}
		if l.source[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}

	l.report(l.line, l.column, diag.UnterminatedComment, "unterminated multi-line comment")
}

// scanWord consumes a maximal alphanumeric run starting with a letter
// and classifies it as keyword, command word, or identifier
func (l *Lexer) scanWord() {
	startColumn := l.column
	start := l.pos
	for l.pos < len(l.source) && isAlphanumeric(l.source[l.pos]) {
		l.pos++
		l.column++
	}

	word := l.source[start:l.pos]
	l.tokens = append(l.tokens, token.Token{
		Type:   token.LookupWord(word),
		Text:   word,
		Line:   l.line,
		Column: startColumn,
	})
}

// scanInteger consumes a maximal digit run as a decimal integer token
func (l *Lexer) scanInteger() {
	startColumn := l.column
	start := l.pos
	for l.pos < len(l.source) && isDigit(l.source[l.pos]) {
		l.pos++
		l.column++
	}

	l.tokens = append(l.tokens, token.Token{
		Type:   token.Integer,
		Text:   l.source[start:l.pos],
		Line:   l.line,
		Column: startColumn,
	})
}

// scanString consumes a double-quoted literal, tracking embedded
// newlines for correct position bookkeeping. A literal containing a
// colon must parse as a "MM:SS" time; an empty plain literal is
// rejected. Tokens are positioned at the opening quote.
func (l *Lexer) scanString() {
	startLine := l.line
	startColumn := l.column
	l.pos++
	l.column++

	start := l.pos
	for {
		if l.pos >= len(l.source) {
			l.report(startLine, startColumn, diag.UnclosedString, "unclosed string literal")
			return
		}
		if l.source[l.pos] == '"' {
			break
		}
		if l.source[l.pos] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.pos++
	}

	body := l.source[start:l.pos]
	l.pos++ // closing quote
	l.column++

	if strings.Contains(body, ":") {
		if _, err := ast.ParseTimePosition(body); err != nil {
			l.report(startLine, startColumn, diag.InvalidTime, "invalid time format: %s", body)
			return
		}
		l.tokens = append(l.tokens, token.Token{
			Type:   token.Time,
			Text:   body,
			Line:   startLine,
			Column: startColumn,
		})
		return
	}

	if body == "" {
		l.report(startLine, startColumn, diag.EmptyString, "empty string literal")
		return
	}

	l.tokens = append(l.tokens, token.Token{
		Type:   token.String,
		Text:   body,
		Line:   startLine,
		Column: startColumn,
	})
}

// isAlpha checks if the character starts a word
func isAlpha(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isAlphanumeric checks if the character continues a word
func isAlphanumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
