// File: parser.go
// Title: VCL Recursive-Descent Parser
// Description: Implements error-tolerant recursive-descent parsing of
//              VCL token streams into an AST. The parser uses one-token
//              lookahead, panic-mode recovery at statement boundaries,
//              and evaluates assignment right-hand sides eagerly so that
//              later statements see earlier bindings.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

package parser

import (
	"errors"
	"fmt"

	"github.com/msto63/vcl/core/log"
	"github.com/msto63/vcl/vcl/ast"
	"github.com/msto63/vcl/vcl/diag"
	"github.com/msto63/vcl/vcl/eval"
	"github.com/msto63/vcl/vcl/token"
)

// Options configures parser behavior
type Options struct {
	// Logger for parser operations (nil uses default logger)
	Logger *log.Logger
}

// Parser builds an AST from a token stream
type Parser struct {
	tokens []token.Token
	pos    int

	env    *eval.Environment
	diags  []diag.Diagnostic
	logger *log.Logger
}

// New creates a parser over the given token stream. The stream is
// expected to end with an EndOfProgram token, as produced by Tokenize.
func New(tokens []token.Token, opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	return &Parser{
		tokens: tokens,
		env:    eval.NewEnvironment(),
		logger: logger.WithField("component", "vcl-parser"),
	}
}

// Environment returns the variable bindings accumulated while parsing.
// Bindings exist only for assignments whose statement parsed cleanly.
func (p *Parser) Environment() *eval.Environment {
	return p.env
}

// ParseProgram parses the whole token stream into a program node and
// returns it together with all diagnostics collected on the way. Every
// statement yields exactly one child node; statements that failed to
// parse yield an error node.
func (p *Parser) ParseProgram() (ast.Node, []diag.Diagnostic) {
	p.logger.Debug("starting parse", log.Fields{"tokens": len(p.tokens)})

	program := ast.Node{Kind: ast.KindProgram}
	for p.pos < len(p.tokens) && !p.check(token.EndOfProgram) {
		stmt := p.parseStatement()
		program.Statements = append(program.Statements, stmt)
	}
	if p.check(token.EndOfProgram) {
		p.advance()
	}

	p.logger.Debug("parse complete", log.Fields{
		"statements":  len(program.Statements),
		"diagnostics": len(p.diags),
	})
	if len(p.diags) > 0 {
		p.logger.Warn("parse finished with diagnostics", log.Fields{"count": len(p.diags)})
	}

	return program, p.diags
}

// current returns the token at the cursor without consuming it
func (p *Parser) current() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	// Streams from Tokenize always carry a trailing EndOfProgram, so
	// this synthesized token only shows up for hand-built inputs.
	return token.Token{Type: token.EndOfProgram}
}

// check reports whether the current token has the given type
func (p *Parser) check(t token.Type) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].Type == t
}

// advance moves the cursor forward by one token
func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// synchronize implements panic-mode recovery: it skips tokens until a
// statement boundary. A semicolon is consumed as part of the discarded
// statement; a statement opener (let, if, command word) is left in
// place for the next parse attempt.
func (p *Parser) synchronize() {
	for p.pos < len(p.tokens) && !p.check(token.EndOfProgram) {
		if p.check(token.Semicolon) {
			p.advance()
			return
		}
		if p.check(token.Let) || p.check(token.If) || p.check(token.Keyword) {
			return
		}
		p.advance()
	}
}

// expect consumes the current token if it has the wanted type.
// Otherwise it records an UnexpectedToken diagnostic at the offending
// token, synchronizes, and reports failure.
func (p *Parser) expect(t token.Type) bool {
	if p.check(t) {
		p.advance()
		return true
	}

	cur := p.current()
	got := cur.Text
	if cur.Type == token.EndOfProgram || got == "" {
		got = "EOF"
	}
	p.report(cur, diag.UnexpectedToken, "expected %s, got '%s'", t, got)
	p.synchronize()
	return false
}

// report appends a diagnostic positioned at the given token
func (p *Parser) report(at token.Token, kind diag.Kind, format string, args ...interface{}) {
	p.diags = append(p.diags, diag.New(at.Line, at.Column, kind, fmt.Sprintf(format, args...)))
}

// recordEvalError converts an evaluation failure into a diagnostic
func (p *Parser) recordEvalError(err error) {
	var evalErr *eval.Error
	if errors.As(err, &evalErr) {
		p.diags = append(p.diags, evalErr.Diagnostic)
		return
	}
	p.diags = append(p.diags, diag.New(0, 0, diag.InvalidExpression, err.Error()))
}

// isTerm reports whether the current token can open or continue an
// expression as an operand
func (p *Parser) isTerm() bool {
	return p.check(token.Integer) || p.check(token.String) ||
		p.check(token.Time) || p.check(token.Identifier)
}

// parseExpression collects an expression as a flat token chain:
// operand (operator operand)*. Parenthesized groups are recursed into
// and their tokens spliced inline, so grouping never survives into the
// chain and evaluation stays strictly left to right. A nil result means
// the expression was malformed and has been diagnosed.
func (p *Parser) parseExpression() []token.Token {
	expr := p.parseOperand(nil)
	if expr == nil {
		return nil
	}

	for p.check(token.Add) || p.check(token.Mul) {
		expr = append(expr, p.current())
		p.advance()
		expr = p.parseOperand(expr)
		if expr == nil {
			return nil
		}
	}

	return expr
}

// parseOperand appends one operand (literal, identifier, or flattened
// parenthesized subexpression) to expr
func (p *Parser) parseOperand(expr []token.Token) []token.Token {
	if p.check(token.OpenParen) {
		p.advance()
		sub := p.parseExpression()
		if sub == nil {
			return nil
		}
		if !p.expect(token.CloseParen) {
			return nil
		}
		return append(expr, sub...)
	}

	if !p.isTerm() {
		p.report(p.current(), diag.InvalidExpression,
			"expected number, string, time, or identifier")
		p.synchronize()
		return nil
	}

	expr = append(expr, p.current())
	p.advance()
	return expr
}

// parseStatement dispatches on the current token to one statement form
func (p *Parser) parseStatement() ast.Node {
	switch {
	case p.check(token.Let):
		return p.parseLet()
	case p.check(token.If):
		return p.parseIf()
	case p.check(token.Keyword):
		return p.parseCommand()
	}

	p.report(p.current(), diag.InvalidStatement, "expected assignment, condition, or command")
	p.synchronize()
	return ast.ErrorNode()
}

// parseLet parses "let IDENT = expr ;" and, when the whole statement
// parses cleanly, evaluates the right-hand side and stores the binding.
// Any parse or evaluation failure leaves the name unbound.
func (p *Parser) parseLet() ast.Node {
	if !p.expect(token.Let) {
		return ast.ErrorNode()
	}

	name := p.current().Text
	if !p.expect(token.Identifier) {
		return ast.ErrorNode()
	}
	if !p.expect(token.Assign) {
		return ast.ErrorNode()
	}

	expr := p.parseExpression()
	if expr == nil {
		return ast.ErrorNode()
	}
	if !p.expect(token.Semicolon) {
		return ast.ErrorNode()
	}

	value, err := eval.Evaluate(expr, p.env)
	if err != nil {
		p.recordEvalError(err)
		return ast.ErrorNode()
	}
	p.env.Define(name, value)

	p.logger.Debug("bound variable", log.Fields{"name": name, "type": value.Kind.String()})
	return ast.Node{Kind: ast.KindLet, VarName: name, Expr1: expr}
}

// parseIf parses "if expr == expr then statement". The condition is
// recorded, not evaluated; evaluation happens at translation time.
func (p *Parser) parseIf() ast.Node {
	if !p.expect(token.If) {
		return ast.ErrorNode()
	}

	left := p.parseExpression()
	if left == nil {
		return ast.ErrorNode()
	}
	if !p.expect(token.Equals) {
		return ast.ErrorNode()
	}

	right := p.parseExpression()
	if right == nil {
		return ast.ErrorNode()
	}
	if !p.expect(token.Then) {
		return ast.ErrorNode()
	}

	stmt := p.parseStatement()
	return ast.Node{
		Kind:       ast.KindIf,
		Expr1:      left,
		Expr2:      right,
		Statements: []ast.Node{stmt},
	}
}

// parseCommand parses the four command statements. The play command's
// two forms are disambiguated after the first expression: a semicolon
// ends the plain form, anything else must be a range.
func (p *Parser) parseCommand() ast.Node {
	kw := p.current()
	if !p.expect(token.Keyword) {
		return ast.ErrorNode()
	}

	switch kw.Text {
	case "frame":
		return p.parseTargetedCommand(ast.KindFrame)
	case "concat":
		return p.parseTargetedCommand(ast.KindConcat)
	case "audio":
		return p.parseAudio()
	case "play":
		return p.parsePlay()
	}

	// LookupWord only maps the four command words to Keyword, so this
	// branch guards against hand-built token streams.
	p.report(kw, diag.UnknownCommand, "unknown command: %s", kw.Text)
	p.synchronize()
	return ast.ErrorNode()
}

// parseTargetedCommand parses "frame expr expr to "dest" ;" and
// "concat expr expr to "dest" ;" which share their shape
func (p *Parser) parseTargetedCommand(kind ast.NodeKind) ast.Node {
	expr1 := p.parseExpression()
	if expr1 == nil {
		return ast.ErrorNode()
	}
	expr2 := p.parseExpression()
	if expr2 == nil {
		return ast.ErrorNode()
	}
	if !p.expect(token.To) {
		return ast.ErrorNode()
	}

	dest := p.current().Text
	if !p.expect(token.String) {
		return ast.ErrorNode()
	}
	if !p.expect(token.Semicolon) {
		return ast.ErrorNode()
	}

	return ast.Node{Kind: kind, Expr1: expr1, Expr2: expr2, Destination: dest}
}

// parseAudio parses "audio expr expr expr to "dest" ;"
func (p *Parser) parseAudio() ast.Node {
	expr1 := p.parseExpression()
	if expr1 == nil {
		return ast.ErrorNode()
	}
	expr2 := p.parseExpression()
	if expr2 == nil {
		return ast.ErrorNode()
	}
	expr3 := p.parseExpression()
	if expr3 == nil {
		return ast.ErrorNode()
	}
	if !p.expect(token.To) {
		return ast.ErrorNode()
	}

	dest := p.current().Text
	if !p.expect(token.String) {
		return ast.ErrorNode()
	}
	if !p.expect(token.Semicolon) {
		return ast.ErrorNode()
	}

	return ast.Node{Kind: ast.KindAudio, Expr1: expr1, Expr2: expr2, Expr3: expr3, Destination: dest}
}

// parsePlay parses "play expr ;" or "play expr expr expr ;"
func (p *Parser) parsePlay() ast.Node {
	expr1 := p.parseExpression()
	if expr1 == nil {
		return ast.ErrorNode()
	}

	if p.check(token.Semicolon) {
		p.advance()
		return ast.Node{Kind: ast.KindPlay, Expr1: expr1}
	}

	expr2 := p.parseExpression()
	if expr2 == nil {
		return ast.ErrorNode()
	}
	expr3 := p.parseExpression()
	if expr3 == nil {
		return ast.ErrorNode()
	}
	if !p.expect(token.Semicolon) {
		return ast.ErrorNode()
	}

	return ast.Node{Kind: ast.KindPlay, Expr1: expr1, Expr2: expr2, Expr3: expr3}
}
