// File: translator.go
// Title: AST-to-Operation Translator
// Description: Walks a parsed VCL program and translates each statement
//              into an abstract media operation. Conditionals are
//              decided here by evaluating their guard expressions;
//              expression arguments are evaluated and type-checked
//              against each operation's signature.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial translator implementation

package translator

import (
	"errors"
	"fmt"

	"github.com/msto63/vcl/core/log"
	"github.com/msto63/vcl/vcl/ast"
	"github.com/msto63/vcl/vcl/diag"
	"github.com/msto63/vcl/vcl/eval"
	"github.com/msto63/vcl/vcl/token"
)

// Options configures translator behavior
type Options struct {
	// Logger for translation operations (nil uses default logger)
	Logger *log.Logger
}

// Translator converts AST statements into operations
type Translator struct {
	env    *eval.Environment
	ops    []Operation
	diags  []diag.Diagnostic
	logger *log.Logger
}

// New creates a translator using the given variable environment. The
// environment is the one built while parsing, so guard and argument
// expressions see exactly the bindings the script established.
func New(env *eval.Environment, opts Options) *Translator {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	if env == nil {
		env = eval.NewEnvironment()
	}

	return &Translator{
		env:    env,
		logger: logger.WithField("component", "vcl-translator"),
	}
}

// Translate walks the program's statements in order and returns the
// resulting operation sequence plus any evaluation diagnostics. A
// statement whose arguments fail to evaluate or type-check contributes
// no operation; later statements still translate normally.
func Translate(program ast.Node, env *eval.Environment, opts Options) ([]Operation, []diag.Diagnostic) {
	t := New(env, opts)

	for _, stmt := range program.Statements {
		t.translateStatement(stmt)
	}

	t.logger.Debug("translation complete", log.Fields{
		"operations":  len(t.ops),
		"diagnostics": len(t.diags),
	})

	return t.ops, t.diags
}

// translateStatement appends the operations for one statement
func (t *Translator) translateStatement(n ast.Node) {
	switch n.Kind {
	case ast.KindLet, ast.KindError:
		// Bindings were folded into the environment during parsing;
		// error statements were already diagnosed.

	case ast.KindIf:
		t.translateIf(n)

	case ast.KindPlay:
		t.translatePlay(n)

	case ast.KindFrame:
		t.translateFrame(n)

	case ast.KindConcat:
		t.translateConcat(n)

	case ast.KindAudio:
		t.translateAudio(n)
	}
}

// translateIf evaluates both guard expressions. If both are Time values
// and equal, the guarded statement translates in place. Any other type
// combination, or unequal Times, skips the statement without a
// diagnostic. Evaluation failures in the guard are diagnosed and also
// skip the statement.
func (t *Translator) translateIf(n ast.Node) {
	left, err := eval.Evaluate(n.Expr1, t.env)
	if err != nil {
		t.recordEvalError(err)
		return
	}
	right, err := eval.Evaluate(n.Expr2, t.env)
	if err != nil {
		t.recordEvalError(err)
		return
	}

	if left.Kind != ast.ValueTime || right.Kind != ast.ValueTime {
		return
	}
	if !left.Time.Equal(right.Time) {
		return
	}

	for _, stmt := range n.Statements {
		t.translateStatement(stmt)
	}
}

func (t *Translator) translatePlay(n ast.Node) {
	source, ok := t.evalText(n.Expr1, "play source")
	if !ok {
		return
	}

	if n.Expr2 == nil {
		t.emit(Play{Source: source})
		return
	}

	start, ok := t.evalTime(n.Expr2, "play range start")
	if !ok {
		return
	}
	end, ok := t.evalTime(n.Expr3, "play range end")
	if !ok {
		return
	}

	t.emit(PlayRange{Source: source, Start: start, End: end})
}

func (t *Translator) translateFrame(n ast.Node) {
	source, ok := t.evalText(n.Expr1, "frame source")
	if !ok {
		return
	}
	frameNumber, ok := t.evalNumber(n.Expr2, "frame number")
	if !ok {
		return
	}

	t.emit(ExtractFrame{
		Source:      source,
		FrameNumber: frameNumber,
		Destination: n.Destination,
	})
}

func (t *Translator) translateConcat(n ast.Node) {
	sourceA, ok := t.evalText(n.Expr1, "concat first source")
	if !ok {
		return
	}
	sourceB, ok := t.evalText(n.Expr2, "concat second source")
	if !ok {
		return
	}

	t.emit(Concat{
		SourceA:     sourceA,
		SourceB:     sourceB,
		Destination: n.Destination,
	})
}

func (t *Translator) translateAudio(n ast.Node) {
	source, ok := t.evalText(n.Expr1, "audio source")
	if !ok {
		return
	}
	start, ok := t.evalTime(n.Expr2, "audio start")
	if !ok {
		return
	}
	end, ok := t.evalTime(n.Expr3, "audio end")
	if !ok {
		return
	}

	t.emit(ExtractAudio{
		Source:      source,
		Start:       start,
		End:         end,
		Destination: n.Destination,
	})
}

// emit appends one operation
func (t *Translator) emit(op Operation) {
	t.logger.Debug("emit operation", log.Fields{"operation": op.Describe()})
	t.ops = append(t.ops, op)
}

// evalExpect evaluates an expression and checks its type against the
// operation signature. Failures are diagnosed at the expression's first
// token.
func (t *Translator) evalExpect(expr []token.Token, want ast.ValueKind, what string) (ast.Value, bool) {
	value, err := eval.Evaluate(expr, t.env)
	if err != nil {
		t.recordEvalError(err)
		return ast.Value{}, false
	}

	if value.Kind != want {
		at := expr[0]
		t.diags = append(t.diags, diag.New(at.Line, at.Column, diag.TypeError,
			fmt.Sprintf("%s must be a %s, got %s", what, want, value.Kind)))
		return ast.Value{}, false
	}

	return value, true
}

func (t *Translator) evalText(expr []token.Token, what string) (string, bool) {
	value, ok := t.evalExpect(expr, ast.ValueText, what)
	return value.Text, ok
}

func (t *Translator) evalTime(expr []token.Token, what string) (ast.TimePosition, bool) {
	value, ok := t.evalExpect(expr, ast.ValueTime, what)
	return value.Time, ok
}

func (t *Translator) evalNumber(expr []token.Token, what string) (int, bool) {
	value, ok := t.evalExpect(expr, ast.ValueNumber, what)
	return value.Num, ok
}

// recordEvalError converts an evaluation failure into a diagnostic
func (t *Translator) recordEvalError(err error) {
	var evalErr *eval.Error
	if errors.As(err, &evalErr) {
		t.diags = append(t.diags, evalErr.Diagnostic)
		return
	}
	t.diags = append(t.diags, diag.New(0, 0, diag.InvalidExpression, err.Error()))
}
