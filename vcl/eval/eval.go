// File: eval.go
// Title: VCL Expression Evaluator
// Description: Evaluates flat expression token chains into typed runtime
//              values. Evaluation folds strictly left to right with no
//              operator precedence; the only defined combinations are
//              string concatenation, time addition, and time-by-integer
//              scaling. All failures are reported as tagged errors that
//              carry a source diagnostic.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial evaluator implementation

package eval

import (
	"fmt"
	"strconv"

	"github.com/msto63/vcl/vcl/ast"
	"github.com/msto63/vcl/vcl/diag"
	"github.com/msto63/vcl/vcl/token"
)

// Error is the tagged evaluation failure. It wraps the diagnostic so
// callers can append it to their statement-level diagnostic stream.
type Error struct {
	Diagnostic diag.Diagnostic
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Diagnostic.String()
}

func evalError(t token.Token, kind diag.Kind, format string, args ...interface{}) *Error {
	return &Error{Diagnostic: diag.New(t.Line, t.Column, kind, fmt.Sprintf(format, args...))}
}

// Evaluate computes the value of an expression token chain against the
// environment. A single-token chain evaluates directly by token type; a
// longer chain must alternate atoms and operators and folds left to
// right. Fails with UnknownIdentifier for unbound names and TypeError
// for operand combinations outside the language's typing table.
func Evaluate(expr []token.Token, env *Environment) (ast.Value, error) {
	if len(expr) == 0 {
		return ast.Value{}, &Error{Diagnostic: diag.New(0, 0, diag.InvalidExpression, "empty expression")}
	}

	result, err := evalAtom(expr[0], env)
	if err != nil {
		return ast.Value{}, err
	}

	for i := 1; i < len(expr); i += 2 {
		op := expr[i]
		if i+1 >= len(expr) {
			return ast.Value{}, evalError(op, diag.InvalidExpression,
				"operator %s has no right operand", op.Text)
		}
		rhs, err := evalAtom(expr[i+1], env)
		if err != nil {
			return ast.Value{}, err
		}
		result, err = combine(result, op, rhs)
		if err != nil {
			return ast.Value{}, err
		}
	}

	return result, nil
}

// evalAtom evaluates a single term token
func evalAtom(t token.Token, env *Environment) (ast.Value, error) {
	switch t.Type {
	case token.Integer:
		n, err := strconv.Atoi(t.Text)
		if err != nil {
			return ast.Value{}, evalError(t, diag.InvalidExpression, "invalid integer literal: %s", t.Text)
		}
		return ast.NumberValue(n), nil

	case token.String:
		return ast.TextValue(t.Text), nil

	case token.Time:
		pos, err := ast.ParseTimePosition(t.Text)
		if err != nil {
			// The lexer validated the literal; reaching this means the
			// token was constructed by hand with a bad payload.
			return ast.Value{}, evalError(t, diag.InvalidTime, "invalid time format: %s", t.Text)
		}
		return ast.TimeValue(pos), nil

	case token.Identifier:
		if value, ok := env.Lookup(t.Text); ok {
			return value, nil
		}
		return ast.Value{}, evalError(t, diag.UnknownIdentifier, "unknown identifier: %s", t.Text)

	default:
		return ast.Value{}, evalError(t, diag.InvalidExpression,
			"expected number, string, time, or identifier, got %s", t.Type)
	}
}

// combine applies one operator step of the left fold. The typing table
// is closed: Text+Text, Time+Time, Time*Number, and Number*Time are the
// only defined combinations. Number+Number is deliberately undefined;
// plain integer arithmetic has no meaning in VCL.
func combine(left ast.Value, op token.Token, right ast.Value) (ast.Value, error) {
	switch op.Type {
	case token.Add:
		if left.Kind == ast.ValueText && right.Kind == ast.ValueText {
			return ast.TextValue(left.Text + right.Text), nil
		}
		if left.Kind == ast.ValueTime && right.Kind == ast.ValueTime {
			return ast.TimeValue(left.Time.Add(right.Time)), nil
		}
		return ast.Value{}, evalError(op, diag.TypeError, "invalid + operands: %s and %s", left.Kind, right.Kind)

	case token.Mul:
		if left.Kind == ast.ValueTime && right.Kind == ast.ValueNumber {
			scaled, err := left.Time.Scale(right.Num)
			if err != nil {
				return ast.Value{}, evalError(op, diag.TypeError, "%v", err)
			}
			return ast.TimeValue(scaled), nil
		}
		if left.Kind == ast.ValueNumber && right.Kind == ast.ValueTime {
			scaled, err := right.Time.Scale(left.Num)
			if err != nil {
				return ast.Value{}, evalError(op, diag.TypeError, "%v", err)
			}
			return ast.TimeValue(scaled), nil
		}
		return ast.Value{}, evalError(op, diag.TypeError,
			"multiplication only defined for time * number, got %s and %s", left.Kind, right.Kind)

	default:
		return ast.Value{}, evalError(op, diag.InvalidExpression, "unexpected operator: %s", op.Text)
	}
}
