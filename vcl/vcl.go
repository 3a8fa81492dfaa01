// File: vcl.go
// Title: VCL Compiler Engine
// Description: Public facade over the VCL compilation pipeline. Wires
//              lexer, parser, and translator into a single Compile call
//              that turns source text into diagnostics plus an ordered
//              operation sequence.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine implementation

package vcl

import (
	"fmt"

	"github.com/msto63/vcl/core/log"
	"github.com/msto63/vcl/utils/stringx"
	"github.com/msto63/vcl/vcl/ast"
	"github.com/msto63/vcl/vcl/diag"
	"github.com/msto63/vcl/vcl/parser"
	"github.com/msto63/vcl/vcl/token"
	"github.com/msto63/vcl/vcl/translator"
)

// DefaultMaxSourceLength bounds accepted script size
const DefaultMaxSourceLength = 1 << 20 // 1 MB

// Options configures the compiler engine
type Options struct {
	// Logger for compilation (nil uses default logger)
	Logger *log.Logger

	// MaxSourceLength rejects oversized scripts (0 uses the default)
	MaxSourceLength int
}

// Engine compiles VCL source texts. An Engine is safe for sequential
// reuse; each Compile builds a fresh lexer, parser, and environment.
type Engine struct {
	opts   Options
	logger *log.Logger
}

// Result holds everything one compilation produced
type Result struct {
	// Program is the parsed AST, including error nodes for statements
	// that failed to parse
	Program ast.Node

	// Operations is the ordered operation sequence
	Operations []translator.Operation

	// LexDiagnostics are the lexical diagnostics in discovery order
	LexDiagnostics []diag.Diagnostic

	// ParseDiagnostics are the parse and evaluation diagnostics in
	// discovery order
	ParseDiagnostics []diag.Diagnostic
}

// Diagnostics returns all diagnostics in phase order
func (r *Result) Diagnostics() []diag.Diagnostic {
	all := make([]diag.Diagnostic, 0, len(r.LexDiagnostics)+len(r.ParseDiagnostics))
	all = append(all, r.LexDiagnostics...)
	all = append(all, r.ParseDiagnostics...)
	return all
}

// Clean returns true if compilation produced no diagnostics
func (r *Result) Clean() bool {
	return len(r.LexDiagnostics) == 0 && len(r.ParseDiagnostics) == 0
}

// NewEngine creates a compiler engine
func NewEngine(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}
	if opts.MaxSourceLength <= 0 {
		opts.MaxSourceLength = DefaultMaxSourceLength
	}

	return &Engine{
		opts:   opts,
		logger: logger.WithField("component", "vcl-engine"),
	}
}

// Compile runs the whole pipeline over one source text. The returned
// error covers only inputs the compiler refuses to look at (blank or
// oversized sources); everything the compiler can diagnose ends up in
// the Result instead.
func (e *Engine) Compile(source string) (*Result, error) {
	if stringx.IsBlank(source) {
		return nil, fmt.Errorf("source text is empty")
	}
	if len(source) > e.opts.MaxSourceLength {
		return nil, fmt.Errorf("source text exceeds %d bytes", e.opts.MaxSourceLength)
	}

	e.logger.Debug("compiling", log.Fields{"source_bytes": len(source)})

	tokens, lexDiags := parser.Tokenize(source)

	p := parser.New(tokens, parser.Options{Logger: e.opts.Logger})
	program, parseDiags := p.ParseProgram()

	ops, transDiags := translator.Translate(program, p.Environment(), translator.Options{
		Logger: e.opts.Logger,
	})

	result := &Result{
		Program:          program,
		Operations:       ops,
		LexDiagnostics:   lexDiags,
		ParseDiagnostics: append(parseDiags, transDiags...),
	}

	e.logger.Info("compilation finished", log.Fields{
		"statements":  len(program.Statements),
		"operations":  len(ops),
		"diagnostics": len(result.Diagnostics()),
	})

	return result, nil
}

// Scan tokenizes one source text without parsing it. Useful for
// inspecting how the lexer sees a script.
func (e *Engine) Scan(source string) ([]token.Token, []diag.Diagnostic, error) {
	if stringx.IsBlank(source) {
		return nil, nil, fmt.Errorf("source text is empty")
	}
	if len(source) > e.opts.MaxSourceLength {
		return nil, nil, fmt.Errorf("source text exceeds %d bytes", e.opts.MaxSourceLength)
	}

	tokens, diags := parser.Tokenize(source)
	return tokens, diags, nil
}

// Compile compiles source with a default engine
func Compile(source string) (*Result, error) {
	return NewEngine(Options{}).Compile(source)
}
