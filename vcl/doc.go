// File: doc.go
// Title: VCL Package Documentation
// Description: Package documentation for the VCL compiler facade.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package vcl compiles the Video Command Language, a small scripting
// language for describing media-editing work: frame extraction, clip
// concatenation, audio extraction, playback, variable binding, and a
// single-branch conditional.
//
// Compilation is a pure function from source text to a diagnostics
// list plus an ordered sequence of abstract operations. It never
// touches the filesystem or spawns processes; the executor package
// maps operations to real tool invocations.
//
//	result, err := vcl.Compile(`play "intro.mp4";`)
//	if err != nil {
//		// blank or oversized input
//	}
//	for _, d := range result.Diagnostics() {
//		fmt.Println(d)
//	}
//	for _, op := range result.Operations {
//		fmt.Println(op.Describe())
//	}
//
// The subpackages follow the pipeline: parser (lexing and parsing),
// eval (expression evaluation), ast (tree and value types), translator
// (AST to operations), and executor (operations to processes).
package vcl
