// File: operation.go
// Title: Media Operation Definitions
// Description: Defines the abstract operation variants produced by
//              translation. Operations are tool-agnostic descriptors;
//              mapping them to concrete process invocations is the
//              executor's concern.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial operation definitions

package translator

import (
	"fmt"

	"github.com/msto63/vcl/vcl/ast"
)

// Operation is one abstract media action to be executed externally.
// The five implementations are Play, PlayRange, ExtractFrame, Concat,
// and ExtractAudio.
type Operation interface {
	// Describe returns a short human-readable summary of the action
	Describe() string
}

// Play plays a whole media file
type Play struct {
	Source string
}

// Describe implements Operation
func (op Play) Describe() string {
	return fmt.Sprintf("play %s", op.Source)
}

// PlayRange plays a section of a media file
type PlayRange struct {
	Source string
	Start  ast.TimePosition
	End    ast.TimePosition
}

// Describe implements Operation
func (op PlayRange) Describe() string {
	return fmt.Sprintf("play %s from %s to %s", op.Source, op.Start, op.End)
}

// ExtractFrame extracts a single frame as an image file
type ExtractFrame struct {
	Source      string
	FrameNumber int
	Destination string
}

// Describe implements Operation
func (op ExtractFrame) Describe() string {
	return fmt.Sprintf("extract frame %d of %s to %s", op.FrameNumber, op.Source, op.Destination)
}

// Concat joins two media files into one
type Concat struct {
	SourceA     string
	SourceB     string
	Destination string
}

// Describe implements Operation
func (op Concat) Describe() string {
	return fmt.Sprintf("concat %s and %s to %s", op.SourceA, op.SourceB, op.Destination)
}

// ExtractAudio extracts the audio track of a media file section
type ExtractAudio struct {
	Source      string
	Start       ast.TimePosition
	End         ast.TimePosition
	Destination string
}

// Describe implements Operation
func (op ExtractAudio) Describe() string {
	return fmt.Sprintf("extract audio of %s from %s to %s into %s",
		op.Source, op.Start, op.End, op.Destination)
}
