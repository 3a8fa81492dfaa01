// File: executor.go
// Title: Operation Executor
// Description: Maps abstract media operations to concrete external
//              process invocations (ffmpeg for transforms, a media
//              player for playback) and optionally runs them. Planning
//              is pure; only Execute touches the system.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial executor implementation

package executor

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/vcl/core/log"
	"github.com/msto63/vcl/vcl/ast"
	"github.com/msto63/vcl/vcl/translator"
)

// Options configures executor behavior
type Options struct {
	// Logger for executor operations (nil uses default logger)
	Logger *log.Logger

	// FFmpegPath is the ffmpeg binary to invoke (default "ffmpeg")
	FFmpegPath string

	// PlayerPath is the media player binary to invoke (default "vlc")
	PlayerPath string

	// WorkDir is the working directory for spawned processes
	// (empty uses the current directory)
	WorkDir string

	// Timeout bounds each process invocation (0 means no timeout)
	Timeout time.Duration

	// DryRun logs the invocations instead of running them
	DryRun bool
}

// DefaultOptions returns executor options with default values
func DefaultOptions() Options {
	return Options{
		FFmpegPath: "ffmpeg",
		PlayerPath: "vlc",
	}
}

// Invocation is one external command line ready to spawn
type Invocation struct {
	Program string
	Args    []string
}

// String renders the invocation as a shell-style command line
func (inv Invocation) String() string {
	parts := []string{inv.Program}
	for _, arg := range inv.Args {
		if strings.ContainsAny(arg, " \t\"'") {
			parts = append(parts, strconv.Quote(arg))
		} else {
			parts = append(parts, arg)
		}
	}
	return strings.Join(parts, " ")
}

// Engine turns operation sequences into process invocations
type Engine struct {
	opts   Options
	logger *log.Logger
}

// New creates an executor engine
func New(opts Options) *Engine {
	if opts.FFmpegPath == "" {
		opts.FFmpegPath = "ffmpeg"
	}
	if opts.PlayerPath == "" {
		opts.PlayerPath = "vlc"
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault()
	}

	return &Engine{
		opts:   opts,
		logger: logger.WithField("component", "vcl-executor"),
	}
}

// Plan maps each operation to its external command line. Planning does
// not touch the filesystem or spawn anything.
func (e *Engine) Plan(ops []translator.Operation) []Invocation {
	invocations := make([]Invocation, 0, len(ops))
	for _, op := range ops {
		invocations = append(invocations, e.plan(op))
	}
	return invocations
}

// plan maps one operation to one invocation
func (e *Engine) plan(op translator.Operation) Invocation {
	switch op := op.(type) {
	case translator.Play:
		return Invocation{
			Program: e.opts.PlayerPath,
			Args:    []string{op.Source},
		}

	case translator.PlayRange:
		return Invocation{
			Program: e.opts.PlayerPath,
			Args: []string{
				op.Source,
				fmt.Sprintf("--start-time=%d", op.Start.TotalSeconds()),
				fmt.Sprintf("--stop-time=%d", op.End.TotalSeconds()),
			},
		}

	case translator.ExtractFrame:
		return Invocation{
			Program: e.opts.FFmpegPath,
			Args: []string{
				"-i", op.Source,
				"-vf", fmt.Sprintf(`select=eq(n\,%d)`, op.FrameNumber),
				"-vframes", "1",
				op.Destination,
			},
		}

	case translator.Concat:
		// Single invocation through the concat filter; the stream copy
		// path through the demuxer needs an intermediate list file.
		return Invocation{
			Program: e.opts.FFmpegPath,
			Args: []string{
				"-i", op.SourceA,
				"-i", op.SourceB,
				"-filter_complex", "[0:v][0:a][1:v][1:a]concat=n=2:v=1:a=1[v][a]",
				"-map", "[v]",
				"-map", "[a]",
				op.Destination,
			},
		}

	case translator.ExtractAudio:
		return Invocation{
			Program: e.opts.FFmpegPath,
			Args: []string{
				"-i", op.Source,
				"-ss", formatTime(op.Start),
				"-to", formatTime(op.End),
				"-vn",
				"-acodec", "mp3",
				op.Destination,
			},
		}
	}

	// Unknown operation variants cannot be planned; emit a comment-only
	// invocation so Plan stays total and the mismatch is visible.
	e.logger.Error("unplannable operation", log.Fields{"operation": op.Describe()})
	return Invocation{Program: "false", Args: []string{op.Describe()}}
}

// Script renders the planned invocations as a runnable shell script
func (e *Engine) Script(ops []translator.Operation) string {
	var b strings.Builder
	b.WriteString("#!/bin/sh\nset -e\n")
	for _, inv := range e.Plan(ops) {
		b.WriteString(inv.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Execute plans and runs the operations in order, stopping at the first
// failing invocation. With DryRun set, the invocations are logged and
// nothing is spawned.
func (e *Engine) Execute(ctx context.Context, ops []translator.Operation) error {
	runID := uuid.New().String()
	logger := e.logger.WithField("run_id", runID)

	logger.Info("executing operations", log.Fields{"count": len(ops)})

	for i, inv := range e.Plan(ops) {
		stepLogger := logger.WithFields(log.Fields{
			"step":    i + 1,
			"command": inv.String(),
		})

		if e.opts.DryRun {
			stepLogger.Info("dry run, skipping")
			continue
		}

		if err := e.run(ctx, inv); err != nil {
			stepLogger.ErrorWithErr("invocation failed", err)
			return fmt.Errorf("step %d (%s): %w", i+1, inv.Program, err)
		}
		stepLogger.Debug("invocation complete")
	}

	return nil
}

// run spawns one invocation, honoring the configured timeout
func (e *Engine) run(ctx context.Context, inv Invocation) error {
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, inv.Program, inv.Args...)
	cmd.Dir = e.opts.WorkDir
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// formatTime renders a time position as HH:MM:SS for ffmpeg arguments.
// Minutes above 59 carry into the hour field.
func formatTime(tp ast.TimePosition) string {
	total := tp.TotalSeconds()
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
