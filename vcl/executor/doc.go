// File: doc.go
// Title: Executor Package Documentation
// Description: Package documentation for the operation executor.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package executor maps abstract media operations to external process
// invocations and optionally runs them.
//
// Plan and Script are pure: they render ffmpeg and media-player command
// lines without touching the system, which keeps them testable and lets
// callers inspect or export what would run. Execute spawns the planned
// invocations in order with an optional per-step timeout; DryRun mode
// logs each step instead.
package executor
