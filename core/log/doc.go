// File: doc.go
// Title: Log Package Documentation
// Description: Package documentation for the structured logging package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package log provides structured logging with configurable levels,
// output formats, and contextual fields.
//
// Loggers are immutable: the With* methods return clones, so a logger
// handed to a component can be enriched with component fields without
// affecting the parent. A package-level default logger backs the global
// convenience functions.
//
// Typical usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatConsole,
//		Name:   "vcl",
//	})
//	logger.Info("compilation started", log.Fields{"source_bytes": n})
package log
