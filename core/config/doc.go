// File: doc.go
// Title: Config Package Documentation
// Description: Package documentation for configuration management.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial documentation

// Package config loads configuration from TOML and YAML files and
// exposes it through typed, dot-notation accessors.
//
// The format is detected from the file extension (.yaml/.yml for YAML,
// TOML otherwise) or forced through LoadOptions. When an EnvPrefix is
// set, environment variables of the form PREFIX_SECTION_KEY override
// file values, which keeps deployments configurable without editing
// files.
//
//	cfg, err := config.LoadWithOptions("vcl.toml", config.LoadOptions{
//		EnvPrefix: "VCL",
//	})
//	level := cfg.GetString("log.level", "info")
package config
