// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the core logger including level filtering,
//              contextual fields, and output formatting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  level,
		Format: FormatJSON,
		Output: buf,
		Name:   "test",
	})
	return logger, buf
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)

	logger.Debug("should be filtered")
	logger.Info("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("expected no output below minimum level, got %q", buf.String())
	}

	logger.Warn("should appear")
	if buf.Len() == 0 {
		t.Error("expected warn message to be logged")
	}
}

func TestJSONOutput(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.Info("test message", Fields{"key": "value", "count": 42})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if data["message"] != "test message" {
		t.Errorf("message = %v, want 'test message'", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v, want 'info'", data["level"])
	}
	if data["logger"] != "test" {
		t.Errorf("logger = %v, want 'test'", data["logger"])
	}
	if data["key"] != "value" {
		t.Errorf("field key = %v, want 'value'", data["key"])
	}
}

func TestWithFieldPersistence(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)
	enriched := logger.WithField("component", "parser")

	enriched.Info("first")
	enriched.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d", len(lines))
	}

	for _, line := range lines {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(line), &data); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if data["component"] != "parser" {
			t.Errorf("component = %v, want 'parser'", data["component"])
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)
	_ = logger.WithField("component", "parser")

	logger.Info("parent message")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, exists := data["component"]; exists {
		t.Error("parent logger should not carry the child's field")
	}
}

func TestErrorWithErr(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	logger.ErrorWithErr("operation failed", &ParseError{Input: "bogus", Type: "level"})

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if data["error"] != "invalid level: bogus" {
		t.Errorf("error = %v, want 'invalid level: bogus'", data["error"])
	}
}

func TestTextFormatter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatText,
		Output: buf,
		Name:   "vcl",
	})

	logger.Warn("disk almost full")

	out := buf.String()
	if !strings.Contains(out, "[WRN]") {
		t.Errorf("expected short level marker in %q", out)
	}
	if !strings.Contains(out, "{vcl}") {
		t.Errorf("expected logger name in %q", out)
	}
	if !strings.Contains(out, "disk almost full") {
		t.Errorf("expected message in %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"err", LevelError, false},
		{"nonsense", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
