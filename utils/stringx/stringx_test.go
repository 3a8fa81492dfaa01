// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for the string helper functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"x", false},
		{" x ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDefaultIfBlank(t *testing.T) {
	if got := DefaultIfBlank("", "fallback"); got != "fallback" {
		t.Errorf("DefaultIfBlank(\"\") = %q", got)
	}
	if got := DefaultIfBlank("value", "fallback"); got != "value" {
		t.Errorf("DefaultIfBlank(\"value\") = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is too long", 10, "this is..."},
		{"abc", 2, "ab"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
