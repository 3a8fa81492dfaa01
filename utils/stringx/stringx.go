// File: stringx.go
// Title: String Utility Functions
// Description: Small string helpers shared across the project for
//              blank-checking, defaulting, and display truncation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// IsEmpty returns true if the string has zero length
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// DefaultIfBlank returns the fallback if s is blank, otherwise s
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// Truncate shortens s to at most max runes, appending "..." when
// something was cut. Values of max below 4 return the bare prefix.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 4 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
