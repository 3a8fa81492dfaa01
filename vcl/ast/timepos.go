// File: timepos.go
// Title: VCL Time Position Value
// Description: Implements the normalized minutes:seconds time value used
//              throughout VCL for playback ranges and audio extraction.
//              Construction always normalizes so that 0 <= seconds < 60;
//              negative components are rejected.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial time position implementation

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// TimePosition represents a normalized minutes:seconds offset.
// The zero value is a valid position at 0:00.
type TimePosition struct {
	Minutes int
	Seconds int
}

// NewTimePosition creates a normalized time position from minute and
// second components. Seconds >= 60 carry into minutes; a negative
// component after normalization is an error.
func NewTimePosition(minutes, seconds int) (TimePosition, error) {
	t := TimePosition{Minutes: minutes, Seconds: seconds}
	if err := t.normalize(); err != nil {
		return TimePosition{}, err
	}
	return t, nil
}

// TimePositionFromSeconds creates a normalized time position from a
// total number of seconds
func TimePositionFromSeconds(total int) (TimePosition, error) {
	return NewTimePosition(0, total)
}

// ParseTimePosition parses a "MM:SS" literal. The colon is mandatory and
// both components must be decimal integers.
func ParseTimePosition(s string) (TimePosition, error) {
	colon := strings.Index(s, ":")
	if colon < 0 {
		return TimePosition{}, fmt.Errorf("invalid time format: %s", s)
	}

	minutes, err := strconv.Atoi(s[:colon])
	if err != nil {
		return TimePosition{}, fmt.Errorf("invalid time format: %s", s)
	}
	seconds, err := strconv.Atoi(s[colon+1:])
	if err != nil {
		return TimePosition{}, fmt.Errorf("invalid time format: %s", s)
	}

	return NewTimePosition(minutes, seconds)
}

// normalize carries overflow seconds into minutes and rejects negative
// components. Normalizing an already-normalized position is a no-op.
func (t *TimePosition) normalize() error {
	if t.Seconds >= 60 {
		t.Minutes += t.Seconds / 60
		t.Seconds %= 60
	}
	if t.Minutes < 0 || t.Seconds < 0 {
		return fmt.Errorf("time cannot be negative: %d:%d", t.Minutes, t.Seconds)
	}
	return nil
}

// TotalSeconds returns the position as a total number of seconds
func (t TimePosition) TotalSeconds() int {
	return t.Minutes*60 + t.Seconds
}

// Add returns the sum of two time positions, renormalized
func (t TimePosition) Add(other TimePosition) TimePosition {
	// Both operands are normalized and non-negative, so the sum is too.
	sum, _ := TimePositionFromSeconds(t.TotalSeconds() + other.TotalSeconds())
	return sum
}

// Scale returns the position multiplied by an integer factor
func (t TimePosition) Scale(n int) (TimePosition, error) {
	return TimePositionFromSeconds(t.TotalSeconds() * n)
}

// Equal reports whether two positions denote the same total seconds
func (t TimePosition) Equal(other TimePosition) bool {
	return t.TotalSeconds() == other.TotalSeconds()
}

// String renders the position as "M:SS" with zero-padded seconds.
// Parsing the result back yields the same normalized position.
func (t TimePosition) String() string {
	return fmt.Sprintf("%d:%02d", t.Minutes, t.Seconds)
}
