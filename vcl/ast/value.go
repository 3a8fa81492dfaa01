// File: value.go
// Title: VCL Runtime Value Model
// Description: Defines the tagged value union produced by evaluating VCL
//              expressions. A value is a Number (integer), Text (string),
//              or Time (normalized time position).
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial value model

package ast

import "fmt"

// ValueKind represents the type tag of a runtime value
type ValueKind int

const (
	ValueNumber ValueKind = iota
	ValueText
	ValueTime
)

// String returns the display name of the value kind
func (vk ValueKind) String() string {
	switch vk {
	case ValueNumber:
		return "number"
	case ValueText:
		return "string"
	case ValueTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value represents an evaluated VCL expression result. Exactly one of
// the payload fields is meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Num  int
	Text string
	Time TimePosition
}

// NumberValue creates a Number value
func NumberValue(n int) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// TextValue creates a Text value
func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// TimeValue creates a Time value
func TimeValue(t TimePosition) Value {
	return Value{Kind: ValueTime, Time: t}
}

// String renders the value payload for display and logging
func (v Value) String() string {
	switch v.Kind {
	case ValueNumber:
		return fmt.Sprintf("%d", v.Num)
	case ValueText:
		return v.Text
	case ValueTime:
		return v.Time.String()
	default:
		return "?"
	}
}
