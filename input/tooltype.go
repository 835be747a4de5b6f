// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "fmt"

// ToolType is the kind of input device that produced a stroke sample.
type ToolType int32

const (
	// UnknownTool is the zero value, for devices whose kind could
	// not be determined.
	UnknownTool ToolType = iota

	// Mouse is a mouse or trackpad pointer.
	Mouse

	// Pen is a stylus or digital pen.
	Pen

	// Touch is a direct finger touch.
	Touch

	// ToolTypeN is the number of valid tool types.
	ToolTypeN
)

var toolTypeNames = [ToolTypeN]string{"unknown", "mouse", "pen", "touch"}

func (tt ToolType) String() string {
	if tt < 0 || tt >= ToolTypeN {
		return fmt.Sprintf("ToolType(%d)", int32(tt))
	}
	return toolTypeNames[tt]
}

// IsValid reports whether tt is one of the named tool types.
func (tt ToolType) IsValid() bool {
	return tt >= 0 && tt < ToolTypeN
}

// ToolTypeValues returns all named tool types.
func ToolTypeValues() []ToolType {
	return []ToolType{UnknownTool, Mouse, Pen, Touch}
}

// ToolTypeFromString returns the tool type with the given name,
// or an error if the name does not match any named tool type.
func ToolTypeFromString(name string) (ToolType, error) {
	for i, n := range toolTypeNames {
		if n == name {
			return ToolType(i), nil
		}
	}
	return UnknownTool, fmt.Errorf("invalid enum value for ToolType: %q", name)
}

// ToolTypeSet is a set of tool types, used to restrict a behavior to
// strokes from particular devices.
type ToolTypeSet uint8

// NewToolTypeSet returns a set containing the given tool types.
// Invalid tool types are ignored.
func NewToolTypeSet(tools ...ToolType) ToolTypeSet {
	var s ToolTypeSet
	for _, tt := range tools {
		if tt.IsValid() {
			s |= 1 << uint(tt)
		}
	}
	return s
}

// Has reports whether the set contains the given tool type.
func (s ToolTypeSet) Has(tt ToolType) bool {
	return tt.IsValid() && s&(1<<uint(tt)) != 0
}

// IsEmpty reports whether the set contains no tool types.
func (s ToolTypeSet) IsEmpty() bool {
	return s == 0
}

// Tools returns the tool types in the set, in enum order.
func (s ToolTypeSet) Tools() []ToolType {
	var tools []ToolType
	for _, tt := range ToolTypeValues() {
		if s.Has(tt) {
			tools = append(tools, tt)
		}
	}
	return tools
}
