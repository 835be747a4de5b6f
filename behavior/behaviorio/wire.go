// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package behaviorio encodes and decodes brush behaviors as JSON or YAML
// documents. Each node kind maps one-to-one to a named wire message, and
// every enum encodes as its string name. Decoding rejects unknown or
// empty enum names with an explicit error rather than silently
// defaulting, and rejects any behavior whose node list fails field or
// structural validation.
package behaviorio

// Document is the top-level wire form: a list of behaviors.
type Document struct {
	Behaviors []BehaviorDoc `json:"behaviors" yaml:"behaviors"`
}

// BehaviorDoc is the wire form of one behavior.
type BehaviorDoc struct {
	Comment string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Nodes   []NodeDoc `json:"nodes" yaml:"nodes"`
}

// NodeDoc is the wire form of one node: exactly one of its fields must
// be set, naming the node's kind.
type NodeDoc struct {
	Source         *SourceDoc         `json:"source,omitempty" yaml:"source,omitempty"`
	Constant       *ConstantDoc       `json:"constant,omitempty" yaml:"constant,omitempty"`
	Noise          *NoiseDoc          `json:"noise,omitempty" yaml:"noise,omitempty"`
	FallbackFilter *FallbackFilterDoc `json:"fallback_filter,omitempty" yaml:"fallback_filter,omitempty"`
	ToolTypeFilter *ToolTypeFilterDoc `json:"tool_type_filter,omitempty" yaml:"tool_type_filter,omitempty"`
	Damping        *DampingDoc        `json:"damping,omitempty" yaml:"damping,omitempty"`
	Response       *ResponseDoc       `json:"response,omitempty" yaml:"response,omitempty"`
	Integral       *IntegralDoc       `json:"integral,omitempty" yaml:"integral,omitempty"`
	BinaryOp       *BinaryOpDoc       `json:"binary_op,omitempty" yaml:"binary_op,omitempty"`
	Interpolation  *InterpolationDoc  `json:"interpolation,omitempty" yaml:"interpolation,omitempty"`
	Target         *TargetDoc         `json:"target,omitempty" yaml:"target,omitempty"`
	PolarTarget    *PolarTargetDoc    `json:"polar_target,omitempty" yaml:"polar_target,omitempty"`
}

// SourceDoc is the wire form of a source node.
type SourceDoc struct {
	Source     string     `json:"source" yaml:"source"`
	OutOfRange string     `json:"out_of_range" yaml:"out_of_range"`
	ValueRange [2]float32 `json:"value_range" yaml:"value_range,flow"`
}

// ConstantDoc is the wire form of a constant node.
type ConstantDoc struct {
	Value float32 `json:"value" yaml:"value"`
}

// NoiseDoc is the wire form of a noise node.
type NoiseDoc struct {
	Seed       uint32  `json:"seed" yaml:"seed"`
	VaryOver   string  `json:"vary_over" yaml:"vary_over"`
	BasePeriod float32 `json:"base_period" yaml:"base_period"`
}

// FallbackFilterDoc is the wire form of a fallback filter node.
type FallbackFilterDoc struct {
	IsFallbackFor string `json:"is_fallback_for" yaml:"is_fallback_for"`
}

// ToolTypeFilterDoc is the wire form of a tool type filter node.
type ToolTypeFilterDoc struct {
	EnabledToolTypes []string `json:"enabled_tool_types" yaml:"enabled_tool_types,flow"`
}

// DampingDoc is the wire form of a damping node.
type DampingDoc struct {
	DampingSource string  `json:"damping_source" yaml:"damping_source"`
	DampingGap    float32 `json:"damping_gap" yaml:"damping_gap"`
}

// ResponseDoc is the wire form of a response node: exactly one of its
// fields must be set, naming the easing function's kind.
type ResponseDoc struct {
	Predefined  string          `json:"predefined,omitempty" yaml:"predefined,omitempty"`
	CubicBezier *CubicBezierDoc `json:"cubic_bezier,omitempty" yaml:"cubic_bezier,omitempty"`
	Linear      *LinearDoc      `json:"linear,omitempty" yaml:"linear,omitempty"`
	Steps       *StepsDoc       `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// CubicBezierDoc is the wire form of a cubic bezier easing function.
type CubicBezierDoc struct {
	X1 float32 `json:"x1" yaml:"x1"`
	Y1 float32 `json:"y1" yaml:"y1"`
	X2 float32 `json:"x2" yaml:"x2"`
	Y2 float32 `json:"y2" yaml:"y2"`
}

// LinearDoc is the wire form of a piecewise linear easing function.
type LinearDoc struct {
	Points [][2]float32 `json:"points" yaml:"points,flow"`
}

// StepsDoc is the wire form of a steps easing function.
type StepsDoc struct {
	Count    int32  `json:"count" yaml:"count"`
	Position string `json:"position" yaml:"position"`
}

// IntegralDoc is the wire form of an integral node.
type IntegralDoc struct {
	IntegralSource string     `json:"integral_source" yaml:"integral_source"`
	OutOfRange     string     `json:"out_of_range" yaml:"out_of_range"`
	ValueRange     [2]float32 `json:"value_range" yaml:"value_range,flow"`
}

// BinaryOpDoc is the wire form of a binary op node.
type BinaryOpDoc struct {
	Operation string `json:"operation" yaml:"operation"`
}

// InterpolationDoc is the wire form of an interpolation node.
type InterpolationDoc struct {
	Interpolation string `json:"interpolation" yaml:"interpolation"`
}

// TargetDoc is the wire form of a target node.
type TargetDoc struct {
	Target        string     `json:"target" yaml:"target"`
	ModifierRange [2]float32 `json:"modifier_range" yaml:"modifier_range,flow"`
}

// PolarTargetDoc is the wire form of a polar target node.
type PolarTargetDoc struct {
	Target         string     `json:"target" yaml:"target"`
	AngleRange     [2]float32 `json:"angle_range" yaml:"angle_range,flow"`
	MagnitudeRange [2]float32 `json:"magnitude_range" yaml:"magnitude_range,flow"`
}
