// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "github.com/google/ink-sub000/input"

// Node is one node of a behavior graph. This is a sealed interface --
// only the twelve node types in this package implement it -- so that the
// arity and validation tables can switch over it exhaustively.
//
// Nodes are grouped by role:
//
//   - value nodes (0 inputs, 1 output): [SourceNode], [ConstantNode],
//     [NoiseNode]
//   - filter nodes (1 input, 1 output): [FallbackFilterNode],
//     [ToolTypeFilterNode]
//   - operator nodes (1-3 inputs, 1 output): [DampingNode],
//     [ResponseNode], [IntegralNode], [BinaryOpNode], [InterpolationNode]
//   - terminal nodes (1-2 inputs, 0 outputs): [TargetNode],
//     [PolarTargetNode]
type Node interface {
	// nodeMarker is an unexported method that seals this interface.
	nodeMarker()
}

// SourceNode samples a named input-derived scalar and remaps it from
// ValueRange into [0, 1] according to the OutOfRange policy. It pushes
// null when the sampled property is absent from the current input.
type SourceNode struct {
	Source     Source
	OutOfRange OutOfRange
	ValueRange ValueRange
}

// ConstantNode pushes a fixed finite value.
type ConstantNode struct {
	Value float32
}

// NoiseNode pushes a seeded pseudo-random value in [0, 1] that varies
// smoothly as progress in VaryOver advances, completing one noise
// lattice step per BasePeriod of progress. The same seed and cumulative
// progress always reproduce the same output.
type NoiseNode struct {
	Seed       uint32
	VaryOver   ProgressDomain
	BasePeriod float32
}

// FallbackFilterNode passes its input through only when the named
// optional input property is absent from the current input, and pushes
// null otherwise. It lets a behavior branch act as a substitute for a
// property the device does not report.
type FallbackFilterNode struct {
	IsFallbackFor OptionalInputProperty
}

// ToolTypeFilterNode passes its input through only for samples produced
// by one of the enabled tool types, and pushes null otherwise.
type ToolTypeFilterNode struct {
	EnabledToolTypes input.ToolTypeSet
}

// DampingNode low-pass filters its input: the output exponentially
// approaches the input over elapsed progress in Domain, with Gap
// controlling the smoothing window. A gap of 0 passes the input through
// unchanged. On a null input the node holds its previous output.
type DampingNode struct {
	Domain ProgressDomain
	Gap    float32
}

// ResponseNode maps its input through an easing function. Null inputs
// propagate.
type ResponseNode struct {
	ResponseCurve EasingFunction
}

// IntegralNode accumulates input × Δprogress in Domain into a running
// sum, and pushes the sum remapped from ValueRange into [0, 1] according
// to the OutOfRange policy. A null input integrates the last non-null
// input value; before the first non-null input the integrand is 0.
type IntegralNode struct {
	Domain     ProgressDomain
	OutOfRange OutOfRange
	ValueRange ValueRange
}

// BinaryOpNode combines two input values with Operation. Null inputs
// propagate.
type BinaryOpNode struct {
	Operation BinaryOp
}

// InterpolationNode combines three input values (parameter, from, to)
// with Interpolation. Null inputs propagate.
type InterpolationNode struct {
	Interpolation Interpolation
}

// TargetNode pops one value, remaps it from [0, 1] into ModifierRange,
// and records it as this behavior's contribution to the named target.
// On a null input the previously recorded contribution is kept.
type TargetNode struct {
	Target        Target
	ModifierRange ValueRange
}

// PolarTargetNode pops two values (angle parameter, then magnitude
// parameter), remaps them from [0, 1] into AngleRange and MagnitudeRange,
// and records the resulting polar vector as this behavior's contribution
// to the named polar target. A null input on either slot keeps the
// previously recorded vector.
type PolarTargetNode struct {
	Target         PolarTarget
	AngleRange     ValueRange
	MagnitudeRange ValueRange
}

func (SourceNode) nodeMarker()         {}
func (ConstantNode) nodeMarker()       {}
func (NoiseNode) nodeMarker()          {}
func (FallbackFilterNode) nodeMarker() {}
func (ToolTypeFilterNode) nodeMarker() {}
func (DampingNode) nodeMarker()        {}
func (ResponseNode) nodeMarker()       {}
func (IntegralNode) nodeMarker()       {}
func (BinaryOpNode) nodeMarker()       {}
func (InterpolationNode) nodeMarker()  {}
func (TargetNode) nodeMarker()         {}
func (PolarTargetNode) nodeMarker()    {}

// InputCount returns the number of values the node pops off the stack.
func InputCount(n Node) int {
	switch n.(type) {
	case SourceNode, ConstantNode, NoiseNode:
		return 0
	case FallbackFilterNode, ToolTypeFilterNode, DampingNode,
		ResponseNode, IntegralNode, TargetNode:
		return 1
	case BinaryOpNode, PolarTargetNode:
		return 2
	case InterpolationNode:
		return 3
	}
	return 0
}

// OutputCount returns the number of values the node pushes onto the
// stack: 0 for the two terminal kinds, 1 for everything else.
func OutputCount(n Node) int {
	switch n.(type) {
	case TargetNode, PolarTargetNode:
		return 0
	}
	return 1
}

// NodeKindName returns a short name for the node's kind, used in
// validation errors and serialized documents.
func NodeKindName(n Node) string {
	switch n.(type) {
	case SourceNode:
		return "source"
	case ConstantNode:
		return "constant"
	case NoiseNode:
		return "noise"
	case FallbackFilterNode:
		return "fallback-filter"
	case ToolTypeFilterNode:
		return "tool-type-filter"
	case DampingNode:
		return "damping"
	case ResponseNode:
		return "response"
	case IntegralNode:
		return "integral"
	case BinaryOpNode:
		return "binary-op"
	case InterpolationNode:
		return "interpolation"
	case TargetNode:
		return "target"
	case PolarTargetNode:
		return "polar-target"
	}
	return "unknown"
}
