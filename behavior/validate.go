// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import (
	"fmt"

	"github.com/google/ink-sub000/math32"
)

// Behavior is one flattened expression-graph program attached to a brush
// tip: an ordered node list that is the post-order flattening of zero or
// more complete expression trees, plus a free-text author comment that
// is never evaluated.
//
// A Behavior is immutable once validated and is copied by value; it may
// be shared read-only across strokes.
type Behavior struct {
	Nodes   []Node
	Comment string
}

// Validate checks every node's own fields and then the structural
// validity of the node list. An empty behavior is valid and has no
// effect. The two passes are independent: ValidateFields and
// ValidateStructure may each be run alone when the other is already
// known to hold.
func (b *Behavior) Validate() error {
	if err := b.ValidateFields(); err != nil {
		return err
	}
	return b.ValidateStructure()
}

// ValidateFields checks each node's own fields in isolation. No node
// depends on any other node's fields, so the check is order-independent.
func (b *Behavior) ValidateFields() error {
	for i, n := range b.Nodes {
		if err := ValidateNodeFields(n); err != nil {
			return fmt.Errorf("node %d (%s): %w", i, NodeKindName(n), err)
		}
	}
	return nil
}

// ValidateStructure verifies that the node list decodes into a forest of
// complete expression trees: read left to right, with each node popping
// its input count off an operand stack and pushing its output count, the
// stack depth never goes negative and ends at exactly zero. This single
// pass proves both that no node is starved of inputs and that every
// generated value is consumed by exactly one terminal, without
// reconstructing the trees.
func (b *Behavior) ValidateStructure() error {
	depth := 0
	for i, n := range b.Nodes {
		in := InputCount(n)
		if depth < in {
			return fmt.Errorf("node %d (%s): %w: needs %d, found %d on stack",
				i, NodeKindName(n), ErrInsufficientInputs, in, depth)
		}
		depth -= in
		depth += OutputCount(n)
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d", ErrUnconsumedValues, depth)
	}
	return nil
}

// ValidateNodeFields checks only the given node's own fields: ranges
// finite and distinct, enums named, easing sub-structure valid, tool
// type set non-empty. It never inspects other nodes.
func ValidateNodeFields(n Node) error {
	switch n := n.(type) {
	case SourceNode:
		if !n.Source.IsValid() {
			return fmt.Errorf("%w: invalid enum value for Source: %d", ErrInvalidField, int32(n.Source))
		}
		if !n.OutOfRange.IsValid() {
			return fmt.Errorf("%w: invalid enum value for OutOfRange: %d", ErrInvalidField, int32(n.OutOfRange))
		}
		if !n.ValueRange.IsValid() {
			return fmt.Errorf("%w: source value range endpoints must be finite and distinct, got [%v, %v]",
				ErrInvalidField, n.ValueRange.Start, n.ValueRange.End)
		}
		if n.Source.IsTimeSinceInput() && n.OutOfRange != OutOfRangeClamp {
			return fmt.Errorf("%w: %v must only be used with the clamp out-of-range policy, got %v",
				ErrInvalidField, n.Source, n.OutOfRange)
		}
	case ConstantNode:
		if !math32.IsFinite(n.Value) {
			return fmt.Errorf("%w: constant value must be finite, got %v", ErrInvalidField, n.Value)
		}
	case NoiseNode:
		if !n.VaryOver.IsValid() {
			return fmt.Errorf("%w: invalid enum value for ProgressDomain: %d", ErrInvalidField, int32(n.VaryOver))
		}
		if !(math32.IsFinite(n.BasePeriod) && n.BasePeriod > 0) {
			return fmt.Errorf("%w: noise base period must be finite and positive, got %v",
				ErrInvalidField, n.BasePeriod)
		}
	case FallbackFilterNode:
		if !n.IsFallbackFor.IsValid() {
			return fmt.Errorf("%w: invalid enum value for OptionalInputProperty: %d",
				ErrInvalidField, int32(n.IsFallbackFor))
		}
	case ToolTypeFilterNode:
		if n.EnabledToolTypes.IsEmpty() {
			return fmt.Errorf("%w: enabled tool type set must be non-empty", ErrInvalidField)
		}
	case DampingNode:
		if !n.Domain.IsValid() {
			return fmt.Errorf("%w: invalid enum value for ProgressDomain: %d", ErrInvalidField, int32(n.Domain))
		}
		if !(math32.IsFinite(n.Gap) && n.Gap >= 0) {
			return fmt.Errorf("%w: damping gap must be finite and non-negative, got %v", ErrInvalidField, n.Gap)
		}
	case ResponseNode:
		if n.ResponseCurve == nil {
			return fmt.Errorf("%w: response curve must be set", ErrInvalidField)
		}
		if err := n.ResponseCurve.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidField, err)
		}
	case IntegralNode:
		if !n.Domain.IsValid() {
			return fmt.Errorf("%w: invalid enum value for ProgressDomain: %d", ErrInvalidField, int32(n.Domain))
		}
		if !n.OutOfRange.IsValid() {
			return fmt.Errorf("%w: invalid enum value for OutOfRange: %d", ErrInvalidField, int32(n.OutOfRange))
		}
		if !n.ValueRange.IsValid() {
			return fmt.Errorf("%w: integral value range endpoints must be finite and distinct, got [%v, %v]",
				ErrInvalidField, n.ValueRange.Start, n.ValueRange.End)
		}
	case BinaryOpNode:
		if !n.Operation.IsValid() {
			return fmt.Errorf("%w: invalid enum value for BinaryOp: %d", ErrInvalidField, int32(n.Operation))
		}
	case InterpolationNode:
		if !n.Interpolation.IsValid() {
			return fmt.Errorf("%w: invalid enum value for Interpolation: %d", ErrInvalidField, int32(n.Interpolation))
		}
	case TargetNode:
		if !n.Target.IsValid() {
			return fmt.Errorf("%w: invalid enum value for Target: %d", ErrInvalidField, int32(n.Target))
		}
		if !n.ModifierRange.IsValid() {
			return fmt.Errorf("%w: target modifier range endpoints must be finite and distinct, got [%v, %v]",
				ErrInvalidField, n.ModifierRange.Start, n.ModifierRange.End)
		}
	case PolarTargetNode:
		if !n.Target.IsValid() {
			return fmt.Errorf("%w: invalid enum value for PolarTarget: %d", ErrInvalidField, int32(n.Target))
		}
		if !n.AngleRange.IsValid() {
			return fmt.Errorf("%w: angle range endpoints must be finite and distinct, got [%v, %v]",
				ErrInvalidField, n.AngleRange.Start, n.AngleRange.End)
		}
		if !n.MagnitudeRange.IsValid() {
			return fmt.Errorf("%w: magnitude range endpoints must be finite and distinct, got [%v, %v]",
				ErrInvalidField, n.MagnitudeRange.Start, n.MagnitudeRange.End)
		}
	default:
		return fmt.Errorf("%w: unknown node type %T", ErrInvalidField, n)
	}
	return nil
}
