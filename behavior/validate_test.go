// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/google/ink-sub000/input"
)

// pressureToSize is a minimal valid behavior: one source feeding one
// target.
func pressureToSize() Behavior {
	return Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0.2, 0.8)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0.75, 1.25)},
	}}
}

func TestValidateEmptyBehavior(t *testing.T) {
	b := Behavior{}
	assert.NoError(t, b.Validate())
}

func TestValidateSimpleChain(t *testing.T) {
	b := pressureToSize()
	assert.NoError(t, b.Validate())
}

func TestValidateForest(t *testing.T) {
	// Two complete trees in one node list.
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0.5, 1.5)},
		SourceNode{Source: SourceTiltInRadians, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		ConstantNode{Value: 0.5},
		BinaryOpNode{Operation: BinaryOpProduct},
		TargetNode{Target: TargetOpacityMultiplier, ModifierRange: Range(0, 2)},
	}}
	assert.NoError(t, b.Validate())
}

func TestValidateInsufficientInputs(t *testing.T) {
	// A binary op with only one value on the stack.
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		BinaryOpNode{Operation: BinaryOpSum},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	err := b.Validate()
	assert.ErrorIs(t, err, ErrInsufficientInputs)
	assert.ErrorContains(t, err, "node 1 (binary-op)")
	assert.ErrorContains(t, err, "needs 2, found 1 on stack")
}

func TestValidateLeadingFilterUnderflows(t *testing.T) {
	// A filter at position 0 has nothing to consume.
	b := Behavior{Nodes: []Node{
		FallbackFilterNode{IsFallbackFor: PropertyPressure},
		ConstantNode{Value: 1},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	assert.ErrorIs(t, b.Validate(), ErrInsufficientInputs)
}

func TestValidateUnconsumedValues(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		ConstantNode{Value: 2},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	err := b.Validate()
	assert.ErrorIs(t, err, ErrUnconsumedValues)
}

func TestValidateDanglingSource(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
	}}
	assert.ErrorIs(t, b.Validate(), ErrUnconsumedValues)
}

func TestValidateFieldsDegenerateRange(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0.5, 0.5)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	err := b.Validate()
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.ErrorContains(t, err, "finite and distinct")
}

func TestValidateFieldsBadEnum(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: Source(999), OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	err := b.Validate()
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.ErrorContains(t, err, "invalid enum value for Source")
}

func TestValidateTimeSinceInputRequiresClamp(t *testing.T) {
	for _, policy := range []OutOfRange{OutOfRangeRepeat, OutOfRangeMirror} {
		b := Behavior{Nodes: []Node{
			SourceNode{Source: SourceTimeSinceInputInSeconds, OutOfRange: policy, ValueRange: Range(0, 1)},
			TargetNode{Target: TargetOpacityMultiplier, ModifierRange: Range(1, 0)},
		}}
		err := b.Validate()
		assert.ErrorIs(t, err, ErrInvalidField)
		assert.ErrorContains(t, err, "clamp out-of-range policy")
	}

	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceTimeSinceInputInSeconds, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetOpacityMultiplier, ModifierRange: Range(1, 0)},
	}}
	assert.NoError(t, b.Validate())
}

func TestValidateEmptyToolTypeSet(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		ToolTypeFilterNode{},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	err := b.Validate()
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.ErrorContains(t, err, "tool type set")
}

func TestValidateToolTypeSet(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		ToolTypeFilterNode{EnabledToolTypes: input.NewToolTypeSet(input.Pen, input.Touch)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	assert.NoError(t, b.Validate())
}

func TestValidateNilResponseCurve(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		ResponseNode{},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	err := b.Validate()
	assert.ErrorIs(t, err, ErrInvalidField)
	assert.ErrorContains(t, err, "response curve must be set")
}

func TestValidateFieldsReportedBeforeStructure(t *testing.T) {
	// Field errors are reported even when the structure is also broken.
	b := Behavior{Nodes: []Node{
		SourceNode{Source: Source(999), OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
	}}
	assert.ErrorIs(t, b.Validate(), ErrInvalidField)
}
