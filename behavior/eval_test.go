// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/ink-sub000/input"
	"github.com/google/ink-sub000/math32"
)

// penSample returns a pen sample with the given pressure at the given
// time, with tilt and orientation unreported.
func penSample(pressure, elapsed float32) *input.Sample {
	return &input.Sample{
		ElapsedSeconds: elapsed,
		Pressure:       pressure,
		Tilt:           input.NoTilt,
		Orientation:    input.NoOrientation,
		Tool:           input.Pen,
	}
}

// baseMetrics returns metrics with a defined direction and no physical
// calibration.
func baseMetrics() *input.Metrics {
	return &input.Metrics{
		BrushSize: 1,
		Direction: 0,
	}
}

// evalScalar evaluates the behavior for one sample and returns the
// accumulated modifier for the given target.
func evalScalar(t *testing.T, b Behavior, s *input.Sample, m *input.Metrics, target Target) float32 {
	t.Helper()
	in, err := NewInstance(b)
	require.NoError(t, err)
	in.Eval(s, m)
	var a Accumulator
	a.Reset()
	a.Gather(in)
	return a.Scalar(target)
}

func TestNewInstanceRejectsInvalid(t *testing.T) {
	_, err := NewInstance(Behavior{Nodes: []Node{
		BinaryOpNode{Operation: BinaryOpSum},
	}})
	assert.ErrorIs(t, err, ErrInsufficientInputs)
}

func TestEvalPressureToSize(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0.2, 0.8)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0.75, 1.25)},
	}}

	// Pressure 0.5 normalizes to 0.5 within [0.2, 0.8], which lerps to
	// the midpoint of the modifier range.
	got := evalScalar(t, b, penSample(0.5, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 1.0, got, 1e-6)

	// Pressure below the range start saturates at the low end.
	got = evalScalar(t, b, penSample(0.1, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 0.75, got, 1e-6)
}

func TestEvalMissingPressureIsIdentity(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0.5, 1.5)},
	}}

	// A mouse sample has no pressure: the source is null and the target
	// never fires, so the multiplier stays at its identity.
	s := penSample(input.NoPressure, 0)
	s.Tool = input.Mouse
	got := evalScalar(t, b, s, baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 1, got, 1e-6)
}

func TestEvalNullPropagatesThroughPureNodes(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		ResponseNode{ResponseCurve: PredefinedEasing{Curve: CurveEaseIn}},
		ConstantNode{Value: 2},
		BinaryOpNode{Operation: BinaryOpProduct},
		TargetNode{Target: TargetOpacityMultiplier, ModifierRange: Range(0, 2)},
	}}

	got := evalScalar(t, b, penSample(input.NoPressure, 0), baseMetrics(), TargetOpacityMultiplier)
	assert.InDelta(t, 1, got, 1e-6, "null through response and binary op leaves identity")
}

func TestEvalFallbackFilter(t *testing.T) {
	// Constant 1 passes the filter only when pressure is absent.
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		FallbackFilterNode{IsFallbackFor: PropertyPressure},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(1, 2)},
	}}

	got := evalScalar(t, b, penSample(0.5, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 1, got, 1e-6, "suppressed when pressure present")

	got = evalScalar(t, b, penSample(input.NoPressure, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 2, got, 1e-6, "passes when pressure absent")
}

func TestEvalToolTypeFilter(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		ToolTypeFilterNode{EnabledToolTypes: input.NewToolTypeSet(input.Pen)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(1, 2)},
	}}

	got := evalScalar(t, b, penSample(0.5, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 2, got, 1e-6)

	s := penSample(0.5, 0)
	s.Tool = input.Touch
	got = evalScalar(t, b, s, baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 1, got, 1e-6, "filtered out for touch")
}

func TestEvalTargetHoldsLastValue(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 2)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	in.Eval(penSample(0.75, 0), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 1.5, a.Scalar(TargetSizeMultiplier), 1e-6)

	// A later sample with no pressure keeps the last modifier.
	in.Eval(penSample(input.NoPressure, 0.1), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 1.5, a.Scalar(TargetSizeMultiplier), 1e-6)
}

func TestEvalInterpolationLerp(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 0.25}, // param
		ConstantNode{Value: 2},    // from
		ConstantNode{Value: 6},    // to
		InterpolationNode{Interpolation: InterpolationLerp},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	// lerp(2, 6, 0.25) = 3, passed through unchanged by the identity
	// modifier range.
	got := evalScalar(t, b, penSample(0.5, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 3, got, 1e-6)
}

func TestEvalInverseLerp(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 3}, // param
		ConstantNode{Value: 2}, // from
		ConstantNode{Value: 6}, // to
		InterpolationNode{Interpolation: InterpolationInverseLerp},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	got := evalScalar(t, b, penSample(0.5, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 0.25, got, 1e-6)
}

func TestEvalInverseLerpDegenerateIsNull(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 3},
		ConstantNode{Value: 5}, // from == to
		ConstantNode{Value: 5},
		InterpolationNode{Interpolation: InterpolationInverseLerp},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	got := evalScalar(t, b, penSample(0.5, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 1, got, 1e-6, "degenerate inverse lerp is null, target never fires")
}

func TestEvalBinaryOpOperandOrder(t *testing.T) {
	// The first pushed operand is the left one.
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 5},
		ConstantNode{Value: 3},
		BinaryOpNode{Operation: BinaryOpSum},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	got := evalScalar(t, b, penSample(0.5, 0), baseMetrics(), TargetSizeMultiplier)
	assert.InDelta(t, 8, got, 1e-6)
}

func TestEvalDampingConverges(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		DampingNode{Domain: TimeInSeconds, Gap: 0.1},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	// The first sample establishes the progress baseline with zero
	// deltas, so damping starts from its implicit baseline 0.
	in.Eval(penSample(1, 0), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0, a.Scalar(TargetSizeMultiplier), 1e-6)

	// Repeated samples at a steady input converge toward it from below.
	prev := float32(0)
	for i := 1; i <= 20; i++ {
		in.Eval(penSample(1, float32(i)*0.05), baseMetrics())
		a.Reset()
		a.Gather(in)
		got := a.Scalar(TargetSizeMultiplier)
		assert.Greater(t, got, prev)
		assert.LessOrEqual(t, got, float32(1))
		prev = got
	}
	assert.InDelta(t, 1, prev, 1e-3)
}

func TestEvalDampingZeroGapTracksInput(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		DampingNode{Domain: TimeInSeconds, Gap: 0},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	in.Eval(penSample(0.8, 0), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0.8, a.Scalar(TargetSizeMultiplier), 1e-6)
}

func TestEvalDampingHoldsThroughNull(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		DampingNode{Domain: TimeInSeconds, Gap: 0},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	in.Eval(penSample(0.6, 0), baseMetrics())
	in.Eval(penSample(input.NoPressure, 0.1), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0.6, a.Scalar(TargetSizeMultiplier), 1e-6)
}

func TestEvalIntegralAccumulates(t *testing.T) {
	// Integrate the constant 1 over time: the raw integral equals
	// elapsed time and the value range maps it into [0, 1] over two
	// seconds.
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		IntegralNode{Domain: TimeInSeconds, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 2)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	in.Eval(penSample(0.5, 0), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0, a.Scalar(TargetSizeMultiplier), 1e-6)

	in.Eval(penSample(0.5, 1), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0.5, a.Scalar(TargetSizeMultiplier), 1e-6)

	in.Eval(penSample(0.5, 2), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 1, a.Scalar(TargetSizeMultiplier), 1e-6)

	// Clamp policy saturates past the range end.
	in.Eval(penSample(0.5, 3), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 1, a.Scalar(TargetSizeMultiplier), 1e-6)
}

func TestEvalIntegralRepeatsLastInputThroughNull(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		IntegralNode{Domain: TimeInSeconds, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	in.Eval(penSample(0.5, 0), baseMetrics())
	// Null input repeats the last value 0.5 over one second of progress.
	in.Eval(penSample(input.NoPressure, 1), baseMetrics())
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0.5, a.Scalar(TargetSizeMultiplier), 1e-6)
}

func TestEvalDistanceDomainFrozenWhenUncalibrated(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		IntegralNode{Domain: DistanceInCentimeters, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 1)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	m := baseMetrics()
	in.Eval(penSample(0.5, 0), m)
	m.TraveledBrushSizes = 10
	in.Eval(penSample(0.5, 1), m)
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0, a.Scalar(TargetSizeMultiplier), 1e-6,
		"physical distance makes no progress without calibration")

	// With calibration the same travel advances the integral.
	in2, err := NewInstance(b)
	require.NoError(t, err)
	m2 := baseMetrics()
	m2.CentimetersPerUnit = 0.1
	in2.Eval(penSample(0.5, 0), m2)
	m2.TraveledBrushSizes = 5
	in2.Eval(penSample(0.5, 1), m2)
	a.Reset()
	a.Gather(in2)
	assert.InDelta(t, 0.5, a.Scalar(TargetSizeMultiplier), 1e-6)
}

func TestEvalPolarTarget(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 0.5}, // angle parameter
		ConstantNode{Value: 1},   // magnitude parameter
		PolarTargetNode{
			Target:         PolarTargetPositionOffsetAbsolute,
			AngleRange:     Range(0, math32.Pi),
			MagnitudeRange: Range(0, 2),
		},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	in.Eval(penSample(0.5, 0), baseMetrics())
	var a Accumulator
	a.Reset()
	a.Gather(in)

	// angle pi/2, magnitude 2.
	v := a.Polar(PolarTargetPositionOffsetAbsolute)
	assert.InDelta(t, 0, v.X, 1e-5)
	assert.InDelta(t, 2, v.Y, 1e-5)
	assert.True(t, a.PolarTouched(PolarTargetPositionOffsetAbsolute))
}

func TestEvalPolarTargetHoldsComponentsIndependently(t *testing.T) {
	// Pressure drives the angle; a constant drives the magnitude. When
	// pressure goes null the angle parameter holds while the magnitude
	// keeps updating.
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedPressure, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		ConstantNode{Value: 1},
		PolarTargetNode{
			Target:         PolarTargetPositionOffsetAbsolute,
			AngleRange:     Range(0, math32.Pi),
			MagnitudeRange: Range(0, 1),
		},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	in.Eval(penSample(1, 0), baseMetrics())
	in.Eval(penSample(input.NoPressure, 0.1), baseMetrics())
	a.Reset()
	a.Gather(in)
	v := a.Polar(PolarTargetPositionOffsetAbsolute)
	assert.InDelta(t, -1, v.X, 1e-5, "held angle pi")
	assert.InDelta(t, 0, v.Y, 1e-5)
}

func TestEvalTimeSinceInputAnimation(t *testing.T) {
	// Fade driven by time since the stroke's inputs ended.
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceTimeSinceInputInSeconds, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 1)},
		TargetNode{Target: TargetOpacityMultiplier, ModifierRange: Range(1, 0)},
	}}
	in, err := NewInstance(b)
	require.NoError(t, err)
	var a Accumulator

	m := baseMetrics()
	in.Eval(penSample(0.5, 1), m)
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 1, a.Scalar(TargetOpacityMultiplier), 1e-6)

	m.SecondsSinceLastInput = 0.5
	in.Eval(penSample(0.5, 1), m)
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0.5, a.Scalar(TargetOpacityMultiplier), 1e-6)

	m.SecondsSinceLastInput = 2
	in.Eval(penSample(0.5, 1), m)
	a.Reset()
	a.Gather(in)
	assert.InDelta(t, 0, a.Scalar(TargetOpacityMultiplier), 1e-6)
}

func TestEvalDirectionSourcesNullBeforeMovement(t *testing.T) {
	b := Behavior{Nodes: []Node{
		SourceNode{Source: SourceNormalizedDirectionX, OutOfRange: OutOfRangeClamp, ValueRange: Range(-1, 1)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 2)},
	}}
	m := baseMetrics()
	m.Direction = math32.NaN()
	got := evalScalar(t, b, penSample(0.5, 0), m, TargetSizeMultiplier)
	assert.InDelta(t, 1, got, 1e-6, "identity while direction undefined")
}

func TestEvalSeparateInstancesHaveSeparateState(t *testing.T) {
	b := Behavior{Nodes: []Node{
		ConstantNode{Value: 1},
		IntegralNode{Domain: TimeInSeconds, OutOfRange: OutOfRangeClamp, ValueRange: Range(0, 10)},
		TargetNode{Target: TargetSizeMultiplier, ModifierRange: Range(0, 10)},
	}}
	a1, err := NewInstance(b)
	require.NoError(t, err)
	a2, err := NewInstance(b)
	require.NoError(t, err)

	a1.Eval(penSample(0.5, 0), baseMetrics())
	a1.Eval(penSample(0.5, 2), baseMetrics())
	a2.Eval(penSample(0.5, 0), baseMetrics())

	var acc Accumulator
	acc.Reset()
	acc.Gather(a1)
	got1 := acc.Scalar(TargetSizeMultiplier)
	acc.Reset()
	acc.Gather(a2)
	got2 := acc.Scalar(TargetSizeMultiplier)
	assert.Greater(t, got1, got2)
}
