// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import (
	"fmt"

	"github.com/google/ink-sub000/input"
	"github.com/google/ink-sub000/math32"
)

// nodeState is the per-stroke runtime state of one node occurrence,
// stored in a side array indexed by node position. Only the memory
// bearing kinds (damping, integral, noise) and the terminals use it;
// for all other kinds it stays zero.
type nodeState struct {
	// damping: most recent non-null output. Null until the node first
	// sees a non-null input; the implicit baseline before then is 0.
	damped Value

	// integral: running sum and last non-null input value.
	integral float32
	lastIn   float32

	// noise
	noise *noiseGenerator

	// terminals: most recently computed contribution. For polar
	// targets the angle and magnitude parameters are held
	// independently, and a vector is recorded once both have been seen.
	modifier    float32
	polar       math32.Vector2
	hasModifier bool
	angleT      float32
	magT        float32
	hasAngle    bool
	hasMag      bool
}

// Instance is the evaluation state of one [Behavior] for one running
// stroke. It owns a state arena with one entry per node position, so two
// structurally identical nodes have independent state. Instances are
// exclusively owned by one stroke and are not safe for concurrent use;
// the underlying Behavior may be shared freely.
//
// Samples must be evaluated in strictly increasing stroke progress
// order; re-evaluating or reordering samples corrupts the stored state.
type Instance struct {
	b      Behavior
	states []nodeState
	stack  []Value

	// cumulative progress per domain as of the previous sample, and the
	// per-sample deltas derived from it. Progress in the physical
	// distance domain stays frozen for uncalibrated strokes.
	prog    [ProgressDomainN]float32
	deltas  [ProgressDomainN]float32
	started bool
}

// NewInstance validates b and returns a fresh evaluation instance for
// it. Validation up front guarantees that evaluation can never underflow
// its value stack, so Eval has no error path.
func NewInstance(b Behavior) (*Instance, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("behavior: %w", err)
	}
	in := &Instance{
		b:      b,
		states: make([]nodeState, len(b.Nodes)),
	}
	maxDepth := 0
	depth := 0
	for i, n := range b.Nodes {
		st := &in.states[i]
		if nn, ok := n.(NoiseNode); ok {
			st.noise = newNoiseGenerator(nn.Seed)
		}
		depth += OutputCount(n) - InputCount(n)
		if depth > maxDepth {
			maxDepth = depth
		}
	}
	in.stack = make([]Value, 0, maxDepth)
	return in, nil
}

// Eval runs one evaluation pass for the given sample and its progress
// metrics, updating the per-node state and the terminal contributions
// read by [Accumulator.Gather].
func (in *Instance) Eval(s *input.Sample, m *input.Metrics) {
	in.updateProgress(s, m)

	stack := in.stack[:0]
	push := func(v Value) { stack = append(stack, v) }
	pop := func() Value {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for i, n := range in.b.Nodes {
		st := &in.states[i]
		switch n := n.(type) {
		case SourceNode:
			push(sampleSource(n, s, m))

		case ConstantNode:
			push(Some(n.Value))

		case NoiseNode:
			dp := in.deltas[n.VaryOver]
			push(Some(st.noise.Advance(dp / n.BasePeriod)))

		case FallbackFilterNode:
			v := pop()
			if hasOptionalProperty(n.IsFallbackFor, s) {
				v = Null()
			}
			push(v)

		case ToolTypeFilterNode:
			v := pop()
			if !n.EnabledToolTypes.Has(s.Tool) {
				v = Null()
			}
			push(v)

		case DampingNode:
			v := pop()
			if v.IsNull() {
				push(st.damped)
				break
			}
			gap := n.Gap
			if n.Domain == DistanceInCentimeters && !m.IsCalibrated() {
				gap = 0
			}
			prev := float32(0)
			if st.damped.Valid {
				prev = st.damped.Float
			}
			out := v.Float
			if gap > 0 {
				out = prev + (v.Float-prev)*(1-math32.Exp(-in.deltas[n.Domain]/gap))
			}
			st.damped = Some(out)
			push(st.damped)

		case ResponseNode:
			v := pop()
			if v.Valid {
				v = Some(n.ResponseCurve.Apply(v.Float))
			}
			push(v)

		case IntegralNode:
			v := pop()
			if v.Valid {
				st.lastIn = v.Float
			}
			st.integral += st.lastIn * in.deltas[n.Domain]
			push(Some(n.ValueRange.Normalize(st.integral, n.OutOfRange)))

		case BinaryOpNode:
			right := pop()
			left := pop()
			if left.IsNull() || right.IsNull() {
				push(Null())
				break
			}
			switch n.Operation {
			case BinaryOpSum:
				push(Some(left.Float + right.Float))
			default:
				push(Some(left.Float * right.Float))
			}

		case InterpolationNode:
			to := pop()
			from := pop()
			param := pop()
			if param.IsNull() || from.IsNull() || to.IsNull() {
				push(Null())
				break
			}
			switch n.Interpolation {
			case InterpolationInverseLerp:
				if from.Float == to.Float {
					push(Null())
				} else {
					push(Some((param.Float - from.Float) / (to.Float - from.Float)))
				}
			default:
				push(Some(math32.Lerp(from.Float, to.Float, param.Float)))
			}

		case TargetNode:
			v := pop()
			if v.Valid {
				st.modifier = n.ModifierRange.Lerp(v.Float)
				st.hasModifier = true
			}

		case PolarTargetNode:
			mag := pop()
			angle := pop()
			if angle.Valid {
				st.angleT = angle.Float
				st.hasAngle = true
			}
			if mag.Valid {
				st.magT = mag.Float
				st.hasMag = true
			}
			if st.hasAngle && st.hasMag {
				st.polar = math32.Vector2FromPolar(
					n.AngleRange.Lerp(st.angleT), n.MagnitudeRange.Lerp(st.magT))
				st.hasModifier = true
			}
		}
	}
	in.stack = stack[:0]
}

// updateProgress computes the per-domain progress deltas for this
// sample. The first sample establishes the baseline with zero deltas.
func (in *Instance) updateProgress(s *input.Sample, m *input.Metrics) {
	var cur [ProgressDomainN]float32
	cur[DistanceInMultiplesOfBrushSize] = m.TraveledBrushSizes + m.PredictedTraveledBrushSizes
	cur[TimeInSeconds] = s.ElapsedSeconds + m.SecondsSinceLastInput
	if m.IsCalibrated() {
		cur[DistanceInCentimeters] = m.BrushSizesToCentimeters(cur[DistanceInMultiplesOfBrushSize])
	} else {
		cur[DistanceInCentimeters] = in.prog[DistanceInCentimeters]
	}
	for d := range cur {
		if in.started {
			in.deltas[d] = math32.Max(cur[d]-in.prog[d], 0)
		} else {
			in.deltas[d] = 0
		}
		in.prog[d] = cur[d]
	}
	in.started = true
}

// hasOptionalProperty reports whether the named optional property is
// present on the sample.
func hasOptionalProperty(p OptionalInputProperty, s *input.Sample) bool {
	switch p {
	case PropertyPressure:
		return s.HasPressure()
	case PropertyTilt:
		return s.HasTilt()
	case PropertyOrientation:
		return s.HasOrientation()
	case PropertyTiltXAndY:
		return s.HasTiltXY()
	}
	return false
}

// sampleSource reads the node's source quantity from the sample and
// metrics and remaps it into [0, 1], or returns null when the quantity
// is absent.
func sampleSource(n SourceNode, s *input.Sample, m *input.Metrics) Value {
	raw, ok := sourceRaw(n.Source, s, m)
	if !ok {
		return Null()
	}
	return Some(n.ValueRange.Normalize(raw, n.OutOfRange))
}

// sourceRaw returns the raw value of the given source quantity, with
// ok=false when the quantity is absent for this sample (unreported
// device property, undefined direction, or missing physical
// calibration).
func sourceRaw(src Source, s *input.Sample, m *input.Metrics) (float32, bool) {
	// toCm scales brush-size-relative quantities into physical units.
	toCm := m.BrushSize * m.CentimetersPerUnit

	switch src {
	case SourceNormalizedPressure:
		return s.Pressure, s.HasPressure()
	case SourceTiltInRadians:
		return s.Tilt, s.HasTilt()
	case SourceTiltXInRadians:
		if !s.HasTiltXY() {
			return 0, false
		}
		return s.TiltX(), true
	case SourceTiltYInRadians:
		if !s.HasTiltXY() {
			return 0, false
		}
		return s.TiltY(), true
	case SourceOrientationInRadians:
		return s.Orientation, s.HasOrientation()
	case SourceOrientationAboutZeroInRadians:
		if !s.HasOrientation() {
			return 0, false
		}
		return math32.NormalizeAngleAboutZero(s.Orientation), true

	case SourceSpeedInMultiplesOfBrushSizePerSecond:
		return m.Velocity.Length(), true
	case SourceVelocityXInMultiplesOfBrushSizePerSecond:
		return m.Velocity.X, true
	case SourceVelocityYInMultiplesOfBrushSizePerSecond:
		return m.Velocity.Y, true

	case SourceDirectionInRadians:
		return m.Direction, m.HasDirection()
	case SourceDirectionAboutZeroInRadians:
		if !m.HasDirection() {
			return 0, false
		}
		return math32.NormalizeAngleAboutZero(m.Direction), true
	case SourceNormalizedDirectionX:
		if !m.HasDirection() {
			return 0, false
		}
		return math32.Cos(m.Direction), true
	case SourceNormalizedDirectionY:
		if !m.HasDirection() {
			return 0, false
		}
		return math32.Sin(m.Direction), true

	case SourceDistanceTraveledInMultiplesOfBrushSize:
		return m.TraveledBrushSizes, true
	case SourceTimeOfInputInSeconds:
		return s.ElapsedSeconds, true
	case SourceTimeOfInputInMillis:
		return s.ElapsedSeconds * 1000, true
	case SourcePredictedDistanceTraveledInMultiplesOfBrushSize:
		return m.PredictedTraveledBrushSizes, true
	case SourcePredictedTimeElapsedInSeconds:
		return m.PredictedElapsedSeconds, true
	case SourcePredictedTimeElapsedInMillis:
		return m.PredictedElapsedSeconds * 1000, true
	case SourceDistanceRemainingInMultiplesOfBrushSize:
		return m.RemainingBrushSizes, true
	case SourceTimeSinceInputInSeconds:
		return m.SecondsSinceLastInput, true
	case SourceTimeSinceInputInMillis:
		return m.SecondsSinceLastInput * 1000, true

	case SourceAccelerationInMultiplesOfBrushSizePerSecondSquared:
		return m.Acceleration.Length(), true
	case SourceAccelerationXInMultiplesOfBrushSizePerSecondSquared:
		return m.Acceleration.X, true
	case SourceAccelerationYInMultiplesOfBrushSizePerSecondSquared:
		return m.Acceleration.Y, true
	case SourceAccelerationForwardInMultiplesOfBrushSizePerSecondSquared:
		if !m.HasDirection() {
			return 0, false
		}
		return m.Acceleration.Dot(m.ForwardUnit()), true
	case SourceAccelerationLateralInMultiplesOfBrushSizePerSecondSquared:
		if !m.HasDirection() {
			return 0, false
		}
		return m.Acceleration.Dot(m.LateralUnit()), true

	case SourceInputSpeedInCentimetersPerSecond:
		return m.Velocity.Length() * toCm, m.IsCalibrated()
	case SourceInputVelocityXInCentimetersPerSecond:
		return m.Velocity.X * toCm, m.IsCalibrated()
	case SourceInputVelocityYInCentimetersPerSecond:
		return m.Velocity.Y * toCm, m.IsCalibrated()
	case SourceInputDistanceTraveledInCentimeters:
		return m.TraveledBrushSizes * toCm, m.IsCalibrated()
	case SourcePredictedInputDistanceTraveledInCentimeters:
		return m.PredictedTraveledBrushSizes * toCm, m.IsCalibrated()
	case SourceInputAccelerationInCentimetersPerSecondSquared:
		return m.Acceleration.Length() * toCm, m.IsCalibrated()
	case SourceInputAccelerationXInCentimetersPerSecondSquared:
		return m.Acceleration.X * toCm, m.IsCalibrated()
	case SourceInputAccelerationYInCentimetersPerSecondSquared:
		return m.Acceleration.Y * toCm, m.IsCalibrated()
	case SourceInputAccelerationForwardInCentimetersPerSecondSquared:
		if !m.HasDirection() {
			return 0, false
		}
		return m.Acceleration.Dot(m.ForwardUnit()) * toCm, m.IsCalibrated()
	case SourceInputAccelerationLateralInCentimetersPerSecondSquared:
		if !m.HasDirection() {
			return 0, false
		}
		return m.Acceleration.Dot(m.LateralUnit()) * toCm, m.IsCalibrated()

	case SourceDistanceRemainingAsFractionOfStrokeLength:
		return m.RemainingFraction, true
	}
	return 0, false
}
