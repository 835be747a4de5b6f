// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package input

import "github.com/google/ink-sub000/math32"

// Metrics is the per-sample stroke progress accounting supplied by the
// stroke modeler alongside each [Sample]. Distances and velocities are
// expressed in multiples of the brush size; physical (centimeter) units
// are derived from CentimetersPerUnit when the stroke is calibrated.
//
// Metrics must be produced for samples in strictly increasing stroke
// progress order; the behavior engine's memory-bearing nodes are only
// correct under monotonic progress.
type Metrics struct {
	// BrushSize is the brush size in stroke space units. Always > 0.
	BrushSize float32

	// CentimetersPerUnit converts stroke space units to physical
	// centimeters. 0 means the stroke carries no physical calibration.
	CentimetersPerUnit float32

	// Velocity is the stroke velocity at this sample, in multiples of
	// brush size per second.
	Velocity math32.Vector2

	// Acceleration is the stroke acceleration at this sample, in
	// multiples of brush size per second squared.
	Acceleration math32.Vector2

	// Direction is the direction of travel in radians in [0, 2π),
	// or NaN before the stroke has moved.
	Direction float32

	// TraveledBrushSizes is the cumulative distance traveled by real
	// inputs, in multiples of brush size.
	TraveledBrushSizes float32

	// PredictedTraveledBrushSizes is the additional distance traveled
	// by predicted inputs beyond the last real input, in multiples of
	// brush size. Zero for real samples.
	PredictedTraveledBrushSizes float32

	// RemainingBrushSizes is the estimated distance left to travel
	// before the stroke ends, in multiples of brush size.
	RemainingBrushSizes float32

	// RemainingFraction is RemainingBrushSizes as a fraction of the
	// total estimated stroke length, in [0, 1].
	RemainingFraction float32

	// ElapsedSeconds is the cumulative elapsed time of real inputs.
	ElapsedSeconds float32

	// PredictedElapsedSeconds is the additional time elapsed by
	// predicted inputs beyond the last real input. Zero for real samples.
	PredictedElapsedSeconds float32

	// SecondsSinceLastInput is the time since the last real input.
	// It keeps increasing for samples evaluated after the stroke's
	// inputs have ended, driving post-stroke animation.
	SecondsSinceLastInput float32
}

// IsCalibrated reports whether the stroke carries a physical unit
// calibration.
func (m *Metrics) IsCalibrated() bool {
	return m.CentimetersPerUnit > 0
}

// HasDirection reports whether the direction of travel is defined yet.
func (m *Metrics) HasDirection() bool {
	return !math32.IsNaN(m.Direction)
}

// UnitsToCentimeters converts a distance in stroke space units to
// centimeters. Only meaningful when [Metrics.IsCalibrated] is true.
func (m *Metrics) UnitsToCentimeters(units float32) float32 {
	return units * m.CentimetersPerUnit
}

// BrushSizesToCentimeters converts a distance in multiples of brush size
// to centimeters. Only meaningful when [Metrics.IsCalibrated] is true.
func (m *Metrics) BrushSizesToCentimeters(d float32) float32 {
	return d * m.BrushSize * m.CentimetersPerUnit
}

// ForwardUnit returns the unit vector along the direction of travel,
// or the zero vector when the direction is undefined.
func (m *Metrics) ForwardUnit() math32.Vector2 {
	if !m.HasDirection() {
		return math32.Vector2{}
	}
	return math32.Vector2FromPolar(m.Direction, 1)
}

// LateralUnit returns the unit vector 90 degrees counterclockwise from
// the direction of travel, or the zero vector when the direction is
// undefined.
func (m *Metrics) LateralUnit() math32.Vector2 {
	f := m.ForwardUnit()
	return math32.Vec2(-f.Y, f.X)
}
