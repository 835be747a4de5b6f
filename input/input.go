// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package input defines the stroke input samples and per-sample progress
// metrics consumed by the brush behavior engine. Samples come from an
// external input model (raw hardware events or their smoothed "modeled"
// projections); this package only defines the data they carry.
package input

import "github.com/google/ink-sub000/math32"

// Sentinel values for optional sample properties that the input device
// did not report. The behavior engine turns these into null values at
// the source / filter layer.
const (
	// NoPressure indicates that the device does not report pressure.
	NoPressure float32 = -1

	// NoTilt indicates that the device does not report tilt.
	NoTilt float32 = -1

	// NoOrientation indicates that the device does not report orientation.
	NoOrientation float32 = -1
)

// Sample is a single stroke input sample, either a real input or a
// predicted one in the look-ahead tail. Optional properties use the
// No* sentinel values when absent.
type Sample struct {
	// Position is the sample position in stroke space.
	Position math32.Vector2

	// ElapsedSeconds is the time of this sample, in seconds since the
	// start of the stroke.
	ElapsedSeconds float32

	// Pressure is the normalized pen pressure in [0, 1],
	// or NoPressure if the device does not report it.
	Pressure float32

	// Tilt is the angle between the pen and the plane normal,
	// in radians in [0, π/2], or NoTilt if not reported.
	Tilt float32

	// Orientation is the angle of the pen's projection onto the plane,
	// in radians in [0, 2π), or NoOrientation if not reported.
	Orientation float32

	// Tool is the kind of device that produced this sample.
	Tool ToolType

	// Predicted is true for samples in the predicted look-ahead tail,
	// false for real inputs.
	Predicted bool
}

// HasPressure reports whether this sample carries a pressure value.
func (s *Sample) HasPressure() bool { return s.Pressure != NoPressure }

// HasTilt reports whether this sample carries a tilt value.
func (s *Sample) HasTilt() bool { return s.Tilt != NoTilt }

// HasOrientation reports whether this sample carries an orientation value.
func (s *Sample) HasOrientation() bool { return s.Orientation != NoOrientation }

// HasTiltXY reports whether the per-axis tilt components are available,
// which requires both tilt and orientation.
func (s *Sample) HasTiltXY() bool { return s.HasTilt() && s.HasOrientation() }

// TiltX returns the component of tilt about the Y axis: positive when
// the pen leans toward positive X. Requires [Sample.HasTiltXY].
func (s *Sample) TiltX() float32 {
	sin, cos := math32.Sincos(s.Tilt)
	return math32.Atan2(sin*math32.Cos(s.Orientation), cos)
}

// TiltY returns the component of tilt about the X axis: positive when
// the pen leans toward positive Y. Requires [Sample.HasTiltXY].
func (s *Sample) TiltY() float32 {
	sin, cos := math32.Sincos(s.Tilt)
	return math32.Atan2(sin*math32.Sin(s.Orientation), cos)
}
