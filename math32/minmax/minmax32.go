// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values,
// used for the legal output ranges of brush tip properties.
package minmax

// F32 represents a min / max range for float32 values.
// Supports clipping, renormalizing, etc.
type F32 struct {
	Min float32
	Max float32
}

// Set sets the min and max values.
func (mr *F32) Set(mn, mx float32) {
	mr.Min = mn
	mr.Max = mx
}

// IsValid returns true if Min <= Max.
func (mr *F32) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max).
func (mr *F32) InRange(val float32) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min.
func (mr *F32) Range() float32 {
	return mr.Max - mr.Min
}

// Midpoint returns the point halfway between Min and Max.
func (mr *F32) Midpoint() float32 {
	return 0.5 * (mr.Max + mr.Min)
}

// ClipValue clips the given value within the Min / Max range.
// Note: a NaN will remain as a NaN.
func (mr *F32) ClipValue(val float32) float32 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// NormValue normalizes value to the 0-1 unit range relative to the
// current Min / Max range, clipping the value within that range first.
func (mr *F32) NormValue(val float32) float32 {
	r := mr.Range()
	if r == 0 {
		return 0
	}
	return (mr.ClipValue(val) - mr.Min) / r
}

// ProjValue projects a 0-1 normalized unit value into the current
// Min / Max range (inverse of [F32.NormValue]).
func (mr *F32) ProjValue(val float32) float32 {
	return mr.Min + val*mr.Range()
}
