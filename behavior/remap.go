// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "github.com/google/ink-sub000/math32"

// ValueRange is a pair of remap endpoints. Start may be greater than
// End, which reverses the direction of the remap; the two endpoints must
// be finite and distinct for the range to be valid.
type ValueRange struct {
	Start float32
	End   float32
}

// Range returns a [ValueRange] with the given endpoints.
func Range(start, end float32) ValueRange {
	return ValueRange{Start: start, End: end}
}

// IsValid reports whether both endpoints are finite and distinct.
func (r ValueRange) IsValid() bool {
	return math32.IsFinite(r.Start) && math32.IsFinite(r.End) && r.Start != r.End
}

// Normalize maps raw into [0, 1] relative to the range, handling values
// outside the range according to policy:
//
//   - [OutOfRangeClamp] clamps the normalized value to [0, 1], so it is
//     monotonic and saturates outside the range.
//   - [OutOfRangeRepeat] wraps modulo 1 with period End-Start, treating
//     the range as half-open: End maps like Start.
//   - [OutOfRangeMirror] folds in a triangle wave with period
//     2(End-Start), continuous at the fold points.
func (r ValueRange) Normalize(raw float32, policy OutOfRange) float32 {
	t := (raw - r.Start) / (r.End - r.Start)
	switch policy {
	case OutOfRangeRepeat:
		return math32.Fract(t)
	case OutOfRangeMirror:
		m := math32.Fract(t * 0.5)
		if m > 0.5 {
			m = 1 - m
		}
		return 2 * m
	default:
		return math32.Clamp01(t)
	}
}

// Lerp maps t in [0, 1] into the range: Start + t*(End-Start).
// The inverse of [ValueRange.Normalize] within the range.
func (r ValueRange) Lerp(t float32) float32 {
	return math32.Lerp(r.Start, r.End, t)
}
