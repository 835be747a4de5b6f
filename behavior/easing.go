// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import (
	"fmt"

	"github.com/google/ink-sub000/math32"
)

// EasingFunction maps an input in [0, 1] through a response curve, as in
// a [ResponseNode]. This is a sealed interface: the only implementations
// are [PredefinedEasing], [CubicBezierEasing], [LinearEasing], and
// [StepsEasing].
//
// Apply clamps its input to [0, 1]; the output may leave [0, 1] for
// cubic bezier curves whose control points do.
type EasingFunction interface {
	isEasingFunction()

	// Validate checks the curve's own parameters.
	Validate() error

	// Apply maps the input through the curve.
	Apply(u float32) float32
}

// PredefinedCurve is a named standard response curve.
type PredefinedCurve int32

const (
	// CurveLinear is the identity curve.
	CurveLinear PredefinedCurve = iota

	// CurveEase is cubic-bezier(0.25, 0.1, 0.25, 1).
	CurveEase

	// CurveEaseIn is cubic-bezier(0.42, 0, 1, 1).
	CurveEaseIn

	// CurveEaseOut is cubic-bezier(0, 0, 0.58, 1).
	CurveEaseOut

	// CurveEaseInOut is cubic-bezier(0.42, 0, 0.58, 1).
	CurveEaseInOut

	// CurveStepStart is steps(1, jump-start).
	CurveStepStart

	// CurveStepEnd is steps(1, jump-end).
	CurveStepEnd

	PredefinedCurveN
)

var predefinedCurveNames = [PredefinedCurveN]string{
	"linear", "ease", "ease-in", "ease-out", "ease-in-out",
	"step-start", "step-end",
}

func (c PredefinedCurve) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("PredefinedCurve(%d)", int32(c))
	}
	return predefinedCurveNames[c]
}

// IsValid reports whether c is one of the named curves.
func (c PredefinedCurve) IsValid() bool {
	return c >= 0 && c < PredefinedCurveN
}

// PredefinedCurveFromString returns the curve with the given name.
func PredefinedCurveFromString(name string) (PredefinedCurve, error) {
	for i, n := range predefinedCurveNames {
		if n == name {
			return PredefinedCurve(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for PredefinedCurve: %q", name)
}

// StepPosition controls where a [StepsEasing] places its jumps.
type StepPosition int32

const (
	// JumpEnd places the jump at the end of each step: the output stays
	// at 0 through the first step.
	JumpEnd StepPosition = iota

	// JumpStart places the jump at the start of each step: the output
	// leaves 0 immediately.
	JumpStart

	// JumpNone holds both endpoints: the output spends equal time at 0
	// and at 1, so at least two steps are required.
	JumpNone

	// JumpBoth jumps at both endpoints: the output never rests at 0
	// or 1.
	JumpBoth

	StepPositionN
)

var stepPositionNames = [StepPositionN]string{
	"jump-end", "jump-start", "jump-none", "jump-both",
}

func (p StepPosition) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("StepPosition(%d)", int32(p))
	}
	return stepPositionNames[p]
}

// IsValid reports whether p is one of the named positions.
func (p StepPosition) IsValid() bool {
	return p >= 0 && p < StepPositionN
}

// StepPositionFromString returns the position with the given name.
func StepPositionFromString(name string) (StepPosition, error) {
	for i, n := range stepPositionNames {
		if n == name {
			return StepPosition(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for StepPosition: %q", name)
}

// PredefinedEasing is an [EasingFunction] given by a named curve.
type PredefinedEasing struct {
	Curve PredefinedCurve
}

func (PredefinedEasing) isEasingFunction() {}

// Validate implements [EasingFunction].
func (e PredefinedEasing) Validate() error {
	if !e.Curve.IsValid() {
		return fmt.Errorf("predefined easing: invalid enum value for PredefinedCurve: %d", int32(e.Curve))
	}
	return nil
}

// Apply implements [EasingFunction].
func (e PredefinedEasing) Apply(u float32) float32 {
	switch e.Curve {
	case CurveLinear:
		return math32.Clamp01(u)
	case CurveEase:
		return CubicBezierEasing{0.25, 0.1, 0.25, 1}.Apply(u)
	case CurveEaseIn:
		return CubicBezierEasing{0.42, 0, 1, 1}.Apply(u)
	case CurveEaseOut:
		return CubicBezierEasing{0, 0, 0.58, 1}.Apply(u)
	case CurveEaseInOut:
		return CubicBezierEasing{0.42, 0, 0.58, 1}.Apply(u)
	case CurveStepStart:
		return StepsEasing{Count: 1, Position: JumpStart}.Apply(u)
	case CurveStepEnd:
		return StepsEasing{Count: 1, Position: JumpEnd}.Apply(u)
	}
	return u
}

// CubicBezierEasing is an [EasingFunction] given by a cubic bezier curve
// through the implicit endpoints (0,0) and (1,1) with control points
// (X1,Y1) and (X2,Y2). X1 and X2 must lie in [0, 1], which keeps the
// curve's x(t) monotonic and the function single-valued.
type CubicBezierEasing struct {
	X1, Y1, X2, Y2 float32
}

func (CubicBezierEasing) isEasingFunction() {}

// Validate implements [EasingFunction].
func (e CubicBezierEasing) Validate() error {
	for _, f := range []float32{e.X1, e.Y1, e.X2, e.Y2} {
		if !math32.IsFinite(f) {
			return fmt.Errorf("cubic bezier easing: control points must be finite, got (%v, %v, %v, %v)",
				e.X1, e.Y1, e.X2, e.Y2)
		}
	}
	if e.X1 < 0 || e.X1 > 1 || e.X2 < 0 || e.X2 > 1 {
		return fmt.Errorf("cubic bezier easing: x values must be in [0, 1], got x1=%v x2=%v", e.X1, e.X2)
	}
	return nil
}

// Apply implements [EasingFunction]. It solves x(t) = u by bisection on
// the monotonic x polynomial and returns y(t).
func (e CubicBezierEasing) Apply(u float32) float32 {
	u = math32.Clamp01(u)
	if u == 0 {
		return 0
	}
	if u == 1 {
		return 1
	}
	lo, hi := float32(0), float32(1)
	for i := 0; i < 30; i++ {
		mid := 0.5 * (lo + hi)
		if bezier1D(e.X1, e.X2, mid) < u {
			lo = mid
		} else {
			hi = mid
		}
	}
	return bezier1D(e.Y1, e.Y2, 0.5*(lo+hi))
}

// bezier1D evaluates one coordinate of a cubic bezier with implicit
// endpoints 0 and 1 and control values p1, p2.
func bezier1D(p1, p2, t float32) float32 {
	omt := 1 - t
	return 3*omt*omt*t*p1 + 3*omt*t*t*p2 + t*t*t
}

// LinearEasing is an [EasingFunction] given by a piecewise linear curve
// through the implicit anchors (0,0) and (1,1) and the given points in
// between. Point x values must lie in [0, 1] and be non-decreasing;
// a repeated x value produces a jump, with the later point winning.
type LinearEasing struct {
	Points []math32.Vector2
}

func (LinearEasing) isEasingFunction() {}

// Validate implements [EasingFunction].
func (e LinearEasing) Validate() error {
	prevX := float32(0)
	for i, p := range e.Points {
		if !math32.IsFinite(p.X) || !math32.IsFinite(p.Y) {
			return fmt.Errorf("linear easing: point %d must be finite, got %v", i, p)
		}
		if p.X < 0 || p.X > 1 {
			return fmt.Errorf("linear easing: point %d x must be in [0, 1], got %v", i, p.X)
		}
		if p.X < prevX {
			return fmt.Errorf("linear easing: point x values must be non-decreasing, got %v after %v", p.X, prevX)
		}
		prevX = p.X
	}
	return nil
}

// Apply implements [EasingFunction].
func (e LinearEasing) Apply(u float32) float32 {
	u = math32.Clamp01(u)
	if u >= 1 {
		return 1
	}
	// Implicit (0, 0) and (1, 1) anchors surround the points. a is the
	// last point at or before u, so repeated x values jump to the later
	// point; b is the point after it.
	a := math32.Vector2{}
	j := -1
	for k, p := range e.Points {
		if p.X <= u {
			a = p
			j = k
		}
	}
	b := math32.Vec2(1, 1)
	if j+1 < len(e.Points) {
		b = e.Points[j+1]
	}
	return math32.Lerp(a.Y, b.Y, (u-a.X)/(b.X-a.X))
}

// StepsEasing is an [EasingFunction] given by a staircase of Count equal
// steps, with Position controlling where the jumps land.
type StepsEasing struct {
	Count    int32
	Position StepPosition
}

func (StepsEasing) isEasingFunction() {}

// Validate implements [EasingFunction].
func (e StepsEasing) Validate() error {
	if !e.Position.IsValid() {
		return fmt.Errorf("steps easing: invalid enum value for StepPosition: %d", int32(e.Position))
	}
	if e.Count < 1 {
		return fmt.Errorf("steps easing: step count must be at least 1, got %d", e.Count)
	}
	if e.Position == JumpNone && e.Count < 2 {
		return fmt.Errorf("steps easing: step count must be at least 2 with jump-none, got %d", e.Count)
	}
	return nil
}

// Apply implements [EasingFunction]. The output is always in [0, 1].
func (e StepsEasing) Apply(u float32) float32 {
	u = math32.Clamp01(u)
	n := float32(e.Count)
	step := math32.Floor(u * n)
	switch e.Position {
	case JumpStart:
		if u >= 1 {
			return 1
		}
		return (step + 1) / n
	case JumpNone:
		return math32.Min(step/(n-1), 1)
	case JumpBoth:
		if u >= 1 {
			return 1
		}
		return (step + 1) / (n + 1)
	default: // JumpEnd
		return math32.Min(step/n, 1)
	}
}
