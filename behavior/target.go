// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "fmt"

// Target names a scalar brush tip or color property that a [TargetNode]
// modifies. Whether multiple behaviors contributing to the same target
// stack additively or multiplicatively is a property of the target
// itself; see [Target.IsMultiplicative].
type Target int32

const (
	// TargetWidthMultiplier scales the tip width. Multiplicative.
	TargetWidthMultiplier Target = iota

	// TargetHeightMultiplier scales the tip height. Multiplicative.
	TargetHeightMultiplier

	// TargetSizeMultiplier scales both tip dimensions. Multiplicative.
	TargetSizeMultiplier

	// TargetSlantOffsetInRadians adds to the tip slant angle. Additive.
	TargetSlantOffsetInRadians

	// TargetPinchOffset adds to the tip pinch in [0, 1]. Additive.
	TargetPinchOffset

	// TargetRotationOffsetInRadians adds to the tip rotation. Additive.
	TargetRotationOffsetInRadians

	// TargetCornerRoundingOffset adds to the tip corner rounding in
	// [0, 1]. Additive.
	TargetCornerRoundingOffset

	// TargetPositionOffsetXInMultiplesOfBrushSize offsets the tip along
	// the stroke space X axis. Additive.
	TargetPositionOffsetXInMultiplesOfBrushSize

	// TargetPositionOffsetYInMultiplesOfBrushSize offsets the tip along
	// the stroke space Y axis. Additive.
	TargetPositionOffsetYInMultiplesOfBrushSize

	// TargetPositionOffsetForwardInMultiplesOfBrushSize offsets the tip
	// along the direction of travel. Additive.
	TargetPositionOffsetForwardInMultiplesOfBrushSize

	// TargetPositionOffsetLateralInMultiplesOfBrushSize offsets the tip
	// across the direction of travel. Additive.
	TargetPositionOffsetLateralInMultiplesOfBrushSize

	// TargetTextureAnimationProgressOffset advances the tip texture
	// animation, wrapped modulo 1. Additive.
	TargetTextureAnimationProgressOffset

	// TargetHueOffsetInRadians shifts the tip color hue, normalized
	// modulo 2π. Additive.
	TargetHueOffsetInRadians

	// TargetSaturationMultiplier scales the tip color saturation,
	// clamped to [0, 2]. Multiplicative.
	TargetSaturationMultiplier

	// TargetLuminosityShift shifts the tip color luminosity, clamped to
	// [-1, 1]. Additive.
	TargetLuminosityShift

	// TargetOpacityMultiplier scales the tip opacity, clamped to
	// [0, 2]. Multiplicative.
	TargetOpacityMultiplier

	TargetN
)

var targetNames = [TargetN]string{
	"width-multiplier",
	"height-multiplier",
	"size-multiplier",
	"slant-offset-in-radians",
	"pinch-offset",
	"rotation-offset-in-radians",
	"corner-rounding-offset",
	"position-offset-x-in-multiples-of-brush-size",
	"position-offset-y-in-multiples-of-brush-size",
	"position-offset-forward-in-multiples-of-brush-size",
	"position-offset-lateral-in-multiples-of-brush-size",
	"texture-animation-progress-offset",
	"hue-offset-in-radians",
	"saturation-multiplier",
	"luminosity-shift",
	"opacity-multiplier",
}

func (t Target) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Target(%d)", int32(t))
	}
	return targetNames[t]
}

// IsValid reports whether t is one of the named targets.
func (t Target) IsValid() bool {
	return t >= 0 && t < TargetN
}

// TargetFromString returns the target with the given name.
func TargetFromString(name string) (Target, error) {
	for i, n := range targetNames {
		if n == name {
			return Target(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for Target: %q", name)
}

// TargetValues returns all named targets, in enum order.
func TargetValues() []Target {
	vals := make([]Target, TargetN)
	for i := range vals {
		vals[i] = Target(i)
	}
	return vals
}

// IsMultiplicative reports whether contributions from multiple behaviors
// to this target combine by product; the rest combine by sum.
func (t Target) IsMultiplicative() bool {
	switch t {
	case TargetWidthMultiplier, TargetHeightMultiplier, TargetSizeMultiplier,
		TargetSaturationMultiplier, TargetOpacityMultiplier:
		return true
	}
	return false
}

// Identity returns the no-op modifier for this target: 1 for
// multiplicative targets and 0 for additive ones.
func (t Target) Identity() float32 {
	if t.IsMultiplicative() {
		return 1
	}
	return 0
}

// Combine stacks two contributions to this target: product for
// multiplicative targets, sum for additive ones. Combine is commutative
// and associative, so behavior order never affects the result.
func (t Target) Combine(a, b float32) float32 {
	if t.IsMultiplicative() {
		return a * b
	}
	return a + b
}

// PolarTarget names a vector brush tip property that a [PolarTargetNode]
// modifies with an angle and magnitude pair. All polar targets stack
// additively as vectors.
type PolarTarget int32

const (
	// PolarTargetPositionOffsetAbsolute offsets the tip position by a
	// polar vector whose angle is measured from the stroke space X
	// axis, with magnitude in multiples of brush size.
	PolarTargetPositionOffsetAbsolute PolarTarget = iota

	// PolarTargetPositionOffsetRelative offsets the tip position by a
	// polar vector whose angle is measured from the direction of
	// travel, with magnitude in multiples of brush size.
	PolarTargetPositionOffsetRelative

	PolarTargetN
)

var polarTargetNames = [PolarTargetN]string{
	"position-offset-absolute-in-radians-and-multiples-of-brush-size",
	"position-offset-relative-in-radians-and-multiples-of-brush-size",
}

func (t PolarTarget) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("PolarTarget(%d)", int32(t))
	}
	return polarTargetNames[t]
}

// IsValid reports whether t is one of the named polar targets.
func (t PolarTarget) IsValid() bool {
	return t >= 0 && t < PolarTargetN
}

// PolarTargetFromString returns the polar target with the given name.
func PolarTargetFromString(name string) (PolarTarget, error) {
	for i, n := range polarTargetNames {
		if n == name {
			return PolarTarget(i), nil
		}
	}
	return 0, fmt.Errorf("invalid enum value for PolarTarget: %q", name)
}
