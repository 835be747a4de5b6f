// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brush defines brush tips, attaches behaviors to them, and
// applies the behavior engine's per-sample modifiers to a tip's base
// properties, producing the clamped tip states consumed by mesh
// generation.
package brush

import (
	"fmt"

	"github.com/google/ink-sub000/behavior"
	"github.com/google/ink-sub000/math32"
	"github.com/google/ink-sub000/math32/minmax"
)

// Tip is the geometric and visual template stamped along a stroke's
// path, with zero or more behaviors that modify it per input sample.
// A validated Tip is immutable value data; it may be shared read-only
// across any number of concurrently drawn strokes.
type Tip struct {
	// Width and Height are the base tip dimensions in multiples of
	// brush size. Both must be positive.
	Width  float32
	Height float32

	// CornerRounding is the base corner rounding in [0, 1]:
	// 0 is a sharp rectangle, 1 a full ellipse.
	CornerRounding float32

	// Rotation is the base tip rotation in radians.
	Rotation float32

	// Slant is the base tip slant in radians in [-π/2, π/2].
	Slant float32

	// Pinch is the base tip pinch in [0, 1].
	Pinch float32

	// Opacity is the base opacity multiplier in [0, 2].
	Opacity float32

	// Color is the base tip color.
	Color RGBA

	// Behaviors are evaluated once per input sample; their outputs
	// stack per target onto the base properties above.
	Behaviors []behavior.Behavior
}

// DefaultTip returns a round, fully opaque black tip with no behaviors.
func DefaultTip() Tip {
	return Tip{
		Width:          1,
		Height:         1,
		CornerRounding: 1,
		Opacity:        1,
		Color:          RGBA{A: 1},
	}
}

// Validate checks the tip's base properties and all of its behaviors.
func (t *Tip) Validate() error {
	if !(t.Width > 0 && math32.IsFinite(t.Width)) {
		return fmt.Errorf("tip width must be finite and positive, got %v", t.Width)
	}
	if !(t.Height > 0 && math32.IsFinite(t.Height)) {
		return fmt.Errorf("tip height must be finite and positive, got %v", t.Height)
	}
	if t.CornerRounding < 0 || t.CornerRounding > 1 {
		return fmt.Errorf("tip corner rounding must be in [0, 1], got %v", t.CornerRounding)
	}
	if t.Pinch < 0 || t.Pinch > 1 {
		return fmt.Errorf("tip pinch must be in [0, 1], got %v", t.Pinch)
	}
	if t.Slant < -math32.Pi/2 || t.Slant > math32.Pi/2 {
		return fmt.Errorf("tip slant must be in [-π/2, π/2], got %v", t.Slant)
	}
	if t.Opacity < 0 || t.Opacity > 2 {
		return fmt.Errorf("tip opacity must be in [0, 2], got %v", t.Opacity)
	}
	for i := range t.Behaviors {
		if err := t.Behaviors[i].Validate(); err != nil {
			return fmt.Errorf("behavior %d: %w", i, err)
		}
	}
	return nil
}

// TipState is the per-sample output of the behavior engine for one tip:
// the base properties with every behavior's combined modifiers applied
// and clamped or normalized into their legal ranges. It is the engine's
// output to mesh generation.
type TipState struct {
	// Width and Height are the modified tip dimensions in multiples of
	// brush size, each clamped to at most twice its base value.
	Width  float32
	Height float32

	// PositionOffset is the tip position offset in multiples of brush
	// size, combining the cartesian, forward/lateral, and polar
	// position targets.
	PositionOffset math32.Vector2

	// CornerRounding is the modified corner rounding, clamped to [0, 1].
	CornerRounding float32

	// Rotation is the modified rotation, normalized into [0, 2π).
	Rotation float32

	// Slant is the modified slant, clamped to [-π/2, π/2].
	Slant float32

	// Pinch is the modified pinch, clamped to [0, 1].
	Pinch float32

	// TextureProgressOffset is the texture animation progress offset,
	// wrapped into [0, 1).
	TextureProgressOffset float32

	// Opacity is the modified opacity multiplier, clamped to [0, 2].
	Opacity float32

	// Color is the tip color with the hue, saturation, luminosity, and
	// opacity shifts applied.
	Color RGBA
}

// Legal output ranges for the clamped tip properties.
var (
	unitRange    = minmax.F32{Min: 0, Max: 1}
	opacityRange = minmax.F32{Min: 0, Max: 2}
	slantRange   = minmax.F32{Min: -math32.Pi / 2, Max: math32.Pi / 2}
)

// applyModifiers combines the accumulated modifiers with the tip's base
// properties, clamping each result into its legal range.
func applyMod(t *Tip, a *behavior.Accumulator, m forwardFrame) TipState {
	size := a.Scalar(behavior.TargetSizeMultiplier)
	width := t.Width * size * a.Scalar(behavior.TargetWidthMultiplier)
	height := t.Height * size * a.Scalar(behavior.TargetHeightMultiplier)

	// Final size is clamped to at most 2x base per axis.
	width = math32.Clamp(width, 0, 2*t.Width)
	height = math32.Clamp(height, 0, 2*t.Height)

	offset := math32.Vec2(
		a.Scalar(behavior.TargetPositionOffsetXInMultiplesOfBrushSize),
		a.Scalar(behavior.TargetPositionOffsetYInMultiplesOfBrushSize),
	)
	offset = offset.Add(m.forward.MulScalar(a.Scalar(behavior.TargetPositionOffsetForwardInMultiplesOfBrushSize)))
	offset = offset.Add(m.lateral.MulScalar(a.Scalar(behavior.TargetPositionOffsetLateralInMultiplesOfBrushSize)))
	offset = offset.Add(a.Polar(behavior.PolarTargetPositionOffsetAbsolute))
	offset = offset.Add(a.Polar(behavior.PolarTargetPositionOffsetRelative).Rotate(m.direction))

	opacity := opacityRange.ClipValue(t.Opacity * a.Scalar(behavior.TargetOpacityMultiplier))

	color := t.Color.ShiftHSL(
		a.Scalar(behavior.TargetHueOffsetInRadians),
		opacityRange.ClipValue(a.Scalar(behavior.TargetSaturationMultiplier)),
		math32.Clamp(a.Scalar(behavior.TargetLuminosityShift), -1, 1),
		opacity,
	)

	return TipState{
		Width:                 width,
		Height:                height,
		PositionOffset:        offset,
		CornerRounding:        unitRange.ClipValue(t.CornerRounding + a.Scalar(behavior.TargetCornerRoundingOffset)),
		Rotation:              math32.NormalizeAngle(t.Rotation + a.Scalar(behavior.TargetRotationOffsetInRadians)),
		Slant:                 slantRange.ClipValue(t.Slant + a.Scalar(behavior.TargetSlantOffsetInRadians)),
		Pinch:                 unitRange.ClipValue(t.Pinch + a.Scalar(behavior.TargetPinchOffset)),
		TextureProgressOffset: math32.Fract(a.Scalar(behavior.TargetTextureAnimationProgressOffset)),
		Opacity:               opacity,
		Color:                 color,
	}
}

// forwardFrame carries the direction-of-travel frame used to resolve
// forward/lateral and relative polar offsets. When the direction is
// undefined the frame is zero and those offsets vanish.
type forwardFrame struct {
	direction float32
	forward   math32.Vector2
	lateral   math32.Vector2
}
