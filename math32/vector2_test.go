// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2Arithmetic(t *testing.T) {
	a := Vec2(1, 2)
	b := Vec2(3, -1)

	assert.Equal(t, Vec2(4, 1), a.Add(b))
	assert.Equal(t, Vec2(-2, 3), a.Sub(b))
	assert.Equal(t, Vec2(2, 4), a.MulScalar(2))
	assert.Equal(t, Vec2(0.5, 1), a.DivScalar(2))
	assert.Equal(t, Vec2(-1, -2), a.Negate())
	assert.Equal(t, float32(1), a.Dot(b))
	assert.Equal(t, float32(-7), a.Cross(b))
}

func TestVector2Length(t *testing.T) {
	assert.InDelta(t, 5, Vec2(3, 4).Length(), 1e-6)
	assert.Equal(t, float32(25), Vec2(3, 4).LengthSquared())
	assert.True(t, Vector2{}.IsZero())
	assert.False(t, Vec2(0, 0.001).IsZero())
}

func TestVector2FromPolar(t *testing.T) {
	v := Vector2FromPolar(0, 2)
	assert.InDelta(t, 2, v.X, 1e-6)
	assert.InDelta(t, 0, v.Y, 1e-6)

	v = Vector2FromPolar(Pi/2, 3)
	assert.InDelta(t, 0, v.X, 1e-5)
	assert.InDelta(t, 3, v.Y, 1e-5)

	assert.InDelta(t, Pi/2, v.Angle(), 1e-5)
}

func TestVector2Rotate(t *testing.T) {
	v := Vec2(1, 0).Rotate(Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, 1, v.Y, 1e-6)

	v = Vec2(1, 0).Rotate(Pi)
	assert.InDelta(t, -1, v.X, 1e-6)
	assert.InDelta(t, 0, v.Y, 1e-6)
}

func TestVector2Conversions(t *testing.T) {
	assert.Equal(t, image.Pt(3, 4), Vec2(3.7, 4.2).ToPoint())
	assert.Equal(t, Vec2(3, 4), Vector2FromPoint(image.Pt(3, 4)))

	f := Vec2(1.5, -2).ToFixed()
	assert.Equal(t, fixed.Point26_6{X: 96, Y: -128}, f)
	assert.Equal(t, Vec2(1.5, -2), Vector2FromFixed(f))
}
