// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import (
	"math/rand"

	"github.com/google/ink-sub000/math32"
)

// noiseGenerator produces the deterministic value noise of a [NoiseNode]:
// a seeded lattice of pseudo-random values in [0, 1], one per base period
// of progress, with smoothstep interpolation between the two neighboring
// lattice values. Each lattice point is derived from the seed and its
// integer index, so the same seed and cumulative progress always
// reproduce the same output, no matter how the progress was partitioned
// into advances.
type noiseGenerator struct {
	seed uint32
	pos  float64 // cumulative progress in base periods
	idx  uint64  // lattice index, floor(pos)
	prev float32 // lattice value at idx
	next float32 // lattice value at idx+1
}

// maxLatticePos bounds the cumulative position so the float64 to uint64
// index conversion stays in range; beyond 2^52 the fractional phase has
// no precision left anyway.
const maxLatticePos = 1 << 52

func newNoiseGenerator(seed uint32) *noiseGenerator {
	return &noiseGenerator{
		seed: seed,
		prev: latticeValue(seed, 0),
		next: latticeValue(seed, 1),
	}
}

// latticeValue returns lattice point i of the noise stream for seed.
// Indexing the stream directly keeps Advance constant-time for
// arbitrarily large deltas.
func latticeValue(seed uint32, i uint64) float32 {
	return rand.New(rand.NewSource(int64(uint64(seed)<<32 ^ i*0x9e3779b97f4a7c15))).Float32()
}

// Advance moves the generator forward by delta base periods of progress
// and returns the current noise value. A delta of 0 re-reads the current
// value. delta must be non-negative.
func (g *noiseGenerator) Advance(delta float32) float32 {
	g.pos += float64(delta)
	if g.pos > maxLatticePos {
		g.pos = maxLatticePos
	}
	if i := uint64(g.pos); i != g.idx {
		g.idx = i
		g.prev = latticeValue(g.seed, i)
		g.next = latticeValue(g.seed, i+1)
	}
	phase := float32(g.pos - float64(g.idx))
	return math32.Lerp(g.prev, g.next, math32.Smoothstep(0, 1, phase))
}
