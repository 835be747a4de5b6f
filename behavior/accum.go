// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "github.com/google/ink-sub000/math32"

// Accumulator combines the terminal contributions of every behavior
// instance on a tip into one modifier per target for the current sample.
// Contributions stack per the target's declared rule -- product for
// multiplicative targets, sum for additive ones -- so the order in which
// instances are gathered never affects the result.
//
// Reset, then Gather each instance after it has been evaluated for the
// sample, then read the combined modifiers.
type Accumulator struct {
	scalars      [TargetN]float32
	polars       [PolarTargetN]math32.Vector2
	touched      [TargetN]bool
	polarTouched [PolarTargetN]bool
}

// Reset clears the accumulator to the no-op identity for every target.
func (a *Accumulator) Reset() {
	for t := Target(0); t < TargetN; t++ {
		a.scalars[t] = t.Identity()
		a.touched[t] = false
	}
	for t := PolarTarget(0); t < PolarTargetN; t++ {
		a.polars[t] = math32.Vector2{}
		a.polarTouched[t] = false
	}
}

// Gather folds in the current terminal contributions of the given
// instance. An instance whose terminal has not yet computed an effect
// for a target contributes the identity.
func (a *Accumulator) Gather(in *Instance) {
	for i, n := range in.b.Nodes {
		st := &in.states[i]
		if !st.hasModifier {
			continue
		}
		switch n := n.(type) {
		case TargetNode:
			a.scalars[n.Target] = n.Target.Combine(a.scalars[n.Target], st.modifier)
			a.touched[n.Target] = true
		case PolarTargetNode:
			a.polars[n.Target] = a.polars[n.Target].Add(st.polar)
			a.polarTouched[n.Target] = true
		}
	}
}

// Scalar returns the combined modifier for the given target, or its
// identity if no behavior contributed to it.
func (a *Accumulator) Scalar(t Target) float32 {
	return a.scalars[t]
}

// Polar returns the combined vector modifier for the given polar target,
// or the zero vector if no behavior contributed to it.
func (a *Accumulator) Polar(t PolarTarget) math32.Vector2 {
	return a.polars[t]
}

// Touched reports whether any behavior has contributed to the given
// target this stroke.
func (a *Accumulator) Touched(t Target) bool {
	return a.touched[t]
}

// PolarTouched reports whether any behavior has contributed to the given
// polar target this stroke.
func (a *Accumulator) PolarTouched(t PolarTarget) bool {
	return a.polarTouched[t]
}
