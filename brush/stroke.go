// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/google/ink-sub000/behavior"
	"github.com/google/ink-sub000/input"
)

// StrokeState owns the per-stroke evaluation state for one tip: one
// behavior [behavior.Instance] per attached behavior and the target
// accumulator. It is created at stroke start and simply dropped when the
// stroke ends or is cancelled; there is no teardown protocol.
//
// A StrokeState is exclusively owned by one stroke and is not safe for
// concurrent use. The Tip it was created from may be shared across
// strokes, since only its immutable value data is read.
type StrokeState struct {
	// ID identifies the stroke, for diagnostics and replay logs.
	ID uuid.UUID

	tip       *Tip
	instances []*behavior.Instance
	accum     behavior.Accumulator
	samples   int
}

// NewStrokeState validates the tip and returns fresh evaluation state
// for one stroke drawn with it.
func NewStrokeState(tip *Tip) (*StrokeState, error) {
	if err := tip.Validate(); err != nil {
		return nil, fmt.Errorf("brush tip: %w", err)
	}
	ss := &StrokeState{
		ID:  uuid.New(),
		tip: tip,
	}
	for i := range tip.Behaviors {
		in, err := behavior.NewInstance(tip.Behaviors[i])
		if err != nil {
			return nil, fmt.Errorf("behavior %d: %w", i, err)
		}
		ss.instances = append(ss.instances, in)
	}
	Logger().Debug("stroke started",
		slog.String("stroke", ss.ID.String()),
		slog.Int("behaviors", len(ss.instances)))
	return ss, nil
}

// Eval runs one evaluation pass for the given sample, real or predicted,
// and returns the resulting clamped tip state. Samples must arrive in
// strictly increasing stroke progress order.
func (ss *StrokeState) Eval(s *input.Sample, m *input.Metrics) TipState {
	ss.accum.Reset()
	for _, in := range ss.instances {
		in.Eval(s, m)
		ss.accum.Gather(in)
	}
	ss.samples++

	frame := forwardFrame{}
	if m.HasDirection() {
		frame = forwardFrame{
			direction: m.Direction,
			forward:   m.ForwardUnit(),
			lateral:   m.LateralUnit(),
		}
	}
	return applyMod(ss.tip, &ss.accum, frame)
}

// Samples returns the number of evaluation passes run so far.
func (ss *StrokeState) Samples() int {
	return ss.samples
}

// BaseState returns the tip state with no modifiers applied: the base
// properties of the tip clamped into their legal ranges. This is what a
// stroke renders before its first sample is evaluated.
func (ss *StrokeState) BaseState() TipState {
	var a behavior.Accumulator
	a.Reset()
	return applyMod(ss.tip, &a, forwardFrame{})
}
