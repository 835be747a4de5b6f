// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package behavior implements the brush behavior graph engine: a small,
// strongly-typed data-flow expression language whose programs are shipped
// as flat node lists and evaluated once per stroke input sample to produce
// dynamic shape and color modifiers for a brush tip.
//
// A [Behavior] is an ordered list of [Node] values forming the post-order
// flattening of one or more expression trees. Leaf nodes (sources,
// constants, noise) push values, operator and filter nodes pop their
// inputs and push one result, and terminal nodes (targets) pop their
// inputs and record modifiers. For example, a behavior that maps pen
// pressure onto the tip size:
//
//	b := behavior.Behavior{Nodes: []behavior.Node{
//		behavior.SourceNode{
//			Source:     behavior.SourceNormalizedPressure,
//			OutOfRange: behavior.OutOfRangeClamp,
//			ValueRange: behavior.Range(0.2, 0.8),
//		},
//		behavior.TargetNode{
//			Target:        behavior.TargetSizeMultiplier,
//			ModifierRange: behavior.Range(0.75, 1.25),
//		},
//	}}
//	if err := b.Validate(); err != nil { ... }
//
// Behaviors are validated once at construction and are immutable value
// data afterwards; a validated Behavior may be shared read-only across
// any number of concurrently drawn strokes. Per-stroke evaluation state
// lives in an [Instance], created per (behavior, stroke) pair, which must
// see samples in strictly increasing stroke progress order.
//
// Values flowing along graph edges are nullable ([Value]): a source whose
// input property is absent pushes null, pure nodes propagate null, and
// memory-bearing nodes (damping, integral, noise) and terminals hold
// their most recent non-null output instead.
package behavior
