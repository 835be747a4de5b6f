// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "errors"

// Error categories for behavior validation. Returned errors wrap one of
// these and add the offending node index, field, and value.
var (
	// ErrInsufficientInputs is returned when a node needs more inputs
	// than the nodes before it have left on the stack.
	ErrInsufficientInputs = errors.New("insufficient inputs")

	// ErrUnconsumedValues is returned when a behavior's node list leaves
	// values on the stack that no terminal node consumes.
	ErrUnconsumedValues = errors.New("unconsumed values remain")

	// ErrInvalidField is returned when a node's own field fails
	// validation (non-finite range, invalid enum, empty tool set, ...).
	ErrInvalidField = errors.New("invalid node field")
)
