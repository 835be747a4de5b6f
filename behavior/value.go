// Copyright (c) 2026, The Ink Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package behavior

import "fmt"

// Value is a nullable float32 flowing along a behavior graph edge.
// The zero Value is null.
type Value struct {
	Float float32
	Valid bool
}

// Some returns a non-null Value holding x.
func Some(x float32) Value {
	return Value{Float: x, Valid: true}
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return !v.Valid
}

func (v Value) String() string {
	if !v.Valid {
		return "null"
	}
	return fmt.Sprintf("%v", v.Float)
}
