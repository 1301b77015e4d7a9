// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic helper functions for
// dealing with numbers.
package num

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of the given value.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1 for negative values, 0 for zero,
// and 1 for positive values.
func Sign[T constraints.Signed | constraints.Float](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// FromBool returns 1 for a true bool and 0 for a false one.
func FromBool[T constraints.Integer | constraints.Float](b bool) T {
	if b {
		return 1
	}
	return 0
}

// ToBool returns false for 0 and true otherwise.
func ToBool[T constraints.Integer | constraints.Float](v T) bool {
	return v != 0
}
