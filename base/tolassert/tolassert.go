// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, near equality).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the given two numbers are within the tolerance of
// 0.001 of each other.
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 1.0e-3, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are within the given
// tolerance of each other.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tolerance), msgAndArgs...)
}
