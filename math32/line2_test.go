// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/plotview/base/tolassert"
	"github.com/chewxy/math32"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, expected, actual Vector2) {
	tolassert.EqualTol(t, expected.X, actual.X, standardTol)
	tolassert.EqualTol(t, expected.Y, actual.Y, standardTol)
}

func TestLine2(t *testing.T) {
	st := Vec2(6, 12)
	ed := Vec2(12, 24)
	l := NewLine2(st, ed)
	ctr := l.Center()

	tolAssertEqualVector(t, Vec2(9, 18), ctr)
	tolAssertEqualVector(t, Vec2(6, 12), l.Delta())
	tolassert.EqualTol(t, 180, l.LengthSquared(), standardTol)
	tolassert.EqualTol(t, math32.Sqrt(180), l.Length(), standardTol)
	tolAssertEqualVector(t, st, l.ClosestPointToPoint(st))
	tolAssertEqualVector(t, ed, l.ClosestPointToPoint(ed))
	tolAssertEqualVector(t, ctr, l.ClosestPointToPoint(ctr))
	tolAssertEqualVector(t, st, l.ClosestPointToPoint(st.Sub(Vec2(2, 2))))
	tolAssertEqualVector(t, ed, l.ClosestPointToPoint(ed.Add(Vec2(2, 2))))
	tolAssertEqualVector(t, Vec2(7.8, 15.6), l.ClosestPointToPoint(st.Add(Vec2(3, 3))))
}

func TestLine2Degenerate(t *testing.T) {
	p := Vec2(3, 3)
	l := NewLine2(p, p)
	tolAssertEqualVector(t, p, l.ClosestPointToPoint(Vec2(10, 10)))
	tolassert.EqualTol(t, math32.Sqrt(8), l.DistanceToPoint(Vec2(5, 5)), standardTol)
}
