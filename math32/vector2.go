// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vector2{FromFixed(pt.X), FromFixed(pt.Y)}
}

// Set sets this vector X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// SetFromPoint sets from an [image.Point].
func (v *Vector2) SetFromPoint(pt image.Point) {
	v.X = float32(pt.X)
	v.Y = float32(pt.Y)
}

// SetFixed sets from a [fixed.Point26_6].
func (v *Vector2) SetFixed(pt fixed.Point26_6) {
	v.X = FromFixed(pt.X)
	v.Y = FromFixed(pt.Y)
}

// ToPoint returns this vector as an [image.Point], using simple
// interger conversion of the values.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// ToPointFloor returns this vector as an [image.Point], using Floor of the values.
func (v Vector2) ToPointFloor() image.Point {
	return image.Pt(int(Floor(v.X)), int(Floor(v.Y)))
}

// ToPointCeil returns this vector as an [image.Point], using Ceil of the values.
func (v Vector2) ToPointCeil() image.Point {
	return image.Pt(int(Ceil(v.X)), int(Ceil(v.Y)))
}

// ToPointRound returns this vector as an [image.Point], using Round of the values.
func (v Vector2) ToPointRound() image.Point {
	return image.Pt(int(Round(v.X)), int(Round(v.Y)))
}

// ToFixed returns this vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.X), Y: ToFixed(v.Y)}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds the given scalar to each component of this vector
// and returns the result as a new vector.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vector2{v.X + scalar, v.Y + scalar}
}

// SetAdd sets this to addition with the other given vector
// (i.e., += or plus-equals).
func (v *Vector2) SetAdd(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// SetAddScalar sets this to addition with the given scalar
// (i.e., += or plus-equals).
func (v *Vector2) SetAddScalar(scalar float32) {
	v.X += scalar
	v.Y += scalar
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts the given scalar from each component of this vector
// and returns the result as a new vector.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	return Vector2{v.X - scalar, v.Y - scalar}
}

// SetSub sets this to subtraction with the other given vector
// (i.e., -= or minus-equals).
func (v *Vector2) SetSub(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

// SetSubScalar sets this to subtraction of the given scalar
// (i.e., -= or minus-equals).
func (v *Vector2) SetSubScalar(scalar float32) {
	v.X -= scalar
	v.Y -= scalar
}

// Mul multiplies each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vector2{v.X * scalar, v.Y * scalar}
}

// SetMul sets this to multiplication with the other given vector
// (i.e., *= or times-equals).
func (v *Vector2) SetMul(other Vector2) {
	v.X *= other.X
	v.Y *= other.Y
}

// SetMulScalar sets this to multiplication by the given scalar.
func (v *Vector2) SetMulScalar(scalar float32) {
	v.X *= scalar
	v.Y *= scalar
}

// Div divides each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component of this vector by the given scalar
// and returns the result as a new vector.
// If the scalar is zero, then the zero vector is returned.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector2{}
}

// Min returns a new vector with the minimum of this and the other given
// vector for each component.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// SetMin sets this vector components to the minimum value of itself
// and the other given vector.
func (v *Vector2) SetMin(other Vector2) {
	v.X = Min(v.X, other.X)
	v.Y = Min(v.Y, other.Y)
}

// Max returns a new vector with the maximum of this and the other given
// vector for each component.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// SetMax sets this vector components to the maximum value of itself
// and the other given vector.
func (v *Vector2) SetMax(other Vector2) {
	v.X = Max(v.X, other.X)
	v.Y = Max(v.Y, other.Y)
}

// Clamp sets this vector's components to be no less than the corresponding
// components of min and not greater than the corresponding component of max.
// Assumes min < max; if this assumption isn't true, it will not operate correctly.
func (v *Vector2) Clamp(min, max Vector2) {
	if v.X < min.X {
		v.X = min.X
	} else if v.X > max.X {
		v.X = max.X
	}
	if v.Y < min.Y {
		v.Y = min.Y
	} else if v.Y > max.Y {
		v.Y = max.Y
	}
}

// Floor returns this vector with [Floor] applied to each of its components.
func (v Vector2) Floor() Vector2 {
	return Vector2{Floor(v.X), Floor(v.Y)}
}

// Ceil returns this vector with [Ceil] applied to each of its components.
func (v Vector2) Ceil() Vector2 {
	return Vector2{Ceil(v.X), Ceil(v.Y)}
}

// Round returns this vector with [Round] applied to each of its components.
func (v Vector2) Round() Vector2 {
	return Vector2{Round(v.X), Round(v.Y)}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Abs returns the vector with [Abs] applied to each component.
func (v Vector2) Abs() Vector2 {
	return Vector2{Abs(v.X), Abs(v.Y)}
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the distance between these two vectors as points.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance between these two
// vectors as points.
func (v Vector2) DistanceToSquared(other Vector2) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Lerp returns a vector that is the linear interpolation between this vector
// and the other given vector, in the proportion specified by alpha.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vector2{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha}
}
