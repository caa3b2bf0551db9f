// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"math/rand"
	"testing"

	"cogentcore.org/cubes/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
	tolassert.EqualTol(t, vt.Z, va.Z, tol)
}

func TestVectorZero(t *testing.T) {
	assert.Equal(t, Vec2(0, 0), Vector2{})
	assert.Equal(t, Vec3(0, 0, 0), Vector3{})
	assert.Equal(t, Vec4(0, 0, 0, 0), Vector4{})
	assert.Equal(t, Vector3{}, Vector3FromValues())
}

func TestVectorFromValues(t *testing.T) {
	assert.Equal(t, Vec2(1, 0), Vector2FromValues(1))
	assert.Equal(t, Vec3(1, 2, 0), Vector3FromValues(1, 2))
	assert.Equal(t, Vec4(1, 2, 3, 4), Vector4FromValues(1, 2, 3, 4))
	assert.Panics(t, func() { Vector2FromValues(1, 2, 3) })
	assert.Panics(t, func() { Vector3FromValues(1, 2, 3, 4) })
	assert.Panics(t, func() { Vector4FromValues(1, 2, 3, 4, 5) })
}

func TestVectorDim(t *testing.T) {
	v := Vec3(1, 2, 3)
	assert.Equal(t, float32(2), v.Dim(Y))
	v.SetDim(Z, 5)
	assert.Equal(t, float32(5), v.Z)
	assert.Panics(t, func() { v.Dim(W) })
	assert.Panics(t, func() { v.SetDim(Dims(-1), 0) })

	v4 := Vec4(1, 2, 3, 4)
	assert.Equal(t, float32(4), v4.Dim(W))
	assert.Panics(t, func() { v4.Dim(DimsN) })

	v2 := Vec2(1, 2)
	assert.Panics(t, func() { v2.Dim(Z) })

	assert.Equal(t, "W", W.String())
	assert.Equal(t, "Dims(7)", Dims(7).String())
}

func TestVectorArithmetic(t *testing.T) {
	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)

	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, Vec3(2, 3, 4), a.AddScalar(1))
	assert.Equal(t, Vec3(0, 1, 2), a.SubScalar(1))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	// operands are unchanged
	assert.Equal(t, Vec3(1, 2, 3), a)

	c := a
	c.SetAdd(b)
	assert.Equal(t, Vec3(5, -3, 9), c)
	c.SetSub(b)
	assert.Equal(t, a, c)
	c.SetMulScalar(4)
	assert.Equal(t, Vec3(4, 8, 12), c)
	c.SetDivScalar(4)
	assert.Equal(t, a, c)
	c.SetAddScalar(1)
	c.SetSubScalar(1)
	assert.Equal(t, a, c)

	assert.Panics(t, func() { a.DivScalar(0) })
	assert.Panics(t, func() { c.SetDivScalar(0) })
	assert.Panics(t, func() { Vec2(1, 1).DivScalar(0) })
	assert.Panics(t, func() { Vec4(1, 1, 1, 1).DivScalar(0) })

	v := Vec2(3, 4)
	assert.Equal(t, Vec2(2, 3), v.SubScalar(1))
	assert.Equal(t, float32(25), v.LengthSquared())
	v.SetAddScalar(2)
	assert.Equal(t, Vec2(5, 6), v)
	v.SetSubScalar(2)
	assert.True(t, v.IsEqualTol(Vec2(3, 4.00001), 1e-4))
}

func TestVectorAddSubRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	// small integers are exactly representable, so the round trip is exact
	for i := 0; i < 100; i++ {
		a := Vec4(float32(rnd.Intn(2000)-1000), float32(rnd.Intn(2000)-1000), float32(rnd.Intn(2000)-1000), float32(rnd.Intn(2000)-1000))
		b := Vec4(float32(rnd.Intn(2000)-1000), float32(rnd.Intn(2000)-1000), float32(rnd.Intn(2000)-1000), float32(rnd.Intn(2000)-1000))
		assert.Equal(t, a, a.Add(b).Sub(b))
		a3, b3 := a.Vector3(), b.Vector3()
		assert.True(t, a3 == a3.Add(b3).Sub(b3))
	}
}

func TestVectorDotLength(t *testing.T) {
	assert.Equal(t, float32(32), Vec3(1, 2, 3).Dot(Vec3(4, 5, 6)))
	assert.Equal(t, float32(70), Vec4(1, 2, 3, 4).Dot(Vec4(5, 6, 7, 8)))
	assert.Equal(t, float32(11), Vec2(1, 2).Dot(Vec2(3, 4)))
	assert.Equal(t, float32(5), Vec2(3, 4).Length())
	assert.Equal(t, float32(13), Vec3(3, 4, 12).Length())
	assert.Equal(t, float32(169), Vec3(3, 4, 12).LengthSquared())
	assert.Equal(t, float32(2), Vec4(1, 1, 1, 1).Length())
	assert.Equal(t, float32(0), Vector3{}.Length())
}

func TestVectorNormal(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		v := Vec3(rnd.Float32()*20-10, rnd.Float32()*20-10, rnd.Float32()*20-10)
		if v.Length() == 0 {
			continue
		}
		tolassert.EqualTol(t, 1, v.Normal().Length(), 1e-5)
		w := Vec4(v.X, v.Y, v.Z, 1)
		tolassert.EqualTol(t, 1, w.Normal().Length(), 1e-5)
	}
	assert.Equal(t, Vec2(0.6, 0.8), Vec2(3, 4).Normal())

	assert.Panics(t, func() { Vector3{}.Normal() })
	assert.Panics(t, func() { Vector2{}.Normal() })
	assert.Panics(t, func() { Vector4{}.Normal() })
	v := Vector3{}
	assert.Panics(t, func() { v.SetNormal() })
}

func TestVectorCross(t *testing.T) {
	x, y, z := Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Negate(), y.Cross(x))
	assert.Equal(t, float32(1), Vec2(1, 0).Cross(Vec2(0, 1)))
}

func TestVectorEquality(t *testing.T) {
	a := Vec3(0.1, 0.2, 0.3)
	b := Vec3(0.1, 0.2, 0.3)
	assert.True(t, a == b)
	// exact comparison: a value off by a tiny amount is not equal
	c := Vec3(0.1, 0.2, 0.3+standardTol)
	assert.False(t, a == c)
	assert.True(t, a.IsEqualTol(c, 1e-5))
}

func TestVectorSlice(t *testing.T) {
	buf := make([]float32, 5)
	Vec3(1, 2, 3).ToSlice(buf, 1)
	assert.Equal(t, []float32{0, 1, 2, 3, 0}, buf)
	var v Vector3
	v.FromSlice(buf, 1)
	assert.Equal(t, Vec3(1, 2, 3), v)
	assert.Equal(t, "(1, 2, 3)", v.String())
	assert.Equal(t, Vec3(0.5, 1, 1.5), Vec4(1, 2, 3, 2).PerspDiv())
}

func TestWrapAngle(t *testing.T) {
	tolassert.EqualTol(t, Pi, WrapAngle(3*Pi), 1e-5)
	tolassert.EqualTol(t, 3*Pi/2, WrapAngle(-Pi/2), 1e-5)
	assert.Equal(t, float32(0), WrapAngle(0))
	w := WrapAngle(-1e-9)
	assert.True(t, w >= 0 && w < TwoPi)
	tolassert.EqualTol(t, 1, WrapAngle(1+TwoPi), 1e-5)
}
