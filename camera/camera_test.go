// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"math/rand"
	"testing"

	"cogentcore.org/cubes/base/tolassert"
	"cogentcore.org/cubes/math32"
	"github.com/stretchr/testify/assert"
)

const tol = float32(1e-5)

func assertVector(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, got.X, tol, "X")
	tolassert.EqualTol(t, want.Y, got.Y, tol, "Y")
	tolassert.EqualTol(t, want.Z, got.Z, tol, "Z")
}

func TestDefaults(t *testing.T) {
	cm := New()
	assert.Equal(t, math32.Vector3{}, cm.Pos)
	assert.Equal(t, float32(math32.Pi), cm.Yaw)
	assert.Equal(t, float32(0), cm.Pitch)
	assert.Equal(t, float32(4), cm.Velocity)
	assert.Equal(t, float32(1), cm.AngularVelocity)
	assert.Equal(t, Perspective, cm.Projection.Kind)
	assert.Equal(t, float32(math32.Pi/6), cm.Projection.FOV)

	assertVector(t, math32.Vec3(0, 0, -1), cm.Front())
	assertVector(t, math32.Vec3(1, 0, 0), cm.Right())
	assertVector(t, math32.Vec3(0, 1, 0), cm.Up())
}

func TestMove(t *testing.T) {
	cm := New()
	cm.MoveForward(1)
	assertVector(t, math32.Vec3(0, 0, -4), cm.Pos)
	cm.MoveBackward(1)
	assertVector(t, math32.Vec3(0, 0, 0), cm.Pos)

	cm.MoveRight(0.5)
	assertVector(t, math32.Vec3(2, 0, 0), cm.Pos)
	cm.MoveLeft(0.5)
	assertVector(t, math32.Vec3(0, 0, 0), cm.Pos)

	cm.MoveUp(0.25)
	assertVector(t, math32.Vec3(0, 1, 0), cm.Pos)
	cm.MoveDown(0.25)
	assertVector(t, math32.Vec3(0, 0, 0), cm.Pos)

	cm.Velocity = 2
	cm.MoveForward(0)
	assertVector(t, math32.Vec3(0, 0, 0), cm.Pos)
}

func TestAscendIgnoresPitch(t *testing.T) {
	cm := New()
	cm.Pitch = 0.5
	cm.Ascend(1)
	assertVector(t, math32.Vec3(0, 4, 0), cm.Pos)
	cm.Descend(0.5)
	assertVector(t, math32.Vec3(0, 2, 0), cm.Pos)

	// MoveUp follows the tilted up vector instead
	cm.Pos = math32.Vector3{}
	cm.MoveUp(1)
	assert.Less(t, cm.Pos.Y, float32(4))
	tolassert.EqualTol(t, 4, cm.Pos.Length(), tol)
}

func TestRotatePitchClamp(t *testing.T) {
	cm := New()
	cm.Rotate(0, 10, 1)
	assert.Equal(t, float32(math32.HalfPi), cm.Pitch)
	cm.Rotate(0, -100, 1)
	assert.Equal(t, float32(-math32.HalfPi), cm.Pitch)

	// the basis stays valid looking straight down
	assert.True(t, math32.IsOrthonormal(cm.Front(), cm.Right(), cm.Up(), math32.OrthoTol))
	assertVector(t, math32.Vec3(0, -1, 0), cm.Front())
}

func TestRotateYawWrap(t *testing.T) {
	cm := New()
	cm.Rotate(4, 0, 1)
	tolassert.EqualTol(t, math32.Pi+4-math32.TwoPi, cm.Yaw, tol)

	cm.Rotate(-10, 0, 1)
	assert.GreaterOrEqual(t, cm.Yaw, float32(0))
	assert.Less(t, cm.Yaw, float32(math32.TwoPi))

	cm.Yaw = math32.Pi
	cm.AngularVelocity = 2
	cm.Rotate(1, 0, 0.25)
	tolassert.EqualTol(t, math32.Pi+0.5, cm.Yaw, tol)
}

func TestBasisOrthonormal(t *testing.T) {
	cm := New()
	for i := 0; i < 100; i++ {
		cm.Yaw = rand.Float32() * 20
		cm.Pitch = (rand.Float32()*2 - 1) * math32.HalfPi
		front, right, up := cm.Front(), cm.Right(), cm.Up()
		assert.True(t, math32.IsOrthonormal(front, right, up, math32.OrthoTol), "yaw %g pitch %g", cm.Yaw, cm.Pitch)
		tolassert.EqualTol(t, 0, right.Y, tol)
		assert.GreaterOrEqual(t, up.Y, float32(-tol))
	}
}

func TestZoom(t *testing.T) {
	cm := New()
	fov := cm.Projection.FOV

	// out of range results are rejected without change
	assert.False(t, cm.Zoom(1))
	assert.Equal(t, fov, cm.Projection.FOV)
	assert.False(t, cm.Zoom(-1))
	assert.Equal(t, fov, cm.Projection.FOV)

	assert.True(t, cm.Zoom(0.1))
	tolassert.EqualTol(t, fov-0.1, cm.Projection.FOV, tol)
	assert.True(t, cm.Zoom(-0.2))
	tolassert.EqualTol(t, fov+0.1, cm.Projection.FOV, tol)
}

func TestReset(t *testing.T) {
	cm := New()
	cm.MoveForward(2)
	cm.Rotate(1, 0.5, 1)
	cm.Zoom(0.2)
	cm.Velocity = 8
	cm.Reset()
	assert.Equal(t, math32.Vector3{}, cm.Pos)
	assert.Equal(t, float32(math32.Pi), cm.Yaw)
	assert.Equal(t, float32(0), cm.Pitch)
	assert.Equal(t, float32(math32.Pi/6), cm.Projection.FOV)
	assert.Equal(t, float32(8), cm.Velocity)
}

func TestSetPose(t *testing.T) {
	cm := New()
	cm.SetPose(math32.Vec3(1, 2, 3), -math32.HalfPi, 3)
	assert.Equal(t, math32.Vec3(1, 2, 3), cm.Pos)
	tolassert.EqualTol(t, 3*math32.HalfPi, cm.Yaw, tol)
	assert.Equal(t, float32(math32.HalfPi), cm.Pitch)
}

func TestViewMatrix(t *testing.T) {
	cm := New()
	v := cm.ViewMatrix()
	assertVector(t, math32.Vec3(0, 0, -5), math32.Vec3(0, 0, -5).MulMatrix4AsPoint(&v))

	cm.SetPose(math32.Vec3(1, 2, 3), math32.HalfPi, 0)
	v = cm.ViewMatrix()
	assertVector(t, math32.Vector3{}, cm.Pos.MulMatrix4AsPoint(&v))

	// a point ahead of the camera lands on the -Z axis in view space
	ahead := cm.Pos.Add(cm.Front().MulScalar(5))
	assertVector(t, math32.Vec3(0, 0, -5), ahead.MulMatrix4AsPoint(&v))
	right := cm.Pos.Add(cm.Right())
	assertVector(t, math32.Vec3(1, 0, 0), right.MulMatrix4AsPoint(&v))
}

func TestViewProjectionMatrix(t *testing.T) {
	cm := New()
	cm.MoveBackward(1)
	vp := cm.ViewProjectionMatrix()
	p := cm.ProjectionMatrix()
	v := cm.ViewMatrix()
	assert.True(t, vp.IsEqualTol(p.Mul(v), tol))

	ndc := math32.Vec3(0, 0, -2).MulMatrix4AsPoint(&vp)
	tolassert.EqualTol(t, 0, ndc.X, tol)
	tolassert.EqualTol(t, 0, ndc.Y, tol)
	assert.Greater(t, ndc.Z, float32(-1))
	assert.Less(t, ndc.Z, float32(1))
}

func TestOrthographicCamera(t *testing.T) {
	cm := NewWithProjection(NewOrthographic(0.1, 100, 2, 2))
	assert.False(t, cm.Zoom(0.1))
	cm.MoveForward(1)
	vp := cm.ViewProjectionMatrix()
	ndc := math32.Vec3(1, 1, -10).MulMatrix4AsPoint(&vp)
	tolassert.EqualTol(t, 0.5, ndc.X, tol)
	tolassert.EqualTol(t, 1, ndc.Y, tol)
}

func TestString(t *testing.T) {
	cm := New()
	assert.Contains(t, cm.String(), "Pos: (0, 0, 0)")
}
