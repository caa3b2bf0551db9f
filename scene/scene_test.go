// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/cubes/base/tolassert"
	"cogentcore.org/cubes/camera"
	"cogentcore.org/cubes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1e-5)

func TestCubeMeshWinding(t *testing.T) {
	ms := CubeMesh(2)
	require.Len(t, ms.Faces, 6)
	for i, f := range ms.Faces {
		a, b, c := f.Verts[0].Pos, f.Verts[1].Pos, f.Verts[2].Pos
		n := b.Sub(a).Cross(c.Sub(a)).Normal()
		assert.Equal(t, f.Normal, n, "face %d", i)
		for _, v := range f.Verts {
			// every vertex lies on the face plane
			tolassert.EqualTol(t, 1, v.Pos.Dot(f.Normal), tol)
		}
		assert.Equal(t, FaceColors[i], f.Color)
	}
}

func TestCubeModel(t *testing.T) {
	c := NewCube(math32.Vec3(1, 2, 3), math32.Vec3(0, 2, 0), 1)
	assert.Equal(t, math32.Vec3(0, 1, 0), c.Axis)
	m := c.Model()
	assert.Equal(t, math32.Translation(math32.Vec3(1, 2, 3)), m)

	c.Scale = math32.Vec3(2, 2, 2)
	c.Animate(math32.HalfPi)
	m = c.Model()
	want := math32.Translation(c.Pos).Mul(math32.Rotation(math32.HalfPi, c.Axis)).Mul(math32.Scaling(c.Scale))
	assert.True(t, m.IsEqualTol(want, tol))

	// +X is scaled to 2, spun a quarter turn about +Y to -Z, then moved
	p := math32.Vec3(1, 0, 0).MulMatrix4AsPoint(&m)
	tolassert.EqualTol(t, 1, p.X, tol)
	tolassert.EqualTol(t, 2, p.Y, tol)
	tolassert.EqualTol(t, 1, p.Z, tol)

	zero := NewCube(math32.Vector3{}, math32.Vector3{}, 0)
	assert.Equal(t, math32.Vec3(0, 1, 0), zero.Axis)
}

func TestAnimate(t *testing.T) {
	cubes := DefaultCubes(DefaultPositions, 1)
	require.Len(t, cubes, len(DefaultPositions))
	sc := New(1, cubes)
	for _, c := range cubes {
		assert.True(t, c.Axis.IsUnit(math32.UnitTol))
	}
	a0 := cubes[1].Angle
	sc.Animate(0.5)
	assert.Equal(t, float32(0.5), sc.Time)
	tolassert.EqualTol(t, a0+0.5, cubes[1].Angle, tol)

	sc.Paused = true
	sc.Animate(0.5)
	assert.Equal(t, float32(0.5), sc.Time)
}

func TestProjectSingleCube(t *testing.T) {
	sc := New(1, []*Cube{NewCube(math32.Vec3(0, 0, -5), math32.Vec3(0, 1, 0), 0)})
	cm := camera.New()
	vp := Viewport{Width: 800, Height: 600}
	faces := sc.Project(cm.ViewProjectionMatrix(), vp, nil)
	require.Len(t, faces, 1)
	f := faces[0]
	assert.Equal(t, 0, f.Face)
	assert.Equal(t, 0, f.Cube)

	var cx, cy float32
	for _, v := range f.Verts {
		cx += v.X / 4
		cy += v.Y / 4
		assert.Greater(t, v.Depth, float32(-1))
		assert.Less(t, v.Depth, float32(1))
		tolassert.EqualTol(t, 4.5, v.W, 1e-4)
	}
	tolassert.EqualTol(t, 400, cx, 1e-2)
	tolassert.EqualTol(t, 300, cy, 1e-2)

	// the bottom left corner is left of and below the top right corner
	assert.Less(t, f.Verts[0].X, f.Verts[2].X)
	assert.Greater(t, f.Verts[0].Y, f.Verts[2].Y)

	// the front face is lit by a light from the front
	sc.SetLight(math32.Vec3(0, 0, 1))
	faces = sc.Project(cm.ViewProjectionMatrix(), vp, faces[:0])
	require.Len(t, faces, 1)
	tolassert.EqualTol(t, 1, faces[0].Shade, tol)
	sc.SetLight(math32.Vec3(0, 0, -1))
	faces = sc.Project(cm.ViewProjectionMatrix(), vp, faces[:0])
	tolassert.EqualTol(t, DefaultAmbient, faces[0].Shade, tol)
}

func TestProjectCulling(t *testing.T) {
	cm := camera.New()
	vp := Viewport{Width: 100, Height: 100}

	behind := New(1, []*Cube{NewCube(math32.Vec3(0, 0, 5), math32.Vec3(0, 1, 0), 0)})
	assert.Empty(t, behind.Project(cm.ViewProjectionMatrix(), vp, nil))

	aside := New(1, []*Cube{NewCube(math32.Vec3(50, 0, -5), math32.Vec3(0, 1, 0), 0)})
	assert.Empty(t, aside.Project(cm.ViewProjectionMatrix(), vp, nil))

	inside := New(1, []*Cube{NewCube(math32.Vec3(0, 0, 0), math32.Vec3(0, 1, 0), 0)})
	assert.Empty(t, inside.Project(cm.ViewProjectionMatrix(), vp, nil))
}

func TestProjectSorted(t *testing.T) {
	sc := New(1, DefaultCubes(DefaultPositions, 1))
	sc.Animate(1.3)
	cm := camera.New()
	faces := sc.Project(cm.ViewProjectionMatrix(), Viewport{Width: 640, Height: 480}, nil)
	require.NotEmpty(t, faces)
	for i := 1; i < len(faces); i++ {
		assert.GreaterOrEqual(t, faces[i-1].Depth, faces[i].Depth)
	}
	// a closed cube never shows more than three faces
	counts := map[int]int{}
	for _, f := range faces {
		counts[f.Cube]++
	}
	for ci, n := range counts {
		assert.LessOrEqual(t, n, 3, "cube %d", ci)
	}
}
