// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/cubes/math32"
)

// Cube is one animated instance of the scene mesh: it sits at Pos
// and spins about Axis at Rate radians per second.
type Cube struct {

	// Pos is the world position of the cube center.
	Pos math32.Vector3

	// Axis is the unit spin axis.
	Axis math32.Vector3

	// Rate is the spin rate in radians per second.
	Rate float32

	// Phase is the spin angle at time 0, in radians.
	Phase float32

	// Scale is the per-axis scale.
	Scale math32.Vector3

	// Angle is the current spin angle, set by Animate.
	Angle float32
}

// NewCube returns a cube at pos spinning about axis, which is normalized.
// A zero axis spins about +Y.
func NewCube(pos, axis math32.Vector3, rate float32) *Cube {
	if axis.LengthSquared() == 0 {
		axis = math32.Vec3(0, 1, 0)
	}
	c := &Cube{Pos: pos, Axis: axis.Normal(), Rate: rate, Scale: math32.Vector3Scalar(1)}
	c.Angle = c.Phase
	return c
}

// Animate sets the spin angle for the given scene time in seconds.
func (c *Cube) Animate(t float32) {
	c.Angle = math32.WrapAngle(c.Phase + c.Rate*t)
}

// Model returns the model matrix: scale, then spin, then move into place,
// that is Translation(Pos) * Rotation(Angle, Axis) * Scaling(Scale).
func (c *Cube) Model() math32.Matrix4 {
	return math32.Identity4().Scale(c.Scale).Rotate(c.Angle, c.Axis).Translate(c.Pos)
}

// DefaultPositions are the cube positions of the default scene.
var DefaultPositions = []math32.Vector3{
	{X: 0, Y: 0, Z: -5},
	{X: 2, Y: 5, Z: -15},
	{X: -1.5, Y: -2.2, Z: -7.5},
	{X: -3.8, Y: -2, Z: -12.3},
	{X: 2.4, Y: -0.4, Z: -8.5},
	{X: -1.7, Y: 3, Z: -10.5},
	{X: 1.3, Y: -2, Z: -7.5},
	{X: 1.5, Y: 2, Z: -7.5},
	{X: 1.5, Y: 0.2, Z: -6.5},
	{X: -1.3, Y: 1, Z: -6.5},
}

// DefaultCubes returns cubes at the given positions, each spinning about
// its own tilted axis, at a rate that grows with its index.
func DefaultCubes(positions []math32.Vector3, rate float32) []*Cube {
	cubes := make([]*Cube, len(positions))
	for i, p := range positions {
		c := NewCube(p, math32.Vec3(1, 0.3, 0.5), rate*float32(i+1)/2)
		c.Phase = math32.DegToRad(20 * float32(i))
		c.Animate(0)
		cubes[i] = c
	}
	return cubes
}
