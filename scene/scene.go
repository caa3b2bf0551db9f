// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene holds the animated cubes of the demo and projects
// their faces into screen space for drawing.
package scene

import (
	"cogentcore.org/cubes/math32"
)

// DefaultAmbient is the default light level of faces turned away from the light.
const DefaultAmbient = 0.35

// Scene is a set of cubes sharing one mesh, lit by a directional light.
type Scene struct {

	// Mesh is the mesh drawn for every cube.
	Mesh *Mesh

	// Cubes are the cube instances.
	Cubes []*Cube

	// Light is the unit direction towards the light, in world space.
	Light math32.Vector3

	// Ambient is the light level in [0, 1] of unlit faces.
	Ambient float32

	// Time is the animation time in seconds.
	Time float32

	// Paused stops the animation clock.
	Paused bool
}

// New returns a scene of the given cubes sharing a cube mesh of the given size.
func New(size float32, cubes []*Cube) *Scene {
	return &Scene{
		Mesh:    CubeMesh(size),
		Cubes:   cubes,
		Light:   math32.Vec3(0.3, 1, 0.5).Normal(),
		Ambient: DefaultAmbient,
	}
}

// Animate advances the animation clock by dt seconds and updates every cube.
func (sc *Scene) Animate(dt float32) {
	if sc.Paused {
		return
	}
	sc.Time += dt
	for _, c := range sc.Cubes {
		c.Animate(sc.Time)
	}
}

// SetLight sets the light direction, which is normalized.
func (sc *Scene) SetLight(dir math32.Vector3) {
	sc.Light = dir.Normal()
}
