// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/cubes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectionValidate(t *testing.T) {
	var p Projection
	p.Defaults()
	assert.NoError(t, p.Validate())

	bad := p
	bad.Near = 0
	assert.Error(t, bad.Validate())
	bad = p
	bad.Far = p.Near
	assert.Error(t, bad.Validate())
	bad = p
	bad.Aspect = -1
	assert.Error(t, bad.Validate())
	bad = p
	bad.FOV = math32.HalfPi
	assert.Error(t, bad.Validate())
	bad = p
	bad.Kind = Orthographic
	bad.Height = 0
	assert.Error(t, bad.Validate())
	bad = p
	bad.Kind = ProjectionsN
	assert.Error(t, bad.Validate())

	assert.Panics(t, func() { NewPerspective(0.1, 100, 2, 1) })
	assert.Panics(t, func() { NewOrthographic(1, 0.5, 1, 1) })
}

func TestProjectionMatrix(t *testing.T) {
	p := NewPerspective(0.1, 100, math32.Pi/6, 16.0/9.0)
	assert.Equal(t, math32.Perspective(0.1, 100, math32.Pi/6, 16.0/9.0), p.Matrix())

	o := NewOrthographic(0.1, 100, 1, 2)
	assert.Equal(t, math32.Orthographic(0.1, 100, 2, 1), o.Matrix())
}

func TestProjectionZoomBounds(t *testing.T) {
	p := NewPerspective(0.1, 100, 0.5, 1)
	assert.True(t, p.Zoom(0.3))
	assert.Equal(t, float32(0.5)-0.3, p.FOV)
	assert.False(t, p.Zoom(0.15))
	assert.True(t, p.Zoom(-0.5))
	assert.False(t, p.Zoom(-0.1))
	p.Reset()
	assert.Equal(t, float32(0.5), p.FOV)

	p.SetAspect(2)
	assert.Equal(t, float32(2), p.Aspect)
	assert.Panics(t, func() { p.SetAspect(0) })
}

func TestProjectionsText(t *testing.T) {
	var k Projections
	require.NoError(t, k.UnmarshalText([]byte("orthographic")))
	assert.Equal(t, Orthographic, k)
	b, err := Perspective.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "perspective", string(b))
	assert.Error(t, k.UnmarshalText([]byte("fisheye")))
	assert.Equal(t, "Projections(7)", Projections(7).String())
}
