// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"

	"cogentcore.org/cubes/math32"
)

// Projections are the kinds of camera projection.
type Projections int32

const (
	// Perspective is a frustum projection with a field of view.
	Perspective Projections = iota

	// Orthographic is a box projection with a fixed view height.
	Orthographic

	// ProjectionsN is the number of projection kinds.
	ProjectionsN
)

var projectionNames = [...]string{"perspective", "orthographic"}

func (p Projections) String() string {
	if p < 0 || p >= ProjectionsN {
		return fmt.Sprintf("Projections(%d)", int32(p))
	}
	return projectionNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p Projections) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Projections) UnmarshalText(text []byte) error {
	for i, nm := range projectionNames {
		if nm == string(text) {
			*p = Projections(i)
			return nil
		}
	}
	return fmt.Errorf("camera: unknown projection %q", text)
}

// Projection default parameters.
const (
	DefaultNear   = 0.1
	DefaultFar    = 100
	DefaultFOV    = math32.Pi / 6
	DefaultAspect = 16.0 / 9.0
	DefaultHeight = 1

	// MinFOV and MaxFOV bound the field of view reachable by [Projection.Zoom].
	MinFOV = 0.1
	MaxFOV = math32.Pi / 4
)

// Projection is the projection policy of a camera: either a perspective
// projection with a mutable field of view, or an orthographic projection
// with a fixed view height, selected by Kind. Both share the near / far
// clip distances and the aspect ratio.
type Projection struct {

	// Kind selects which projection Matrix builds.
	Kind Projections

	// Near is the distance to the near clip plane, > 0.
	Near float32

	// Far is the distance to the far clip plane, > Near.
	Far float32

	// Aspect is the width / height ratio of the view, > 0.
	Aspect float32

	// FOV is the field of view in radians, for [Perspective]:
	// the vertical focal scale is 1 / tan(FOV). Must be in (0, π/2).
	FOV float32

	// Height is the view height in world units, for [Orthographic].
	Height float32

	// initialFOV is the FOV restored by Reset.
	initialFOV float32
}

// NewPerspective returns a perspective projection. It panics if the
// parameters are invalid (see [Projection.Validate]).
func NewPerspective(near, far, fov, aspect float32) Projection {
	p := Projection{Kind: Perspective, Near: near, Far: far, FOV: fov, Aspect: aspect, Height: DefaultHeight, initialFOV: fov}
	p.mustValidate()
	return p
}

// NewOrthographic returns an orthographic projection of the given
// view height. It panics if the parameters are invalid.
func NewOrthographic(near, far, height, aspect float32) Projection {
	p := Projection{Kind: Orthographic, Near: near, Far: far, Height: height, Aspect: aspect, FOV: DefaultFOV, initialFOV: DefaultFOV}
	p.mustValidate()
	return p
}

// Defaults sets the default perspective projection.
func (p *Projection) Defaults() {
	*p = NewPerspective(DefaultNear, DefaultFar, DefaultFOV, DefaultAspect)
}

// Validate returns an error describing the first parameter that
// would make [Projection.Matrix] fail.
func (p *Projection) Validate() error {
	if !(0 < p.Near && p.Near < p.Far) {
		return fmt.Errorf("camera: projection requires 0 < near < far, got near=%g far=%g", p.Near, p.Far)
	}
	if !(p.Aspect > 0) {
		return fmt.Errorf("camera: projection requires aspect > 0, got %g", p.Aspect)
	}
	switch p.Kind {
	case Perspective:
		if !(0 < p.FOV && p.FOV < math32.HalfPi) {
			return fmt.Errorf("camera: perspective requires 0 < fov < π/2 radians, got %g", p.FOV)
		}
	case Orthographic:
		if !(p.Height > 0) {
			return fmt.Errorf("camera: orthographic requires height > 0, got %g", p.Height)
		}
	default:
		return fmt.Errorf("camera: unknown projection kind %v", p.Kind)
	}
	return nil
}

func (p *Projection) mustValidate() {
	if err := p.Validate(); err != nil {
		panic(err)
	}
}

// Matrix returns the projection matrix for the current parameters.
func (p *Projection) Matrix() math32.Matrix4 {
	switch p.Kind {
	case Orthographic:
		return math32.Orthographic(p.Near, p.Far, p.Height*p.Aspect, p.Height)
	default:
		return math32.Perspective(p.Near, p.Far, p.FOV, p.Aspect)
	}
}

// Zoom narrows the field of view by offset radians (a negative offset
// widens it). The change is rejected, leaving the FOV unchanged, if the
// result would fall outside [MinFOV, MaxFOV]. It returns whether the
// FOV changed; orthographic projections never zoom.
func (p *Projection) Zoom(offset float32) bool {
	if p.Kind != Perspective {
		return false
	}
	fov := p.FOV - offset
	if fov > MaxFOV || fov < MinFOV {
		return false
	}
	p.FOV = fov
	return true
}

// SetAspect sets the aspect ratio, for example after a window resize.
// It panics if aspect is not positive.
func (p *Projection) SetAspect(aspect float32) {
	if !(aspect > 0) {
		panic("camera: aspect must be > 0")
	}
	p.Aspect = aspect
}

// Reset restores the field of view the projection was created with.
func (p *Projection) Reset() {
	if p.initialFOV > 0 {
		p.FOV = p.initialFOV
	}
}
