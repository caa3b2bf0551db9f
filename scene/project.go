// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cmp"
	"image/color"
	"slices"

	"cogentcore.org/cubes/math32"
)

// Viewport is the size of the target image in pixels.
type Viewport struct {
	Width, Height float32
}

// ScreenVertex is a projected vertex.
type ScreenVertex struct {

	// X and Y are pixel coordinates, with Y pointing down.
	X, Y float32

	// Depth is the normalized device z, in [-1, 1] from near to far.
	Depth float32

	// W is the clip space w, the view distance for a perspective projection.
	W float32

	// UV is the texture coordinate.
	UV math32.Vector2
}

// ScreenFace is a projected front facing quad.
type ScreenFace struct {
	Verts [4]ScreenVertex

	// Depth is the mean normalized device z of the vertices.
	Depth float32

	// Shade is the light level in [0, 1].
	Shade float32

	// Color is the untextured face color.
	Color color.RGBA

	// Cube and Face index the cube and mesh face the quad came from.
	Cube, Face int
}

// ToScreen maps normalized device coordinates to pixel coordinates.
func (vp Viewport) ToScreen(ndc math32.Vector3) (x, y float32) {
	return (ndc.X + 1) / 2 * vp.Width, (1 - ndc.Y) / 2 * vp.Height
}

// Project appends to dst the visible faces of every cube, as seen through
// the given view-projection matrix, sorted back to front for painting.
// Faces are dropped when any vertex is behind the near plane, when they
// lie entirely outside one side of the view volume, or when they face away
// from the camera.
func (sc *Scene) Project(viewProj math32.Matrix4, vp Viewport, dst []ScreenFace) []ScreenFace {
	start := len(dst)
	for ci, c := range sc.Cubes {
		model := c.Model()
		mvp := viewProj.Mul(model)
		normals := math32.Matrix3FromMatrix4(&model)
		for fi := range sc.Mesh.Faces {
			f := &sc.Mesh.Faces[fi]
			sf, ok := projectFace(f, &mvp, vp)
			if !ok {
				continue
			}
			n := normals.MulVector3(f.Normal)
			if n.LengthSquared() > 0 {
				n = n.Normal()
			}
			sf.Shade = sc.shade(n)
			sf.Color = f.Color
			sf.Cube = ci
			sf.Face = fi
			dst = append(dst, sf)
		}
	}
	slices.SortStableFunc(dst[start:], func(a, b ScreenFace) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return dst
}

func (sc *Scene) shade(n math32.Vector3) float32 {
	d := math32.Max(0, n.Dot(sc.Light))
	return sc.Ambient + (1-sc.Ambient)*d
}

func projectFace(f *Face, mvp *math32.Matrix4, vp Viewport) (ScreenFace, bool) {
	var sf ScreenFace
	var clip [4]math32.Vector4
	var ndc [4]math32.Vector2
	var out [6]int
	for i, v := range f.Verts {
		c := mvp.MulVector4(math32.Vector4FromVector3(v.Pos, 1))
		if c.W <= 0 || c.Z < -c.W {
			return sf, false
		}
		clip[i] = c
		countOutside(c, &out)
	}
	for _, n := range out {
		if n == len(f.Verts) {
			return sf, false
		}
	}
	for i, c := range clip {
		p := c.PerspDiv()
		ndc[i] = math32.Vec2(p.X, p.Y)
		x, y := vp.ToScreen(p)
		sf.Verts[i] = ScreenVertex{X: x, Y: y, Depth: p.Z, W: c.W, UV: f.Verts[i].UV}
		sf.Depth += p.Z
	}
	sf.Depth /= float32(len(f.Verts))
	// counter-clockwise in device space means front facing
	area := ndc[1].Sub(ndc[0]).Cross(ndc[2].Sub(ndc[0])) + ndc[2].Sub(ndc[0]).Cross(ndc[3].Sub(ndc[0]))
	if area <= 0 {
		return sf, false
	}
	return sf, true
}

// countOutside counts, per clip plane, the vertices outside it.
func countOutside(c math32.Vector4, out *[6]int) {
	if c.X < -c.W {
		out[0]++
	}
	if c.X > c.W {
		out[1]++
	}
	if c.Y < -c.W {
		out[2]++
	}
	if c.Y > c.W {
		out[3]++
	}
	if c.Z < -c.W {
		out[4]++
	}
	if c.Z > c.W {
		out[5]++
	}
}
