// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/cubes/math32"
)

// Vertex is a mesh vertex in model space.
type Vertex struct {

	// Pos is the model space position.
	Pos math32.Vector3

	// UV is the texture coordinate in [0, 1], with V pointing down
	// the image.
	UV math32.Vector2
}

// Face is a quad of a mesh. Its vertices are wound counter-clockwise
// when seen from outside, the side Normal points to.
type Face struct {
	Verts  [4]Vertex
	Normal math32.Vector3

	// Color is used when no texture is bound.
	Color color.RGBA
}

// Mesh is a list of quad faces.
type Mesh struct {
	Faces []Face
}

// FaceColors are the untextured colors of the cube faces,
// in +Z, -Z, +X, -X, +Y, -Y order.
var FaceColors = [6]color.RGBA{
	{R: 0xe0, G: 0x5a, B: 0x47, A: 0xff},
	{R: 0x4f, G: 0x9d, B: 0x69, A: 0xff},
	{R: 0x3b, G: 0x6e, B: 0xc7, A: 0xff},
	{R: 0xe8, G: 0xb9, B: 0x3c, A: 0xff},
	{R: 0xa0, G: 0x5c, B: 0xc4, A: 0xff},
	{R: 0x4c, G: 0xb8, B: 0xc4, A: 0xff},
}

// quad corner texture coordinates: bottom-left, bottom-right,
// top-right, top-left.
var quadUV = [4]math32.Vector2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

// CubeMesh returns an axis aligned cube centered on the origin
// with edges of the given size.
func CubeMesh(size float32) *Mesh {
	h := size / 2
	corners := [6][4]math32.Vector3{
		{{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}},
		{{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h}},
		{{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h}},
		{{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h}},
		{{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}},
		{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h}},
	}
	normals := [6]math32.Vector3{{Z: 1}, {Z: -1}, {X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	ms := &Mesh{Faces: make([]Face, 6)}
	for i := range ms.Faces {
		f := &ms.Faces[i]
		f.Normal = normals[i]
		f.Color = FaceColors[i]
		for j := range f.Verts {
			f.Verts[j] = Vertex{Pos: corners[i][j], UV: quadUV[j]}
		}
	}
	return ms
}
