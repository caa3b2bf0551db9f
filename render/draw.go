// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image/color"

	"cogentcore.org/cubes/math32"
	"cogentcore.org/cubes/scene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// maxVertices is the vertex count a single draw call can index with uint16.
const maxVertices = 1 << 16

// drawFaces draws the faces textured, through the shader when it compiled,
// or in their face colors when no texture is bound.
func (g *Game) drawFaces(screen *ebiten.Image) {
	src := g.white
	textured := g.texture != nil
	if textured {
		src = g.texture
	}
	size := src.Bounds().Size()
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	for i := range g.ctx.Faces {
		if len(g.vertices)+4 > maxVertices {
			g.flush(screen, src, textured)
		}
		f := &g.ctx.Faces[i]
		r, gr, b := float32(1), float32(1), float32(1)
		if !textured {
			r, gr, b = float32(f.Color.R)/255, float32(f.Color.G)/255, float32(f.Color.B)/255
		}
		base := uint16(len(g.vertices))
		for _, v := range f.Verts {
			sx, sy := float32(1), float32(1)
			if textured {
				sx, sy = v.UV.X*float32(size.X), v.UV.Y*float32(size.Y)
			}
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: v.X, DstY: v.Y,
				SrcX: sx, SrcY: sy,
				ColorR: r * f.Shade, ColorG: gr * f.Shade, ColorB: b * f.Shade, ColorA: 1,
			})
		}
		g.indices = append(g.indices, base, base+1, base+2, base, base+2, base+3)
	}
	g.flush(screen, src, textured)
}

func (g *Game) flush(screen, src *ebiten.Image, textured bool) {
	if len(g.indices) == 0 {
		return
	}
	if textured && g.program != nil {
		g.program.SetCamera(g.ctx.ViewProjection)
		g.program.Uniforms.SetFloat("Fog", g.ctx.Config.Scene.Fog)
		bg := g.background()
		g.program.Uniforms.SetVector4("Background", math32.Vec4(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1))
		op := &ebiten.DrawTrianglesShaderOptions{Uniforms: g.program.Uniforms}
		op.Images[0] = src
		screen.DrawTrianglesShader(g.vertices, g.indices, g.program.Shader, op)
	} else {
		screen.DrawTriangles(g.vertices, g.indices, src, &ebiten.DrawTrianglesOptions{})
	}
	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
}

// drawWireframe strokes the face edges.
func (g *Game) drawWireframe(screen *ebiten.Image) {
	for i := range g.ctx.Faces {
		f := &g.ctx.Faces[i]
		c := shaded(f)
		for j := range f.Verts {
			a, b := f.Verts[j], f.Verts[(j+1)%len(f.Verts)]
			vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, 1, c, true)
		}
	}
}

func shaded(f *scene.ScreenFace) color.RGBA {
	s := f.Shade
	return color.RGBA{R: uint8(float32(f.Color.R) * s), G: uint8(float32(f.Color.G) * s), B: uint8(float32(f.Color.B) * s), A: 0xff}
}
