// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render is the window shell of the demo, built on ebiten:
// it polls the keyboard and mouse into camera input, steps the
// [app.Context] once per tick, and draws the projected cube faces
// with the cube texture and shader.
package render

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/cubes/app"
	"cogentcore.org/cubes/base/errors"
	"cogentcore.org/cubes/camera"
	"cogentcore.org/cubes/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/sync/errgroup"
)

// Game implements [ebiten.Game] for an [app.Context].
type Game struct {
	ctx *app.Context

	bindings []binding

	// texture is the cube texture, nil when unbound.
	texture *ebiten.Image

	// white is the source of untextured faces.
	white *ebiten.Image

	// program is the compiled shader, nil when it failed to compile.
	program *Program

	assetsVersion int

	// Wireframe draws face edges only.
	Wireframe bool

	// HUD shows the camera state.
	HUD bool

	dragging   bool
	lastCursor image.Point
	width      int
	height     int
	input      camera.Input
	done       <-chan struct{}

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewGame returns a game drawing the given context.
func NewGame(ac *app.Context) *Game {
	g := &Game{ctx: ac, HUD: true, assetsVersion: -1}
	g.bindings = parseBindings(ac.Config.Keys)
	g.white = ebiten.NewImage(3, 3)
	g.white.Fill(color.White)
	return g
}

// syncAssets uploads the texture and compiles the shader when the
// asset library changed.
func (g *Game) syncAssets() {
	lb := g.ctx.Assets
	if lb.Version == g.assetsVersion {
		return
	}
	g.assetsVersion = lb.Version
	if g.texture != nil {
		g.texture.Deallocate()
		g.texture = nil
	}
	if tx := lb.Texture(app.CubeTexture); tx != nil {
		g.texture = ebiten.NewImageFromImage(tx.Image)
	}
	if g.program != nil {
		g.program.Dispose()
		g.program = nil
	}
	if lb.Shader != nil {
		pr, err := NewProgram(lb.Shader)
		if errors.Log(err) == nil {
			g.program = pr
		}
	}
}

// Update polls the input and steps the context. Escape, or the end of
// the run context, ends the game.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.done != nil {
		select {
		case <-g.done:
			return ebiten.Termination
		default:
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Wireframe = !g.Wireframe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.HUD = !g.HUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.ctx.Scene.Paused = !g.ctx.Scene.Paused
	}
	g.syncAssets()
	g.pollInput()
	g.ctx.Step(&g.input, 1/float32(ebiten.TPS()))
	return nil
}

func (g *Game) pollInput() {
	in := &g.input
	in.Commands = in.Commands[:0]
	in.LookX, in.LookY, in.Zoom = 0, 0, 0
	for _, b := range g.bindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Add(b.cmd)
		}
	}
	cc := g.ctx.Config.Camera
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			// dragging right turns right, dragging up looks up
			in.LookX = -float32(x-g.lastCursor.X) * cc.LookSensitivity
			in.LookY = -float32(y-g.lastCursor.Y) * cc.LookSensitivity
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastCursor = image.Pt(x, y)
	_, wy := ebiten.Wheel()
	in.Zoom = float32(wy) * cc.ZoomStep
}

// Layout tracks the window size, which is used as the render size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.ctx.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) background() color.RGBA {
	bg := g.ctx.Config.Window.Background
	return color.RGBA{R: unit8(bg[0]), G: unit8(bg[1]), B: unit8(bg[2]), A: 0xff}
}

func unit8(v float32) uint8 {
	return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
}

// Draw draws the faces of the last step, back to front.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background())
	if g.Wireframe {
		g.drawWireframe(screen)
	} else {
		g.drawFaces(screen)
	}
	if g.HUD {
		cm := g.ctx.Camera
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nfaces %d  fps %.0f\nWASD EQ move  arrows look  +/- zoom  R reset  F1 wireframe  P pause  Esc quit",
			cm.String(), len(g.ctx.Faces), ebiten.ActualFPS()))
	}
}

// Run opens the window and runs the game, with the context services,
// until the window is closed, Escape is pressed, or ctx is done.
func Run(ctx context.Context, ac *app.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return ac.Serve(gctx) })

	wc := ac.Config.Window
	ebiten.SetWindowTitle(wc.Title)
	ebiten.SetWindowSize(wc.Width, wc.Height)
	ebiten.SetTPS(wc.TPS)
	if wc.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	g := NewGame(ac)
	g.done = gctx.Done()
	err := ebiten.RunGame(g)
	cancel()
	return errors.Join(err, eg.Wait())
}
