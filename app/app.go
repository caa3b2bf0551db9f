// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app ties the demo together: the [Context] owns the camera,
// the scene, the assets and the optional services, and advances them
// one frame at a time with [Context.Step]. It does not depend on any
// window system, so it runs the same headless and under the renderer.
package app

import (
	"context"
	"log/slog"

	"cogentcore.org/cubes/assets"
	"cogentcore.org/cubes/base/errors"
	"cogentcore.org/cubes/camera"
	"cogentcore.org/cubes/config"
	"cogentcore.org/cubes/math32"
	"cogentcore.org/cubes/remote"
	"cogentcore.org/cubes/scene"
	"golang.org/x/sync/errgroup"
)

// CubeTexture is the library name of the cube texture.
const CubeTexture = "cube"

// Context is the state of a running demo. It is owned by the frame
// loop goroutine; the services only talk to it through channels that
// Step drains.
type Context struct {
	Config *config.Config
	Camera *camera.Camera
	Scene  *scene.Scene
	Assets *assets.Library

	// Remote is the control server, nil unless enabled.
	Remote *remote.Server

	// Watcher reports asset file changes, nil unless enabled.
	Watcher *assets.Watcher

	// Viewport is the target size in pixels.
	Viewport scene.Viewport

	// Frame counts the steps taken.
	Frame int

	// ViewProjection is the camera view-projection matrix of the last step.
	ViewProjection math32.Matrix4

	// Faces are the projected faces of the last step, back to front.
	Faces []scene.ScreenFace
}

// New returns a context for the given config, which is validated.
// Assets that fail to load are logged and left unbound; a watcher
// that cannot start is logged and disabled.
func New(cf *config.Config) (*Context, error) {
	if err := cf.Validate(); err != nil {
		return nil, err
	}
	ac := &Context{
		Config: cf,
		Camera: cf.NewCamera(),
		Scene:  cf.NewScene(),
		Assets: assets.NewLibrary(),
	}
	ac.Viewport = scene.Viewport{Width: float32(cf.Window.Width), Height: float32(cf.Window.Height)}
	if cf.Assets.Texture != "" {
		ac.Assets.AddTexture(CubeTexture, cf.Assets.Texture)
	}
	ac.Assets.SetShader(cf.Assets.Shader)
	if cf.Assets.Watch {
		if paths := ac.Assets.Paths(); len(paths) > 0 {
			w, err := assets.NewWatcher(paths...)
			if errors.Log(err) == nil {
				ac.Watcher = w
			}
		}
	}
	if cf.Remote.Enabled {
		ac.Remote = remote.NewServer()
	}
	ac.ViewProjection = ac.Camera.ViewProjectionMatrix()
	return ac, nil
}

// Resize sets the viewport size, and the projection aspect ratio
// unless one is configured.
func (ac *Context) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	ac.Viewport = scene.Viewport{Width: float32(width), Height: float32(height)}
	if ac.Config.Projection.Aspect == 0 {
		ac.Camera.Projection.SetAspect(float32(width) / float32(height))
	}
}

// Step advances the demo by one frame of dt seconds: it reloads changed
// assets, applies remote requests and the input to the camera, animates
// the scene, and computes the matrices and faces to draw.
func (ac *Context) Step(in *camera.Input, dt float32) {
	ac.drainWatcher()
	ac.drainRemote()
	ac.Camera.Update(in, dt)
	ac.Scene.Animate(dt)
	ac.ViewProjection = ac.Camera.ViewProjectionMatrix()
	ac.Faces = ac.Scene.Project(ac.ViewProjection, ac.Viewport, ac.Faces[:0])
	ac.Frame++
	if ac.Remote != nil && ac.Frame%ac.Config.Remote.StateEvery == 0 {
		ac.Remote.Broadcast(remote.NewState(ac.Frame, ac.Camera))
	}
}

func (ac *Context) drainWatcher() {
	if ac.Watcher == nil {
		return
	}
	for {
		select {
		case p := <-ac.Watcher.Changes:
			if ac.Assets.Reload(p) {
				slog.Info("reloaded asset", "path", p)
			}
		default:
			return
		}
	}
}

func (ac *Context) drainRemote() {
	if ac.Remote == nil {
		return
	}
	for {
		select {
		case r := <-ac.Remote.Requests:
			if err := r.Message.Apply(ac.Camera); err != nil {
				slog.Warn("rejected remote request", "client", r.Client, "err", err)
			}
		default:
			return
		}
	}
}

// Serve runs the enabled services until ctx is done or one of them fails.
func (ac *Context) Serve(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	if ac.Watcher != nil {
		g.Go(func() error { return ac.Watcher.Run(gctx) })
	}
	if ac.Remote != nil {
		g.Go(func() error { return ac.Remote.ListenAndServe(gctx, ac.Config.Remote.Addr) })
	}
	return g.Wait()
}

// Close releases the services.
func (ac *Context) Close() error {
	var errs []error
	if ac.Watcher != nil {
		errs = append(errs, ac.Watcher.Close())
	}
	if ac.Remote != nil {
		ac.Remote.Close()
	}
	return errors.Join(errs...)
}
