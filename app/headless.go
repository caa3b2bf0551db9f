// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/cubes/camera"
	"golang.org/x/sync/errgroup"
)

// RunHeadless runs the frame loop without a window at the configured
// rate, with the services, until the given number of frames has been
// stepped (0 runs until ctx is done). The camera is only driven by
// remote clients.
func (ac *Context) RunHeadless(ctx context.Context, frames int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return ac.Serve(gctx) })
	g.Go(func() error {
		defer cancel()
		return ac.loop(gctx, frames)
	})
	err := g.Wait()
	slog.Info("headless run done", "frames", ac.Frame, "camera", ac.Camera.String())
	return err
}

func (ac *Context) loop(ctx context.Context, frames int) error {
	tps := ac.Config.Window.TPS
	tick := time.NewTicker(time.Second / time.Duration(tps))
	defer tick.Stop()
	dt := float32(1) / float32(tps)
	var in camera.Input
	for n := 0; frames <= 0 || n < frames; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
		}
		ac.Step(&in, dt)
		if ac.Frame%tps == 0 {
			slog.Debug("frame", "frame", ac.Frame, "faces", len(ac.Faces), "camera", ac.Camera.String())
		}
	}
	return nil
}
