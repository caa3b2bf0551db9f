// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cubes flies a camera around a field of spinning textured
// cubes. The camera is driven from the keyboard and mouse, and from
// websocket clients when the remote server is enabled.
//
//	cubes [-config cubes.toml] [-headless] [-frames n] [-v] [-save out.toml]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/cubes/app"
	"cogentcore.org/cubes/base/errors"
	"cogentcore.org/cubes/base/logx"
	"cogentcore.org/cubes/config"
	"cogentcore.org/cubes/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cubes:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile = flag.String("config", "", "the TOML or YAML config file to read")
		headless   = flag.Bool("headless", false, "run without a window")
		frames     = flag.Int("frames", 0, "the number of frames to run headless, 0 to run until interrupted")
		verbose    = flag.Bool("v", false, "log at debug level")
		save       = flag.String("save", "", "write the effective config to this file and exit")
	)
	flag.Parse()

	logx.SetDefaultLogger(os.Stderr)
	cf := config.New()
	if *configFile != "" {
		if err := cf.Open(*configFile); err != nil {
			return err
		}
	}
	if *verbose {
		cf.Log.Level = "debug"
	}
	lvl, err := logx.ParseLevel(cf.Log.Level)
	if err != nil {
		return err
	}
	logx.UserLevel.Set(lvl)

	if *save != "" {
		return cf.Save(*save)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ac, err := app.New(cf)
	if err != nil {
		return err
	}
	defer func() { errors.Log(ac.Close()) }()
	slog.Debug("starting", "headless", *headless, "remote", cf.Remote.Enabled, "camera", ac.Camera.String())
	if *headless {
		return ac.RunHeadless(ctx, *frames)
	}
	return render.Run(ctx, ac)
}
