// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs of the cubes demo,
// which are read from TOML or YAML files over the defaults.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/cubes/base/errors"
	"cogentcore.org/cubes/base/iox/tomlx"
	"cogentcore.org/cubes/base/iox/yamlx"
	"cogentcore.org/cubes/base/logx"
	"cogentcore.org/cubes/camera"
	"cogentcore.org/cubes/math32"
	"cogentcore.org/cubes/scene"
)

// Config is the main config struct that contains all of the
// configuration options for the demo. All angles are in radians.
type Config struct {

	// the window options
	Window Window `toml:"window" yaml:"window"`

	// the camera pose and speeds
	Camera Camera `toml:"camera" yaml:"camera"`

	// the camera projection
	Projection Projection `toml:"projection" yaml:"projection"`

	// the animated cubes
	Scene Scene `toml:"scene" yaml:"scene"`

	// the texture and shader files
	Assets Assets `toml:"assets" yaml:"assets"`

	// the websocket control server
	Remote Remote `toml:"remote" yaml:"remote"`

	// the logging options
	Log Log `toml:"log" yaml:"log"`

	// Keys maps key names, as in "W" or "ArrowLeft", to the camera
	// command they issue while held.
	Keys map[string]camera.Commands `toml:"keys" yaml:"keys"`
}

type Window struct {

	// the window title
	Title string `toml:"title" yaml:"title"`

	// the window width in pixels
	Width int `toml:"width" yaml:"width"`

	// the window height in pixels
	Height int `toml:"height" yaml:"height"`

	// the frame loop rate in ticks per second
	TPS int `toml:"tps" yaml:"tps"`

	// the clear color as RGB in [0, 1]
	Background [3]float32 `toml:"background" yaml:"background"`

	// whether the window can be resized
	Resizable bool `toml:"resizable" yaml:"resizable"`
}

type Camera struct {

	// the start position
	Position [3]float32 `toml:"position" yaml:"position"`

	// the start yaw; π looks down -Z
	Yaw float32 `toml:"yaw" yaml:"yaw"`

	// the start pitch, in [-π/2, π/2]
	Pitch float32 `toml:"pitch" yaml:"pitch"`

	// the linear speed in world units per second
	Velocity float32 `toml:"velocity" yaml:"velocity"`

	// the rotation speed in radians per second
	AngularVelocity float32 `toml:"angular_velocity" yaml:"angular_velocity"`

	// the mouse look rotation per pixel of drag
	LookSensitivity float32 `toml:"look_sensitivity" yaml:"look_sensitivity"`

	// the field of view change per wheel notch
	ZoomStep float32 `toml:"zoom_step" yaml:"zoom_step"`
}

type Projection struct {

	// perspective or orthographic
	Kind camera.Projections `toml:"kind" yaml:"kind"`

	// the near clip distance
	Near float32 `toml:"near" yaml:"near"`

	// the far clip distance
	Far float32 `toml:"far" yaml:"far"`

	// the perspective field of view, in (0, π/2)
	FOV float32 `toml:"fov" yaml:"fov"`

	// the orthographic view height in world units
	Height float32 `toml:"height" yaml:"height"`

	// the width / height ratio; 0 follows the window size
	Aspect float32 `toml:"aspect" yaml:"aspect"`
}

type Scene struct {

	// the cube edge length
	CubeSize float32 `toml:"cube_size" yaml:"cube_size"`

	// the spin rate of the first cube, in radians per second;
	// each following cube spins half as fast again
	SpinRate float32 `toml:"spin_rate" yaml:"spin_rate"`

	// the cube positions; empty uses the built in layout
	Positions [][3]float32 `toml:"positions" yaml:"positions"`

	// the direction towards the light
	Light [3]float32 `toml:"light" yaml:"light"`

	// the light level of unlit faces, in [0, 1]
	Ambient float32 `toml:"ambient" yaml:"ambient"`

	// the view distance at which the shader fades into the background; 0 disables fog
	Fog float32 `toml:"fog" yaml:"fog"`
}

type Assets struct {

	// the cube texture image file; empty draws face colors
	Texture string `toml:"texture" yaml:"texture"`

	// the Kage shader file; empty uses the built in shader
	Shader string `toml:"shader" yaml:"shader"`

	// reload the texture and shader when their files change
	Watch bool `toml:"watch" yaml:"watch"`
}

type Remote struct {

	// serve the websocket control channel
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// the address to listen on
	Addr string `toml:"addr" yaml:"addr"`

	// broadcast the camera state every this many frames
	StateEvery int `toml:"state_every" yaml:"state_every"`
}

type Log struct {

	// the log level: debug, info, warn or error
	Level string `toml:"level" yaml:"level"`
}

// Defaults sets every field to its default value.
func (cf *Config) Defaults() {
	cf.Window = Window{Title: "Cubes", Width: 800, Height: 600, TPS: 60, Background: [3]float32{0.2, 0.3, 0.3}, Resizable: true}
	cf.Camera = Camera{
		Yaw:             camera.DefaultYaw,
		Velocity:        camera.DefaultVelocity,
		AngularVelocity: camera.DefaultAngularVelocity,
		LookSensitivity: 0.005,
		ZoomStep:        0.05,
	}
	cf.Projection = Projection{
		Kind:   camera.Perspective,
		Near:   camera.DefaultNear,
		Far:    camera.DefaultFar,
		FOV:    camera.DefaultFOV,
		Height: camera.DefaultHeight,
	}
	cf.Scene = Scene{CubeSize: 1, SpinRate: 0.35, Light: [3]float32{0.3, 1, 0.5}, Ambient: scene.DefaultAmbient, Fog: 30}
	cf.Assets = Assets{}
	cf.Remote = Remote{Addr: "localhost:8423", StateEvery: 1}
	cf.Log = Log{Level: "info"}
	cf.Keys = DefaultKeys()
}

// DefaultKeys returns the default key bindings.
func DefaultKeys() map[string]camera.Commands {
	return map[string]camera.Commands{
		"W":          camera.MoveForward,
		"S":          camera.MoveBackward,
		"A":          camera.MoveLeft,
		"D":          camera.MoveRight,
		"E":          camera.MoveUp,
		"Q":          camera.MoveDown,
		"Space":      camera.Ascend,
		"ShiftLeft":  camera.Descend,
		"ArrowLeft":  camera.YawLeft,
		"ArrowRight": camera.YawRight,
		"ArrowUp":    camera.PitchUp,
		"ArrowDown":  camera.PitchDown,
		"Equal":      camera.ZoomIn,
		"Minus":      camera.ZoomOut,
		"R":          camera.Reset,
	}
}

// New returns a config with the defaults.
func New() *Config {
	cf := &Config{}
	cf.Defaults()
	return cf
}

// Open reads the given file over the current values, as TOML or YAML
// depending on its extension, and validates the result.
func (cf *Config) Open(filename string) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = tomlx.Open(cf, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(cf, filename)
	default:
		return fmt.Errorf("config: unsupported file extension %q (want .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return fmt.Errorf("config: reading %q: %w", filename, err)
	}
	return cf.Validate()
}

// Save writes the config to the given file, as TOML or YAML
// depending on its extension.
func (cf *Config) Save(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(cf, filename)
	case ".yaml", ".yml":
		return yamlx.Save(cf, filename)
	default:
		return fmt.Errorf("config: unsupported file extension %q (want .toml, .yaml or .yml)", ext)
	}
}

// Validate returns an error listing every invalid option, or nil.
func (cf *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}
	if cf.Window.Width <= 0 || cf.Window.Height <= 0 {
		add("window size must be positive, got %dx%d", cf.Window.Width, cf.Window.Height)
	}
	if cf.Window.TPS <= 0 {
		add("window tps must be positive, got %d", cf.Window.TPS)
	}
	if p := cf.Camera.Pitch; p < -math32.HalfPi || p > math32.HalfPi {
		add("camera pitch must be in [-π/2, π/2] radians, got %g", p)
	}
	if cf.Camera.Velocity < 0 || cf.Camera.AngularVelocity < 0 {
		add("camera velocities must not be negative")
	}
	if cf.Projection.Aspect < 0 {
		add("projection aspect must not be negative, got %g", cf.Projection.Aspect)
	}
	proj := cf.projection(1)
	if err := proj.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	if cf.Scene.CubeSize <= 0 {
		add("scene cube_size must be positive, got %g", cf.Scene.CubeSize)
	}
	if cf.Scene.Ambient < 0 || cf.Scene.Ambient > 1 {
		add("scene ambient must be in [0, 1], got %g", cf.Scene.Ambient)
	}
	if math32.Vector3FromValues(cf.Scene.Light[:]...).LengthSquared() == 0 {
		add("scene light direction must not be zero")
	}
	if cf.Remote.Enabled && cf.Remote.Addr == "" {
		add("remote addr must be set when remote is enabled")
	}
	if cf.Remote.StateEvery <= 0 {
		add("remote state_every must be positive, got %d", cf.Remote.StateEvery)
	}
	if _, err := logx.ParseLevel(cf.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("config: %w", err))
	}
	for key, cmd := range cf.Keys {
		if key == "" {
			add("empty key name bound to %v", cmd)
		}
		if cmd < 0 || cmd >= camera.CommandsN {
			add("key %q bound to invalid command %d", key, int32(cmd))
		}
	}
	return errors.Join(errs...)
}

// projection returns the configured projection, with the given aspect
// ratio used when none is configured. It is not validated.
func (cf *Config) projection(windowAspect float32) camera.Projection {
	pc := cf.Projection
	aspect := pc.Aspect
	if aspect == 0 {
		aspect = windowAspect
	}
	return camera.Projection{Kind: pc.Kind, Near: pc.Near, Far: pc.Far, FOV: pc.FOV, Height: pc.Height, Aspect: aspect}
}

// WindowAspect returns the window width / height ratio.
func (cf *Config) WindowAspect() float32 {
	return float32(cf.Window.Width) / float32(cf.Window.Height)
}

// NewCamera returns a camera with the configured projection and pose.
// It panics if the config is invalid: call [Config.Validate] first.
func (cf *Config) NewCamera() *camera.Camera {
	pc := cf.projection(cf.WindowAspect())
	var p camera.Projection
	switch pc.Kind {
	case camera.Orthographic:
		p = camera.NewOrthographic(pc.Near, pc.Far, pc.Height, pc.Aspect)
	default:
		p = camera.NewPerspective(pc.Near, pc.Far, pc.FOV, pc.Aspect)
	}
	cm := camera.NewWithProjection(p)
	cm.Velocity = cf.Camera.Velocity
	cm.AngularVelocity = cf.Camera.AngularVelocity
	cm.SetPose(math32.Vector3FromValues(cf.Camera.Position[:]...), cf.Camera.Yaw, cf.Camera.Pitch)
	return cm
}

// NewScene returns the configured scene.
func (cf *Config) NewScene() *scene.Scene {
	positions := scene.DefaultPositions
	if len(cf.Scene.Positions) > 0 {
		positions = make([]math32.Vector3, len(cf.Scene.Positions))
		for i, p := range cf.Scene.Positions {
			positions[i] = math32.Vector3FromValues(p[:]...)
		}
	}
	sc := scene.New(cf.Scene.CubeSize, scene.DefaultCubes(positions, cf.Scene.SpinRate))
	sc.SetLight(math32.Vector3FromValues(cf.Scene.Light[:]...))
	sc.Ambient = cf.Scene.Ambient
	return sc
}
