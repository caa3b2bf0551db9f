// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package remote

import (
	"fmt"

	"cogentcore.org/cubes/camera"
	"cogentcore.org/cubes/math32"
)

// Message commands that are not [camera.Commands].
const (
	// RotateCommand rotates by DX, DY over Time.
	RotateCommand = "rotate"

	// ZoomCommand zooms by Offset radians.
	ZoomCommand = "zoom"
)

// Message is a camera request sent by a client, as in
//
//	{"command":"move_forward","time":0.016}
//	{"command":"rotate","dx":1,"dy":0,"time":0.016}
//	{"command":"zoom","offset":0.05}
//
// Command is a [camera.Commands] name, or one of [RotateCommand] and
// [ZoomCommand]. A zero Time means one frame at 60Hz.
type Message struct {
	Command string  `json:"command"`
	Time    float32 `json:"time,omitempty"`
	DX      float32 `json:"dx,omitempty"`
	DY      float32 `json:"dy,omitempty"`
	Offset  float32 `json:"offset,omitempty"`
}

// Validate returns an error if the message cannot be applied.
func (m *Message) Validate() error {
	if m.Time < 0 || math32.IsNaN(m.Time) {
		return fmt.Errorf("remote: invalid time %g", m.Time)
	}
	switch m.Command {
	case RotateCommand, ZoomCommand:
		return nil
	}
	_, err := camera.ParseCommand(m.Command)
	return err
}

func (m *Message) frameTime() float32 {
	if m.Time == 0 {
		return camera.DefaultFrameTime
	}
	return m.Time
}

// Apply applies the message to the camera. It returns the error of
// [Message.Validate] without changing the camera if it is invalid.
func (m *Message) Apply(cm *camera.Camera) error {
	if err := m.Validate(); err != nil {
		return err
	}
	switch m.Command {
	case RotateCommand:
		cm.Rotate(m.DX, m.DY, m.frameTime())
	case ZoomCommand:
		cm.Zoom(m.Offset)
	default:
		c, _ := camera.ParseCommand(m.Command)
		cm.Apply(c, m.frameTime())
	}
	return nil
}

// Request is a message received from a client.
type Request struct {

	// Client is the id of the sending client.
	Client string

	Message Message
}

// State is the camera state broadcast to clients after a frame.
type State struct {
	Frame          int         `json:"frame"`
	Position       [3]float32  `json:"position"`
	Yaw            float32     `json:"yaw"`
	Pitch          float32     `json:"pitch"`
	FOV            float32     `json:"fov"`
	ViewProjection [16]float32 `json:"view_projection"`
}

// NewState returns the state of the camera at the given frame.
func NewState(frame int, cm *camera.Camera) State {
	vp := cm.ViewProjectionMatrix()
	return State{
		Frame:          frame,
		Position:       [3]float32{cm.Pos.X, cm.Pos.Y, cm.Pos.Z},
		Yaw:            cm.Yaw,
		Pitch:          cm.Pitch,
		FOV:            cm.Projection.FOV,
		ViewProjection: vp,
	}
}

// Reply types.
const (
	HelloReply = "hello"
	StateReply = "state"
	ErrorReply = "error"
)

// Reply is a message sent to a client: a hello with its id on connect,
// a camera state, or an error about a rejected message.
type Reply struct {
	Type   string `json:"type"`
	Client string `json:"client,omitempty"`
	Error  string `json:"error,omitempty"`
	State  *State `json:"state,omitempty"`
}
