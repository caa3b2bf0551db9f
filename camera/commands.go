// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"fmt"
	"strings"
)

// Commands are the discrete camera commands that keys, remote clients
// and scripts can issue. Their text form is the snake_case name,
// as in "move_forward".
type Commands int32

const (
	MoveForward Commands = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Ascend
	Descend

	// YawLeft turns left, increasing the yaw.
	YawLeft

	// YawRight turns right, decreasing the yaw.
	YawRight

	// PitchUp tilts up, increasing the pitch.
	PitchUp

	// PitchDown tilts down, decreasing the pitch.
	PitchDown

	// ZoomIn narrows the field of view at [DefaultZoomRate].
	ZoomIn

	// ZoomOut widens the field of view.
	ZoomOut

	// Reset restores the default pose and field of view.
	Reset

	CommandsN
)

// DefaultZoomRate is the field of view change, in radians per second,
// of the [ZoomIn] and [ZoomOut] commands.
const DefaultZoomRate = 0.5

var commandNames = [...]string{
	"move_forward", "move_backward", "move_left", "move_right",
	"move_up", "move_down", "ascend", "descend",
	"yaw_left", "yaw_right", "pitch_up", "pitch_down",
	"zoom_in", "zoom_out", "reset",
}

func (c Commands) String() string {
	if c < 0 || c >= CommandsN {
		return fmt.Sprintf("Commands(%d)", int32(c))
	}
	return commandNames[c]
}

// ParseCommand returns the command with the given name,
// ignoring case and treating '-' as '_'.
func ParseCommand(s string) (Commands, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, nm := range commandNames {
		if nm == s {
			return Commands(i), nil
		}
	}
	return 0, fmt.Errorf("camera: unknown command %q", s)
}

// CommandsValues returns all commands in order.
func CommandsValues() []Commands {
	cs := make([]Commands, CommandsN)
	for i := range cs {
		cs[i] = Commands(i)
	}
	return cs
}

// MarshalText implements [encoding.TextMarshaler].
func (c Commands) MarshalText() ([]byte, error) {
	if c < 0 || c >= CommandsN {
		return nil, fmt.Errorf("camera: invalid command %d", int32(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Commands) UnmarshalText(text []byte) error {
	v, err := ParseCommand(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Apply executes the command for a frame of dt seconds.
func (cm *Camera) Apply(c Commands, dt float32) {
	switch c {
	case MoveForward:
		cm.MoveForward(dt)
	case MoveBackward:
		cm.MoveBackward(dt)
	case MoveLeft:
		cm.MoveLeft(dt)
	case MoveRight:
		cm.MoveRight(dt)
	case MoveUp:
		cm.MoveUp(dt)
	case MoveDown:
		cm.MoveDown(dt)
	case Ascend:
		cm.Ascend(dt)
	case Descend:
		cm.Descend(dt)
	case YawLeft:
		cm.Rotate(1, 0, dt)
	case YawRight:
		cm.Rotate(-1, 0, dt)
	case PitchUp:
		cm.Rotate(0, 1, dt)
	case PitchDown:
		cm.Rotate(0, -1, dt)
	case ZoomIn:
		cm.Zoom(DefaultZoomRate * dt)
	case ZoomOut:
		cm.Zoom(-DefaultZoomRate * dt)
	case Reset:
		cm.Reset()
	}
}
