// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"encoding/json"
	"testing"

	"cogentcore.org/cubes/base/tolassert"
	"cogentcore.org/cubes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsText(t *testing.T) {
	for _, c := range CommandsValues() {
		b, err := c.MarshalText()
		require.NoError(t, err)
		var d Commands
		require.NoError(t, d.UnmarshalText(b))
		assert.Equal(t, c, d)
	}
	assert.Equal(t, "move_forward", MoveForward.String())
	assert.Equal(t, "Commands(99)", Commands(99).String())

	c, err := ParseCommand(" Yaw-Left ")
	assert.NoError(t, err)
	assert.Equal(t, YawLeft, c)

	_, err = ParseCommand("fly")
	assert.Error(t, err)
	_, err = Commands(-1).MarshalText()
	assert.Error(t, err)
}

func TestCommandsJSON(t *testing.T) {
	var msg struct {
		Command Commands `json:"command"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"command":"pitch_down"}`), &msg))
	assert.Equal(t, PitchDown, msg.Command)
	assert.Error(t, json.Unmarshal([]byte(`{"command":"jump"}`), &msg))
}

func TestApply(t *testing.T) {
	cm := New()
	cm.Apply(MoveForward, 1)
	assertVector(t, math32.Vec3(0, 0, -4), cm.Pos)

	cm.Apply(YawLeft, 0.5)
	tolassert.EqualTol(t, math32.Pi+0.5, cm.Yaw, tol)
	cm.Apply(YawRight, 0.5)
	tolassert.EqualTol(t, math32.Pi, cm.Yaw, tol)
	cm.Apply(PitchUp, 0.25)
	tolassert.EqualTol(t, 0.25, cm.Pitch, tol)
	cm.Apply(PitchDown, 0.5)
	tolassert.EqualTol(t, -0.25, cm.Pitch, tol)

	fov := cm.Projection.FOV
	cm.Apply(ZoomIn, 0.2)
	tolassert.EqualTol(t, fov-0.1, cm.Projection.FOV, tol)
	cm.Apply(ZoomOut, 0.2)
	tolassert.EqualTol(t, fov, cm.Projection.FOV, tol)

	cm.Apply(Ascend, 1)
	tolassert.EqualTol(t, 4, cm.Pos.Y, tol)

	cm.Apply(Reset, 1)
	assert.Equal(t, math32.Vector3{}, cm.Pos)
	assert.Equal(t, float32(0), cm.Pitch)
}

func TestUpdate(t *testing.T) {
	cm := New()
	in := &Input{}
	assert.True(t, in.IsZero())
	cm.Update(in, DefaultFrameTime)
	assert.Equal(t, math32.Vector3{}, cm.Pos)

	in.Add(MoveForward)
	in.Add(MoveRight)
	assert.False(t, in.IsZero())
	cm.Update(in, 0.5)
	assertVector(t, math32.Vec3(2, 0, -2), cm.Pos)

	// look deltas do not scale with the frame time
	cm.Reset()
	cm.Update(&Input{LookX: 0.5, LookY: -0.25}, 0.01)
	tolassert.EqualTol(t, math32.Pi+0.5, cm.Yaw, tol)
	tolassert.EqualTol(t, -0.25, cm.Pitch, tol)

	fov := cm.Projection.FOV
	cm.Update(&Input{Zoom: 0.05}, 1)
	tolassert.EqualTol(t, fov-0.05, cm.Projection.FOV, tol)
	cm.Update(&Input{Zoom: 5}, 1)
	tolassert.EqualTol(t, fov-0.05, cm.Projection.FOV, tol)
}
