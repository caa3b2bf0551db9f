// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a first-person fly camera, driven by yaw and
// pitch angles and a position, that produces the view and projection
// matrices used to render a scene.
package camera

import (
	"fmt"

	"cogentcore.org/cubes/math32"
)

// Camera motion defaults.
const (
	// DefaultVelocity is the default linear speed in world units per second.
	DefaultVelocity = 4

	// DefaultAngularVelocity is the default rotation speed in radians per second.
	DefaultAngularVelocity = 1

	// DefaultYaw makes the default camera look down -Z.
	DefaultYaw = math32.Pi

	// DefaultFrameTime is the time step in seconds of one frame at 60Hz,
	// for callers that have no measured frame time.
	DefaultFrameTime = 1.0 / 60.0
)

// Camera is a first-person fly camera. Its orientation is given by Yaw
// and Pitch, from which the front, right and up directions are derived
// on demand. Yaw is kept in [0, 2π) and Pitch in [-π/2, π/2].
// Use [New] or [Camera.Defaults] to get a usable camera.
//
// A Camera is not safe for concurrent use: it is owned by the frame loop.
type Camera struct {

	// Pos is the camera position in world space.
	Pos math32.Vector3

	// Yaw is the rotation about the world up axis, in radians.
	// At yaw π the camera looks down -Z.
	Yaw float32

	// Pitch is the elevation angle above the horizontal plane, in radians.
	Pitch float32

	// Roll is reserved and always 0: the camera never rolls.
	Roll float32

	// Velocity is the linear speed in world units per second.
	Velocity float32

	// AngularVelocity is the rotation speed in radians per second.
	AngularVelocity float32

	// Projection is the projection policy.
	Projection Projection
}

// New returns a camera in the default pose, with the default
// perspective projection.
func New() *Camera {
	cm := &Camera{}
	cm.Defaults()
	return cm
}

// NewWithProjection returns a camera in the default pose with the given projection.
func NewWithProjection(p Projection) *Camera {
	cm := New()
	cm.Projection = p
	return cm
}

// Defaults sets the default pose, speeds and projection.
func (cm *Camera) Defaults() {
	cm.Velocity = DefaultVelocity
	cm.AngularVelocity = DefaultAngularVelocity
	cm.Projection.Defaults()
	cm.DefaultPose()
}

// DefaultPose puts the camera at the origin looking down -Z.
func (cm *Camera) DefaultPose() {
	cm.Pos = math32.Vector3{}
	cm.Yaw = DefaultYaw
	cm.Pitch = 0
	cm.Roll = 0
}

// SetPose sets the position and orientation, wrapping yaw and clamping pitch.
func (cm *Camera) SetPose(pos math32.Vector3, yaw, pitch float32) {
	cm.Pos = pos
	cm.Yaw = math32.WrapAngle(yaw)
	cm.Pitch = math32.Clamp(pitch, -math32.HalfPi, math32.HalfPi)
}

// Front returns the unit direction the camera looks along:
// (sin yaw cos pitch, sin pitch, cos yaw cos pitch).
func (cm *Camera) Front() math32.Vector3 {
	sy, cy := math32.Sincos(cm.Yaw)
	sp, cp := math32.Sincos(cm.Pitch)
	return math32.Vec3(sy*cp, sp, cy*cp)
}

// Right returns the horizontal unit direction to the right of the camera:
// (-cos yaw, 0, sin yaw).
func (cm *Camera) Right() math32.Vector3 {
	sy, cy := math32.Sincos(cm.Yaw)
	return math32.Vec3(-cy, 0, sy)
}

// Up returns the camera up direction, right × front.
func (cm *Camera) Up() math32.Vector3 {
	return cm.Right().Cross(cm.Front())
}

func (cm *Camera) move(dir math32.Vector3, dt float32) {
	cm.Pos.SetAdd(dir.MulScalar(cm.Velocity * dt))
}

// MoveForward moves along the front direction for dt seconds.
func (cm *Camera) MoveForward(dt float32) { cm.move(cm.Front(), dt) }

// MoveBackward moves against the front direction for dt seconds.
func (cm *Camera) MoveBackward(dt float32) { cm.move(cm.Front().Negate(), dt) }

// MoveRight moves along the right direction for dt seconds.
func (cm *Camera) MoveRight(dt float32) { cm.move(cm.Right(), dt) }

// MoveLeft moves against the right direction for dt seconds.
func (cm *Camera) MoveLeft(dt float32) { cm.move(cm.Right().Negate(), dt) }

// MoveUp moves along the camera up direction for dt seconds,
// which tilts with the pitch.
func (cm *Camera) MoveUp(dt float32) { cm.move(cm.Up(), dt) }

// MoveDown moves against the camera up direction for dt seconds.
func (cm *Camera) MoveDown(dt float32) { cm.move(cm.Up().Negate(), dt) }

// Ascend moves straight up the world Y axis for dt seconds,
// regardless of orientation.
func (cm *Camera) Ascend(dt float32) { cm.move(math32.Vec3(0, 1, 0), dt) }

// Descend moves straight down the world Y axis for dt seconds.
func (cm *Camera) Descend(dt float32) { cm.move(math32.Vec3(0, -1, 0), dt) }

// Rotate turns the camera by dx in yaw and dy in pitch, both scaled
// by AngularVelocity * dt. Yaw wraps into [0, 2π); pitch is clamped
// to [-π/2, π/2].
func (cm *Camera) Rotate(dx, dy, dt float32) {
	s := cm.AngularVelocity * dt
	cm.Yaw = math32.WrapAngle(cm.Yaw + dx*s)
	cm.Pitch = math32.Clamp(cm.Pitch+dy*s, -math32.HalfPi, math32.HalfPi)
}

// Zoom narrows the field of view by offset radians; see [Projection.Zoom].
func (cm *Camera) Zoom(offset float32) bool {
	return cm.Projection.Zoom(offset)
}

// Reset restores the default pose and the initial field of view.
// Speeds are left unchanged.
func (cm *Camera) Reset() {
	cm.DefaultPose()
	cm.Projection.Reset()
}

// ViewMatrix returns the world to camera transform:
// LookAt(front, right, up) * Translation(-Pos).
func (cm *Camera) ViewMatrix() math32.Matrix4 {
	return math32.ViewMatrix(cm.Pos, cm.Front(), cm.Right(), cm.Up())
}

// ProjectionMatrix returns the camera to clip space transform.
func (cm *Camera) ProjectionMatrix() math32.Matrix4 {
	return cm.Projection.Matrix()
}

// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
func (cm *Camera) ViewProjectionMatrix() math32.Matrix4 {
	return cm.ProjectionMatrix().Mul(cm.ViewMatrix())
}

func (cm *Camera) String() string {
	return fmt.Sprintf("Camera{Pos: %v, Yaw: %.4g, Pitch: %.4g, FOV: %.4g}", cm.Pos, cm.Yaw, cm.Pitch, cm.Projection.FOV)
}
