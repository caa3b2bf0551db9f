// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

// Input is the camera input gathered during one frame,
// independent of the device it came from.
type Input struct {

	// Commands are the commands active this frame, such as held keys.
	// They are applied in order, each for the full frame time.
	Commands []Commands

	// LookX and LookY are pointer look deltas, applied as
	// Rotate(LookX, LookY, 1) so they do not depend on the frame time.
	LookX, LookY float32

	// Zoom is a field of view offset in radians, as from a scroll wheel.
	Zoom float32
}

// IsZero returns true if the input has no effect.
func (in *Input) IsZero() bool {
	return len(in.Commands) == 0 && in.LookX == 0 && in.LookY == 0 && in.Zoom == 0
}

// Add appends a command.
func (in *Input) Add(c Commands) {
	in.Commands = append(in.Commands, c)
}

// Update applies the input for a frame of dt seconds:
// the commands in order, then the look deltas, then the zoom.
func (cm *Camera) Update(in *Input, dt float32) {
	for _, c := range in.Commands {
		cm.Apply(c, dt)
	}
	if in.LookX != 0 || in.LookY != 0 {
		cm.Rotate(in.LookX, in.LookY, 1)
	}
	if in.Zoom != 0 {
		cm.Zoom(in.Zoom)
	}
}
