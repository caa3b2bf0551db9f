// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"cogentcore.org/cubes/math32"
)

// Uniforms are the named uniform values passed to a shader program,
// in the forms the Kage runtime accepts: float32 for float, int32 for
// int and bool, and []float32 for vectors and matrices. Matrices are
// column-major, as [math32.Matrix4.Slice] returns them.
type Uniforms map[string]any

// SetMatrix4 sets a mat4 uniform. The matrix is copied.
func (u Uniforms) SetMatrix4(name string, m math32.Matrix4) {
	vals := make([]float32, len(m))
	copy(vals, m.Slice())
	u[name] = vals
}

// SetVector4 sets a vec4 uniform.
func (u Uniforms) SetVector4(name string, v math32.Vector4) {
	u[name] = []float32{v.X, v.Y, v.Z, v.W}
}

// SetFloat sets a float uniform.
func (u Uniforms) SetFloat(name string, v float32) {
	u[name] = v
}

// SetInt sets an int uniform.
func (u Uniforms) SetInt(name string, v int) {
	u[name] = int32(v)
}

// SetBool sets a bool uniform, which Kage receives as an int of 0 or 1.
func (u Uniforms) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	u[name] = i
}
