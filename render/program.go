// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"

	"cogentcore.org/cubes/assets"
	"cogentcore.org/cubes/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Program is a compiled shader with its uniform values.
type Program struct {
	Shader   *ebiten.Shader
	Uniforms assets.Uniforms
}

// NewProgram compiles the given shader.
func NewProgram(sh *assets.Shader) (*Program, error) {
	s, err := ebiten.NewShader(sh.Source)
	if err != nil {
		name := sh.Path
		if name == "" {
			name = "built in shader"
		}
		return nil, fmt.Errorf("render: compiling %s: %w", name, err)
	}
	return &Program{Shader: s, Uniforms: assets.Uniforms{}}, nil
}

// SetCamera sets the ViewProjection uniform.
func (pr *Program) SetCamera(viewProj math32.Matrix4) {
	pr.Uniforms.SetMatrix4("ViewProjection", viewProj)
}

// Dispose releases the shader.
func (pr *Program) Dispose() {
	pr.Shader.Deallocate()
}
