// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
)

// DefaultShaderSource is the built in cube fragment shader, in Kage.
//
//go:embed shaders/cube.kage
var DefaultShaderSource []byte

// Shader is the source of a Kage shader program. It is compiled by
// the renderer, which reports compile errors as diagnostics.
type Shader struct {

	// Path is the file the source was read from, empty for built in shaders.
	Path string

	// Source is the Kage source.
	Source []byte
}

// DefaultShader returns the built in cube shader.
func DefaultShader() *Shader {
	return &Shader{Source: DefaultShaderSource}
}

// LoadShader reads the shader source in the given file and checks that it
// looks like a Kage program.
func LoadShader(path string) (*Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: loading shader %q: %w", path, err)
	}
	if err := CheckShaderSource(src); err != nil {
		return nil, fmt.Errorf("assets: shader %q: %w", path, err)
	}
	return &Shader{Path: path, Source: src}, nil
}

// CheckShaderSource returns an error if src lacks the package clause or
// the Fragment entry point every Kage program needs.
func CheckShaderSource(src []byte) error {
	if len(bytes.TrimSpace(src)) == 0 {
		return fmt.Errorf("source is empty")
	}
	if !bytes.Contains(src, []byte("package main")) {
		return fmt.Errorf("missing package main clause")
	}
	if !bytes.Contains(src, []byte("func Fragment(")) {
		return fmt.Errorf("missing Fragment entry point")
	}
	return nil
}
