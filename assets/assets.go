// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads the textures and shader sources used by the
// renderer, and watches their files for changes so they can be reloaded
// while the demo runs.
//
// Load failures are diagnostics, not fatal errors: they are logged and
// the resource stays unbound (nil), so the renderer falls back to face
// colors and the built in shader.
package assets

import (
	"log/slog"
	"path/filepath"
	"sort"

	"cogentcore.org/cubes/base/errors"
)

// Library holds the named textures and shader of the demo.
type Library struct {

	// Textures are the loaded textures by name. A name whose load
	// failed maps to nil.
	Textures map[string]*Texture

	// Shader is the loaded shader, or the built in one.
	Shader *Shader

	// Version increments on every change, so users can tell when to
	// re-upload resources.
	Version int

	// texturePaths maps cleaned file paths to texture names.
	texturePaths map[string]string

	shaderPath string
}

// NewLibrary returns an empty library using the built in shader.
func NewLibrary() *Library {
	return &Library{
		Textures:     map[string]*Texture{},
		Shader:       DefaultShader(),
		texturePaths: map[string]string{},
	}
}

// AddTexture loads the texture in the given file under name, returning
// it, or nil after logging the error if it could not be loaded.
func (lb *Library) AddTexture(name, path string) *Texture {
	lb.texturePaths[filepath.Clean(path)] = name
	tx, err := LoadTexture(path)
	if errors.Log(err) != nil {
		lb.Textures[name] = nil
		lb.Version++
		return nil
	}
	slog.Info("loaded texture", "name", name, "path", path, "format", tx.Format, "size", tx.Size())
	lb.Textures[name] = tx
	lb.Version++
	return tx
}

// SetShader loads the shader source in the given file, falling back to
// the built in shader after logging the error if it could not be loaded.
// An empty path selects the built in shader.
func (lb *Library) SetShader(path string) *Shader {
	lb.shaderPath = ""
	if path != "" {
		lb.shaderPath = filepath.Clean(path)
	}
	lb.Version++
	if path == "" {
		lb.Shader = DefaultShader()
		return lb.Shader
	}
	sh, err := LoadShader(path)
	if errors.Log(err) != nil {
		lb.Shader = DefaultShader()
		return lb.Shader
	}
	slog.Info("loaded shader", "path", path)
	lb.Shader = sh
	return sh
}

// Texture returns the named texture, or nil.
func (lb *Library) Texture(name string) *Texture {
	return lb.Textures[name]
}

// Paths returns the files backing the library, sorted.
func (lb *Library) Paths() []string {
	ps := make([]string, 0, len(lb.texturePaths)+1)
	for p := range lb.texturePaths {
		ps = append(ps, p)
	}
	if lb.shaderPath != "" {
		ps = append(ps, lb.shaderPath)
	}
	sort.Strings(ps)
	return ps
}

// Reload reloads the resource backed by the given file, returning
// false if no resource uses it.
func (lb *Library) Reload(path string) bool {
	path = filepath.Clean(path)
	if name, ok := lb.texturePaths[path]; ok {
		lb.AddTexture(name, path)
		return true
	}
	if path == lb.shaderPath {
		lb.SetShader(path)
		return true
	}
	return false
}
