// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"
	"image"

	"cogentcore.org/cubes/base/iox/imagex"
)

// Texture is a decoded texture image.
type Texture struct {

	// Path is the file the texture was loaded from.
	Path string

	// Format is the encoding of the file.
	Format imagex.Formats

	// Image is the decoded image.
	Image *image.RGBA
}

// LoadTexture decodes the texture image in the given file,
// which can be any format supported by [imagex].
func LoadTexture(path string) (*Texture, error) {
	img, f, err := imagex.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: loading texture %q: %w", path, err)
	}
	rgba := imagex.AsRGBA(img)
	if rgba.Bounds().Empty() {
		return nil, fmt.Errorf("assets: texture %q is empty", path)
	}
	return &Texture{Path: path, Format: f, Image: rgba}, nil
}

// Size returns the texture size in pixels.
func (tx *Texture) Size() image.Point {
	return tx.Image.Bounds().Size()
}
