// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"
	"image/draw"

	"cogentcore.org/glsandbox/assets"
)

// Texture is a 2D RGBA8 texture, uploaded once at construction.
type Texture struct {
	ctx    *Context
	init   bool
	handle uint32
	size   image.Point
	path   string
	unit   uint32
}

// NewTexture creates a texture from img with linear filtering and
// clamp-to-edge wrapping. Row 0 of img is uploaded as the bottom row
// of the texture, so images should already be flipped for GL (see
// [assets.OpenImage]). The texture is left unbound.
func NewTexture(ctx *Context, img *image.RGBA) *Texture {
	img = tight(img)
	tx := &Texture{ctx: ctx, init: true, size: img.Rect.Size()}
	gl := ctx.GL
	tx.handle = gl.GenTexture()
	ctx.Bind(Texture2DTarget, tx.handle)
	gl.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, LINEAR)
	gl.TexParameteri(TEXTURE_2D, TEXTURE_MAG_FILTER, LINEAR)
	gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_S, CLAMP_TO_EDGE)
	gl.TexParameteri(TEXTURE_2D, TEXTURE_WRAP_T, CLAMP_TO_EDGE)
	gl.TexImage2D(TEXTURE_2D, 0, RGBA8, int32(tx.size.X), int32(tx.size.Y), RGBA, UNSIGNED_BYTE, ptr(img.Pix))
	ctx.check("TexImage2D")
	ctx.Unbind(Texture2DTarget)
	return tx
}

// OpenTexture loads the image file at path and creates a texture from it.
func OpenTexture(ctx *Context, path string) (*Texture, error) {
	img, err := assets.OpenImage(path)
	if err != nil {
		return nil, err
	}
	tx := NewTexture(ctx, img)
	tx.path = path
	return tx, nil
}

// tight returns img with no padding between rows and its origin at 0,0,
// copying only when needed.
func tight(img *image.RGBA) *image.RGBA {
	r := img.Rect
	if r.Min == (image.Point{}) && img.Stride == 4*r.Dx() {
		return img
	}
	out := image.NewRGBA(image.Rectangle{Max: r.Size()})
	draw.Draw(out, out.Rect, img, r.Min, draw.Src)
	return out
}

// Handle returns the GL texture handle, 0 once deleted.
func (tx *Texture) Handle() uint32 {
	return tx.handle
}

// Size returns the texture size in pixels.
func (tx *Texture) Size() image.Point {
	return tx.size
}

// Path returns the file the texture was loaded from, if any.
func (tx *Texture) Path() string {
	return tx.path
}

// Bind activates the given texture unit (0-based) and binds the
// texture to GL_TEXTURE_2D on it.
func (tx *Texture) Bind(unit uint32) {
	if !tx.init {
		return
	}
	tx.ctx.ActiveTexture(unit)
	tx.ctx.Bind(Texture2DTarget, tx.handle)
	tx.unit = unit
}

// Unbind resets GL_TEXTURE_2D on the unit last used by Bind.
func (tx *Texture) Unbind() {
	tx.ctx.ActiveTexture(tx.unit)
	tx.ctx.Unbind(Texture2DTarget)
}

// IsBound returns whether the texture is bound on the active unit.
func (tx *Texture) IsBound() bool {
	return tx.init && tx.ctx.Bound(Texture2DTarget) == tx.handle
}

// Delete releases the texture. It is safe to call more than once.
func (tx *Texture) Delete() {
	if !tx.init {
		return
	}
	tx.ctx.GL.DeleteTexture(tx.handle)
	tx.ctx.forget(Texture2DTarget, tx.handle)
	tx.ctx.check("DeleteTexture")
	tx.handle = 0
	tx.init = false
}
