// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "image"

// Renderer provides the per-frame drawing calls.
// All operate on the Context it was created with.
type Renderer struct {
	ctx   *Context
	clear [4]float32
	blend bool
}

// NewRenderer returns a Renderer with a black clear color.
func NewRenderer(ctx *Context) *Renderer {
	return &Renderer{ctx: ctx, clear: [4]float32{0, 0, 0, 1}}
}

// Context returns the context the renderer draws with.
func (rn *Renderer) Context() *Context {
	return rn.ctx
}

// ClearColor returns the color used by Clear.
func (rn *Renderer) ClearColor() [4]float32 {
	return rn.clear
}

// SetClearColor sets the RGBA color used by Clear.
func (rn *Renderer) SetClearColor(c [4]float32) {
	rn.clear = c
}

// Clear clears the color buffer of the current render target.
func (rn *Renderer) Clear() {
	gl := rn.ctx.GL
	gl.ClearColor(rn.clear[0], rn.clear[1], rn.clear[2], rn.clear[3])
	gl.Clear(COLOR_BUFFER_BIT)
	rn.ctx.check("Clear")
}

// Viewport sets the viewport to the given framebuffer size.
func (rn *Renderer) Viewport(width, height int) {
	rn.ctx.GL.Viewport(0, 0, int32(width), int32(height))
	rn.ctx.check("Viewport")
}

// Blend turns alpha blending on or off. On uses
// SRC_ALPHA, ONE_MINUS_SRC_ALPHA.
func (rn *Renderer) Blend(on bool) {
	gl := rn.ctx.GL
	if on {
		gl.Enable(BLEND)
		gl.BlendEquation(FUNC_ADD)
		gl.BlendFunc(SRC_ALPHA, ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(BLEND)
	}
	rn.blend = on
	rn.ctx.check("Blend")
}

// Blending returns whether alpha blending was last turned on by Blend.
func (rn *Renderer) Blending() bool {
	return rn.blend
}

// Draw binds pr, va and ib, and draws ib.Count() indexes as Triangles.
func (rn *Renderer) Draw(va *VertexArray, ib *IndexBuffer, pr *Program) {
	rn.DrawRange(va, ib, pr, 0, ib.Count())
}

// DrawRange binds pr, va and ib, and draws count indexes as Triangles,
// starting at index first.
func (rn *Renderer) DrawRange(va *VertexArray, ib *IndexBuffer, pr *Program, first, count int) {
	pr.Bind()
	va.Bind()
	ib.Bind()
	offset := uintptr(first) * uintptr(SizeOfType(ib.Type()))
	rn.ctx.GL.DrawElements(TRIANGLES, int32(count), ib.Type(), offset)
	rn.ctx.check("DrawElements")
}

// Scissor enables the scissor test with the given box, in framebuffer
// pixels with the origin at the bottom left, or disables it for an
// empty box.
func (rn *Renderer) Scissor(box image.Rectangle) {
	gl := rn.ctx.GL
	if box.Empty() {
		gl.Disable(SCISSOR_TEST)
	} else {
		gl.Enable(SCISSOR_TEST)
		gl.Scissor(int32(box.Min.X), int32(box.Min.Y), int32(box.Dx()), int32(box.Dy()))
	}
	rn.ctx.check("Scissor")
}
