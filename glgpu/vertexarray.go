// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// VertexArray is a vertex array object recording attribute layouts
// and the element buffer binding.
type VertexArray struct {
	ctx    *Context
	init   bool
	handle uint32
}

// NewVertexArray generates a vertex array. It is not bound.
func NewVertexArray(ctx *Context) *VertexArray {
	va := &VertexArray{ctx: ctx, init: true}
	va.handle = ctx.GL.GenVertexArray()
	ctx.check("GenVertexArray")
	return va
}

// AddBuffer binds the array and vb, then enables and describes one
// attribute per element of layout, starting at index 0.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) {
	va.Bind()
	vb.Bind()
	gl := va.ctx.GL
	offset := uintptr(0)
	for i, el := range layout.Elements() {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), el.Count, el.Type, el.Normalized, layout.Stride(), offset)
		va.ctx.check("VertexAttribPointer")
		offset += uintptr(el.Size())
	}
}

// Handle returns the GL vertex array handle, 0 once deleted.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Bind makes this the current vertex array.
func (va *VertexArray) Bind() {
	if !va.init {
		return
	}
	va.ctx.Bind(VertexArrayTarget, va.handle)
}

// Unbind resets the vertex array binding to none.
func (va *VertexArray) Unbind() {
	va.ctx.Unbind(VertexArrayTarget)
}

// IsBound returns whether this is the current vertex array.
func (va *VertexArray) IsBound() bool {
	return va.init && va.ctx.Bound(VertexArrayTarget) == va.handle
}

// Delete releases the vertex array. It is safe to call more than once.
func (va *VertexArray) Delete() {
	if !va.init {
		return
	}
	va.ctx.GL.DeleteVertexArray(va.handle)
	va.ctx.forget(VertexArrayTarget, va.handle)
	va.ctx.check("DeleteVertexArray")
	va.handle = 0
	va.init = false
}
