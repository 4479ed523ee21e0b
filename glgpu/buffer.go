// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "unsafe"

// VertexBuffer is a GL_ARRAY_BUFFER holding vertex data, either
// uploaded once at construction ([NewVertexBuffer]) or replaced every
// frame ([NewStreamVertexBuffer]).
type VertexBuffer struct {
	ctx    *Context
	init   bool
	handle uint32
	size   int
}

// NewVertexBuffer creates a buffer, binds it and uploads data with
// GL_STATIC_DRAW. The buffer is left bound.
func NewVertexBuffer(ctx *Context, data []float32) *VertexBuffer {
	vb := &VertexBuffer{ctx: ctx, init: true, size: len(data) * 4}
	vb.handle = ctx.GL.GenBuffer()
	vb.Bind()
	ctx.GL.BufferData(ARRAY_BUFFER, vb.size, ptr(data), STATIC_DRAW)
	ctx.check("BufferData")
	return vb
}

// NewStreamVertexBuffer creates an empty buffer for data that is
// replaced by [VertexBuffer.Upload] before each use. It is left unbound.
func NewStreamVertexBuffer(ctx *Context) *VertexBuffer {
	vb := &VertexBuffer{ctx: ctx, init: true}
	vb.handle = ctx.GL.GenBuffer()
	ctx.check("GenBuffer")
	return vb
}

// Upload binds the buffer and replaces its contents with size bytes
// at data, with GL_STREAM_DRAW.
func (vb *VertexBuffer) Upload(data unsafe.Pointer, size int) {
	if !vb.init {
		return
	}
	vb.Bind()
	vb.size = size
	vb.ctx.GL.BufferData(ARRAY_BUFFER, size, data, STREAM_DRAW)
	vb.ctx.check("BufferData")
}

// Handle returns the GL buffer handle, 0 once deleted.
func (vb *VertexBuffer) Handle() uint32 {
	return vb.handle
}

// Size returns the size of the data in bytes.
func (vb *VertexBuffer) Size() int {
	return vb.size
}

// Bind makes this the current GL_ARRAY_BUFFER.
func (vb *VertexBuffer) Bind() {
	if !vb.init {
		return
	}
	vb.ctx.Bind(ArrayBufferTarget, vb.handle)
}

// Unbind resets GL_ARRAY_BUFFER to none.
func (vb *VertexBuffer) Unbind() {
	vb.ctx.Unbind(ArrayBufferTarget)
}

// IsBound returns whether this is the current GL_ARRAY_BUFFER.
func (vb *VertexBuffer) IsBound() bool {
	return vb.init && vb.ctx.Bound(ArrayBufferTarget) == vb.handle
}

// Delete releases the buffer. It is safe to call more than once.
func (vb *VertexBuffer) Delete() {
	if !vb.init {
		return
	}
	vb.ctx.GL.DeleteBuffer(vb.handle)
	vb.ctx.forget(ArrayBufferTarget, vb.handle)
	vb.ctx.check("DeleteBuffer")
	vb.handle = 0
	vb.init = false
}

// ptr returns a pointer to the first element of s, nil if it is empty.
func ptr[T any](s []T) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(&s[0])
}
