// Copyright (c) 2019, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"unsafe"
)

// IndexBuffer manages a buffer of indexes for index-based rendering
// (i.e., GL_ELEMENT_ARRAY_BUFFER for glDrawElements calls in OpenGL).
// Indexes are uint32 unless the buffer was made with
// [NewStreamIndexBuffer] for another type.
type IndexBuffer struct {
	ctx    *Context
	init   bool
	handle uint32
	count  int
	typ    uint32
}

// NewIndexBuffer creates the buffer, binds it and transfers indices
// with GL_STATIC_DRAW. The buffer is left bound. Note that in GL the
// element buffer binding is recorded in the current vertex array.
func NewIndexBuffer(ctx *Context, indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{ctx: ctx, init: true, count: len(indices), typ: UNSIGNED_INT}
	ib.handle = ctx.GL.GenBuffer()
	ib.Bind()
	ctx.GL.BufferData(ELEMENT_ARRAY_BUFFER, len(indices)*4, ptr(indices), STATIC_DRAW)
	ctx.check("BufferData")
	return ib
}

// NewStreamIndexBuffer creates an empty buffer of indexes of the given
// GL type (UNSIGNED_BYTE, UNSIGNED_SHORT or UNSIGNED_INT), for data
// that is replaced by [IndexBuffer.Upload] before each use. It is left
// unbound. It panics if typ is not one of those.
func NewStreamIndexBuffer(ctx *Context, typ uint32) *IndexBuffer {
	switch typ {
	case UNSIGNED_BYTE, UNSIGNED_SHORT, UNSIGNED_INT:
	default:
		panic(fmt.Sprintf("glgpu: unsupported index type 0x%04X", typ))
	}
	ib := &IndexBuffer{ctx: ctx, init: true, typ: typ}
	ib.handle = ctx.GL.GenBuffer()
	ctx.check("GenBuffer")
	return ib
}

// Upload binds the buffer and replaces its contents with size bytes
// of indexes at data, with GL_STREAM_DRAW.
func (ib *IndexBuffer) Upload(data unsafe.Pointer, size int) {
	if !ib.init {
		return
	}
	ib.Bind()
	ib.count = size / int(SizeOfType(ib.typ))
	ib.ctx.GL.BufferData(ELEMENT_ARRAY_BUFFER, size, data, STREAM_DRAW)
	ib.ctx.check("BufferData")
}

// Type returns the GL type of the indexes.
func (ib *IndexBuffer) Type() uint32 {
	return ib.typ
}

// Count returns the number of indexes in the buffer.
func (ib *IndexBuffer) Count() int {
	return ib.count
}

// Handle returns the unique handle for this buffer, 0 once deleted.
func (ib *IndexBuffer) Handle() uint32 {
	return ib.handle
}

// Bind makes this the current GL_ELEMENT_ARRAY_BUFFER.
func (ib *IndexBuffer) Bind() {
	if !ib.init {
		return
	}
	ib.ctx.Bind(ElementBufferTarget, ib.handle)
}

// Unbind resets GL_ELEMENT_ARRAY_BUFFER to none.
func (ib *IndexBuffer) Unbind() {
	ib.ctx.Unbind(ElementBufferTarget)
}

// IsBound returns whether this is the current GL_ELEMENT_ARRAY_BUFFER.
func (ib *IndexBuffer) IsBound() bool {
	return ib.init && ib.ctx.Bound(ElementBufferTarget) == ib.handle
}

// Delete deletes the GPU resources associated with this buffer.
// It is safe to call more than once.
func (ib *IndexBuffer) Delete() {
	if !ib.init {
		return
	}
	ib.ctx.GL.DeleteBuffer(ib.handle)
	ib.ctx.forget(ElementBufferTarget, ib.handle)
	ib.ctx.check("DeleteBuffer")
	ib.handle = 0
	ib.init = false
}
