// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// VertexBufferElement is one vertex attribute within an interleaved
// vertex: Count components of GL type Type.
type VertexBufferElement struct {
	Type       uint32
	Count      int32
	Normalized bool
}

// Size returns the size of the attribute in bytes.
func (el VertexBufferElement) Size() int32 {
	return el.Count * SizeOfType(el.Type)
}

// VertexBufferLayout describes how interleaved vertex data in a
// [VertexBuffer] maps onto attribute indexes 0, 1, 2, ... in the
// order the elements are pushed.
type VertexBufferLayout struct {
	elements []VertexBufferElement
	stride   int32
}

// Push appends an attribute of count components of the given GL type
// (FLOAT, UNSIGNED_INT or UNSIGNED_BYTE). UNSIGNED_BYTE attributes are
// normalized, as used for packed colors.
func (ly *VertexBufferLayout) Push(typ uint32, count int32) *VertexBufferLayout {
	el := VertexBufferElement{Type: typ, Count: count, Normalized: typ == UNSIGNED_BYTE}
	ly.elements = append(ly.elements, el)
	ly.stride += el.Size()
	return ly
}

// Elements returns the attributes in index order.
func (ly *VertexBufferLayout) Elements() []VertexBufferElement {
	return ly.elements
}

// Stride returns the size of one vertex in bytes.
func (ly *VertexBufferLayout) Stride() int32 {
	return ly.stride
}
