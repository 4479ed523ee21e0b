// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/glsandbox/glgpu"

// QuadIndices are the two triangles of a quad whose corners are given
// counter-clockwise from the bottom left.
var QuadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// quad is an indexed mesh of two triangles.
type quad struct {
	va *glgpu.VertexArray
	vb *glgpu.VertexBuffer
	ib *glgpu.IndexBuffer
}

// newQuad uploads the four vertices of a quad, laid out as given.
// Nothing is left bound.
func newQuad(ctx *glgpu.Context, vertices []float32, layout *glgpu.VertexBufferLayout) *quad {
	q := &quad{}
	q.va = glgpu.NewVertexArray(ctx)
	q.vb = glgpu.NewVertexBuffer(ctx, vertices)
	q.va.AddBuffer(q.vb, layout)
	q.ib = glgpu.NewIndexBuffer(ctx, QuadIndices)
	q.va.Unbind()
	q.vb.Unbind()
	q.ib.Unbind()
	return q
}

func (q *quad) draw(rn *glgpu.Renderer, pr *glgpu.Program) {
	rn.Draw(q.va, q.ib, pr)
}

func (q *quad) delete() {
	q.ib.Delete()
	q.vb.Delete()
	q.va.Delete()
}
