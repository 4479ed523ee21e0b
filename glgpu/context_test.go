// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glsandbox/glgpu"
	"cogentcore.org/glsandbox/glgpu/glfake"
)

func TestDebugCallError(t *testing.T) {
	ctx, f := newContext(t)
	vb := glgpu.NewVertexBuffer(ctx, []float32{1, 2})
	stale := vb.Handle()
	vb.Delete()

	ce := recoverCallError(t, func() {
		ctx.Bind(glgpu.ArrayBufferTarget, stale)
	})
	require.NotNil(t, ce)
	assert.Equal(t, "BindArrayBuffer", ce.Call)
	assert.Equal(t, []uint32{glgpu.INVALID_OPERATION}, ce.Codes)
	assert.Equal(t, "context_test.go", ce.File)
	assert.Contains(t, ce.Error(), "GL_INVALID_OPERATION")
	assert.Contains(t, ce.Error(), "context_test.go:")
	assert.Equal(t, uint32(glgpu.NO_ERROR), f.GetError(), "queue is drained")
}

func TestDebugCallErrorSite(t *testing.T) {
	ctx, f := newContext(t)
	f.PushError(glgpu.OUT_OF_MEMORY)
	f.PushError(glgpu.INVALID_VALUE)
	ce := recoverCallError(t, func() {
		glgpu.NewVertexBuffer(ctx, []float32{1})
	})
	require.NotNil(t, ce)
	assert.Equal(t, "buffer.go", ce.File, "errors raised in Bind report the wrapper")
	assert.Equal(t, []uint32{glgpu.OUT_OF_MEMORY, glgpu.INVALID_VALUE}, ce.Codes)
}

func TestNoDebug(t *testing.T) {
	f := glfake.New()
	ctx := glgpu.NewContext(f)
	f.PushError(glgpu.INVALID_ENUM)
	assert.NotPanics(t, func() {
		ctx.Bind(glgpu.ArrayBufferTarget, 99)
	})
	assert.Equal(t, uint32(glgpu.INVALID_ENUM), f.GetError())
	assert.Equal(t, uint32(glgpu.INVALID_OPERATION), f.GetError())
}

func TestContextVersion(t *testing.T) {
	ctx, _ := newContext(t)
	assert.Equal(t, "4.1 glfake", ctx.Version())
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "GL_INVALID_ENUM", glgpu.ErrorName(glgpu.INVALID_ENUM))
	assert.Equal(t, int32(4), glgpu.SizeOfType(glgpu.UNSIGNED_INT))
	assert.Equal(t, int32(1), glgpu.SizeOfType(glgpu.UNSIGNED_BYTE))
	assert.Equal(t, "Texture2D", glgpu.Texture2DTarget.String())
}
