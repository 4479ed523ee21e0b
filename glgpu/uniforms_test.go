// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glsandbox/glgpu"
)

func TestUniformLocationCache(t *testing.T) {
	ctx, f := newContext(t)
	pr, err := glgpu.NewProgram(ctx, parse(t, basicShader))
	require.NoError(t, err)
	defer pr.Delete()

	first := pr.UniformLocation("u_Color")
	second := pr.UniformLocation("u_Color")
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, int32(0))
	assert.Equal(t, 1, f.UniformQueries["u_Color"])

	// misses are cached too
	assert.Equal(t, int32(-1), pr.UniformLocation("u_Missing"))
	assert.Equal(t, int32(-1), pr.UniformLocation("u_Missing"))
	assert.Equal(t, 1, f.UniformQueries["u_Missing"])
}

func TestSetUniforms(t *testing.T) {
	ctx, f := newContext(t)
	pr, err := glgpu.NewProgram(ctx, parse(t, basicShader))
	require.NoError(t, err)
	defer pr.Delete()

	// setters put the program in use
	assert.False(t, pr.IsBound())
	pr.SetUniform4f("u_Color", 0.2, 0.3, 0.8, 1)
	assert.True(t, pr.IsBound())

	pr.SetUniform1i("u_Texture", 0)
	mvp := mgl32.Ortho(0, 960, 0, 540, -1, 1).Mul4(mgl32.Translate3D(200, 200, 0))
	pr.SetUniformMat4f("u_MVP", mvp)

	v, ok := f.UniformValue(pr.Handle(), "u_Color")
	require.True(t, ok)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.8, 1}, v)
	v, ok = f.UniformValue(pr.Handle(), "u_Texture")
	require.True(t, ok)
	assert.Equal(t, int32(0), v)
	v, ok = f.UniformValue(pr.Handle(), "u_MVP")
	require.True(t, ok)
	assert.Equal(t, [16]float32(mvp), v)
}

func TestSetUniformMissing(t *testing.T) {
	ctx, f := newContext(t)
	pr, err := glgpu.NewProgram(ctx, parse(t, basicShader))
	require.NoError(t, err)
	defer pr.Delete()

	pr.SetUniform1f("u_Time", 1.5)
	pr.SetUniform1f("u_Time", 2.5)
	assert.Zero(t, f.Count("Uniform1f"), "missing uniforms are not set")
	assert.Equal(t, 1, f.UniformQueries["u_Time"])
	assert.False(t, pr.IsBound(), "nothing to set, nothing bound")
}
