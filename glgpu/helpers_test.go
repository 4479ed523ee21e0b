// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cogentcore.org/glsandbox/glgpu"
	"cogentcore.org/glsandbox/glgpu/glfake"
)

const basicShader = `#shader vertex
#version 330 core

layout(location = 0) in vec4 position;
layout(location = 1) in vec2 texCoord;

out vec2 v_TexCoord;

uniform mat4 u_MVP;

void main()
{
    gl_Position = u_MVP * position;
    v_TexCoord = texCoord;
}

#shader fragment
#version 330 core

layout(location = 0) out vec4 color;

in vec2 v_TexCoord;

uniform vec4 u_Color;
uniform sampler2D u_Texture;

void main()
{
    vec4 texColor = texture(u_Texture, v_TexCoord);
    color = texColor * u_Color;
}
`

// newContext returns a Debug context over a new fake GL.
func newContext(t *testing.T) (*glgpu.Context, *glfake.GL) {
	t.Helper()
	f := glfake.New()
	ctx := glgpu.NewContext(f)
	ctx.Debug = true
	return ctx, f
}

func parse(t *testing.T, src string) glgpu.ShaderSource {
	t.Helper()
	ss, err := glgpu.ParseShader(stringsReader(src))
	require.NoError(t, err)
	return ss
}

func writeShader(t *testing.T, dir, src string) string {
	t.Helper()
	path := filepath.Join(dir, "Basic.shader")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o666))
	return path
}

// recoverCallError runs fn and returns the *CallError it panics with.
func recoverCallError(t *testing.T, fn func()) (ce *glgpu.CallError) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a GL error panic")
		var ok bool
		ce, ok = r.(*glgpu.CallError)
		require.True(t, ok, "panic value %T is not a *CallError", r)
	}()
	fn()
	return nil
}
