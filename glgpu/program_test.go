// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"os"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glsandbox/glgpu"
)

func TestCompileStage(t *testing.T) {
	ctx, f := newContext(t)
	ss := parse(t, basicShader)

	vs, err := glgpu.CompileStage(ctx, glgpu.VertexStage, ss.Vertex)
	require.NoError(t, err)
	assert.NotZero(t, vs)

	broken := strings.Replace(ss.Fragment, "color = texColor * u_Color;", "color = texColor * u_Color", 1)
	fs, err := glgpu.CompileStage(ctx, glgpu.FragmentStage, broken)
	assert.Zero(t, fs)
	var be *glgpu.ShaderBuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, glgpu.FragmentStage, be.Stage)
	assert.NotEmpty(t, be.Log)
	assert.Contains(t, err.Error(), "fragment")
	assert.Equal(t, 1, f.LiveShaders(), "failed stage is deleted")

	_, err = glgpu.CompileStage(ctx, glgpu.VertexStage, "")
	assert.ErrorAs(t, err, &be)
}

func TestNewProgram(t *testing.T) {
	ctx, f := newContext(t)
	pr, err := glgpu.NewProgram(ctx, parse(t, basicShader))
	require.NoError(t, err)
	defer pr.Delete()
	assert.NotZero(t, pr.Handle())
	assert.Zero(t, f.LiveShaders(), "stages are released after linking")
	assert.Equal(t, 1, f.LivePrograms())
	assert.False(t, pr.IsBound())

	pr.Bind()
	assert.True(t, pr.IsBound())
	assert.Equal(t, pr.Handle(), f.CurrentProgram())
	pr.Unbind()
	assert.False(t, pr.IsBound())
	assert.Zero(t, f.CurrentProgram())
}

func TestNewProgramCompileFailure(t *testing.T) {
	ctx, f := newContext(t)
	ss := parse(t, basicShader)
	ss.Fragment = strings.Replace(ss.Fragment, "uniform vec4 u_Color;", "uniform vec4 u_Color", 1)

	pr, err := glgpu.NewProgram(ctx, ss)
	assert.Nil(t, pr)
	var be *glgpu.ShaderBuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, glgpu.FragmentStage, be.Stage)
	assert.Zero(t, f.LiveShaders(), "vertex stage is released too")
	assert.Zero(t, f.Count("CreateProgram"), "fails before linking")
}

func TestNewProgramLinkFailure(t *testing.T) {
	ctx, f := newContext(t)
	f.LinkLog = "error: fragment shader input v_TexCoord has no matching output"

	pr, err := glgpu.NewProgram(ctx, parse(t, basicShader))
	assert.Nil(t, pr)
	var le *glgpu.LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, f.LinkLog, le.Log)
	assert.Zero(t, f.LivePrograms())
	assert.Zero(t, f.LiveShaders())
}

func TestOpenProgram(t *testing.T) {
	ctx, _ := newContext(t)
	path := writeShader(t, t.TempDir(), basicShader)
	pr, err := glgpu.OpenProgram(ctx, path)
	require.NoError(t, err)
	defer pr.Delete()
	assert.Equal(t, path, pr.Path())

	broken := writeShader(t, t.TempDir(), strings.Replace(basicShader, "v_TexCoord = texCoord;", "v_TexCoord = texCoord", 1))
	_, err = glgpu.OpenProgram(ctx, broken)
	var be *glgpu.ShaderBuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, glgpu.VertexStage, be.Stage)
	assert.Equal(t, broken, be.Path)
	assert.Contains(t, err.Error(), broken)
}

func TestProgramReload(t *testing.T) {
	ctx, f := newContext(t)
	path := writeShader(t, t.TempDir(), basicShader)
	pr, err := glgpu.OpenProgram(ctx, path)
	require.NoError(t, err)
	defer pr.Delete()
	pr.Bind()
	pr.SetUniform4f("u_Color", 1, 0, 0, 1)
	old := pr.Handle()

	// a broken file keeps the old program
	require.NoError(t, os.WriteFile(path, []byte(strings.Replace(basicShader, "in vec2 v_TexCoord;", "in vec2 v_TexCoord", 1)), 0o666))
	err = pr.Reload()
	var be *glgpu.ShaderBuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, old, pr.Handle())
	assert.True(t, pr.IsBound())
	assert.Equal(t, 1, f.LivePrograms())

	require.NoError(t, os.WriteFile(path, []byte(basicShader), 0o666))
	require.NoError(t, pr.Reload())
	assert.NotEqual(t, old, pr.Handle())
	assert.True(t, pr.IsBound(), "reloaded program stays in use")
	assert.Equal(t, pr.Handle(), f.CurrentProgram())
	assert.Equal(t, 1, f.LivePrograms())

	// uniform locations are looked up again for the new program
	pr.SetUniform4f("u_Color", 0, 1, 0, 1)
	assert.Equal(t, 2, f.UniformQueries["u_Color"])
	v, ok := f.UniformValue(pr.Handle(), "u_Color")
	require.True(t, ok)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, v)

	noFile, err := glgpu.NewProgram(ctx, parse(t, basicShader))
	require.NoError(t, err)
	defer noFile.Delete()
	assert.Error(t, noFile.Reload())
}

func TestProgramDelete(t *testing.T) {
	ctx, f := newContext(t)
	pr, err := glgpu.NewProgram(ctx, parse(t, basicShader))
	require.NoError(t, err)
	pr.Bind()
	pr.Delete()
	pr.Delete()
	assert.Zero(t, pr.Handle())
	assert.Zero(t, f.LivePrograms())
	assert.Zero(t, ctx.Bound(glgpu.ProgramTarget))
	assert.Equal(t, 1, f.Count("DeleteProgram"))
	assert.Error(t, pr.Reload())

	// setters on a deleted program do nothing
	pr.SetUniformMat4f("u_MVP", mgl32.Ident4())
	assert.Zero(t, f.Count("UniformMatrix4fv"))
}

func TestLibrary(t *testing.T) {
	ctx, f := newContext(t)
	dir := t.TempDir()
	path := writeShader(t, dir, basicShader)
	lb := glgpu.NewLibrary(ctx)

	pr, err := lb.Open(path)
	require.NoError(t, err)
	again, err := lb.Open(path)
	require.NoError(t, err)
	assert.Same(t, pr, again)
	assert.True(t, lb.Has(path))
	assert.Equal(t, []string{path}, lb.Paths())
	assert.Equal(t, 1, f.LivePrograms())

	require.NoError(t, os.WriteFile(path, []byte("#shader vertex\nbroken\n#shader fragment\nvoid main() {}\n"), 0o666))
	old := pr.Handle()
	assert.Error(t, lb.Reload(path))
	assert.Equal(t, old, pr.Handle())

	assert.Error(t, lb.Reload(path+".missing"))
	_, err = lb.Open(path + ".missing")
	assert.Error(t, err)

	lb.Delete()
	assert.Zero(t, f.LivePrograms())
	assert.False(t, lb.Has(path))
}
