// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformLocation returns the location of the named uniform, or -1 if
// the program has no active uniform of that name. The first lookup of
// each name queries GL; the result, including -1, is cached for the
// life of the program.
func (pr *Program) UniformLocation(name string) int32 {
	if loc, ok := pr.uniforms[name]; ok {
		return loc
	}
	loc := pr.ctx.GL.GetUniformLocation(pr.handle, name)
	pr.ctx.check("GetUniformLocation")
	if loc < 0 {
		slog.Debug("glgpu: uniform not found", "name", name, "path", pr.path)
	}
	pr.uniforms[name] = loc
	return loc
}

// use puts the program in use if it is not already, and returns the
// location of name; ok is false when there is nothing to set.
func (pr *Program) use(name string) (int32, bool) {
	if !pr.init {
		return -1, false
	}
	loc := pr.UniformLocation(name)
	if loc < 0 {
		return loc, false
	}
	if !pr.IsBound() {
		pr.Bind()
	}
	return loc, true
}

// SetUniform1i sets an int (or sampler) uniform.
func (pr *Program) SetUniform1i(name string, v int32) {
	if loc, ok := pr.use(name); ok {
		pr.ctx.GL.Uniform1i(loc, v)
		pr.ctx.check("Uniform1i")
	}
}

// SetUniform1f sets a float uniform.
func (pr *Program) SetUniform1f(name string, v float32) {
	if loc, ok := pr.use(name); ok {
		pr.ctx.GL.Uniform1f(loc, v)
		pr.ctx.check("Uniform1f")
	}
}

// SetUniform4f sets a vec4 uniform.
func (pr *Program) SetUniform4f(name string, v0, v1, v2, v3 float32) {
	if loc, ok := pr.use(name); ok {
		pr.ctx.GL.Uniform4f(loc, v0, v1, v2, v3)
		pr.ctx.check("Uniform4f")
	}
}

// SetUniformMat4f sets a mat4 uniform from a column-major matrix.
func (pr *Program) SetUniformMat4f(name string, m mgl32.Mat4) {
	if loc, ok := pr.use(name); ok {
		pr.ctx.GL.UniformMatrix4fv(loc, false, [16]float32(m))
		pr.ctx.check("UniformMatrix4fv")
	}
}
