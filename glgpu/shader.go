// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "log/slog"

// StageTypes are the shader pipeline stages a program is built from.
type StageTypes int32

const (
	// VertexStage is the vertex shader.
	VertexStage StageTypes = iota

	// FragmentStage is the fragment shader.
	FragmentStage
)

func (st StageTypes) String() string {
	switch st {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown"
}

// GLType returns the GL shader type enum for the stage.
func (st StageTypes) GLType() uint32 {
	if st == FragmentStage {
		return FRAGMENT_SHADER
	}
	return VERTEX_SHADER
}

// CompileStage compiles src as a shader of the given stage and returns
// its handle. On failure the info log is logged, the shader object is
// deleted, and a [*ShaderBuildError] is returned with a 0 handle, so a
// failed stage never reaches the link step.
func CompileStage(ctx *Context, typ StageTypes, src string) (uint32, error) {
	gl := ctx.GL
	handle := gl.CreateShader(typ.GLType())
	ctx.check("CreateShader")
	gl.ShaderSource(handle, src)
	gl.CompileShader(handle)
	ctx.check("CompileShader")

	if gl.GetShaderiv(handle, COMPILE_STATUS) == FALSE {
		msg := gl.GetShaderInfoLog(handle)
		gl.DeleteShader(handle)
		ctx.check("DeleteShader")
		slog.Error("glgpu: shader compile failed", "stage", typ, "log", msg)
		return 0, &ShaderBuildError{Stage: typ, Log: msg}
	}
	return handle, nil
}
