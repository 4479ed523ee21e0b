// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
	"path/filepath"

	"cogentcore.org/glsandbox/base/errors"
)

// Program is a linked vertex + fragment shader program. It caches
// uniform locations by name for its lifetime; see
// [Program.UniformLocation].
type Program struct {
	ctx      *Context
	init     bool
	handle   uint32
	path     string
	uniforms map[string]int32
}

// NewProgram compiles both stages of src and links them into a new
// program. Compile errors are returned as [*ShaderBuildError] as soon as
// a stage fails, link errors as [*LinkError]. The stage objects are
// always released before returning.
func NewProgram(ctx *Context, src ShaderSource) (*Program, error) {
	handle, err := linkProgram(ctx, src, "")
	if err != nil {
		return nil, err
	}
	return &Program{ctx: ctx, init: true, handle: handle, uniforms: make(map[string]int32)}, nil
}

// OpenProgram parses the combined shader file at path (see
// [ParseShader]) and builds a program from it. The program remembers
// the path for [Program.Reload].
func OpenProgram(ctx *Context, path string) (*Program, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	src, err := ParseShaderFile(abs)
	if err != nil {
		return nil, err
	}
	handle, err := linkProgram(ctx, src, abs)
	if err != nil {
		return nil, err
	}
	return &Program{ctx: ctx, init: true, handle: handle, path: abs, uniforms: make(map[string]int32)}, nil
}

func linkProgram(ctx *Context, src ShaderSource, path string) (uint32, error) {
	gl := ctx.GL
	vs, err := CompileStage(ctx, VertexStage, src.Vertex)
	if err != nil {
		return 0, withPath(err, path)
	}
	fs, err := CompileStage(ctx, FragmentStage, src.Fragment)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, withPath(err, path)
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.LinkProgram(handle)
	ctx.check("LinkProgram")
	gl.ValidateProgram(handle)
	ctx.check("ValidateProgram")

	// stages are owned by the program once linked
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	ctx.check("DeleteShader")

	if gl.GetProgramiv(handle, LINK_STATUS) == FALSE {
		msg := gl.GetProgramInfoLog(handle)
		gl.DeleteProgram(handle)
		slog.Error("glgpu: program link failed", "path", path, "log", msg)
		return 0, &LinkError{Path: path, Log: msg}
	}
	// validation depends on the GL state at the time of the call (macOS
	// core profiles fail it with no vertex array bound), so it only warns
	if gl.GetProgramiv(handle, VALIDATE_STATUS) == FALSE {
		slog.Warn("glgpu: program validation failed", "path", path, "log", gl.GetProgramInfoLog(handle))
	}
	return handle, nil
}

func withPath(err error, path string) error {
	var be *ShaderBuildError
	if path != "" && errors.As(err, &be) {
		be.Path = path
	}
	return err
}

// Handle returns the GL program handle, 0 once deleted.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Path returns the shader file the program was built from, if any.
func (pr *Program) Path() string {
	return pr.path
}

// Bind makes this the program in use.
func (pr *Program) Bind() {
	if !pr.init {
		return
	}
	pr.ctx.Bind(ProgramTarget, pr.handle)
}

// Unbind sets no program in use.
func (pr *Program) Unbind() {
	pr.ctx.Unbind(ProgramTarget)
}

// IsBound returns whether this program is the one in use.
func (pr *Program) IsBound() bool {
	return pr.init && pr.ctx.Bound(ProgramTarget) == pr.handle
}

// Reload rebuilds the program from its shader file. On failure the
// current program is kept and the error is returned. On success the
// old handle is deleted, the uniform cache is reset, and the new
// program is put in use if the old one was.
func (pr *Program) Reload() error {
	if !pr.init {
		return errors.New("glgpu: Reload of deleted program")
	}
	if pr.path == "" {
		return errors.New("glgpu: Reload of program not built from a file")
	}
	src, err := ParseShaderFile(pr.path)
	if err != nil {
		return err
	}
	handle, err := linkProgram(pr.ctx, src, pr.path)
	if err != nil {
		return err
	}
	wasBound := pr.IsBound()
	pr.ctx.GL.DeleteProgram(pr.handle)
	pr.ctx.forget(ProgramTarget, pr.handle)
	pr.handle = handle
	pr.uniforms = make(map[string]int32)
	if wasBound {
		pr.Bind()
	}
	slog.Info("glgpu: reloaded program", "path", pr.path)
	return nil
}

// Delete releases the GL program. It is safe to call more than once.
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	pr.ctx.GL.DeleteProgram(pr.handle)
	pr.ctx.forget(ProgramTarget, pr.handle)
	pr.ctx.check("DeleteProgram")
	pr.handle = 0
	pr.init = false
}
