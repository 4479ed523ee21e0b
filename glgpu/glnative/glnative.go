// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glnative implements [glgpu.GL] on the system OpenGL driver,
// using the go-gl 4.1 core profile bindings. [Init] must be called
// with a GL context current, on the thread that owns it.
package glnative

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"cogentcore.org/glsandbox/glgpu"
)

// GL is the native [glgpu.GL].
type GL struct{}

var _ glgpu.GL = GL{}

// Init loads the GL function pointers for the current context and
// returns the native GL.
func Init() (GL, error) {
	if err := gl.Init(); err != nil {
		return GL{}, err
	}
	return GL{}, nil
}

// cstr returns s with a null terminator, adding one only if needed.
func cstr(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

func (GL) GetError() uint32 { return gl.GetError() }

func (GL) GetString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (GL) Enable(capability uint32) { gl.Enable(capability) }
func (GL) Disable(capability uint32) { gl.Disable(capability) }
func (GL) BlendEquation(mode uint32) { gl.BlendEquation(mode) }
func (GL) BlendFunc(sfactor, dfactor uint32) { gl.BlendFunc(sfactor, dfactor) }
func (GL) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }
func (GL) Clear(mask uint32) { gl.Clear(mask) }

func (GL) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (GL) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

////////  Shaders

func (GL) CreateShader(typ uint32) uint32 { return gl.CreateShader(typ) }

func (GL) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(cstr(src))
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (GL) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (GL) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (GL) GetShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (GL) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

////////  Programs

func (GL) CreateProgram() uint32 { return gl.CreateProgram() }
func (GL) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (GL) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (GL) LinkProgram(program uint32) { gl.LinkProgram(program) }
func (GL) ValidateProgram(program uint32) { gl.ValidateProgram(program) }
func (GL) UseProgram(program uint32) { gl.UseProgram(program) }
func (GL) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (GL) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (GL) GetProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

////////  Uniforms

func (GL) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func (GL) Uniform1i(location, v0 int32) { gl.Uniform1i(location, v0) }
func (GL) Uniform1f(location int32, v0 float32) { gl.Uniform1f(location, v0) }
func (GL) Uniform4f(location int32, v0, v1, v2, v3 float32) { gl.Uniform4f(location, v0, v1, v2, v3) }

func (GL) UniformMatrix4fv(location int32, transpose bool, value [16]float32) {
	gl.UniformMatrix4fv(location, 1, transpose, &value[0])
}

////////  Buffers

func (GL) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

func (GL) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (GL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (GL) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

////////  Vertex arrays

func (GL) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

func (GL) BindVertexArray(array uint32) { gl.BindVertexArray(array) }
func (GL) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }
func (GL) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (GL) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, typ, normalized, stride, offset)
}

////////  Textures

func (GL) GenTexture() uint32 {
	var h uint32
	gl.GenTextures(1, &h)
	return h
}

func (GL) ActiveTexture(unit uint32) { gl.ActiveTexture(unit) }
func (GL) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }
func (GL) TexParameteri(target, pname uint32, param int32) { gl.TexParameteri(target, pname, param) }

func (GL) TexImage2D(target uint32, level, internalFormat, width, height int32, format, typ uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, typ, pixels)
}

func (GL) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

////////  Drawing


func (GL) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	gl.DrawElements(mode, count, typ, gl.PtrOffset(int(offset)))
}
