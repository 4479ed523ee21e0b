// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "unsafe"

// GL is the subset of the OpenGL 4.1 core API used by glgpu.
// All GPU work in this module goes through a GL, so that it can be
// driven by the native binding in glgpu/glnative or by the in-memory
// recorder in glgpu/glfake. Enum arguments take the raw GL values
// defined below. Strings are plain Go strings: implementations add
// any null terminators themselves.
type GL interface {
	GetError() uint32
	GetString(name uint32) string

	Enable(capability uint32)
	Disable(capability uint32)
	BlendEquation(mode uint32)
	BlendFunc(sfactor, dfactor uint32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)

	CreateShader(typ uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location, v0 int32)
	Uniform1f(location int32, v0 float32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)
	UniformMatrix4fv(location int32, transpose bool, value [16]float32)

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, typ uint32, pixels unsafe.Pointer)
	DeleteTexture(texture uint32)

	DrawElements(mode uint32, count int32, typ uint32, offset uintptr)
}

// OpenGL enum values, named as in the C API.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	VENDOR                   = 0x1F00
	RENDERER                 = 0x1F01
	VERSION                  = 0x1F02
	SHADING_LANGUAGE_VERSION = 0x8B8C

	POINTS         = 0x0000
	LINES          = 0x0001
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005

	UNSIGNED_BYTE  = 0x1401
	UNSIGNED_SHORT = 0x1403
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STREAM_DRAW          = 0x88E0
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	VALIDATE_STATUS = 0x8B83
	INFO_LOG_LENGTH = 0x8B84

	TEXTURE_2D         = 0x0DE1
	TEXTURE0           = 0x84C0
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F
	RGBA               = 0x1908
	RGBA8              = 0x8058

	DEPTH_BUFFER_BIT = 0x0100
	COLOR_BUFFER_BIT = 0x4000

	CULL_FACE    = 0x0B44
	DEPTH_TEST   = 0x0B71
	BLEND        = 0x0BE2
	SCISSOR_TEST = 0x0C11

	ONE                 = 1
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	FUNC_ADD            = 0x8006
)

// ErrorName returns the C name of the given GL error code.
func ErrorName(code uint32) string {
	switch code {
	case NO_ERROR:
		return "GL_NO_ERROR"
	case INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return "GL_UNKNOWN_ERROR"
}

// SizeOfType returns the size in bytes of the given GL data type,
// or 0 if it is not one of the vertex attribute types we use.
func SizeOfType(typ uint32) int32 {
	switch typ {
	case FLOAT, UNSIGNED_INT:
		return 4
	case UNSIGNED_SHORT:
		return 2
	case UNSIGNED_BYTE:
		return 1
	}
	return 0
}
