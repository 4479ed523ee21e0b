// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glfake provides an in-memory implementation of [glgpu.GL]
// for tests. It keeps enough GL state to behave like a driver for the
// calls glgpu makes: object handles, buffer contents, a toy compiler
// and linker, uniform locations, and a record of every draw call.
// Misuse records a GL error, which a Debug [glgpu.Context] turns into
// a panic.
package glfake

import (
	"encoding/binary"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unsafe"

	"cogentcore.org/glsandbox/glgpu"
)

// Call is one recorded API call.
type Call struct {
	Name string
	Args []any
}

// DrawCall is a recorded DrawElements call, with the
// state it was issued against.
type DrawCall struct {
	Mode    uint32
	Count   int32
	Type    uint32
	Offset  uintptr

	Program       uint32
	VertexArray   uint32
	ElementBuffer uint32
	Texture       uint32
	Scissor       [4]int32

	// Indices are the indexes read from the element buffer, for
	// indexed draws.
	Indices []uint32
}

// CompileFunc decides whether src compiles, returning the info log if not.
type CompileFunc func(typ uint32, src string) (ok bool, log string)

type shader struct {
	typ      uint32
	src      string
	compiled bool
	log      string
}

type program struct {
	attached  []uint32
	sources   map[uint32]string // stage type -> source, captured at link
	linked    bool
	validated bool
	log       string
	uniforms  map[string]int32
	values    map[int32]any
}

type vertexArray struct {
	element uint32
	enabled map[uint32]bool
	attribs map[uint32]Attrib
}

// Attrib is a recorded vertex attribute pointer.
type Attrib struct {
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Buffer     uint32
}

// Texture is the recorded state of a texture object.
type Texture struct {
	Width, Height int32
	Format        uint32
	Params        map[uint32]int32
	Pixels        []byte
}

// GL is a fake [glgpu.GL]. The zero value is not usable; use [New].
type GL struct {
	// Calls is every call made, in order.
	Calls []Call

	// Draws is every draw call made, in order.
	Draws []DrawCall

	// UniformQueries counts GetUniformLocation calls per uniform name.
	UniformQueries map[string]int

	// Compile decides compile results. It defaults to [CheckSource].
	Compile CompileFunc

	// LinkLog, if set, makes every link fail with this log.
	LinkLog string

	// Strings are returned by GetString.
	Strings map[uint32]string

	// ClearValue is the last ClearColor, Clears counts Clear calls.
	ClearValue [4]float32
	Clears     int

	ViewportRect [4]int32
	ScissorRect  [4]int32
	BlendSrc     uint32
	BlendDst     uint32
	Enabled      map[uint32]bool

	errors []uint32
	next   uint32

	shaders   map[uint32]*shader
	programs  map[uint32]*program
	buffers   map[uint32][]byte
	arrays    map[uint32]*vertexArray
	textures  map[uint32]*Texture
	deleted   map[uint32]bool
	defaultVA *vertexArray

	arrayBuffer uint32
	vao         uint32
	current     uint32
	unit        uint32
	bound2D     map[uint32]uint32
}

var _ glgpu.GL = (*GL)(nil)

// New returns a new fake GL with no objects.
func New() *GL {
	return &GL{
		UniformQueries: make(map[string]int),
		Compile:        CheckSource,
		Strings: map[uint32]string{
			glgpu.VERSION:  "4.1 glfake",
			glgpu.VENDOR:   "Cogent Core",
			glgpu.RENDERER: "glfake",
		},
		Enabled:   make(map[uint32]bool),
		shaders:   make(map[uint32]*shader),
		programs:  make(map[uint32]*program),
		buffers:   make(map[uint32][]byte),
		arrays:    make(map[uint32]*vertexArray),
		textures:  make(map[uint32]*Texture),
		deleted:   make(map[uint32]bool),
		defaultVA: newVertexArray(),
		bound2D:   make(map[uint32]uint32),
	}
}

func newVertexArray() *vertexArray {
	return &vertexArray{enabled: make(map[uint32]bool), attribs: make(map[uint32]Attrib)}
}

func (f *GL) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

func (f *GL) newHandle() uint32 {
	f.next++
	return f.next
}

// PushError queues a GL error code for GetError to report.
func (f *GL) PushError(code uint32) {
	f.errors = append(f.errors, code)
}

// CallNames returns the names of all recorded calls.
func (f *GL) CallNames() []string {
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many calls of the given name were made.
func (f *GL) Count(name string) int {
	n := 0
	for _, c := range f.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// LiveShaders returns the number of shader objects not yet deleted.
func (f *GL) LiveShaders() int { return len(f.shaders) }

// LivePrograms returns the number of programs not yet deleted.
func (f *GL) LivePrograms() int { return len(f.programs) }

// LiveBuffers returns the number of buffers not yet deleted.
func (f *GL) LiveBuffers() int { return len(f.buffers) }

// LiveVertexArrays returns the number of vertex arrays not yet deleted.
func (f *GL) LiveVertexArrays() int { return len(f.arrays) }

// LiveTextures returns the number of textures not yet deleted.
func (f *GL) LiveTextures() int { return len(f.textures) }

// Buffer returns a copy of the contents of buffer.
func (f *GL) Buffer(buffer uint32) []byte {
	return append([]byte(nil), f.buffers[buffer]...)
}

// TextureState returns the recorded state of texture, nil if unknown.
func (f *GL) TextureState(texture uint32) *Texture {
	return f.textures[texture]
}

// Attribs returns the attribute pointers recorded on vertex array va.
func (f *GL) Attribs(va uint32) map[uint32]Attrib {
	if a, ok := f.arrays[va]; ok {
		return a.attribs
	}
	return nil
}

// UniformValue returns the last value set for the named uniform of
// program, and whether one was set.
func (f *GL) UniformValue(prog uint32, name string) (any, bool) {
	p, ok := f.programs[prog]
	if !ok {
		return nil, false
	}
	loc, ok := p.uniforms[name]
	if !ok {
		return nil, false
	}
	v, ok := p.values[loc]
	return v, ok
}

// CurrentProgram returns the program in use.
func (f *GL) CurrentProgram() uint32 { return f.current }

// CurrentVertexArray returns the bound vertex array.
func (f *GL) CurrentVertexArray() uint32 { return f.vao }

func (f *GL) va() *vertexArray {
	if f.vao == 0 {
		return f.defaultVA
	}
	return f.arrays[f.vao]
}

////////  State

func (f *GL) GetError() uint32 {
	if len(f.errors) == 0 {
		return glgpu.NO_ERROR
	}
	code := f.errors[0]
	f.errors = f.errors[1:]
	return code
}

func (f *GL) GetString(name uint32) string {
	f.record("GetString", name)
	s, ok := f.Strings[name]
	if !ok {
		f.PushError(glgpu.INVALID_ENUM)
	}
	return s
}

func (f *GL) Enable(capability uint32) {
	f.record("Enable", capability)
	f.Enabled[capability] = true
}

func (f *GL) Disable(capability uint32) {
	f.record("Disable", capability)
	f.Enabled[capability] = false
}

func (f *GL) BlendEquation(mode uint32) {
	f.record("BlendEquation", mode)
}

func (f *GL) BlendFunc(sfactor, dfactor uint32) {
	f.record("BlendFunc", sfactor, dfactor)
	f.BlendSrc, f.BlendDst = sfactor, dfactor
}

func (f *GL) ClearColor(r, g, b, a float32) {
	f.record("ClearColor", r, g, b, a)
	f.ClearValue = [4]float32{r, g, b, a}
}

func (f *GL) Clear(mask uint32) {
	f.record("Clear", mask)
	f.Clears++
}

func (f *GL) Viewport(x, y, width, height int32) {
	f.record("Viewport", x, y, width, height)
	f.ViewportRect = [4]int32{x, y, width, height}
}

func (f *GL) Scissor(x, y, width, height int32) {
	f.record("Scissor", x, y, width, height)
	f.ScissorRect = [4]int32{x, y, width, height}
}

////////  Shaders

func (f *GL) CreateShader(typ uint32) uint32 {
	f.record("CreateShader", typ)
	if typ != glgpu.VERTEX_SHADER && typ != glgpu.FRAGMENT_SHADER {
		f.PushError(glgpu.INVALID_ENUM)
		return 0
	}
	h := f.newHandle()
	f.shaders[h] = &shader{typ: typ}
	return h
}

func (f *GL) ShaderSource(sh uint32, src string) {
	f.record("ShaderSource", sh, src)
	s, ok := f.shaders[sh]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	s.src = src
}

func (f *GL) CompileShader(sh uint32) {
	f.record("CompileShader", sh)
	s, ok := f.shaders[sh]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	s.compiled, s.log = f.Compile(s.typ, s.src)
}

func (f *GL) GetShaderiv(sh, pname uint32) int32 {
	f.record("GetShaderiv", sh, pname)
	s, ok := f.shaders[sh]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glgpu.COMPILE_STATUS:
		return boolInt(s.compiled)
	case glgpu.INFO_LOG_LENGTH:
		if s.log == "" {
			return 0
		}
		return int32(len(s.log) + 1)
	}
	f.PushError(glgpu.INVALID_ENUM)
	return 0
}

func (f *GL) GetShaderInfoLog(sh uint32) string {
	f.record("GetShaderInfoLog", sh)
	if s, ok := f.shaders[sh]; ok {
		return s.log
	}
	f.PushError(glgpu.INVALID_VALUE)
	return ""
}

func (f *GL) DeleteShader(sh uint32) {
	f.record("DeleteShader", sh)
	if sh == 0 {
		return
	}
	if _, ok := f.shaders[sh]; !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	// a shader attached to a program is only flagged in GL; we drop it
	// since programs capture sources at link time
	delete(f.shaders, sh)
}

////////  Programs

func (f *GL) CreateProgram() uint32 {
	f.record("CreateProgram")
	h := f.newHandle()
	f.programs[h] = &program{uniforms: make(map[string]int32), values: make(map[int32]any)}
	return h
}

func (f *GL) AttachShader(prog, sh uint32) {
	f.record("AttachShader", prog, sh)
	p, ok := f.programs[prog]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	if _, ok := f.shaders[sh]; !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	p.attached = append(p.attached, sh)
}

func (f *GL) DetachShader(prog, sh uint32) {
	f.record("DetachShader", prog, sh)
	p, ok := f.programs[prog]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	for i, a := range p.attached {
		if a == sh {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}
	f.PushError(glgpu.INVALID_OPERATION)
}

var uniformDecl = regexp.MustCompile(`^\s*uniform\s+\w+\s+(\w+)\s*(\[[^\]]*\])?\s*;`)

func (f *GL) LinkProgram(prog uint32) {
	f.record("LinkProgram", prog)
	p, ok := f.programs[prog]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	p.linked = false
	p.sources = make(map[uint32]string)
	for _, sh := range p.attached {
		s := f.shaders[sh]
		if s == nil || !s.compiled {
			p.log = fmt.Sprintf("error: shader %d is not compiled", sh)
			return
		}
		p.sources[s.typ] = s.src
	}
	switch {
	case f.LinkLog != "":
		p.log = f.LinkLog
		return
	case p.sources[glgpu.VERTEX_SHADER] == "":
		p.log = "error: no vertex shader attached"
		return
	case p.sources[glgpu.FRAGMENT_SHADER] == "":
		p.log = "error: no fragment shader attached"
		return
	}
	p.linked = true
	p.log = ""
	p.uniforms = make(map[string]int32)
	p.values = make(map[int32]any)
	loc := int32(0)
	for _, typ := range []uint32{glgpu.VERTEX_SHADER, glgpu.FRAGMENT_SHADER} {
		for _, line := range strings.Split(p.sources[typ], "\n") {
			m := uniformDecl.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if _, has := p.uniforms[m[1]]; has {
				continue
			}
			p.uniforms[m[1]] = loc
			loc++
		}
	}
}

func (f *GL) ValidateProgram(prog uint32) {
	f.record("ValidateProgram", prog)
	p, ok := f.programs[prog]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	p.validated = p.linked
}

func (f *GL) GetProgramiv(prog, pname uint32) int32 {
	f.record("GetProgramiv", prog, pname)
	p, ok := f.programs[prog]
	if !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glgpu.LINK_STATUS:
		return boolInt(p.linked)
	case glgpu.VALIDATE_STATUS:
		return boolInt(p.validated)
	case glgpu.INFO_LOG_LENGTH:
		if p.log == "" {
			return 0
		}
		return int32(len(p.log) + 1)
	}
	f.PushError(glgpu.INVALID_ENUM)
	return 0
}

func (f *GL) GetProgramInfoLog(prog uint32) string {
	f.record("GetProgramInfoLog", prog)
	if p, ok := f.programs[prog]; ok {
		return p.log
	}
	f.PushError(glgpu.INVALID_VALUE)
	return ""
}

func (f *GL) UseProgram(prog uint32) {
	f.record("UseProgram", prog)
	if prog != 0 {
		p, ok := f.programs[prog]
		if !ok || !p.linked {
			f.PushError(glgpu.INVALID_OPERATION)
			return
		}
	}
	f.current = prog
}

func (f *GL) DeleteProgram(prog uint32) {
	f.record("DeleteProgram", prog)
	if prog == 0 {
		return
	}
	if _, ok := f.programs[prog]; !ok {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	delete(f.programs, prog)
	if f.current == prog {
		f.current = 0
	}
}

////////  Uniforms

func (f *GL) GetUniformLocation(prog uint32, name string) int32 {
	f.record("GetUniformLocation", prog, name)
	f.UniformQueries[name]++
	p, ok := f.programs[prog]
	if !ok || !p.linked {
		f.PushError(glgpu.INVALID_OPERATION)
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (f *GL) setUniform(name string, loc int32, v any) {
	f.record(name, loc, v)
	if f.current == 0 {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	if loc == -1 {
		return
	}
	f.programs[f.current].values[loc] = v
}

func (f *GL) Uniform1i(location, v0 int32) {
	f.setUniform("Uniform1i", location, v0)
}

func (f *GL) Uniform1f(location int32, v0 float32) {
	f.setUniform("Uniform1f", location, v0)
}

func (f *GL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.setUniform("Uniform4f", location, [4]float32{v0, v1, v2, v3})
}

func (f *GL) UniformMatrix4fv(location int32, transpose bool, value [16]float32) {
	f.setUniform("UniformMatrix4fv", location, value)
}

////////  Buffers

func (f *GL) GenBuffer() uint32 {
	f.record("GenBuffer")
	h := f.newHandle()
	f.buffers[h] = nil
	return h
}

func (f *GL) BindBuffer(target, buffer uint32) {
	f.record("BindBuffer", target, buffer)
	if buffer != 0 {
		if _, ok := f.buffers[buffer]; !ok {
			f.PushError(glgpu.INVALID_OPERATION)
			return
		}
	}
	switch target {
	case glgpu.ARRAY_BUFFER:
		f.arrayBuffer = buffer
	case glgpu.ELEMENT_ARRAY_BUFFER:
		f.va().element = buffer
	default:
		f.PushError(glgpu.INVALID_ENUM)
	}
}

func (f *GL) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	f.record("BufferData", target, size, usage)
	var buf uint32
	switch target {
	case glgpu.ARRAY_BUFFER:
		buf = f.arrayBuffer
	case glgpu.ELEMENT_ARRAY_BUFFER:
		buf = f.va().element
	default:
		f.PushError(glgpu.INVALID_ENUM)
		return
	}
	if buf == 0 || size < 0 {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	b := make([]byte, size)
	if data != nil && size > 0 {
		copy(b, unsafe.Slice((*byte)(data), size))
	}
	f.buffers[buf] = b
}

func (f *GL) DeleteBuffer(buffer uint32) {
	f.record("DeleteBuffer", buffer)
	delete(f.buffers, buffer)
	if f.arrayBuffer == buffer {
		f.arrayBuffer = 0
	}
	for _, a := range f.arrays {
		if a.element == buffer {
			a.element = 0
		}
	}
	if f.defaultVA.element == buffer {
		f.defaultVA.element = 0
	}
}

////////  Vertex arrays

func (f *GL) GenVertexArray() uint32 {
	f.record("GenVertexArray")
	h := f.newHandle()
	f.arrays[h] = newVertexArray()
	return h
}

func (f *GL) BindVertexArray(array uint32) {
	f.record("BindVertexArray", array)
	if array != 0 {
		if _, ok := f.arrays[array]; !ok {
			f.PushError(glgpu.INVALID_OPERATION)
			return
		}
	}
	f.vao = array
}

func (f *GL) DeleteVertexArray(array uint32) {
	f.record("DeleteVertexArray", array)
	delete(f.arrays, array)
	if f.vao == array {
		f.vao = 0
	}
}

func (f *GL) EnableVertexAttribArray(index uint32) {
	f.record("EnableVertexAttribArray", index)
	if f.vao == 0 {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	f.va().enabled[index] = true
}

func (f *GL) VertexAttribPointer(index uint32, size int32, typ uint32, normalized bool, stride int32, offset uintptr) {
	f.record("VertexAttribPointer", index, size, typ, normalized, stride, offset)
	if f.vao == 0 || f.arrayBuffer == 0 {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	f.va().attribs[index] = Attrib{Size: size, Type: typ, Normalized: normalized, Stride: stride, Offset: offset, Buffer: f.arrayBuffer}
}

////////  Textures

func (f *GL) GenTexture() uint32 {
	f.record("GenTexture")
	h := f.newHandle()
	f.textures[h] = &Texture{Params: make(map[uint32]int32)}
	return h
}

func (f *GL) ActiveTexture(unit uint32) {
	f.record("ActiveTexture", unit)
	if unit < glgpu.TEXTURE0 || unit >= glgpu.TEXTURE0+32 {
		f.PushError(glgpu.INVALID_ENUM)
		return
	}
	f.unit = unit - glgpu.TEXTURE0
}

func (f *GL) BindTexture(target, texture uint32) {
	f.record("BindTexture", target, texture)
	if target != glgpu.TEXTURE_2D {
		f.PushError(glgpu.INVALID_ENUM)
		return
	}
	if texture != 0 {
		if _, ok := f.textures[texture]; !ok {
			f.PushError(glgpu.INVALID_OPERATION)
			return
		}
	}
	f.bound2D[f.unit] = texture
}

func (f *GL) TexParameteri(target, pname uint32, param int32) {
	f.record("TexParameteri", target, pname, param)
	tx := f.textures[f.bound2D[f.unit]]
	if tx == nil {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	tx.Params[pname] = param
}

func (f *GL) TexImage2D(target uint32, level, internalFormat, width, height int32, format, typ uint32, pixels unsafe.Pointer) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, typ)
	tx := f.textures[f.bound2D[f.unit]]
	if tx == nil {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	if width < 0 || height < 0 {
		f.PushError(glgpu.INVALID_VALUE)
		return
	}
	tx.Width, tx.Height, tx.Format = width, height, format
	n := int(width) * int(height) * 4
	tx.Pixels = make([]byte, n)
	if pixels != nil && n > 0 {
		copy(tx.Pixels, unsafe.Slice((*byte)(pixels), n))
	}
}

func (f *GL) DeleteTexture(texture uint32) {
	f.record("DeleteTexture", texture)
	delete(f.textures, texture)
	for unit, h := range f.bound2D {
		if h == texture {
			f.bound2D[unit] = 0
		}
	}
}

////////  Drawing

func (f *GL) draw() DrawCall {
	return DrawCall{
		Program:       f.current,
		VertexArray:   f.vao,
		ElementBuffer: f.va().element,
		Texture:       f.bound2D[f.unit],
		Scissor:       f.ScissorRect,
	}
}

func (f *GL) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	f.record("DrawElements", mode, count, typ, offset)
	if f.current == 0 || f.vao == 0 || f.va().element == 0 {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	dc := f.draw()
	dc.Mode, dc.Count, dc.Type, dc.Offset = mode, count, typ, offset
	data := f.buffers[dc.ElementBuffer]
	size := int(glgpu.SizeOfType(typ))
	if size == 0 || typ == glgpu.FLOAT {
		f.PushError(glgpu.INVALID_ENUM)
		return
	}
	end := int(offset) + int(count)*size
	if end > len(data) {
		f.PushError(glgpu.INVALID_OPERATION)
		return
	}
	for i := int(offset); i < end; i += size {
		switch size {
		case 4:
			dc.Indices = append(dc.Indices, binary.NativeEndian.Uint32(data[i:]))
		case 2:
			dc.Indices = append(dc.Indices, uint32(binary.NativeEndian.Uint16(data[i:])))
		case 1:
			dc.Indices = append(dc.Indices, uint32(data[i]))
		}
	}
	f.Draws = append(f.Draws, dc)
}

// Floats decodes b as native-endian float32 values.
func Floats(b []byte) []float32 {
	fs := make([]float32, len(b)/4)
	for i := range fs {
		fs[i] = math.Float32frombits(binary.NativeEndian.Uint32(b[4*i:]))
	}
	return fs
}

func boolInt(b bool) int32 {
	if b {
		return glgpu.TRUE
	}
	return glgpu.FALSE
}
