// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
	"path/filepath"
	"runtime"
)

// Targets are the binding points whose current object the [Context]
// tracks. Exactly one object per target is current at any time;
// binding one object implicitly unbinds the previous one.
type Targets int32

const (
	// ArrayBufferTarget is GL_ARRAY_BUFFER.
	ArrayBufferTarget Targets = iota

	// ElementBufferTarget is GL_ELEMENT_ARRAY_BUFFER. In GL this binding
	// is part of the currently bound vertex array.
	ElementBufferTarget

	// VertexArrayTarget is the current vertex array object.
	VertexArrayTarget

	// Texture2DTarget is GL_TEXTURE_2D on the active texture unit.
	Texture2DTarget

	// ProgramTarget is the program in use.
	ProgramTarget

	targetsN
)

var targetNames = [targetsN]string{"ArrayBuffer", "ElementBuffer", "VertexArray", "Texture2D", "Program"}

func (tg Targets) String() string {
	if tg < 0 || tg >= targetsN {
		return "Targets(?)"
	}
	return targetNames[tg]
}

// maxErrors bounds how many queued errors check drains at once:
// without a current context some drivers report an error forever.
const maxErrors = 16

// Context owns the [GL] and the binding state that GL itself keeps
// as hidden global state. Every resource wrapper holds the Context
// it was created on, and all Bind / Unbind calls go through it, so
// the current object for each binding point is always visible via
// [Context.Bound].
//
// A Context is not safe for concurrent use: like the GL context it
// models, it belongs to the thread that made the GL context current.
type Context struct {
	// GL is the underlying API.
	GL GL

	// Debug enables polling glGetError after each call made by glgpu.
	// Any error is logged and then panics with a [*CallError].
	Debug bool

	bound    [targetsN]uint32
	unit     uint32
	textures map[uint32]uint32 // texture unit -> bound 2D texture
	elements map[uint32]uint32 // vertex array -> its element buffer
}

// NewContext returns a new Context over the given GL, with nothing bound.
func NewContext(gl GL) *Context {
	return &Context{
		GL:       gl,
		textures: make(map[uint32]uint32),
		elements: make(map[uint32]uint32),
	}
}

// Bound returns the handle currently bound to the given target, 0 if none.
func (c *Context) Bound(target Targets) uint32 {
	if target == Texture2DTarget {
		return c.textures[c.unit]
	}
	return c.bound[target]
}

// Bind makes handle the current object for target. A handle of 0
// resets the binding point to none.
func (c *Context) Bind(target Targets, handle uint32) {
	switch target {
	case ArrayBufferTarget:
		c.GL.BindBuffer(ARRAY_BUFFER, handle)
	case ElementBufferTarget:
		c.GL.BindBuffer(ELEMENT_ARRAY_BUFFER, handle)
		if vao := c.bound[VertexArrayTarget]; vao != 0 {
			c.elements[vao] = handle
		}
	case VertexArrayTarget:
		c.GL.BindVertexArray(handle)
		c.bound[ElementBufferTarget] = c.elements[handle]
	case Texture2DTarget:
		c.GL.BindTexture(TEXTURE_2D, handle)
		c.textures[c.unit] = handle
	case ProgramTarget:
		c.GL.UseProgram(handle)
	}
	c.bound[target] = handle
	c.check("Bind" + target.String())
}

// Unbind resets the given binding point to none.
func (c *Context) Unbind(target Targets) {
	c.Bind(target, 0)
}

// ActiveTexture selects the texture unit (0-based) that
// [Texture2DTarget] bindings apply to.
func (c *Context) ActiveTexture(unit uint32) {
	c.GL.ActiveTexture(TEXTURE0 + unit)
	c.unit = unit
	c.check("ActiveTexture")
}

// TextureUnit returns the active texture unit.
func (c *Context) TextureUnit() uint32 {
	return c.unit
}

// forget clears any binding of handle on target, mirroring GL which
// reverts a binding to 0 when the bound object is deleted.
func (c *Context) forget(target Targets, handle uint32) {
	switch target {
	case Texture2DTarget:
		for unit, h := range c.textures {
			if h == handle {
				c.textures[unit] = 0
			}
		}
	case VertexArrayTarget:
		delete(c.elements, handle)
	case ElementBufferTarget:
		for vao, h := range c.elements {
			if h == handle {
				c.elements[vao] = 0
			}
		}
	}
	if c.bound[target] == handle {
		c.bound[target] = 0
	}
}

// Version returns the GL_VERSION string of the driver.
func (c *Context) Version() string {
	v := c.GL.GetString(VERSION)
	c.check("GetString")
	return v
}

// check drains the GL error queue when Debug is on. Any error is
// fatal: it is logged with the call and the call site, then panics.
func (c *Context) check(call string) {
	if !c.Debug {
		return
	}
	var codes []uint32
	for len(codes) < maxErrors {
		code := c.GL.GetError()
		if code == NO_ERROR {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return
	}
	err := &CallError{Call: call, Codes: codes}
	err.File, err.Line = callSite()
	slog.Error("glgpu: GL error", "call", call, "code", ErrorName(codes[0]), "site", err.Site())
	panic(err)
}

// callSite returns the first caller outside of this file, so that
// errors raised from Bind point at the code that asked for the bind.
func callSite() (string, int) {
	for skip := 2; skip < 16; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if base := filepath.Base(file); base != "context.go" {
			return base, line
		}
	}
	return "", 0
}
