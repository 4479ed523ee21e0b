// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the sandbox scenes: small self-contained
// rendering experiments, each with its own debug controls, and a
// [Menu] to pick between them at runtime.
package scene

import (
	"cogentcore.org/glsandbox/config"
	"cogentcore.org/glsandbox/glgpu"
)

// Scene is one rendering experiment. All methods are called on the GL
// thread, once per frame in the order Update, Render, DebugUI.
type Scene interface {
	// Update advances the scene by dt seconds.
	Update(dt float32)

	// Render draws the scene.
	Render()

	// DebugUI adds the scene's controls to the debug window.
	DebugUI(ui UI)

	// Delete releases the GL resources of the scene.
	Delete()
}

// UI is the subset of an immediate mode GUI that scenes use for their
// controls. Widget methods return true when the user changed the value
// or pressed the button this frame.
type UI interface {
	// Begin starts a window. End must be called whatever it returns.
	Begin(name string) bool
	End()
	Text(format string, args ...any)
	Button(label string) bool
	SliderFloat3(label string, v *[3]float32, min, max float32) bool
	ColorEdit4(label string, c *[4]float32) bool

	// Framerate returns the smoothed frames per second.
	Framerate() float32
}

// Env is what scenes are built with.
type Env struct {
	Renderer *glgpu.Renderer

	// Library holds the shader programs, shared between scenes and
	// rebuilt when their files change.
	Library *glgpu.Library

	Assets config.Assets

	// Width and Height are the window size in screen coordinates,
	// which is the space of the scene projections.
	Width, Height int
}

// Context returns the GL context of the renderer.
func (e *Env) Context() *glgpu.Context {
	return e.Renderer.Context()
}

// Factory builds a scene.
type Factory func(env *Env) (Scene, error)

// Defaults registers the standard scenes on m, in menu order.
func Defaults(m *Menu) *Menu {
	m.Register("Clear Color", NewClearColor)
	m.Register("Color Quad", NewColorQuad)
	m.Register("Texture 2D", NewTexture2D)
	return m
}
