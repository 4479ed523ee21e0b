// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens the desktop window and OpenGL context the
// sandbox draws into, using glfw.
//
// All functions must be called on the main initial thread:
// lock it with runtime.LockOSThread in an init function.
package window

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cogentcore.org/glsandbox/base/errors"
	"cogentcore.org/glsandbox/config"
)

// Window is a glfw window with a current OpenGL core profile context.
type Window struct {
	win *glfw.Window
}

// New initializes glfw and opens a window as configured, with an
// OpenGL core profile context of the configured version made current
// on the calling thread.
func New(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Log(fmt.Errorf("window: glfw init: %w", err))
	}
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// required by macOS for any core profile
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Log(fmt.Errorf("window: create %dx%d OpenGL %d.%d window: %w", cfg.Width, cfg.Height, cfg.GLMajor, cfg.GLMinor, err))
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	slog.Debug("window: opened", "size", image.Pt(cfg.Width, cfg.Height), "title", cfg.Title)
	return &Window{win: win}, nil
}

// Glfw returns the underlying glfw window.
func (w *Window) Glfw() *glfw.Window {
	return w.win
}

// ShouldClose returns whether the user asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// SwapBuffers presents the frame drawn.
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// PollEvents processes pending window events.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Size returns the window size in screen coordinates.
func (w *Window) Size() image.Point {
	x, y := w.win.GetSize()
	return image.Pt(x, y)
}

// FramebufferSize returns the window size in pixels, which differs
// from [Window.Size] on high DPI displays.
func (w *Window) FramebufferSize() image.Point {
	x, y := w.win.GetFramebufferSize()
	return image.Pt(x, y)
}

// Time returns the number of seconds since glfw was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// Destroy closes the window and shuts down glfw.
// Call as last thing before quitting.
func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
