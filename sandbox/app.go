// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sandbox runs the OpenGL sandbox: it opens the window, and
// each frame draws the current scene with the debug overlay on top.
package sandbox

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glsandbox/assets"
	"cogentcore.org/glsandbox/base/errors"
	"cogentcore.org/glsandbox/config"
	"cogentcore.org/glsandbox/debugui"
	"cogentcore.org/glsandbox/debugui/desktop"
	"cogentcore.org/glsandbox/glgpu"
	"cogentcore.org/glsandbox/glgpu/glnative"
	"cogentcore.org/glsandbox/scene"
	"cogentcore.org/glsandbox/window"
)

// App is the running sandbox. All of its methods must be called on
// the main thread.
type App struct {
	Config *config.Config

	win      *window.Window
	ctx      *glgpu.Context
	renderer *glgpu.Renderer
	library  *glgpu.Library
	menu     *scene.Menu
	overlay  *debugui.Overlay

	watcher *assets.Watcher
	watched map[string]bool

	last float64
}

// New opens the window and sets up the GL state, the scene menu and
// the overlay as configured, opening cfg.Scene if it is set.
func New(cfg *config.Config) (*App, error) {
	win, err := window.New(cfg.Window)
	if err != nil {
		return nil, err
	}
	a := &App{Config: cfg, win: win}
	if err := a.init(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) init() error {
	cfg := a.Config
	native, err := glnative.Init()
	if err != nil {
		return errors.Log(err)
	}
	a.ctx = glgpu.NewContext(native)
	a.ctx.Debug = cfg.Render.DebugGL
	slog.Info("sandbox: OpenGL", "version", a.ctx.Version())

	a.renderer = glgpu.NewRenderer(a.ctx)
	a.renderer.SetClearColor(cfg.Render.ClearColor)
	a.renderer.Blend(cfg.Render.Blend)
	a.library = glgpu.NewLibrary(a.ctx)

	a.menu = scene.Defaults(scene.NewMenu(&scene.Env{
		Renderer: a.renderer,
		Library:  a.library,
		Assets:   cfg.Assets,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
	}))
	a.overlay, err = debugui.New(a.renderer, desktop.New(a.win))
	if err != nil {
		return errors.Log(err)
	}

	if cfg.Assets.WatchShaders {
		// without a watcher the sandbox still works, only without reloading
		a.watcher = errors.Log1(assets.NewWatcher())
		a.watched = make(map[string]bool)
	}

	if cfg.Scene != "" {
		if err := a.menu.Open(cfg.Scene); err != nil {
			return errors.Log(fmt.Errorf("sandbox: opening scene %q: %w", cfg.Scene, err))
		}
	}
	return nil
}

// Menu returns the scene menu.
func (a *App) Menu() *scene.Menu {
	return a.menu
}

// Run draws frames until the window is closed.
func (a *App) Run() error {
	a.last = a.win.Time()
	for !a.win.ShouldClose() {
		a.win.PollEvents()
		a.Frame()
		a.win.SwapBuffers()
	}
	return nil
}

// Frame draws one frame: changed shaders are rebuilt, then the current
// scene is updated and drawn, then the overlay.
func (a *App) Frame() {
	now := a.win.Time()
	dt := float32(now - a.last)
	a.last = now

	if a.watcher != nil {
		WatchPrograms(a.watcher, a.library, a.watched)
		ReloadChanged(a.library, a.watcher.Events())
	}

	fb := a.win.FramebufferSize()
	a.renderer.Viewport(fb.X, fb.Y)
	a.renderer.Clear()
	a.menu.Update(dt)
	a.menu.Render()

	a.overlay.NewFrame()
	a.menu.DebugUI(a.overlay)
	a.overlay.Render()
}

// Close deletes the scenes and GL resources and closes the window.
// It is safe to call on a partly initialized App.
func (a *App) Close() {
	if a.menu != nil {
		a.menu.Delete()
		a.menu = nil
	}
	if a.overlay != nil {
		a.overlay.Delete()
		a.overlay = nil
	}
	if a.library != nil {
		a.library.Delete()
		a.library = nil
	}
	if a.watcher != nil {
		errors.Log(a.watcher.Close())
		a.watcher = nil
	}
	if a.win != nil {
		a.win.Destroy()
		a.win = nil
	}
}
