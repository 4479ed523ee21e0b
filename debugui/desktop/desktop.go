// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop feeds glfw window input to the debug overlay.
package desktop

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"cogentcore.org/glsandbox/debugui"
	"cogentcore.org/glsandbox/window"
)

// Platform is a [debugui.Platform] for a glfw window.
type Platform struct {
	win    *window.Window
	time   float64
	mapped bool

	// mouse buttons pressed since the last frame, so clicks shorter
	// than a frame are not lost
	pressed [3]bool
}

var _ debugui.Platform = (*Platform)(nil)

var buttons = [3]glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle}

// New installs input callbacks on w. They deliver to the current imgui
// context, so the overlay must exist before events are polled.
func New(w *window.Window) *Platform {
	p := &Platform{win: w}
	gw := w.Glfw()
	gw.SetMouseButtonCallback(p.mouseButton)
	gw.SetScrollCallback(p.scroll)
	gw.SetKeyCallback(p.key)
	gw.SetCharCallback(p.char)
	return p
}

func (p *Platform) DisplaySize() [2]float32 {
	sz := p.win.Size()
	return [2]float32{float32(sz.X), float32(sz.Y)}
}

func (p *Platform) FramebufferSize() [2]float32 {
	sz := p.win.FramebufferSize()
	return [2]float32{float32(sz.X), float32(sz.Y)}
}

func (p *Platform) NewFrame(io imgui.IO) {
	if !p.mapped {
		keyMap(io)
		p.mapped = true
	}
	now := p.win.Time()
	if p.time > 0 && now > p.time {
		io.SetDeltaTime(float32(now - p.time))
	} else {
		io.SetDeltaTime(1.0 / 60)
	}
	p.time = now

	gw := p.win.Glfw()
	if gw.GetAttrib(glfw.Focused) != 0 {
		x, y := gw.GetCursorPos()
		io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}
	for i, b := range buttons {
		io.SetMouseButtonDown(i, p.pressed[i] || gw.GetMouseButton(b) == glfw.Press)
		p.pressed[i] = false
	}
}

func (p *Platform) mouseButton(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	for i, mb := range buttons {
		if mb == b {
			p.pressed[i] = true
		}
	}
}

func (p *Platform) scroll(_ *glfw.Window, x, y float64) {
	imgui.CurrentIO().AddMouseWheelDelta(float32(x), float32(y))
}

func (p *Platform) key(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	io := imgui.CurrentIO()
	switch action {
	case glfw.Press:
		io.KeyPress(int(k))
	case glfw.Release:
		io.KeyRelease(int(k))
	}
	// modifier state from the key events is unreliable across systems
	io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (p *Platform) char(_ *glfw.Window, c rune) {
	imgui.CurrentIO().AddInputCharacters(string(c))
}

func keyMap(io imgui.IO) {
	keys := map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyPageUp:     glfw.KeyPageUp,
		imgui.KeyPageDown:   glfw.KeyPageDown,
		imgui.KeyHome:       glfw.KeyHome,
		imgui.KeyEnd:        glfw.KeyEnd,
		imgui.KeyInsert:     glfw.KeyInsert,
		imgui.KeyDelete:     glfw.KeyDelete,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeySpace:      glfw.KeySpace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
		imgui.KeyA:          glfw.KeyA,
		imgui.KeyC:          glfw.KeyC,
		imgui.KeyV:          glfw.KeyV,
		imgui.KeyX:          glfw.KeyX,
		imgui.KeyY:          glfw.KeyY,
		imgui.KeyZ:          glfw.KeyZ,
	}
	for im, k := range keys {
		io.KeyMap(im, int(k))
	}
}
