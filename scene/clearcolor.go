// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// ClearColor clears the window to an editable color.
type ClearColor struct {
	env   *Env
	prev  [4]float32
	Color [4]float32
}

// NewClearColor returns a new ClearColor scene, starting from a light
// blue.
func NewClearColor(env *Env) (Scene, error) {
	return &ClearColor{
		env:   env,
		prev:  env.Renderer.ClearColor(),
		Color: [4]float32{0.2, 0.3, 0.8, 1},
	}, nil
}

func (cc *ClearColor) Update(dt float32) {}

func (cc *ClearColor) Render() {
	cc.env.Renderer.SetClearColor(cc.Color)
	cc.env.Renderer.Clear()
}

func (cc *ClearColor) DebugUI(ui UI) {
	ui.ColorEdit4("Clear Color", &cc.Color)
}

// Delete restores the clear color in use before the scene.
func (cc *ClearColor) Delete() {
	cc.env.Renderer.SetClearColor(cc.prev)
}
