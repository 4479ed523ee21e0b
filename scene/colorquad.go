// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/glsandbox/glgpu"

// ColorQuad draws an untextured quad in clip space whose color pulses
// between blue and magenta.
type ColorQuad struct {
	env    *Env
	quad   *quad
	shader *glgpu.Program
	Pulse  Pulse
}

// NewColorQuad returns a new ColorQuad scene drawn with the
// [config.Assets.ColorShader] program.
func NewColorQuad(env *Env) (Scene, error) {
	pr, err := env.Library.Open(env.Assets.ColorShader)
	if err != nil {
		return nil, err
	}
	positions := []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		-0.5, 0.5,
	}
	layout := (&glgpu.VertexBufferLayout{}).Push(glgpu.FLOAT, 2)
	return &ColorQuad{
		env:    env,
		quad:   newQuad(env.Context(), positions, layout),
		shader: pr,
		Pulse:  NewPulse(0.05),
	}, nil
}

func (cq *ColorQuad) Update(dt float32) {
	cq.Pulse.Advance()
}

func (cq *ColorQuad) Render() {
	cq.shader.SetUniform4f("u_Color", cq.Pulse.Value, 0.3, 0.8, 1)
	cq.quad.draw(cq.env.Renderer, cq.shader)
}

func (cq *ColorQuad) DebugUI(ui UI) {
	ui.Text("r = %.2f", cq.Pulse.Value)
}

// Delete deletes the quad; the program belongs to the library.
func (cq *ColorQuad) Delete() {
	cq.quad.delete()
}
