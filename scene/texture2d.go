// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"cogentcore.org/glsandbox/glgpu"
)

// Texture2D draws a textured 100x100 quad twice in window coordinates:
// once fixed at the center of the window and once at a translation
// set from the debug UI. The texture is tinted by a color that pulses
// between green and red.
type Texture2D struct {
	env     *Env
	quad    *quad
	shader  *glgpu.Program
	texture *glgpu.Texture

	proj, view mgl32.Mat4

	// Translation is the position of the movable quad.
	Translation [3]float32

	// Static is the position of the fixed quad.
	Static [3]float32

	Pulse Pulse
}

// NewTexture2D returns a new Texture2D scene drawn with the
// [config.Assets.Shader] program and [config.Assets.Texture] image.
func NewTexture2D(env *Env) (Scene, error) {
	pr, err := env.Library.Open(env.Assets.Shader)
	if err != nil {
		return nil, err
	}
	ctx := env.Context()
	tx, err := glgpu.OpenTexture(ctx, env.Assets.Texture)
	if err != nil {
		return nil, err
	}
	// position xy, texture coordinate uv
	vertices := []float32{
		-50, -50, 0, 0,
		50, -50, 1, 0,
		50, 50, 1, 1,
		-50, 50, 0, 1,
	}
	layout := (&glgpu.VertexBufferLayout{}).Push(glgpu.FLOAT, 2).Push(glgpu.FLOAT, 2)
	w, h := float32(env.Width), float32(env.Height)
	s := &Texture2D{
		env:     env,
		quad:    newQuad(ctx, vertices, layout),
		shader:  pr,
		texture: tx,
		proj:    mgl32.Ortho(0, w, 0, h, -1, 1),
		view:    mgl32.Translate3D(0, 0, 0),
		Static:  [3]float32{w / 2, h / 2, 0},
		Pulse:   NewPulse(0.05),
	}
	tx.Bind(0)
	pr.SetUniform1i("u_Texture", 0)
	pr.Unbind()
	tx.Unbind()
	return s, nil
}

// MVP returns the model view projection matrix for a quad at pos.
func (s *Texture2D) MVP(pos [3]float32) mgl32.Mat4 {
	model := mgl32.Translate3D(pos[0], pos[1], pos[2])
	return s.proj.Mul4(s.view).Mul4(model)
}

func (s *Texture2D) Update(dt float32) {
	s.Pulse.Advance()
}

func (s *Texture2D) Render() {
	s.texture.Bind(0)
	r := s.Pulse.Value
	s.shader.SetUniform4f("u_Color", r, 1-r, 0, 1)
	for _, pos := range [][3]float32{s.Static, s.Translation} {
		s.shader.SetUniformMat4f("u_MVP", s.MVP(pos))
		s.quad.draw(s.env.Renderer, s.shader)
	}
}

func (s *Texture2D) DebugUI(ui UI) {
	ui.SliderFloat3("Translation", &s.Translation, 0, float32(s.env.Height))
	fps := ui.Framerate()
	if fps > 0 {
		ui.Text("Application average %.3f ms/frame (%.1f FPS)", 1000/fps, fps)
	}
}

// Delete deletes the quad and texture; the program belongs to the
// library.
func (s *Texture2D) Delete() {
	s.quad.delete()
	s.texture.Delete()
}
