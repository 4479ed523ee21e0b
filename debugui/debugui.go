// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debugui draws the Dear ImGui debug overlay on top of the
// sandbox scenes, with the glgpu wrappers, and provides the widget
// calls scenes use for their controls.
package debugui

import (
	_ "embed"
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"

	"cogentcore.org/glsandbox/glgpu"
	"cogentcore.org/glsandbox/scene"
)

//go:embed imgui.shader
var shaderText string

// Platform connects the overlay to a window.
type Platform interface {
	// DisplaySize returns the window size in screen coordinates.
	DisplaySize() [2]float32

	// FramebufferSize returns the window size in pixels.
	FramebufferSize() [2]float32

	// NewFrame feeds the time step and input since the last frame to io.
	NewFrame(io imgui.IO)
}

// Overlay is an imgui context rendered with OpenGL. Frames are built
// between NewFrame and Render, with the widget methods in between.
type Overlay struct {
	imgui    *imgui.Context
	io       imgui.IO
	platform Platform
	renderer *glgpu.Renderer

	program *glgpu.Program
	font    *glgpu.Texture
	va      *glgpu.VertexArray
	vb      *glgpu.VertexBuffer
	ib      *glgpu.IndexBuffer
}

var _ scene.UI = (*Overlay)(nil)

// New creates the imgui context, with the dark style, and the GL
// resources to draw it with rn.
func New(rn *glgpu.Renderer, platform Platform) (*Overlay, error) {
	layout := (&glgpu.VertexBufferLayout{}).
		Push(glgpu.FLOAT, 2).
		Push(glgpu.FLOAT, 2).
		Push(glgpu.UNSIGNED_BYTE, 4)
	if err := checkLayout(layout); err != nil {
		return nil, err
	}
	src, err := glgpu.ParseShader(strings.NewReader(shaderText))
	if err != nil {
		return nil, err
	}
	ctx := rn.Context()
	pr, err := glgpu.NewProgram(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("debugui: %w", err)
	}

	o := &Overlay{
		imgui:    imgui.CreateContext(nil),
		io:       imgui.CurrentIO(),
		platform: platform,
		renderer: rn,
		program:  pr,
	}
	o.io.SetIniFilename("")
	imgui.StyleColorsDark()

	o.font = glgpu.NewTexture(ctx, fontAtlas(o.io.Fonts()))
	o.io.Fonts().SetTextureID(imgui.TextureID(o.font.Handle()))

	idx := uint32(glgpu.UNSIGNED_SHORT)
	if imgui.IndexBufferLayout() == 4 {
		idx = glgpu.UNSIGNED_INT
	}
	o.va = glgpu.NewVertexArray(ctx)
	o.vb = glgpu.NewStreamVertexBuffer(ctx)
	o.ib = glgpu.NewStreamIndexBuffer(ctx, idx)
	o.va.AddBuffer(o.vb, layout)
	o.va.Unbind()
	o.vb.Unbind()
	return o, nil
}

// checkLayout returns an error if layout does not describe the
// vertices imgui produces.
func checkLayout(layout *glgpu.VertexBufferLayout) error {
	size, pos, uv, col := imgui.VertexBufferLayout()
	els := layout.Elements()
	off := []int{pos, uv, col}
	at := 0
	for i, el := range els {
		if at != off[i] {
			return fmt.Errorf("debugui: imgui vertex element %d is at offset %d, not %d", i, off[i], at)
		}
		at += int(el.Size())
	}
	if size != int(layout.Stride()) {
		return fmt.Errorf("debugui: imgui vertex size is %d, not %d", size, layout.Stride())
	}
	return nil
}

// fontAtlas builds the font atlas and returns a copy of its pixels.
func fontAtlas(fonts imgui.FontAtlas) *image.RGBA {
	data := fonts.TextureDataRGBA32()
	img := image.NewRGBA(image.Rect(0, 0, data.Width, data.Height))
	copy(img.Pix, unsafe.Slice((*byte)(data.Pixels), len(img.Pix)))
	return img
}

// FontTexture returns the texture holding the font atlas.
func (o *Overlay) FontTexture() *glgpu.Texture {
	return o.font
}

// NewFrame starts a new imgui frame.
func (o *Overlay) NewFrame() {
	d := o.platform.DisplaySize()
	o.io.SetDisplaySize(imgui.Vec2{X: d[0], Y: d[1]})
	o.platform.NewFrame(o.io)
	imgui.NewFrame()
}

// Render ends the frame and draws it over the current framebuffer,
// with blending on and a scissor box per draw command. The blend
// state and active texture unit of the renderer are restored and the
// scissor test turned off afterwards.
func (o *Overlay) Render() {
	imgui.Render()
	d := o.platform.DisplaySize()
	fb := o.platform.FramebufferSize()
	if d[0] <= 0 || d[1] <= 0 || fb[0] <= 0 || fb[1] <= 0 {
		return
	}
	data := imgui.RenderedDrawData()
	data.ScaleClipRects(imgui.Vec2{X: fb[0] / d[0], Y: fb[1] / d[1]})

	rn := o.renderer
	blend := rn.Blending()
	unit := rn.Context().TextureUnit()
	rn.Blend(true)
	o.program.SetUniformMat4f("ProjMtx", mgl32.Ortho(0, d[0], d[1], 0, -1, 1))
	o.program.SetUniform1i("Texture", 0)

	for _, list := range data.CommandLists() {
		o.va.Bind()
		o.vb.Upload(list.VertexBuffer())
		o.ib.Upload(list.IndexBuffer())
		first := 0
		for _, cmd := range list.Commands() {
			n := cmd.ElementCount()
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
				first += n
				continue
			}
			c := cmd.ClipRect()
			// imgui has the origin at the top left
			box := image.Rect(int(c.X), int(fb[1]-c.W), int(c.Z), int(fb[1]-c.Y))
			if !box.Empty() && o.bindTexture(cmd.TextureID()) {
				rn.Scissor(box)
				rn.DrawRange(o.va, o.ib, o.program, first, n)
			}
			first += n
		}
	}
	rn.Scissor(image.Rectangle{})
	rn.Blend(blend)
	rn.Context().ActiveTexture(unit)
	o.va.Unbind()
}

// bindTexture binds the texture for id to unit 0, returning false if
// the overlay does not know it.
func (o *Overlay) bindTexture(id imgui.TextureID) bool {
	if id != imgui.TextureID(o.font.Handle()) {
		return false
	}
	o.font.Bind(0)
	return true
}

// Delete releases the GL resources and destroys the imgui context.
func (o *Overlay) Delete() {
	if o.imgui == nil {
		return
	}
	o.va.Delete()
	o.vb.Delete()
	o.ib.Delete()
	o.font.Delete()
	o.program.Delete()
	o.imgui.Destroy()
	o.imgui = nil
}

////////  Widgets

func (o *Overlay) Begin(name string) bool {
	return imgui.Begin(name)
}

func (o *Overlay) End() {
	imgui.End()
}

func (o *Overlay) Text(format string, args ...any) {
	imgui.Text(fmt.Sprintf(format, args...))
}

func (o *Overlay) Button(label string) bool {
	return imgui.Button(label)
}

func (o *Overlay) SliderFloat3(label string, v *[3]float32, min, max float32) bool {
	return imgui.SliderFloat3(label, v, min, max)
}

func (o *Overlay) ColorEdit4(label string, c *[4]float32) bool {
	return imgui.ColorEdit4(label, c)
}

// Framerate returns the frame rate imgui estimates over the last
// frames.
func (o *Overlay) Framerate() float32 {
	return o.io.Framerate()
}
