// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package debugui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glsandbox/glgpu"
	"cogentcore.org/glsandbox/glgpu/glfake"
)

// fakePlatform is a window of fixed size with no input.
type fakePlatform struct {
	display, framebuffer [2]float32
	frames               int
}

func (p *fakePlatform) DisplaySize() [2]float32     { return p.display }
func (p *fakePlatform) FramebufferSize() [2]float32 { return p.framebuffer }

func (p *fakePlatform) NewFrame(io imgui.IO) {
	p.frames++
	io.SetDeltaTime(1.0 / 60)
}

func newOverlay(t *testing.T, p *fakePlatform) (*Overlay, *glgpu.Renderer, *glfake.GL) {
	t.Helper()
	f := glfake.New()
	ctx := glgpu.NewContext(f)
	ctx.Debug = true
	rn := glgpu.NewRenderer(ctx)
	o, err := New(rn, p)
	require.NoError(t, err)
	t.Cleanup(o.Delete)
	return o, rn, f
}

// frame draws one frame with a window holding a text and a button.
func frame(o *Overlay) {
	o.NewFrame()
	o.Begin("Scenes")
	o.Text("%d scenes", 3)
	o.Button("Clear Color")
	o.End()
	o.Render()
}

func TestNew(t *testing.T) {
	o, _, f := newOverlay(t, &fakePlatform{display: [2]float32{640, 480}, framebuffer: [2]float32{640, 480}})
	assert.Equal(t, 1, f.LivePrograms())
	assert.Equal(t, 1, f.LiveTextures())
	assert.Equal(t, 2, f.LiveBuffers())

	st := f.TextureState(o.FontTexture().Handle())
	require.NotNil(t, st)
	assert.Positive(t, st.Width)
	assert.Positive(t, st.Height)

	attrs := f.Attribs(o.va.Handle())
	require.Len(t, attrs, 3)
	assert.Equal(t, int32(4), attrs[2].Size)
	assert.True(t, attrs[2].Normalized)
	assert.Equal(t, int32(20), attrs[0].Stride)
}

func TestRender(t *testing.T) {
	p := &fakePlatform{display: [2]float32{640, 480}, framebuffer: [2]float32{1280, 960}}
	o, rn, f := newOverlay(t, p)

	// new windows are laid out on their first frame and drawn from
	// the second
	frame(o)
	f.Draws = nil
	frame(o)
	assert.Equal(t, 2, p.frames)
	require.NotEmpty(t, f.Draws)

	idx := uint32(glgpu.UNSIGNED_SHORT)
	if imgui.IndexBufferLayout() == 4 {
		idx = glgpu.UNSIGNED_INT
	}
	for _, dc := range f.Draws {
		assert.Equal(t, uint32(glgpu.TRIANGLES), dc.Mode)
		assert.Equal(t, idx, dc.Type)
		assert.Equal(t, o.FontTexture().Handle(), dc.Texture)
		assert.Positive(t, dc.Scissor[2])
		assert.Positive(t, dc.Scissor[3])
		assert.LessOrEqual(t, dc.Scissor[1]+dc.Scissor[3], int32(960))
	}

	pr := f.Draws[0].Program
	v, ok := f.UniformValue(pr, "ProjMtx")
	require.True(t, ok)
	assert.Equal(t, [16]float32(mgl32.Ortho(0, 640, 480, 0, -1, 1)), v)

	assert.False(t, f.Enabled[glgpu.SCISSOR_TEST], "scissor test is turned off")
	assert.False(t, f.Enabled[glgpu.BLEND], "blend state is restored")
	assert.False(t, rn.Blending())
	assert.Zero(t, rn.Context().Bound(glgpu.VertexArrayTarget))
}

func TestRenderRestoresState(t *testing.T) {
	o, rn, f := newOverlay(t, &fakePlatform{display: [2]float32{320, 240}, framebuffer: [2]float32{320, 240}})
	rn.Blend(true)
	rn.Context().ActiveTexture(2)
	frame(o)
	frame(o)
	require.NotEmpty(t, f.Draws)
	assert.True(t, f.Enabled[glgpu.BLEND])
	assert.True(t, rn.Blending())
	assert.Equal(t, uint32(2), rn.Context().TextureUnit(), "the font is bound on unit 0 only while drawing")
}

func TestRenderMinimized(t *testing.T) {
	o, _, f := newOverlay(t, &fakePlatform{display: [2]float32{640, 480}})
	frame(o)
	frame(o)
	assert.Empty(t, f.Draws, "nothing is drawn to an empty framebuffer")
}

func TestDelete(t *testing.T) {
	f := glfake.New()
	ctx := glgpu.NewContext(f)
	ctx.Debug = true
	o, err := New(glgpu.NewRenderer(ctx), &fakePlatform{})
	require.NoError(t, err)
	o.Delete()
	o.Delete()
	assert.Zero(t, f.LivePrograms())
	assert.Zero(t, f.LiveTextures())
	assert.Zero(t, f.LiveBuffers())
	assert.Zero(t, f.LiveVertexArrays())
}
