// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o666))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "OpenGL_Testing", cfg.Window.Title)
	assert.True(t, cfg.Window.VSync)
	assert.Equal(t, 3, cfg.Window.GLMajor)
	assert.Equal(t, 3, cfg.Window.GLMinor)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.Render.ClearColor)
	assert.True(t, cfg.Render.Blend)
	assert.True(t, cfg.Render.DebugGL)
	assert.Equal(t, "res/shaders/Basic.shader", cfg.Assets.Shader)
	assert.Equal(t, "res/shaders/Color.shader", cfg.Assets.ColorShader)
	assert.Equal(t, "res/textures/star.png", cfg.Assets.Texture)
	assert.True(t, cfg.Assets.WatchShaders)
	assert.Equal(t, "", cfg.Scene)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestSetFromDefaults(t *testing.T) {
	type inner struct {
		On   bool    `default:"true"`
		Rate float32 `default:"0.5"`
	}
	v := struct {
		Name  string `default:"quad"`
		N     int    `default:"6"`
		Inner inner
	}{}
	require.NoError(t, SetFromDefaults(&v))
	assert.Equal(t, "quad", v.Name)
	assert.Equal(t, 6, v.N)
	assert.True(t, v.Inner.On)
	assert.Equal(t, float32(0.5), v.Inner.Rate)

	bad := struct {
		N int `default:"many"`
	}{}
	assert.Error(t, SetFromDefaults(&bad))
}

func TestOpenTOML(t *testing.T) {
	path := writeFile(t, "glsandbox.toml", `
Scene = "Texture2D"
LogLevel = "debug"

[Window]
Width = 960
Height = 540

[Render]
ClearColor = [0.1, 0.2, 0.3, 1.0]
DebugGL = false
`)
	cfg := New()
	require.NoError(t, Open(cfg, path))
	assert.Equal(t, 960, cfg.Window.Width)
	assert.Equal(t, 540, cfg.Window.Height)
	assert.Equal(t, "OpenGL_Testing", cfg.Window.Title, "unset fields keep defaults")
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, cfg.Render.ClearColor)
	assert.False(t, cfg.Render.DebugGL)
	assert.True(t, cfg.Render.Blend)
	assert.Equal(t, "Texture2D", cfg.Scene)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestOpenYAML(t *testing.T) {
	path := writeFile(t, "glsandbox.yaml", `
scene: ColorQuad
window:
  title: sandbox
  vsync: false
assets:
  watchshaders: false
`)
	cfg := New()
	require.NoError(t, Open(cfg, path))
	assert.Equal(t, "ColorQuad", cfg.Scene)
	assert.Equal(t, "sandbox", cfg.Window.Title)
	assert.False(t, cfg.Window.VSync)
	assert.False(t, cfg.Assets.WatchShaders)
	assert.Equal(t, 640, cfg.Window.Width)

	empty := writeFile(t, "empty.yml", "")
	assert.NoError(t, Open(New(), empty))
}

func TestOpenErrors(t *testing.T) {
	assert.ErrorIs(t, Open(New(), filepath.Join(t.TempDir(), "none.toml")), os.ErrNotExist)

	typo := writeFile(t, "typo.toml", "[Window]\nWidht = 100\n")
	assert.Error(t, Open(New(), typo))

	typoYAML := writeFile(t, "typo.yaml", "window:\n  widht: 100\n")
	assert.Error(t, Open(New(), typoYAML))

	syntax := writeFile(t, "syntax.toml", "[Window\n")
	err := Open(New(), syntax)
	assert.ErrorContains(t, err, syntax)
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)

	require.NoError(t, os.WriteFile(DefaultFile, []byte("[Window]\nWidth = 800\n"), 0o666))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)

	_, err = Load("missing.toml")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile("bad.toml", []byte("[Window]\nWidth = 0\n"), 0o666))
	_, err = Load("bad.toml")
	assert.ErrorContains(t, err, "window size")
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Window.GLMajor = 2
	assert.Error(t, cfg.Validate())
	cfg = New()
	cfg.Render.ClearColor[1] = 1.5
	assert.Error(t, cfg.Validate())
}

func TestSampleFile(t *testing.T) {
	cfg := New()
	require.NoError(t, Open(cfg, "../"+DefaultFile))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, New(), cfg, "the sample file spells out the defaults")
}
