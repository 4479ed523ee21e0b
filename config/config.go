// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the glsandbox app.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"cogentcore.org/glsandbox/base/errors"
)

// DefaultFile is the config file read when none is given,
// if it exists in the working directory.
const DefaultFile = "glsandbox.toml"

// Config is the main config struct
// that contains all of the configuration
// options for the glsandbox app.
type Config struct {

	// the window to open
	Window Window `desc:"the window to open"`

	// how frames are drawn
	Render Render `desc:"how frames are drawn"`

	// the files the scenes draw with
	Assets Assets `desc:"the files the scenes draw with"`

	// the scene to start in; empty for the scene menu
	Scene string `desc:"the scene to start in; empty for the scene menu"`

	// [def: info] the minimum level of log messages to print (debug, info, warn, error)
	LogLevel string `default:"info" desc:"the minimum level of log messages to print (debug, info, warn, error)"`
}

type Window struct {

	// [def: 640] the width of the window in screen coordinates
	Width int `default:"640" min:"1" desc:"the width of the window in screen coordinates"`

	// [def: 480] the height of the window in screen coordinates
	Height int `default:"480" min:"1" desc:"the height of the window in screen coordinates"`

	// [def: OpenGL_Testing] the window title
	Title string `default:"OpenGL_Testing" desc:"the window title"`

	// [def: true] whether to sync buffer swaps to the display refresh rate
	VSync bool `default:"true" desc:"whether to sync buffer swaps to the display refresh rate"`

	// [def: 3] the major version of the OpenGL core profile to request
	GLMajor int `default:"3" min:"3" desc:"the major version of the OpenGL core profile to request"`

	// [def: 3] the minor version of the OpenGL core profile to request
	GLMinor int `default:"3" min:"0" desc:"the minor version of the OpenGL core profile to request"`
}

type Render struct {

	// the initial clear color, as RGBA in 0..1; opaque black by default
	ClearColor [4]float32 `desc:"the initial clear color, as RGBA in 0..1; opaque black by default"`

	// [def: true] whether to enable alpha blending
	Blend bool `default:"true" desc:"whether to enable alpha blending"`

	// [def: true] whether to check for GL errors after every call, panicking on any
	DebugGL bool `default:"true" desc:"whether to check for GL errors after every call, panicking on any"`
}

type Assets struct {

	// [def: res/shaders/Basic.shader] the textured shader file
	Shader string `default:"res/shaders/Basic.shader" desc:"the textured shader file"`

	// [def: res/shaders/Color.shader] the untextured shader file
	ColorShader string `default:"res/shaders/Color.shader" desc:"the untextured shader file"`

	// [def: res/textures/star.png] the texture image file
	Texture string `default:"res/textures/star.png" desc:"the texture image file"`

	// [def: true] whether to rebuild shader programs when their files change
	WatchShaders bool `default:"true" desc:"whether to rebuild shader programs when their files change"`
}

// New returns a new Config with all fields set to their defaults.
func New() *Config {
	cfg := &Config{}
	// the tags above are fixed, so this can only fail on a typo in them
	errors.Must(SetFromDefaults(cfg))
	// arrays have no default tag form
	cfg.Render.ClearColor = [4]float32{0, 0, 0, 1}
	return cfg
}

// Open reads the config file at path into cfg, on top of the values
// already in it. The format is chosen by extension: .yaml and .yml are
// YAML (with lower-case keys), anything else is TOML. A leading ~ is
// expanded to the home directory. Unknown keys are errors.
func Open(cfg *Config, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if err == io.EOF {
			err = nil // empty file
		}
	default:
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	return nil
}

// Load returns the defaults overridden by the config file at path.
// An empty path means [DefaultFile], which is skipped if it does not
// exist; an explicitly given file must exist.
func Load(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return cfg, cfg.Validate()
		}
		path = DefaultFile
	}
	if err := Open(cfg, path); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Validate returns an error if any field is out of range.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width < 1 || c.Window.Height < 1:
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Window.GLMajor < 3 || c.Window.GLMinor < 0:
		return fmt.Errorf("config: OpenGL %d.%d is not a core profile version", c.Window.GLMajor, c.Window.GLMinor)
	}
	for _, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: clear color %v must be in 0..1", c.Render.ClearColor)
		}
	}
	return nil
}
