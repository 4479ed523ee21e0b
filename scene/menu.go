// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/glsandbox/base/errors"
)

// BackLabel is the label of the button that leaves the current scene.
const BackLabel = "<-"

// Menu is a [Scene] that lists the registered scenes as buttons and
// runs the one picked, until its back button is pressed. At most one
// scene exists at a time: leaving a scene deletes it.
type Menu struct {
	env       *Env
	names     []string
	factories map[string]Factory

	current     Scene
	currentName string

	// err is the last failure to open a scene, shown in the menu.
	err error
}

// NewMenu returns an empty menu building scenes with env.
func NewMenu(env *Env) *Menu {
	return &Menu{env: env, factories: make(map[string]Factory)}
}

// Register adds a scene to the menu. Registering a name again
// replaces its factory.
func (m *Menu) Register(name string, f Factory) {
	if _, ok := m.factories[name]; !ok {
		m.names = append(m.names, name)
	}
	m.factories[name] = f
}

// Names returns the registered scene names, in registration order.
func (m *Menu) Names() []string {
	return m.names
}

// Lookup returns the registered name matching name, ignoring case and
// spaces, so that "texture2d" finds "Texture 2D".
func (m *Menu) Lookup(name string) (string, bool) {
	key := func(s string) string { return strings.ToLower(strings.ReplaceAll(s, " ", "")) }
	k := key(name)
	for _, n := range m.names {
		if key(n) == k {
			return n, true
		}
	}
	return "", false
}

// Current returns the running scene and its name, nil if in the menu.
func (m *Menu) Current() (Scene, string) {
	return m.current, m.currentName
}

// Open builds and switches to the named scene, deleting the current
// one. On failure the menu is shown, with the error.
func (m *Menu) Open(name string) error {
	reg, ok := m.Lookup(name)
	if !ok {
		return fmt.Errorf("scene: no scene named %q (have %s)", name, strings.Join(m.names, ", "))
	}
	m.Back()
	sc, err := m.factories[reg](m.env)
	if err != nil {
		m.err = fmt.Errorf("%s: %w", reg, err)
		return m.err
	}
	m.err = nil
	m.current, m.currentName = sc, reg
	slog.Info("scene: opened", "scene", reg)
	return nil
}

// Back deletes the current scene and returns to the menu.
func (m *Menu) Back() {
	if m.current == nil {
		return
	}
	m.current.Delete()
	slog.Info("scene: closed", "scene", m.currentName)
	m.current, m.currentName = nil, ""
}

func (m *Menu) Update(dt float32) {
	if m.current != nil {
		m.current.Update(dt)
	}
}

func (m *Menu) Render() {
	if m.current != nil {
		m.current.Render()
	}
}

// DebugUI shows the scene buttons, or the back button and the
// controls of the current scene.
func (m *Menu) DebugUI(ui UI) {
	ui.Begin("Scenes")
	defer ui.End()
	if m.current != nil {
		if ui.Button(BackLabel) {
			m.Back()
			return
		}
		m.current.DebugUI(ui)
		return
	}
	for _, name := range m.names {
		if ui.Button(name) {
			errors.Log(m.Open(name))
		}
	}
	if m.err != nil {
		ui.Text("error: %v", m.err)
	}
}

// Delete deletes the current scene.
func (m *Menu) Delete() {
	m.Back()
}
