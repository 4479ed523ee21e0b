// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sandbox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/glsandbox/assets"
	"cogentcore.org/glsandbox/glgpu"
	"cogentcore.org/glsandbox/glgpu/glfake"
)

const colorShader = `#shader vertex
#version 330 core
layout(location = 0) in vec4 position;
void main()
{
    gl_Position = position;
}

#shader fragment
#version 330 core
layout(location = 0) out vec4 color;
uniform vec4 u_Color;
void main()
{
    color = u_Color;
}
`

func newLibrary(t *testing.T) (*glgpu.Library, *glfake.GL, string) {
	t.Helper()
	f := glfake.New()
	ctx := glgpu.NewContext(f)
	ctx.Debug = true
	lib := glgpu.NewLibrary(ctx)
	t.Cleanup(lib.Delete)
	path := filepath.Join(t.TempDir(), "Color.shader")
	require.NoError(t, os.WriteFile(path, []byte(colorShader), 0o644))
	return lib, f, path
}

func TestReloadChanged(t *testing.T) {
	lib, _, path := newLibrary(t)
	pr, err := lib.Open(path)
	require.NoError(t, err)
	first := pr.Handle()

	changed := make(chan string, 4)
	assert.Zero(t, ReloadChanged(lib, changed), "returns at once when nothing changed")

	changed <- path
	changed <- filepath.Join(filepath.Dir(path), "Other.shader")
	assert.Equal(t, 1, ReloadChanged(lib, changed))
	assert.NotEqual(t, first, pr.Handle())
	assert.Empty(t, changed)

	// a broken edit keeps the last good program
	good := pr.Handle()
	broken := strings.Replace(colorShader, "color = u_Color;", "color = u_Color", 1)
	require.NoError(t, os.WriteFile(path, []byte(broken), 0o644))
	changed <- path
	assert.Zero(t, ReloadChanged(lib, changed))
	assert.Equal(t, good, pr.Handle())

	close(changed)
	assert.Zero(t, ReloadChanged(lib, changed))
}

func TestWatchPrograms(t *testing.T) {
	lib, _, path := newLibrary(t)
	pr, err := lib.Open(path)
	require.NoError(t, err)
	first := pr.Handle()

	w, err := assets.NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	watched := make(map[string]bool)
	WatchPrograms(w, lib, watched)
	assert.Equal(t, map[string]bool{path: true}, watched)
	WatchPrograms(w, lib, watched)
	assert.Len(t, watched, 1)

	edited := strings.Replace(colorShader, "color = u_Color;", "color = u_Color * 0.5;", 1)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))
	assert.Eventually(t, func() bool {
		return ReloadChanged(lib, w.Events()) > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotEqual(t, first, pr.Handle())
}
