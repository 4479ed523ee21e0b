// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sandbox

import (
	"log/slog"

	"cogentcore.org/glsandbox/assets"
	"cogentcore.org/glsandbox/glgpu"
)

// ReloadChanged rebuilds the library programs for the paths waiting on
// changed, without blocking. A program that fails to rebuild is logged
// and stays in use. It returns the number of programs rebuilt.
func ReloadChanged(lib *glgpu.Library, changed <-chan string) int {
	n := 0
	for {
		select {
		case path, ok := <-changed:
			if !ok {
				return n
			}
			if !lib.Has(path) {
				continue
			}
			if err := lib.Reload(path); err != nil {
				slog.Error("sandbox: shader reload failed, keeping the previous program", "path", path, "err", err)
				continue
			}
			n++
		default:
			return n
		}
	}
}

// WatchPrograms adds the files of all library programs not yet in
// watched to w.
func WatchPrograms(w *assets.Watcher, lib *glgpu.Library, watched map[string]bool) {
	for _, p := range lib.Paths() {
		if watched[p] {
			continue
		}
		watched[p] = true
		if err := w.Add(p); err != nil {
			slog.Warn("sandbox: cannot watch shader", "path", p, "err", err)
		}
	}
}
