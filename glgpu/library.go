// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"path/filepath"
	"slices"
)

// Library shares file-backed programs by path, so that everything
// drawing with the same shader file uses one program, and a change to
// the file can be applied with a single [Library.Reload].
// The Library owns its programs: callers must not Delete them.
type Library struct {
	ctx      *Context
	programs map[string]*Program
}

// NewLibrary returns an empty Library on ctx.
func NewLibrary(ctx *Context) *Library {
	return &Library{ctx: ctx, programs: make(map[string]*Program)}
}

// Open returns the program for the shader file at path, building it
// on first use.
func (lb *Library) Open(path string) (*Program, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if pr, ok := lb.programs[abs]; ok {
		return pr, nil
	}
	pr, err := OpenProgram(lb.ctx, abs)
	if err != nil {
		return nil, err
	}
	lb.programs[abs] = pr
	return pr, nil
}

// Has returns whether a program for path has been opened.
func (lb *Library) Has(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, ok := lb.programs[abs]
	return ok
}

// Reload rebuilds the program for path in place. If the rebuild fails
// the previous program stays in use and the error is returned.
func (lb *Library) Reload(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	pr, ok := lb.programs[abs]
	if !ok {
		return fmt.Errorf("glgpu: no program loaded from %s", abs)
	}
	return pr.Reload()
}

// Paths returns the shader files of all loaded programs, sorted.
func (lb *Library) Paths() []string {
	ps := make([]string, 0, len(lb.programs))
	for p := range lb.programs {
		ps = append(ps, p)
	}
	slices.Sort(ps)
	return ps
}

// Delete deletes all programs.
func (lb *Library) Delete() {
	for p, pr := range lb.programs {
		pr.Delete()
		delete(lb.programs, p)
	}
}
