// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu wraps OpenGL shader programs and buffer, vertex array
// and texture objects. Shader programs are built from a single file
// holding both stages, split on "#shader vertex" and "#shader
// fragment" lines.
//
// All GL calls go through the [GL] interface held by a [Context],
// which also records what is bound to each binding point. Use
// glgpu/glnative for a real GL context and glgpu/glfake in tests.
//
// Every object is owned by the goroutine (and OS thread) that made the
// GL context current, and must be released with Delete.
package glgpu
