// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strconv"
	"strings"
)

// ShaderBuildError is returned when a shader stage fails to compile.
// Log is the driver's info log for the stage.
type ShaderBuildError struct {
	Stage StageTypes
	Path  string
	Log   string
}

func (e *ShaderBuildError) Error() string {
	where := ""
	if e.Path != "" {
		where = " in " + e.Path
	}
	return fmt.Sprintf("glgpu: failed to compile %s shader%s: %s", e.Stage, where, strings.TrimSpace(e.Log))
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Path string
	Log  string
}

func (e *LinkError) Error() string {
	where := ""
	if e.Path != "" {
		where = " " + e.Path
	}
	return fmt.Sprintf("glgpu: failed to link program%s: %s", where, strings.TrimSpace(e.Log))
}

// CallError is the panic value raised by a [Context] in Debug mode
// when glGetError reports an error after a call.
type CallError struct {
	Call  string
	Codes []uint32
	File  string
	Line  int
}

// Site returns the file:line of the call, if known.
func (e *CallError) Site() string {
	if e.File == "" {
		return "?"
	}
	return e.File + ":" + strconv.Itoa(e.Line)
}

func (e *CallError) Error() string {
	names := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		names[i] = fmt.Sprintf("%s (0x%04X)", ErrorName(c), c)
	}
	return fmt.Sprintf("glgpu: %s after %s at %s", strings.Join(names, ", "), e.Call, e.Site())
}
