// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ShaderMarker is the token that starts a new stage section in a
// combined shader file, as in:
//
//	#shader vertex
//	...
//	#shader fragment
//	...
const ShaderMarker = "#shader"

// ShaderSource holds the per-stage source text of a combined shader file.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// Stage returns the source for the given stage.
func (ss ShaderSource) Stage(typ StageTypes) string {
	if typ == FragmentStage {
		return ss.Fragment
	}
	return ss.Vertex
}

// maxLine is the longest line ParseShader accepts.
const maxLine = 1 << 20

// ParseShader splits the text read from r into vertex and fragment
// sections. A line containing [ShaderMarker] selects the section named
// by the vertex or fragment keyword on the same line; every other line
// is appended, with a newline, to the selected section. Lines before
// the first marker are dropped. A marker with no known keyword is
// dropped and leaves the selected section as it was. Sections are not
// checked for being empty: the compiler reports that.
func ParseShader(r io.Reader) (ShaderSource, error) {
	var sb [2]strings.Builder
	cur := -1
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.Contains(line, ShaderMarker) {
			switch {
			case strings.Contains(line, "vertex"):
				cur = int(VertexStage)
			case strings.Contains(line, "fragment"):
				cur = int(FragmentStage)
			default:
				slog.Warn("glgpu: unknown shader stage marker", "line", ln, "text", line)
			}
			continue
		}
		if cur < 0 {
			continue
		}
		sb[cur].WriteString(line)
		sb[cur].WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return ShaderSource{}, err
	}
	return ShaderSource{Vertex: sb[VertexStage].String(), Fragment: sb[FragmentStage].String()}, nil
}

// ParseShaderFile opens the given file and calls [ParseShader] on it.
func ParseShaderFile(path string) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, err
	}
	defer f.Close()
	ss, err := ParseShader(f)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("glgpu: reading shader %s: %w", path, err)
	}
	return ss, nil
}
