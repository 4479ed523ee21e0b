// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glfake

import (
	"fmt"
	"strings"
)

// CheckSource is the default [CompileFunc]. It is not a GLSL
// compiler: it rejects empty sources, and lines of code that do not
// end in a statement, block or argument terminator, which is enough
// to catch the missing semicolon of a typical typo. The log uses the
// Mesa "0:line(col): error:" format.
func CheckSource(typ uint32, src string) (bool, string) {
	if strings.TrimSpace(src) == "" {
		return false, "0:1(1): error: syntax error, unexpected end of file\n"
	}
	comment := false
	for i, line := range strings.Split(src, "\n") {
		t := strings.TrimSpace(line)
		if comment {
			if end := strings.Index(t, "*/"); end >= 0 {
				t = strings.TrimSpace(t[end+2:])
				comment = false
			} else {
				continue
			}
		}
		if j := strings.Index(t, "//"); j >= 0 {
			t = strings.TrimSpace(t[:j])
		}
		if j := strings.Index(t, "/*"); j >= 0 {
			if !strings.Contains(t[j:], "*/") {
				comment = true
			}
			t = strings.TrimSpace(t[:j])
		}
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		switch t[len(t)-1] {
		case ';', '{', '}', ')', ',':
			continue
		}
		return false, fmt.Sprintf("0:%d(%d): error: syntax error, unexpected end of line, expecting ',' or ';'\n", i+1, len(line)+1)
	}
	return true, ""
}
