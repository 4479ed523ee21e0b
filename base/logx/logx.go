// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the process-wide slog logger used for
// all diagnostic output, including shader compile logs and GL errors.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It defaults to
// [slog.LevelInfo], [slog.LevelDebug] with the "debug" build tag, and
// [slog.LevelWarn] with the "release" build tag.
var UserLevel = defaultUserLevel

// ParseLevel returns the [slog.Level] for the given name
// (debug, info, warn, error), case-insensitively.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if name == "" {
		return UserLevel, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return UserLevel, fmt.Errorf("logx: unknown log level %q", name)
	}
	return lvl, nil
}

// NewHandler returns a text handler writing to w at [UserLevel].
// Level names are colored when w is a terminal that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: levelVar(),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(lvl)).String())
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// SetDefault sets [UserLevel] and installs a [NewHandler] on w as the
// default slog logger.
func SetDefault(w io.Writer, level slog.Level) {
	UserLevel = level
	slog.SetDefault(slog.New(NewHandler(w)))
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

func levelVar() *slog.LevelVar {
	lv := &slog.LevelVar{}
	lv.Set(UserLevel)
	return lv
}
