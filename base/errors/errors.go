// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error-related helper functions
// that log errors through slog, plus the standard library errors
// functions so that it can be imported in place of "errors".
package errors

import (
	"errors"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
)

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return err
}

// Log1 takes the given value and error, logs the error if it is
// non-nil, and returns the value as given either way. The intended
// usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + callerInfo())
	}
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// callerInfo returns function name, file and line of the caller of
// the function that called callerInfo.
func callerInfo() string {
	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown caller"
	}
	name := "?"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return name + " " + filepath.Base(file) + ":" + strconv.Itoa(line)
}

// New is a re-export of [errors.New].
func New(text string) error { return errors.New(text) }

// As is a re-export of [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }
