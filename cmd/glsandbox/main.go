// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glsandbox opens an OpenGL window with a menu of small
// rendering scenes to experiment with.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	flag "github.com/spf13/pflag"

	"cogentcore.org/glsandbox/base/logx"
	"cogentcore.org/glsandbox/config"
	"cogentcore.org/glsandbox/sandbox"
)

var (
	configFile = flag.StringP("config", "c", "", "the config file to read (default "+config.DefaultFile+" if it exists)")
	sceneName  = flag.StringP("scene", "s", "", "the scene to start in, instead of the scene menu")
	logLevel   = flag.String("log-level", "", "the minimum level of log messages to print (debug, info, warn, error)")
	noWatch    = flag.Bool("no-watch", false, "do not rebuild shaders when their files change")
)

func init() {
	// glfw and GL calls must come from the main thread
	runtime.LockOSThread()
}

func main() {
	flag.Usage = Usage
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("glsandbox: " + err.Error())
		os.Exit(1)
	}
}

func run() error {
	logx.SetDefault(os.Stderr, logx.UserLevel)
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *noWatch {
		cfg.Assets.WatchShaders = false
	}
	level, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logx.SetDefault(os.Stderr, level)

	app, err := sandbox.New(cfg)
	if err != nil {
		return err
	}
	defer app.Close()
	return app.Run()
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Glsandbox is a window of small OpenGL scenes to learn and experiment with.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tglsandbox [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
