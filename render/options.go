// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"os"
	"runtime"

	"github.com/gogpu/mandelview"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.New(s, render.WithWorkers(8), render.WithTiles(32))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	workers      int
	tiles        int
	resultBuffer int
	onFatal      func(error)
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		workers:      runtime.GOMAXPROCS(0),
		tiles:        0, // Same as workers
		resultBuffer: -1,
		onFatal:      exitOnFatal,
	}
}

// WithWorkers sets the number of worker goroutines.
// Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithTiles sets the number of tiles per generation.
// By default there is one tile per worker.
func WithTiles(n int) Option {
	return func(o *options) {
		o.tiles = n
	}
}

// WithResultBuffer sets how many finished tiles may wait for the compositor
// before workers block. By default it equals the worker count.
func WithResultBuffer(n int) Option {
	return func(o *options) {
		o.resultBuffer = n
	}
}

// WithFatalHandler replaces the handler called when a pipeline lock is
// found poisoned. The default logs the error and exits the process.
func WithFatalHandler(fn func(error)) Option {
	return func(o *options) {
		if fn != nil {
			o.onFatal = fn
		}
	}
}

// exitOnFatal logs err and terminates the process: the queue or flag state
// can no longer be trusted by any goroutine.
func exitOnFatal(err error) {
	mandelview.Logger().Error("render: fatal pipeline error", "err", err)
	os.Exit(1)
}
