// Package mandelview is an interactive Mandelbrot set viewer built around a
// tile-based parallel rendering pipeline.
//
// # Overview
//
// The framebuffer is split into equal contiguous byte ranges (tiles). A fixed
// pool of workers pulls tile jobs from a shared queue, evaluates the fractal for
// each pixel and publishes the pixels on a result channel. A single compositor
// goroutine copies finished tiles into the framebuffer and presents it.
//
//	Tile Generator -> WorkQueue -> Worker Pool -> results -> Compositor -> Surface
//
// # Packages
//
//   - fractal: viewport mapping, escape-time kernel, tile compute
//   - render: tile generator, compositor and the Renderer that wires them
//   - camera: pan/zoom state driven by discrete commands
//   - surface: presentation surfaces (headless image surface, HUD overlay)
//   - internal/parallel: sync flag, work queue, result channel, worker pool
//   - internal/window: ebiten window surface and keyboard input
//
// # Generations
//
// Every viewport change starts a new generation. Jobs carry the generation they
// were issued for, and the compositor drops results from older generations so
// stale tiles never overwrite fresh ones.
//
// # Logging
//
// mandelview is silent by default. Call [SetLogger] to enable logging.
package mandelview

// Version is the current version of mandelview.
const Version = "0.3.0"
