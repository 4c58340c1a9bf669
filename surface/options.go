// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Options configures surface creation.
type Options struct {
	// Width is the framebuffer width in pixels.
	Width int

	// Height is the framebuffer height in pixels.
	Height int

	// OutputWidth and OutputHeight set the display size.
	// Zero means the framebuffer size.
	OutputWidth  int
	OutputHeight int

	// Title is the window title for windowed backends.
	Title string

	// HUD enables the status overlay.
	HUD bool
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
		Title:  "Mandelbrot-set",
		HUD:    true,
	}
}

// outputSize returns the effective display size.
func (o Options) outputSize() (int, int) {
	w, h := o.OutputWidth, o.OutputHeight
	if w <= 0 {
		w = o.Width
	}
	if h <= 0 {
		h = o.Height
	}
	return w, h
}
