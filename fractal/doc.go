// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fractal evaluates the Mandelbrot set into RGBA pixel buffers.
//
// The unit of work is a [Tile]: a contiguous byte range of a row-major RGBA
// framebuffer, stamped with the [Viewport] in effect when it was issued.
// [ComputeTile] is pure and deterministic, so tiles can be evaluated on any
// number of goroutines with no shared state.
//
// # Coordinate mapping
//
// A pixel (x, y) of an image of width w maps to the complex point
//
//	re = (w/2 - (x + CenterX)) / Zoom
//	im = (w/2 - (y + CenterY)) / Zoom
//
// The image is treated as square: the width is the reference for both axes.
//
// # Coloring
//
// Points are shaded in grayscale by escape time. A point that escapes at
// step k gets intensity 255-k. Points that never escape within
// [MaxIterations] get [InteriorIntensity].
package fractal
