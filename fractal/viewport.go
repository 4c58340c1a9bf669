// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fractal

import "fmt"

// Viewport is an immutable snapshot of the pan/zoom state.
//
// Zoom is in pixels per unit of the complex plane. CenterX and CenterY are
// pixel offsets added to every pixel coordinate before mapping.
type Viewport struct {
	Zoom    float64
	CenterX float64
	CenterY float64
}

// Point maps pixel (x, y) of an image of the given width to the complex
// plane.
func (v Viewport) Point(x, y, width int) complex128 {
	half := float64(width) / 2
	re := (half - (float64(x) + v.CenterX)) / v.Zoom
	im := (half - (float64(y) + v.CenterY)) / v.Zoom
	return complex(re, im)
}

// String returns a compact description, e.g. "zoom=200 x=100 y=50".
func (v Viewport) String() string {
	return fmt.Sprintf("zoom=%g x=%g y=%g", v.Zoom, v.CenterX, v.CenterY)
}

// Tile is a contiguous byte range of a framebuffer to render.
// Start and Size are byte offsets and lengths, both multiples of 4.
type Tile struct {
	Start    int
	Size     int
	Viewport Viewport
}

// Pixels returns the number of RGBA pixels covered by the tile.
func (t Tile) Pixels() int {
	return t.Size / 4
}

// End returns the byte offset one past the tile.
func (t Tile) End() int {
	return t.Start + t.Size
}
