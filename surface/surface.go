// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
)

// Common errors returned by surfaces.
var (
	// ErrClosed is returned by Present after the surface has been closed.
	ErrClosed = errors.New("surface: closed")

	// ErrInvalidDimensions is returned for non-positive sizes.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")
)

// Surface is a presentation target with a fixed-size RGBA framebuffer.
type Surface interface {
	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int

	// Framebuffer returns the mutable row-major RGBA framebuffer,
	// Width*Height*4 bytes. The same slice is returned on every call.
	Framebuffer() []byte

	// Present publishes the framebuffer and requests a redraw.
	// It returns ErrClosed once the surface can no longer display frames.
	Present() error

	// Resize changes the output size the framebuffer is displayed at.
	// The framebuffer itself keeps its size.
	Resize(width, height int) error

	// Close releases the surface. Close is idempotent.
	Close() error
}

// Snapshotter is an optional interface for surfaces that can return the
// last presented frame.
type Snapshotter interface {
	// Snapshot returns a copy of the last presented frame at the output
	// size set by Resize.
	Snapshot() *image.RGBA
}

// StatusSetter is an optional interface for surfaces that show a HUD.
type StatusSetter interface {
	// SetStatus replaces the HUD lines shown on subsequent presents.
	SetStatus(lines ...string)
}
