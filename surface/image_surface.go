// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
)

// ImageSurface is a headless surface backed by memory.
//
// Present copies the framebuffer into a front *image.RGBA under a lock and,
// when enabled, draws the HUD on it. Snapshot returns that front image,
// scaled to the output size with Catmull-Rom resampling.
//
// Example:
//
//	s := surface.NewImageSurface(800, 800)
//	defer s.Close()
//
//	// ... render into s.Framebuffer() and Present ...
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	back   []byte

	mu       sync.Mutex
	front    *image.RGBA
	outW     int
	outH     int
	hud      bool
	status   []string
	presents int64
	closed   bool
}

// NewImageSurface creates a headless surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceWithOptions(Options{Width: width, Height: height})
}

// NewImageSurfaceWithOptions creates a headless surface from opts.
func NewImageSurfaceWithOptions(opts Options) *ImageSurface {
	if opts.Width <= 0 {
		opts.Width = 1
	}
	if opts.Height <= 0 {
		opts.Height = 1
	}
	outW, outH := opts.outputSize()

	return &ImageSurface{
		width:  opts.Width,
		height: opts.Height,
		back:   make([]byte, opts.Width*opts.Height*4),
		front:  image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		outW:   outW,
		outH:   outH,
		hud:    opts.HUD,
	}
}

// Width returns the framebuffer width in pixels.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the framebuffer height in pixels.
func (s *ImageSurface) Height() int {
	return s.height
}

// Framebuffer returns the back buffer written by the compositor.
func (s *ImageSurface) Framebuffer() []byte {
	return s.back
}

// Present copies the back buffer to the front image.
func (s *ImageSurface) Present() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	copy(s.front.Pix, s.back)
	if s.hud && len(s.status) > 0 {
		DrawHUD(s.front, s.status)
	}
	s.presents++
	return nil
}

// Resize sets the size Snapshot scales to.
func (s *ImageSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	s.mu.Lock()
	s.outW, s.outH = width, height
	s.mu.Unlock()
	return nil
}

// SetStatus replaces the HUD lines drawn on subsequent presents.
func (s *ImageSurface) SetStatus(lines ...string) {
	s.mu.Lock()
	s.status = append(s.status[:0], lines...)
	s.mu.Unlock()
}

// Snapshot returns a copy of the last presented frame at the output size.
func (s *ImageSurface) Snapshot() *image.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst := image.NewRGBA(image.Rect(0, 0, s.outW, s.outH))
	if s.outW == s.width && s.outH == s.height {
		copy(dst.Pix, s.front.Pix)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), s.front, s.front.Bounds(), draw.Src, nil)
	return dst
}

// Presents returns how many times Present succeeded.
func (s *ImageSurface) Presents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.presents
}

// Close marks the surface closed; later presents fail with ErrClosed.
func (s *ImageSurface) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}
