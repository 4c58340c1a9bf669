// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides presentation surfaces for the render pipeline.
//
// A Surface owns an RGBA framebuffer that the compositor writes tiles into
// and a Present operation that publishes the framebuffer for display. The
// compositor is the framebuffer's only writer; Present copies it to a
// front buffer so readers on other goroutines never observe a torn frame.
//
// # Surface Types
//
//   - ImageSurface: headless in-memory surface, used for snapshots and tests
//   - window (internal/window): ebiten desktop window, registered at init
//
// # Registry
//
// Backends register themselves by name and priority:
//
//	surface.Register("window", 100, windowFactory, windowAvailable)
//
//	// Later:
//	s, err := surface.NewSurfaceByName("image", surface.DefaultOptions(800, 800))
//	// or pick the best available backend:
//	s, err := surface.NewSurface(surface.DefaultOptions(800, 800))
//
// # HUD
//
// DrawHUD overlays status text on a presented frame. The framebuffer itself
// is never touched.
package surface
