// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render drives the tile-based parallel Mandelbrot pipeline.
//
// # Pipeline
//
//	Generator -> WorkQueue -> WorkerPool -> result channel -> Compositor -> Surface
//
// The [Generator] splits the framebuffer into equal contiguous tiles and
// enqueues a full set whenever the viewport changes. A fixed pool of workers
// computes tiles with [fractal.ComputeTileInto] and sends the pixels to the
// [Compositor], which copies them into the surface framebuffer and presents
// it. [Renderer] wires all of it together.
//
// # Generations
//
// Each call to [Renderer.SetViewport] starts a new generation. Tiles queued
// for an older generation are still computed, but the compositor drops their
// results once a newer generation has been issued, so stale tiles never
// overwrite fresh ones.
//
// # Shutdown
//
// Shutdown is cooperative. [Renderer.Stop] clears the shared running flag,
// wakes parked workers and hangs up the result channel. A tile already being
// computed is finished before its worker exits.
//
// # Usage
//
//	s := surface.NewImageSurface(800, 800)
//	r, err := render.New(s, render.WithWorkers(8))
//	if err != nil {
//	    return err
//	}
//	if err := r.Start(ctx); err != nil {
//	    return err
//	}
//	defer r.Stop()
//
//	gen, _ := r.SetViewport(camera.New().Snapshot())
//	_ = r.Wait(ctx, gen)
package render
