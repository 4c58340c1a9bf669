// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"fmt"
	"sync"

	"github.com/gogpu/mandelview"
	"github.com/gogpu/mandelview/fractal"
	"github.com/gogpu/mandelview/internal/parallel"
	"github.com/gogpu/mandelview/surface"
)

// Renderer owns the whole pipeline for one surface: work queue, running
// flag, worker pool, result channel, compositor and tile generator.
//
// Thread safety: Renderer methods are safe for concurrent use.
type Renderer struct {
	surface surface.Surface
	width   int
	workers int

	queue   *parallel.WorkQueue[Job]
	results *parallel.Channel[Result]
	running *parallel.FlagSender
	pool    *parallel.WorkerPool[Job, Result]
	comp    *Compositor
	gen     *Generator
	onFatal func(error)

	mu      sync.Mutex
	started bool
	stopped bool
}

// Stats is a point-in-time view of pipeline counters.
type Stats struct {
	Workers    int
	Tiles      int
	Generation uint64 // latest generation issued
	Completed  uint64 // latest generation fully composited
	Processed  int64  // tiles computed and delivered by workers
	Composited int64  // tiles written to the framebuffer
	Discarded  int64  // stale tiles dropped
	Queued     int    // jobs waiting in the queue
}

// New creates a renderer for s. The surface framebuffer must hold
// Width*Height RGBA pixels.
func New(s surface.Surface, opts ...Option) (*Renderer, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidConfig)
	}
	w, h := s.Width(), s.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: surface %dx%d", ErrInvalidConfig, w, h)
	}
	fb := s.Framebuffer()
	if len(fb) != w*h*4 {
		return nil, fmt.Errorf("%w: framebuffer is %d bytes, want %d", ErrInvalidConfig, len(fb), w*h*4)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.tiles <= 0 {
		o.tiles = o.workers
	}
	if o.resultBuffer < 0 {
		o.resultBuffer = o.workers
	}

	queue := parallel.NewWorkQueue[Job]()
	gen, err := NewGenerator(queue, len(fb), o.tiles)
	if err != nil {
		return nil, err
	}

	results := parallel.NewChannel[Result](o.resultBuffer)
	tx, rx := parallel.NewSyncFlag(true)

	comp := NewCompositor(s, results, rx, gen.Latest)
	comp.onFatal = o.onFatal
	bufs := comp.bufs

	pool := parallel.NewWorkerPool[Job, Result](o.workers, queue, results, rx, func(j Job) Result {
		buf := bufs.Get(j.Tile.Size)
		fractal.ComputeTileInto(buf, j.Tile, w)
		return Result{Job: j, Pixels: buf}
	})
	pool.SetFatalHandler(o.onFatal)

	return &Renderer{
		surface: s,
		width:   w,
		workers: pool.Workers(),
		queue:   queue,
		results: results,
		running: tx,
		pool:    pool,
		comp:    comp,
		gen:     gen,
		onFatal: o.onFatal,
	}, nil
}

// Start spawns the workers and the compositor. The compositor also stops
// when ctx is done. Calling Start again is a no-op.
func (r *Renderer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return ErrStopped
	}
	if r.started {
		return nil
	}
	r.started = true

	r.pool.Start()
	go func() { _ = r.comp.Run(ctx) }()

	mandelview.Logger().Info("render: pipeline started",
		"workers", r.workers, "tiles", r.gen.Tiles(), "width", r.width, "height", r.surface.Height())
	return nil
}

// SetViewport enqueues a full tile set for vp and returns its generation.
// It may be called before Start; the jobs wait in the queue.
func (r *Renderer) SetViewport(vp fractal.Viewport) (uint64, error) {
	r.mu.Lock()
	stopped := r.stopped
	r.mu.Unlock()
	if stopped {
		return 0, ErrStopped
	}
	return r.gen.Enqueue(vp)
}

// Wait blocks until generation gen (or a newer one) is fully composited,
// the pipeline stops, or ctx is done.
func (r *Renderer) Wait(ctx context.Context, gen uint64) error {
	r.mu.Lock()
	started := r.started
	r.mu.Unlock()
	if !started {
		return ErrNotStarted
	}
	return r.comp.Wait(ctx, gen)
}

// Stop shuts the pipeline down and waits for every goroutine to exit.
// Workers finish the tile in hand first. Stop is idempotent.
func (r *Renderer) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	started := r.started
	r.mu.Unlock()

	if err := r.running.Set(false); err != nil {
		r.onFatal(fmt.Errorf("render: clearing running flag: %w", err))
	}
	r.queue.Wake()
	r.results.Close()

	r.pool.Wait()
	if started {
		<-r.comp.Done()
	}

	mandelview.Logger().Info("render: pipeline stopped",
		"processed", r.pool.Processed(), "composited", r.comp.Composited(), "discarded", r.comp.Discarded())
}

// Done is closed when the compositor has exited, either because the
// pipeline was stopped or because presenting failed.
func (r *Renderer) Done() <-chan struct{} {
	return r.comp.Done()
}

// Err returns the presentation error that ended the compositor, if any.
// Only valid after Done is closed.
func (r *Renderer) Err() error {
	return r.comp.Err()
}

// Stats returns current pipeline counters.
func (r *Renderer) Stats() Stats {
	return Stats{
		Workers:    r.workers,
		Tiles:      r.gen.Tiles(),
		Generation: r.gen.Latest(),
		Completed:  r.comp.Completed(),
		Processed:  r.pool.Processed(),
		Composited: r.comp.Composited(),
		Discarded:  r.comp.Discarded(),
		Queued:     r.queue.Len(),
	}
}
