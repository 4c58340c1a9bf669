// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/mandelview"
	"github.com/gogpu/mandelview/internal/parallel"
	"github.com/gogpu/mandelview/surface"
)

// Compositor drains tile results and writes them into the surface
// framebuffer. It is the framebuffer's only writer.
//
// Results arrive in whatever order workers finish them. A result whose
// generation is older than the latest one issued is dropped.
type Compositor struct {
	surface surface.Surface
	fb      []byte
	results *parallel.Channel[Result]
	running parallel.FlagReader
	latest  func() uint64
	bufs    *bufferPool
	onFatal func(error)

	mu        sync.Mutex
	current   uint64
	coverage  *parallel.Coverage
	firstTile time.Time
	completed uint64
	notify    chan struct{}

	composited atomic.Int64
	discarded  atomic.Int64

	// done is closed when Run returns.
	done chan struct{}
	err  error
}

// NewCompositor creates a compositor that reads results until running
// reads false or the channel is hung up. latest reports the newest
// generation issued; results older than it are dropped.
func NewCompositor(s surface.Surface, results *parallel.Channel[Result], running parallel.FlagReader, latest func() uint64) *Compositor {
	return &Compositor{
		surface: s,
		fb:      s.Framebuffer(),
		results: results,
		running: running,
		latest:  latest,
		bufs:    newBufferPool(),
		onFatal: func(err error) { panic(err) },
		notify:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run is the compositor loop. It blocks on the result channel, copies each
// fresh tile into the framebuffer and presents it.
//
// Run hangs up the result channel on return, so workers blocked on a send
// exit. It returns the presentation error that ended the loop, or nil.
func (c *Compositor) Run(ctx context.Context) error {
	defer close(c.done)
	defer c.results.Close()

	log := mandelview.Logger()
	for {
		ok, err := c.running.Get()
		if err != nil {
			c.onFatal(fmt.Errorf("compositor: reading shutdown flag: %w", err))
			c.err = err
			return err
		}
		if !ok {
			return nil
		}

		r, ok := c.results.Recv(ctx)
		if !ok {
			return nil
		}

		if err := c.composite(r); err != nil {
			log.Error("render: present failed", "generation", r.Job.Generation, "err", err)
			c.err = err
			return err
		}
	}
}

// composite writes one result and presents the framebuffer.
func (c *Compositor) composite(r Result) error {
	job := r.Job
	defer c.bufs.Put(r.Pixels)

	if latest := c.latest(); job.Generation < latest {
		c.discarded.Add(1)
		mandelview.Logger().Debug("render: stale tile dropped",
			"generation", job.Generation, "latest", latest, "tile", job.Index)
		return nil
	}

	start, end := job.Tile.Start, job.Tile.End()
	if start < 0 || end > len(c.fb) || len(r.Pixels) != job.Tile.Size {
		mandelview.Logger().Error("render: tile out of bounds",
			"start", start, "end", end, "pixels", len(r.Pixels), "framebuffer", len(c.fb))
		return nil
	}

	copy(c.fb[start:end], r.Pixels)
	c.composited.Add(1)

	if err := c.surface.Present(); err != nil {
		return err
	}
	c.track(job)
	return nil
}

// track records that a tile of job's generation has landed and wakes
// waiters once the generation is complete.
func (c *Compositor) track(job Job) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if job.Generation > c.current {
		c.current = job.Generation
		c.coverage = parallel.NewCoverage(job.Count)
		c.firstTile = time.Now()
	}
	if job.Generation != c.current || c.coverage == nil {
		return
	}
	if !c.coverage.Mark(job.Index) || !c.coverage.Complete() {
		return
	}

	c.completed = job.Generation
	close(c.notify)
	c.notify = make(chan struct{})

	mandelview.Logger().Debug("render: frame complete",
		"generation", job.Generation, "tiles", job.Count, "elapsed", time.Since(c.firstTile))
}

// Wait blocks until every tile of generation gen, or of a later generation,
// has been composited.
func (c *Compositor) Wait(ctx context.Context, gen uint64) error {
	for {
		c.mu.Lock()
		if c.completed >= gen {
			c.mu.Unlock()
			return nil
		}
		ch := c.notify
		c.mu.Unlock()

		select {
		case <-ch:
		case <-c.done:
			c.mu.Lock()
			completed := c.completed
			c.mu.Unlock()
			if completed >= gen {
				return nil
			}
			return ErrStopped
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Completed returns the newest fully composited generation.
func (c *Compositor) Completed() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.completed
}

// Composited returns the number of tiles written to the framebuffer.
func (c *Compositor) Composited() int64 {
	return c.composited.Load()
}

// Discarded returns the number of stale tiles dropped.
func (c *Compositor) Discarded() int64 {
	return c.discarded.Load()
}

// Done is closed when Run has returned.
func (c *Compositor) Done() <-chan struct{} {
	return c.done
}

// Err returns the error that ended Run. Only valid after Done is closed.
func (c *Compositor) Err() error {
	return c.err
}
