// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/mandelview"
	"github.com/gogpu/mandelview/fractal"
	"github.com/gogpu/mandelview/internal/parallel"
)

// Span is a contiguous byte range of the framebuffer.
type Span struct {
	Start int
	Size  int
}

// Partition splits total bytes of RGBA pixels into n contiguous, 4-byte
// aligned spans that cover the buffer exactly.
//
// When the pixel count is not divisible by n, the first pixels%n spans get
// one extra pixel. Spans that would be empty (n greater than the pixel
// count) are dropped.
func Partition(total, n int) ([]Span, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: tile count %d", ErrInvalidConfig, n)
	}
	if total <= 0 || total%4 != 0 {
		return nil, fmt.Errorf("%w: framebuffer length %d", ErrInvalidConfig, total)
	}

	pixels := total / 4
	base, rem := pixels/n, pixels%n

	spans := make([]Span, 0, min(n, pixels))
	start := 0
	for i := range n {
		px := base
		if i < rem {
			px++
		}
		if px == 0 {
			continue
		}
		spans = append(spans, Span{Start: start, Size: px * 4})
		start += px * 4
	}
	return spans, nil
}

// Generator re-tiles the framebuffer on every viewport change.
//
// Enqueue does not remove jobs left over from earlier generations; they stay
// queued and are discarded by the compositor when their results arrive.
//
// Thread safety: Generator is safe for concurrent use. Concurrent Enqueue
// calls are serialized so each generation's tiles are queued together.
type Generator struct {
	queue *parallel.WorkQueue[Job]
	spans []Span

	// latest is the most recently issued generation.
	latest atomic.Uint64

	mu sync.Mutex
}

// NewGenerator creates a generator that splits a framebuffer of total bytes
// into the given number of tiles and enqueues them on queue.
func NewGenerator(queue *parallel.WorkQueue[Job], total, tiles int) (*Generator, error) {
	spans, err := Partition(total, tiles)
	if err != nil {
		return nil, err
	}
	return &Generator{queue: queue, spans: spans}, nil
}

// Enqueue starts a new generation: it stamps every span with vp and the new
// generation number and appends the jobs to the queue.
// It returns the generation number.
func (g *Generator) Enqueue(vp fractal.Viewport) (uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	gen := g.latest.Add(1)
	count := len(g.spans)

	var queued int
	for i, s := range g.spans {
		n, err := g.queue.Add(Job{
			Tile:       fractal.Tile{Start: s.Start, Size: s.Size, Viewport: vp},
			Generation: gen,
			Index:      i,
			Count:      count,
		})
		if err != nil {
			return gen, fmt.Errorf("render: enqueue tile %d of generation %d: %w", i, gen, err)
		}
		queued = n
	}

	mandelview.Logger().Debug("render: tiles enqueued",
		"generation", gen, "tiles", count, "queued", queued, "viewport", vp.String())
	return gen, nil
}

// Latest returns the most recently issued generation, or 0 if none.
func (g *Generator) Latest() uint64 {
	return g.latest.Load()
}

// Tiles returns the number of tiles per generation.
func (g *Generator) Tiles() int {
	return len(g.spans)
}

// Spans returns a copy of the tile layout.
func (g *Generator) Spans() []Span {
	out := make([]Span, len(g.spans))
	copy(out, g.spans)
	return out
}
