// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/mandelview/fractal"
	"github.com/gogpu/mandelview/internal/parallel"
)

// checkPartition verifies spans are aligned, contiguous and cover total.
func checkPartition(t *testing.T, spans []Span, total int) {
	t.Helper()
	next := 0
	for i, s := range spans {
		if s.Start%4 != 0 || s.Size%4 != 0 {
			t.Fatalf("span %d = %+v is not 4-byte aligned", i, s)
		}
		if s.Size <= 0 {
			t.Fatalf("span %d is empty", i)
		}
		if s.Start != next {
			t.Fatalf("span %d starts at %d, want %d (gap or overlap)", i, s.Start, next)
		}
		next = s.Start + s.Size
	}
	if next != total {
		t.Fatalf("spans cover %d bytes, want %d", next, total)
	}
}

// =============================================================================
// Partition
// =============================================================================

func TestPartition_ExactDivision(t *testing.T) {
	for n := 1; n <= 16; n++ {
		for _, k := range []int{1, 3, 50} {
			total := 4 * n * k
			spans, err := Partition(total, n)
			if err != nil {
				t.Fatalf("Partition(%d, %d) = %v", total, n, err)
			}
			if len(spans) != n {
				t.Fatalf("Partition(%d, %d) returned %d spans", total, n, len(spans))
			}
			checkPartition(t, spans, total)
			for _, s := range spans {
				if s.Size != total/n {
					t.Fatalf("Partition(%d, %d) uneven span %+v", total, n, s)
				}
			}
		}
	}
}

func TestPartition_Framebuffer800x800(t *testing.T) {
	total := 800 * 800 * 4
	spans, err := Partition(total, 8)
	if err != nil {
		t.Fatal(err)
	}
	checkPartition(t, spans, total)
	if spans[1].Start != 320000 {
		t.Errorf("second tile starts at %d, want 320000", spans[1].Start)
	}
}

func TestPartition_Remainder(t *testing.T) {
	// 10 pixels over 3 tiles: 4, 3, 3.
	spans, err := Partition(40, 3)
	if err != nil {
		t.Fatal(err)
	}
	checkPartition(t, spans, 40)
	want := []int{16, 12, 12}
	for i, s := range spans {
		if s.Size != want[i] {
			t.Errorf("span %d size = %d, want %d", i, s.Size, want[i])
		}
	}
}

func TestPartition_MoreTilesThanPixels(t *testing.T) {
	spans, err := Partition(12, 8)
	if err != nil {
		t.Fatal(err)
	}
	if len(spans) != 3 {
		t.Errorf("len(spans) = %d, want 3", len(spans))
	}
	checkPartition(t, spans, 12)
}

func TestPartition_Invalid(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{400, 0},
		{400, -1},
		{0, 4},
		{402, 2},
	}
	for _, tt := range tests {
		if _, err := Partition(tt.total, tt.n); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Partition(%d, %d) error = %v, want ErrInvalidConfig", tt.total, tt.n, err)
		}
	}
}

// =============================================================================
// Generator
// =============================================================================

func TestGenerator_Enqueue(t *testing.T) {
	q := parallel.NewWorkQueue[Job]()
	g, err := NewGenerator(q, 64*64*4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if g.Latest() != 0 {
		t.Errorf("Latest() before Enqueue = %d, want 0", g.Latest())
	}

	vp := fractal.Viewport{Zoom: 0.6, CenterX: 200}
	gen, err := g.Enqueue(vp)
	if err != nil || gen != 1 {
		t.Fatalf("Enqueue() = %d, %v; want 1, nil", gen, err)
	}

	spans := g.Spans()
	for i := range 4 {
		job, ok, _ := q.Get()
		if !ok {
			t.Fatalf("job %d missing", i)
		}
		if job.Generation != 1 || job.Index != i || job.Count != 4 {
			t.Errorf("job %d = gen %d index %d count %d", i, job.Generation, job.Index, job.Count)
		}
		if job.Tile.Viewport != vp {
			t.Errorf("job %d viewport = %v, want %v", i, job.Tile.Viewport, vp)
		}
		if job.Tile.Start != spans[i].Start || job.Tile.Size != spans[i].Size {
			t.Errorf("job %d tile = %+v, want span %+v", i, job.Tile, spans[i])
		}
	}
}

func TestGenerator_OldJobsStayQueued(t *testing.T) {
	q := parallel.NewWorkQueue[Job]()
	g, _ := NewGenerator(q, 400, 2)

	_, _ = g.Enqueue(fractal.Viewport{Zoom: 1})
	gen, _ := g.Enqueue(fractal.Viewport{Zoom: 2})
	if gen != 2 || g.Latest() != 2 {
		t.Fatalf("second generation = %d, Latest() = %d", gen, g.Latest())
	}
	if q.Len() != 4 {
		t.Fatalf("queue length = %d, want 4 (old tiles are not cleared)", q.Len())
	}

	first, _, _ := q.Get()
	if first.Generation != 1 {
		t.Errorf("head generation = %d, want 1 (FIFO)", first.Generation)
	}
}
