// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fractal

import (
	"bytes"
	"math"
	"testing"
)

func TestViewport_Point(t *testing.T) {
	vp := Viewport{Zoom: 0.6, CenterX: 200, CenterY: 0}
	c := vp.Point(400, 400, 800)

	if want := (400.0 - 600.0) / 0.6; math.Abs(real(c)-want) > 1e-9 {
		t.Errorf("re = %v, want %v", real(c), want)
	}
	if imag(c) != 0 {
		t.Errorf("im = %v, want 0", imag(c))
	}
}

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name    string
		c       complex128
		wantK   int
		escaped bool
	}{
		{"origin is interior", 0, 0, false},
		{"minus one cycles", -1, 0, false},
		{"far point escapes on first step", complex(-333.33, 0), 0, true},
		{"just outside radius", complex(2.5, 0), 0, true},
		{"c=1 escapes after a few steps", 1, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := EscapeTime(tt.c, MaxIterations)
			if ok != tt.escaped || k != tt.wantK {
				t.Errorf("EscapeTime(%v) = %d, %v; want %d, %v", tt.c, k, ok, tt.wantK, tt.escaped)
			}
		})
	}
}

func TestIntensity(t *testing.T) {
	if got := Intensity(0); got != InteriorIntensity {
		t.Errorf("Intensity(0) = %d, want interior %d", got, InteriorIntensity)
	}
	if got := Intensity(complex(-333.33, 0)); got != 255 {
		t.Errorf("Intensity(far) = %d, want 255", got)
	}
	// z: 0 -> 1 -> 2 -> 5; |5|² > 4 at step index 2.
	if got := Intensity(1); got != 253 {
		t.Errorf("Intensity(1) = %d, want 253", got)
	}
}

func TestComputeTile_CenterPixelScenario(t *testing.T) {
	const width = 800
	vp := Viewport{Zoom: 0.6, CenterX: 200, CenterY: 0}

	// One pixel tile at image coordinate (400, 400).
	start := (400*width + 400) * 4
	px := ComputeTile(Tile{Start: start, Size: 4, Viewport: vp}, width)

	if !bytes.Equal(px, []byte{255, 255, 255, 255}) {
		t.Errorf("pixel = %v, want [255 255 255 255]", px)
	}
}

func TestComputeTile_InteriorPixel(t *testing.T) {
	const width = 800
	// x = w/2 - CenterX and y = w/2 - CenterY map to c = 0.
	vp := Viewport{Zoom: 200, CenterX: 100, CenterY: 50}
	x, y := 300, 350

	px := ComputeTile(Tile{Start: (y*width + x) * 4, Size: 4, Viewport: vp}, width)
	for i, b := range px {
		if b != InteriorIntensity {
			t.Fatalf("byte %d = %d, want interior %d", i, b, InteriorIntensity)
		}
	}
}

func TestComputeTile_Deterministic(t *testing.T) {
	tile := Tile{Start: 4 * 1000, Size: 4 * 5000, Viewport: Viewport{Zoom: 200, CenterX: 100, CenterY: 50}}

	a := ComputeTile(tile, 400)
	b := ComputeTile(tile, 400)
	if len(a) != tile.Size {
		t.Fatalf("len = %d, want %d", len(a), tile.Size)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical tiles produced different pixels")
	}
}

func TestComputeTile_MatchesReference(t *testing.T) {
	const width, height = 64, 64
	vp := Viewport{Zoom: 20, CenterX: 8, CenterY: 0}

	ref := make([]byte, width*height*4)
	Render(ref, width, vp)

	// Stitch the image from uneven tiles.
	got := make([]byte, len(ref))
	for start := 0; start < len(ref); {
		size := min(4*173, len(ref)-start)
		copy(got[start:], ComputeTile(Tile{Start: start, Size: size, Viewport: vp}, width))
		start += size
	}
	if !bytes.Equal(got, ref) {
		t.Error("tiled render differs from reference")
	}
}

func TestComputeTile_Degenerate(t *testing.T) {
	if px := ComputeTile(Tile{Size: 0}, 10); px != nil {
		t.Errorf("zero-size tile = %v, want nil", px)
	}

	dst := []byte{9, 9, 9, 9}
	ComputeTileInto(dst, Tile{Size: 4, Viewport: Viewport{Zoom: 1}}, 0)
	if !bytes.Equal(dst, []byte{9, 9, 9, 9}) {
		t.Error("width 0 should leave dst untouched")
	}
}

func BenchmarkComputeTile(b *testing.B) {
	tile := Tile{Start: 0, Size: 800 * 100 * 4, Viewport: Viewport{Zoom: 200, CenterX: 100, CenterY: 50}}
	dst := make([]byte, tile.Size)
	b.ReportAllocs()
	for b.Loop() {
		ComputeTileInto(dst, tile, 800)
	}
}
