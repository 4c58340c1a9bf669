// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"testing"
)

func TestImageSurface_Dimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 80, 60, 80, 60},
		{"zero clamps to one", 0, 0, 1, 1},
		{"negative clamps to one", -4, 10, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewImageSurface(tt.width, tt.height)
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.wantW, tt.wantH)
			}
			if len(s.Framebuffer()) != tt.wantW*tt.wantH*4 {
				t.Errorf("framebuffer len = %d, want %d", len(s.Framebuffer()), tt.wantW*tt.wantH*4)
			}
		})
	}
}

func TestImageSurface_PresentPublishesFramebuffer(t *testing.T) {
	s := NewImageSurface(4, 4)
	fb := s.Framebuffer()
	for i := range fb {
		fb[i] = 200
	}

	if snap := s.Snapshot(); snap.Pix[0] != 0 {
		t.Fatal("snapshot shows unpresented pixels")
	}
	if err := s.Present(); err != nil {
		t.Fatalf("Present() = %v", err)
	}
	snap := s.Snapshot()
	for i, b := range snap.Pix {
		if b != 200 {
			t.Fatalf("snapshot byte %d = %d, want 200", i, b)
		}
	}
	if s.Presents() != 1 {
		t.Errorf("Presents() = %d, want 1", s.Presents())
	}

	// The snapshot is a copy.
	snap.Pix[0] = 1
	if s.Snapshot().Pix[0] != 200 {
		t.Error("modifying snapshot changed the surface")
	}
}

func TestImageSurface_ResizeScalesSnapshot(t *testing.T) {
	s := NewImageSurface(8, 8)
	fb := s.Framebuffer()
	for i := range fb {
		fb[i] = 255
	}
	_ = s.Present()

	if err := s.Resize(0, 5); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 5) = %v, want ErrInvalidDimensions", err)
	}
	if err := s.Resize(16, 4); err != nil {
		t.Fatalf("Resize() = %v", err)
	}

	snap := s.Snapshot()
	if b := snap.Bounds(); b.Dx() != 16 || b.Dy() != 4 {
		t.Fatalf("snapshot size = %v, want 16x4", b)
	}
	if px := snap.RGBAAt(8, 2); px.R < 250 || px.A < 250 {
		t.Errorf("scaled pixel = %v, want near white", px)
	}
	if len(s.Framebuffer()) != 8*8*4 {
		t.Error("Resize must not change the framebuffer")
	}
}

func TestImageSurface_Closed(t *testing.T) {
	s := NewImageSurface(2, 2)
	_ = s.Close()
	_ = s.Close()
	if err := s.Present(); !errors.Is(err, ErrClosed) {
		t.Errorf("Present() after Close = %v, want ErrClosed", err)
	}
}

func TestImageSurface_HUD(t *testing.T) {
	s := NewImageSurfaceWithOptions(Options{Width: 200, Height: 60, HUD: true})
	s.SetStatus("zoom 200.0")
	if err := s.Present(); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	lit := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 120; x++ {
			if snap.RGBAAt(x, y).R > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("HUD drew no visible pixels")
	}
	if s.Framebuffer()[0] != 0 {
		t.Error("HUD must not draw into the framebuffer")
	}
}
