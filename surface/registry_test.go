// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func TestRegistry_PriorityOrder(t *testing.T) {
	r := NewRegistry()
	factory := func(opts Options) (Surface, error) { return NewImageSurfaceWithOptions(opts), nil }

	r.Register("low", 10, factory, nil)
	r.Register("high", 100, factory, nil)
	r.Register("off", 200, factory, func() bool { return false })

	got := r.Available()
	if len(got) != 2 || got[0] != "high" || got[1] != "low" {
		t.Errorf("Available() = %v, want [high low]", got)
	}
}

func TestRegistry_FallsBackOnFactoryError(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", 100, func(Options) (Surface, error) { return nil, errors.New("no display") }, nil)
	r.Register("image", 10, func(opts Options) (Surface, error) { return NewImageSurfaceWithOptions(opts), nil }, nil)

	s, err := r.NewSurface(DefaultOptions(4, 4))
	if err != nil {
		t.Fatalf("NewSurface() = %v", err)
	}
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("NewSurface() = %T, want *ImageSurface", s)
	}
}

func TestRegistry_Errors(t *testing.T) {
	r := NewRegistry()
	if _, err := r.NewSurface(DefaultOptions(4, 4)); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("empty registry error = %v", err)
	}

	var notFound *BackendNotFoundError
	if _, err := r.NewSurfaceByName("nope", DefaultOptions(4, 4)); !errors.As(err, &notFound) {
		t.Errorf("unknown backend error = %v", err)
	}

	r.Register("off", 1, nil, func() bool { return false })
	var unavailable *BackendUnavailableError
	if _, err := r.NewSurfaceByName("off", DefaultOptions(4, 4)); !errors.As(err, &unavailable) {
		t.Errorf("unavailable backend error = %v", err)
	}
}

func TestGlobalRegistry_ImageBuiltin(t *testing.T) {
	s, err := NewSurfaceByName("image", DefaultOptions(16, 8))
	if err != nil {
		t.Fatalf("NewSurfaceByName(image) = %v", err)
	}
	if s.Width() != 16 || s.Height() != 8 {
		t.Errorf("size = %dx%d", s.Width(), s.Height())
	}
	if _, err := NewSurfaceByName("image", DefaultOptions(0, 8)); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v", err)
	}
}
