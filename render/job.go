// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/mandelview/fractal"
)

// Common errors returned by the render pipeline.
var (
	// ErrInvalidConfig is returned for impossible sizes or tile counts.
	ErrInvalidConfig = errors.New("render: invalid configuration")

	// ErrStopped is returned when the pipeline has been stopped.
	ErrStopped = errors.New("render: pipeline stopped")

	// ErrNotStarted is returned by Wait before Start.
	ErrNotStarted = errors.New("render: pipeline not started")
)

// Job is one unit of rendering work: a tile stamped with the generation it
// was issued for. A job is consumed by exactly one worker.
type Job struct {
	Tile fractal.Tile

	// Generation identifies the viewport change that produced the job.
	Generation uint64

	// Index is the tile's position within its generation, Count the number
	// of tiles in that generation.
	Index int
	Count int
}

// Result carries the pixels computed for a job.
// len(Pixels) == Job.Tile.Size.
type Result struct {
	Job    Job
	Pixels []byte
}
