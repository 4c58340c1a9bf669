// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window presents rendered frames in a desktop window and turns
// key presses into camera commands.
package window

import (
	"errors"

	"github.com/gogpu/mandelview/camera"
)

// ErrUnsupported is returned when the build has no windowing support.
var ErrUnsupported = errors.New("window: not supported in this build (requires cgo)")

// BackendName is the surface registry name of the window backend.
const BackendName = "window"

// Controller receives input from the window's update loop. Both methods
// run on the window thread.
type Controller interface {
	// Command handles one camera command.
	Command(cmd camera.Command)

	// Status returns the HUD lines for the next frame.
	Status() []string
}
