// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package camera holds the pan/zoom state of the viewer and maps input
// commands onto it.
//
// Camera is not safe for concurrent use; the window drives it from its
// update loop.
package camera

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/mandelview/fractal"
)

// Default camera state.
const (
	DefaultZoom     = 200.0
	DefaultX        = 100.0
	DefaultY        = 50.0
	DefaultVelocity = 50.0

	// MinZoom is the smallest zoom ZoomOut will reach. Any positive zoom
	// is a valid view; the floor only keeps repeated zoom-out from
	// underflowing to zero.
	MinZoom = 1e-6
)

// ErrUnknownCommand is returned by ParseCommand for unrecognized names.
var ErrUnknownCommand = errors.New("camera: unknown command")

// Command is a single camera movement.
type Command uint8

// Camera commands.
const (
	None Command = iota
	Up
	Down
	Left
	Right
	ZoomIn
	ZoomOut
)

var commandNames = [...]string{
	None:    "none",
	Up:      "up",
	Down:    "down",
	Left:    "left",
	Right:   "right",
	ZoomIn:  "zoom-in",
	ZoomOut: "zoom-out",
}

// String returns the command name accepted by ParseCommand.
func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand parses a command name. Short forms u, d, l, r, +, - and
// the aliases "in"/"out" are accepted. Matching is case-insensitive.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	case "zoom-in", "in", "+":
		return ZoomIn, nil
	case "zoom-out", "out", "-":
		return ZoomOut, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// ParseCommands parses a comma-separated command list. Empty entries are
// skipped.
func ParseCommands(s string) ([]Command, error) {
	var cmds []Command
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseCommand(part)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Camera is the viewer position. X and Y are pixel offsets added to the
// framebuffer coordinates; Zoom is pixels per unit of the complex plane.
type Camera struct {
	Zoom float64
	X    float64
	Y    float64

	VelocityX    float64
	VelocityY    float64
	VelocityZoom float64
}

// New returns a camera at the default position.
func New() *Camera {
	return &Camera{
		Zoom:         DefaultZoom,
		X:            DefaultX,
		Y:            DefaultY,
		VelocityX:    DefaultVelocity,
		VelocityY:    DefaultVelocity,
		VelocityZoom: DefaultVelocity,
	}
}

// FromViewport returns a camera positioned at vp with default velocities.
// A zoom below MinZoom (including zero and negative zoom) is raised to
// MinZoom.
func FromViewport(vp fractal.Viewport) *Camera {
	c := New()
	c.Zoom = max(vp.Zoom, MinZoom)
	c.X = vp.CenterX
	c.Y = vp.CenterY
	return c
}

// Apply performs cmd and reports whether the view changed.
func (c *Camera) Apply(cmd Command) bool {
	switch cmd {
	case Up:
		c.Y -= c.VelocityY
	case Down:
		c.Y += c.VelocityY
	case Left:
		c.X -= c.VelocityX
	case Right:
		c.X += c.VelocityX
	case ZoomIn:
		c.Zoom += c.VelocityZoom
	case ZoomOut:
		z := c.Zoom - c.VelocityZoom
		if z <= 0 {
			// A full step would flip or zero the mapping; halve instead.
			z = c.Zoom / 2
		}
		z = max(z, MinZoom)
		if z == c.Zoom {
			return false
		}
		c.Zoom = z
	default:
		return false
	}
	return true
}

// Snapshot returns the viewport for the current position.
func (c *Camera) Snapshot() fractal.Viewport {
	return fractal.Viewport{Zoom: c.Zoom, CenterX: c.X, CenterY: c.Y}
}
