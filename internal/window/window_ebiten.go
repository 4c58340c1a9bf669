// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build cgo

package window

import (
	"context"
	"fmt"
	"image"
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/mandelview"
	"github.com/gogpu/mandelview/camera"
	"github.com/gogpu/mandelview/surface"
)

// bindings maps keys to camera commands. Arrows and WASD pan, = and -
// zoom (the numpad keys too).
var bindings = []struct {
	key ebiten.Key
	cmd camera.Command
}{
	{ebiten.KeyArrowUp, camera.Up},
	{ebiten.KeyW, camera.Up},
	{ebiten.KeyArrowDown, camera.Down},
	{ebiten.KeyS, camera.Down},
	{ebiten.KeyArrowLeft, camera.Left},
	{ebiten.KeyA, camera.Left},
	{ebiten.KeyArrowRight, camera.Right},
	{ebiten.KeyD, camera.Right},
	{ebiten.KeyEqual, camera.ZoomIn},
	{ebiten.KeyNumpadAdd, camera.ZoomIn},
	{ebiten.KeyMinus, camera.ZoomOut},
	{ebiten.KeyNumpadSubtract, camera.ZoomOut},
}

// Window is an ebiten-backed surface.Surface.
//
// The compositor writes the back buffer and calls Present, which copies it
// into the front buffer under mu. Draw reads the front buffer on the
// window thread.
type Window struct {
	width, height int
	title         string

	back []byte

	mu      sync.Mutex
	front   *image.RGBA
	frame   *image.RGBA
	status  []string
	hud     bool
	closed  bool
	pending bool

	img *ebiten.Image
}

func init() {
	surface.Register(BackendName, 100, func(opts surface.Options) (surface.Surface, error) {
		w, err := New(opts)
		if err != nil {
			return nil, err
		}
		return w, nil
	}, nil)
}

// New creates a window surface. The window opens when Run is called.
func New(opts surface.Options) (*Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", surface.ErrInvalidDimensions, opts.Width, opts.Height)
	}
	outW, outH := opts.OutputWidth, opts.OutputHeight
	if outW <= 0 {
		outW = opts.Width
	}
	if outH <= 0 {
		outH = opts.Height
	}
	ebiten.SetWindowSize(outW, outH)

	rect := image.Rect(0, 0, opts.Width, opts.Height)
	return &Window{
		width:  opts.Width,
		height: opts.Height,
		title:  opts.Title,
		back:   make([]byte, opts.Width*opts.Height*4),
		front:  image.NewRGBA(rect),
		frame:  image.NewRGBA(rect),
		hud:    opts.HUD,
	}, nil
}

// Width returns the framebuffer width in pixels.
func (w *Window) Width() int { return w.width }

// Height returns the framebuffer height in pixels.
func (w *Window) Height() int { return w.height }

// Framebuffer returns the back buffer.
func (w *Window) Framebuffer() []byte { return w.back }

// Present publishes the back buffer for the next Draw.
func (w *Window) Present() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return surface.ErrClosed
	}
	copy(w.front.Pix, w.back)
	w.pending = true
	return nil
}

// Resize changes the outer window size. The framebuffer keeps its size;
// ebiten scales it to fit.
func (w *Window) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", surface.ErrInvalidDimensions, width, height)
	}
	ebiten.SetWindowSize(width, height)
	return nil
}

// SetStatus replaces the HUD lines.
func (w *Window) SetStatus(lines ...string) {
	w.mu.Lock()
	if !slices.Equal(w.status, lines) {
		w.status = append(w.status[:0], lines...)
		w.pending = true
	}
	w.mu.Unlock()
}

// Close marks the window closed. Subsequent presents fail.
func (w *Window) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return nil
}

// Run opens the window and blocks until it is closed, Escape is pressed
// or ctx is done. The window is closed when Run returns.
func (w *Window) Run(ctx context.Context, ctl Controller) error {
	defer w.Close()

	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	mandelview.Logger().Info("window: opening", "width", w.width, "height", w.height, "title", w.title)
	err := ebiten.RunGame(&game{w: w, ctx: ctx, ctl: ctl})
	mandelview.Logger().Info("window: closed")
	return err
}

type game struct {
	w   *Window
	ctx context.Context
	ctl Controller
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.w.mu.Lock()
		g.w.hud = !g.w.hud
		g.w.pending = true
		g.w.mu.Unlock()
	}

	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.ctl.Command(b.cmd)
		}
	}

	g.w.SetStatus(g.ctl.Status()...)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	w := g.w
	if w.img == nil {
		w.img = ebiten.NewImage(w.width, w.height)
	}

	w.mu.Lock()
	if w.pending {
		copy(w.frame.Pix, w.front.Pix)
		if w.hud {
			surface.DrawHUD(w.frame, w.status)
		}
		w.pending = false
		w.img.WritePixels(w.frame.Pix)
	}
	w.mu.Unlock()

	screen.DrawImage(w.img, nil)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w.width, g.w.height
}
