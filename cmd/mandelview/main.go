// Command mandelview renders the Mandelbrot set with a pool of tile
// workers, either in a window with pan/zoom keys or headless to a PNG.
//
// Usage:
//
//	mandelview [flags]
//	mandelview -headless -out set.png -moves in,in,left
//
// Window keys: arrows or WASD pan, = and - zoom, H toggles the HUD,
// Escape quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gogpu/mandelview"
	"github.com/gogpu/mandelview/camera"
	"github.com/gogpu/mandelview/internal/window"
	"github.com/gogpu/mandelview/render"
	"github.com/gogpu/mandelview/surface"
)

const headlessBackend = "image"

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "mandelview:", err)
		os.Exit(2)
	}

	mandelview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		mandelview.Logger().Error("mandelview: failed", "err", err)
		stop()
		os.Exit(1)
	}
}

var errNotInteractive = errors.New("no interactive surface available")

// runner is implemented by interactive surfaces.
type runner interface {
	Run(ctx context.Context, ctl window.Controller) error
}

// backends is the part of the surface registry the CLI uses.
type backends interface {
	Available() []string
	NewSurface(opts surface.Options) (surface.Surface, error)
	NewSurfaceByName(name string, opts surface.Options) (surface.Surface, error)
}

// globalBackends forwards to the package-level surface registry.
type globalBackends struct{}

func (globalBackends) Available() []string { return surface.Available() }

func (globalBackends) NewSurface(opts surface.Options) (surface.Surface, error) {
	return surface.NewSurface(opts)
}

func (globalBackends) NewSurfaceByName(name string, opts surface.Options) (surface.Surface, error) {
	return surface.NewSurfaceByName(name, opts)
}

// openSurface creates the surface for cfg. Headless runs use the image
// backend. Windowed runs take the highest-priority available backend,
// which must be interactive; the returned runner is nil when headless.
func openSurface(cfg config, reg backends) (surface.Surface, runner, error) {
	opts := surface.DefaultOptions(cfg.width, cfg.height)
	opts.OutputWidth = cfg.outWidth
	opts.OutputHeight = cfg.outHeight
	opts.HUD = cfg.hud
	opts.Title = "Mandelbrot-set (mandelview " + mandelview.Version + ")"

	if cfg.headless {
		s, err := reg.NewSurfaceByName(headlessBackend, opts)
		if err != nil {
			return nil, nil, fmt.Errorf("creating %s surface: %w", headlessBackend, err)
		}
		return s, nil, nil
	}

	s, err := reg.NewSurface(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("creating surface: %w", err)
	}
	win, ok := s.(runner)
	if !ok {
		_ = s.Close()
		return nil, nil, fmt.Errorf("%w (backends: %s); run with -headless",
			errNotInteractive, strings.Join(reg.Available(), ", "))
	}
	return s, win, nil
}

func run(ctx context.Context, cfg config) error {
	return runWith(ctx, cfg, globalBackends{})
}

func runWith(ctx context.Context, cfg config, reg backends) error {
	s, win, err := openSurface(cfg, reg)
	if err != nil {
		return err
	}
	defer s.Close()

	r, err := render.New(s, render.WithWorkers(cfg.workers), render.WithTiles(cfg.tiles))
	if err != nil {
		return err
	}
	defer r.Stop()

	if err := r.Start(ctx); err != nil {
		return err
	}

	v := newViewer(r, camera.FromViewport(cfg.viewport))
	if err := v.refresh(); err != nil {
		return err
	}

	if cfg.headless {
		return runHeadless(ctx, cfg, r, v, s)
	}

	for _, cmd := range cfg.moves {
		v.Command(cmd)
	}
	return win.Run(ctx, v)
}

func runHeadless(ctx context.Context, cfg config, r *render.Renderer, v *viewer, s surface.Surface) error {
	for _, cmd := range cfg.moves {
		v.Command(cmd)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()
	if err := r.Wait(ctx, v.generation()); err != nil {
		return fmt.Errorf("waiting for frame: %w", err)
	}

	// Freeze the pipeline so the final present below is the only writer.
	r.Stop()
	if err := r.Err(); err != nil {
		return err
	}

	if st, ok := s.(surface.StatusSetter); ok && cfg.hud {
		st.SetStatus(v.Status()...)
		if err := s.Present(); err != nil {
			return err
		}
	}

	snap, ok := s.(surface.Snapshotter)
	if !ok {
		return fmt.Errorf("surface %T cannot be captured", s)
	}
	img := snap.Snapshot()

	f, err := os.Create(cfg.out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", cfg.out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	st := r.Stats()
	mandelview.Logger().Info("mandelview: wrote frame",
		"path", cfg.out, "width", img.Bounds().Dx(), "height", img.Bounds().Dy(),
		"generation", st.Completed, "tiles", st.Composited)
	return nil
}
