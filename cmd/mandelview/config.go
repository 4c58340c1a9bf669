package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/mandelview/camera"
	"github.com/gogpu/mandelview/fractal"
)

// config is the validated command line.
type config struct {
	width, height int
	workers       int
	tiles         int
	viewport      fractal.Viewport

	headless  bool
	out       string
	outWidth  int
	outHeight int
	moves     []camera.Command
	timeout   time.Duration

	hud      bool
	logLevel slog.Level
}

var errUsage = errors.New("invalid arguments")

func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("mandelview", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		width     = fs.Int("width", 800, "framebuffer width in pixels")
		height    = fs.Int("height", 800, "framebuffer height in pixels")
		workers   = fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		tiles     = fs.Int("tiles", 0, "tiles per frame (0 = one per worker)")
		zoom      = fs.Float64("zoom", camera.DefaultZoom, "pixels per unit of the complex plane")
		x         = fs.Float64("x", camera.DefaultX, "horizontal camera offset in pixels")
		y         = fs.Float64("y", camera.DefaultY, "vertical camera offset in pixels")
		headless  = fs.Bool("headless", false, "render one frame to -out instead of opening a window")
		out       = fs.String("out", "mandelbrot.png", "output PNG for -headless")
		outWidth  = fs.Int("out-width", 0, "output width (0 = framebuffer width)")
		outHeight = fs.Int("out-height", 0, "output height (0 = framebuffer height)")
		moves     = fs.String("moves", "", "comma-separated camera commands applied before the frame, e.g. up,in,left")
		timeout   = fs.Duration("timeout", 30*time.Second, "headless render timeout")
		hud       = fs.Bool("hud", true, "draw the status overlay")
		logLevel  = fs.String("log-level", "info", "log level: debug, info, warn, error")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("%w: unexpected argument %q", errUsage, fs.Arg(0))
	}

	cfg := config{
		width:     *width,
		height:    *height,
		workers:   *workers,
		tiles:     *tiles,
		viewport:  fractal.Viewport{Zoom: *zoom, CenterX: *x, CenterY: *y},
		headless:  *headless,
		out:       *out,
		outWidth:  *outWidth,
		outHeight: *outHeight,
		timeout:   *timeout,
		hud:       *hud,
	}

	switch {
	case cfg.width <= 0 || cfg.height <= 0:
		return config{}, fmt.Errorf("%w: size %dx%d", errUsage, cfg.width, cfg.height)
	case cfg.workers < 0 || cfg.tiles < 0:
		return config{}, fmt.Errorf("%w: -workers and -tiles must not be negative", errUsage)
	case cfg.outWidth < 0 || cfg.outHeight < 0:
		return config{}, fmt.Errorf("%w: output size %dx%d", errUsage, cfg.outWidth, cfg.outHeight)
	case !(cfg.viewport.Zoom > 0) || math.IsInf(cfg.viewport.Zoom, 0):
		return config{}, fmt.Errorf("%w: -zoom must be a positive number", errUsage)
	case cfg.timeout <= 0:
		return config{}, fmt.Errorf("%w: -timeout must be positive", errUsage)
	case cfg.headless && cfg.out == "":
		return config{}, fmt.Errorf("%w: -headless needs -out", errUsage)
	}

	var err error
	if cfg.moves, err = camera.ParseCommands(*moves); err != nil {
		return config{}, fmt.Errorf("%w: -moves: %w", errUsage, err)
	}
	if err := cfg.logLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return config{}, fmt.Errorf("%w: -log-level: %w", errUsage, err)
	}
	return cfg, nil
}
