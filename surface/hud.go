// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/mandelview/fractal"
)

// HUD layout in pixels.
const (
	hudMargin  = 4
	hudPadding = 3
)

var (
	hudBackground = image.NewUniform(color.RGBA{0, 0, 0, 160})
	hudForeground = image.NewUniform(color.RGBA{255, 220, 60, 255})
)

// DrawHUD draws lines of text in the top-left corner of img on a
// translucent backing box.
func DrawHUD(img *image.RGBA, lines []string) {
	if img == nil || len(lines) == 0 {
		return
	}

	face := basicfont.Face7x13
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	d := &font.Drawer{Dst: img, Src: hudForeground, Face: face}

	widest := 0
	for _, line := range lines {
		widest = max(widest, d.MeasureString(line).Ceil())
	}

	box := image.Rect(hudMargin, hudMargin,
		hudMargin+widest+2*hudPadding, hudMargin+len(lines)*lineHeight+2*hudPadding)
	draw.Draw(img, box.Intersect(img.Bounds()), hudBackground, image.Point{}, draw.Over)

	for i, line := range lines {
		d.Dot = fixed.P(hudMargin+hudPadding, hudMargin+hudPadding+i*lineHeight+metrics.Ascent.Ceil())
		d.DrawString(line)
	}
}

// printer formats HUD numbers with digit grouping.
var printer = message.NewPrinter(language.English)

// FormatStatus returns the HUD lines for a viewport and the pipeline
// generation counters.
func FormatStatus(vp fractal.Viewport, generation, completed uint64) []string {
	return []string{
		printer.Sprintf("zoom %.1f", vp.Zoom),
		printer.Sprintf("center %.1f, %.1f", vp.CenterX, vp.CenterY),
		printer.Sprintf("generation %d (done %d)", generation, completed),
	}
}
