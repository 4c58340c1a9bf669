// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fractal

// ComputeTile renders a tile of an image of the given width and returns a
// new buffer of tile.Size bytes.
func ComputeTile(tile Tile, width int) []byte {
	if tile.Size <= 0 {
		return nil
	}
	dst := make([]byte, tile.Size)
	ComputeTileInto(dst, tile, width)
	return dst
}

// ComputeTileInto renders tile into dst, which must hold at least tile.Size
// bytes. Only whole pixels are written. It is a no-op if width is not
// positive.
func ComputeTileInto(dst []byte, tile Tile, width int) {
	if width <= 0 {
		return
	}
	size := min(tile.Size, len(dst))
	first := tile.Start / 4
	vp := tile.Viewport

	for i := 0; i+4 <= size; i += 4 {
		abs := first + i/4
		v := Intensity(vp.Point(abs%width, abs/width, width))
		dst[i] = v
		dst[i+1] = v
		dst[i+2] = v
		dst[i+3] = v
	}
}

// Render is the single-threaded reference renderer: it evaluates every pixel
// of dst, a row-major RGBA framebuffer of the given width.
func Render(dst []byte, width int, vp Viewport) {
	ComputeTileInto(dst, Tile{Start: 0, Size: len(dst), Viewport: vp}, width)
}
