package parallel

import (
	"math/bits"
	"sync/atomic"
)

// Coverage tracks which tiles of a frame have landed using an atomic bitmap.
//
// The bitmap uses one bit per tile index, packed into uint64 words (64 tiles
// per word). All methods are safe for concurrent use without external
// synchronization.
type Coverage struct {
	words []atomic.Uint64
	tiles int
}

// NewCoverage creates a tracker for the given number of tiles, all unset.
// Returns nil if tiles is zero or negative.
func NewCoverage(tiles int) *Coverage {
	if tiles <= 0 {
		return nil
	}
	return &Coverage{
		words: make([]atomic.Uint64, (tiles+63)/64),
		tiles: tiles,
	}
}

// Mark sets the bit for tile i and reports whether it was newly set.
// Out-of-range indices are ignored.
func (c *Coverage) Mark(i int) bool {
	if i < 0 || i >= c.tiles {
		return false
	}
	bit := uint64(1) << (i & 63)
	old := c.words[i/64].Or(bit)
	return old&bit == 0
}

// IsMarked reports whether tile i has been marked.
func (c *Coverage) IsMarked(i int) bool {
	if i < 0 || i >= c.tiles {
		return false
	}
	return c.words[i/64].Load()&(uint64(1)<<(i&63)) != 0
}

// Count returns the number of marked tiles.
func (c *Coverage) Count() int {
	n := 0
	for i := range c.words {
		n += bits.OnesCount64(c.words[i].Load())
	}
	return n
}

// Complete reports whether every tile has been marked.
func (c *Coverage) Complete() bool {
	return c.Count() == c.tiles
}

// Tiles returns the number of tiles tracked.
func (c *Coverage) Tiles() int {
	return c.tiles
}

// Reset clears every bit.
func (c *Coverage) Reset() {
	for i := range c.words {
		c.words[i].Store(0)
	}
}
