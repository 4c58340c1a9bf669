// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "sync"

// bufferPool recycles tile pixel buffers between workers and the compositor.
//
// Every generation has the same tile layout, so a handful of sizes cover all
// tiles. Buffers are pooled per exact length.
//
// Thread safety: bufferPool is safe for concurrent use.
type bufferPool struct {
	// pools holds one *sync.Pool per buffer length.
	pools sync.Map
}

func newBufferPool() *bufferPool {
	return &bufferPool{}
}

// Get returns a buffer of exactly size bytes. Contents are unspecified;
// callers overwrite every byte.
func (p *bufferPool) Get(size int) []byte {
	if size <= 0 {
		return nil
	}
	buf := p.poolFor(size).Get().(*[]byte)
	return *buf
}

// Put returns buf to the pool. Nil and empty buffers are ignored.
func (p *bufferPool) Put(buf []byte) {
	if len(buf) == 0 {
		return
	}
	if pool, ok := p.pools.Load(len(buf)); ok {
		pool.(*sync.Pool).Put(&buf)
	}
	// If no pool exists for this size, let GC reclaim the buffer.
}

// poolFor gets or creates the pool for the given size.
func (p *bufferPool) poolFor(size int) *sync.Pool {
	if pool, ok := p.pools.Load(size); ok {
		return pool.(*sync.Pool)
	}

	newPool := &sync.Pool{
		New: func() any {
			buf := make([]byte, size)
			return &buf
		},
	}

	// Another goroutine may have stored one first; use theirs.
	actual, _ := p.pools.LoadOrStore(size, newPool)
	return actual.(*sync.Pool)
}
