// Package parallel provides the concurrency primitives of the tile pipeline:
// a shared shutdown flag, a FIFO work queue, a result channel that the
// receiver can hang up, a fixed-size worker pool and a lock-free coverage
// bitmap.
//
// Flag and queue locks are poisoning: if a goroutine panics while it holds
// one, every later operation on that primitive returns [ErrPoisoned] instead
// of touching state that may be half-updated. Callers treat this as fatal.
package parallel

import (
	"errors"
	"sync"
)

// ErrPoisoned is returned when a lock was abandoned by a goroutine that
// panicked while holding it.
var ErrPoisoned = errors.New("parallel: lock poisoned by a panicking holder")

// guard is a mutex that remembers whether a holder panicked.
type guard struct {
	mu       sync.Mutex
	poisoned bool
}

// do runs fn with the lock held.
// If fn panics, the guard is poisoned and the lock released before the
// panic continues up the stack.
func (g *guard) do(fn func()) error {
	g.mu.Lock()
	if g.poisoned {
		g.mu.Unlock()
		return ErrPoisoned
	}

	completed := false
	defer func() {
		if !completed {
			g.poisoned = true
		}
		g.mu.Unlock()
	}()

	fn()
	completed = true
	return nil
}
