package parallel

import (
	"context"
	"sync"
)

// Sender is the send side of a result channel as seen by workers.
type Sender[T any] interface {
	// Send delivers v. It returns false once the receiver has hung up.
	Send(v T) bool
}

// Channel is a multi-producer, single-consumer channel whose receiver can
// hang up. After Close, pending and future sends fail instead of blocking,
// which is how workers learn that the pipeline is being torn down.
//
// The underlying Go channel is never closed, so senders cannot panic.
type Channel[T any] struct {
	ch     chan T
	closed chan struct{}
	once   sync.Once
}

// NewChannel creates a channel with the given buffer size.
// Negative sizes are treated as zero.
func NewChannel[T any](buffer int) *Channel[T] {
	if buffer < 0 {
		buffer = 0
	}
	return &Channel[T]{
		ch:     make(chan T, buffer),
		closed: make(chan struct{}),
	}
}

// Send delivers v, blocking while the buffer is full.
// It returns false if the receiver has hung up.
func (c *Channel[T]) Send(v T) bool {
	select {
	case <-c.closed:
		return false
	default:
	}

	select {
	case c.ch <- v:
		return true
	case <-c.closed:
		return false
	}
}

// Recv blocks until a value arrives, the receiver hangs up or ctx is done.
// The boolean is false in the latter two cases.
func (c *Channel[T]) Recv(ctx context.Context) (T, bool) {
	var zero T
	select {
	case v := <-c.ch:
		return v, true
	case <-c.closed:
		return zero, false
	case <-ctx.Done():
		return zero, false
	}
}

// TryRecv returns a buffered value without blocking.
func (c *Channel[T]) TryRecv() (T, bool) {
	select {
	case v := <-c.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Close hangs up the receiving side. It is safe to call multiple times.
func (c *Channel[T]) Close() {
	c.once.Do(func() { close(c.closed) })
}

// Done is closed once the receiver has hung up.
func (c *Channel[T]) Done() <-chan struct{} {
	return c.closed
}
