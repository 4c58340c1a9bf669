package parallel

import "sync"

// WorkQueue is a FIFO job queue shared by reference between producers and
// consumers.
//
// All mutation is serialized by one lock that is held only for the push or
// pop itself; no work runs under it. Consumers that want to wait for work
// park on a condition variable in Take instead of spinning.
//
// Thread safety: WorkQueue is safe for concurrent use.
type WorkQueue[T any] struct {
	g     guard
	cond  *sync.Cond
	items []T
}

// NewWorkQueue creates an empty queue.
func NewWorkQueue[T any]() *WorkQueue[T] {
	q := &WorkQueue[T]{}
	q.cond = sync.NewCond(&q.g.mu)
	return q
}

// Add appends item to the tail and returns the queue length after insertion.
// One parked consumer is woken.
func (q *WorkQueue[T]) Add(item T) (int, error) {
	var n int
	err := q.g.do(func() {
		q.items = append(q.items, item)
		n = len(q.items)
		q.cond.Signal()
	})
	return n, err
}

// Get removes and returns the head of the queue without blocking.
// The boolean is false when the queue is empty.
func (q *WorkQueue[T]) Get() (T, bool, error) {
	var (
		item T
		ok   bool
	)
	err := q.g.do(func() {
		item, ok = q.pop()
	})
	return item, ok, err
}

// Take removes and returns the head of the queue, parking the caller until
// an item is available or stop reports true.
// The boolean is false when Take returned because of stop.
//
// A consumer parked here when a peer poisons the queue returns
// ErrPoisoned once it is woken.
//
// stop is evaluated with the queue lock held, so it must not call back into
// the queue. Whoever makes stop true must call Wake afterwards.
func (q *WorkQueue[T]) Take(stop func() bool) (T, bool, error) {
	var (
		item     T
		ok       bool
		poisoned bool
	)
	err := q.g.do(func() {
		for len(q.items) == 0 {
			if stop() {
				return
			}
			q.cond.Wait()
			// A peer may have panicked holding the lock while we were parked.
			if q.g.poisoned {
				poisoned = true
				return
			}
		}
		item, ok = q.pop()
	})
	if err == nil && poisoned {
		err = ErrPoisoned
	}
	return item, ok, err
}

// Wake rouses every consumer parked in Take so it re-checks its stop
// condition.
func (q *WorkQueue[T]) Wake() {
	q.g.mu.Lock()
	q.cond.Broadcast()
	q.g.mu.Unlock()
}

// Len returns the number of queued items.
// A poisoned queue reports zero.
func (q *WorkQueue[T]) Len() int {
	var n int
	_ = q.g.do(func() { n = len(q.items) })
	return n
}

// pop removes the head. The lock must be held.
func (q *WorkQueue[T]) pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	item := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return item, true
}
