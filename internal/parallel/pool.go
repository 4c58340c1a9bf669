package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of long-lived goroutines that pull jobs from a
// shared WorkQueue, run them and publish the results on a Sender.
//
// Each worker holds the same queue, sender and flag reader. A worker keeps
// going while the flag reads true. Idle workers park inside WorkQueue.Take
// and use no CPU. Shutdown is cooperative: a worker finishes the job in hand
// before it notices the flag, and a job is never cancelled midway.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool[J, R any] struct {
	// workers is the number of worker goroutines.
	workers int

	queue   *WorkQueue[J]
	out     Sender[R]
	running FlagReader
	work    func(J) R

	// onFatal is called when the queue or flag lock is poisoned.
	onFatal func(error)

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// started guards against a second Start.
	started atomic.Bool

	// processed counts jobs whose results were handed to out.
	processed atomic.Int64
}

// NewWorkerPool creates a pool of workers that run work on every job taken
// from queue and send the result to out while running reads true.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool does not start until Start is called.
func NewWorkerPool[J, R any](workers int, queue *WorkQueue[J], out Sender[R], running FlagReader, work func(J) R) *WorkerPool[J, R] {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &WorkerPool[J, R]{
		workers: workers,
		queue:   queue,
		out:     out,
		running: running,
		work:    work,
		onFatal: func(err error) { panic(err) },
	}
}

// SetFatalHandler installs the function called when a worker finds the
// queue or flag lock poisoned. The worker's loop ends after the handler
// returns. It must be called before Start.
func (p *WorkerPool[J, R]) SetFatalHandler(fn func(error)) {
	if fn != nil {
		p.onFatal = fn
	}
}

// Start spawns the workers. Calling Start more than once is a no-op.
func (p *WorkerPool[J, R]) Start() {
	if !p.started.CompareAndSwap(false, true) {
		return
	}
	p.wg.Add(p.workers)
	for i := range p.workers {
		go p.worker(i)
	}
}

// Wait blocks until every worker has exited.
func (p *WorkerPool[J, R]) Wait() {
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool[J, R]) Workers() int {
	return p.workers
}

// Processed returns how many results workers have delivered.
func (p *WorkerPool[J, R]) Processed() int64 {
	return p.processed.Load()
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool[J, R]) worker(id int) {
	defer p.wg.Done()

	var flagErr error
	stop := func() bool {
		ok, err := p.running.Get()
		if err != nil {
			flagErr = err
			return true
		}
		return !ok
	}

	for {
		ok, err := p.running.Get()
		if err != nil {
			p.onFatal(fmt.Errorf("worker %d: reading shutdown flag: %w", id, err))
			return
		}
		if !ok {
			return
		}

		job, got, err := p.queue.Take(stop)
		if err != nil {
			p.onFatal(fmt.Errorf("worker %d: taking job: %w", id, err))
			return
		}
		if flagErr != nil {
			p.onFatal(fmt.Errorf("worker %d: reading shutdown flag: %w", id, flagErr))
			return
		}
		if !got {
			continue
		}

		if !p.out.Send(p.work(job)) {
			// Receiver hung up: the pipeline is being torn down.
			return
		}
		p.processed.Add(1)
	}
}
