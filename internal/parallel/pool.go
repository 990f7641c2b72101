// Package parallel runs per-row pixel work on a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of goroutines for parallel pixel passes.
//
// Each worker has its own queue and steals from the other queues when its
// own is empty, which balances bands whose rows cost different amounts.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int

	// queues holds per-worker work queues.
	queues []chan func()

	done chan struct{}
	wg   sync.WaitGroup

	// mu is held for reading while ExecuteAll has work in flight and for
	// writing by Close, so nothing is queued after the workers exit.
	mu sync.RWMutex

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case work := <-own:
			work()
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case work := <-own:
				work()
			}
		}
	}
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			work()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all of it to
// complete. On a closed pool the work runs on the calling goroutine.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		p.queues[i%p.workers] <- wrapped
	}
	wg.Wait()
}

// Rows splits [0, height) into at most Workers() contiguous bands and calls
// fn once per band in parallel. It returns when every band is done.
func (p *Pool) Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	bands := min(p.workers, height)
	if bands == 1 {
		fn(0, height)
		return
	}

	work := make([]func(), bands)
	for i := range bands {
		y0 := i * height / bands
		y1 := (i + 1) * height / bands
		work[i] = func() { fn(y0, y1) }
	}
	p.ExecuteAll(work)
}

// Close waits for in-flight ExecuteAll calls, then stops the workers.
// Later calls run their work inline. Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

var (
	sharedMu   sync.Mutex
	sharedPool *Pool
)

// Shared returns the process-wide pool sized to workers. When the count
// differs from the current pool's, a new pool replaces it and the old one is
// closed once its in-flight work is done. Callers still holding the old pool
// keep working; their work runs inline.
func Shared(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	sharedMu.Lock()
	old := sharedPool
	if old != nil && old.workers == workers {
		sharedMu.Unlock()
		return old
	}
	p := NewPool(workers)
	sharedPool = p
	sharedMu.Unlock()

	if old != nil {
		old.Close()
	}
	return p
}
