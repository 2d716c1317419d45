// Package parallel runs mesh generation work on a fixed set of goroutines.
package parallel

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/text3d/internal/logx"
)

// Pool is a fixed pool of worker goroutines.
//
// Each worker owns a queue and steals from the other queues when its own is
// empty, which balances glyphs of very different complexity.
// A panicking work item is recovered and logged; the worker keeps running.
//
// Pool is safe for concurrent use. Work items must not wait on other work
// items of the same pool.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// New creates a pool with the given number of workers and starts them.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
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
		case fn := <-own:
			p.exec(fn)
		default:
			if fn := p.steal(id); fn != nil {
				p.exec(fn)
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case fn := <-own:
				p.exec(fn)
			}
		}
	}
}

func (p *Pool) exec(fn func()) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logx.Logger().Error("parallel: work item panicked", "panic", fmt.Sprint(r))
		}
	}()
	fn()
}

func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case fn := <-queue:
			p.exec(fn)
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Run distributes work round-robin across the workers and waits for all of
// it to complete. On a closed pool the work runs on the calling goroutine.
func (p *Pool) Run(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			p.exec(fn)
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
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			p.exec(wrapped)
		}
	}
	wg.Wait()
}

// Submit queues a single work item on the worker with the shortest queue.
// It returns false if fn is nil or the pool is closed.
func (p *Pool) Submit(fn func()) bool {
	if fn == nil || !p.running.Load() {
		return false
	}

	idx := 0
	for i := 1; i < p.workers; i++ {
		if len(p.queues[i]) < len(p.queues[idx]) {
			idx = i
		}
	}

	select {
	case p.queues[idx] <- fn:
		return true
	case <-p.done:
		return false
	}
}

// Close stops accepting work, runs what is already queued and stops the
// workers. Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Pending returns the approximate number of queued work items.
func (p *Pool) Pending() int {
	total := 0
	for _, q := range p.queues {
		total += len(q)
	}
	return total
}
