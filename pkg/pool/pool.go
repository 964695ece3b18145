// Package pool runs batches of independent tasks on a fixed set of workers.
//
// The pool is built for finite batch jobs: submit everything, then Wait once.
// Workers never treat a momentarily empty queue as the end of work -- a worker
// exits only after Wait has closed the pool and the queue has drained. Without
// that rule a worker racing the producer could exit early and a submitted task
// would silently never run.
package pool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"
)

// Pool executes submitted tasks on a fixed number of goroutines.
// The zero value is not usable; construct with New.
type Pool struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	faults []error

	wg sync.WaitGroup
}

// DefaultWorkers is the worker count used when the caller passes zero.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// New starts a pool with the given number of workers.
// Counts below one degrade to a single worker instead of failing.
func New(workers int) *Pool {
	if workers < 1 {
		log.Warnf("worker count %d too low, using 1", workers)
		workers = 1
	}
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run()
	}
	log.Debugf("pool started with %d workers", workers)
	return p
}

// Submit enqueues a task. It never blocks waiting for execution and is safe
// to call from multiple goroutines. Submitting after Wait is a programming
// error and panics.
func (p *Pool) Submit(task func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("pool: Submit after Wait")
	}
	p.queue = append(p.queue, task)
	p.mu.Unlock()
	p.cond.Signal()
}

// Wait closes the pool to new submissions, blocks until every submitted task
// has finished, and releases the workers. Tasks that panicked are reported in
// the returned error; all other tasks still run to completion.
func (p *Pool) Wait() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.faults...)
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.queue) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.queue) == 0 {
			// closed and drained
			p.mu.Unlock()
			return
		}
		task := p.queue[0]
		p.queue = p.queue[1:]
		p.mu.Unlock()

		p.exec(task)
	}
}

// exec runs one task, converting a panic into a recorded fault so one bad
// task cannot take down the worker or starve the batch.
func (p *Pool) exec(task func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("task panicked: %v", r)
			p.mu.Lock()
			p.faults = append(p.faults, fmt.Errorf("task panicked: %v", r))
			p.mu.Unlock()
		}
	}()
	task()
}
