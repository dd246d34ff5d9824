// Package pool implements the fixed-size worker pool that runs connection
// handling. Tasks are claimed in arrival order from a single unbounded queue;
// teardown hands every worker exactly one terminate message and joins them
// all.
package pool

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/weft-web/weft/feedback"
)

// Task is a deferred unit of work. It carries its state in the closure and is
// run exactly once by whichever worker claims it.
type Task func()

// control is what actually travels through the queue: either a task or the
// terminate sentinel telling the receiving worker to exit its loop.
type control struct {
	task      Task
	terminate bool
}

// Pool owns size long-lived workers and the sending end of the task queue.
// The receiving end is shared by all workers behind the pool mutex, so at
// most one worker dequeues at any instant; a claimed task runs without the
// lock, so up to size tasks execute concurrently.
type Pool struct {
	mu   sync.Mutex
	cond *sync.Cond
	jobs *queue.Queue
	wg   sync.WaitGroup
	size int
	fb   feedback.Feedback
}

// New starts size workers right away. Panics if size isn't positive: a pool
// without workers would accept tasks and never run them.
func New(size int, fb feedback.Feedback) *Pool {
	if size <= 0 {
		panic("pool: size must be positive")
	}

	p := &Pool{
		jobs: queue.New(),
		size: size,
		fb:   fb,
	}
	p.cond = sync.NewCond(&p.mu)

	for id := 0; id < size; id++ {
		p.wg.Add(1)
		go p.work(id)
	}

	return p
}

// Execute enqueues a task and returns immediately. Fire-and-forget: there is
// no result, no back-pressure, and no cancellation once enqueued. The queue
// is unbounded, so Execute never blocks the caller.
func (p *Pool) Execute(task Task) {
	p.mu.Lock()
	p.jobs.Add(control{task: task})
	p.mu.Unlock()
	p.cond.Signal()
}

// Shutdown enqueues exactly one terminate message per worker and blocks until
// every worker has exited. Tasks already queued are still executed first, as
// the terminates sit behind them in arrival order. Must be called at most
// once; Execute after Shutdown leaks the task.
func (p *Pool) Shutdown() {
	p.fb.Info("Sending terminate message to all workers")

	p.mu.Lock()
	for i := 0; i < p.size; i++ {
		p.jobs.Add(control{terminate: true})
	}
	p.mu.Unlock()
	p.cond.Broadcast()

	p.wg.Wait()
	p.fb.Info("All workers terminated")
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	for {
		c := p.claim()
		if c.terminate {
			p.fb.Info(fmt.Sprintf("Worker %d terminated", id))
			return
		}

		c.task()
	}
}

// claim blocks until a control message is available and dequeues it. The
// queue mutex guarantees a message is claimed by exactly one worker.
func (p *Pool) claim() control {
	p.mu.Lock()
	defer p.mu.Unlock()

	for p.jobs.Length() == 0 {
		p.cond.Wait()
	}

	return p.jobs.Remove().(control)
}
