package loadtest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// ErrWaitInterrupted reports that the pool-wide wait ended before every task
// signaled the completion barrier. Consumers must treat the run as possibly
// incomplete.
var ErrWaitInterrupted = errors.New("pool wait interrupted before all tasks completed")

// Task executes one unit of work. index is 1-based.
type Task func(ctx context.Context, worker, index int) error

// Pool executes a fixed number of tasks on a fixed number of workers. Tasks
// beyond the worker count queue; a task runs its single store call to
// completion or failure without yielding mid-task.
type Pool struct {
	workers int
	limiter *rate.Limiter
}

// NewPool sizes a pool. rateLimit caps store operations per second across the
// whole pool; 0 disables limiting.
func NewPool(workers, rateLimit int) *Pool {
	p := &Pool{workers: workers}
	if rateLimit > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(rateLimit), 10)
	}
	return p
}

// Run submits count tasks and blocks until every task has signaled the
// completion barrier. A failed task still signals the barrier, but its error
// cancels the remaining queue and is returned to the caller. A wait cut short
// before all signals arrive returns ErrWaitInterrupted instead.
func (p *Pool) Run(ctx context.Context, count int, task Task) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bar := newBarrier(count)
	indices := make(chan int)

	var firstErr error
	var failOnce sync.Once

	var wg sync.WaitGroup
	for w := 1; w <= p.workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for index := range indices {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if p.limiter != nil {
					if err := p.limiter.Wait(ctx); err != nil {
						return
					}
				}
				err := task(ctx, worker, index)
				bar.signal()
				if err != nil {
					failOnce.Do(func() {
						firstErr = err
						cancel()
					})
				}
			}
		}(w)
	}

	go func() {
		defer close(indices)
		for i := 1; i <= count; i++ {
			select {
			case indices <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	waitErr := bar.wait(ctx)
	cancel()
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return waitErr
}

// barrier is a countdown latch releasing waiters once a fixed number of
// completion signals have arrived.
type barrier struct {
	remaining atomic.Int64
	done      chan struct{}
}

func newBarrier(count int) *barrier {
	b := &barrier{done: make(chan struct{})}
	b.remaining.Store(int64(count))
	if count == 0 {
		close(b.done)
	}
	return b
}

func (b *barrier) signal() {
	if b.remaining.Add(-1) == 0 {
		close(b.done)
	}
}

// wait blocks until all signals arrive. When ctx ends first it returns
// ErrWaitInterrupted so callers can tell the two outcomes apart.
func (b *barrier) wait(ctx context.Context) error {
	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ErrWaitInterrupted
	}
}
