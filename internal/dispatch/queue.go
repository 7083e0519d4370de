// Package dispatch marshals closures from background tasks onto the
// editor goroutine.
//
// A single Run loop consumes the queue, so every job observes and
// mutates editor/UI state with exclusive access — the same guarantee as
// a single-threaded UI, without locking.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/dshills/suggest/internal/editor"
	"github.com/dshills/suggest/internal/ui"
)

// ErrQueueClosed is returned when dispatching to a closed queue.
var ErrQueueClosed = errors.New("dispatch queue closed")

// Job runs on the editor goroutine with exclusive access to state.
type Job func(*editor.Editor, *ui.Compositor)

type queuedJob struct {
	fn   Job
	done chan struct{}
}

// Queue is an ordered, back-pressured closure queue with one consumer.
type Queue struct {
	jobs chan queuedJob

	mu     sync.RWMutex
	closed bool
}

// NewQueue creates a queue with the given buffer size.
func NewQueue(size int) *Queue {
	return &Queue{jobs: make(chan queuedJob, size)}
}

// Dispatch enqueues a job and waits until the Run loop has executed it.
// It returns early when the context is canceled or the queue closes.
func (q *Queue) Dispatch(ctx context.Context, fn Job) error {
	j := queuedJob{fn: fn, done: make(chan struct{})}
	if err := q.send(ctx, j); err != nil {
		return err
	}
	select {
	case <-j.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Post enqueues a job without waiting for execution.
func (q *Queue) Post(ctx context.Context, fn Job) error {
	return q.send(ctx, queuedJob{fn: fn})
}

func (q *Queue) send(ctx context.Context, j queuedJob) error {
	// The read lock is held across the send so Close cannot close the
	// channel out from under an in-flight enqueue.
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run consumes jobs until the context is canceled or the queue closes.
// It must be called from the goroutine owning the editor state.
func (q *Queue) Run(ctx context.Context, ed *editor.Editor, comp *ui.Compositor) {
	for {
		select {
		case <-ctx.Done():
			return
		case j, ok := <-q.jobs:
			if !ok {
				return
			}
			j.fn(ed, comp)
			if j.done != nil {
				close(j.done)
			}
		}
	}
}

// Close stops accepting jobs. Jobs already queued are still executed.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}
