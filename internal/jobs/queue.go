package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"lms_backend/internal/logger"
)

// Job is one unit of background work. Run is executed on a worker goroutine
// and may be retried, so it must be safe to call more than once.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

var ErrQueueFull = errors.New("job queue is full")
var ErrQueueClosed = errors.New("job queue is closed")

// Queue is an in-process worker pool fed by a buffered channel. Enqueue is
// non-blocking; execution order across workers is not guaranteed. Failed
// jobs are retried with exponential backoff before being dropped.
type Queue struct {
	jobs        chan Job
	workers     int
	maxAttempts int
	baseBackoff time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

type Option func(*Queue)

func WithMaxAttempts(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

func WithBaseBackoff(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.baseBackoff = d
		}
	}
}

func NewQueue(size, workers int, opts ...Option) *Queue {
	if size <= 0 {
		size = 64
	}
	if workers <= 0 {
		workers = 1
	}
	q := &Queue{
		jobs:        make(chan Job, size),
		workers:     workers,
		maxAttempts: 3,
		baseBackoff: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Start launches the worker pool. Workers exit when the context is
// cancelled or the queue is closed and drained.
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx)
	}
}

// Enqueue hands a job to the pool. It never blocks the caller: a full queue
// is reported as an error instead.
func (q *Queue) Enqueue(job Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.mu.Unlock()

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs and waits for in-flight ones to finish.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *Queue) worker(ctx context.Context) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-q.jobs:
			if !ok {
				return
			}
			q.runWithRetry(ctx, job)
		}
	}
}

func (q *Queue) runWithRetry(ctx context.Context, job Job) {
	backoff := q.baseBackoff

	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err := job.Run(ctx)
		if err == nil {
			logger.WorkerLog("jobs", job.Name(), nil)
			return
		}

		logger.Warn("job attempt failed",
			"job", job.Name(),
			"attempt", attempt,
			"error", err.Error(),
		)

		if attempt == q.maxAttempts {
			logger.WorkerLog("jobs", job.Name(), err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
			backoff *= 2
		}
	}
}
