package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name     string
	runs     atomic.Int32
	failures int32
	done     chan struct{}
}

func (j *countingJob) Name() string { return j.name }

func (j *countingJob) Run(ctx context.Context) error {
	n := j.runs.Add(1)
	if n <= j.failures {
		return errors.New("transient failure")
	}
	if j.done != nil {
		close(j.done)
	}
	return nil
}

func TestQueue_DeliversJob(t *testing.T) {
	t.Parallel()

	q := NewQueue(8, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	job := &countingJob{name: "deliver", done: make(chan struct{})}
	require.NoError(t, q.Enqueue(job))

	select {
	case <-job.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job was not executed")
	}
	assert.Equal(t, int32(1), job.runs.Load())
}

func TestQueue_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	q := NewQueue(8, 1, WithBaseBackoff(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	// Fails twice, succeeds on the third and final attempt.
	job := &countingJob{name: "retry", failures: 2, done: make(chan struct{})}
	require.NoError(t, q.Enqueue(job))

	select {
	case <-job.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not reach a successful attempt")
	}
	assert.Equal(t, int32(3), job.runs.Load())
}

func TestQueue_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	q := NewQueue(8, 1, WithMaxAttempts(2), WithBaseBackoff(5*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	job := &countingJob{name: "fail", failures: 100}
	require.NoError(t, q.Enqueue(job))

	assert.Eventually(t, func() bool {
		return job.runs.Load() == 2
	}, 2*time.Second, 10*time.Millisecond)

	// No further attempts after the limit.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(2), job.runs.Load())
}

func TestQueue_EnqueueNeverBlocks(t *testing.T) {
	t.Parallel()

	// No workers started, so the buffer fills up.
	q := NewQueue(2, 1)

	require.NoError(t, q.Enqueue(&countingJob{name: "a"}))
	require.NoError(t, q.Enqueue(&countingJob{name: "b"}))

	err := q.Enqueue(&countingJob{name: "overflow"})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestQueue_CloseDrainsAndRejects(t *testing.T) {
	t.Parallel()

	q := NewQueue(8, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	job := &countingJob{name: "drained", done: make(chan struct{})}
	require.NoError(t, q.Enqueue(job))

	q.Close()

	select {
	case <-job.done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued job was dropped on close")
	}

	err := q.Enqueue(&countingJob{name: "late"})
	assert.ErrorIs(t, err, ErrQueueClosed)
}
