package parallel

import (
	"context"
	"runtime"
	"sync"
)

// WorkerPool runs submitted jobs on a fixed set of goroutines.
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a pool with numWorkers goroutines; numWorkers <= 0
// means one per CPU. Call Start before submitting work.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// NewStartedPool creates and starts a pool.
func NewStartedPool(numWorkers int) *WorkerPool {
	pool := NewWorkerPool(numWorkers)
	pool.Start()
	return pool
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
			wp.wg.Done()
		case <-wp.quit:
			return
		}
	}
}

// Submit queues a job. It blocks while the queue is full.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has finished.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop shuts the workers down. Jobs still queued are not run.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// NumWorkers returns the number of worker goroutines.
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// ParallelForWithContext calls fn for every i in [start, end), split into
// one chunk per worker. Chunks stop early once ctx is cancelled.
func (wp *WorkerPool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	chunkSize := max(1, (end-start+wp.numWorkers-1)/wp.numWorkers)

	var done sync.WaitGroup
	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := min(i+chunkSize, end)
		done.Add(1)
		wp.Submit(func() {
			defer done.Done()
			for j := chunkStart; j < chunkEnd; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					fn(j)
				}
			}
		})
	}
	done.Wait()
}
