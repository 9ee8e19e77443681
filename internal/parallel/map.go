package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Map applies fn to every item concurrently and returns results in input order.
func Map[T any, R any](items []T, fn func(T) R) []R {
	results, _ := MapWithContext(context.Background(), items, fn)
	return results
}

// MapWithContext is Map with cancellation. Each goroutine writes only its own
// slice range, so no locking is needed. On cancellation the partial results
// are discarded and ctx.Err() is returned.
func MapWithContext[T any, R any](ctx context.Context, items []T, fn func(T) R) ([]R, error) {
	if len(items) == 0 {
		return nil, ctx.Err()
	}

	numWorkers := min(runtime.NumCPU(), len(items))
	chunkSize := max(1, (len(items)+numWorkers-1)/numWorkers)

	results := make([]R, len(items))
	var wg sync.WaitGroup

	for i := 0; i < len(items); i += chunkSize {
		start := i
		end := min(i+chunkSize, len(items))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					results[j] = fn(items[j])
				}
			}
		}(start, end)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
