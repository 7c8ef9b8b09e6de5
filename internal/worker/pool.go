// Package worker provides a bounded-concurrency fan-out primitive used by
// the sync orchestrators.
package worker

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Result captures one task's outcome. Errors are collected per task
// rather than short-circuiting the whole run.
type Result[R any] struct {
	Value R
	Err   error
}

// Map runs fn over every item with at most limit tasks in flight. Items
// acquire permits in slice order, so excess work queues FIFO behind the
// running tasks. All tasks settle; results are returned in input order.
func Map[T, R any](ctx context.Context, limit int64, items []T, fn func(ctx context.Context, item T) (R, error)) []Result[R] {
	if limit < 1 {
		limit = 1
	}

	sem := semaphore.NewWeighted(limit)
	results := make([]Result[R], len(items))
	done := make(chan struct{}, len(items))

	for i, item := range items {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = Result[R]{Err: err}
			done <- struct{}{}
			continue
		}

		go func(i int, item T) {
			defer sem.Release(1)
			defer func() { done <- struct{}{} }()

			value, err := fn(ctx, item)
			results[i] = Result[R]{Value: value, Err: err}
		}(i, item)
	}

	for range items {
		<-done
	}

	return results
}
