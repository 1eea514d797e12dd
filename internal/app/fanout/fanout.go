// Package fanout runs one function across a slice of items on a bounded
// pool of goroutines, keeping outcomes aligned with the input order. It is
// the concurrency primitive behind bulk operations: the service decides
// what to do per item, fanout decides how many do it at once.
package fanout

import (
	"context"
	"sync"
)

// Outcome is the per-item result. Exactly one of Value and Err is
// meaningful.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item on at most maxWorkers goroutines and returns
// the outcomes in input order. It blocks until all workers finish.
//
// Cancellation is cooperative: once ctx is done, items not yet started are
// recorded with ctx.Err() and fn is not called for them. Calls already in
// flight run to completion; fn sees ctx and may cut itself short.
//
// maxWorkers must be at least 1. An empty input yields an empty, non-nil
// slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Outcome[R] {
	outcomes := make([]Outcome[R], len(items))
	if len(items) == 0 {
		return outcomes
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	// Workers pull indices, so each outcome lands in its input slot with no
	// coordination beyond the channel.
	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(maxWorkers)
	for range maxWorkers {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes[idx] = Outcome[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				outcomes[idx] = Outcome[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return outcomes
}
