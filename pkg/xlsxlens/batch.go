package xlsxlens

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one batch job.
type BatchResult struct {
	Input string
	Err   error
}

// Batch runs fn for every input with at most workers jobs in flight. Jobs
// are isolated: a failure does not stop the others. Inputs not yet started
// when ctx is cancelled report the context error. Results keep input order.
func Batch(ctx context.Context, inputs []string, workers int, fn func(ctx context.Context, input string) error) []BatchResult {
	if workers < 1 {
		workers = 1
	}
	results := make([]BatchResult, len(inputs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, input := range inputs {
		results[i].Input = input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Err = fn(ctx, input)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// Failed counts results carrying an error.
func Failed(results []BatchResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
