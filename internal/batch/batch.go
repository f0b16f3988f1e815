// Package batch applies an operation to many numbers concurrently.
package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of an operation on a single input.
type Result[T any] struct {
	Input string
	Value T
	Err   error
}

// Run applies fn to every input, with at most jobs calls running at once,
// and returns the results in input order. Failures of fn are kept in the
// results. An error is returned only if ctx is done before every input
// has been processed.
func Run[T any](ctx context.Context, inputs []string, jobs int, fn func(string) (T, error)) ([]Result[T], error) {
	results := make([]Result[T], len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}
	for i, in := range inputs {
		results[i].Input = in
	}

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		in := in
		r := &results[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.Value, r.Err = fn(in)
			if r.Err != nil {
				zap.S().Debugf("%v: %v", in, r.Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("%w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("%w", err)
	}
	return results, nil
}

// Failed counts the results which carry an error.
func Failed[T any](results []Result[T]) int {
	var n int
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
