package batch

import (
	"fmt"
	"runtime"

	"Cablesize/internal/calc/conductor"
	"Cablesize/internal/calc/sizing"

	"golang.org/x/sync/errgroup"
)

// MaxItems bounds a single batch request.
const MaxItems = 500

type Input struct {
	Items []sizing.Input `json:"items"`
}

type Result struct {
	Results []sizing.Result `json:"results"`
}

// Size runs every item independently. Results keep the input order and
// any failing item fails the whole batch.
func Size(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("%w: no items", conductor.ErrInvalidInput)
	}
	if len(in.Items) > MaxItems {
		return Result{}, fmt.Errorf("%w: more than %d items", conductor.ErrInvalidInput, MaxItems)
	}

	out := make([]sizing.Result, len(in.Items))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, item := range in.Items {
		g.Go(func() error {
			res, err := sizing.Calculate(item)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Results: out}, nil
}
