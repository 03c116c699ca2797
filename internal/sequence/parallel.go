package sequence

import (
	"context"
	"sync"

	"blochsim/internal/model"
)

// Ensemble runs the same sequence over many voxels (independent
// parameter sets) concurrently. The engine is stateless, so each run
// gets its own Simulator and the goroutines share nothing.
type Ensemble struct {
	seq []Interval
}

func NewEnsemble(seq []Interval) *Ensemble {
	return &Ensemble{seq: seq}
}

func (e *Ensemble) Run(ctx context.Context, models []model.Model) ([]*Result, error) {
	results := make([]*Result, len(models))
	errs := make([]error, len(models))

	var wg sync.WaitGroup
	for i, m := range models {
		wg.Add(1)
		go func(idx int, m model.Model) {
			defer wg.Done()
			results[idx], errs[idx] = New(m).Run(ctx, e.seq)
		}(i, m)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
