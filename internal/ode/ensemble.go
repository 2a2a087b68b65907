package ode

import (
	"context"
	"sync"
)

// Ensemble runs a batch of independent simulations across goroutines.
// Each run gets its own Sim built from the supplied factory, so no
// mutable state is shared between workers.
type Ensemble struct {
	build   func() (*Sim, error)
	numRuns int
}

func NewEnsemble(build func() (*Sim, error), numRuns int) *Ensemble {
	return &Ensemble{build: build, numRuns: numRuns}
}

func (e *Ensemble) Run(ctx context.Context, tEnd float64) ([]*Series, error) {
	results := make([]*Series, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}

			sim, err := e.build()
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx], errs[idx] = sim.Simulate(tEnd)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
