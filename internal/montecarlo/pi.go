// Package montecarlo estimates π by uniform sampling of the unit
// square: the fraction of points landing inside the quarter circle
// approaches π/4. Samples are independent, so the work fans out across
// goroutines with one seeded random source per worker.
package montecarlo

import (
	"context"
	"errors"
	"math/rand"
	"runtime"
	"sync"
)

const batchSize = 4096

var ErrNoSamples = errors.New("montecarlo: sample count must be positive")

// Estimator draws Samples points using Workers goroutines. Worker i is
// seeded Seed+i, so the estimate is reproducible for a fixed
// (Samples, Seed, Workers) triple.
type Estimator struct {
	Samples int
	Seed    int64
	Workers int
}

func New(samples int, seed int64) *Estimator {
	return &Estimator{Samples: samples, Seed: seed, Workers: runtime.NumCPU()}
}

// Estimate returns 4 * inside / total. Cancellation is checked between
// batches; a canceled run returns the context error.
func (e *Estimator) Estimate(ctx context.Context) (float64, error) {
	if e.Samples <= 0 {
		return 0, ErrNoSamples
	}
	workers := e.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > e.Samples {
		workers = e.Samples
	}

	hits := make([]int64, workers)
	errs := make([]error, workers)

	share := e.Samples / workers
	extra := e.Samples % workers

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		n := share
		if i < extra {
			n++
		}

		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()

			rng := rand.New(rand.NewSource(e.Seed + int64(idx)))
			var inside int64
			for n > 0 {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					return
				}
				batch := batchSize
				if batch > n {
					batch = n
				}
				for j := 0; j < batch; j++ {
					x, y := rng.Float64(), rng.Float64()
					if x*x+y*y <= 1 {
						inside++
					}
				}
				n -= batch
			}
			hits[idx] = inside
		}(i, n)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}

	var inside int64
	for _, h := range hits {
		inside += h
	}
	return 4 * float64(inside) / float64(e.Samples), nil
}
