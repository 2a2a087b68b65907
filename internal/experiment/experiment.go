package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/mvolek/biosim/internal/config"
	"github.com/mvolek/biosim/internal/ode"
)

// Experiment couples a configuration to a constructed model and runs
// the simulation once, reporting wall-clock timing alongside the
// series.
type Experiment struct {
	cfg   *config.Config
	model Runnable
}

func New(cfg *config.Config, model Runnable) *Experiment {
	return &Experiment{cfg: cfg, model: model}
}

func (e *Experiment) Model() Runnable { return e.model }

func (e *Experiment) Run(ctx context.Context) (*ode.Series, time.Duration, error) {
	if e.model == nil {
		return nil, 0, fmt.Errorf("experiment has no model")
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	start := time.Now()
	series, err := e.model.Simulate(e.cfg.TEnd)
	if err != nil {
		return nil, 0, err
	}
	return series, time.Since(start), nil
}
