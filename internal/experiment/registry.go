package experiment

import (
	"fmt"
	"sort"

	"github.com/mvolek/biosim/internal/config"
	"github.com/mvolek/biosim/internal/models"
	"github.com/mvolek/biosim/internal/ode"
)

// Runnable is a concrete model bound to its integrator.
type Runnable interface {
	ode.Model
	Simulate(tEnd float64) (*ode.Series, error)
}

type Registry struct {
	factories map[string]func(*config.Config) (Runnable, error)
}

func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]func(*config.Config) (Runnable, error))}

	r.factories["sir"] = func(cfg *config.Config) (Runnable, error) {
		return models.NewSIR(models.SIRParams{
			Beta: cfg.SIR.Beta, Gamma: cfg.SIR.Gamma,
			S0: cfg.SIR.S0, I0: cfg.SIR.I0, R0: cfg.SIR.R0,
			Dt: cfg.Dt,
		})
	}
	r.factories["lotka_volterra"] = func(cfg *config.Config) (Runnable, error) {
		return models.NewLotkaVolterra(models.LotkaVolterraParams{
			Alpha: cfg.LotkaVolterra.Alpha, Beta: cfg.LotkaVolterra.Beta,
			Delta: cfg.LotkaVolterra.Delta, Gamma: cfg.LotkaVolterra.Gamma,
			CompRate: cfg.LotkaVolterra.CompRate,
			Prey0:    cfg.LotkaVolterra.Prey0, Pred0: cfg.LotkaVolterra.Pred0,
			Comp0:    cfg.LotkaVolterra.Comp0,
			Dt:       cfg.Dt,
		})
	}
	r.factories["zombie"] = func(cfg *config.Config) (Runnable, error) {
		return models.NewZombie(models.ZombieParams{
			Beta: cfg.Zombie.Beta, Alpha: cfg.Zombie.Alpha, Rho: cfg.Zombie.Rho,
			S0: cfg.Zombie.S0, Z0: cfg.Zombie.Z0, R0: cfg.Zombie.R0,
			Dt: cfg.Dt,
		})
	}

	return r
}

func (r *Registry) Build(cfg *config.Config) (Runnable, error) {
	fn, ok := r.factories[cfg.Model]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s (available: %v)", cfg.Model, r.ListModels())
	}
	return fn(cfg)
}

func (r *Registry) ListModels() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
