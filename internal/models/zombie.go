package models

import "github.com/mvolek/biosim/internal/ode"

// ZombieParams configures the zombie outbreak model.
type ZombieParams struct {
	Beta  float64 // infection rate
	Alpha float64 // rate at which survivors destroy zombies
	Rho   float64 // resurrection rate of the removed
	S0    float64
	Z0    float64
	R0    float64
	Dt    float64
}

// Zombie is a simplified zombie apocalypse model. State: [survivors,
// zombies, removed]. The α·S·Z destruction term is subtracted from both
// dS and dZ, matching the source formulation.
type Zombie struct {
	p   ZombieParams
	sim *ode.Sim
}

func NewZombie(p ZombieParams) (*Zombie, error) {
	if p.Dt == 0 {
		p.Dt = ode.DefaultDt
	}
	m := &Zombie{p: p}
	sim, err := ode.NewSim(m, p.Dt)
	if err != nil {
		return nil, err
	}
	m.sim = sim
	return m, nil
}

func (m *Zombie) StateDim() int    { return 3 }
func (m *Zombie) Labels() []string { return []string{"survivors", "zombies", "removed"} }

func (m *Zombie) InitialState() ode.State {
	return ode.State{m.p.S0, m.p.Z0, m.p.R0}
}

func (m *Zombie) Derivatives(y ode.State, _ float64) ode.State {
	s, z, r := y[0], y[1], y[2]
	ds := -m.p.Beta*s*z - m.p.Alpha*s*z
	dz := m.p.Beta*s*z + m.p.Rho*r - m.p.Alpha*s*z
	dr := m.p.Alpha*s*z - m.p.Rho*r
	return ode.State{ds, dz, dr}
}

func (m *Zombie) Simulate(tEnd float64) (*ode.Series, error) {
	return m.sim.Simulate(tEnd)
}

func (m *Zombie) Params() map[string]float64 {
	return map[string]float64{
		"beta": m.p.Beta, "alpha": m.p.Alpha, "rho": m.p.Rho,
		"s0": m.p.S0, "z0": m.p.Z0, "r0": m.p.R0,
	}
}
