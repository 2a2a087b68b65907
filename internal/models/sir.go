// Package models implements the concrete ODE systems: the SIR epidemic
// model, a Lotka-Volterra predator-prey system with a competitor
// species, and a zombie outbreak model. Each model binds its immutable
// parameters to a fixed-step Euler integrator via ode.Sim.
package models

import "github.com/mvolek/biosim/internal/ode"

// SIRParams configures the SIR epidemic model. A zero Dt selects
// ode.DefaultDt.
type SIRParams struct {
	Beta  float64 // infection rate
	Gamma float64 // recovery rate
	S0    float64
	I0    float64
	R0    float64
	Dt    float64
}

// SIR is the classic susceptible-infected-recovered compartment model.
// State: [susceptible, infected, recovered].
type SIR struct {
	p SIRParams
	// N is the total population, summed once at construction and held
	// fixed for the run. Euler stepping conserves it only approximately.
	n   float64
	sim *ode.Sim
}

func NewSIR(p SIRParams) (*SIR, error) {
	if p.Dt == 0 {
		p.Dt = ode.DefaultDt
	}
	m := &SIR{p: p, n: p.S0 + p.I0 + p.R0}
	sim, err := ode.NewSim(m, p.Dt)
	if err != nil {
		return nil, err
	}
	m.sim = sim
	return m, nil
}

func (m *SIR) StateDim() int    { return 3 }
func (m *SIR) Labels() []string { return []string{"susceptible", "infected", "recovered"} }

func (m *SIR) InitialState() ode.State {
	return ode.State{m.p.S0, m.p.I0, m.p.R0}
}

// Derivatives computes dS = -βSI/N, dI = βSI/N - γI, dR = γI.
func (m *SIR) Derivatives(y ode.State, _ float64) ode.State {
	s, i := y[0], y[1]
	ds := -m.p.Beta * s * i / m.n
	di := m.p.Beta*s*i/m.n - m.p.Gamma*i
	dr := m.p.Gamma * i
	return ode.State{ds, di, dr}
}

func (m *SIR) Simulate(tEnd float64) (*ode.Series, error) {
	return m.sim.Simulate(tEnd)
}

func (m *SIR) Params() map[string]float64 {
	return map[string]float64{
		"beta": m.p.Beta, "gamma": m.p.Gamma,
		"s0": m.p.S0, "i0": m.p.I0, "r0": m.p.R0,
	}
}

// Population returns the fixed total N.
func (m *SIR) Population() float64 { return m.n }
