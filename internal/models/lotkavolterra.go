package models

import "github.com/mvolek/biosim/internal/ode"

// LotkaVolterraParams configures the predator-prey-competitor model.
// Gamma is the death rate of both the predator and the competitor; the
// source model reuses one rate for both species.
type LotkaVolterraParams struct {
	Alpha    float64 // prey growth rate
	Beta     float64 // predation rate
	Delta    float64 // predator growth from predation
	Gamma    float64 // predator and competitor death rate
	CompRate float64 // competitor growth rate
	Prey0    float64
	Pred0    float64
	Comp0    float64
	Dt       float64
}

// LotkaVolterra is a predator-prey system extended with a second
// species competing for the same prey. State: [prey, predator,
// competitor].
type LotkaVolterra struct {
	p   LotkaVolterraParams
	sim *ode.Sim
}

func NewLotkaVolterra(p LotkaVolterraParams) (*LotkaVolterra, error) {
	if p.Dt == 0 {
		p.Dt = ode.DefaultDt
	}
	m := &LotkaVolterra{p: p}
	sim, err := ode.NewSim(m, p.Dt)
	if err != nil {
		return nil, err
	}
	m.sim = sim
	return m, nil
}

func (m *LotkaVolterra) StateDim() int    { return 3 }
func (m *LotkaVolterra) Labels() []string { return []string{"prey", "predator", "competitor"} }

func (m *LotkaVolterra) InitialState() ode.State {
	return ode.State{m.p.Prey0, m.p.Pred0, m.p.Comp0}
}

func (m *LotkaVolterra) Derivatives(y ode.State, _ float64) ode.State {
	prey, pred, comp := y[0], y[1], y[2]
	dprey := m.p.Alpha*prey - m.p.Beta*prey*(pred+comp)
	dpred := m.p.Delta*prey*pred - m.p.Gamma*pred
	dcomp := m.p.CompRate*prey*comp - m.p.Gamma*comp
	return ode.State{dprey, dpred, dcomp}
}

func (m *LotkaVolterra) Simulate(tEnd float64) (*ode.Series, error) {
	return m.sim.Simulate(tEnd)
}

func (m *LotkaVolterra) Params() map[string]float64 {
	return map[string]float64{
		"alpha": m.p.Alpha, "beta": m.p.Beta, "delta": m.p.Delta,
		"gamma": m.p.Gamma, "comp_rate": m.p.CompRate,
		"prey0": m.p.Prey0, "pred0": m.p.Pred0, "comp0": m.p.Comp0,
	}
}
