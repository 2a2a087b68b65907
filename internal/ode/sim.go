package ode

// Sim binds a model to a single integrator instance. A Sim holds no
// state between runs; Simulate may be called repeatedly and yields
// identical output for identical inputs.
type Sim struct {
	model Model
	integ *Euler
}

func NewSim(m Model, dt float64) (*Sim, error) {
	integ, err := NewEuler(dt)
	if err != nil {
		return nil, err
	}
	return &Sim{model: m, integ: integ}, nil
}

func (s *Sim) Model() Model { return s.model }
func (s *Sim) Dt() float64  { return s.integ.Dt() }

// Simulate integrates the model from t=0 through tEnd using the
// model's own initial state and derivative law.
func (s *Sim) Simulate(tEnd float64) (*Series, error) {
	return s.integ.Solve(s.model.Derivatives, s.model.InitialState(), 0, tEnd)
}
