package ode

import "math"

// DefaultDt is the step size used when a configuration leaves it unset.
const DefaultDt = 0.1

// Euler advances a state vector with fixed-step explicit Euler updates:
// y(t+dt) = y(t) + dt*f(y, t). The step size is fixed at construction.
type Euler struct {
	dt float64
}

func NewEuler(dt float64) (*Euler, error) {
	if dt <= 0 {
		return nil, ErrInvalidStepSize
	}
	return &Euler{dt: dt}, nil
}

func (e *Euler) Dt() float64 { return e.dt }

// Step advances y by a single Euler update and returns the new state.
// The input is never mutated.
func (e *Euler) Step(fn DerivFunc, y State, t float64) (State, error) {
	dy := fn(y, t)
	if len(dy) != len(y) {
		return nil, ErrDimensionMismatch
	}
	next := make(State, len(y))
	for k := range y {
		next[k] = y[k] + e.dt*dy[k]
	}
	return next, nil
}

// Solve integrates fn from (t0, y0) until the accumulated time is no
// longer less than tEnd. The returned series starts with the initial
// condition; the final time stamp may exceed tEnd by less than one
// step (fixed-step advancement does not snap to the boundary). Both
// output slices are newly allocated and share nothing with y0.
func (e *Euler) Solve(fn DerivFunc, y0 State, t0, tEnd float64) (*Series, error) {
	if len(y0) == 0 {
		return nil, ErrEmptyState
	}

	steps := 0
	if tEnd > t0 {
		steps = int(math.Ceil((tEnd - t0) / e.dt))
	}
	series := &Series{
		Times:  make([]float64, 0, steps+1),
		States: make([]State, 0, steps+1),
	}

	t := t0
	y := y0.Clone()
	series.Times = append(series.Times, t)
	series.States = append(series.States, y)

	for i := 0; t < tEnd; i++ {
		next, err := e.Step(fn, y, t)
		if err != nil {
			return nil, &StepError{Step: i, Time: t, Wrapped: err}
		}
		y = next
		t += e.dt
		series.Times = append(series.Times, t)
		series.States = append(series.States, y)
	}

	return series, nil
}
