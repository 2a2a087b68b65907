package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// DerivFunc maps (state, time) to the instantaneous rate of change of
// every component. It must return a vector of the same length as y and
// must not mutate y.
type DerivFunc func(y State, t float64) State

// Model is the contract a concrete ODE system implements. InitialState
// and Derivatives must be pure: same inputs, same output, no mutation.
type Model interface {
	InitialState() State
	Derivatives(y State, t float64) State
	StateDim() int
	Labels() []string
}

// Configurable is implemented by models that expose their parameters,
// used by the CLI and the live view.
type Configurable interface {
	Params() map[string]float64
}

// Series holds a simulation result: Times[k] is the time stamp of
// snapshot States[k]. Time-major; Compartment transposes one column.
type Series struct {
	Times  []float64
	States []State
}

func (r *Series) Len() int { return len(r.Times) }

// Final returns the last recorded state, or nil for an empty series.
func (r *Series) Final() State {
	if len(r.States) == 0 {
		return nil
	}
	return r.States[len(r.States)-1]
}

// Compartment returns the full trajectory of state component i.
func (r *Series) Compartment(i int) []float64 {
	out := make([]float64, len(r.States))
	for k, s := range r.States {
		out[k] = s[i]
	}
	return out
}
