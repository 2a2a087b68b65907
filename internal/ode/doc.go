// Package ode provides the core primitives for simulating coupled
// first-order ordinary differential equation systems:
//
//   - [State]: vector representing the system state
//   - [Model]: interface a concrete system implements (dY/dt = f(Y, t))
//   - [Euler]: fixed-step explicit (forward) Euler integrator
//   - [Sim]: binds a model to an integrator and runs it from t=0
//   - [Series]: parallel time/state sequences produced by a run
//
// # Example
//
//	m, _ := models.NewSIR(models.SIRParams{Beta: 0.3, Gamma: 0.1, S0: 990, I0: 10})
//	series, _ := m.Simulate(160)
//	fmt.Println(series.Final())
//
// # Thread Safety
//
// Sim instances are NOT thread-safe, but hold no shared mutable state:
// independent Sims may run concurrently. Use [Ensemble] to fan a batch
// of runs across goroutines.
package ode
