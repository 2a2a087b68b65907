package ode

import (
	"context"
	"testing"
)

type constModel struct{ rate float64 }

func (m *constModel) InitialState() State { return State{0} }
func (m *constModel) Derivatives(y State, t float64) State {
	return State{m.rate}
}
func (m *constModel) StateDim() int    { return 1 }
func (m *constModel) Labels() []string { return []string{"x"} }

func TestSim_StartsAtZero(t *testing.T) {
	sim, err := NewSim(&constModel{rate: 1}, 0.1)
	if err != nil {
		t.Fatalf("NewSim failed: %v", err)
	}

	series, err := sim.Simulate(1.0)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	if series.Times[0] != 0 {
		t.Errorf("expected t0=0, got %v", series.Times[0])
	}
	if series.States[0][0] != 0 {
		t.Errorf("expected initial state 0, got %v", series.States[0][0])
	}
}

func TestSim_RepeatedRunsIndependent(t *testing.T) {
	sim, err := NewSim(&constModel{rate: 2}, 0.1)
	if err != nil {
		t.Fatalf("NewSim failed: %v", err)
	}

	a, err := sim.Simulate(5)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := sim.Simulate(5)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if a.Len() != b.Len() {
		t.Fatalf("run lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Times {
		if a.Times[i] != b.Times[i] || a.States[i][0] != b.States[i][0] {
			t.Fatalf("runs diverge at step %d", i)
		}
	}
}

func TestSim_InvalidDt(t *testing.T) {
	if _, err := NewSim(&constModel{}, 0); err == nil {
		t.Error("expected error for dt=0")
	}
	if _, err := NewSim(&constModel{}, -1); err == nil {
		t.Error("expected error for negative dt")
	}
}

func TestEnsemble_Run(t *testing.T) {
	build := func() (*Sim, error) {
		return NewSim(&constModel{rate: 1}, 0.1)
	}

	ens := NewEnsemble(build, 4)
	results, err := ens.Run(context.Background(), 1.0)
	if err != nil {
		t.Fatalf("ensemble run failed: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Len() != results[0].Len() {
			t.Errorf("result %d length differs", i)
		}
		final := results[i].Final()[0]
		if final != results[0].Final()[0] {
			t.Errorf("result %d final state differs: %v", i, final)
		}
	}
}

func TestEnsemble_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	build := func() (*Sim, error) {
		return NewSim(&constModel{rate: 1}, 0.1)
	}

	ens := NewEnsemble(build, 2)
	if _, err := ens.Run(ctx, 1.0); err == nil {
		t.Error("expected error from canceled context")
	}
}
