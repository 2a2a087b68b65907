package models

import (
	"math"
	"testing"
)

func textbookSIR(t *testing.T) *SIR {
	t.Helper()
	m, err := NewSIR(SIRParams{Beta: 0.3, Gamma: 0.1, S0: 990, I0: 10, R0: 0, Dt: 0.1})
	if err != nil {
		t.Fatalf("NewSIR failed: %v", err)
	}
	return m
}

func TestSIR_Dimensions(t *testing.T) {
	m := textbookSIR(t)

	if m.StateDim() != 3 {
		t.Errorf("expected state dim 3, got %d", m.StateDim())
	}
	if len(m.Labels()) != 3 {
		t.Errorf("expected 3 labels, got %d", len(m.Labels()))
	}
	if m.Population() != 1000 {
		t.Errorf("expected N=1000, got %f", m.Population())
	}
}

func TestSIR_InitialState(t *testing.T) {
	m := textbookSIR(t)

	y0 := m.InitialState()
	if y0[0] != 990 || y0[1] != 10 || y0[2] != 0 {
		t.Errorf("unexpected initial state %v", y0)
	}

	series, err := m.Simulate(10)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if series.Times[0] != 0 {
		t.Errorf("expected t0=0, got %v", series.Times[0])
	}
	for i := range y0 {
		if series.States[0][i] != y0[i] {
			t.Errorf("series must start at the initial state, got %v", series.States[0])
		}
	}
}

func TestSIR_EpidemicBurnsOut(t *testing.T) {
	m := textbookSIR(t)

	series, err := m.Simulate(160)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	infected := series.Compartment(1)
	peak := infected[0]
	for _, v := range infected {
		if v > peak {
			peak = v
		}
	}

	final := infected[len(infected)-1]
	if final >= peak {
		t.Errorf("infected should fall below its peak: final=%f peak=%f", final, peak)
	}
	if peak <= 10 {
		t.Errorf("epidemic should grow before burning out, peak=%f", peak)
	}
}

func TestSIR_MassApproximatelyConserved(t *testing.T) {
	m := textbookSIR(t)

	series, err := m.Simulate(160)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	for k, s := range series.States {
		total := s[0] + s[1] + s[2]
		if math.Abs(total-1000) > 1e-6 {
			t.Fatalf("step %d: S+I+R = %f, want ~1000", k, total)
		}
	}
}

func TestSIR_Deterministic(t *testing.T) {
	a := textbookSIR(t)
	b := textbookSIR(t)

	ra, err := a.Simulate(160)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	rb, err := b.Simulate(160)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if ra.Len() != rb.Len() {
		t.Fatalf("run lengths differ: %d vs %d", ra.Len(), rb.Len())
	}
	for k := range ra.States {
		for i := range ra.States[k] {
			if ra.States[k][i] != rb.States[k][i] {
				t.Fatalf("runs diverge at step %d", k)
			}
		}
	}
}

func TestSIR_FinalTimeBound(t *testing.T) {
	m := textbookSIR(t)

	series, err := m.Simulate(160)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	last := series.Times[series.Len()-1]
	if last < 160 {
		t.Errorf("final time %f should reach 160", last)
	}
	if last >= 160+0.1 {
		t.Errorf("final time %f should not overshoot by a full step", last)
	}
}

func TestSIR_InvalidDt(t *testing.T) {
	if _, err := NewSIR(SIRParams{Beta: 0.3, Gamma: 0.1, S0: 990, I0: 10, Dt: -0.1}); err == nil {
		t.Error("expected error for negative dt")
	}
}
