package ode

import (
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 2.0, 3.0}, true},
		{"zeros", State{0.0, 0.0}, true},
		{"with NaN", State{1.0, math.NaN()}, false},
		{"with +Inf", State{1.0, math.Inf(1)}, false},
		{"with -Inf", State{1.0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_Norm(t *testing.T) {
	tests := []struct {
		state    State
		expected float64
	}{
		{State{3, 4}, 5.0},
		{State{1, 0}, 1.0},
		{State{0, 0}, 0.0},
		{State{1, 1, 1, 1}, 2.0},
	}

	for _, tt := range tests {
		if got := tt.state.Norm(); math.Abs(got-tt.expected) > 1e-10 {
			t.Errorf("Norm(%v) = %v, want %v", tt.state, got, tt.expected)
		}
	}
}

func TestState_Clone(t *testing.T) {
	s := State{1, 2, 3}
	c := s.Clone()
	c[0] = 99

	if s[0] != 1 {
		t.Error("Clone should not share backing storage")
	}
}

func TestSeries_Compartment(t *testing.T) {
	r := &Series{
		Times:  []float64{0, 0.1, 0.2},
		States: []State{{1, 10}, {2, 20}, {3, 30}},
	}

	comp := r.Compartment(1)
	want := []float64{10, 20, 30}
	for i := range want {
		if comp[i] != want[i] {
			t.Errorf("Compartment(1)[%d] = %v, want %v", i, comp[i], want[i])
		}
	}
}

func TestSeries_Final(t *testing.T) {
	empty := &Series{}
	if empty.Final() != nil {
		t.Error("Final of empty series should be nil")
	}

	r := &Series{
		Times:  []float64{0, 0.1},
		States: []State{{1}, {2}},
	}
	if r.Final()[0] != 2 {
		t.Errorf("Final()[0] = %v, want 2", r.Final()[0])
	}
}
