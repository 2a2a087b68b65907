package experiment

import (
	"context"
	"testing"

	"github.com/mvolek/biosim/internal/config"
)

func TestRegistry_BuildAll(t *testing.T) {
	r := NewRegistry()
	cfg := config.Default()

	for _, name := range r.ListModels() {
		cfg.Model = name
		m, err := r.Build(cfg)
		if err != nil {
			t.Fatalf("build %s failed: %v", name, err)
		}
		if m.StateDim() != 3 {
			t.Errorf("%s: expected state dim 3, got %d", name, m.StateDim())
		}
		if len(m.Labels()) != m.StateDim() {
			t.Errorf("%s: labels/state dim mismatch", name)
		}
	}
}

func TestRegistry_UnknownModel(t *testing.T) {
	r := NewRegistry()
	cfg := config.Default()
	cfg.Model = "pendulum"

	if _, err := r.Build(cfg); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestExperiment_Run(t *testing.T) {
	r := NewRegistry()
	cfg := config.Default()
	cfg.TEnd = 10

	m, err := r.Build(cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	exp := New(cfg, m)
	series, elapsed, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if series.Len() < 101 {
		t.Errorf("expected at least 101 samples, got %d", series.Len())
	}
	last := series.Times[series.Len()-1]
	if last < cfg.TEnd || last >= cfg.TEnd+cfg.Dt {
		t.Errorf("final time %f outside [%f, %f)", last, cfg.TEnd, cfg.TEnd+cfg.Dt)
	}
	if elapsed <= 0 {
		t.Error("expected positive elapsed time")
	}
}

func TestExperiment_Canceled(t *testing.T) {
	r := NewRegistry()
	cfg := config.Default()

	m, err := r.Build(cfg)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := New(cfg, m).Run(ctx); err == nil {
		t.Error("expected error from canceled context")
	}
}
