package ode_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mvolek/biosim/internal/ode"
)

var _ = Describe("Euler", func() {
	Describe("NewEuler", func() {
		It("rejects a zero step size", func() {
			_, err := ode.NewEuler(0)
			Expect(err).To(MatchError(ode.ErrInvalidStepSize))
		})

		It("rejects a negative step size", func() {
			_, err := ode.NewEuler(-0.1)
			Expect(err).To(MatchError(ode.ErrInvalidStepSize))
		})
	})

	Describe("Solve", func() {
		var integ *ode.Euler

		BeforeEach(func() {
			var err error
			integ, err = ode.NewEuler(0.1)
			Expect(err).NotTo(HaveOccurred())
		})

		zero := func(y ode.State, t float64) ode.State {
			return make(ode.State, len(y))
		}

		It("keeps the state constant under a zero derivative", func() {
			series, err := integ.Solve(zero, ode.State{1, 2, 3}, 0, 1)
			Expect(err).NotTo(HaveOccurred())
			for _, s := range series.States {
				Expect([]float64(s)).To(Equal([]float64{1, 2, 3}))
			}
		})

		It("records the initial condition first", func() {
			series, err := integ.Solve(zero, ode.State{5}, 0, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(series.Times[0]).To(Equal(0.0))
			Expect(series.States[0][0]).To(Equal(5.0))
		})

		It("produces parallel time and state sequences", func() {
			series, err := integ.Solve(zero, ode.State{1}, 0, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(series.States).To(HaveLen(len(series.Times)))
		})

		It("terminates at or just past the end time", func() {
			series, err := integ.Solve(zero, ode.State{1}, 0, 1.05)
			Expect(err).NotTo(HaveOccurred())
			last := series.Times[series.Len()-1]
			Expect(last).To(BeNumerically(">=", 1.05))
			Expect(last).To(BeNumerically("<", 1.05+0.1))
		})

		It("returns a single entry for an empty interval", func() {
			series, err := integ.Solve(zero, ode.State{7, 8}, 5, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(series.Len()).To(Equal(1))
			Expect(series.Times[0]).To(Equal(5.0))
			Expect([]float64(series.States[0])).To(Equal([]float64{7, 8}))
		})

		It("returns a single entry when t0 exceeds tEnd", func() {
			series, err := integ.Solve(zero, ode.State{1}, 3, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(series.Len()).To(Equal(1))
		})

		It("does not mutate the caller's initial state", func() {
			y0 := ode.State{1}
			decay := func(y ode.State, t float64) ode.State {
				return ode.State{-y[0]}
			}
			_, err := integ.Solve(decay, y0, 0, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(y0[0]).To(Equal(1.0))
		})

		It("approximates exponential decay", func() {
			decay := func(y ode.State, t float64) ode.State {
				return ode.State{-y[0]}
			}
			series, err := integ.Solve(decay, ode.State{1}, 0, 0.95)
			Expect(err).NotTo(HaveOccurred())
			// 10 Euler steps with dt=0.1: (1-0.1)^10
			Expect(series.Len()).To(Equal(11))
			Expect(series.Final()[0]).To(BeNumerically("~", 0.3486784401, 1e-9))
		})

		It("is deterministic across runs", func() {
			decay := func(y ode.State, t float64) ode.State {
				return ode.State{-0.5 * y[0]}
			}
			a, err := integ.Solve(decay, ode.State{3}, 0, 10)
			Expect(err).NotTo(HaveOccurred())
			b, err := integ.Solve(decay, ode.State{3}, 0, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Times).To(Equal(b.Times))
			Expect(a.States).To(Equal(b.States))
		})

		It("fails fast on a dimension mismatch", func() {
			bad := func(y ode.State, t float64) ode.State {
				return ode.State{0}
			}
			_, err := integ.Solve(bad, ode.State{1, 2}, 0, 1)
			Expect(err).To(MatchError(ode.ErrDimensionMismatch))

			var stepErr *ode.StepError
			Expect(errors.As(err, &stepErr)).To(BeTrue())
			Expect(stepErr.Step).To(Equal(0))
		})

		It("rejects an empty initial state", func() {
			_, err := integ.Solve(zero, ode.State{}, 0, 1)
			Expect(err).To(MatchError(ode.ErrEmptyState))
		})
	})
})
