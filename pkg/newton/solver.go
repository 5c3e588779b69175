// Package newton locates the root of a polynomial that attracts a starting
// point under Newton-Raphson iteration.
package newton

import (
	"github.com/willbeason/newton-fractal/pkg/algebra"
	"github.com/willbeason/newton-fractal/pkg/transforms"
)

const (
	// DefaultSteps is the number of counted Newton steps per solve.
	DefaultSteps = 25

	// DefaultRetryThreshold is the squared step length at or above which a
	// step is treated as an overshoot and not charged to the step budget.
	DefaultRetryThreshold = 0.5
)

// ZeroOffset replaces an exactly-zero starting point, where f' may vanish.
var ZeroOffset = algebra.Complex{Re: 0.0001, Im: 0.0001}

// Perturb returns ZeroOffset if z is exactly zero and z otherwise.
func Perturb(z algebra.Complex) algebra.Complex {
	if z.IsZero() {
		return ZeroOffset
	}
	return z
}

// Result is the outcome of a single solve.
type Result struct {
	// Z is the final iterate.
	Z algebra.Complex

	// Steps is the number of steps charged to the budget.
	Steps int

	// Retries is the number of overshooting steps that were applied but not
	// charged to the budget.
	Retries int
}

// Iterations is the total number of Newton updates applied to Z.
func (r Result) Iterations() int {
	return r.Steps + r.Retries
}

// Solver runs a fixed budget of Newton steps with no convergence test.
//
// A step whose squared length reaches RetryThreshold is not counted, but its
// update to z is kept; the loop simply spins once more. With MaxRetries at
// zero nothing bounds the number of such steps.
type Solver struct {
	Step transforms.Step

	Steps          int
	RetryThreshold float64

	// MaxRetries caps uncounted steps; once reached, overshooting steps are
	// charged like any other. Zero means no cap.
	MaxRetries int
}

// NewSolver returns a Solver for f with the default budget and threshold.
func NewSolver(f algebra.Polynomial) *Solver {
	return &Solver{
		Step:           transforms.NewNewton(f),
		Steps:          DefaultSteps,
		RetryThreshold: DefaultRetryThreshold,
	}
}

// Solve iterates from start. The caller must not pass an exactly-zero start
// for polynomials whose derivative vanishes there; see Perturb.
func (s *Solver) Solve(start algebra.Complex) Result {
	result := Result{Z: start}

	for result.Steps < s.Steps {
		var delta algebra.Complex
		result.Z, delta = s.Step.Next(result.Z)

		if delta.NormSquared() >= s.RetryThreshold &&
			(s.MaxRetries <= 0 || result.Retries < s.MaxRetries) {
			result.Retries++
			continue
		}
		result.Steps++
	}

	return result
}

// Solve runs the default Solver for f, whose derivative is df, from start.
func Solve(f, df algebra.Polynomial, start algebra.Complex) Result {
	s := &Solver{
		Step:           transforms.Newton{F: f, DF: df},
		Steps:          DefaultSteps,
		RetryThreshold: DefaultRetryThreshold,
	}
	return s.Solve(start)
}
