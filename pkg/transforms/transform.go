package transforms

import "github.com/willbeason/newton-fractal/pkg/algebra"

// A Step iterates a passed point, also reporting how far it moved.
type Step interface {
	Next(algebra.Complex) (next algebra.Complex, delta algebra.Complex)
}

// StepFunc adapts a plain function to Step.
type StepFunc func(algebra.Complex) (algebra.Complex, algebra.Complex)

func (f StepFunc) Next(z algebra.Complex) (algebra.Complex, algebra.Complex) {
	return f(z)
}

var _ Step = StepFunc(nil)
