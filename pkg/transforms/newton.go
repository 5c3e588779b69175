package transforms

import "github.com/willbeason/newton-fractal/pkg/algebra"

// Newton is one Newton-Raphson update for F, whose derivative is DF.
type Newton struct {
	F  algebra.Polynomial
	DF algebra.Polynomial
}

// NewNewton builds the step for f, deriving f' once up front.
func NewNewton(f algebra.Polynomial) Newton {
	return Newton{F: f, DF: f.Derivative()}
}

// Next returns z - F(z)/DF(z) along with the subtracted delta.
func (n Newton) Next(z algebra.Complex) (algebra.Complex, algebra.Complex) {
	delta := n.F.Evaluate(z).Divide(n.DF.Evaluate(z))
	return z.Subtract(delta), delta
}

var _ Step = Newton{}
