package algebra

import "fmt"

// Complex is an immutable complex number. Every operation returns a new value.
type Complex struct {
	Re float64
	Im float64
}

// Zero is the additive identity.
var Zero = Complex{}

// Real returns the complex number with real part re and no imaginary part.
func Real(re float64) Complex {
	return Complex{Re: re}
}

func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func (a Complex) Subtract(b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

func (a Complex) Multiply(b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

func (a Complex) Conjugate() Complex {
	return Complex{Re: a.Re, Im: -a.Im}
}

// Divide returns a/b computed as a*conj(b) / |b|^2.
//
// Division by an exact zero is not trapped: for finite a the result is NaN
// in both parts, and divisors close to zero overflow to infinities.
func (a Complex) Divide(b Complex) Complex {
	n := a.Multiply(b.Conjugate())
	d := b.Re*b.Re + b.Im*b.Im

	return Complex{Re: n.Re / d, Im: n.Im / d}
}

// NormSquared is |a|^2.
func (a Complex) NormSquared() float64 {
	return a.Re*a.Re + a.Im*a.Im
}

// DistanceSquared is the squared Euclidean distance between a and b.
func (a Complex) DistanceSquared(b Complex) float64 {
	dx := a.Re - b.Re
	dy := a.Im - b.Im
	return dx*dx + dy*dy
}

// IsZero reports whether both parts are exactly zero. It is only meant for
// detecting a degenerate starting point before any arithmetic has happened.
func (a Complex) IsZero() bool {
	return a.Re == 0 && a.Im == 0
}

func (a Complex) String() string {
	return fmt.Sprintf("(%v + %vi)", a.Re, a.Im)
}
