package algebra

import (
	"strconv"
	"strings"
)

// A Polynomial is an ordered list of coefficients where index i holds the
// coefficient of x^i.
//
// Polynomials are never mutated after construction; Derivative returns a new one.
type Polynomial struct {
	coefficients []Complex
}

// NewPolynomial copies coefs into a new Polynomial.
func NewPolynomial(coefs ...Complex) Polynomial {
	c := make([]Complex, len(coefs))
	copy(c, coefs)
	return Polynomial{coefficients: c}
}

// Coefficients returns a copy of the coefficients, lowest power first.
func (p Polynomial) Coefficients() []Complex {
	c := make([]Complex, len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// Len is the number of coefficients.
func (p Polynomial) Len() int {
	return len(p.coefficients)
}

// Degree is Len()-1, or -1 for the empty polynomial.
func (p Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Derivative returns p'. A polynomial with fewer than two coefficients
// derives to the empty polynomial.
func (p Polynomial) Derivative() Polynomial {
	if len(p.coefficients) < 2 {
		return Polynomial{}
	}

	d := make([]Complex, 0, len(p.coefficients)-1)
	for i := 1; i < len(p.coefficients); i++ {
		d = append(d, p.coefficients[i].Multiply(Real(float64(i))))
	}

	return Polynomial{coefficients: d}
}

// Evaluate returns the sum of c[i]*z^i. Powers are built by repeated
// multiplication; the constant term is added as is.
func (p Polynomial) Evaluate(z Complex) Complex {
	result := Zero
	for i, c := range p.coefficients {
		if i > 0 {
			power := z
			for j := 0; j < i-1; j++ {
				power = power.Multiply(z)
			}
			c = c.Multiply(power)
		}
		result = result.Add(c)
	}

	return result
}

// Scale returns p with every coefficient multiplied by k.
func (p Polynomial) Scale(k Complex) Polynomial {
	c := make([]Complex, len(p.coefficients))
	for i, coef := range p.coefficients {
		c[i] = coef.Multiply(k)
	}
	return Polynomial{coefficients: c}
}

func (p Polynomial) String() string {
	if len(p.coefficients) == 0 {
		return "0"
	}

	terms := make([]string, len(p.coefficients))
	for i, c := range p.coefficients {
		var sb strings.Builder
		sb.WriteString(c.String())
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
		terms[i] = sb.String()
	}

	return strings.Join(terms, " + ")
}

