package mrep

import "math"

// Evaluate a Bernstein basis polynomial
//
// **params**
// + polynomial number
// + degree
// + sample parameter
//
// **returns**
// + the basis function value
func bernstein(i, degree int, u float64) float64 {
	return binomial(degree, i) *
		math.Pow(u, float64(i)) * math.Pow(1-u, float64(degree-i))
}

// Evaluate the first derivative of a Bernstein basis polynomial
func bernsteinDeriv(i, degree int, u float64) float64 {
	var a, b float64

	if i > 0 {
		a = float64(i) * math.Pow(u, float64(i-1)) * math.Pow(1-u, float64(degree-i))
	}
	if degree-i > 0 {
		b = -float64(degree-i) * math.Pow(u, float64(i)) * math.Pow(1-u, float64(degree-i-1))
	}

	return binomial(degree, i) * (a + b)
}
