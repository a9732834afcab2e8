package internal

import "math"

const (
	// Epsilon is the coarse geometric tolerance: bounding-box slop and the
	// allowance on recovered parameters outside [0,1].
	Epsilon = 1e-8

	// Tolerance bounds the imaginary part an eigenvalue may carry while
	// still being treated as a real intersection parameter.
	Tolerance = 1e-8
)

// MachEps is the double-precision machine epsilon.
var MachEps = math.Nextafter(1, 2) - 1
