package mrep

import . "github.com/alexozer/mrep/internal"

// Tolerances collects every numeric cutoff the kernel branches on, so a
// tolerance regime is explicit per call instead of buried in module
// constants. A nil *Tolerances anywhere in the API means DefaultTolerances.
type Tolerances struct {
	// RankScale multiplies the relative SVD rank cutoff
	// sigma_max * max(rows, cols) * machine epsilon.
	RankScale float64

	// ZeroScale scales the near-zero entry search inside the pencil
	// staircase, relative to the matrix norm.
	ZeroScale float64

	// Imag is the largest imaginary part an eigenvalue may carry and still
	// count as a real intersection parameter.
	Imag float64

	// Domain is the absolute slop allowed on recovered (u, v) outside the
	// unit square.
	Domain float64

	// Box inflates bounding boxes during hit confirmation.
	Box float64
}

func DefaultTolerances() *Tolerances {
	return &Tolerances{
		RankScale: 1,
		ZeroScale: Epsilon,
		Imag:      Tolerance,
		Domain:    Epsilon,
		Box:       Epsilon,
	}
}

func (this *Tolerances) OrDefault() *Tolerances {
	if this == nil {
		return DefaultTolerances()
	}

	return this
}
