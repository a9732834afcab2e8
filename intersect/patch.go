package intersect

import (
	"math"

	"github.com/alexozer/mrep"
	"github.com/alexozer/mrep/internal"
)

// Intersect a ray with one implicit patch
//
// Substituting the ray into the matrix representation gives the pencil
// A + t*B with A = M(origin) and B = M(origin+dir) - A, whose finite
// eigenvalues sit at lambda = -t. The pencil is reduced to a regular core
// first; a pencil with no finite eigenstructure yields an empty candidate
// list, since such a ray simply misses the patch's algebraic structure.
//
// **params**
// + the patch's matrix representation
// + the ray
// + tolerance configuration, or nil for defaults
//
// **returns**
// + the real non-negative ray parameters where the surface may be crossed,
// still unverified against the patch domain
func Candidates(rep *mrep.MRep, ray Ray, tol *mrep.Tolerances) []float64 {
	tol = tol.OrDefault()

	a := rep.At(ray.Origin)
	end := ray.At(1)
	b := rep.At(end)
	b.Sub(b, a)

	pencil, ok := internal.ReducePencil(internal.Pencil{A: a, B: b}, tol.RankScale, tol.ZeroScale)
	if !ok {
		return nil
	}

	eigs, ok := internal.PencilEigenvalues(pencil)
	if !ok {
		return nil
	}

	var ts []float64
	for _, e := range eigs {
		if math.Abs(imag(e)) > tol.Imag {
			continue
		}

		t := -real(e)
		if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}

		ts = append(ts, t)
	}

	return ts
}
