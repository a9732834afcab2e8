package mrep

import (
	. "github.com/alexozer/mrep/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Recover the surface parameters mapping to a point on the patch
//
// The left null vector of M evaluated at an on-surface point holds the
// Bernstein basis of the extension degree evaluated at the preimage:
// n[l + k*(v1+1)] = B_k^v0(u) * B_l^v1(v). Adjacent-coefficient ratios give
// each parameter; every adjacent pair feeds one least-squares row, which is
// robust to the redundancy of the over-determined null-vector structure.
// Only one preimage is recovered; self-overlapping parameterizations are a
// known limitation.
//
// **params**
// + the patch's matrix representation
// + a point confirmed (or suspected) to lie on the surface
// + tolerance configuration, or nil for defaults
//
// **returns**
// + the parameter pair and true, or false if the recovered parameters fall
// outside the unit square or the null vector is uninformative
func Preimage(rep *MRep, pt vec3.T, tol *Tolerances) (UV, bool) {
	tol = tol.OrDefault()

	n := SmallestLeftVector(rep.At(pt))
	if n == nil {
		return UV{}, false
	}

	u, ok := ratioAcrossBlocks(n, rep.Ext)
	if !ok {
		return UV{}, false
	}

	var v float64
	switch {
	case rep.Ext[1] >= 1:
		v, ok = ratioWithinBlocks(n, rep.Ext)

	case rep.companion != nil:
		// At extension degree (v0, 0) the null vector carries no
		// v-dependence; read v as the transposed-net companion's u.
		nc := SmallestLeftVector(rep.companion.At(pt))
		if nc == nil {
			return UV{}, false
		}
		v, ok = ratioAcrossBlocks(nc, rep.companion.Ext)

	default:
		ok = false
	}
	if !ok {
		return UV{}, false
	}

	if u < -tol.Domain || u > 1+tol.Domain || v < -tol.Domain || v > 1+tol.Domain {
		return UV{}, false
	}

	return UV{u, v}, true
}

// ratioAcrossBlocks solves for the u parameter from coefficient pairs a
// stride of v1+1 apart, which walk the degree-v0 Bernstein basis in u.
func ratioAcrossBlocks(n []float64, ext ExtensionDegree) (float64, bool) {
	v0, v1 := ext[0], ext[1]
	stride := v1 + 1

	var num, den float64
	for k := 0; k < v0; k++ {
		for l := 0; l <= v1; l++ {
			c0, c1 := n[l+k*stride], n[l+(k+1)*stride]

			// (k+1)*c1 = u * ((v0-k)*c0 + (k+1)*c1)
			a := float64(v0-k)*c0 + float64(k+1)*c1
			b := float64(k+1) * c1

			num += a * b
			den += a * a
		}
	}

	return leastSquares(num, den)
}

// ratioWithinBlocks solves for the v parameter from adjacent coefficients
// inside each block, which walk the degree-v1 Bernstein basis in v.
func ratioWithinBlocks(n []float64, ext ExtensionDegree) (float64, bool) {
	v0, v1 := ext[0], ext[1]
	stride := v1 + 1

	var num, den float64
	for k := 0; k <= v0; k++ {
		for l := 0; l < v1; l++ {
			c0, c1 := n[l+k*stride], n[l+1+k*stride]

			a := float64(v1-l)*c0 + float64(l+1)*c1
			b := float64(l+1) * c1

			num += a * b
			den += a * a
		}
	}

	return leastSquares(num, den)
}

func leastSquares(num, den float64) (float64, bool) {
	// The null vector is unit length, so a vanishing denominator means the
	// ratio system carries no information, not that the parameter is huge.
	if den < 1e-30 {
		return 0, false
	}

	return num / den, true
}
