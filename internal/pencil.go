package internal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Pencil is the one-parameter matrix family A - lambda*B. The pencils built
// from ray-substituted matrix representations are generally rectangular and
// singular, so they cannot be handed to an eigenvalue solver directly.
type Pencil struct {
	A, B *mat.Dense
}

// Reduce a singular matrix pencil to a regular core pencil
//
// This is the first stage of the staircase algorithms used for Kronecker
// canonical form: repeatedly locate the rank deficiency of B, rotate it into
// a trailing block, and shrink the pencil past the structure carrying only
// infinite or removed eigenvalues. A full-column-rank rectangular survivor is
// transposed and reduced again; the elimination is symmetric in rows and
// columns.
//
// **params**
// + the pencil to reduce
// + relative scale for the SVD rank cutoff
// + relative scale for the near-zero entry search
//
// **returns**
// + the square regular pencil whose generalized eigenvalues are the finite
// eigenvalues of the input, and true
// + a zero pencil and false if no finite eigenstructure can be isolated
func ReducePencil(p Pencil, rankScale, zeroScale float64) (Pencil, bool) {
	a := mat.DenseCopyOf(p.A)
	b := mat.DenseCopyOf(p.B)

	rows, cols := b.Dims()

	// Every pass either shrinks the pencil or transposes a column-regular
	// rectangular one, which shrinks on the following pass, so the entry
	// count bounds the iterations.
	for guard := rows*cols + 2; guard > 0; guard-- {
		rows, cols = b.Dims()
		if rows == 0 || cols == 0 {
			return Pencil{}, false
		}

		var svd mat.SVD
		if !svd.Factorize(b, mat.SVDFull) {
			return Pencil{}, false
		}

		values := svd.Values(nil)
		rank := NumericalRank(values, RankTolerance(values, rows, cols, rankScale))

		if rank == cols {
			if rows == cols {
				return Pencil{a, b}, true
			}

			a = mat.DenseCopyOf(a.T())
			b = mat.DenseCopyOf(b.T())
			continue
		}

		var v mat.Dense
		svd.VTo(&v)

		// Project A onto the right null space of B, then use the left
		// singular vectors of the projection to re-express the pencil with
		// the deficiency isolated in a trailing block.
		var av mat.Dense
		av.Mul(a, &v)
		proj := mat.DenseCopyOf(av.Slice(0, rows, rank, cols))

		var projSVD mat.SVD
		if !projSVD.Factorize(proj, mat.SVDFull) {
			return Pencil{}, false
		}

		var u mat.Dense
		projSVD.UTo(&u)

		var ra, bv, rb mat.Dense
		ra.Mul(u.T(), &av)
		bv.Mul(b, &v)
		rb.Mul(u.T(), &bv)

		i, j, found := firstNearZero(&ra, zeroScale)
		if !found || j == 0 {
			return Pencil{}, false
		}

		a = mat.DenseCopyOf(ra.Slice(i, rows, 0, j))
		b = mat.DenseCopyOf(rb.Slice(i, rows, 0, j))
	}

	return Pencil{}, false
}

// firstNearZero scans row-major for the first entry negligible relative to
// the matrix norm.
func firstNearZero(a *mat.Dense, zeroScale float64) (int, int, bool) {
	rows, cols := a.Dims()
	tol := zeroScale * (1 + mat.Norm(a, math.Inf(1)))

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.Abs(a.At(i, j)) < tol {
				return i, j, true
			}
		}
	}

	return 0, 0, false
}

// Compute the generalized eigenvalues of a regular pencil
//
// **params**
// + a square pencil with B of full rank, as produced by ReducePencil
//
// **returns**
// + the eigenvalues lambda where A - lambda*B is singular, and true
// + nil and false if B turns out singular to working precision
func PencilEigenvalues(p Pencil) ([]complex128, bool) {
	var x mat.Dense
	if err := x.Solve(p.B, p.A); err != nil {
		cond, ok := err.(mat.Condition)
		if !ok || math.IsInf(float64(cond), 0) {
			return nil, false
		}
	}

	var eig mat.Eigen
	if !eig.Factorize(&x, mat.EigenNone) {
		return nil, false
	}

	return eig.Values(nil), true
}
