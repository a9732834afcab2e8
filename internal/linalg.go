package internal

import "gonum.org/v1/gonum/mat"

// Compute the rank cutoff for a set of singular values
//
// **params**
// + singular values in descending order
// + dimensions of the decomposed matrix
// + relative scale applied on top of the machine-epsilon cutoff
//
// **returns**
// + the absolute threshold below which a singular value counts as zero
func RankTolerance(values []float64, rows, cols int, scale float64) float64 {
	if len(values) == 0 {
		return 0
	}

	dim := rows
	if cols > dim {
		dim = cols
	}

	return values[0] * float64(dim) * MachEps * scale
}

// NumericalRank counts the singular values above the threshold.
func NumericalRank(values []float64, tol float64) int {
	var rank int
	for _, sigma := range values {
		if sigma > tol {
			rank++
		}
	}

	return rank
}

// Compute an orthonormal basis of the right null space of a matrix
//
// **params**
// + the matrix to decompose
// + relative scale for the rank cutoff
//
// **returns**
// + a (cols x nullity) matrix whose columns span the null space, or nil if
// the matrix has full column rank
func NullSpace(a *mat.Dense, scale float64) *mat.Dense {
	rows, cols := a.Dims()

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil
	}

	values := svd.Values(nil)
	rank := NumericalRank(values, RankTolerance(values, rows, cols, scale))
	if rank == cols {
		return nil
	}

	var v mat.Dense
	svd.VTo(&v)

	return mat.DenseCopyOf(v.Slice(0, cols, rank, cols))
}

// SmallestLeftVector returns the left singular vector paired with the
// smallest singular value. For a matrix that is singular at the queried
// point this approximates its left null vector.
func SmallestLeftVector(a *mat.Dense) []float64 {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil
	}

	var u mat.Dense
	svd.UTo(&u)

	rows, _ := u.Dims()
	vec := make([]float64, rows)
	mat.Col(vec, rows-1, &u)

	return vec
}
