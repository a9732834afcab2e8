package mrep

import (
	"errors"

	. "github.com/alexozer/mrep/internal"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

// ExtensionDegree tunes the size of the degree-elevated constraint system
// used during implicitization.
type ExtensionDegree [2]int

// DefaultExtensionDegree picks the extension degree that gives the implicit
// matrix the drop-of-rank property for a patch of degrees (p, q).
func DefaultExtensionDegree(p, q int) ExtensionDegree {
	min, max := p, q
	if q < p {
		min, max = q, p
	}

	return ExtensionDegree{2*min - 1, max - 1}
}

var (
	// ErrNoNullSpace reports a constraint matrix of full rank: the patch has
	// no implicitization at the chosen extension degree and cannot be
	// ray-traced.
	ErrNoNullSpace = errors.New("Constraint matrix has full rank, no implicit representation at this extension degree!")

	errBadDegree    = errors.New("Patch degrees must be at least 1 to implicitize!")
	errBadExtension = errors.New("Extension degrees cannot be negative!")
)

// MRep is the matrix representation of a patch: a matrix-valued affine
// function M(x,y,z) = M0 + x*Mx + y*My + z*Mz that loses rank exactly on
// the surface. It is built once per patch and immutable afterwards, so it
// may be shared across concurrently traced rays.
type MRep struct {
	M0, Mx, My, Mz *mat.Dense

	// Ext is the extension degree the representation was built with.
	Ext ExtensionDegree

	// companion is the representation of the transposed control net. It is
	// only built when Ext[1] == 0, where the null vector of the primary
	// representation carries no v-dependence and preimage recovery needs
	// the swapped orientation.
	companion *MRep
}

// Build the matrix representation of a patch
//
// **params**
// + the patch to implicitize
// + extension degree, or nil for the drop-of-rank default
// + tolerance configuration, or nil for defaults
//
// **returns**
// + the matrix representation
// + ErrNoNullSpace if the constraint matrix has no usable null space
func Implicitize(patch *BezierPatch, ext *ExtensionDegree, tol *Tolerances) (*MRep, error) {
	return implicitize(patch, ext, tol.OrDefault(), true)
}

func implicitize(patch *BezierPatch, ext *ExtensionDegree, tol *Tolerances, withCompanion bool) (*MRep, error) {
	p, q := patch.degreeU, patch.degreeV
	if p < 1 || q < 1 {
		return nil, errBadDegree
	}

	var v ExtensionDegree
	if ext == nil {
		v = DefaultExtensionDegree(p, q)
	} else {
		v = *ext
	}
	if v[0] < 0 || v[1] < 0 {
		return nil, errBadExtension
	}

	null := NullSpace(constraintMatrix(patch, v), tol.RankScale)
	if null == nil {
		return nil, ErrNoNullSpace
	}

	k := (v[0] + 1) * (v[1] + 1)
	_, r := null.Dims()

	this := &MRep{
		M0:  mat.DenseCopyOf(null.Slice(0, k, 0, r)),
		Mx:  mat.DenseCopyOf(null.Slice(k, 2*k, 0, r)),
		My:  mat.DenseCopyOf(null.Slice(2*k, 3*k, 0, r)),
		Mz:  mat.DenseCopyOf(null.Slice(3*k, 4*k, 0, r)),
		Ext: v,
	}

	if withCompanion && v[1] == 0 {
		companion, err := implicitize(patch.Transposed(), nil, tol, false)
		if err != nil {
			return nil, err
		}
		this.companion = companion
	}

	return this, nil
}

// constraintMatrix assembles the degree-elevated constraint system S whose
// null space encodes the implicit representation. Rows are indexed by the
// elevated basis coefficients (i+k, j+l), columns by (axis, k, l) over the
// four axes const, x, y, z.
func constraintMatrix(patch *BezierPatch, v ExtensionDegree) *mat.Dense {
	p, q := patch.degreeU, patch.degreeV
	stride := (v[0] + 1) * (v[1] + 1)

	s := mat.NewDense((p+v[0]+1)*(q+v[1]+1), 4*stride, nil)

	for axis := 0; axis < 4; axis++ {
		for k := 0; k <= v[0]; k++ {
			vk := binomial(v[0], k)

			for l := 0; l <= v[1]; l++ {
				vl := binomial(v[1], l)

				for i := 0; i <= p; i++ {
					for j := 0; j <= q; j++ {
						// coefficient of B_{i+k} * B_{j+l}
						row := (j + l) + (i+k)*(v[1]+q+1)
						col := l + k*(v[1]+1) + axis*stride

						w := vk * vl * binomial(p, i) * binomial(q, j) /
							(binomial(v[0]+p, i+k) * binomial(v[1]+q, j+l))

						s.Set(row, col, s.At(row, col)+w*coord(patch, axis, i, j))
					}
				}
			}
		}
	}

	return s
}

func coord(patch *BezierPatch, axis, i, j int) float64 {
	if axis == 0 {
		return 1
	}

	return patch.controlPoints[i][j][axis-1]
}

// Evaluate the matrix representation at a point
//
// **params**
// + a point represented by an array of length 3
//
// **returns**
// + the matrix M0 + x*Mx + y*My + z*Mz, freshly allocated
func (this *MRep) At(pt vec3.T) *mat.Dense {
	rows, cols := this.M0.Dims()

	m := mat.NewDense(rows, cols, nil)
	var scaled mat.Dense

	scaled.Scale(pt[0], this.Mx)
	m.Add(this.M0, &scaled)
	scaled.Scale(pt[1], this.My)
	m.Add(m, &scaled)
	scaled.Scale(pt[2], this.Mz)
	m.Add(m, &scaled)

	return m
}

// Dims returns the shape of the representation's matrices.
func (this *MRep) Dims() (rows, cols int) {
	return this.M0.Dims()
}
