package mrep

import (
	"errors"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// UV holds a pair of surface parameters in the unit square.
type UV [2]float64

// BezierPatch is an explicit tensor-product polynomial patch: a grid of
// (p+1) x (q+1) control points for degrees (p, q), the u direction
// increasing along the first index and the v direction along the second.
type BezierPatch struct {
	// integer degree of the patch in u direction
	degreeU int

	// integer degree of the patch in v direction
	degreeV int

	// 2d array of control points of size (degreeU+1) x (degreeV+1)
	controlPoints [][]vec3.T
}

// NewBezierPatch builds a patch from its control grid, inferring the degrees
// from the grid dimensions.
func NewBezierPatch(controlPoints [][]vec3.T) (*BezierPatch, error) {
	this := &BezierPatch{controlPoints: controlPoints}
	if err := this.check(); err != nil {
		return nil, err
	}

	this.degreeU = len(controlPoints) - 1
	this.degreeV = len(controlPoints[0]) - 1

	return this, nil
}

func (this *BezierPatch) check() error {
	if len(this.controlPoints) == 0 {
		return errors.New("Control points array cannot be empty!")
	}

	width := len(this.controlPoints[0])
	if width == 0 {
		return errors.New("Control point rows cannot be empty!")
	}

	for _, row := range this.controlPoints {
		if len(row) != width {
			return errors.New("Control point rows must all have the same length!")
		}

		for _, pt := range row {
			for _, compon := range pt {
				if math.IsNaN(compon) || math.IsInf(compon, 0) {
					return errors.New("Control points must be finite!")
				}
			}
		}
	}

	return nil
}

func (this *BezierPatch) DegreeU() int {
	return this.degreeU
}

func (this *BezierPatch) DegreeV() int {
	return this.degreeV
}

// ControlPoints returns a copy of the control grid.
func (this *BezierPatch) ControlPoints() [][]vec3.T {
	pts := make([][]vec3.T, len(this.controlPoints))
	for i := range pts {
		pts[i] = append([]vec3.T(nil), this.controlPoints[i]...)
	}

	return pts
}

// Transposed returns the patch with its parameter directions swapped, so
// that Transposed().Point(UV{v, u}) equals Point(UV{u, v}).
func (this *BezierPatch) Transposed() *BezierPatch {
	pts := make([][]vec3.T, this.degreeV+1)
	for j := range pts {
		row := make([]vec3.T, this.degreeU+1)
		for i := range row {
			row[i] = this.controlPoints[i][j]
		}
		pts[j] = row
	}

	return &BezierPatch{this.degreeV, this.degreeU, pts}
}

// Compute a point on the patch
//
// **params**
// + uv parameter pair at which to evaluate the patch
//
// **returns**
// + a point represented by an array of length 3
func (this *BezierPatch) Point(uv UV) vec3.T {
	var out vec3.T

	for i := 0; i <= this.degreeU; i++ {
		wu := bernstein(i, this.degreeU, uv[0])

		for j := 0; j <= this.degreeV; j++ {
			scaled := this.controlPoints[i][j].Scaled(wu * bernstein(j, this.degreeV, uv[1]))
			out.Add(&scaled)
		}
	}

	return out
}

// Compute the unit normal at a point on the patch
//
// **params**
// + uv parameter pair at which to evaluate the normal
//
// **returns**
// + a normal vector represented by an array of length 3
func (this *BezierPatch) Normal(uv UV) vec3.T {
	du, dv := this.derivatives(uv)
	n := vec3.Cross(&dv, &du)

	return *n.Normalize()
}

// derivatives evaluates the first partial derivatives of the patch.
func (this *BezierPatch) derivatives(uv UV) (du, dv vec3.T) {
	for i := 0; i <= this.degreeU; i++ {
		wu := bernstein(i, this.degreeU, uv[0])
		wuDeriv := bernsteinDeriv(i, this.degreeU, uv[0])

		for j := 0; j <= this.degreeV; j++ {
			wv := bernstein(j, this.degreeV, uv[1])
			wvDeriv := bernsteinDeriv(j, this.degreeV, uv[1])

			scaled := this.controlPoints[i][j].Scaled(wuDeriv * wv)
			du.Add(&scaled)

			scaled = this.controlPoints[i][j].Scaled(wu * wvDeriv)
			dv.Add(&scaled)
		}
	}

	return
}

// SampleGrid evaluates the patch on an n x n uniform parameter grid, in
// row-major order over u then v. Useful for point-cloud dumps.
func (this *BezierPatch) SampleGrid(n int) []vec3.T {
	if n < 2 {
		n = 2
	}

	points := make([]vec3.T, 0, n*n)
	step := 1 / float64(n-1)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			points = append(points, this.Point(UV{float64(i) * step, float64(j) * step}))
		}
	}

	return points
}
