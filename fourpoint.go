package mrep

import "github.com/ungerik/go3d/float64/vec3"

// Generate the control points of a patch spanned by 4 corner points
//
// **params**
// + corner at (u,v) = (0,0)
// + corner at (u,v) = (1,0)
// + corner at (u,v) = (1,1)
// + corner at (u,v) = (0,1)
// + degree of the patch in both directions, at least 1
//
// **returns**
// + a bilinear interpolation of the corners, degree-elevated to the
// requested degree
func FourPoint(p1, p2, p3, p4 *vec3.T, degree int) (*BezierPatch, error) {
	if degree < 1 {
		degree = 1
	}
	degreeFloat := float64(degree)

	pts := make([][]vec3.T, degree+1)
	for i := range pts {
		u := float64(i) / degreeFloat
		bottom := vec3.Interpolate(p1, p2, u)
		top := vec3.Interpolate(p4, p3, u)

		row := make([]vec3.T, degree+1)
		for j := range row {
			row[j] = vec3.Interpolate(&bottom, &top, float64(j)/degreeFloat)
		}

		pts[i] = row
	}

	return NewBezierPatch(pts)
}
