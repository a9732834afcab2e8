package intersect

import (
	"github.com/alexozer/mrep"
	"github.com/ungerik/go3d/float64/vec3"
)

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point
// is outside of it. If the bounding box is not initialized, this method has
// that side effect.
//
// **params**
// + the point
//
// **returns**
// + this BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point[:] {
		if val > this.Max[i] {
			this.Max[i] = val
		}
		if val < this.Min[i] {
			this.Min[i] = val
		}
	}

	return this
}

// Add an array of points to the bounding box
func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for _, pt := range points {
		this.Add(&pt)
	}

	return this
}

// FromPatch bounds a patch by its control net; the convex-hull property of
// the Bernstein basis keeps the whole surface inside that box.
func FromPatch(patch *mrep.BezierPatch) BoundingBox {
	var box BoundingBox
	for _, row := range patch.ControlPoints() {
		box.AddRange(row)
	}

	return box
}

// Determines if a point is contained in the bounding box inflated by tol on
// every side
//
// **params**
// + the point
// + the tolerance
//
// **returns**
// + true if the point lies inside, otherwise false
func (this *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !this.initialized {
		return false
	}

	for i, val := range point[:] {
		if val < this.Min[i]-tol || val > this.Max[i]+tol {
			return false
		}
	}

	return true
}
