package intersect

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

type Ray struct {
	Origin, Dir vec3.T
}

// At returns the point at parameter t along the ray.
func (this Ray) At(t float64) vec3.T {
	scaled := this.Dir.Scaled(t)
	return vec3.Add(&this.Origin, &scaled)
}

// BoxIntersector is the ray/axis-aligned-box oracle used to prefilter
// patches. Implementations report the ray's entry distance into the box;
// an origin inside the box has entry distance zero.
type BoxIntersector interface {
	RayBox(origin, dir, min, max *vec3.T) (float64, bool)
}

// SlabIntersector is the pure-computation fallback oracle: the classic
// slab test with no native dependency.
type SlabIntersector struct{}

func (SlabIntersector) RayBox(origin, dir, min, max *vec3.T) (float64, bool) {
	tNear, tFar := math.Inf(-1), math.Inf(1)

	for i := range origin {
		if math.Abs(dir[i]) < 1e-15 {
			// parallel to this slab
			if origin[i] < min[i] || origin[i] > max[i] {
				return 0, false
			}
			continue
		}

		inv := 1 / dir[i]
		t0 := (min[i] - origin[i]) * inv
		t1 := (max[i] - origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		if t0 > tNear {
			tNear = t0
		}
		if t1 < tFar {
			tFar = t1
		}
		if tNear > tFar {
			return 0, false
		}
	}

	if tFar < 0 {
		return 0, false
	}
	if tNear < 0 {
		return 0, true
	}

	return tNear, true
}
