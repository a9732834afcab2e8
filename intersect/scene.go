package intersect

import (
	"fmt"
	"math"
	"sort"

	"github.com/alexozer/mrep"
	"github.com/ungerik/go3d/float64/vec3"
)

// ImplicitPatch pairs a patch's matrix representation with its bounding box.
type ImplicitPatch struct {
	Rep *mrep.MRep
	Box BoundingBox
}

// Scene owns the implicit representations for a set of patches. Building a
// scene implicitizes every patch once; afterwards the scene is read-only
// and safe to share between concurrently traced rays.
type Scene struct {
	Patches []ImplicitPatch

	// Boxes is the ray-box oracle used to prefilter patches. Defaults to
	// the pure slab fallback; swap in a native implementation if one is
	// available.
	Boxes BoxIntersector

	tree  *boxTree
	boxes []BoundingBox
	tol   *mrep.Tolerances
}

// NewScene implicitizes every patch. A patch that cannot be implicitized is
// a setup error, not a silently dropped surface.
func NewScene(patches []*mrep.BezierPatch, tol *mrep.Tolerances) (*Scene, error) {
	tol = tol.OrDefault()
	this := &Scene{
		Patches: make([]ImplicitPatch, 0, len(patches)),
		Boxes:   SlabIntersector{},
		tol:     tol,
	}

	for i, patch := range patches {
		rep, err := mrep.Implicitize(patch, nil, tol)
		if err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}

		this.Patches = append(this.Patches, ImplicitPatch{rep, FromPatch(patch)})
	}

	this.boxes = make([]BoundingBox, len(this.Patches))
	indices := make([]int, len(this.Patches))
	for i := range this.Patches {
		this.boxes[i] = this.Patches[i].Box
		indices[i] = i
	}
	this.tree = newBoxTree(this.boxes, indices)

	return this, nil
}

// Find the nearest valid intersection of a ray with the scene
//
// Patches are prefiltered through the box oracle and visited in ascending
// box-entry order, so once a patch's box entry exceeds the best hit every
// later candidate is provably farther and the scan stops. Each eigenvalue
// candidate is confirmed by bounding-box containment and parameter
// recovery before it can become the best hit.
//
// **params**
// + the ray origin
// + the ray direction
//
// **returns**
// + the nearest hit and true, or false if the ray hits nothing
func (this *Scene) Trace(origin, dir vec3.T) (Hit, bool) {
	ray := Ray{origin, dir}

	targets := this.tree.collect(this.Boxes, &origin, &dir, this.boxes, nil)
	sort.Slice(targets, func(i, j int) bool { return targets[i].boxDist < targets[j].boxDist })

	best := Hit{Dist: math.Inf(1), PatchIndex: -1}

	for _, tgt := range targets {
		if tgt.boxDist > best.Dist {
			break
		}

		patch := &this.Patches[tgt.index]
		for _, t := range Candidates(patch.Rep, ray, this.tol) {
			if t > best.Dist {
				continue
			}

			pt := ray.At(t)
			if !patch.Box.Contains(&pt, this.tol.Box) {
				continue
			}

			uv, ok := mrep.Preimage(patch.Rep, pt, this.tol)
			if !ok {
				continue
			}

			best = Hit{t, tgt.index, uv}
		}
	}

	return best, best.PatchIndex >= 0
}
