package intersect

import (
	"sort"

	"github.com/ungerik/go3d/float64/vec3"
)

// boxTree is a bounding volume hierarchy over the scene's patch boxes.
// Interior nodes split their patches across the longest axis of the combined
// box; leaves hold at most two patch indices.
type boxTree struct {
	box      BoundingBox
	children [2]*boxTree
	patches  []int
}

func newBoxTree(boxes []BoundingBox, indices []int) *boxTree {
	if len(indices) == 0 {
		return nil
	}

	this := new(boxTree)
	for _, i := range indices {
		this.box.Add(&boxes[i].Min).Add(&boxes[i].Max)
	}

	if len(indices) <= 2 {
		this.patches = indices
		return this
	}

	axis := longestAxis(&this.box)
	sorted := append([]int(nil), indices...)
	sort.Slice(sorted, func(a, b int) bool {
		return boxCenter(&boxes[sorted[a]], axis) < boxCenter(&boxes[sorted[b]], axis)
	})

	halfLen := len(sorted) / 2
	this.children = [2]*boxTree{
		newBoxTree(boxes, sorted[:halfLen]),
		newBoxTree(boxes, sorted[halfLen:]),
	}

	return this
}

func longestAxis(box *BoundingBox) int {
	axis := 0
	longest := box.Max[0] - box.Min[0]

	for i := 1; i < 3; i++ {
		if size := box.Max[i] - box.Min[i]; size > longest {
			axis, longest = i, size
		}
	}

	return axis
}

func boxCenter(box *BoundingBox, axis int) float64 {
	return (box.Min[axis] + box.Max[axis]) / 2
}

// rayTarget is a patch whose box the ray enters, tagged with the entry
// distance that orders the candidate visits.
type rayTarget struct {
	boxDist float64
	index   int
}

// collect gathers every patch whose own box passes the ray-box oracle,
// pruning whole subtrees whose combined box the ray misses.
func (this *boxTree) collect(oracle BoxIntersector, origin, dir *vec3.T, boxes []BoundingBox, out []rayTarget) []rayTarget {
	if this == nil {
		return out
	}
	if _, ok := oracle.RayBox(origin, dir, &this.box.Min, &this.box.Max); !ok {
		return out
	}

	if this.patches != nil {
		for _, i := range this.patches {
			box := &boxes[i]
			if d, ok := oracle.RayBox(origin, dir, &box.Min, &box.Max); ok {
				out = append(out, rayTarget{d, i})
			}
		}
		return out
	}

	out = this.children[0].collect(oracle, origin, dir, boxes, out)
	return this.children[1].collect(oracle, origin, dir, boxes, out)
}
