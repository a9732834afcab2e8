package intersect

import "github.com/alexozer/mrep"

// Hit is a confirmed ray-surface intersection.
type Hit struct {
	// Dist is the ray parameter of the hit point (the distance for a unit
	// direction).
	Dist float64

	// PatchIndex identifies the hit patch within its scene.
	PatchIndex int

	// UV is the recovered surface parameter preimage of the hit point.
	UV mrep.UV
}
