package intersect

import (
	"testing"

	"github.com/alexozer/mrep"
	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

func planePatch(t *testing.T) *mrep.BezierPatch {
	t.Helper()

	patch, err := mrep.NewBezierPatch([][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}},
	})
	require.NoError(t, err)

	return patch
}

func saddlePatch(t *testing.T) *mrep.BezierPatch {
	t.Helper()

	patch, err := mrep.NewBezierPatch([][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 1}},
	})
	require.NoError(t, err)

	return patch
}

func TestCandidatesPlaneCrossing(t *testing.T) {
	rep, err := mrep.Implicitize(planePatch(t), nil, nil)
	require.NoError(t, err)

	ray := Ray{vec3.T{0.5, 0.5, 5}, vec3.T{0, 0, -1}}

	ts := Candidates(rep, ray, nil)
	require.Len(t, ts, 1)
	require.InDelta(t, 5, ts[0], 1e-9)
}

func TestCandidatesInPlaneRay(t *testing.T) {
	rep, err := mrep.Implicitize(planePatch(t), nil, nil)
	require.NoError(t, err)

	// the ray lies inside the implicit plane; the pencil is singular for
	// every parameter value and must be reported as carrying no candidates
	ray := Ray{vec3.T{0.5, 0.5, 0}, vec3.T{1, 0, 0}}
	require.Empty(t, Candidates(rep, ray, nil))
}

func TestCandidatesDropsNegative(t *testing.T) {
	rep, err := mrep.Implicitize(planePatch(t), nil, nil)
	require.NoError(t, err)

	// surface behind the origin
	ray := Ray{vec3.T{0.5, 0.5, -5}, vec3.T{0, 0, -1}}
	require.Empty(t, Candidates(rep, ray, nil))
}
