package mrep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ungerik/go3d/float64/vec3"
)

// flatSquare is the unit square in the z=0 plane, parameterized as (u, v, 0).
func flatSquare(t *testing.T) *BezierPatch {
	t.Helper()

	patch, err := NewBezierPatch([][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}},
	})
	require.NoError(t, err)

	return patch
}

// saddle parameterizes (u, v, u*v), whose implicit surface is z = x*y.
func saddle(t *testing.T) *BezierPatch {
	t.Helper()

	patch, err := NewBezierPatch([][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 1}},
	})
	require.NoError(t, err)

	return patch
}

// elevatedSaddle is the same (u, v, u*v) surface carried on a degree-(2,2)
// control net.
func elevatedSaddle(t *testing.T) *BezierPatch {
	t.Helper()

	pts := make([][]vec3.T, 3)
	for i := range pts {
		pts[i] = make([]vec3.T, 3)
		for j := range pts[i] {
			pts[i][j] = vec3.T{
				float64(i) / 2,
				float64(j) / 2,
				float64(i*j) / 4,
			}
		}
	}

	patch, err := NewBezierPatch(pts)
	require.NoError(t, err)

	return patch
}

func TestNewBezierPatchValidation(t *testing.T) {
	_, err := NewBezierPatch(nil)
	require.Error(t, err)

	_, err = NewBezierPatch([][]vec3.T{{}})
	require.Error(t, err)

	_, err = NewBezierPatch([][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}},
	})
	require.Error(t, err)

	_, err = NewBezierPatch([][]vec3.T{
		{{0, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, math.NaN()}},
	})
	require.Error(t, err)
}

func TestPatchDegrees(t *testing.T) {
	patch := elevatedSaddle(t)
	require.Equal(t, 2, patch.DegreeU())
	require.Equal(t, 2, patch.DegreeV())
}

func TestPatchPoint(t *testing.T) {
	patch := saddle(t)

	pt := patch.Point(UV{0.3, 0.7})
	require.InDelta(t, 0.3, pt[0], 1e-12)
	require.InDelta(t, 0.7, pt[1], 1e-12)
	require.InDelta(t, 0.21, pt[2], 1e-12)

	// the elevated net carries the identical surface
	elevated := elevatedSaddle(t)
	for _, uv := range []UV{{0, 0}, {0.25, 0.8}, {1, 1}} {
		a, b := patch.Point(uv), elevated.Point(uv)
		for i := range a {
			require.InDelta(t, a[i], b[i], 1e-12)
		}
	}
}

func TestPatchNormalFlat(t *testing.T) {
	patch := flatSquare(t)

	n := patch.Normal(UV{0.4, 0.6})
	require.InDelta(t, 0, n[0], 1e-12)
	require.InDelta(t, 0, n[1], 1e-12)
	require.InDelta(t, 1, math.Abs(n[2]), 1e-12)
}

func TestPatchTransposed(t *testing.T) {
	patch := saddle(t)
	flipped := patch.Transposed()

	for _, uv := range []UV{{0.2, 0.9}, {0.5, 0.5}, {1, 0}} {
		a := patch.Point(uv)
		b := flipped.Point(UV{uv[1], uv[0]})
		for i := range a {
			require.InDelta(t, a[i], b[i], 1e-12)
		}
	}
}

func TestFourPoint(t *testing.T) {
	p1 := vec3.T{0, 0, 0}
	p2 := vec3.T{1, 0, 0}
	p3 := vec3.T{1, 1, 1}
	p4 := vec3.T{0, 1, 0}

	patch, err := FourPoint(&p1, &p2, &p3, &p4, 1)
	require.NoError(t, err)

	corners := []struct {
		uv   UV
		want vec3.T
	}{
		{UV{0, 0}, p1},
		{UV{1, 0}, p2},
		{UV{1, 1}, p3},
		{UV{0, 1}, p4},
	}
	for _, c := range corners {
		pt := patch.Point(c.uv)
		for i := range pt {
			require.InDelta(t, c.want[i], pt[i], 1e-12)
		}
	}
}

func TestSampleGrid(t *testing.T) {
	patch := saddle(t)

	pts := patch.SampleGrid(4)
	require.Len(t, pts, 16)

	first, last := patch.Point(UV{0, 0}), patch.Point(UV{1, 1})
	for i := range first {
		require.InDelta(t, first[i], pts[0][i], 1e-12)
		require.InDelta(t, last[i], pts[len(pts)-1][i], 1e-12)
	}
}
