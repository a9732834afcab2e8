package mrep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const teapotLid = `1
1 1
0.0 0.0 0.0
0.0 1.0 0.0
1.0 0.0 0.0
1.0 1.0 0.5
`

func TestParseBPT(t *testing.T) {
	patches, err := ParseBPT(strings.NewReader(teapotLid))
	require.NoError(t, err)
	require.Len(t, patches, 1)

	patch := patches[0]
	require.Equal(t, 1, patch.DegreeU())
	require.Equal(t, 1, patch.DegreeV())

	pts := patch.ControlPoints()
	require.InDelta(t, 1.0, pts[1][0][0], 1e-15)
	require.InDelta(t, 0.5, pts[1][1][2], 1e-15)
}

func TestParseBPTTwoPatches(t *testing.T) {
	const src = `2

1 1
0 0 0
0 1 0
1 0 0
1 1 0

1 1
0 0 1
0 1 1
1 0 1
1 1 1
`

	patches, err := ParseBPT(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, patches, 2)
	require.InDelta(t, 1, patches[1].ControlPoints()[0][0][2], 1e-15)
}

func TestParseBPTErrors(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"bad count":         "x\n",
		"negative count":    "-1\n",
		"missing degrees":   "1\n",
		"bad degrees":       "1\n1\n",
		"negative degrees":  "1\n-1 1\n",
		"truncated points":  "1\n1 1\n0 0 0\n0 1 0\n",
		"bad coordinate":    "1\n1 1\n0 0 zero\n0 1 0\n1 0 0\n1 1 0\n",
		"nonfinite":         "1\n1 1\n0 0 nan\n0 1 0\n1 0 0\n1 1 0\n",
		"wrong field count": "1\n1 1\n0 0\n0 1 0\n1 0 0\n1 1 0\n",
	}

	for name, src := range cases {
		_, err := ParseBPT(strings.NewReader(src))
		require.Error(t, err, name)
	}
}
