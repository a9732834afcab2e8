package mrep

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ungerik/go3d/float64/vec3"
)

// ParseBPT reads the BPT B-rep exchange format: a patch count line, then per
// patch a "n m" degree line followed by (n+1)*(m+1) control point lines of
// three coordinates each, in row-major order. Any malformed count, line, or
// non-finite coordinate is a fatal parse error.
func ParseBPT(r io.Reader) ([]*BezierPatch, error) {
	sc := bufio.NewScanner(r)

	count, err := readInts(sc, 1)
	if err != nil {
		return nil, fmt.Errorf("bpt: patch count: %w", err)
	}
	if count[0] < 0 {
		return nil, fmt.Errorf("bpt: negative patch count %d", count[0])
	}

	patches := make([]*BezierPatch, 0, count[0])
	for p := 0; p < count[0]; p++ {
		degrees, err := readInts(sc, 2)
		if err != nil {
			return nil, fmt.Errorf("bpt: patch %d degrees: %w", p, err)
		}
		n, m := degrees[0], degrees[1]
		if n < 0 || m < 0 {
			return nil, fmt.Errorf("bpt: patch %d: negative degrees %d %d", p, n, m)
		}

		pts := make([][]vec3.T, n+1)
		for i := range pts {
			row := make([]vec3.T, m+1)
			for j := range row {
				coords, err := readFloats(sc, 3)
				if err != nil {
					return nil, fmt.Errorf("bpt: patch %d point (%d,%d): %w", p, i, j, err)
				}
				row[j] = vec3.T{coords[0], coords[1], coords[2]}
			}
			pts[i] = row
		}

		patch, err := NewBezierPatch(pts)
		if err != nil {
			return nil, fmt.Errorf("bpt: patch %d: %w", p, err)
		}
		patches = append(patches, patch)
	}

	return patches, nil
}

// ReadBPTFile parses the BPT file at the given path.
func ReadBPTFile(path string) ([]*BezierPatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseBPT(f)
}

func nextFields(sc *bufio.Scanner, want int) ([]string, error) {
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			return nil, fmt.Errorf("expected %d fields, got %d", want, len(fields))
		}
		return fields, nil
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

func readInts(sc *bufio.Scanner, want int) ([]int, error) {
	fields, err := nextFields(sc, want)
	if err != nil {
		return nil, err
	}

	out := make([]int, want)
	for i, field := range fields {
		if out[i], err = strconv.Atoi(field); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func readFloats(sc *bufio.Scanner, want int) ([]float64, error) {
	fields, err := nextFields(sc, want)
	if err != nil {
		return nil, err
	}

	out := make([]float64, want)
	for i, field := range fields {
		if out[i], err = strconv.ParseFloat(field, 64); err != nil {
			return nil, err
		}
	}

	return out, nil
}
