package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/alexozer/mrep"
	"github.com/alexozer/mrep/intersect"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	origin  = flag.String("origin", "0,0,10", "ray origin as x,y,z")
	dir     = flag.String("dir", "0,0,-1", "ray direction as x,y,z")
	samples = flag.Int("sample", 0, "dump an n x n point cloud per patch instead of tracing")
)

func main() {
	log.SetFlags(0)
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatal("usage: mreptrace [flags] scene.bpt")
	}

	patches, err := mrep.ReadBPTFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	if *samples > 0 {
		dumpPointCloud(patches, *samples)
		return
	}

	o, err := parseVec(*origin)
	if err != nil {
		log.Fatalf("bad -origin: %v", err)
	}
	d, err := parseVec(*dir)
	if err != nil {
		log.Fatalf("bad -dir: %v", err)
	}

	scene, err := intersect.NewScene(patches, nil)
	if err != nil {
		log.Fatal(err)
	}

	hit, ok := scene.Trace(o, d)
	if !ok {
		fmt.Println("no hit")
		return
	}

	fmt.Printf("hit patch %d at t=%.9g uv=(%.6f, %.6f)\n",
		hit.PatchIndex, hit.Dist, hit.UV[0], hit.UV[1])
}

func parseVec(s string) (vec3.T, error) {
	var v vec3.T
	if _, err := fmt.Sscanf(s, "%f,%f,%f", &v[0], &v[1], &v[2]); err != nil {
		return vec3.T{}, err
	}

	return v, nil
}

func dumpPointCloud(patches []*mrep.BezierPatch, n int) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for _, patch := range patches {
		for _, pt := range patch.SampleGrid(n) {
			fmt.Fprintf(w, "%g %g %g\n", pt[0], pt[1], pt[2])
		}
	}
}
