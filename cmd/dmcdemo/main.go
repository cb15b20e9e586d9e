// Command dmcdemo tessellates a small constructive-solid-geometry scene
// and writes the resulting mesh out as a binary STL file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/polyhedra/dmc"
	"github.com/polyhedra/dmc/csg"
	"github.com/polyhedra/dmc/shapes"
	"github.com/polyhedra/dmc/stl"
)

const outFile = "dmcdemo.stl"

var (
	resolution = 0.1
	verbose    = false
)

func init() {
	flag.Float64Var(&resolution, "res", resolution, "tessellation grid resolution")
	flag.BoolVar(&verbose, "v", verbose, "enable diagnostic logging")
	flag.Parse()
}

// scene builds a torus with one cylindrical hole drilled through its tube,
// smoothly blended into a central box.
func scene() (dmc.Object, error) {
	torus, err := shapes.NewTorus(3, 1)
	if err != nil {
		return nil, err
	}
	hole, err := shapes.NewCylinder(0.3, 3, 0)
	if err != nil {
		return nil, err
	}
	drilled := csg.Difference(torus, csg.Translate(hole, 3, 0, 0))

	box, err := shapes.NewBox(2, 2, 2, 0.2)
	if err != nil {
		return nil, err
	}
	return csg.SmoothUnion(0.4, drilled, box), nil
}

func main() {
	obj, err := scene()
	if err != nil {
		fmt.Println("error building scene:", err)
		os.Exit(1)
	}

	start := time.Now()
	mesh, stats, err := dmc.Tessellate(obj, dmc.Config{
		Resolution: float32(resolution),
		Verbose:    verbose,
	})
	if err != nil {
		fmt.Println("error tessellating scene:", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fp, err := os.Create(outFile)
	if err != nil {
		fmt.Println("error creating file:", err)
		os.Exit(1)
	}
	defer fp.Close()
	w := bufio.NewWriter(fp)
	sink := stl.NewWriter(w)
	if err := mesh.WriteTo(sink); err != nil {
		fmt.Println("error writing mesh:", err)
		os.Exit(1)
	}
	if _, err := sink.Flush(); err != nil {
		fmt.Println("error flushing STL:", err)
		os.Exit(1)
	}
	w.Flush()

	fmt.Printf("tessellated %d vertices, %d faces in %s (retries=%d, qefs=%d, clamps=%d), wrote %s\n",
		len(mesh.Vertices), len(mesh.Faces), elapsed, stats.Retries, stats.Qefs, stats.Clamps, outFile)
}
