// Package dmc implements Dual Marching Cubes: tessellation of an implicit
// signed-distance object into a triangle mesh via adaptive octree sampling,
// hierarchical QEF vertex placement and dual contouring quad emission.
package dmc

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/soypat/geometry/ms3"
)

const sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558069794

// PRECISION bounds findZero's bisection: once the remaining search interval
// (clamped by the surface values at its endpoints) is smaller than
// PRECISION*res, whichever endpoint has the smaller |value| is accepted as
// the crossing point.
const PRECISION = 0.05

// Object is an implicit signed-distance field: negative inside, positive
// outside, zero on the surface. ApproxValue may be called with res as a
// leeway for approximate/bounded evaluation strategies (e.g. distance
// fields that are only guaranteed accurate within res of the true value);
// callers that have an exact distance field may ignore it.
type Object interface {
	// ApproxValue returns the object's signed distance at pos, accurate to
	// within res (a 1-Lipschitz bound is assumed: |f(p)| is never larger
	// than the true distance to the surface from p).
	ApproxValue(pos ms3.Vec, res float32) float32
	// Normal returns the object's outward surface normal near pos.
	Normal(pos ms3.Vec) ms3.Vec
	// Bounds returns an axis-aligned box the object is fully contained in.
	Bounds() ms3.Box
}

// Config configures a Tessellator. The zero value is not usable: Resolution
// must be set.
type Config struct {
	// Resolution is the grid spacing, in the same units as the object's
	// coordinates. Smaller values produce finer meshes at higher cost.
	Resolution float32
	// Seed seeds the retry driver's perturbation RNG. Zero uses a fixed
	// default seed, making Tessellate's output reproducible.
	Seed int64
	// ErrorThreshold overrides the hierarchical QEF solver's descend
	// threshold. Zero defaults to Resolution.
	ErrorThreshold float32
	// Verbose enables diagnostic logging through the stdlib log package:
	// a line per zero-hit retry and a one-time clamp warning.
	Verbose bool
}

// Mesh is the triangle mesh produced by Tessellate: a vertex list and a
// list of triangles referencing it by index.
type Mesh struct {
	Vertices []ms3.Vec
	Faces    [][3]int
}

// MeshSink receives a finished mesh incrementally. It is an external
// collaborator: this package never writes files or renders anything itself.
type MeshSink interface {
	AddVertices(verts []ms3.Vec) error
	AddFaces(faces [][3]int) error
}

// WriteTo pushes m's vertices then its faces into sink.
func (m Mesh) WriteTo(sink MeshSink) error {
	if err := sink.AddVertices(m.Vertices); err != nil {
		return err
	}
	return sink.AddFaces(m.Faces)
}

// Stats reports counters accumulated during a Tessellate call, for callers
// that want console output or metrics without this package hardwiring
// stdout into the library.
type Stats struct {
	// Retries counts how many times the sampler hit ErrHitZero and the
	// driver restarted with a perturbed origin.
	Retries int
	// Layers is the final octree stack depth, leaf layer included.
	Layers int
	// LeafVertices is the number of clusters in the leaf layer.
	LeafVertices int
	// QefsSolved counts hierarchical QEF solves performed.
	QefsSolved int
	// Qefs counts vertex positions accepted from the positioner's QEF
	// solution; Clamps counts positions that fell outside their cell and
	// were replaced by the tangent planes' centroid.
	Qefs, Clamps int
}

func logf(cfg *Config, format string, args ...any) {
	if cfg == nil || !cfg.Verbose {
		return
	}
	log.Printf("[dmc] "+format, args...)
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}

var errNilObject = errors.New("dmc: nil object")

func validateConfig(obj Object, cfg Config) error {
	if obj == nil {
		return errNilObject
	}
	if cfg.Resolution <= 0 {
		return fmt.Errorf("dmc: resolution must be positive, got %v", cfg.Resolution)
	}
	bb := obj.Bounds()
	size := bb.Size()
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return fmt.Errorf("dmc: degenerate object bounds %+v", bb)
	}
	return nil
}
