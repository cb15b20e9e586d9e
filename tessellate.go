package dmc

import (
	"errors"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// Tessellator runs the Dual Marching Cubes pipeline against one Object. It
// holds the working grids and mesh buffers, reset at the start of every
// Tessellate call and between retries, so a single instance can be run
// repeatedly against its one object and configuration.
type Tessellator struct {
	object Object
	cfg    Config
	res    float32
	origin ms3.Vec
	dim    [3]int
	rng    *rand.Rand

	valueGrid ValueGrid
	edgeGrid  EdgeGrid
	vertexMap map[VertexIndex]int
	mesh      Mesh
	stack     []Layer

	qefs, clamps int
	qefsSolved   int
	retries      int

	clampWarned bool
}

// NewTessellator builds a Tessellator over obj with the given configuration.
// The working grid's origin and dimensions are derived from obj.Bounds(),
// dilated by 1+1.1*res to give the sampler margin past the object's own
// bounding box.
func NewTessellator(obj Object, cfg Config) (*Tessellator, error) {
	if err := validateConfig(obj, cfg); err != nil {
		return nil, err
	}
	res := cfg.Resolution
	factor := 1 + 1.1*res
	bb := obj.Bounds()
	center := bb.Center()
	size := ms3.Scale(factor, bb.Size())
	dilated := ms3.Box{
		Min: ms3.Sub(center, ms3.Scale(0.5, size)),
		Max: ms3.Add(center, ms3.Scale(0.5, size)),
	}
	dsize := dilated.Size()

	t := &Tessellator{
		object: obj,
		cfg:    cfg,
		res:    res,
		origin: dilated.Min,
		dim: [3]int{
			int(math32.Ceil(dsize.X / res)),
			int(math32.Ceil(dsize.Y / res)),
			int(math32.Ceil(dsize.Z / res)),
		},
		rng: newRNG(cfg.Seed),
	}
	t.resetBuffers()
	return t, nil
}

func (t *Tessellator) resetBuffers() {
	t.valueGrid = ValueGrid{}
	t.edgeGrid = EdgeGrid{}
	t.vertexMap = map[VertexIndex]int{}
	t.mesh = Mesh{}
	t.qefs, t.clamps = 0, 0
}

func (t *Tessellator) errorThreshold() float32 {
	if t.cfg.ErrorThreshold > 0 {
		return t.cfg.ErrorThreshold
	}
	return t.res
}

// Tessellate runs the pipeline to completion, retrying with a perturbed
// grid origin whenever the sampler reports ErrHitZero. There is no
// retry limit: a well-formed object eventually lands off every sampled
// grid point for some perturbation.
func (t *Tessellator) Tessellate() (Mesh, Stats, error) {
	t.resetBuffers()
	t.retries = 0
	for {
		err := t.tryTessellate()
		if err == nil {
			break
		}
		var hz *ErrHitZero
		if !errors.As(err, &hz) {
			return Mesh{}, Stats{}, err
		}
		pad := t.res / (10 + t.rng.Float32())
		logf(&t.cfg, "hit exact zero at %+v, shifting origin.X by %v and retrying", hz.Point, pad)
		t.origin.X -= pad
		t.retries++
		t.resetBuffers()
	}
	return t.mesh, t.stats(), nil
}

func (t *Tessellator) tryTessellate() error {
	maxdim := maxInt(t.dim[0], t.dim[1], t.dim[2])
	size := pow2roundup(maxdim)
	originValue := t.object.ApproxValue(t.origin, t.res)
	if err := t.sampleValueGrid(Index{}, t.origin, size, originValue); err != nil {
		return err
	}
	t.buildEdgeGrid()

	leaf := t.buildLeafLayer()
	stack := buildVertexStack(leaf)
	t.qefsSolved = solveQefs(stack, t.errorThreshold())
	t.stack = stack

	for canon := range t.edgeGrid {
		t.emitQuad(canon)
	}
	return nil
}

func (t *Tessellator) stats() Stats {
	return Stats{
		Retries:      t.retries,
		Layers:       len(t.stack),
		LeafVertices: leafVertexCount(t.stack),
		QefsSolved:   t.qefsSolved,
		Qefs:         t.qefs,
		Clamps:       t.clamps,
	}
}

func leafVertexCount(stack []Layer) int {
	if len(stack) == 0 {
		return 0
	}
	return len(stack[0])
}

// Tessellate is a convenience wrapper that builds a Tessellator and runs it
// once. Use NewTessellator directly to tessellate the same object and
// Config more than once.
func Tessellate(obj Object, cfg Config) (Mesh, Stats, error) {
	t, err := NewTessellator(obj, cfg)
	if err != nil {
		return Mesh{}, Stats{}, err
	}
	return t.Tessellate()
}
