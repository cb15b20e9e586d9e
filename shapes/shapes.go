// Package shapes provides a small library of analytic dmc.Object
// implementations — sphere, box, cylinder, torus and box-frame — for
// exercising Tessellate without requiring a caller to hand-write a
// signed distance field.
package shapes

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/polyhedra/dmc"
	"github.com/soypat/geometry/ms3"
)

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func maxElem(v, w ms3.Vec) ms3.Vec {
	return ms3.Vec{X: maxf(v.X, w.X), Y: maxf(v.Y, w.Y), Z: maxf(v.Z, w.Z)}
}

func absElem(v ms3.Vec) ms3.Vec {
	return ms3.Vec{X: math32.Abs(v.X), Y: math32.Abs(v.Y), Z: math32.Abs(v.Z)}
}

func addScalar(s float32, v ms3.Vec) ms3.Vec {
	return ms3.Vec{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

func centeredBox(dims ms3.Vec) ms3.Box {
	half := ms3.Scale(0.5, dims)
	return ms3.Box{Min: ms3.Vec{X: -half.X, Y: -half.Y, Z: -half.Z}, Max: half}
}

// Sphere is a sphere of radius R centered at the origin.
type Sphere struct {
	r float32
}

// NewSphere creates a sphere centered at the origin of radius r.
func NewSphere(r float32) (Sphere, error) {
	if r <= 0 {
		return Sphere{}, errors.New("shapes: zero or negative sphere radius")
	}
	return Sphere{r: r}, nil
}

func (s Sphere) ApproxValue(pos ms3.Vec, res float32) float32 { return ms3.Norm(pos) - s.r }
func (s Sphere) Normal(pos ms3.Vec) ms3.Vec                    { return ms3.Unit(pos) }
func (s Sphere) Bounds() ms3.Box {
	return ms3.Box{Min: ms3.Vec{X: -s.r, Y: -s.r, Z: -s.r}, Max: ms3.Vec{X: s.r, Y: s.r, Z: s.r}}
}

// Box is an axis-aligned box centered at the origin with full dimensions
// x, y, z and a rounding radius applied to its edges.
type Box struct {
	dims  ms3.Vec
	round float32
}

// NewBox creates a box centered at the origin with x,y,z dimensions and a
// rounding parameter to round edges.
func NewBox(x, y, z, round float32) (Box, error) {
	if round < 0 || round > x/2 || round > y/2 || round > z/2 {
		return Box{}, errors.New("shapes: invalid box rounding value")
	}
	if x <= 0 || y <= 0 || z <= 0 {
		return Box{}, errors.New("shapes: zero or negative box dimension")
	}
	return Box{dims: ms3.Vec{X: x, Y: y, Z: z}, round: round}, nil
}

func (b Box) ApproxValue(pos ms3.Vec, res float32) float32 {
	d := ms3.Scale(0.5, b.dims)
	q := ms3.Sub(absElem(pos), d)
	q = addScalar(b.round, q)
	outer := ms3.Norm(maxElem(q, ms3.Vec{}))
	inner := minf(maxf(q.X, maxf(q.Y, q.Z)), 0)
	return outer + inner - b.round
}

func (b Box) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(b, pos) }
func (b Box) Bounds() ms3.Box            { return centeredBox(b.dims) }

// Cylinder is a cylinder centered at the origin with its axis along z.
type Cylinder struct {
	r, h, round float32
}

// NewCylinder creates a cylinder centered at the origin with given radius
// and height. The cylinder's axis points in the z direction.
func NewCylinder(r, h, rounding float32) (Cylinder, error) {
	if rounding < 0 || rounding >= r || rounding >= h/2 {
		return Cylinder{}, errors.New("shapes: invalid cylinder rounding")
	}
	if r <= 0 || h <= 0 {
		return Cylinder{}, errors.New("shapes: bad cylinder dimension")
	}
	return Cylinder{r: r, h: h, round: rounding}, nil
}

func (c Cylinder) args() (r, h, round float32) {
	return c.r, (c.h - 2*c.round) / 2, c.round
}

func (c Cylinder) ApproxValue(pos ms3.Vec, res float32) float32 {
	r, h, round := c.args()
	p := ms3.Vec{X: pos.X, Y: pos.Z, Z: pos.Y}
	dx := math32.Hypot(p.X, p.Z) - r + round
	dy := math32.Abs(p.Y) - h
	return minf(0, maxf(dx, dy)) + math32.Hypot(maxf(0, dx), maxf(0, dy)) - round
}

func (c Cylinder) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(c, pos) }
func (c Cylinder) Bounds() ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: -c.r, Y: -c.r, Z: -c.h / 2},
		Max: ms3.Vec{X: c.r, Y: c.r, Z: c.h / 2},
	}
}

// Torus is a torus centered at the origin with its axis along z.
type Torus struct {
	rLesser, rGreater float32
}

// NewTorus creates a torus given two radii: the radius across the hole
// (greaterRadius) and the "solid" tube radius (lesserRadius).
func NewTorus(greaterRadius, lesserRadius float32) (Torus, error) {
	if greaterRadius < 2*lesserRadius {
		return Torus{}, errors.New("shapes: too large torus lesser radius")
	}
	if greaterRadius <= 0 || lesserRadius <= 0 {
		return Torus{}, errors.New("shapes: invalid torus parameter")
	}
	return Torus{rLesser: lesserRadius, rGreater: greaterRadius}, nil
}

func (t Torus) ApproxValue(pos ms3.Vec, res float32) float32 {
	p := ms3.Vec{X: pos.X, Y: pos.Z, Z: pos.Y}
	qx := math32.Hypot(p.X, p.Z) - t.rGreater
	qy := p.Y
	return math32.Hypot(qx, qy) - t.rLesser
}

func (t Torus) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(t, pos) }
func (t Torus) Bounds() ms3.Box {
	R := t.rLesser + t.rGreater
	return ms3.Box{
		Min: ms3.Vec{X: -R, Y: -R, Z: -t.rLesser},
		Max: ms3.Vec{X: R, Y: R, Z: t.rLesser},
	}
}

// BoxFrame is a hollow box frame: a box with the frame composed of square
// beams of thickness e.
type BoxFrame struct {
	dims ms3.Vec
	e    float32
}

// NewBoxFrame creates a framed box with the frame being composed of square
// beams of thickness e.
func NewBoxFrame(dimX, dimY, dimZ, e float32) (BoxFrame, error) {
	e /= 2
	if dimX <= 0 || dimY <= 0 || dimZ <= 0 || e <= 0 {
		return BoxFrame{}, errors.New("shapes: negative or zero BoxFrame dimension")
	}
	d := ms3.Vec{X: dimX, Y: dimY, Z: dimZ}
	if 2*e > minf(d.X, minf(d.Y, d.Z)) {
		return BoxFrame{}, errors.New("shapes: BoxFrame edge thickness too large")
	}
	return BoxFrame{dims: d, e: e}, nil
}

func (bf BoxFrame) args() (e float32, b ms3.Vec) {
	dd := ms3.Scale(0.5, bf.dims)
	dd = addScalar(-2*bf.e, dd)
	return bf.e, dd
}

func (bf BoxFrame) ApproxValue(pos ms3.Vec, res float32) float32 {
	e, b := bf.args()
	p := ms3.Sub(absElem(pos), b)
	q := addScalar(-e, absElem(addScalar(e, p)))
	var z3 ms3.Vec

	s1 := minf(0, maxf(p.X, maxf(q.Y, q.Z)))
	n1 := ms3.Norm(maxElem(ms3.Vec{X: p.X, Y: q.Y, Z: q.Z}, z3)) + s1

	s2 := minf(0, maxf(q.X, maxf(p.Y, q.Z)))
	n2 := ms3.Norm(maxElem(ms3.Vec{X: q.X, Y: p.Y, Z: q.Z}, z3)) + s2

	s3 := minf(0, maxf(q.X, maxf(q.Y, p.Z)))
	n3 := ms3.Norm(maxElem(ms3.Vec{X: q.X, Y: q.Y, Z: p.Z}, z3)) + s3

	return minf(n1, minf(n2, n3))
}

func (bf BoxFrame) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(bf, pos) }
func (bf BoxFrame) Bounds() ms3.Box            { return centeredBox(bf.dims) }
