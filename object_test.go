package dmc

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// sphereObject is a sphere of radius R centered at the origin. ApproxValue
// is exact since the sphere's distance field is already 1-Lipschitz.
type sphereObject struct {
	r float32
}

func (s sphereObject) ApproxValue(pos ms3.Vec, res float32) float32 {
	return ms3.Norm(pos) - s.r
}

func (s sphereObject) Normal(pos ms3.Vec) ms3.Vec {
	return ms3.Unit(pos)
}

func (s sphereObject) Bounds() ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: -s.r, Y: -s.r, Z: -s.r},
		Max: ms3.Vec{X: s.r, Y: s.r, Z: s.r},
	}
}

// boxObject is an axis-aligned box centered at the origin with half-extents
// hx, hy, hz.
type boxObject struct {
	hx, hy, hz float32
}

func (b boxObject) ApproxValue(pos ms3.Vec, res float32) float32 {
	qx := math32.Abs(pos.X) - b.hx
	qy := math32.Abs(pos.Y) - b.hy
	qz := math32.Abs(pos.Z) - b.hz
	outer := ms3.Norm(ms3.Vec{X: math32.Max(qx, 0), Y: math32.Max(qy, 0), Z: math32.Max(qz, 0)})
	inner := math32.Min(math32.Max(qx, math32.Max(qy, qz)), 0)
	return outer + inner
}

func (b boxObject) Normal(pos ms3.Vec) ms3.Vec {
	return CentralDiffNormal(b, pos)
}

func (b boxObject) Bounds() ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: -b.hx, Y: -b.hy, Z: -b.hz},
		Max: ms3.Vec{X: b.hx, Y: b.hy, Z: b.hz},
	}
}

// twoSpheresObject is the union of two disjoint spheres, used to exercise
// multiple connected mesh components from one tessellation.
type twoSpheresObject struct {
	a, b   ms3.Vec
	ra, rb float32
}

func (t twoSpheresObject) ApproxValue(pos ms3.Vec, res float32) float32 {
	da := ms3.Norm(ms3.Sub(pos, t.a)) - t.ra
	db := ms3.Norm(ms3.Sub(pos, t.b)) - t.rb
	return math32.Min(da, db)
}

func (t twoSpheresObject) Normal(pos ms3.Vec) ms3.Vec {
	return CentralDiffNormal(t, pos)
}

func (t twoSpheresObject) Bounds() ms3.Box {
	min := ms3.Vec{
		X: math32.Min(t.a.X-t.ra, t.b.X-t.rb),
		Y: math32.Min(t.a.Y-t.ra, t.b.Y-t.rb),
		Z: math32.Min(t.a.Z-t.ra, t.b.Z-t.rb),
	}
	max := ms3.Vec{
		X: math32.Max(t.a.X+t.ra, t.b.X+t.rb),
		Y: math32.Max(t.a.Y+t.ra, t.b.Y+t.rb),
		Z: math32.Max(t.a.Z+t.ra, t.b.Z+t.rb),
	}
	return ms3.Box{Min: min, Max: max}
}

// constantObject is a field with no surface at all (always positive),
// exercising the empty-mesh case.
type constantObject struct {
	value float32
}

func (c constantObject) ApproxValue(pos ms3.Vec, res float32) float32 { return c.value }
func (c constantObject) Normal(pos ms3.Vec) ms3.Vec                   { return ms3.Vec{Z: 1} }
func (c constantObject) Bounds() ms3.Box {
	return ms3.Box{Min: ms3.Vec{X: -1, Y: -1, Z: -1}, Max: ms3.Vec{X: 1, Y: 1, Z: 1}}
}

// exactZeroObject behaves like a sphere except that its very first
// evaluation (always the sampler's probe of the grid origin) reports an
// exact zero, modeling a grid point landing precisely on the surface so
// the retry driver's origin perturbation is required to make progress.
type exactZeroObject struct {
	sphereObject
	calls *int
}

func (e exactZeroObject) ApproxValue(pos ms3.Vec, res float32) float32 {
	*e.calls++
	if *e.calls == 1 {
		return 0
	}
	return e.sphereObject.ApproxValue(pos, res)
}
