// Package csg combines dmc.Object values with boolean and transform
// operations, the same set a constructive-solid-geometry modeler offers,
// evaluated per-point instead of compiled to a shader.
package csg

import (
	"errors"

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

func unionBounds(a, b ms3.Box) ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: minf(a.Min.X, b.Min.X), Y: minf(a.Min.Y, b.Min.Y), Z: minf(a.Min.Z, b.Min.Z)},
		Max: ms3.Vec{X: maxf(a.Max.X, b.Max.X), Y: maxf(a.Max.Y, b.Max.Y), Z: maxf(a.Max.Z, b.Max.Z)},
	}
}

func intersectBounds(a, b ms3.Box) ms3.Box {
	return ms3.Box{
		Min: ms3.Vec{X: maxf(a.Min.X, b.Min.X), Y: maxf(a.Min.Y, b.Min.Y), Z: maxf(a.Min.Z, b.Min.Z)},
		Max: ms3.Vec{X: minf(a.Max.X, b.Max.X), Y: minf(a.Max.Y, b.Max.Y), Z: minf(a.Max.Z, b.Max.Z)},
	}
}

// union is the result of Union. Joining is exact: the minimum of all
// members' distances is itself a valid signed distance field.
type union struct {
	joined []dmc.Object
}

// Union joins two or more objects into one. Union aggregates nested Union
// results into its own, to keep the evaluation tree flat.
func Union(objs ...dmc.Object) dmc.Object {
	if len(objs) < 2 {
		panic("csg: need at least 2 arguments to Union")
	}
	var u union
	for _, o := range objs {
		if o == nil {
			panic("csg: nil argument to Union")
		}
		if sub, ok := o.(*union); ok {
			u.joined = append(u.joined, sub.joined...)
		} else {
			u.joined = append(u.joined, o)
		}
	}
	return &u
}

func (u *union) ApproxValue(pos ms3.Vec, res float32) float32 {
	v := u.joined[0].ApproxValue(pos, res)
	for _, o := range u.joined[1:] {
		v = minf(v, o.ApproxValue(pos, res))
	}
	return v
}

func (u *union) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(u, pos) }

func (u *union) Bounds() ms3.Box {
	bb := u.joined[0].Bounds()
	for _, o := range u.joined[1:] {
		bb = unionBounds(bb, o.Bounds())
	}
	return bb
}

type difference struct{ a, b dmc.Object }

// Difference computes a minus b: a with b carved out of it. Not an exact
// distance field away from the cut surface.
func Difference(a, b dmc.Object) dmc.Object {
	if a == nil || b == nil {
		panic("csg: nil argument to Difference")
	}
	return difference{a: a, b: b}
}

func (d difference) ApproxValue(pos ms3.Vec, res float32) float32 {
	return maxf(d.a.ApproxValue(pos, res), -d.b.ApproxValue(pos, res))
}
func (d difference) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(d, pos) }
func (d difference) Bounds() ms3.Box            { return d.a.Bounds() }

type intersection struct{ a, b dmc.Object }

// Intersection computes a ^ b.
func Intersection(a, b dmc.Object) dmc.Object {
	if a == nil || b == nil {
		panic("csg: nil argument to Intersection")
	}
	return intersection{a: a, b: b}
}

func (i intersection) ApproxValue(pos ms3.Vec, res float32) float32 {
	return maxf(i.a.ApproxValue(pos, res), i.b.ApproxValue(pos, res))
}
func (i intersection) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(i, pos) }
func (i intersection) Bounds() ms3.Box            { return intersectBounds(i.a.Bounds(), i.b.Bounds()) }

type xor struct{ a, b dmc.Object }

// Xor is the mutually exclusive boolean operation: points inside exactly
// one of a, b.
func Xor(a, b dmc.Object) dmc.Object {
	if a == nil || b == nil {
		panic("csg: nil argument to Xor")
	}
	return xor{a: a, b: b}
}

func (x xor) ApproxValue(pos ms3.Vec, res float32) float32 {
	d1 := x.a.ApproxValue(pos, res)
	d2 := x.b.ApproxValue(pos, res)
	return maxf(minf(d1, d2), -maxf(d1, d2))
}
func (x xor) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(x, pos) }
func (x xor) Bounds() ms3.Box            { return unionBounds(x.a.Bounds(), x.b.Bounds()) }

// smoothUnion blends a and b with a quadratic smoothing radius k, the
// polynomial smooth-min used throughout procedural SDF modeling.
type smoothUnion struct {
	a, b dmc.Object
	k    float32
}

// SmoothUnion joins a and b into one with a smoothing blend of radius k.
func SmoothUnion(k float32, a, b dmc.Object) dmc.Object {
	if a == nil || b == nil {
		panic("csg: nil argument to SmoothUnion")
	}
	return smoothUnion{a: a, b: b, k: k}
}

func (s smoothUnion) ApproxValue(pos ms3.Vec, res float32) float32 {
	d1 := s.a.ApproxValue(pos, res)
	d2 := s.b.ApproxValue(pos, res)
	h := clamp01(0.5+0.5*(d2-d1)/s.k)
	return mix(d2, d1, h) - s.k*h*(1-h)
}
func (s smoothUnion) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(s, pos) }
func (s smoothUnion) Bounds() ms3.Box            { return unionBounds(s.a.Bounds(), s.b.Bounds()) }

type smoothDifference struct {
	a, b dmc.Object
	k    float32
}

// SmoothDifference performs a minus b with a smoothing parameter k.
func SmoothDifference(k float32, a, b dmc.Object) dmc.Object {
	if a == nil || b == nil {
		panic("csg: nil argument to SmoothDifference")
	}
	return smoothDifference{a: a, b: b, k: k}
}

func (s smoothDifference) ApproxValue(pos ms3.Vec, res float32) float32 {
	d1 := s.a.ApproxValue(pos, res)
	d2 := s.b.ApproxValue(pos, res)
	h := clamp01(0.5 - 0.5*(d2+d1)/s.k)
	return mix(d1, -d2, h) + s.k*h*(1-h)
}
func (s smoothDifference) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(s, pos) }
func (s smoothDifference) Bounds() ms3.Box            { return s.a.Bounds() }

type smoothIntersection struct {
	a, b dmc.Object
	k    float32
}

// SmoothIntersection intersects a and b with a smoothing parameter k.
func SmoothIntersection(k float32, a, b dmc.Object) dmc.Object {
	if a == nil || b == nil {
		panic("csg: nil argument to SmoothIntersection")
	}
	return smoothIntersection{a: a, b: b, k: k}
}

func (s smoothIntersection) ApproxValue(pos ms3.Vec, res float32) float32 {
	d1 := s.a.ApproxValue(pos, res)
	d2 := s.b.ApproxValue(pos, res)
	h := clamp01(0.5 - 0.5*(d2-d1)/s.k)
	return mix(d2, d1, h) + s.k*h*(1-h)
}
func (s smoothIntersection) Normal(pos ms3.Vec) ms3.Vec { return dmc.CentralDiffNormal(s, pos) }
func (s smoothIntersection) Bounds() ms3.Box            { return intersectBounds(s.a.Bounds(), s.b.Bounds()) }

func clamp01(x float32) float32 {
	return maxf(0, minf(1, x))
}

func mix(x, y, a float32) float32 {
	return x + (y-x)*a
}

type translated struct {
	o dmc.Object
	p ms3.Vec
}

// Translate moves o by (dx, dy, dz).
func Translate(o dmc.Object, dx, dy, dz float32) dmc.Object {
	return translated{o: o, p: ms3.Vec{X: dx, Y: dy, Z: dz}}
}

func (t translated) ApproxValue(pos ms3.Vec, res float32) float32 {
	return t.o.ApproxValue(ms3.Sub(pos, t.p), res)
}
func (t translated) Normal(pos ms3.Vec) ms3.Vec { return t.o.Normal(ms3.Sub(pos, t.p)) }
func (t translated) Bounds() ms3.Box {
	bb := t.o.Bounds()
	return ms3.Box{Min: ms3.Add(bb.Min, t.p), Max: ms3.Add(bb.Max, t.p)}
}

type scaled struct {
	o     dmc.Object
	scale float32
}

// Scale scales o by scaleFactor around the origin.
func Scale(o dmc.Object, scaleFactor float32) (dmc.Object, error) {
	if scaleFactor <= 0 {
		return nil, errors.New("csg: scale factor must be positive")
	}
	return scaled{o: o, scale: scaleFactor}, nil
}

func (s scaled) ApproxValue(pos ms3.Vec, res float32) float32 {
	return s.o.ApproxValue(ms3.Scale(1/s.scale, pos), res/s.scale) * s.scale
}
func (s scaled) Normal(pos ms3.Vec) ms3.Vec { return s.o.Normal(ms3.Scale(1/s.scale, pos)) }
func (s scaled) Bounds() ms3.Box {
	bb := s.o.Bounds()
	return ms3.Box{Min: ms3.Scale(s.scale, bb.Min), Max: ms3.Scale(s.scale, bb.Max)}
}

// Offset grows o outward by sdfAdd (or shrinks it, rounding edges, if
// sdfAdd is negative).
func Offset(o dmc.Object, sdfAdd float32) dmc.Object {
	return offset{o: o, off: sdfAdd}
}

type offset struct {
	o   dmc.Object
	off float32
}

func (s offset) ApproxValue(pos ms3.Vec, res float32) float32 {
	return s.o.ApproxValue(pos, res) - s.off
}
func (s offset) Normal(pos ms3.Vec) ms3.Vec { return s.o.Normal(pos) }
func (s offset) Bounds() ms3.Box {
	bb := s.o.Bounds()
	return ms3.Box{
		Min: ms3.Vec{X: bb.Min.X - s.off, Y: bb.Min.Y - s.off, Z: bb.Min.Z - s.off},
		Max: ms3.Vec{X: bb.Max.X + s.off, Y: bb.Max.Y + s.off, Z: bb.Max.Z + s.off},
	}
}
