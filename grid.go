package dmc

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"

	"github.com/polyhedra/dmc/qef"
)

// Plane is a tangent-plane sample taken at a surface crossing: a point on
// the surface and the object's normal there.
type Plane = qef.Plane

// ValueGrid maps sampled grid points to the object's signed distance there.
// Only points within a conservative Lipschitz envelope of a sign change are
// populated — see sampleValueGrid.
type ValueGrid map[Index]float32

// EdgeGrid maps canonical (A/B/C direction) edge indices to the tangent
// plane found along that edge, for edges that cross the surface.
type EdgeGrid map[EdgeIndex]Plane

// sampleValueGrid recursively subdivides a cube of grid-unit side size,
// descending into a sub-cube only when the 1-Lipschitz bound on the
// object's value admits a sign change within it. idx is the index of the
// cube's own origin corner; pos is that corner's position; val is its
// already-known value (sampleValueGrid never re-queries the corner the
// caller already has).
func (t *Tessellator) sampleValueGrid(idx Index, pos ms3.Vec, size int, val float32) error {
	half := size / 2
	var farCorner ms3.Vec
	for axis := 0; axis < 3; axis++ {
		farCorner = withComponent(farCorner, axis, component(pos, axis)+float32(half)*t.res)
	}
	diag := float32(half) * t.res * sqrt3

	midx := idx
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				mpos := ms3.Vec{
					X: pickComponent(pos, farCorner, x, 0),
					Y: pickComponent(pos, farCorner, y, 1),
					Z: pickComponent(pos, farCorner, z, 2),
				}
				var value float32
				if midx == idx {
					value = val
				} else {
					value = t.object.ApproxValue(mpos, t.res)
				}
				if value == 0 {
					return &ErrHitZero{Point: mpos}
				}
				if half > 1 && math32.Abs(value) <= diag {
					if err := t.sampleValueGrid(midx, mpos, half, value); err != nil {
						return err
					}
				} else {
					t.valueGrid[midx] = value
				}
				midx[0] += half
			}
			midx[0] -= 2 * half
			midx[1] += half
		}
		midx[1] -= 2 * half
		midx[2] += half
	}
	return nil
}

// pickComponent selects near's axis component when bit==0, far's when bit==1.
func pickComponent(near, far ms3.Vec, bit, axis int) float32 {
	if bit == 0 {
		return component(near, axis)
	}
	return component(far, axis)
}

// buildEdgeGrid walks every sampled grid point and, for each of the three
// base-direction edges leaving it, bisects the value along that edge to a
// tangent plane when the two endpoints differ in sign.
func (t *Tessellator) buildEdgeGrid() {
	for idx, val := range t.valueGrid {
		pos := t.gridPos(idx)
		for _, edge := range [3]Edge{EdgeA, EdgeB, EdgeC} {
			axis := edge.Dir()
			adjIdx := idx
			adjIdx[axis]++
			adjVal, ok := t.valueGrid[adjIdx]
			if !ok {
				continue
			}
			adjPos := withComponent(pos, axis, component(pos, axis)+t.res)
			if plane, ok := findZero(t.object, t.res, pos, val, adjPos, adjVal); ok {
				t.edgeGrid[EdgeIndex{Edge: edge, Index: idx}] = plane
			}
		}
	}
}

func (t *Tessellator) gridPos(idx Index) ms3.Vec {
	return ms3.Vec{
		X: t.origin.X + float32(idx[0])*t.res,
		Y: t.origin.Y + float32(idx[1])*t.res,
		Z: t.origin.Z + float32(idx[2])*t.res,
	}
}

// findZero locates the surface crossing between a (value av) and b (value
// bv), which must differ in sign, by recursive bisection along the segment
// a-b. It terminates once the remaining bracket is provably within
// PRECISION*res of the crossing, using the Lipschitz bound on the object's
// value to avoid needing an exact root find.
func findZero(obj Object, res float32, a ms3.Vec, av float32, b ms3.Vec, bv float32) (Plane, bool) {
	if signF(av) == signF(bv) {
		return Plane{}, false
	}
	diff := ms3.Sub(a, b)
	distance := math32.Abs(minComponent(diff))
	distance = math32.Max(distance, maxComponent(diff))
	distance = math32.Min(distance, math32.Abs(av))
	distance = math32.Min(distance, math32.Abs(bv))

	if distance < PRECISION*res {
		p := a
		if math32.Abs(bv) < math32.Abs(av) {
			p = b
		}
		return Plane{P: p, N: obj.Normal(p)}, true
	}

	factor := math32.Abs(av / (bv - av))
	n := ms3.Add(a, ms3.Scale(factor, ms3.Sub(b, a)))
	nv := obj.ApproxValue(n, res)
	if signF(av) != signF(nv) {
		return findZero(obj, res, a, av, n, nv)
	}
	return findZero(obj, res, n, nv, b, bv)
}

func minComponent(v ms3.Vec) float32 {
	m := v.X
	if v.Y < m {
		m = v.Y
	}
	if v.Z < m {
		m = v.Z
	}
	return m
}

func maxComponent(v ms3.Vec) float32 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}
