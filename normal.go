package dmc

import "github.com/soypat/geometry/ms3"

// CentralDiffNormal estimates obj's outward normal at pos via a central
// difference of ApproxValue along each axis, for Object implementations
// whose distance field has no convenient closed-form gradient.
func CentralDiffNormal(obj Object, pos ms3.Vec) ms3.Vec {
	const h = 1e-4
	dx := obj.ApproxValue(ms3.Add(pos, ms3.Vec{X: h}), 0) - obj.ApproxValue(ms3.Sub(pos, ms3.Vec{X: h}), 0)
	dy := obj.ApproxValue(ms3.Add(pos, ms3.Vec{Y: h}), 0) - obj.ApproxValue(ms3.Sub(pos, ms3.Vec{Y: h}), 0)
	dz := obj.ApproxValue(ms3.Add(pos, ms3.Vec{Z: h}), 0) - obj.ApproxValue(ms3.Sub(pos, ms3.Vec{Z: h}), 0)
	return ms3.Unit(ms3.Vec{X: dx, Y: dy, Z: dz})
}
