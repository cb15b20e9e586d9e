package dmc

import "github.com/soypat/geometry/ms3"

// ErrHitZero is returned by the sampler when a grid point lands exactly on
// the surface (value==0), a condition the bisection in findZero cannot
// bracket. The retry driver in Tessellate catches it, perturbs the grid
// origin and starts over; callers that build their own driver should do the
// same.
type ErrHitZero struct {
	// Point is the exact position the object reported zero at.
	Point ms3.Vec
}

func (e *ErrHitZero) Error() string {
	return "dmc: sampled exactly zero at grid point, cannot bracket a sign change"
}
