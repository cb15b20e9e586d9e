// Package qef solves the quadratic error function that places a dual
// contouring vertex from a set of tangent planes, by normal-equation least
// squares (AtA x = Atb), always regularized toward the planes' anchor
// centroid, and falling back to that centroid when near-singular.
package qef

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// regularization lambda, matching DualContourLeastSquares.
const lambda = 3e-3

// singularDet below this magnitude, AtA is treated as singular.
const singularDet = 1e-5

// Plane is a tangent-plane sample: a point on the surface and its normal.
type Plane struct {
	P, N ms3.Vec
}

// Qef accumulates normal-equation contributions from a set of tangent
// planes. New(nil) returns an empty accumulator; the zero value is not one,
// since its Error of 0 already reads as solved. A Qef may be Merge()d with
// others any number of times, but Solve()d only once.
type Qef struct {
	AtA      ms3.Mat3
	Atb      ms3.Vec
	biasSum  ms3.Vec
	c        float32
	count    int
	Solution ms3.Vec
	// Error is NaN until Solve is called, marking the solve-once invariant.
	Error float32
}

// New builds a Qef accumulator from a set of tangent planes.
func New(planes []Plane) Qef {
	q := Qef{Error: float32(math.NaN())}
	for _, pl := range planes {
		n := ms3.Unit(pl.N)
		d := ms3.Dot(n, pl.P)
		q.AtA = ms3.AddMat3(q.AtA, ms3.Prod(n, n))
		q.Atb = ms3.Add(q.Atb, ms3.Scale(d, n))
		q.c += d * d
		q.biasSum = ms3.Add(q.biasSum, pl.P)
	}
	q.count = len(planes)
	return q
}

// Merge folds another Qef's accumulated contributions into q. Both Qefs must
// be unsolved.
func (q *Qef) Merge(o Qef) {
	q.AtA = ms3.AddMat3(q.AtA, o.AtA)
	q.Atb = ms3.Add(q.Atb, o.Atb)
	q.biasSum = ms3.Add(q.biasSum, o.biasSum)
	q.c += o.c
	q.count += o.count
}

// Bias returns the mean anchor point of every tangent plane folded into q,
// used as the regularization target and as the clamp-fallback position.
func (q Qef) Bias() ms3.Vec {
	if q.count == 0 {
		return ms3.Vec{}
	}
	return ms3.Scale(1/float32(q.count), q.biasSum)
}

// Count returns the number of tangent planes folded into q.
func (q Qef) Count() int { return q.count }

// Solve computes q.Solution and q.Error from the accumulated normal
// equations, regularizing toward the bias centroid. Panics if q has no
// tangent planes or has already been solved.
func (q *Qef) Solve() {
	if q.count == 0 {
		panic("qef: solve on empty accumulator")
	}
	if !math32.IsNaN(q.Error) {
		panic("qef: solved twice")
	}
	bias := q.Bias()
	AtA := ms3.AddMat3(q.AtA, ms3.ScaleMat3(ms3.IdentityMat3(), lambda))
	Atb := ms3.Add(q.Atb, ms3.Scale(lambda, bias))

	det := AtA.Determinant()
	var x ms3.Vec
	if math32.Abs(det) < singularDet {
		x = bias
	} else {
		x = ms3.MulMatVec(AtA.Inverse(), Atb)
	}
	q.Solution = x
	q.Error = ms3.Dot(x, ms3.MulMatVec(q.AtA, x)) - 2*ms3.Dot(q.Atb, x) + q.c
}
