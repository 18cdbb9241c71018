package curve

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/vec"

	"github.com/wesen/curvelab/pkg/raster"
)

// Degree is the fixed degree of the B-spline evaluator.
const Degree = 3

// Knots returns the uniform knot vector 0, 1, ..., n+Degree for n
// control points.
func Knots(n int) []float64 {
	k := make([]float64, n+Degree+1)
	for i := range k {
		k[i] = float64(i)
	}
	return k
}

// Basis evaluates the B-spline basis function N(i,k) at t by the
// Cox–de Boor recursion. Degree-0 functions are indicators of the
// half-open knot span [knots[i], knots[i+1]); a term whose knot-span
// denominator is zero contributes nothing.
func Basis(i, k int, knots []float64, t float64) float64 {
	b := basis{knots: knots, t: t, memo: map[[2]int]float64{}}
	return b.eval(i, k)
}

// basis memoizes N(i,k) for a single parameter value.
type basis struct {
	knots []float64
	t     float64
	memo  map[[2]int]float64
}

func (b *basis) eval(i, k int) float64 {
	kn, t := b.knots, b.t
	if k == 0 {
		if kn[i] <= t && t < kn[i+1] {
			return 1
		}
		return 0
	}
	key := [2]int{i, k}
	if v, ok := b.memo[key]; ok {
		return v
	}

	var v float64
	if d := kn[i+k] - kn[i]; d != 0 {
		v += (t - kn[i]) / d * b.eval(i, k-1)
	}
	if d := kn[i+k+1] - kn[i+1]; d != 0 {
		v += (kn[i+k+1] - t) / d * b.eval(i+1, k-1)
	}
	b.memo[key] = v
	return v
}

// Domain returns the parameter range BSpline samples for n control
// points.
func Domain(n int) (lo, hi float64) {
	return Degree, float64(n - 1)
}

// BSpline evaluates the uniform cubic B-spline of ctrl (at least four
// points) at `samples` evenly spaced parameters over Domain. Each curve
// point is the sum of the control points weighted by their basis values.
//
// The trace decision is the global parameter t.
func BSpline(ctrl []image.Point, samples int) (raster.Result, error) {
	n := len(ctrl)
	if n < Degree+1 {
		return raster.Result{}, fmt.Errorf("%w: B-spline needs %d, got %d", ErrTooFewPoints, Degree+1, n)
	}
	if err := checkSamples(samples); err != nil {
		return raster.Result{}, err
	}

	knots := Knots(n)
	lo, hi := Domain(n)
	res := raster.Result{
		Points: make([]image.Point, 0, samples),
		Trace:  make([]raster.StepRecord, 0, samples),
	}
	for j := 0; j < samples; j++ {
		t := paramAt(j, samples, lo, hi)
		b := basis{knots: knots, t: t, memo: map[[2]int]float64{}}
		var v vec.Vec2
		for i, p := range ctrl {
			if w := b.eval(i, Degree); w != 0 {
				v = v.Add(toVec(p).Mul(w))
			}
		}
		res.Emit(j, toPixel(v), t, raster.MoveNone)
	}
	return res, nil
}
