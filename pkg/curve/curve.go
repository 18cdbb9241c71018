// Package curve evaluates parametric curves over an ordered sequence of
// control points: piecewise cubic Hermite, composite cubic Bézier and the
// uniform cubic B-spline. Samples are computed in real coordinates and
// rounded to pixels.
//
// The control-point slice is never modified.
package curve

import (
	"errors"
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

var (
	ErrTooFewPoints     = errors.New("curve: too few control points")
	ErrBezierPointCount = errors.New("curve: Bézier curve needs 3n+1 control points")
	ErrTooFewSamples    = errors.New("curve: at least 2 samples required")

	ErrUnknownTangentMode = errors.New("curve: unknown tangent mode")
)

func checkSamples(samples int) error {
	if samples < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewSamples, samples)
	}
	return nil
}

// paramAt returns the j-th of samples evenly spaced values in [lo, hi],
// both ends included.
func paramAt(j, samples int, lo, hi float64) float64 {
	return lo + (hi-lo)*float64(j)/float64(samples-1)
}

func toVec(p image.Point) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func toPixel(v vec.Vec2) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}
