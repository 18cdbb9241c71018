package curve

import (
	"fmt"
	"image"

	"github.com/wesen/curvelab/pkg/raster"
)

// Bezier evaluates a composite cubic Bézier curve. ctrl must hold 3n+1
// points for n >= 1 segments; consecutive segments share an endpoint.
// Each segment is sampled at `samples` evenly spaced parameters in [0,1].
//
// The trace decision is the segment-local parameter t.
func Bezier(ctrl []image.Point, samples int) (raster.Result, error) {
	if len(ctrl) < 4 || (len(ctrl)-1)%3 != 0 {
		return raster.Result{}, fmt.Errorf("%w: got %d", ErrBezierPointCount, len(ctrl))
	}
	if err := checkSamples(samples); err != nil {
		return raster.Result{}, err
	}

	var res raster.Result
	for seg := 0; seg*3+3 < len(ctrl); seg++ {
		i := seg * 3
		p0, p1, p2, p3 := toVec(ctrl[i]), toVec(ctrl[i+1]), toVec(ctrl[i+2]), toVec(ctrl[i+3])
		for j := 0; j < samples; j++ {
			t := paramAt(j, samples, 0, 1)
			u := 1 - t
			b0 := u * u * u
			b1 := 3 * u * u * t
			b2 := 3 * u * t * t
			b3 := t * t * t

			v := p0.Mul(b0).Add(p1.Mul(b1)).Add(p2.Mul(b2)).Add(p3.Mul(b3))
			res.Emit(seg*samples+j, toPixel(v), t, raster.MoveNone)
		}
	}
	return res, nil
}
