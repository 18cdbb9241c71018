package curve

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/vec"

	"github.com/wesen/curvelab/pkg/raster"
)

// TangentMode selects how Hermite estimates tangents at interior points.
type TangentMode int

const (
	// TangentCentral uses the per-axis central difference
	// (p[i+1] - p[i-1]) / 2.
	TangentCentral TangentMode = iota

	// TangentLegacyX takes the central difference of the x coordinates
	// only and uses that scalar for both axes. It exists to reproduce
	// images made by earlier versions of the editor.
	TangentLegacyX
)

func (m TangentMode) String() string {
	if m == TangentLegacyX {
		return "legacy-x"
	}
	return "central"
}

// ParseTangentMode is the inverse of TangentMode.String. The empty
// string selects TangentCentral.
func ParseTangentMode(s string) (TangentMode, error) {
	switch s {
	case "", "central":
		return TangentCentral, nil
	case "legacy-x":
		return TangentLegacyX, nil
	}
	return TangentCentral, fmt.Errorf("%w: %q", ErrUnknownTangentMode, s)
}

// Hermite evaluates a piecewise cubic Hermite curve through ctrl. Each
// adjacent pair of control points is one segment, sampled at `samples`
// evenly spaced parameters in [0,1]. Tangents are zero at the first and
// last control point and estimated per mode elsewhere.
//
// The trace decision is the segment-local parameter t.
func Hermite(ctrl []image.Point, samples int, mode TangentMode) (raster.Result, error) {
	if len(ctrl) < 2 {
		return raster.Result{}, fmt.Errorf("%w: Hermite needs 2, got %d", ErrTooFewPoints, len(ctrl))
	}
	if err := checkSamples(samples); err != nil {
		return raster.Result{}, err
	}

	tangents := hermiteTangents(ctrl, mode)
	var res raster.Result
	for i := 0; i+1 < len(ctrl); i++ {
		p0, p1 := toVec(ctrl[i]), toVec(ctrl[i+1])
		m0, m1 := tangents[i], tangents[i+1]
		for j := 0; j < samples; j++ {
			t := paramAt(j, samples, 0, 1)
			t2 := t * t
			t3 := t2 * t
			h1 := 2*t3 - 3*t2 + 1
			h2 := -2*t3 + 3*t2
			h3 := t3 - 2*t2 + t
			h4 := t3 - t2

			v := p0.Mul(h1).Add(p1.Mul(h2)).Add(m0.Mul(h3)).Add(m1.Mul(h4))
			res.Emit(i*samples+j, toPixel(v), t, raster.MoveNone)
		}
	}
	return res, nil
}

func hermiteTangents(ctrl []image.Point, mode TangentMode) []vec.Vec2 {
	out := make([]vec.Vec2, len(ctrl))
	for i := 1; i+1 < len(ctrl); i++ {
		d := toVec(ctrl[i+1]).Sub(toVec(ctrl[i-1])).Mul(0.5)
		if mode == TangentLegacyX {
			d.Y = d.X
		}
		out[i] = d
	}
	return out
}
