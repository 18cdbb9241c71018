// Package conic rasterizes circles, ellipses and open hyperbola and
// parabola branches with incremental decision-variable algorithms.
//
// Each generator computes one representative point per step in the first
// quadrant (relative to the center) and expands it through the curve's
// symmetry group. Reflections that fall outside the bounding extent are
// dropped before they reach the output. Reflections on a symmetry axis
// coincide and are emitted as duplicates.
package conic

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/wesen/curvelab/pkg/raster"
)

var (
	// ErrMissingParameter is returned by Rasterize when a required
	// parameter is absent from the Spec.
	ErrMissingParameter = errors.New("conic: missing parameter")

	// ErrUnknownKind is returned by Rasterize for an unsupported Kind.
	ErrUnknownKind = errors.New("conic: unknown kind")
)

// Kind selects a conic generator.
type Kind int

const (
	KindCircle Kind = iota
	KindEllipse
	KindHyperbola
	KindParabola
)

var kindNames = map[Kind]string{
	KindCircle:    "circle",
	KindEllipse:   "ellipse",
	KindHyperbola: "hyperbola",
	KindParabola:  "parabola",
}

var kindParams = map[Kind][]string{
	KindCircle:    {"radius"},
	KindEllipse:   {"a", "b"},
	KindHyperbola: {"a", "b"},
	KindParabola:  {"p"},
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Params returns the parameter names k requires, in display order.
func (k Kind) Params() []string {
	return kindParams[k]
}

// Spec names a conic by kind, center and named parameters.
type Spec struct {
	Kind   Kind
	Center image.Point
	Params map[string]float64
}

// Rasterize runs the generator for s.Kind after checking that every
// required parameter is present. Parameter values are assumed finite and
// positive.
func Rasterize(s Spec, ext raster.Extent) (raster.Result, error) {
	names, ok := kindParams[s.Kind]
	if !ok {
		return raster.Result{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(s.Kind))
	}
	for _, n := range names {
		if _, ok := s.Params[n]; !ok {
			return raster.Result{}, fmt.Errorf("%s %q: %w", s.Kind, n, ErrMissingParameter)
		}
	}

	switch s.Kind {
	case KindCircle:
		return Circle(s.Center, s.Params["radius"], ext)
	case KindEllipse:
		return Ellipse(s.Center, s.Params["a"], s.Params["b"], ext)
	case KindHyperbola:
		return Hyperbola(s.Center, s.Params["a"], s.Params["b"], ext)
	default:
		return Parabola(s.Center, s.Params["p"], ext)
	}
}

// reflector expands one representative offset into its symmetric images
// around center, keeping only those inside ext.
type reflector struct {
	center image.Point
	ext    raster.Extent
	res    raster.Result
}

func (r *reflector) put(step int, dx, dy int, decision float64, m raster.Move) {
	p := r.center.Add(image.Pt(dx, dy))
	if r.ext.Contains(p) {
		r.res.Emit(step, p, decision, m)
	}
}

// four emits the sign combinations of (x, y).
func (r *reflector) four(step, x, y int, decision float64, m raster.Move) {
	r.put(step, x, y, decision, m)
	r.put(step, -x, y, decision, m)
	r.put(step, x, -y, decision, m)
	r.put(step, -x, -y, decision, m)
}

// two emits (x, y) and its mirror across the horizontal axis.
func (r *reflector) two(step, x, y int, decision float64) {
	r.put(step, x, y, decision, raster.MoveNone)
	r.put(step, x, -y, decision, raster.MoveNone)
}

// limits returns offsets beyond which no reflection can land inside ext.
func (r *reflector) limits() (xMax, yMax int) {
	return int(r.ext) + iabs(r.center.X), int(r.ext) + iabs(r.center.Y)
}

func iround(x float64) int {
	return int(math.Round(x))
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
