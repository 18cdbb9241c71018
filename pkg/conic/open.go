package conic

import (
	"image"

	"github.com/wesen/curvelab/pkg/raster"
)

// Hyperbola rasterizes the right branch of x²/a² - y²/b² = 1 starting at
// the vertex (a, 0), mirrored across the horizontal axis.
//
// While the branch is steep (a²y < b²x) y advances every step and x
// advances when the decision variable is non-negative. Past that point x
// becomes the major axis and advances every step with a midpoint test for
// y. The branch is open, so generation stops once the offsets leave the
// extent.
func Hyperbola(center image.Point, a, b float64, ext raster.Extent) (raster.Result, error) {
	if err := ext.Validate(); err != nil {
		return raster.Result{}, err
	}
	r := reflector{center: center, ext: ext}
	xMax, yMax := r.limits()

	a2, b2 := a*a, b*b
	x, y := iround(a), 0
	step := 0

	d := 2*a2 - 2*a*b2 - b2
	for ; x <= xMax && y <= yMax && a2*float64(y) < b2*float64(x); step++ {
		r.two(step, x, y, d)
		if d < 0 {
			d += 2 * a2 * float64(2*y+3)
		} else {
			d += 2*a2*float64(2*y+3) - 4*b2*float64(x+1)
			x++
		}
		y++
	}

	// midpoint (x+1, y+1/2) against b²x² - a²y² - a²b²
	fy := float64(y) + 0.5
	g := b2*float64((x+1)*(x+1)) - a2*fy*fy - a2*b2
	for ; x <= xMax && y <= yMax; step++ {
		r.two(step, x, y, g)
		if g > 0 {
			g -= a2 * float64(2*y+2)
			y++
		}
		g += b2 * float64(2*x+3)
		x++
	}
	return r.res, nil
}

// Parabola rasterizes the branch y² = 4px opening to the right from its
// vertex at the center, mirrored across the horizontal axis.
//
// Below y = 2p y advances every step and x advances when the decision
// variable is non-negative; beyond it x advances every step with a
// midpoint test for y. Generation stops once the offsets leave the
// extent.
//
// The first region starts from d = 1 - p, the midpoint value of
// y² = 2px at (½, 1), while its updates use the 4p of y² = 4px
// (which would start at 1 - 2p). The mismatch biases the first few
// steps toward advancing y and is kept so existing images reproduce.
func Parabola(center image.Point, p float64, ext raster.Extent) (raster.Result, error) {
	if err := ext.Validate(); err != nil {
		return raster.Result{}, err
	}
	r := reflector{center: center, ext: ext}
	xMax, yMax := r.limits()

	x, y := 0, 0
	step := 0

	d := 1 - p
	for ; x <= xMax && y <= yMax && float64(y) < 2*p; step++ {
		r.two(step, x, y, d)
		if d < 0 {
			d += float64(2*y + 3)
		} else {
			d += float64(2*y+3) - 4*p
			x++
		}
		y++
	}

	// midpoint (x+1, y+1/2) against y² - 4px
	fy := float64(y) + 0.5
	e := fy*fy - 4*p*float64(x+1)
	for ; x <= xMax && y <= yMax; step++ {
		r.two(step, x, y, e)
		if e < 0 {
			e += float64(2*y + 2)
			y++
		}
		e -= 4 * p
		x++
	}
	return r.res, nil
}
