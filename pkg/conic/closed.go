package conic

import (
	"image"

	"github.com/wesen/curvelab/pkg/raster"
)

// Circle rasterizes a circle with Bresenham's three-move algorithm. The
// first quadrant is walked from (0, r) until y reaches zero, choosing a
// vertical, diagonal or horizontal move by the sign of the decision
// variable; every visited point is emitted with eight-way symmetry. The
// trace records the move taken from each point.
//
// The radius is rounded to the nearest integer R, and the walk is the
// one for a circle of radius R.
func Circle(center image.Point, radius float64, ext raster.Extent) (raster.Result, error) {
	if err := ext.Validate(); err != nil {
		return raster.Result{}, err
	}
	r := reflector{center: center, ext: ext}

	x, y := 0, iround(radius)
	// squared-distance error of the diagonal neighbour (1, R-1)
	delta := float64(2 - 2*y)
	for step := 0; y > 0; step++ {
		var m raster.Move
		deltaStar := 2*delta - float64(2*x) - 1
		if deltaStar > 0 {
			m = raster.MoveVertical
		} else if 2*delta+float64(2*y)-1 > 0 {
			m = raster.MoveDiagonal
		} else {
			m = raster.MoveHorizontal
		}

		r.four(step, x, y, delta, m)
		r.four(step, y, x, delta, m)

		switch m {
		case raster.MoveVertical:
			y--
			delta += float64(-2*y + 1)
		case raster.MoveDiagonal:
			x++
			y--
			delta += float64(2*(x-y) + 2)
		default:
			x++
			delta += float64(2*x + 1)
		}
	}
	return r.res, nil
}

// Ellipse rasterizes an axis-aligned ellipse with semi-axes a (along x)
// and b (along y) using the midpoint decision variable
// b²(x+1)² + a²(y-1)² - a²b², walking the first quadrant from (0, b)
// down to y = 0 and emitting four-way reflections.
//
// Both semi-axes are rounded to the nearest integer before stepping, as
// Circle rounds its radius, so with a == b the emitted point set equals
// Circle's for any real radius.
func Ellipse(center image.Point, a, b float64, ext raster.Extent) (raster.Result, error) {
	if err := ext.Validate(); err != nil {
		return raster.Result{}, err
	}
	r := reflector{center: center, ext: ext}
	xMax, _ := r.limits()

	ra, rb := float64(iround(a)), float64(iround(b))
	a2, b2 := ra*ra, rb*rb
	x, y := 0, int(rb)
	delta := b2 + a2*float64((y-1)*(y-1)) - a2*b2

	diagonal := func() {
		x++
		y--
		delta += b2*float64(2*x+1) + a2*float64(1-2*y)
	}

	for step := 0; y >= 0 && x <= xMax; step++ {
		r.four(step, x, y, delta, raster.MoveNone)

		switch {
		case delta < 0:
			if 2*(delta+a2*float64(y))-1 <= 0 {
				x++
				delta += b2 * float64(2*x+1)
			} else {
				diagonal()
			}
		case delta > 0:
			if 2*(delta-b2*float64(x))-1 <= 0 {
				diagonal()
			} else {
				y--
				delta += a2 * float64(1-2*y)
			}
		default:
			diagonal()
		}
	}
	return r.res, nil
}
