package raster

import (
	"image"
	"math"
)

// DDA samples the segment from start to end by repeated floating-point
// increments, one sample per unit of the major axis, rounding each sample
// to the nearest pixel. A zero-length segment yields an empty result.
//
// The trace decision is the minor-axis rounding residue of each sample.
func DDA(start, end image.Point) Result {
	dx := end.X - start.X
	dy := end.Y - start.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return Result{}
	}

	xInc := float64(dx) / float64(steps)
	yInc := float64(dy) / float64(steps)
	shallow := abs(dx) >= abs(dy)

	res := Result{
		Points: make([]image.Point, 0, steps+1),
		Trace:  make([]StepRecord, 0, steps+1),
	}
	x, y := float64(start.X), float64(start.Y)
	for i := 0; i <= steps; i++ {
		p := image.Pt(iround(x), iround(y))
		residue := y - float64(p.Y)
		if !shallow {
			residue = x - float64(p.X)
		}
		res.Emit(i, p, residue, MoveNone)
		x += xInc
		y += yInc
	}
	return res
}

// Bresenham rasterizes the segment with integer arithmetic only. The
// slope is normalized to the shallow left-to-right case, so points are
// returned in increasing major-axis order regardless of the direction of
// the input. The result has max(|dx|,|dy|)+1 points and includes both
// endpoints.
//
// The trace decision is the error accumulator before it is updated.
func Bresenham(start, end image.Point) Result {
	x1, y1, x2, y2 := start.X, start.Y, end.X, end.Y
	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := abs(y2 - y1)
	errAcc := dx / 2
	yStep := 1
	if y1 > y2 {
		yStep = -1
	}

	res := Result{
		Points: make([]image.Point, 0, dx+1),
		Trace:  make([]StepRecord, 0, dx+1),
	}
	y := y1
	for x := x1; x <= x2; x++ {
		p := image.Pt(x, y)
		if steep {
			p = image.Pt(y, x)
		}
		res.Emit(x-x1, p, float64(errAcc), MoveNone)
		errAcc -= dy
		if errAcc < 0 {
			y += yStep
			errAcc += dx
		}
	}
	return res
}

// Wu rasterizes the segment with Xiaolin Wu's antialiased algorithm.
// Every major-axis column yields a vertical pixel pair whose intensities
// split the column's coverage: interior pairs sum to 1, endpoint pairs
// sum to the endpoint's horizontal coverage gap. Pixels are returned in
// increasing major-axis order.
//
// The trace decision is the fractional y-intercept used for the pair.
func Wu(start, end image.Point) WeightedResult {
	x1, y1 := float64(start.X), float64(start.Y)
	x2, y2 := float64(end.X), float64(end.Y)

	steep := math.Abs(y2-y1) > math.Abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := y2 - y1
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	var res WeightedResult
	plot := func(step, x, y int, intensity, decision float64) {
		p := image.Pt(x, y)
		if steep {
			p = image.Pt(y, x)
		}
		res.emit(step, p, intensity, decision)
	}
	pair := func(step, x int, yf, coverage float64) {
		ip := int(math.Floor(yf))
		f := fpart(yf)
		plot(step, x, ip, (1-f)*coverage, yf)
		plot(step, x, ip+1, f*coverage, yf)
	}

	// first endpoint
	xend := math.Round(x1)
	yend := y1 + gradient*(xend-x1)
	xgap := 1 - fpart(x1+0.5)
	xpxl1 := int(xend)
	pair(0, xpxl1, yend, xgap)
	intery := yend + gradient

	// second endpoint, emitted after the interior columns
	xend = math.Round(x2)
	yend2 := y2 + gradient*(xend-x2)
	xgap2 := fpart(x2 + 0.5)
	xpxl2 := int(xend)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		pair(x-xpxl1, x, intery, 1)
		intery += gradient
	}

	pair(xpxl2-xpxl1, xpxl2, yend2, xgap2)
	return res
}

// fpart returns the non-negative fractional part of x.
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

func iround(x float64) int {
	return int(math.Round(x))
}
