package drawutil

import (
	"image"

	"github.com/wesen/curvelab/pkg/cellbuf"
)

// DrawGrid puts a dot on every visible logical pixel whose coordinates
// are both multiples of spacing.
func DrawGrid(v *cellbuf.View, spacing int, style cellbuf.StyleKey) {
	if spacing <= 0 {
		return
	}
	r := v.LogicalBounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		if mod(y, spacing) != 0 {
			continue
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			if mod(x, spacing) == 0 {
				v.Plot(image.Pt(x, y), '·', style)
			}
		}
	}
}

// DrawAxes draws the x and y axes through the logical origin, clipped to
// the view, with '┼' where they cross.
func DrawAxes(v *cellbuf.View, style cellbuf.StyleKey) {
	r := v.LogicalBounds()
	if r.Min.Y <= 0 && 0 < r.Max.Y {
		for x := r.Min.X; x < r.Max.X; x++ {
			v.Plot(image.Pt(x, 0), '─', style)
		}
	}
	if r.Min.X <= 0 && 0 < r.Max.X {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			v.Plot(image.Pt(0, y), '│', style)
		}
	}
	if v.Visible(image.Point{}) {
		v.Plot(image.Point{}, '┼', style)
	}
}

// DrawExtent outlines the square [-e, e]² that bounds open curves.
func DrawExtent(v *cellbuf.View, e int, style cellbuf.StyleKey) {
	if e <= 0 {
		return
	}
	for i := -e; i <= e; i++ {
		v.Plot(image.Pt(i, -e), '┄', style)
		v.Plot(image.Pt(i, e), '┄', style)
	}
	for i := -e; i <= e; i++ {
		v.Plot(image.Pt(-e, i), '┆', style)
		v.Plot(image.Pt(e, i), '┆', style)
	}
}

// mod returns a non-negative modulus.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
