package drawutil

import (
	"image"
	"strconv"

	"github.com/wesen/curvelab/pkg/cellbuf"
	"github.com/wesen/curvelab/pkg/raster"
)

// DrawPoints plots every point with ch.
func DrawPoints(v *cellbuf.View, pts []image.Point, ch rune, style cellbuf.StyleKey) {
	for _, p := range pts {
		v.Plot(p, ch, style)
	}
}

// DrawWeighted plots each point with the shade matching its intensity.
func DrawWeighted(v *cellbuf.View, pts []raster.WeightedPoint, style cellbuf.StyleKey) {
	for _, wp := range pts {
		v.PlotShade(wp.Pt, wp.Intensity, style)
	}
}

// pointChar picks a line character for pts[i] from its neighbour.
func pointChar(pts []image.Point, i int) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx, dy = pts[i+1].X-pts[i].X, pts[i+1].Y-pts[i].Y
	} else if i > 0 {
		dx, dy = pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y
	}
	return LineChar(dx, dy)
}

// DrawDashedLine draws a Bresenham segment between a and b, skipping
// every third pixel.
func DrawDashedLine(v *cellbuf.View, a, b image.Point, style cellbuf.StyleKey) {
	pts := raster.Bresenham(a, b).Points
	for i, p := range pts {
		if i%3 != 2 {
			v.Plot(p, pointChar(pts, i), style)
		}
	}
}

// DrawControlPolygon joins consecutive control points with dashed
// segments and marks each point with its index.
func DrawControlPolygon(v *cellbuf.View, ctrl []image.Point, lineStyle, pointStyle cellbuf.StyleKey) {
	for i := 1; i < len(ctrl); i++ {
		DrawDashedLine(v, ctrl[i-1], ctrl[i], lineStyle)
	}
	for i, p := range ctrl {
		v.Plot(p, '◆', pointStyle)
		v.Label(p.Add(image.Pt(1, 0)), strconv.Itoa(i), pointStyle)
	}
}

// DrawCursor marks the current replay step with an arrow pointing from
// the previous step's pixel, or a dot on the first step.
func DrawCursor(v *cellbuf.View, prev, cur image.Point, first bool, style cellbuf.StyleKey) {
	if first {
		v.Plot(cur, ArrowChar(0, 0), style)
		return
	}
	d := cur.Sub(prev)
	v.Plot(cur, ArrowChar(d.X, d.Y), style)
}
