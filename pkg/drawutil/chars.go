// Package drawutil draws rasterized figures, axes and control polygons
// into a cellbuf.View. Logical pixels come from the raster, conic and
// curve packages; the View handles panning and horizontal stretch.
package drawutil

// LineChar returns the line character for a step of (dx, dy) in screen
// orientation (y grows downward).
func LineChar(dx, dy int) rune {
	if dx == 0 {
		return '│'
	}
	if dy == 0 {
		return '─'
	}
	if (dx > 0) == (dy > 0) {
		return '\\'
	}
	return '/'
}

// ArrowChar returns an arrow pointing along the dominant axis of
// (dx, dy). A zero vector yields a dot.
func ArrowChar(dx, dy int) rune {
	if dx == 0 && dy == 0 {
		return '•'
	}
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
