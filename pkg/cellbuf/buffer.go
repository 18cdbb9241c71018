// Package cellbuf is a character-cell raster target for the terminal.
//
// A Buffer holds a grid of runes, each tagged with a StyleKey. Callers
// address it either in cell coordinates (Set, SetString) or in logical
// pixel coordinates through a View (Plot, Shade), which applies the
// current pan offset and the horizontal stretch used to keep circles
// round on rectangular terminal cells.
//
// Styles are resolved at render time from a caller supplied
// map[StyleKey]lipgloss.Style. Only single-width runes are supported.
package cellbuf

import "image"

// StyleKey identifies a visual style. The caller maps StyleKey to
// lipgloss.Style at render time.
type StyleKey int

// Cell is one character position.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a W×H grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer filled with spaces in defaultStyle. Negative
// sizes are clamped to zero.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether cell (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set writes one cell. Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s starting at (x, y), one cell per rune, clipping at
// the buffer edge.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// At returns the cell at (x, y) and whether it exists.
func (b *Buffer) At(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.Cells[y][x], true
}

// Fill resets every cell to a space in style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Bounds returns the cell rectangle covered by the buffer.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.W, b.H)
}
