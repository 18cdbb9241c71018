package scene

import (
	"image"
	"slices"
)

// Scene is the ordered list of figures on the canvas plus the control
// points the user has placed for the next curve.
type Scene struct {
	figures []Figure
	nextID  int
	control []image.Point
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// ── Figures ──

// Add appends f, assigns it a fresh ID and returns that ID.
func (s *Scene) Add(f Figure) int {
	f.ID = s.nextID
	s.nextID++
	s.figures = append(s.figures, f)
	return f.ID
}

// Figure returns the figure with the given ID.
func (s *Scene) Figure(id int) (Figure, bool) {
	for _, f := range s.figures {
		if f.ID == id {
			return f, true
		}
	}
	return Figure{}, false
}

// Figures returns all figures in insertion order.
func (s *Scene) Figures() []Figure {
	return slices.Clone(s.figures)
}

// Last returns the most recently added figure.
func (s *Scene) Last() (Figure, bool) {
	if len(s.figures) == 0 {
		return Figure{}, false
	}
	return s.figures[len(s.figures)-1], true
}

// Remove deletes the figure with the given ID and reports whether it
// existed.
func (s *Scene) Remove(id int) bool {
	i := slices.IndexFunc(s.figures, func(f Figure) bool { return f.ID == id })
	if i < 0 {
		return false
	}
	s.figures = slices.Delete(s.figures, i, i+1)
	return true
}

// Clear removes every figure. IDs are not reused.
func (s *Scene) Clear() {
	s.figures = nil
}

// Len returns the number of figures.
func (s *Scene) Len() int { return len(s.figures) }

// Bounds returns the union of all figure bounds.
func (s *Scene) Bounds() image.Rectangle {
	var r image.Rectangle
	for _, f := range s.figures {
		r = r.Union(f.Bounds())
	}
	return r
}

// ── Control points ──

// AddControl appends p to the control-point sequence.
func (s *Scene) AddControl(p image.Point) {
	s.control = append(s.control, p)
}

// Control returns a copy of the control-point sequence.
func (s *Scene) Control() []image.Point {
	return slices.Clone(s.control)
}

// ClearControl empties the control-point sequence.
func (s *Scene) ClearControl() {
	s.control = nil
}

// RemoveControl deletes control point i. It reports false when i is out
// of range.
func (s *Scene) RemoveControl(i int) bool {
	if i < 0 || i >= len(s.control) {
		return false
	}
	s.control = slices.Delete(s.control, i, i+1)
	return true
}

// HitControl returns the index of the last control point at p, or -1.
func (s *Scene) HitControl(p image.Point) int {
	for i := len(s.control) - 1; i >= 0; i-- {
		if s.control[i] == p {
			return i
		}
	}
	return -1
}
