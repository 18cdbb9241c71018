// Package raster holds the value types shared by the curve engine and the
// three line algorithms: incremental DDA, integer Bresenham and Xiaolin
// Wu's antialiased line.
//
// Every generator returns its image (an ordered point sequence) together
// with a parallel trace: one StepRecord per emitted point, carrying the
// algorithm's decision state at that step. Traces exist for replay only;
// the point sequence never depends on them.
package raster

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidExtent is returned when a bounding extent is not positive.
var ErrInvalidExtent = errors.New("raster: extent must be positive")

// Move tags the branch a circle step took.
type Move int

const (
	MoveNone Move = iota
	MoveVertical
	MoveDiagonal
	MoveHorizontal
)

func (m Move) String() string {
	switch m {
	case MoveVertical:
		return "V"
	case MoveDiagonal:
		return "D"
	case MoveHorizontal:
		return "H"
	default:
		return ""
	}
}

// StepRecord is one trace entry.
type StepRecord struct {
	Step     int         // primary iteration that produced Pt
	Pt       image.Point // point emitted at this step
	Decision float64     // decision-variable value when Pt was emitted
	Move     Move        // circle only
}

// WeightedPoint is a pixel with a coverage intensity in [0,1].
type WeightedPoint struct {
	Pt        image.Point
	Intensity float64
}

// Result is the output of a hard-edged generator.
type Result struct {
	Points []image.Point
	Trace  []StepRecord
}

// WeightedResult is the output of the antialiased line.
type WeightedResult struct {
	Points []WeightedPoint
	Trace  []StepRecord
}

// Weighted returns r's points at full intensity.
func (r Result) Weighted() []WeightedPoint {
	out := make([]WeightedPoint, len(r.Points))
	for i, p := range r.Points {
		out[i] = WeightedPoint{Pt: p, Intensity: 1}
	}
	return out
}

// Emit appends p to the image and its record to the trace.
func (r *Result) Emit(step int, p image.Point, decision float64, m Move) {
	r.Points = append(r.Points, p)
	r.Trace = append(r.Trace, StepRecord{Step: step, Pt: p, Decision: decision, Move: m})
}

func (r *WeightedResult) emit(step int, p image.Point, intensity, decision float64) {
	r.Points = append(r.Points, WeightedPoint{Pt: p, Intensity: intensity})
	r.Trace = append(r.Trace, StepRecord{Step: step, Pt: p, Decision: decision})
}

// Extent bounds open generators and clips symmetric reflections: a point
// is inside when both |x| and |y| are at most the extent.
type Extent int

// Validate reports whether e can bound a generator.
func (e Extent) Validate() error {
	if e <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidExtent, int(e))
	}
	return nil
}

// Contains reports whether p lies within e.
func (e Extent) Contains(p image.Point) bool {
	return abs(p.X) <= int(e) && abs(p.Y) <= int(e)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
