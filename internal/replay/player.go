// Package replay steps through a figure's trace one record at a time,
// keeping the set of pixels revealed so far.
package replay

import (
	"image"

	"github.com/wesen/curvelab/pkg/raster"
)

// Player is a cursor over a trace and its parallel point sequence.
// Position n means the first n records have been revealed.
type Player struct {
	points  []raster.WeightedPoint
	trace   []raster.StepRecord
	pos     int
	playing bool

	visible []raster.WeightedPoint
	index   map[image.Point]int // pixel -> slot in visible
	fresh   bool
}

// New creates a Player positioned before the first record. Extra
// entries in the longer of points and trace are ignored.
func New(points []raster.WeightedPoint, trace []raster.StepRecord) *Player {
	n := min(len(points), len(trace))
	p := &Player{points: points[:n], trace: trace[:n]}
	p.rebuild()
	return p
}

// Len returns the number of records.
func (p *Player) Len() int { return len(p.trace) }

// Pos returns how many records have been revealed.
func (p *Player) Pos() int { return p.pos }

// Done reports whether every record has been revealed.
func (p *Player) Done() bool { return p.pos >= len(p.trace) }

// Playing reports whether auto-advance is on.
func (p *Player) Playing() bool { return p.playing }

// Toggle flips auto-advance. Starting playback at the end restarts.
func (p *Player) Toggle() {
	p.playing = !p.playing
	if p.playing && p.Done() {
		p.Restart()
		p.playing = true
	}
}

// Pause stops auto-advance.
func (p *Player) Pause() { p.playing = false }

// Current returns the most recently revealed record.
func (p *Player) Current() (raster.StepRecord, bool) {
	if p.pos == 0 {
		return raster.StepRecord{}, false
	}
	return p.trace[p.pos-1], true
}

// Previous returns the record revealed before Current.
func (p *Player) Previous() (raster.StepRecord, bool) {
	if p.pos < 2 {
		return raster.StepRecord{}, false
	}
	return p.trace[p.pos-2], true
}

// Fresh reports whether the current record revealed a pixel that was
// not already visible.
func (p *Player) Fresh() bool { return p.fresh }

// Step reveals the next record. It returns false, and stops playback,
// when there is nothing left.
func (p *Player) Step() bool {
	if p.Done() {
		p.playing = false
		return false
	}
	p.reveal(p.points[p.pos])
	p.pos++
	if p.Done() {
		p.playing = false
	}
	return true
}

// Back hides the most recent record. It returns false at the start.
func (p *Player) Back() bool {
	if p.pos == 0 {
		return false
	}
	p.Seek(p.pos - 1)
	return true
}

// Seek moves to position n, clamped to [0, Len].
func (p *Player) Seek(n int) {
	p.pos = max(0, min(n, len(p.trace)))
	p.rebuild()
}

// Restart rewinds to the beginning and stops playback.
func (p *Player) Restart() {
	p.playing = false
	p.Seek(0)
}

// Visible returns the revealed pixels without duplicates, in order of
// first appearance, each at the highest intensity seen for it.
func (p *Player) Visible() []raster.WeightedPoint {
	return p.visible
}

func (p *Player) reveal(wp raster.WeightedPoint) {
	if i, ok := p.index[wp.Pt]; ok {
		p.fresh = false
		if wp.Intensity > p.visible[i].Intensity {
			p.visible[i].Intensity = wp.Intensity
		}
		return
	}
	p.fresh = true
	p.index[wp.Pt] = len(p.visible)
	p.visible = append(p.visible, wp)
}

func (p *Player) rebuild() {
	p.visible = nil
	p.index = make(map[image.Point]int)
	p.fresh = false
	for _, wp := range p.points[:p.pos] {
		p.reveal(wp)
	}
}
