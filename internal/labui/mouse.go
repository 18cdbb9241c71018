package labui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/curvelab/internal/input"
	"github.com/wesen/curvelab/pkg/cellbuf"
)

// viewFor returns the logical view of a canvas occupying r. It carries
// only the buffer size, which is all coordinate mapping needs.
func (m Model) viewFor(r image.Rectangle) *cellbuf.View {
	return m.newView(&cellbuf.Buffer{W: r.Dx(), H: r.Dy()})
}

// handleMouse tracks the hovered pixel. A left click adds a control
// point, or removes the one already under the pointer. The wheel zooms.
func handleMouse(m Model, msg tea.MouseMsg, canvas image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	screen := image.Pt(mouse.X, mouse.Y)
	if !screen.In(canvas) {
		m.Hovered = false
		return m, nil
	}
	p := m.viewFor(canvas).ToLogical(screen.Sub(canvas.Min))
	m.Hover, m.Hovered = p, true

	if _, ok := msg.(tea.MouseWheelMsg); ok {
		switch mouse.Button {
		case tea.MouseWheelUp:
			m.zoomBy(1)
		case tea.MouseWheelDown:
			m.zoomBy(-1)
		}
		return m, nil
	}

	if _, ok := msg.(tea.MouseClickMsg); ok && mouse.Button == tea.MouseLeft {
		if i := m.Scene.HitControl(p); i >= 0 {
			m.Scene.RemoveControl(i)
			m.setStatus(true, fmt.Sprintf("removed control point %d at (%d,%d)", i, p.X, p.Y))
			return m, nil
		}
		m.addControl(p)
	}
	return m, nil
}

func (m *Model) addControl(p image.Point) {
	ext := m.cfg.ExtentValue()
	if !ext.Contains(p) {
		m.setStatus(false, fmt.Sprintf("%v: %v must be within ±%d", input.ErrOutOfRange, p, int(ext)))
		return
	}
	m.Scene.AddControl(p)
	m.setStatus(true, fmt.Sprintf("control point %d at (%d,%d)", len(m.Scene.Control())-1, p.X, p.Y))
}
