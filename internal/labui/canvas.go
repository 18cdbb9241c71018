package labui

import (
	"image"

	"charm.land/lipgloss/v2"

	"github.com/wesen/curvelab/pkg/cellbuf"
	"github.com/wesen/curvelab/pkg/drawutil"
)

const gridSpacing = 10

// buildCanvasLayer renders grid, axes, figures, control polygon and the
// replay cursor into a cellbuf and returns it as the Z=0 canvas layer.
func buildCanvasLayer(m Model, r image.Rectangle) *lipgloss.Layer {
	if r.Empty() {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(0)
	}
	buf := cellbuf.New(r.Dx(), r.Dy(), styleBG)
	v := m.newView(buf)

	drawutil.DrawGrid(v, gridSpacing, styleGrid)
	drawutil.DrawAxes(v, styleAxis)
	drawutil.DrawExtent(v, m.cfg.Extent, styleExtent)

	_, replaying := m.replayFigure()
	for _, f := range m.Scene.Figures() {
		if replaying && f.ID == m.ReplayID {
			continue
		}
		drawutil.DrawWeighted(v, f.Points, styleFigure)
	}

	drawutil.DrawControlPolygon(v, m.Scene.Control(), styleControl, styleControlPoint)

	if replaying {
		style := styleReplay
		if m.Player.Done() {
			style = styleFigure
		}
		drawutil.DrawWeighted(v, m.Player.Visible(), style)
		if cur, ok := m.Player.Current(); ok && !m.Player.Done() {
			prev, hasPrev := m.Player.Previous()
			drawutil.DrawCursor(v, prev.Pt, cur.Pt, !hasPrev, styleCursor)
		}
	}

	return lipgloss.NewLayer(buf.Render(bufStyles)).X(r.Min.X).Y(r.Min.Y).Z(0).ID("canvas")
}
