package labui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}
	layout := screenLayoutFor(m.Width, m.Height)
	canvasRect := layout.get("canvas")

	alg := m.Algorithm()
	tbContent := fmt.Sprintf(
		" CURVELAB  │  %s (%s)  │  [tab] algorithm  [e] params  [g] play  │  [q]uit",
		alg.Title, alg.Family,
	)

	hover := "-"
	if m.Hovered {
		hover = fmt.Sprintf("(%d,%d)", m.Hover.X, m.Hover.Y)
	}
	ftContent := fmt.Sprintf(" Pixel: %s  Cam: (%d,%d)  Zoom: %d×  Extent: ±%d", hover, m.Cam.X, m.Cam.Y, m.Zoom, m.cfg.Extent)
	ft := ftStyle
	if m.Status != "" {
		ftContent += "  │  " + m.Status
		if !m.StatusOK {
			ft = ftErrStyle
		}
	}

	layers := []*lipgloss.Layer{
		fillLayer(layout.get("toolbar"), tbStyle, "toolbar-bg", 0),
		barLayer(tbContent, layout.get("toolbar"), tbStyle, "toolbar"),
		barLayer(ftContent, layout.get("footer"), ft, "footer"),
		buildCanvasLayer(m, canvasRect),
	}
	layers = append(layers, buildPanelLayers(m, layout.get("panel"))...)
	if m.EditOpen {
		layers = append(layers, buildEditModalLayer(m, m.Width, m.Height))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}
