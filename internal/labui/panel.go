package labui

import (
	"fmt"
	"image"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/curvelab/internal/scene"
)

const panelWidth = 34

var panelBG = c("#1a2a20")

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(panelBG)

	panelHotStyle = lipgloss.NewStyle().
			Foreground(c("#ffee66")).
			Background(panelBG).
			Bold(true)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to width with the panel background.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// section renders a titled panel block of exactly height lines.
func section(title string, body []string, x, y, width, height int, id string) *lipgloss.Layer {
	lines := []string{
		panelTitleStyle.Render(title),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}
	lines = append(lines, body...)
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID(id)
}

// algorithmLines lists every algorithm with the selection marked.
func algorithmLines(selected int) []string {
	var out []string
	for i, a := range scene.Algorithms {
		label := fmt.Sprintf("%-10s %s", a.Title, a.Family)
		if i == selected {
			out = append(out, panelHotStyle.Render("▸ "+label))
		} else {
			out = append(out, panelTextStyle.Render("  "+label))
		}
	}
	return out
}

// traceLines shows the replay position and a window of trace records
// ending at the current one.
func traceLines(m Model, height int) []string {
	if m.Player == nil {
		return []string{panelDimStyle.Render("  (no figure)")}
	}
	fig, _ := m.replayFigure()
	state := "paused"
	if m.Player.Playing() {
		state = "playing"
	} else if m.Player.Done() {
		state = "done"
	}
	out := []string{
		panelKeyStyle.Render(fmt.Sprintf("  %s #%d", fig.Alg.Title, fig.ID)) +
			panelDimStyle.Render(fmt.Sprintf("  %d/%d %s", m.Player.Pos(), m.Player.Len(), state)),
	}
	if !m.ShowTrace {
		return out
	}
	rows := max(height-3, 0)
	end := m.Player.Pos()
	start := max(end-rows, 0)
	for i := start; i < end; i++ {
		r := fig.Trace[i]
		move := r.Move.String()
		if move != "" {
			move = " " + move
		}
		line := fmt.Sprintf(" %4d (%d,%d) %.3g%s", r.Step, r.Pt.X, r.Pt.Y, r.Decision, move)
		if i == end-1 {
			if !m.Player.Fresh() {
				line += " drawn"
			}
			out = append(out, panelHotStyle.Render("▸"+line))
		} else {
			out = append(out, panelTextStyle.Render(" "+line))
		}
	}
	return out
}

var helpLines = []string{
	panelTextStyle.Render("  [tab] algorithm [e] params"),
	panelTextStyle.Render("  click: add/remove point"),
	panelTextStyle.Render("  [p] clear points [c] clear"),
	panelTextStyle.Render("  [n]ext [b]ack [g] play [r]"),
	panelTextStyle.Render("  [x] end [t] trace [d] undo"),
	panelTextStyle.Render("  [w] png [f] fit  ←↑↓→ pan"),
	panelTextStyle.Render("  [+/-] or wheel: zoom"),
}

// buildPanelLayers renders the side panel into r.
func buildPanelLayers(m Model, r image.Rectangle) []*lipgloss.Layer {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	algH := len(scene.Algorithms) + 2
	helpH := len(helpLines) + 2
	sceneH := 4
	traceH := max(h-algH-helpH-sceneH, 3)

	x, y := r.Min.X+1, r.Min.Y
	sceneBody := []string{
		panelTextStyle.Render(fmt.Sprintf("  figures: %d", m.Scene.Len())),
		panelTextStyle.Render(fmt.Sprintf("  control points: %d", len(m.Scene.Control()))),
	}
	return []*lipgloss.Layer{
		separatorLayer(r.Min.X-1, r.Min.Y, h),
		fillLayer(r, bgStyle, "panel-bg", 0),
		section("ALGORITHM", algorithmLines(m.AlgIndex), x, y, w-2, algH, "panel-alg"),
		section("TRACE", traceLines(m, traceH), x, y+algH, w-2, traceH, "panel-trace"),
		section("SCENE", sceneBody, x, y+algH+traceH, w-2, sceneH, "panel-scene"),
		section("HELP", helpLines, x, y+algH+traceH+sceneH, w-2, helpH, "panel-help"),
	}
}

func separatorLayer(x, y, height int) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = panelSepStyle.Render("│")
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(x).Y(y).Z(1).ID("separator")
}
