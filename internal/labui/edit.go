package labui

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/wesen/curvelab/internal/input"
	"github.com/wesen/curvelab/internal/replay"
	"github.com/wesen/curvelab/internal/scene"
)

// field is one labelled text input of the parameter modal.
type field struct {
	Name  string
	Label string
	Input textinput.Model
}

var lineDefaults = map[string]string{"x1": "-40", "y1": "-25", "x2": "45", "y2": "30"}

// fieldNames lists the inputs an algorithm needs, in display order.
func fieldNames(alg scene.Algorithm) []string {
	switch alg.Family {
	case scene.FamilyLine:
		return []string{"x1", "y1", "x2", "y2"}
	case scene.FamilyConic:
		return append([]string{"cx", "cy"}, alg.Params...)
	}
	return []string{"points", "samples"}
}

// memoKey is where the last value of a field is remembered. Sample
// counts are kept per algorithm; everything else is shared.
func memoKey(alg scene.Algorithm, name string) string {
	if name == "samples" {
		return alg.Name + ".samples"
	}
	return name
}

func (m Model) defaultValue(alg scene.Algorithm, name string) string {
	if name == "points" {
		return input.FormatPoints(m.Scene.Control())
	}
	if v, ok := m.lastInput[memoKey(alg, name)]; ok {
		return v
	}
	switch name {
	case "cx", "cy":
		return "0"
	case "samples":
		return strconv.Itoa(m.cfg.SamplesFor(alg.Name))
	}
	if v, ok := lineDefaults[name]; ok {
		return v
	}
	return strconv.FormatFloat(m.cfg.Param(name), 'g', -1, 64)
}

// openEditModal opens the parameter form for the selected algorithm.
func (m Model) openEditModal() (tea.Model, tea.Cmd) {
	alg := m.Algorithm()
	m.Fields = nil
	for _, name := range fieldNames(alg) {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 24
		if name == "points" {
			ti.CharLimit = 400
		}
		ti.SetValue(m.defaultValue(alg, name))
		m.Fields = append(m.Fields, field{Name: name, Label: name, Input: ti})
	}
	m.EditOpen = true
	m.EditFocus = 0
	m.EditErr = ""
	cmd := m.Fields[0].Input.Focus()
	return m, cmd
}

// handleEditKeys processes keys while the modal is open.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.EditOpen = false
		return m, nil

	case "enter":
		return m.submitEdit(), nil

	case "tab", "down":
		return m.focusField((m.EditFocus + 1) % len(m.Fields))

	case "shift+tab", "up":
		return m.focusField((m.EditFocus + len(m.Fields) - 1) % len(m.Fields))

	default:
		var cmd tea.Cmd
		m.Fields[m.EditFocus].Input, cmd = m.Fields[m.EditFocus].Input.Update(msg)
		return m, cmd
	}
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.Fields[m.EditFocus].Input.Blur()
	m.EditFocus = i
	cmd := m.Fields[i].Input.Focus()
	return m, cmd
}

func (m Model) value(name string) string {
	for _, f := range m.Fields {
		if f.Name == name {
			return f.Input.Value()
		}
	}
	return ""
}

// request validates the modal fields into a scene.Request.
func (m Model) request() (scene.Request, error) {
	alg := m.Algorithm()
	ext := m.cfg.ExtentValue()
	req := scene.Request{Alg: alg.Name, Extent: ext, Tangent: m.cfg.Tangent()}
	var err error

	switch alg.Family {
	case scene.FamilyLine:
		var xy [4]int
		for i, name := range fieldNames(alg) {
			if xy[i], err = m.eval.Coord(name, m.value(name), ext); err != nil {
				return req, err
			}
		}
		req.Start, req.End = image.Pt(xy[0], xy[1]), image.Pt(xy[2], xy[3])
		return req, nil

	case scene.FamilyConic:
		if req.Center, err = m.eval.Point("c", m.value("cx"), m.value("cy"), ext); err != nil {
			return req, err
		}
		req.Params = make(map[string]float64, len(alg.Params))
		for _, name := range alg.Params {
			v, err := m.eval.Positive(name, m.value(name))
			if err != nil {
				return req, err
			}
			req.Params[name] = v
		}
		return req, nil
	}

	if req.Control, err = m.eval.Points("points", m.value("points"), ext); err != nil {
		return req, err
	}
	req.Samples, err = m.eval.Samples("samples", m.value("samples"))
	return req, err
}

// submitEdit builds the figure. On failure the modal stays open with the
// error shown; nothing is added to the scene.
func (m Model) submitEdit() Model {
	alg := m.Algorithm()
	req, err := m.request()
	if err == nil {
		var fig scene.Figure
		if fig, err = scene.Build(req); err == nil {
			m.addFigure(fig, req)
			return m
		}
	}
	m.EditErr = err.Error()
	m.log.Warn().Err(err).Str("alg", alg.Name).Msg("invalid parameters")
	return m
}

func (m *Model) addFigure(fig scene.Figure, req scene.Request) {
	alg := fig.Alg
	for _, f := range m.Fields {
		if f.Name != "points" {
			m.lastInput[memoKey(alg, f.Name)] = f.Input.Value()
		}
	}
	if alg.Family == scene.FamilyCurve {
		m.Scene.ClearControl()
		for _, p := range req.Control {
			m.Scene.AddControl(p)
		}
	}

	id := m.Scene.Add(fig)
	m.Player = replay.New(fig.Points, fig.Trace)
	m.Player.Seek(m.Player.Len())
	m.ReplayID = id
	m.tickGen++
	m.EditOpen = false
	m.EditErr = ""

	m.log.Debug().
		Str("alg", alg.Name).
		Int("id", id).
		Int("points", len(fig.Points)).
		Int("trace", len(fig.Trace)).
		Msg("figure built")
	m.setStatus(true, fmt.Sprintf("%s #%d: %d points", alg.Title, id, len(fig.Points)))
}

// buildEditModalLayer renders the parameter form as a centred layer.
func buildEditModalLayer(m Model, screenW, screenH int) *lipgloss.Layer {
	alg := m.Algorithm()
	modalBG := c("#0a1510")

	titleStyle := lipgloss.NewStyle().Foreground(c("#00ffc8")).Background(modalBG).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(c("#ddaa44")).Background(modalBG)
	hintStyle := lipgloss.NewStyle().Foreground(c("#336655")).Background(modalBG).Italic(true)
	errStyle := lipgloss.NewStyle().Foreground(errorColor).Background(modalBG)

	lines := []string{
		titleStyle.Render(fmt.Sprintf("  PARAMETERS: %s", strings.ToUpper(alg.Title))),
		"",
	}
	for i, f := range m.Fields {
		marker := "  "
		if i == m.EditFocus {
			marker = "▸ "
		}
		lines = append(lines, labelStyle.Render(marker+f.Label+":"), "  "+f.Input.View())
	}
	lines = append(lines, "")
	if m.EditErr != "" {
		lines = append(lines, errStyle.Render("  "+m.EditErr), "")
	}
	hint := "  [tab] next  [enter] draw  [esc] cancel"
	if alg.Family == scene.FamilyCurve {
		lines = append(lines, hintStyle.Render("  points: x,y; x,y; ...  (min "+strconv.Itoa(alg.MinControl)+")"))
	}
	lines = append(lines, hintStyle.Render(hint))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(c("#00d4a0")).
		Background(modalBG).
		Width(56).
		Padding(1, 2)

	return modalLayer(boxStyle.Render(strings.Join(lines, "\n")), screenW, screenH, "edit-modal")
}
