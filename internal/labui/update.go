package labui

import (
	"fmt"
	"image"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/curvelab/internal/export"
	"github.com/wesen/curvelab/internal/scene"
)

const panStep = 4

// tickMsg advances auto-replay. gen discards ticks from an earlier
// play/pause cycle.
type tickMsg struct{ gen int }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.EditOpen {
			return m.handleEditKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		if m.EditOpen {
			return m, nil
		}
		return handleMouse(m, msg, m.canvasRect())

	case tickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

// handleKeys processes keyboard input outside the modal.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	// Camera
	case "up":
		m.Cam.Y -= panStep
	case "down":
		m.Cam.Y += panStep
	case "left":
		m.Cam.X -= panStep
	case "right":
		m.Cam.X += panStep
	case "0", "home":
		m.Cam, m.Zoom = image.Point{}, 1
	case "+", "=":
		m.zoomBy(1)
	case "-":
		m.zoomBy(-1)
	case "f":
		if b := m.Scene.Bounds(); !b.Empty() {
			m.Cam = b.Min.Add(b.Max).Div(2)
		}

	// Algorithm
	case "tab":
		m.AlgIndex = (m.AlgIndex + 1) % len(scene.Algorithms)
	case "shift+tab":
		m.AlgIndex = (m.AlgIndex + len(scene.Algorithms) - 1) % len(scene.Algorithms)
	case "e", "enter":
		return m.openEditModal()

	// Replay
	case "n":
		if m.Player != nil {
			m.Player.Pause()
			m.Player.Step()
		}
	case "b":
		if m.Player != nil {
			m.Player.Pause()
			m.Player.Back()
		}
	case "r":
		if m.Player != nil {
			m.Player.Restart()
		}
	case "x":
		if m.Player != nil {
			m.Player.Pause()
			m.Player.Seek(m.Player.Len())
		}
	case "g", "space":
		return m.toggleReplay()
	case "t":
		m.ShowTrace = !m.ShowTrace

	// Scene
	case "d":
		if last, ok := m.Scene.Last(); ok {
			m.Scene.Remove(last.ID)
			if last.ID == m.ReplayID {
				m.Player, m.ReplayID = nil, -1
			}
		}
	case "c":
		m.Scene.Clear()
		m.Player, m.ReplayID = nil, -1
		m.setStatus(true, "canvas cleared")
	case "p":
		m.Scene.ClearControl()
		m.setStatus(true, "control points cleared")
	case "w":
		m.exportPNG()
	}
	return m, nil
}

func (m Model) toggleReplay() (tea.Model, tea.Cmd) {
	if m.Player == nil {
		return m, nil
	}
	m.Player.Toggle()
	if !m.Player.Playing() {
		return m, nil
	}
	m.tickGen++
	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(m.cfg.Speed(), func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen || m.Player == nil || !m.Player.Playing() {
		return m, nil
	}
	m.Player.Step()
	if m.Player.Playing() {
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) exportPNG() {
	opts := export.Options{Extent: m.cfg.ExtentValue(), CellSize: m.cfg.CellSize, Axes: true}
	if err := export.SavePNG(m.ExportPath, m.Scene.Figures(), opts); err != nil {
		m.log.Error().Err(err).Str("path", m.ExportPath).Msg("export failed")
		m.setStatus(false, err.Error())
		return
	}
	m.log.Info().Str("path", m.ExportPath).Int("figures", m.Scene.Len()).Msg("exported")
	m.setStatus(true, fmt.Sprintf("wrote %s", m.ExportPath))
}

// canvasRect returns the canvas region for the current terminal size.
func (m Model) canvasRect() image.Rectangle {
	return screenLayoutFor(m.Width, m.Height).get("canvas")
}
