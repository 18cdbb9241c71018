// Package labui is the interactive curve lab: pick an algorithm, enter
// its parameters, and watch the rasterizer place pixels one trace step
// at a time on a pannable character canvas.
package labui

import (
	"fmt"
	"image"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/wesen/curvelab/internal/config"
	"github.com/wesen/curvelab/internal/input"
	"github.com/wesen/curvelab/internal/replay"
	"github.com/wesen/curvelab/internal/scene"
	"github.com/wesen/curvelab/pkg/cellbuf"
)

// xScale is the number of terminal columns per logical pixel.
const xScale = 2

// Model is the application state.
type Model struct {
	Width, Height int
	// Cam is the logical pixel shown at the centre of the canvas.
	Cam image.Point
	// Zoom is the canvas magnification, 1 to cellbuf.MaxZoom.
	Zoom int
	// Hover is the logical pixel under the mouse, if it is over the canvas.
	Hover   image.Point
	Hovered bool

	AlgIndex int
	Scene    *scene.Scene

	// Replay of the most recently built figure.
	Player    *replay.Player
	ReplayID  int
	tickGen   int
	ShowTrace bool

	Status   string
	StatusOK bool

	// Edit modal state
	EditOpen  bool
	Fields    []field
	EditFocus int
	EditErr   string
	lastInput map[string]string

	ExportPath string

	cfg  config.Config
	eval *input.Evaluator
	log  zerolog.Logger
}

// NewModel creates the initial model. The control-point sequence is
// seeded from the configured defaults.
func NewModel(cfg config.Config, log zerolog.Logger) Model {
	s := scene.New()
	for _, p := range cfg.ControlPoints() {
		s.AddControl(p)
	}
	ev := input.New()
	ev.Define("ext", float64(cfg.ExtentValue()))
	return Model{
		Scene:      s,
		ReplayID:   -1,
		Zoom:       1,
		ShowTrace:  true,
		ExportPath: "curvelab.png",
		lastInput:  make(map[string]string),
		cfg:        cfg,
		eval:       ev,
		log:        log,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Algorithm returns the currently selected algorithm.
func (m Model) Algorithm() scene.Algorithm {
	return scene.Algorithms[m.AlgIndex]
}

// replayFigure returns the figure being replayed, if any.
func (m Model) replayFigure() (scene.Figure, bool) {
	if m.Player == nil {
		return scene.Figure{}, false
	}
	return m.Scene.Figure(m.ReplayID)
}

// newView returns a camera view over buf.
func (m Model) newView(buf *cellbuf.Buffer) *cellbuf.View {
	v := cellbuf.NewView(buf, xScale)
	v.Zoom = m.Zoom
	v.CenterOn(m.Cam)
	return v
}

func (m *Model) zoomBy(d int) {
	m.Zoom = max(1, min(m.Zoom+d, cellbuf.MaxZoom))
	m.setStatus(true, fmt.Sprintf("zoom %d×", m.Zoom))
}

func (m *Model) setStatus(ok bool, s string) {
	m.Status, m.StatusOK = s, ok
}
