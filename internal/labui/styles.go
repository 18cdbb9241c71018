package labui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/curvelab/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// CRT green palette.
var (
	colorBG      = c("#080e0b")
	toolbarColor = c("#00ffc8")
	footerColor  = c("#666666")
	errorColor   = c("#ff6655")
)

// cellbuf style keys for the canvas layer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleAxis
	styleExtent
	styleFigure
	styleReplay
	styleCursor
	styleControl
	styleControlPoint
)

var bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
	styleBG:           lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
	styleGrid:         lipgloss.NewStyle().Foreground(c("#0e2e20")).Background(colorBG),
	styleAxis:         lipgloss.NewStyle().Foreground(c("#1a6a4a")).Background(colorBG),
	styleExtent:       lipgloss.NewStyle().Foreground(c("#3a2a10")).Background(colorBG),
	styleFigure:       lipgloss.NewStyle().Foreground(c("#00d4a0")).Background(colorBG),
	styleReplay:       lipgloss.NewStyle().Foreground(c("#ffee66")).Background(colorBG),
	styleCursor:       lipgloss.NewStyle().Foreground(c("#ffcc00")).Background(colorBG).Bold(true),
	styleControl:      lipgloss.NewStyle().Foreground(c("#336655")).Background(colorBG),
	styleControlPoint: lipgloss.NewStyle().Foreground(c("#ddaa44")).Background(colorBG).Bold(true),
}

var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0a1510")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)

	ftErrStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)
)
