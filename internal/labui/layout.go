package labui

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// region is a named rectangle of the terminal.
type region struct {
	Name string
	Rect image.Rectangle
}

// screenLayout holds the regions computed for one terminal size.
type screenLayout struct {
	W, H    int
	regions map[string]region
}

func (l screenLayout) get(name string) image.Rectangle {
	return l.regions[name].Rect
}

// layoutBuilder carves fixed bands off the edges of the terminal and
// hands the remainder to the canvas.
type layoutBuilder struct {
	w, h        int
	top, bottom int
	right       int
	regions     []region
}

func newLayout(w, h int) *layoutBuilder {
	return &layoutBuilder{w: w, h: h}
}

func (b *layoutBuilder) topFixed(name string, height int) *layoutBuilder {
	y := b.top
	b.regions = append(b.regions, region{name, image.Rect(0, y, b.w, y+height)})
	b.top += height
	return b
}

func (b *layoutBuilder) bottomFixed(name string, height int) *layoutBuilder {
	y := b.h - b.bottom - height
	b.regions = append(b.regions, region{name, image.Rect(0, y, b.w, y+height)})
	b.bottom += height
	return b
}

// rightFixed reserves columns spanning the rows between the top and
// bottom bands.
func (b *layoutBuilder) rightFixed(name string, width int) *layoutBuilder {
	x := b.w - b.right - width
	b.regions = append(b.regions, region{name, image.Rect(x, b.top, x+width, b.h-b.bottom)})
	b.right += width
	return b
}

func (b *layoutBuilder) remaining(name string) *layoutBuilder {
	b.regions = append(b.regions, region{name, image.Rect(0, b.top, b.w-b.right, b.h-b.bottom)})
	return b
}

// build resolves the regions; any region with no area becomes empty.
func (b *layoutBuilder) build() screenLayout {
	l := screenLayout{W: b.w, H: b.h, regions: make(map[string]region, len(b.regions))}
	for _, r := range b.regions {
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.regions[r.Name] = r
	}
	return l
}

// screenLayoutFor is the single source of the app layout, shared by View
// and mouse hit testing.
func screenLayoutFor(w, h int) screenLayout {
	return newLayout(w, h).
		topFixed("toolbar", 1).
		bottomFixed("footer", 1).
		rightFixed("panel", panelWidth).
		remaining("canvas").
		build()
}

// ── Chrome layers ──

func fillLayer(r image.Rectangle, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
	}
	lines := make([]string, h)
	for i := range lines {
		lines[i] = strings.Repeat(" ", w)
	}
	return lipgloss.NewLayer(style.Render(strings.Join(lines, "\n"))).X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
}

// barLayer renders a one-line band (toolbar or footer) across r.
func barLayer(content string, r image.Rectangle, style lipgloss.Style, id string) *lipgloss.Layer {
	rendered := style.Width(r.Dx()).MaxWidth(r.Dx()).Render(content)
	return lipgloss.NewLayer(rendered).X(r.Min.X).Y(r.Min.Y).Z(1).ID(id)
}

// modalLayer centres rendered on a w×h screen above everything else.
func modalLayer(rendered string, w, h int, id string) *lipgloss.Layer {
	x := max(0, (w-lipgloss.Width(rendered))/2)
	y := max(0, (h-lipgloss.Height(rendered))/2)
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(100).ID(id)
}
