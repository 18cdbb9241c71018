package cellbuf

import (
	"image"
	"math"
)

// Shades is the greyscale ramp used for anti-aliased pixels, from empty
// to fully covered.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// Shade maps an intensity in [0, 1] to a rune from Shades. Values
// outside the range are clamped. Any non-zero intensity maps to at
// least the lightest visible shade.
func Shade(intensity float64) rune {
	if intensity <= 0 || math.IsNaN(intensity) {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	i := int(math.Round(intensity * float64(len(Shades)-1)))
	return Shades[max(i, 1)]
}

// MaxZoom is the largest magnification a View accepts.
const MaxZoom = 5

// View maps logical pixel coordinates onto a Buffer. Logical x grows to
// the right and logical y grows downward, matching screen order.
type View struct {
	Buf *Buffer
	// Origin is the logical pixel drawn at cell (0, 0).
	Origin image.Point
	// XScale is the number of cells each logical pixel spans
	// horizontally. Values below 1 are treated as 1.
	XScale int
	// Zoom magnifies each logical pixel into a Zoom×Zoom block of
	// pixels. Values outside [1, MaxZoom] are clamped.
	Zoom int
}

// NewView returns a View over buf centred on the logical origin.
func NewView(buf *Buffer, xscale int) *View {
	v := &View{Buf: buf, XScale: max(xscale, 1), Zoom: 1}
	v.CenterOn(image.Point{})
	return v
}

// cell returns the size in cells of one logical pixel.
func (v *View) cell() (w, h int) {
	z := max(1, min(v.Zoom, MaxZoom))
	return max(v.XScale, 1) * z, z
}

// CenterOn pans so that p lands in the middle of the buffer.
func (v *View) CenterOn(p image.Point) {
	w, h := v.cell()
	v.Origin = image.Pt(p.X-v.Buf.W/(2*w), p.Y-v.Buf.H/(2*h))
}

// Pan moves the origin by d logical pixels.
func (v *View) Pan(d image.Point) {
	v.Origin = v.Origin.Add(d)
}

// ToCell returns the top-left cell covering logical pixel p.
func (v *View) ToCell(p image.Point) image.Point {
	w, h := v.cell()
	q := p.Sub(v.Origin)
	return image.Pt(q.X*w, q.Y*h)
}

// ToLogical returns the logical pixel under cell c.
func (v *View) ToLogical(c image.Point) image.Point {
	w, h := v.cell()
	return image.Pt(floorDiv(c.X, w), floorDiv(c.Y, h)).Add(v.Origin)
}

// Visible reports whether any cell of logical pixel p is on screen.
func (v *View) Visible(p image.Point) bool {
	w, h := v.cell()
	c := v.ToCell(p)
	return c.Y+h > 0 && c.Y < v.Buf.H && c.X+w > 0 && c.X < v.Buf.W
}

// LogicalBounds returns the logical rectangle currently on screen.
func (v *View) LogicalBounds() image.Rectangle {
	w, h := v.cell()
	return image.Rectangle{
		Min: v.Origin,
		Max: v.Origin.Add(image.Pt((v.Buf.W+w-1)/w, (v.Buf.H+h-1)/h)),
	}
}

// Plot fills every cell of logical pixel p with ch.
func (v *View) Plot(p image.Point, ch rune, style StyleKey) {
	w, h := v.cell()
	c := v.ToCell(p)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			v.Buf.Set(c.X+dx, c.Y+dy, ch, style)
		}
	}
}

// PlotShade plots p with the ramp rune for intensity. Zero intensity
// leaves the cell untouched.
func (v *View) PlotShade(p image.Point, intensity float64, style StyleKey) {
	ch := Shade(intensity)
	if ch == Shades[0] {
		return
	}
	v.Plot(p, ch, style)
}

// Label writes s with its first rune at logical pixel p.
func (v *View) Label(p image.Point, s string, style StyleKey) {
	c := v.ToCell(p)
	v.Buf.SetString(c.X, c.Y, s, style)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
