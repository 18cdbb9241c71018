package cellbuf

import (
	"image"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	testBG   StyleKey = 0
	testRed  StyleKey = 1
	testBlue StyleKey = 2
)

func testStyles() map[StyleKey]lipgloss.Style {
	return map[StyleKey]lipgloss.Style{
		testBG:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		testRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		testBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("#0000ff")),
	}
}

// ── Buffer ──

func TestNew(t *testing.T) {
	b := New(10, 5, testBG)
	if b.W != 10 || b.H != 5 || len(b.Cells) != 5 {
		t.Fatalf("expected 10x5, got %dx%d with %d rows", b.W, b.H, len(b.Cells))
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			c := b.Cells[y][x]
			if c.Ch != ' ' || c.Style != testBG {
				t.Fatalf("cell (%d,%d): expected space/testBG, got %q/%d", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestNewNegativeSize(t *testing.T) {
	b := New(-5, -3, testBG)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0 for negative sizes, got %dx%d", b.W, b.H)
	}
	if got := b.Render(testStyles()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestInBounds(t *testing.T) {
	b := New(10, 5, testBG)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 5, false},
	}
	for _, tc := range tests {
		if got := b.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := New(10, 5, testBG)
	b.Set(-1, 0, 'X', testRed)
	b.Set(10, 0, 'X', testRed)
	b.Set(0, 5, 'X', testRed)
	if strings.ContainsRune(b.PlainString(), 'X') {
		t.Fatal("out-of-bounds Set modified the buffer")
	}
	if _, ok := b.At(10, 0); ok {
		t.Fatal("At outside the buffer should report false")
	}
}

func TestSetStringClips(t *testing.T) {
	b := New(5, 1, testBG)
	b.SetString(3, 0, "Hello", testRed)
	if got := b.PlainString(); got != "   He" {
		t.Fatalf("got %q, want %q", got, "   He")
	}
}

func TestSetStringMultibyte(t *testing.T) {
	b := New(4, 1, testBG)
	b.SetString(0, 0, "░▒▓█", testRed)
	if got := b.PlainString(); got != "░▒▓█" {
		t.Fatalf("got %q", got)
	}
}

func TestFill(t *testing.T) {
	b := New(5, 3, testBG)
	b.Set(2, 1, 'X', testRed)
	b.Fill(testBlue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if c := b.Cells[y][x]; c.Ch != ' ' || c.Style != testBlue {
				t.Fatalf("cell (%d,%d) = %q/%d, want space/testBlue", x, y, c.Ch, c.Style)
			}
		}
	}
}

// ── Render ──

func TestRenderLineCount(t *testing.T) {
	b := New(20, 5, testBG)
	if lines := strings.Split(b.Render(testStyles()), "\n"); len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
}

func TestRenderContent(t *testing.T) {
	b := New(10, 1, testBG)
	b.SetString(2, 0, "Hi", testRed)
	if got := b.Render(testStyles()); !strings.Contains(got, "Hi") {
		t.Fatalf("rendered output doesn't contain 'Hi': %q", got)
	}
}

func TestRenderMergesRuns(t *testing.T) {
	styles := testStyles()
	uniform := New(50, 1, testBG).Render(styles)

	b := New(50, 1, testBG)
	for x := 0; x < 50; x++ {
		if x%2 == 0 {
			b.Set(x, 0, '.', testRed)
		} else {
			b.Set(x, 0, '.', testBlue)
		}
	}
	alternating := b.Render(styles)
	if len(uniform) >= len(alternating) {
		t.Errorf("uniform render (%d bytes) should be shorter than alternating (%d bytes)",
			len(uniform), len(alternating))
	}
}

func TestRenderMissingStyle(t *testing.T) {
	b := New(5, 1, StyleKey(99))
	b.SetString(0, 0, "plain", StyleKey(99))
	if got := b.Render(testStyles()); got != "plain" {
		t.Fatalf("missing style should render as plain text, got %q", got)
	}
}

// ── View ──

func TestShade(t *testing.T) {
	tests := []struct {
		in   float64
		want rune
	}{
		{-1, ' '},
		{0, ' '},
		{0.05, '░'},
		{0.25, '░'},
		{0.5, '▒'},
		{0.75, '▓'},
		{1, '█'},
		{2, '█'},
	}
	for _, tc := range tests {
		if got := Shade(tc.in); got != tc.want {
			t.Errorf("Shade(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestViewCenterOn(t *testing.T) {
	v := NewView(New(20, 10, testBG), 2)
	if got := v.ToCell(image.Point{}); got != image.Pt(10, 5) {
		t.Fatalf("origin maps to cell %v, want (10,5)", got)
	}
	v.CenterOn(image.Pt(3, -2))
	if got := v.ToCell(image.Pt(3, -2)); got != image.Pt(10, 5) {
		t.Fatalf("centre maps to cell %v, want (10,5)", got)
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := NewView(New(21, 9, testBG), 2)
	v.Pan(image.Pt(-7, 4))
	for _, p := range []image.Point{{0, 0}, {-3, 2}, {5, -4}, {-20, 0}} {
		c := v.ToCell(p)
		for i := 0; i < 2; i++ {
			if got := v.ToLogical(c.Add(image.Pt(i, 0))); got != p {
				t.Errorf("ToLogical(ToCell(%v)+%d) = %v", p, i, got)
			}
		}
	}
}

func TestViewPlotStretches(t *testing.T) {
	v := NewView(New(6, 3, testBG), 2)
	v.Origin = image.Point{}
	v.Plot(image.Pt(1, 1), '#', testRed)
	if got := v.Buf.PlainString(); got != "\n  ##\n" {
		t.Fatalf("got %q", got)
	}
	if !v.Visible(image.Pt(2, 2)) || v.Visible(image.Pt(3, 0)) || v.Visible(image.Pt(0, -1)) {
		t.Fatal("Visible disagrees with buffer extent")
	}
}

func TestViewPlotShadeSkipsZero(t *testing.T) {
	v := NewView(New(3, 1, testBG), 1)
	v.Origin = image.Point{}
	v.PlotShade(image.Pt(0, 0), 0, testRed)
	v.PlotShade(image.Pt(1, 0), 1, testRed)
	v.PlotShade(image.Pt(2, 0), 0.5, testRed)
	if got := v.Buf.PlainString(); got != " █▒" {
		t.Fatalf("got %q", got)
	}
}

func TestViewLogicalBounds(t *testing.T) {
	v := NewView(New(9, 4, testBG), 2)
	v.Origin = image.Pt(-2, -1)
	want := image.Rect(-2, -1, 3, 3)
	if got := v.LogicalBounds(); got != want {
		t.Fatalf("LogicalBounds = %v, want %v", got, want)
	}
}

func TestViewZoomPlotsBlocks(t *testing.T) {
	v := NewView(New(6, 5, testBG), 1)
	v.Zoom = 2
	v.Origin = image.Point{}
	v.Plot(image.Pt(1, 1), '#', testRed)
	if got := v.Buf.PlainString(); got != "\n\n  ##\n  ##\n" {
		t.Fatalf("got %q", got)
	}
	if got, want := v.LogicalBounds(), image.Rect(0, 0, 3, 3); got != want {
		t.Fatalf("LogicalBounds = %v, want %v", got, want)
	}
}

func TestViewZoomRoundTrip(t *testing.T) {
	v := NewView(New(40, 20, testBG), 2)
	v.Zoom = 3
	v.CenterOn(image.Pt(4, -3))
	for _, p := range []image.Point{{4, -3}, {0, 0}, {-9, 7}, {20, -20}} {
		c := v.ToCell(p)
		for dy := 0; dy < 3; dy++ {
			for dx := 0; dx < 6; dx++ {
				if got := v.ToLogical(c.Add(image.Pt(dx, dy))); got != p {
					t.Errorf("ToLogical(ToCell(%v)+(%d,%d)) = %v", p, dx, dy, got)
				}
			}
		}
	}
}

func TestViewZoomClamps(t *testing.T) {
	v := NewView(New(10, 10, testBG), 1)
	v.Origin = image.Point{}
	v.Zoom = MaxZoom + 4
	if got := v.ToCell(image.Pt(1, 1)); got != image.Pt(MaxZoom, MaxZoom) {
		t.Fatalf("ToCell at zoom %d = %v", v.Zoom, got)
	}
	v.Zoom = 0
	if got := v.ToCell(image.Pt(1, 1)); got != image.Pt(1, 1) {
		t.Fatalf("ToCell at zoom 0 = %v", got)
	}
}

func BenchmarkRenderCurveScene(b *testing.B) {
	styles := testStyles()
	buf := New(150, 40, testBG)
	v := NewView(buf, 2)
	for x := -40; x <= 40; x++ {
		v.Plot(image.Pt(x, 0), '·', testBlue)
		v.Plot(image.Pt(x, x*x/80), '█', testRed)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = buf.Render(styles)
	}
}
