package input

import (
	"errors"
	"image"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/wesen/curvelab/pkg/raster"
)

// ── Number ──

func TestNumber(t *testing.T) {
	ev := New()
	tests := []struct {
		text string
		want float64
	}{
		{"12", 12},
		{"  -3.5 ", -3.5},
		{"1e2", 100},
		{"2+3*4", 14},
		{"7/2", 3.5},
		{"sqrt(16)", 4},
		{"pow(2, 10)", 1024},
		{"round(2*pi)", 6},
		{"abs(-9)", 9},
	}
	for _, tc := range tests {
		got, err := ev.Number("r", tc.text)
		if err != nil {
			t.Errorf("Number(%q): unexpected error %v", tc.text, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Number(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestNumberErrors(t *testing.T) {
	ev := New()
	tests := []struct {
		text string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"abc", ErrNotNumeric},
		{"'5'", ErrNotNumeric},
		{"true", ErrNotNumeric},
		{"1/0", ErrNotNumeric},
		{"NaN", ErrNotNumeric},
		{"2 +", ErrNotNumeric},
	}
	for _, tc := range tests {
		_, err := ev.Number("radius", tc.text)
		if !errors.Is(err, tc.want) {
			t.Errorf("Number(%q): expected %v, got %v", tc.text, tc.want, err)
		}
		var fe *FieldError
		if !errors.As(err, &fe) || fe.Field != "radius" {
			t.Errorf("Number(%q): expected FieldError for radius, got %v", tc.text, err)
		}
	}
}

func TestNumberRunawayScript(t *testing.T) {
	ev := New()
	ev.Timeout = 20 * time.Millisecond
	_, err := ev.Number("a", "while (true) {}")
	if !errors.Is(err, ErrNotNumeric) {
		t.Fatalf("expected ErrNotNumeric, got %v", err)
	}
	// The runtime must be usable again afterwards.
	if v, err := ev.Number("a", "1+1"); err != nil || v != 2 {
		t.Fatalf("after interrupt: got %v, %v", v, err)
	}
}

func TestDefine(t *testing.T) {
	ev := New()
	ev.Define("r", 5)
	got, err := ev.Number("b", "r/2")
	if err != nil || got != 2.5 {
		t.Fatalf("r/2 = %v, %v; want 2.5", got, err)
	}
}

// ── Typed fields ──

func TestCoord(t *testing.T) {
	ev := New()
	ext := raster.Extent(100)
	if c, err := ev.Coord("x1", "49.6", ext); err != nil || c != 50 {
		t.Fatalf("Coord(49.6) = %d, %v; want 50", c, err)
	}
	if c, err := ev.Coord("x1", "-100", ext); err != nil || c != -100 {
		t.Fatalf("Coord(-100) = %d, %v; want -100", c, err)
	}
	_, err := ev.Coord("x1", "101", ext)
	if !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
	if !strings.Contains(err.Error(), "±100") {
		t.Errorf("error should name the range: %v", err)
	}
}

func TestPoint(t *testing.T) {
	ev := New()
	p, err := ev.Point("start.", "3", "-4", 10)
	if err != nil || p != image.Pt(3, -4) {
		t.Fatalf("Point = %v, %v", p, err)
	}
	_, err = ev.Point("start.", "3", "40", 10)
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "start.y" {
		t.Fatalf("expected FieldError on start.y, got %v", err)
	}
}

func TestPositive(t *testing.T) {
	ev := New()
	if v, err := ev.Positive("p", "0.5"); err != nil || v != 0.5 {
		t.Fatalf("Positive(0.5) = %v, %v", v, err)
	}
	for _, text := range []string{"0", "-2"} {
		if _, err := ev.Positive("p", text); !errors.Is(err, ErrNotPositive) {
			t.Errorf("Positive(%q): expected ErrNotPositive, got %v", text, err)
		}
	}
}

func TestSamples(t *testing.T) {
	ev := New()
	if n, err := ev.Samples("samples", "1001"); err != nil || n != 1001 {
		t.Fatalf("Samples(1001) = %d, %v", n, err)
	}
	tests := []struct {
		text string
		want error
	}{
		{"1", ErrOutOfRange},
		{"1000001", ErrOutOfRange},
		{"10.5", ErrNotInteger},
		{"x", ErrNotNumeric},
	}
	for _, tc := range tests {
		if _, err := ev.Samples("samples", tc.text); !errors.Is(err, tc.want) {
			t.Errorf("Samples(%q): expected %v, got %v", tc.text, tc.want, err)
		}
	}
}

// ── Points ──

func TestPoints(t *testing.T) {
	ev := New()
	got, err := ev.Points("points", " (0, 0); (10,-20) ;30, pow(2, 3); ", 100)
	if err != nil {
		t.Fatal(err)
	}
	want := []image.Point{{0, 0}, {10, -20}, {30, 8}}
	if len(got) != len(want) {
		t.Fatalf("Points = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Points = %v, want %v", got, want)
		}
	}
	if s := FormatPoints(want); s != "0,0; 10,-20; 30,8" {
		t.Fatalf("FormatPoints = %q", s)
	}
}

func TestPointsErrors(t *testing.T) {
	ev := New()
	tests := []struct {
		text string
		want error
	}{
		{"", ErrEmpty},
		{" ; ", ErrEmpty},
		{"1, 2, 3", ErrNotNumeric},
		{"(1, 2); 5", ErrNotNumeric},
		{"(1, 2); (200, 0)", ErrOutOfRange},
	}
	for _, tc := range tests {
		if _, err := ev.Points("points", tc.text, 100); !errors.Is(err, tc.want) {
			t.Errorf("Points(%q): expected %v, got %v", tc.text, tc.want, err)
		}
	}
}

func TestUnwrap(t *testing.T) {
	tests := map[string]string{
		"(1, 2)":    "1, 2",
		"(1)+(2)":   "(1)+(2)",
		"1, 2":      "1, 2",
		"((1), 2)":  "(1), 2",
		"(sqrt(4))": "sqrt(4)",
	}
	for in, want := range tests {
		if got := unwrap(in); got != want {
			t.Errorf("unwrap(%q) = %q, want %q", in, got, want)
		}
	}
}
