package curve

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// distToLine returns the distance of p from the line through a and b.
func distToLine(p, a, b image.Point) float64 {
	dx, dy := float64(b.X-a.X), float64(b.Y-a.Y)
	cross := dx*float64(p.Y-a.Y) - dy*float64(p.X-a.X)
	return math.Abs(cross) / math.Hypot(dx, dy)
}

// ── Hermite ──

func TestHermiteTwoPointsIsStraight(t *testing.T) {
	a, b := image.Pt(-3, 2), image.Pt(17, 9)
	res, err := Hermite([]image.Point{a, b}, 101, TangentCentral)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 101 || len(res.Trace) != 101 {
		t.Fatalf("expected 101 samples, got %d points, %d records", len(res.Points), len(res.Trace))
	}
	if res.Points[0] != a || res.Points[100] != b {
		t.Errorf("endpoints: got %v and %v", res.Points[0], res.Points[100])
	}
	for _, p := range res.Points {
		if d := distToLine(p, a, b); d > 1 {
			t.Errorf("%v is %.2f off the chord", p, d)
		}
	}
}

func TestHermitePassesThroughControlPoints(t *testing.T) {
	ctrl := []image.Point{{0, 0}, {10, 20}, {30, 5}, {45, 40}}
	samples := 11
	res, err := Hermite(ctrl, samples, TangentCentral)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != (len(ctrl)-1)*samples {
		t.Fatalf("expected %d samples, got %d", (len(ctrl)-1)*samples, len(res.Points))
	}
	for seg := 0; seg+1 < len(ctrl); seg++ {
		if got := res.Points[seg*samples]; got != ctrl[seg] {
			t.Errorf("segment %d starts at %v, want %v", seg, got, ctrl[seg])
		}
		if got := res.Points[seg*samples+samples-1]; got != ctrl[seg+1] {
			t.Errorf("segment %d ends at %v, want %v", seg, got, ctrl[seg+1])
		}
	}
}

func TestHermiteTangentModes(t *testing.T) {
	ctrl := []image.Point{{0, 0}, {40, 0}, {80, 40}}
	central, err := Hermite(ctrl, 3, TangentCentral)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	legacy, err := Hermite(ctrl, 3, TangentLegacyX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// midpoint of the first segment: h3 = 1/8, h4 = -1/8, outgoing tangent
	// (40,20) per axis, (40,40) with the x-only estimate
	if got := central.Points[1]; got != image.Pt(15, -3) {
		t.Errorf("central midpoint: got %v, want (15,-3)", got)
	}
	if got := legacy.Points[1]; got != image.Pt(15, -5) {
		t.Errorf("legacy midpoint: got %v, want (15,-5)", got)
	}
}

func TestHermiteDoesNotModifyInput(t *testing.T) {
	ctrl := []image.Point{{0, 0}, {5, 5}, {10, 0}}
	orig := append([]image.Point(nil), ctrl...)
	if _, err := Hermite(ctrl, 5, TangentCentral); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(orig, ctrl); diff != "" {
		t.Errorf("control points modified (-want +got):\n%s", diff)
	}
}

func TestHermiteErrors(t *testing.T) {
	if _, err := Hermite([]image.Point{{1, 1}}, 10, TangentCentral); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("1 point: expected ErrTooFewPoints, got %v", err)
	}
	if _, err := Hermite([]image.Point{{1, 1}, {2, 2}}, 1, TangentCentral); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("1 sample: expected ErrTooFewSamples, got %v", err)
	}
}

// ── Bezier ──

func TestBezierCollinear(t *testing.T) {
	ctrl := []image.Point{{0, 0}, {7, 3}, {14, 6}, {21, 9}}
	res, err := Bezier(ctrl, 1001)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range res.Points {
		if d := distToLine(p, ctrl[0], ctrl[3]); d > 1 {
			t.Errorf("%v is %.2f off the line", p, d)
		}
	}
}

func TestBezierSegments(t *testing.T) {
	ctrl := []image.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {10, -10}, {20, -10}, {20, 0}}
	res, err := Bezier(ctrl, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 100 {
		t.Fatalf("expected 2 segments of 50 samples, got %d", len(res.Points))
	}
	want := map[int]image.Point{0: ctrl[0], 49: ctrl[3], 50: ctrl[3], 99: ctrl[6]}
	for i, p := range want {
		if res.Points[i] != p {
			t.Errorf("sample %d: got %v, want %v", i, res.Points[i], p)
		}
	}
	if res.Trace[50].Decision != 0 || res.Trace[99].Decision != 1 {
		t.Errorf("trace parameters: %v, %v", res.Trace[50].Decision, res.Trace[99].Decision)
	}
}

func TestBezierPointCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		ctrl := make([]image.Point, n)
		res, err := Bezier(ctrl, 10)
		if !errors.Is(err, ErrBezierPointCount) {
			t.Errorf("%d points: expected ErrBezierPointCount, got %v", n, err)
		}
		if len(res.Points) != 0 {
			t.Errorf("%d points: expected no output on error", n)
		}
	}
	for _, n := range []int{4, 7, 10} {
		if _, err := Bezier(make([]image.Point, n), 10); err != nil {
			t.Errorf("%d points: unexpected error %v", n, err)
		}
	}
}

// ── B-spline ──

func TestBasisPartitionOfUnity(t *testing.T) {
	for _, n := range []int{4, 5, 8} {
		knots := Knots(n)
		if len(knots) != n+Degree+1 {
			t.Fatalf("n=%d: knot vector length %d", n, len(knots))
		}
		lo, hi := Domain(n)
		var params []float64
		for j := 0; j <= 40; j++ {
			params = append(params, lo+(hi-lo)*float64(j)/40)
		}
		// interior of the last span as well
		params = append(params, float64(n)-0.5, float64(n)-1e-9)
		for _, tp := range params {
			sum := 0.0
			for i := 0; i < n; i++ {
				v := Basis(i, Degree, knots, tp)
				if v < 0 {
					t.Errorf("n=%d t=%v: N(%d) = %v negative", n, tp, i, v)
				}
				sum += v
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("n=%d t=%v: basis sum %v", n, tp, sum)
			}
		}
	}
}

func TestBasisZeroDenominator(t *testing.T) {
	clamped := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	if got := Basis(0, 3, clamped, 0); math.Abs(got-1) > 1e-12 {
		t.Errorf("clamped N(0,3)(0) = %v, want 1", got)
	}
	if got := Basis(3, 3, clamped, 0.5); math.Abs(got-0.125) > 1e-12 {
		t.Errorf("clamped N(3,3)(0.5) = %v, want 0.125", got)
	}
}

func TestBSplineCollinear(t *testing.T) {
	ctrl := []image.Point{{0, 0}, {10, 5}, {20, 10}, {30, 15}, {40, 20}, {50, 25}}
	res, err := BSpline(ctrl, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Points) != 200 || len(res.Trace) != 200 {
		t.Fatalf("expected 200 samples, got %d/%d", len(res.Points), len(res.Trace))
	}
	for _, p := range res.Points {
		if d := distToLine(p, ctrl[0], ctrl[5]); d > 1 {
			t.Errorf("%v is %.2f off the line", p, d)
		}
	}
	lo, hi := Domain(len(ctrl))
	if res.Trace[0].Decision != lo || res.Trace[199].Decision != hi {
		t.Errorf("parameter range [%v,%v], want [%v,%v]", res.Trace[0].Decision, res.Trace[199].Decision, lo, hi)
	}
}

func TestBSplineUniformKnotsPoint(t *testing.T) {
	// at an integer knot the uniform cubic weights are 1/6, 4/6, 1/6
	ctrl := []image.Point{{0, 0}, {60, 0}, {60, 60}, {0, 60}, {0, 120}}
	res, err := BSpline(ctrl, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// t = 3 weights ctrl[0..2]; t = 4 weights ctrl[1..3]
	if diff := cmp.Diff([]image.Point{{50, 10}, {50, 50}}, res.Points); diff != "" {
		t.Errorf("knot samples mismatch (-want +got):\n%s", diff)
	}
}

func TestBSplineErrors(t *testing.T) {
	if _, err := BSpline(make([]image.Point, 3), 100); !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("3 points: expected ErrTooFewPoints, got %v", err)
	}
	if _, err := BSpline(make([]image.Point, 4), 0); !errors.Is(err, ErrTooFewSamples) {
		t.Errorf("0 samples: expected ErrTooFewSamples, got %v", err)
	}
}

func TestParseTangentMode(t *testing.T) {
	for _, m := range []TangentMode{TangentCentral, TangentLegacyX} {
		got, err := ParseTangentMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseTangentMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseTangentMode(""); err != nil || got != TangentCentral {
		t.Errorf("empty mode = %v, %v; want central", got, err)
	}
	if _, err := ParseTangentMode("spline"); !errors.Is(err, ErrUnknownTangentMode) {
		t.Errorf("expected ErrUnknownTangentMode, got %v", err)
	}
}
