// Package scene holds the figures drawn on the canvas: a registry of the
// available algorithms, a builder that runs one of them over a Request,
// and an ordered, ID-addressed collection of the results.
package scene

import (
	"errors"
	"fmt"

	"github.com/wesen/curvelab/pkg/conic"
)

var (
	ErrUnknownAlgorithm = errors.New("scene: unknown algorithm")
	ErrNeedControl      = errors.New("scene: not enough control points")
)

// Family groups algorithms by the input they consume.
type Family int

const (
	FamilyLine  Family = iota // start and end point
	FamilyConic               // center plus named parameters
	FamilyCurve               // control-point sequence
)

func (f Family) String() string {
	switch f {
	case FamilyLine:
		return "line"
	case FamilyConic:
		return "conic"
	case FamilyCurve:
		return "curve"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// Algorithm describes one rasterizer.
type Algorithm struct {
	Name   string
	Title  string
	Family Family
	// Params lists the named conic parameters (conics only).
	Params []string
	// MinControl is the minimum number of control points (curves only).
	MinControl int
	// Weighted is set for algorithms producing varying intensity.
	Weighted bool

	conic conic.Kind
}

// Algorithms lists every rasterizer in menu order.
var Algorithms = []Algorithm{
	{Name: "dda", Title: "DDA", Family: FamilyLine},
	{Name: "bresenham", Title: "Bresenham", Family: FamilyLine},
	{Name: "wu", Title: "Wu", Family: FamilyLine, Weighted: true},
	conicAlgorithm(conic.KindCircle, "Circle"),
	conicAlgorithm(conic.KindEllipse, "Ellipse"),
	conicAlgorithm(conic.KindHyperbola, "Hyperbola"),
	conicAlgorithm(conic.KindParabola, "Parabola"),
	{Name: "hermite", Title: "Hermite", Family: FamilyCurve, MinControl: 2},
	{Name: "bezier", Title: "Bézier", Family: FamilyCurve, MinControl: 4},
	{Name: "bspline", Title: "B-spline", Family: FamilyCurve, MinControl: 4},
}

func conicAlgorithm(k conic.Kind, title string) Algorithm {
	return Algorithm{Name: k.String(), Title: title, Family: FamilyConic, Params: k.Params(), conic: k}
}

// Lookup finds an algorithm by name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if a.Name == name {
			return a, nil
		}
	}
	return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Names returns the algorithm names in menu order.
func Names() []string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = a.Name
	}
	return names
}
