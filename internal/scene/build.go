package scene

import (
	"fmt"
	"image"
	"slices"

	"github.com/wesen/curvelab/pkg/conic"
	"github.com/wesen/curvelab/pkg/curve"
	"github.com/wesen/curvelab/pkg/raster"
)

// Request carries validated inputs for one algorithm. Only the fields of
// the algorithm's family are read.
type Request struct {
	Alg    string
	Extent raster.Extent

	Start, End image.Point

	Center image.Point
	Params map[string]float64

	Control []image.Point
	Samples int
	Tangent curve.TangentMode
}

// Figure is one rasterized result ready to draw or replay.
type Figure struct {
	ID      int
	Alg     Algorithm
	Points  []raster.WeightedPoint
	Trace   []raster.StepRecord
	Control []image.Point
}

// Bounds returns the smallest rectangle holding every point, or the
// empty rectangle when there are none.
func (f Figure) Bounds() image.Rectangle {
	var r image.Rectangle
	for i, wp := range f.Points {
		pr := image.Rectangle{Min: wp.Pt, Max: wp.Pt.Add(image.Pt(1, 1))}
		if i == 0 {
			r = pr
			continue
		}
		r = r.Union(pr)
	}
	return r
}

// Build runs the requested algorithm. A validation failure returns an
// error and no figure.
func Build(req Request) (Figure, error) {
	alg, err := Lookup(req.Alg)
	if err != nil {
		return Figure{}, err
	}
	if err := req.Extent.Validate(); err != nil {
		return Figure{}, err
	}
	fig := Figure{Alg: alg}

	switch alg.Family {
	case FamilyLine:
		fig.Points, fig.Trace = buildLine(alg.Name, req.Start, req.End)
		return fig, nil

	case FamilyConic:
		res, err := conic.Rasterize(conic.Spec{Kind: alg.conic, Center: req.Center, Params: req.Params}, req.Extent)
		if err != nil {
			return Figure{}, err
		}
		fig.Points, fig.Trace = res.Weighted(), res.Trace
		return fig, nil
	}

	if len(req.Control) < alg.MinControl {
		return Figure{}, fmt.Errorf("%w: %s needs %d, have %d", ErrNeedControl, alg.Title, alg.MinControl, len(req.Control))
	}
	var res raster.Result
	switch alg.Name {
	case "hermite":
		res, err = curve.Hermite(req.Control, req.Samples, req.Tangent)
	case "bezier":
		res, err = curve.Bezier(req.Control, req.Samples)
	case "bspline":
		res, err = curve.BSpline(req.Control, req.Samples)
	}
	if err != nil {
		return Figure{}, fmt.Errorf("%s: %w", alg.Title, err)
	}
	fig.Points, fig.Trace = res.Weighted(), res.Trace
	fig.Control = slices.Clone(req.Control)
	return fig, nil
}

func buildLine(name string, start, end image.Point) ([]raster.WeightedPoint, []raster.StepRecord) {
	switch name {
	case "dda":
		res := raster.DDA(start, end)
		return res.Weighted(), res.Trace
	case "wu":
		res := raster.Wu(start, end)
		return res.Points, res.Trace
	}
	res := raster.Bresenham(start, end)
	return res.Weighted(), res.Trace
}
