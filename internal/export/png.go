// Package export writes figures to greyscale PNG images. Each grid
// point becomes a CellSize×CellSize block; intensity maps to ink
// darkness on a white background.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/wesen/curvelab/internal/scene"
	"github.com/wesen/curvelab/pkg/raster"
)

var ErrCellSize = errors.New("export: cell size must be at least 1")

// Options controls the exported image.
type Options struct {
	Extent   raster.Extent
	CellSize int
	// Axes draws the coordinate axes in light grey under the figures.
	Axes bool
}

const axisGrey = 0xd0

// Grid renders figs at one pixel per grid point. The image covers
// [-Extent, Extent] on both axes with y growing downward. Overlapping
// pixels keep the darkest ink.
func Grid(figs []scene.Figure, opts Options) (*image.Gray, error) {
	if err := opts.Extent.Validate(); err != nil {
		return nil, err
	}
	e := int(opts.Extent)
	img := image.NewGray(image.Rect(0, 0, 2*e+1, 2*e+1))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if opts.Axes {
		for i := 0; i <= 2*e; i++ {
			img.SetGray(i, e, color.Gray{Y: axisGrey})
			img.SetGray(e, i, color.Gray{Y: axisGrey})
		}
	}
	for _, f := range figs {
		for _, wp := range f.Points {
			if !opts.Extent.Contains(wp.Pt) {
				continue
			}
			x, y := wp.Pt.X+e, wp.Pt.Y+e
			if ink := inkLevel(wp.Intensity); ink < img.GrayAt(x, y).Y {
				img.SetGray(x, y, color.Gray{Y: ink})
			}
		}
	}
	return img, nil
}

func inkLevel(intensity float64) uint8 {
	i := math.Max(0, math.Min(1, intensity))
	return uint8(math.Round(255 * (1 - i)))
}

// Image renders figs and scales the grid up by CellSize.
func Image(figs []scene.Figure, opts Options) (*image.Gray, error) {
	if opts.CellSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCellSize, opts.CellSize)
	}
	src, err := Grid(figs, opts)
	if err != nil {
		return nil, err
	}
	if opts.CellSize == 1 {
		return src, nil
	}
	sb := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, sb.Dx()*opts.CellSize, sb.Dy()*opts.CellSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst, nil
}

// WritePNG encodes the scaled image to w.
func WritePNG(w io.Writer, figs []scene.Figure, opts Options) error {
	img, err := Image(figs, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes the scaled image to path.
func SavePNG(path string, figs []scene.Figure, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	if err := WritePNG(f, figs, opts); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
