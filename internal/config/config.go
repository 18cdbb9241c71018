// Package config loads curvelab settings from a TOML file.
//
//	extent = 100
//	cell_size = 8
//	auto_speed = "50ms"
//	hermite_tangent = "central"
//
//	[samples]
//	hermite = 101
//	bezier = 1001
//	bspline = 1000
//
//	[defaults]
//	radius = 30
//	control_points = [[-60, 0], [-40, -30], [-20, 30], [0, 0]]
package config

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/wesen/curvelab/internal/input"
	"github.com/wesen/curvelab/pkg/curve"
	"github.com/wesen/curvelab/pkg/raster"
)

var ErrInvalid = errors.New("config: invalid value")

// Samples holds the sampling resolution of each curve algorithm.
type Samples struct {
	Hermite int `toml:"hermite"`
	Bezier  int `toml:"bezier"`
	BSpline int `toml:"bspline"`
}

// Defaults pre-fills the parameter form.
type Defaults struct {
	Radius        float64  `toml:"radius"`
	A             float64  `toml:"a"`
	B             float64  `toml:"b"`
	P             float64  `toml:"p"`
	ControlPoints [][2]int `toml:"control_points"`
}

type Config struct {
	// Extent is the largest |x| or |y| a figure may reach.
	Extent int `toml:"extent"`
	// CellSize is the PNG export scale in pixels per grid point.
	CellSize       int      `toml:"cell_size"`
	AutoSpeed      string   `toml:"auto_speed"`
	HermiteTangent string   `toml:"hermite_tangent"`
	Samples        Samples  `toml:"samples"`
	Defaults       Defaults `toml:"defaults"`
}

// Default returns the built-in settings: a 100-point extent with 8 pixel
// cells, matching an 800 pixel drawing surface.
func Default() Config {
	return Config{
		Extent:         100,
		CellSize:       8,
		AutoSpeed:      "50ms",
		HermiteTangent: curve.TangentCentral.String(),
		Samples:        Samples{Hermite: 101, Bezier: 1001, BSpline: 1000},
		Defaults: Defaults{
			Radius: 30,
			A:      40,
			B:      20,
			P:      8,
			ControlPoints: [][2]int{
				{-60, 0}, {-40, -30}, {-20, 30}, {0, 0}, {20, -30}, {40, 30}, {60, 0},
			},
		},
	}
}

// Load reads path over the defaults. An empty path yields Default().
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err := Decode(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r into cfg and validates the result.
func Decode(r io.Reader, cfg *Config) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every bad value, joined.
func (c Config) Validate() error {
	var errs []error
	bad := func(key string, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, key, fmt.Sprintf(format, args...)))
	}
	if err := c.ExtentValue().Validate(); err != nil {
		bad("extent", "must be positive, got %d", c.Extent)
	}
	if c.CellSize < 1 {
		bad("cell_size", "must be at least 1, got %d", c.CellSize)
	}
	if d, err := time.ParseDuration(c.AutoSpeed); err != nil || d <= 0 {
		bad("auto_speed", "want a positive duration, got %q", c.AutoSpeed)
	}
	if _, err := curve.ParseTangentMode(c.HermiteTangent); err != nil {
		bad("hermite_tangent", "%v", err)
	}
	for key, n := range map[string]int{
		"samples.hermite": c.Samples.Hermite,
		"samples.bezier":  c.Samples.Bezier,
		"samples.bspline": c.Samples.BSpline,
	} {
		if n < 2 || n > input.MaxSamples {
			bad(key, "must be in [2, %d], got %d", input.MaxSamples, n)
		}
	}
	for key, v := range map[string]float64{
		"defaults.radius": c.Defaults.Radius,
		"defaults.a":      c.Defaults.A,
		"defaults.b":      c.Defaults.B,
		"defaults.p":      c.Defaults.P,
	} {
		if !(v > 0) {
			bad(key, "must be positive, got %v", v)
		}
	}
	for i, p := range c.ControlPoints() {
		if !c.ExtentValue().Contains(p) {
			bad(fmt.Sprintf("defaults.control_points[%d]", i), "%v outside ±%d", p, c.Extent)
		}
	}
	return errors.Join(errs...)
}

// ExtentValue returns Extent as a raster.Extent.
func (c Config) ExtentValue() raster.Extent { return raster.Extent(c.Extent) }

// Speed returns the auto-replay interval, falling back to 50ms.
func (c Config) Speed() time.Duration {
	d, err := time.ParseDuration(c.AutoSpeed)
	if err != nil || d <= 0 {
		return 50 * time.Millisecond
	}
	return d
}

// Tangent returns the configured Hermite tangent mode.
func (c Config) Tangent() curve.TangentMode {
	m, _ := curve.ParseTangentMode(c.HermiteTangent)
	return m
}

// ControlPoints returns the default control points as image points.
func (c Config) ControlPoints() []image.Point {
	out := make([]image.Point, len(c.Defaults.ControlPoints))
	for i, p := range c.Defaults.ControlPoints {
		out[i] = image.Pt(p[0], p[1])
	}
	return out
}

// SamplesFor returns the configured sample count for a curve algorithm
// name, or 0 for anything else.
func (c Config) SamplesFor(alg string) int {
	switch alg {
	case "hermite":
		return c.Samples.Hermite
	case "bezier":
		return c.Samples.Bezier
	case "bspline":
		return c.Samples.BSpline
	}
	return 0
}

// Param returns the default value of a named conic parameter.
func (c Config) Param(name string) float64 {
	switch name {
	case "radius":
		return c.Defaults.Radius
	case "a":
		return c.Defaults.A
	case "b":
		return c.Defaults.B
	case "p":
		return c.Defaults.P
	}
	return 0
}
