// curveprint rasterizes one figure and prints it to the terminal, with
// an optional greyscale PNG and trace dump.
//
// Run: GOWORK=off go run ./cmd/curveprint/ -alg circle -param radius=12
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/wesen/curvelab/internal/config"
	"github.com/wesen/curvelab/internal/export"
	"github.com/wesen/curvelab/internal/input"
	"github.com/wesen/curvelab/internal/scene"
	"github.com/wesen/curvelab/pkg/cellbuf"
	"github.com/wesen/curvelab/pkg/drawutil"
)

// Style keys
const (
	BG cellbuf.StyleKey = iota
	Axis
	Figure
	Control
	ControlPoint
)

var styles = map[cellbuf.StyleKey]lipgloss.Style{
	BG:           lipgloss.NewStyle().Foreground(lipgloss.Color("#333333")),
	Axis:         lipgloss.NewStyle().Foreground(lipgloss.Color("#1a6a4a")),
	Figure:       lipgloss.NewStyle().Foreground(lipgloss.Color("#00d4a0")),
	Control:      lipgloss.NewStyle().Foreground(lipgloss.Color("#336655")),
	ControlPoint: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")).Bold(true),
}

// paramFlags collects repeated -param name=value flags.
type paramFlags map[string]string

func (p paramFlags) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

func (p paramFlags) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("want name=value, got %q", s)
	}
	p[strings.TrimSpace(k)] = v
	return nil
}

type options struct {
	alg        string
	configPath string
	from, to   string
	center     string
	params     paramFlags
	points     string
	samples    string
	pngPath    string
	trace      bool
	plain      bool
	verbose    bool
}

func main() {
	o := options{params: paramFlags{}}
	flag.StringVar(&o.alg, "alg", "bresenham", "algorithm: "+strings.Join(scene.Names(), ", "))
	flag.StringVar(&o.configPath, "config", "", "TOML config file")
	flag.StringVar(&o.from, "from", "-20,-8", "line start x,y")
	flag.StringVar(&o.to, "to", "20,8", "line end x,y")
	flag.StringVar(&o.center, "center", "0,0", "conic center x,y")
	flag.Var(o.params, "param", "conic parameter name=value (repeatable)")
	flag.StringVar(&o.points, "points", "", "curve control points x,y; x,y; ... (config defaults when empty)")
	flag.StringVar(&o.samples, "samples", "", "curve samples (config default when empty)")
	flag.StringVar(&o.pngPath, "png", "", "also write a greyscale PNG")
	flag.BoolVar(&o.trace, "trace", false, "print the step trace")
	flag.BoolVar(&o.plain, "plain", false, "print without colour")
	flag.BoolVar(&o.verbose, "v", false, "debug logging")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if o.verbose {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	if err := run(o, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(o options, log zerolog.Logger) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	req, err := buildRequest(o, cfg)
	if err != nil {
		return err
	}
	fig, err := scene.Build(req)
	if err != nil {
		return err
	}
	log.Debug().Str("alg", fig.Alg.Name).Int("points", len(fig.Points)).Int("trace", len(fig.Trace)).Msg("figure built")

	fmt.Println(render(fig, o.plain))

	if o.trace {
		for _, r := range fig.Trace {
			fmt.Printf("%5d  (%4d,%4d)  %10.4f  %s\n", r.Step, r.Pt.X, r.Pt.Y, r.Decision, r.Move)
		}
	}
	if o.pngPath != "" {
		opts := export.Options{Extent: cfg.ExtentValue(), CellSize: cfg.CellSize, Axes: true}
		if err := export.SavePNG(o.pngPath, []scene.Figure{fig}, opts); err != nil {
			return err
		}
		log.Info().Str("path", o.pngPath).Msg("wrote png")
	}
	return nil
}

// buildRequest validates the flags the way the TUI validates its form.
func buildRequest(o options, cfg config.Config) (scene.Request, error) {
	alg, err := scene.Lookup(o.alg)
	if err != nil {
		return scene.Request{}, err
	}
	ev := input.New()
	ext := cfg.ExtentValue()
	ev.Define("ext", float64(ext))
	req := scene.Request{Alg: alg.Name, Extent: ext, Tangent: cfg.Tangent()}

	point := func(name, text string) (image.Point, error) {
		pts, err := ev.Points(name, text, ext)
		if err != nil {
			return image.Point{}, err
		}
		if len(pts) != 1 {
			return image.Point{}, fmt.Errorf("%s: want a single x,y pair", name)
		}
		return pts[0], nil
	}

	switch alg.Family {
	case scene.FamilyLine:
		if req.Start, err = point("from", o.from); err != nil {
			return req, err
		}
		req.End, err = point("to", o.to)
		return req, err

	case scene.FamilyConic:
		if req.Center, err = point("center", o.center); err != nil {
			return req, err
		}
		req.Params = make(map[string]float64)
		for _, name := range alg.Params {
			text, ok := o.params[name]
			if !ok {
				text = fmt.Sprint(cfg.Param(name))
			}
			if req.Params[name], err = ev.Positive(name, text); err != nil {
				return req, err
			}
		}
		return req, nil
	}

	req.Control = cfg.ControlPoints()
	if o.points != "" {
		if req.Control, err = ev.Points("points", o.points, ext); err != nil {
			return req, err
		}
	}
	req.Samples = cfg.SamplesFor(alg.Name)
	if o.samples != "" {
		req.Samples, err = ev.Samples("samples", o.samples)
	}
	return req, err
}

// render draws the figure into a buffer sized to its bounds plus a margin.
func render(fig scene.Figure, plain bool) string {
	b := fig.Bounds()
	for _, p := range fig.Control {
		b = b.Union(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	}
	b = b.Inset(-2)

	buf := cellbuf.New(b.Dx()*2, b.Dy(), BG)
	v := cellbuf.NewView(buf, 2)
	v.Origin = b.Min

	drawutil.DrawAxes(v, Axis)
	drawutil.DrawControlPolygon(v, fig.Control, Control, ControlPoint)
	drawutil.DrawWeighted(v, fig.Points, Figure)

	if plain {
		return buf.PlainString()
	}
	return buf.Render(styles)
}
