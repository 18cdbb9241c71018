// Package input turns text typed into the parameter fields into engine
// inputs. A field holds either a plain number or a small arithmetic
// expression ("2*r", "sqrt(50)") evaluated with goja.
package input

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dop251/goja"

	"github.com/wesen/curvelab/pkg/raster"
)

var (
	ErrEmpty       = errors.New("value is empty")
	ErrNotNumeric  = errors.New("value is not a number")
	ErrNotInteger  = errors.New("value is not a whole number")
	ErrNotPositive = errors.New("value must be positive")
	ErrOutOfRange  = errors.New("value out of range")
)

// MaxSamples caps sample counts typed by the user.
const MaxSamples = 100000

// DefaultTimeout bounds a single expression evaluation.
const DefaultTimeout = 100 * time.Millisecond

// FieldError reports which field failed validation.
type FieldError struct {
	Field string
	Text  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Text, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Evaluator evaluates field text. It owns a goja runtime and is not safe
// for concurrent use.
type Evaluator struct {
	runtime *goja.Runtime
	Timeout time.Duration
}

// New creates an Evaluator with the math helpers registered as globals.
func New() *Evaluator {
	ev := &Evaluator{runtime: goja.New(), Timeout: DefaultTimeout}
	for name, fn := range map[string]func(float64) float64{
		"sqrt":  math.Sqrt,
		"abs":   math.Abs,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"round": math.Round,
		"floor": math.Floor,
		"ceil":  math.Ceil,
	} {
		ev.runtime.Set(name, fn)
	}
	ev.runtime.Set("pow", math.Pow)
	ev.runtime.Set("pi", math.Pi)
	return ev
}

// Define binds name to v so later expressions can refer to it.
func (ev *Evaluator) Define(name string, v float64) {
	ev.runtime.Set(name, v)
}

// Number evaluates text to a finite real number.
func (ev *Evaluator) Number(field, text string) (float64, error) {
	v, err := ev.number(strings.TrimSpace(text))
	if err != nil {
		return 0, &FieldError{Field: field, Text: text, Err: err}
	}
	return v, nil
}

func (ev *Evaluator) number(s string) (float64, error) {
	if s == "" {
		return 0, ErrEmpty
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return finite(v)
	}
	val, err := ev.run(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotNumeric, err)
	}
	switch x := val.Export().(type) {
	case int64:
		return float64(x), nil
	case float64:
		return finite(x)
	}
	return 0, ErrNotNumeric
}

func finite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotNumeric
	}
	return v, nil
}

// run evaluates s, converting panics and runaway scripts into errors.
func (ev *Evaluator) run(s string) (val goja.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("eval %q: %v", s, r)
		}
	}()
	if ev.Timeout > 0 {
		timer := time.AfterFunc(ev.Timeout, func() {
			ev.runtime.Interrupt("timeout")
		})
		defer func() {
			timer.Stop()
			ev.runtime.ClearInterrupt()
		}()
	}
	return ev.runtime.RunString(s)
}

// Integer evaluates text to a whole number.
func (ev *Evaluator) Integer(field, text string) (int, error) {
	v, err := ev.Number(field, text)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, &FieldError{Field: field, Text: text, Err: ErrNotInteger}
	}
	return int(v), nil
}

// Coord evaluates a coordinate, rounding to the nearest grid position,
// and checks it against ext.
func (ev *Evaluator) Coord(field, text string, ext raster.Extent) (int, error) {
	v, err := ev.Number(field, text)
	if err != nil {
		return 0, err
	}
	c := math.Round(v)
	if math.Abs(c) > float64(ext) {
		return 0, &FieldError{Field: field, Text: text,
			Err: fmt.Errorf("%w: must be within ±%d", ErrOutOfRange, int(ext))}
	}
	return int(c), nil
}

// Point evaluates an (x, y) pair of fields named prefix+"x" and prefix+"y".
func (ev *Evaluator) Point(prefix, xText, yText string, ext raster.Extent) (image.Point, error) {
	x, err := ev.Coord(prefix+"x", xText, ext)
	if err != nil {
		return image.Point{}, err
	}
	y, err := ev.Coord(prefix+"y", yText, ext)
	if err != nil {
		return image.Point{}, err
	}
	return image.Pt(x, y), nil
}

// Positive evaluates a conic parameter, which must be finite and > 0.
func (ev *Evaluator) Positive(field, text string) (float64, error) {
	v, err := ev.Number(field, text)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, &FieldError{Field: field, Text: text, Err: ErrNotPositive}
	}
	return v, nil
}

// Samples evaluates a sample count in [2, MaxSamples].
func (ev *Evaluator) Samples(field, text string) (int, error) {
	n, err := ev.Integer(field, text)
	if err != nil {
		return 0, err
	}
	if n < 2 || n > MaxSamples {
		return 0, &FieldError{Field: field, Text: text,
			Err: fmt.Errorf("%w: must be in [2, %d]", ErrOutOfRange, MaxSamples)}
	}
	return n, nil
}
