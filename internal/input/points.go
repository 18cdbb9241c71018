package input

import (
	"fmt"
	"image"
	"strings"

	"github.com/wesen/curvelab/pkg/raster"
)

// Points parses a control-point list such as "(0, 0); (10, 20); 30, 5".
// Pairs are separated by ';', coordinates by ','. Separators inside
// function calls are left alone, so "pow(2, 3), 1" is one pair.
func (ev *Evaluator) Points(field, text string, ext raster.Extent) ([]image.Point, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &FieldError{Field: field, Text: text, Err: ErrEmpty}
	}
	var out []image.Point
	for i, pair := range splitTop(text, ';') {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xy := splitTop(unwrap(pair), ',')
		if len(xy) != 2 {
			return nil, &FieldError{Field: field, Text: pair,
				Err: fmt.Errorf("%w: want x, y", ErrNotNumeric)}
		}
		name := fmt.Sprintf("%s[%d].", field, i)
		p, err := ev.Point(name, xy[0], xy[1], ext)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, &FieldError{Field: field, Text: text, Err: ErrEmpty}
	}
	return out, nil
}

// FormatPoints is the inverse of Points.
func FormatPoints(pts []image.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, "; ")
}

// unwrap strips one pair of parentheses enclosing the whole of s.
func unwrap(s string) string {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return s
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 && i < len(s)-1 {
				return s
			}
		}
	}
	return s[1 : len(s)-1]
}

// splitTop splits s on sep occurring outside parentheses.
func splitTop(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
