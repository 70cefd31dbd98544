package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	// ErrUnsupportedFormat indicates an output format go-chart cannot render.
	ErrUnsupportedFormat = errors.New("plot: unsupported output format")

	// ErrBadMarker indicates an unparsable series format string.
	ErrBadMarker = errors.New("plot: invalid marker format")
)

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat maps a case-insensitive extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnsupportedFormat)
}

func (f Format) renderer() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}

	return chart.PNG
}

// Line styles.
const (
	NoLine = iota
	Solid
	Dashed
	Dotted
	DashDot
)

// Marker is a parsed series format string.
type Marker struct {
	Dots  bool
	Line  int            // NoLine, Solid, Dashed, Dotted or DashDot
	Color drawing.Color  // zero: caller's default
}

var (
	lineStyles = []struct {
		tok  string
		line int
	}{ // longest first
		{"--", Dashed}, {"-.", DashDot}, {"-", Solid}, {":", Dotted},
	}
	pointMarkers = ".,ov^<>12348spP*hH+xXDd|_"
	colorLetters = map[rune]drawing.Color{
		'b': chart.ColorBlue,
		'g': chart.ColorGreen,
		'r': chart.ColorRed,
		'c': chart.ColorCyan,
		'm': drawing.ColorFromHex("bf00bf"),
		'y': chart.ColorYellow,
		'k': chart.ColorBlack,
		'w': chart.ColorWhite,
	}
)

// ParseMarker parses a format string such as "o", "--", "rs-" or "k:".
// An empty string means a solid line.
func ParseMarker(s string) (Marker, error) {
	var m Marker
	rest := strings.TrimSpace(s)
	if rest == "" {
		m.Line = Solid
		return m, nil
	}
	for _, ls := range lineStyles {
		if i := strings.Index(rest, ls.tok); i >= 0 {
			m.Line = ls.line
			rest = rest[:i] + rest[i+len(ls.tok):]
			break
		}
	}
	for _, r := range rest {
		switch {
		case strings.ContainsRune(pointMarkers, r) && !m.Dots:
			m.Dots = true
		case colorLetters[r] != (drawing.Color{}) && m.Color == (drawing.Color{}):
			m.Color = colorLetters[r]
		default:
			return Marker{}, fmt.Errorf("%q: unexpected %q: %w", s, r, ErrBadMarker)
		}
	}
	if !m.Dots && m.Line == NoLine {
		m.Line = Solid // colour only
	}

	return m, nil
}

// style converts m into a go-chart style; fallback colours an uncoloured marker.
func (m Marker) style(fallback drawing.Color) chart.Style {
	col := m.Color
	if col == (drawing.Color{}) {
		col = fallback
	}
	col = col.WithAlpha(128)

	st := chart.Style{StrokeColor: col, StrokeWidth: 1.5}
	switch m.Line {
	case NoLine:
		st.StrokeWidth = chart.Disabled
	case Dashed:
		st.StrokeDashArray = []float64{6, 4}
	case Dotted:
		st.StrokeDashArray = []float64{1.5, 3}
	case DashDot:
		st.StrokeDashArray = []float64{6, 3, 1.5, 3}
	}
	if m.Dots {
		st.DotWidth = 4
		st.DotColor = col
	}

	return st
}
