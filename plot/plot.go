package plot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/katalvlaran/xsaug/series"
)

// ErrNoData indicates a figure whose layers hold no points.
var ErrNoData = errors.New("plot: nothing to draw")

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Layer is one plotted series.
type Layer struct {
	Label  string
	Marker string // format string, see ParseMarker
	Data   series.Series
}

// Figure describes one chart. XMin/XMax fix the x axis when XMax > XMin.
type Figure struct {
	Title         string
	XLabel        string
	YLabel        string
	XMin, XMax    float64
	Width, Height int // zero: DefaultWidth, DefaultHeight
	Layers        []Layer
}

var palette = []drawing.Color{chart.ColorBlue, chart.ColorOrange, chart.ColorGreen, chart.ColorRed}

// Render draws fig in format f to w. Empty layers are skipped.
func Render(w io.Writer, fig Figure, f Format) error {
	// Stage 1: Validate
	if _, err := ParseFormat(string(f)); err != nil {
		return err
	}

	// Stage 2: Prepare series
	var (
		all                    []chart.Series
		xmin, xmax, ymin, ymax = math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)
	)
	for i, l := range fig.Layers {
		if len(l.Data) == 0 {
			continue
		}
		m, err := ParseMarker(l.Marker)
		if err != nil {
			return fmt.Errorf("layer %q: %w", l.Label, err)
		}
		xs, ys := l.Data.Energies(), l.Data.CrossSections()
		for j := range xs {
			xmin, xmax = math.Min(xmin, xs[j]), math.Max(xmax, xs[j])
			ymin, ymax = math.Min(ymin, ys[j]), math.Max(ymax, ys[j])
		}
		all = append(all, chart.ContinuousSeries{
			Name:    l.Label,
			XValues: xs,
			YValues: ys,
			Style:   m.style(palette[i%len(palette)]),
		})
	}
	if len(all) == 0 {
		return ErrNoData
	}

	// Stage 3: Axes; go-chart rejects zero-width ranges
	if fig.XMax > fig.XMin {
		xmin, xmax = fig.XMin, fig.XMax
	}
	xmin, xmax = widen(xmin, xmax)
	ymin, ymax = widen(ymin, ymax)

	ch := chart.Chart{
		Title:      fig.Title,
		Width:      orDefault(fig.Width, DefaultWidth),
		Height:     orDefault(fig.Height, DefaultHeight),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: fig.XLabel, Range: &chart.ContinuousRange{Min: xmin, Max: xmax}},
		YAxis:      chart.YAxis{Name: fig.YLabel, Range: &chart.ContinuousRange{Min: ymin, Max: ymax}},
		Series:     all,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	// Stage 4: Render
	if err := ch.Render(f.renderer(), w); err != nil {
		return fmt.Errorf("plot: render %s: %w", f, err)
	}

	return nil
}

// widen pads a degenerate range so the axis has non-zero extent.
func widen(lo, hi float64) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	pad := math.Max(math.Abs(lo)*0.05, 0.5)

	return lo - pad, hi + pad
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}

	return v
}
