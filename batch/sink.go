package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/xsaug/augment"
	"github.com/katalvlaran/xsaug/config"
	"github.com/katalvlaran/xsaug/plot"
	"github.com/katalvlaran/xsaug/tabular"
)

// FileSink writes <out_bname>.dat and one <out_bname>.<fmt> per plot format.
type FileSink struct {
	File    *config.File
	BaseDir string
	Log     zerolog.Logger
}

// Consume writes the outputs of out.
func (s *FileSink) Consume(ctx context.Context, out *augment.Outcome) error {
	e, err := s.File.Entry(out.Job.Name)
	if err != nil {
		return augment.WithKind(augment.KindConfig, err)
	}
	base := resolve(s.BaseDir, e.OutBname)
	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		return augment.WithKind(augment.KindIO, err)
	}

	// Stage 1: table
	var preamble []string
	if e.PreserveComments.Toggle {
		preamble, err = readPreamble(resolve(s.BaseDir, e.Inp), e.PreserveComments)
		if err != nil {
			return augment.WithKind(augment.KindIO, err)
		}
	}
	doc := tabular.Document{
		Preamble:     preamble,
		EnergyHeader: e.Headers.Nrg,
		XSHeader:     e.Headers.XS,
		Rows:         out.Augmented,
	}
	dat := base + ".dat"
	if err := writeFile(dat, func(f *os.File) error { return tabular.Export(f, doc) }); err != nil {
		return augment.WithKind(augment.KindIO, err)
	}
	s.Log.Info().Str("entry", e.Name).Str("path", dat).Int("rows", len(doc.Rows)).Msg("generated")

	// Stage 2: plots
	fig := figure(e, out)
	for _, name := range e.Plt.Fmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		f, err := plot.ParseFormat(name)
		if err != nil {
			return augment.WithKind(augment.KindConfig, err)
		}
		path := base + "." + string(f)
		if err := writeFile(path, func(w *os.File) error { return plot.Render(w, fig, f) }); err != nil {
			return augment.WithKind(augment.KindIO, err)
		}
		s.Log.Info().Str("entry", e.Name).Str("path", path).Msg("generated")
	}

	return nil
}

func figure(e *config.Entry, out *augment.Outcome) plot.Figure {
	fig := plot.Figure{
		Title:  e.Plt.Title,
		XLabel: e.Headers.Nrg,
		YLabel: e.Headers.XS,
		Layers: []plot.Layer{
			{Label: e.Plt.Dat.Lab, Marker: e.Plt.Dat.Mrk, Data: out.Retained},
			{Label: e.Plt.Extrap.Lab, Marker: e.Plt.Extrap.Mrk, Data: out.Extrapolated},
		},
	}
	if e.Plt.Xlim != nil {
		fig.XMin, fig.XMax = e.Plt.Xlim.Min, e.Plt.Xlim.Max
	}

	return fig
}

func readPreamble(path string, p config.Preserve) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return tabular.Preamble(f, p.StartRow, p.StopRow)
}

// writeFile creates path, runs fill and closes, keeping the first error.
func writeFile(path string, fill func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = fill(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// inputKind classifies input read failures.
func inputKind(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return augment.KindIO
	}

	return augment.KindInvalidInput
}
