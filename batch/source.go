package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/katalvlaran/xsaug/augment"
	"github.com/katalvlaran/xsaug/config"
	"github.com/katalvlaran/xsaug/fit"
	"github.com/katalvlaran/xsaug/model"
	"github.com/katalvlaran/xsaug/plot"
	"github.com/katalvlaran/xsaug/tabular"
)

// ConfigSource builds jobs from the entries of a configuration file.
type ConfigSource struct {
	File     *config.File
	Registry *model.Registry // nil: model.Default
	BaseDir  string
}

// Job decodes entry name, resolves its model, checks its plot settings and
// reads its input table.
func (s *ConfigSource) Job(ctx context.Context, name string) (*augment.Job, error) {
	e, err := s.File.Entry(name)
	if err != nil {
		return nil, augment.WithKind(augment.KindConfig, err)
	}
	m, err := e.Model(s.Registry)
	if err != nil {
		return nil, fmt.Errorf("fit.func: %w", err)
	}
	if err := checkPlot(e); err != nil {
		return nil, augment.WithKind(augment.KindConfig, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := tabular.ReadFile(resolve(s.BaseDir, e.Inp), e.Columns())
	if err != nil {
		return nil, augment.WithKind(inputKind(err), err)
	}

	return &augment.Job{
		Name:          name,
		Data:          data,
		Window:        e.Window(),
		Model:         m,
		Guess:         e.Guess(),
		Extrapolation: e.Extrapolation(),
		FitOptions:    []fit.Option{fit.WithMaxIterations(e.Fit.MaxIter)},
	}, nil
}

// checkPlot rejects formats and markers the renderer cannot honour, before
// any output is produced.
func checkPlot(e *config.Entry) error {
	for _, f := range e.Plt.Fmts {
		if _, err := plot.ParseFormat(f); err != nil {
			return fmt.Errorf("plt.fmts: %w", err)
		}
	}
	if len(e.Plt.Fmts) == 0 {
		return nil
	}
	if _, err := plot.ParseMarker(e.Plt.Dat.Mrk); err != nil {
		return fmt.Errorf("plt.dat.mrk: %w", err)
	}
	if _, err := plot.ParseMarker(e.Plt.Extrap.Mrk); err != nil {
		return fmt.Errorf("plt.extrap.mrk: %w", err)
	}

	return nil
}

func resolve(base, path string) string {
	if base == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(base, path)
}
