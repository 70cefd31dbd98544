package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"github.com/katalvlaran/xsaug/augment"
	"github.com/katalvlaran/xsaug/config"
	"github.com/katalvlaran/xsaug/tabular"
)

// Converter rescales the energy and cross-section columns of conversion
// entries and writes them to the entry's out path.
type Converter struct {
	File    *config.File
	BaseDir string
	Log     zerolog.Logger
}

// Convert processes one entry and returns the written path.
func (c *Converter) Convert(name string) (string, error) {
	e, err := c.File.Conversion(name)
	if err != nil {
		return "", augment.WithKind(augment.KindConfig, err)
	}
	inp := resolve(c.BaseDir, e.Inp)
	data, err := tabular.ReadFile(inp, e.Columns())
	if err != nil {
		return "", augment.WithKind(inputKind(err), err)
	}

	var preamble []string
	if e.PreserveComments.Toggle {
		if preamble, err = readPreamble(inp, e.PreserveComments); err != nil {
			return "", augment.WithKind(augment.KindIO, err)
		}
	}
	doc := tabular.Document{
		Preamble:     preamble,
		EnergyHeader: e.Headers.Nrg,
		XSHeader:     e.Headers.XS,
		Rows:         data.Scale(e.Nrg.MultiplyBy, e.XS.MultiplyBy),
	}

	out := resolve(c.BaseDir, e.Out)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return "", augment.WithKind(augment.KindIO, err)
	}
	if err := writeFile(out, func(f *os.File) error { return tabular.Export(f, doc) }); err != nil {
		return "", augment.WithKind(augment.KindIO, err)
	}

	return out, nil
}

// Run converts names in order. Failures are logged and combined; they never
// stop the remaining entries.
func (c *Converter) Run(ctx context.Context, names []string) error {
	var errs error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %q: %w", name, err))
			continue
		}
		path, err := c.Convert(name)
		if err != nil {
			c.Log.Error().Str("entry", name).Str("kind", augment.Kind(err)).Err(err).Msg("conversion failed")
			errs = multierr.Append(errs, fmt.Errorf("entry %q: %w", name, err))
			continue
		}
		c.Log.Info().Str("entry", name).Str("path", path).Msg("generated")
	}

	return errs
}
