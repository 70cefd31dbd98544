package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/xsaug/config"
	"github.com/katalvlaran/xsaug/extrap"
	"github.com/katalvlaran/xsaug/model"
	"github.com/katalvlaran/xsaug/series"
	"github.com/katalvlaran/xsaug/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "xsaug.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, f.Workers)
	assert.Equal(t, "debug", f.Log.Level)
	assert.Equal(t, "json", f.Log.Format)
	assert.Equal(t, "stderr", f.Log.Output, "default")
	assert.Equal(t, []string{"mo100_gn", "broken"}, f.Names)
	assert.Equal(t, filepath.Join("testdata", "xsaug.yaml"), f.Path())
}

func TestEntry(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "xsaug.yaml"))
	require.NoError(t, err)

	e, err := f.Entry("mo100_gn")
	require.NoError(t, err)
	assert.Equal(t, "mo100_gn", e.Name)
	assert.Equal(t, "out/mo100_aug", e.OutBname)
	assert.Equal(t, tabular.Columns{Energy: 0, XS: 1}, e.Columns())
	assert.Equal(t, series.Window{Start: 14, Stop: 20}, e.Window())
	assert.Equal(t, extrap.Spec{Start: 20.5, Stop: 40, Count: 40}, e.Extrapolation())
	assert.Equal(t, []float64{1, -0.1, 1, -0.01}, e.Guess())
	assert.Equal(t, 500, e.Fit.MaxIter, "default")
	assert.Equal(t, []string{"png", "svg"}, e.Plt.Fmts, "lowercased")
	require.NotNil(t, e.Plt.Xlim)
	assert.Equal(t, 40.0, e.Plt.Xlim.Max)
	assert.True(t, e.PreserveComments.Toggle)
	assert.Equal(t, 2, e.PreserveComments.StopRow)

	m, err := e.Model(nil)
	require.NoError(t, err)
	assert.Equal(t, model.DoubleExponential, m.Kind())
}

func TestEntry_InvalidIsIsolated(t *testing.T) {
	f, err := config.Load(filepath.Join("testdata", "xsaug.yaml"))
	require.NoError(t, err, "a bad entry must not fail the load")

	_, err = f.Entry("broken")
	require.ErrorIs(t, err, config.ErrInvalidEntry)
	assert.Contains(t, err.Error(), "nrg.fit_stop must be >= fit_start")
	assert.Contains(t, err.Error(), "nrg.extrap_num must be >= 1")

	_, err = f.Entry("missing")
	assert.ErrorIs(t, err, config.ErrMissingEntry)
	_, err = f.Entry("workers")
	assert.ErrorIs(t, err, config.ErrMissingEntry, "scalar keys are not entries")
}

func TestEntry_Defaults(t *testing.T) {
	f, err := config.Parse([]byte(`
xs_of_int: [a]
a:
  inp: a.dat
  out_bname: a_aug
  headers: {nrg: E, xs: XS}
  nrg: {col: 0, fit_start: 1, fit_stop: 5, extrap_start: 6, extrap_stop: 10, extrap_num: 5}
  xs: {col: 1}
  fit: {func: Exponential, p0: [10, -0.3]}
`))
	require.NoError(t, err)
	assert.Equal(t, 1, f.Workers)
	assert.Equal(t, "info", f.Log.Level)
	assert.Equal(t, "console", f.Log.Format)

	e, err := f.Entry("a")
	require.NoError(t, err)
	assert.Equal(t, "o", e.Plt.Dat.Mrk)
	assert.Equal(t, "-", e.Plt.Extrap.Mrk)
	assert.Equal(t, "Data", e.Plt.Dat.Lab)
	assert.Nil(t, e.Plt.Xlim)
	assert.Empty(t, e.Plt.Fmts)
	assert.False(t, e.PreserveComments.Toggle)
}

func TestEntry_UnknownModelIsNotAConfigError(t *testing.T) {
	f, err := config.Parse([]byte(`
xs_of_int: [a]
a:
  inp: a.dat
  out_bname: a_aug
  headers: {nrg: E, xs: XS}
  nrg: {col: 0, fit_start: 1, fit_stop: 5, extrap_start: 6, extrap_stop: 10, extrap_num: 5}
  xs: {col: 1}
  fit: {func: gaussian, p0: [1, 2]}
`))
	require.NoError(t, err)
	e, err := f.Entry("a")
	require.NoError(t, err)

	_, err = e.Model(nil)
	assert.ErrorIs(t, err, model.ErrUnknownModel)
	assert.NotErrorIs(t, err, config.ErrInvalidEntry)
}

func TestConversion(t *testing.T) {
	f, err := config.Parse([]byte(`
xs_of_int: [kev, plain]
kev:
  inp: a.dat
  out: a_mev.dat
  headers: {nrg: E(MeV), xs: XS(b)}
  nrg: {col: 0, multiply_by: 1.0e-3}
  xs: {col: 2, multiply_by: 1.0e-3}
  preserve_comments: {toggle: true, start_row: 0, stop_row: 0}
plain:
  inp: b.dat
  out: b2.dat
  headers: {nrg: E, xs: XS}
  nrg: {col: 0}
  xs: {col: 1}
`))
	require.NoError(t, err)

	c, err := f.Conversion("kev")
	require.NoError(t, err)
	assert.Equal(t, tabular.Columns{Energy: 0, XS: 2}, c.Columns())
	assert.Equal(t, 1e-3, c.Nrg.MultiplyBy)

	p, err := f.Conversion("plain")
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Nrg.MultiplyBy, "default factor")
	assert.Equal(t, 1.0, p.XS.MultiplyBy)
}

func TestParse_TopLevelErrors(t *testing.T) {
	cases := map[string]string{
		"no entries":     "workers: 1\n",
		"empty list":     "xs_of_int: []\n",
		"duplicate name": "xs_of_int: [a, a]\n",
		"zero workers":   "workers: -1\nxs_of_int: [a]\n",
		"bad log level":  "log: {level: loud}\nxs_of_int: [a]\n",
		"bad log format": "log: {format: xml}\nxs_of_int: [a]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Parse([]byte("xs_of_int: [a\n"))
	assert.Error(t, err, "syntax error")
}

func TestLoad_FileName(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "batch.txt")
	require.NoError(t, os.WriteFile(txt, []byte("xs_of_int: [a]\n"), 0o644))
	_, err := config.Load(txt)
	assert.ErrorIs(t, err, config.ErrFileName)

	assert.True(t, config.IsConfigName("a/B.YML"))
	assert.True(t, config.IsConfigName("batch.yaml"))
	assert.False(t, config.IsConfigName("batch.yaml.bak"))

	_, err = config.Load(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
