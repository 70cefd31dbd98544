package batch_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xsaug/augment"
	"github.com/katalvlaran/xsaug/batch"
	"github.com/katalvlaran/xsaug/config"
	"github.com/katalvlaran/xsaug/model"
)

const batchYAML = `
xs_of_int: [ref, nowindow, gauss, pdf, missing_input]
ref:
  inp: %[1]s
  out_bname: out/ref_aug
  headers: {nrg: E(MeV), xs: XS(mb)}
  nrg: {col: 0, fit_start: 1, fit_stop: 5, extrap_start: 6, extrap_stop: 10, extrap_num: 5}
  xs: {col: 1}
  fit: {func: exp, p0: [10, -0.3]}
  plt:
    title: reference
    dat: {lab: Data, mrk: o}
    extrap: {lab: Extrapolated, mrk: "--"}
    xlim: {min: 0, max: 11}
    fmts: [png, SVG]
  preserve_comments: {toggle: true, start_row: 0, stop_row: 0}
nowindow:
  inp: %[1]s
  out_bname: out/nowindow
  headers: {nrg: E, xs: XS}
  nrg: {col: 0, fit_start: 50, fit_stop: 60, extrap_start: 61, extrap_stop: 70, extrap_num: 3}
  xs: {col: 1}
  fit: {func: exp, p0: [10, -0.3]}
gauss:
  inp: %[1]s
  out_bname: out/gauss
  headers: {nrg: E, xs: XS}
  nrg: {col: 0, fit_start: 1, fit_stop: 5, extrap_start: 6, extrap_stop: 10, extrap_num: 3}
  xs: {col: 1}
  fit: {func: gaussian, p0: [1, 1]}
pdf:
  inp: %[1]s
  out_bname: out/pdf
  headers: {nrg: E, xs: XS}
  nrg: {col: 0, fit_start: 1, fit_stop: 5, extrap_start: 6, extrap_stop: 10, extrap_num: 3}
  xs: {col: 1}
  fit: {func: exp, p0: [10, -0.3]}
  plt: {fmts: [pdf]}
missing_input:
  inp: does/not/exist.dat
  out_bname: out/missing
  headers: {nrg: E, xs: XS}
  nrg: {col: 0, fit_start: 1, fit_stop: 5, extrap_start: 6, extrap_stop: 10, extrap_num: 3}
  xs: {col: 1}
  fit: {func: exp, p0: [10, -0.3]}
`

func loadBatch(t *testing.T) (*config.File, string) {
	t.Helper()
	inp, err := filepath.Abs(filepath.Join("testdata", "ref.dat"))
	require.NoError(t, err)
	f, err := config.Parse([]byte(fmt.Sprintf(batchYAML, inp)))
	require.NoError(t, err)

	return f, t.TempDir()
}

func TestBatch_EndToEnd(t *testing.T) {
	f, dir := loadBatch(t)
	var logs bytes.Buffer
	log := zerolog.New(&logs)

	orch := augment.New(
		&batch.ConfigSource{File: f, BaseDir: dir},
		&batch.FileSink{File: f, BaseDir: dir, Log: log},
		augment.WithLogger(log))
	rep := orch.Run(context.Background(), f.Names)

	kinds := map[string]string{}
	for _, e := range rep.Entries {
		kinds[e.Name] = e.Kind
	}
	assert.Equal(t, map[string]string{
		"ref":           "",
		"nowindow":      augment.KindEmptyWindow,
		"gauss":         augment.KindUnknownModel,
		"pdf":           augment.KindConfig,
		"missing_input": augment.KindIO,
	}, kinds)

	b, err := os.ReadFile(filepath.Join(dir, "out", "ref_aug.dat"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, 12, "1 preserved + 1 header + 10 rows")
	assert.Equal(t, "# Reference decay series", lines[0])
	assert.Equal(t, "# E(MeV) XS(mb)", lines[1])
	assert.Equal(t, []string{"1 10", "2 7.4", "3 5.5", "4 4.1", "5 3"}, lines[2:7])
	for i, e := range []string{"6", "7", "8", "9", "10"} {
		assert.True(t, strings.HasPrefix(lines[7+i], e+" "), lines[7+i])
	}

	png, err := os.ReadFile(filepath.Join(dir, "out", "ref_aug.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	svg, err := os.ReadFile(filepath.Join(dir, "out", "ref_aug.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = os.Stat(filepath.Join(dir, "out", "pdf.dat"))
	assert.True(t, os.IsNotExist(err), "rejected before any output")
	assert.Contains(t, logs.String(), `"message":"generated"`)
}

func TestBatch_Idempotent(t *testing.T) {
	f, dir := loadBatch(t)
	run := func() []byte {
		orch := augment.New(&batch.ConfigSource{File: f, BaseDir: dir}, &batch.FileSink{File: f, BaseDir: dir, Log: zerolog.Nop()})
		require.NoError(t, orch.Run(context.Background(), []string{"ref"}).Err())
		b, err := os.ReadFile(filepath.Join(dir, "out", "ref_aug.dat"))
		require.NoError(t, err)
		return b
	}
	assert.Equal(t, run(), run())
}

func TestConfigSource_Job(t *testing.T) {
	f, dir := loadBatch(t)
	src := &batch.ConfigSource{File: f, BaseDir: dir}

	job, err := src.Job(context.Background(), "ref")
	require.NoError(t, err)
	assert.Equal(t, "ref", job.Name)
	assert.Len(t, job.Data, 5)
	assert.Equal(t, model.SingleExponential, job.Model.Kind())
	assert.Equal(t, []float64{10, -0.3}, job.Guess)
	assert.Equal(t, 5, job.Extrapolation.Count)

	_, err = src.Job(context.Background(), "absent")
	assert.ErrorIs(t, err, config.ErrMissingEntry)
	assert.Equal(t, augment.KindConfig, augment.Kind(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Job(ctx, "ref")
	assert.Equal(t, augment.KindCanceled, augment.Kind(err))
}

func TestConfigSource_CustomRegistry(t *testing.T) {
	f, dir := loadBatch(t)
	reg := model.NewRegistry()
	require.NoError(t, reg.Register("gaussian", model.Single()))

	job, err := (&batch.ConfigSource{File: f, Registry: reg, BaseDir: dir}).Job(context.Background(), "gauss")
	require.NoError(t, err)
	assert.Equal(t, model.SingleExponential, job.Model.Kind())
}

func TestConverter(t *testing.T) {
	dir := t.TempDir()
	inp := filepath.Join(dir, "kev.dat")
	require.NoError(t, os.WriteFile(inp, []byte("# E(keV) XS(mb)\n1000 2000 9\n2500 500 9\n"), 0o644))

	f, err := config.Parse([]byte(`
xs_of_int: [kev, bad]
kev:
  inp: kev.dat
  out: conv/mev.dat
  headers: {nrg: E(MeV), xs: XS(b)}
  nrg: {col: 0, multiply_by: 0.001}
  xs: {col: 1, multiply_by: 0.001}
  preserve_comments: {toggle: true, start_row: 0, stop_row: 0}
bad:
  inp: kev.dat
  out: conv/bad.dat
  headers: {nrg: E, xs: XS}
  nrg: {col: 0}
  xs: {col: 7}
`))
	require.NoError(t, err)

	c := &batch.Converter{File: f, BaseDir: dir, Log: zerolog.Nop()}
	err = c.Run(context.Background(), f.Names)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `entry "bad"`)
	assert.Equal(t, augment.KindInvalidInput, augment.Kind(err))

	b, err := os.ReadFile(filepath.Join(dir, "conv", "mev.dat"))
	require.NoError(t, err)
	assert.Equal(t, "# E(keV) XS(mb)\n# E(MeV) XS(b)\n1 2\n2.5 0.5\n", string(b))
}
