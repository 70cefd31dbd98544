package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/xsaug/cmd/xsaug/cmd"
)

const batchYAML = `
log: {level: warn, format: json}
xs_of_int: [ref, late]
ref:
  inp: ref.dat
  out_bname: out/ref_aug
  headers: {nrg: E(MeV), xs: XS(mb)}
  nrg: {col: 0, fit_start: 1, fit_stop: 5, extrap_start: 6, extrap_stop: 10, extrap_num: 5}
  xs: {col: 1}
  fit: {func: exp, p0: [10, -0.3]}
  plt: {fmts: [svg]}
late:
  inp: ref.dat
  out_bname: out/late
  headers: {nrg: E, xs: XS}
  nrg: {col: 0, fit_start: 100, fit_stop: 200, extrap_start: 201, extrap_stop: 300, extrap_num: 3}
  xs: {col: 1}
  fit: {func: exp, p0: [10, -0.3]}
`

func workspace(t *testing.T) (dir, cfg string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ref.dat"),
		[]byte("# E XS\n1 10\n2 7.4\n3 5.5\n4 4.1\n5 3.0\n"), 0o644))
	cfg = filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(batchYAML), 0o644))

	return dir, cfg
}

func execute(args ...string) (string, error) {
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestAugment_Only(t *testing.T) {
	dir, cfg := workspace(t)
	prom := filepath.Join(dir, "xsaug.prom")

	out, err := execute("augment", cfg, "--base-dir", dir, "--only", "ref", "--metrics-file", prom, "--log-level", "error")
	require.NoError(t, err, out)
	assert.Contains(t, out, "ok    ref")
	assert.Contains(t, out, "10 rows")

	_, err = os.Stat(filepath.Join(dir, "out", "ref_aug.dat"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "out", "ref_aug.svg"))
	assert.NoError(t, err)

	b, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(b), `xsaug_entries_total{status="ok"} 1`)
}

func TestAugment_FailureExitStatus(t *testing.T) {
	dir, cfg := workspace(t)

	out, err := execute("augment", cfg, "--base-dir", dir, "--workers", "2", "--log-level", "disabled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 entries failed")
	assert.Contains(t, out, "FAIL  late")
	assert.Contains(t, out, "empty_window")

	_, statErr := os.Stat(filepath.Join(dir, "out", "ref_aug.dat"))
	assert.NoError(t, statErr, "sibling entry still written")
}

func TestAugment_BadArgs(t *testing.T) {
	dir, cfg := workspace(t)

	_, err := execute("augment", filepath.Join(dir, "batch.txt"))
	assert.Error(t, err)

	_, err = execute("augment", cfg, "--only", "nope")
	assert.ErrorContains(t, err, "not listed")

	_, err = execute("augment")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	dir, _ := workspace(t)
	cfg := filepath.Join(dir, "conv.yml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
xs_of_int: [b]
b:
  inp: ref.dat
  out: ref_b.dat
  headers: {nrg: E(MeV), xs: XS(b)}
  nrg: {col: 0}
  xs: {col: 1, multiply_by: 0.001}
`), 0o644))

	_, err := execute("convert", cfg, "--base-dir", dir, "--log-level", "disabled")
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "ref_b.dat"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "# E(MeV) XS(b)\n1 0.01\n2 0.0074\n"), string(b))
}

func TestModelsAndVersion(t *testing.T) {
	out, err := execute("models")
	require.NoError(t, err)
	assert.Contains(t, out, "single-exponential")
	assert.Contains(t, out, "double-exponential")
	assert.Contains(t, out, "exp2")
	assert.Contains(t, out, "a*exp(b*x) + c*exp(d*x)")

	out, err = execute("version")
	require.NoError(t, err)
	assert.Equal(t, "xsaug version dev\n", out)
}
