package extrap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/xsaug/extrap"
	"github.com/katalvlaran/xsaug/fit"
	"github.com/katalvlaran/xsaug/model"
	"github.com/katalvlaran/xsaug/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid(t *testing.T) {
	cases := []struct {
		name string
		spec extrap.Spec
		want []float64
	}{
		{"single point", extrap.Spec{Start: 6, Stop: 10, Count: 1}, []float64{6}},
		{"two points", extrap.Spec{Start: 6, Stop: 10, Count: 2}, []float64{6, 10}},
		{"five points", extrap.Spec{Start: 6, Stop: 10, Count: 5}, []float64{6, 7, 8, 9, 10}},
		{"degenerate range", extrap.Spec{Start: 3, Stop: 3, Count: 3}, []float64{3, 3, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extrap.Grid(tc.spec)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

// TestGrid_ExactStop checks the last point equals Stop bit-for-bit.
func TestGrid_ExactStop(t *testing.T) {
	spec := extrap.Spec{Start: 0.1, Stop: 0.7, Count: 7}
	got, err := extrap.Grid(spec)
	require.NoError(t, err)
	require.Len(t, got, 7)
	assert.Equal(t, 0.1, got[0])
	assert.Equal(t, 0.7, got[6])
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, 0.1, got[i]-got[i-1], 1e-12, "even spacing")
	}
}

func TestGrid_Invalid(t *testing.T) {
	bad := []extrap.Spec{
		{Start: 0, Stop: 1, Count: 0},
		{Start: 0, Stop: 1, Count: -3},
		{Start: 2, Stop: 1, Count: 3},
		{Start: math.NaN(), Stop: 1, Count: 3},
		{Start: 0, Stop: math.Inf(1), Count: 3},
	}
	for _, s := range bad {
		_, err := extrap.Grid(s)
		assert.ErrorIs(t, err, extrap.ErrInvalidSpec, "%+v", s)
	}
}

func TestEvaluate(t *testing.T) {
	res, err := fit.NewResult(model.Single(), []float64{2, -0.5})
	require.NoError(t, err)

	out, err := extrap.Evaluate(extrap.Spec{Start: 0, Stop: 4, Count: 3}, res)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, e := range []float64{0, 2, 4} {
		assert.Equal(t, e, out[i].Energy)
		assert.InDelta(t, 2*math.Exp(-0.5*e), out[i].XS, 1e-15)
	}

	_, err = extrap.Evaluate(extrap.Spec{Start: 0, Stop: 4, Count: 0}, res)
	assert.ErrorIs(t, err, extrap.ErrInvalidSpec)
	_, err = extrap.Evaluate(extrap.Spec{Start: 0, Stop: 4, Count: 3}, nil)
	assert.ErrorIs(t, err, extrap.ErrNilResult)
}

// TestPipeline runs select → fit → extrapolate → merge on the five-point reference series.
func TestPipeline(t *testing.T) {
	data := series.Series{
		{Energy: 1, XS: 10}, {Energy: 2, XS: 7.4}, {Energy: 3, XS: 5.5},
		{Energy: 4, XS: 4.1}, {Energy: 5, XS: 3.0},
	}
	win := series.Window{Start: 1, Stop: 5}
	spec := extrap.Spec{Start: 6, Stop: 10, Count: 5}

	run := func() series.Series {
		sel, err := series.Select(data, win)
		require.NoError(t, err)
		res, err := fit.Fit(sel, model.Single(), []float64{10, -0.3})
		require.NoError(t, err)
		tail, err := extrap.Evaluate(spec, res)
		require.NoError(t, err)

		return series.Merge(data, win.Stop, tail)
	}

	out := run()
	require.Len(t, out, 10)
	assert.Equal(t, data, out[:5], "measured prefix verbatim")
	for i, e := range []float64{6, 7, 8, 9, 10} {
		s := out[5+i]
		assert.InDelta(t, e, s.Energy, 1e-12)
		assert.InEpsilon(t, 10*math.Exp(-0.3*(e-1)), s.XS, 0.15)
		if i > 0 {
			assert.Less(t, s.XS, out[4+i].XS, "decaying tail")
		}
	}
	assert.Equal(t, out, run(), "re-run must be bit-identical")
}
