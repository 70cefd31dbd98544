package config

import (
	"strings"

	"github.com/katalvlaran/xsaug/extrap"
	"github.com/katalvlaran/xsaug/model"
	"github.com/katalvlaran/xsaug/series"
	"github.com/katalvlaran/xsaug/tabular"
)

// Headers are the column titles written to the output header line and used
// as plot axis names.
type Headers struct {
	Nrg string `yaml:"nrg" validate:"required"`
	XS  string `yaml:"xs" validate:"required"`
}

// Energy locates the energy column and carries the fit and extrapolation ranges.
type Energy struct {
	Col         int     `yaml:"col" validate:"gte=0"`
	FitStart    float64 `yaml:"fit_start"`
	FitStop     float64 `yaml:"fit_stop" validate:"gtefield=FitStart"`
	ExtrapStart float64 `yaml:"extrap_start"`
	ExtrapStop  float64 `yaml:"extrap_stop" validate:"gtefield=ExtrapStart"`
	ExtrapNum   int     `yaml:"extrap_num" validate:"gte=1"`
}

// Column locates the cross-section column.
type Column struct {
	Col int `yaml:"col" validate:"gte=0"`
}

// Fit names the model and its initial guess.
type Fit struct {
	Func    string    `yaml:"func" validate:"required"`
	P0      []float64 `yaml:"p0" validate:"required,min=1"`
	MaxIter int       `yaml:"max_iter" default:"500" validate:"gte=1"`
}

// Preserve copies raw input lines StartRow..StopRow (zero-based, inclusive)
// to the top of the output when Toggle is set.
type Preserve struct {
	Toggle   bool `yaml:"toggle"`
	StartRow int  `yaml:"start_row" validate:"gte=0"`
	StopRow  int  `yaml:"stop_row" validate:"gtefield=StartRow"`
}

// Series styles one plotted series.
type Series struct {
	Lab string `yaml:"lab"`
	Mrk string `yaml:"mrk"`
}

// Range is an optional axis range; it is ignored unless Max > Min.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Plot configures the figure. An empty Fmts list disables plotting.
type Plot struct {
	Style  string   `yaml:"style"`
	Title  string   `yaml:"title"`
	Dat    Series   `yaml:"dat"`
	Extrap Series   `yaml:"extrap"`
	Xlim   *Range   `yaml:"xlim"`
	Fmts   []string `yaml:"fmts" validate:"dive,required"`
}

// Entry is one augmentation job description.
type Entry struct {
	Name             string   `yaml:"-"`
	Inp              string   `yaml:"inp" validate:"required"`
	OutBname         string   `yaml:"out_bname" validate:"required"`
	Headers          Headers  `yaml:"headers"`
	Nrg              Energy   `yaml:"nrg"`
	XS               Column   `yaml:"xs"`
	Fit              Fit      `yaml:"fit"`
	Plt              Plot     `yaml:"plt"`
	PreserveComments Preserve `yaml:"preserve_comments"`
}

// Entry decodes and validates the augmentation entry called name.
func (f *File) Entry(name string) (*Entry, error) {
	e := &Entry{}
	if err := f.decode(name, e); err != nil {
		return nil, err
	}
	e.Name = name
	e.Plt.Dat.Mrk = orDefault(e.Plt.Dat.Mrk, "o")
	e.Plt.Extrap.Mrk = orDefault(e.Plt.Extrap.Mrk, "-")
	e.Plt.Dat.Lab = orDefault(e.Plt.Dat.Lab, "Data")
	e.Plt.Extrap.Lab = orDefault(e.Plt.Extrap.Lab, "Extrapolated")
	for i, s := range e.Plt.Fmts {
		e.Plt.Fmts[i] = strings.ToLower(s)
	}

	return e, nil
}

// Columns returns the input column selection.
func (e *Entry) Columns() tabular.Columns {
	return tabular.Columns{Energy: e.Nrg.Col, XS: e.XS.Col}
}

// Window returns the fit window.
func (e *Entry) Window() series.Window {
	return series.Window{Start: e.Nrg.FitStart, Stop: e.Nrg.FitStop}
}

// Extrapolation returns the extrapolation grid.
func (e *Entry) Extrapolation() extrap.Spec {
	return extrap.Spec{Start: e.Nrg.ExtrapStart, Stop: e.Nrg.ExtrapStop, Count: e.Nrg.ExtrapNum}
}

// Model resolves fit.func strictly against reg (model.Default when nil).
// An unknown identifier yields model.ErrUnknownModel.
func (e *Entry) Model(reg *model.Registry) (model.Model, error) {
	if reg == nil {
		reg = model.Default
	}

	return reg.Lookup(e.Fit.Func)
}

// Guess returns a copy of fit.p0.
func (e *Entry) Guess() []float64 { return append([]float64(nil), e.Fit.P0...) }

// ScaledColumn is a column with a unit conversion factor.
type ScaledColumn struct {
	Col        int     `yaml:"col" validate:"gte=0"`
	MultiplyBy float64 `yaml:"multiply_by" default:"1"`
}

// Conversion is one unit-conversion job description.
type Conversion struct {
	Name             string       `yaml:"-"`
	Inp              string       `yaml:"inp" validate:"required"`
	Out              string       `yaml:"out" validate:"required"`
	Headers          Headers      `yaml:"headers"`
	Nrg              ScaledColumn `yaml:"nrg"`
	XS               ScaledColumn `yaml:"xs"`
	PreserveComments Preserve     `yaml:"preserve_comments"`
}

// Conversion decodes and validates the conversion entry called name.
// A multiply_by of 0 is indistinguishable from an absent one and becomes 1.
func (f *File) Conversion(name string) (*Conversion, error) {
	c := &Conversion{}
	if err := f.decode(name, c); err != nil {
		return nil, err
	}
	c.Name = name

	return c, nil
}

// Columns returns the input column selection.
func (c *Conversion) Columns() tabular.Columns {
	return tabular.Columns{Energy: c.Nrg.Col, XS: c.XS.Col}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}

	return v
}
