package tabular

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/xsaug/series"
)

var (
	// ErrColumnOutOfRange indicates a data row with fewer cells than a requested column.
	ErrColumnOutOfRange = errors.New("tabular: column index out of range")

	// ErrParse indicates a cell that is not a number.
	ErrParse = errors.New("tabular: cannot parse cell")

	// ErrNoData indicates an input with no data rows.
	ErrNoData = errors.New("tabular: no data rows")

	// ErrInvalidColumns indicates a negative column index.
	ErrInvalidColumns = errors.New("tabular: negative column index")

	// ErrInvalidRange indicates a preamble range with start > stop or start < 0.
	ErrInvalidRange = errors.New("tabular: invalid row range")
)

const (
	commentMark  = "#"
	maxLineBytes = 1 << 20
	sigDigits    = 6
)

// Columns selects the energy and cross-section columns (zero-based).
type Columns struct {
	Energy int
	XS     int
}

// Validate rejects negative indices.
func (c Columns) Validate() error {
	if c.Energy < 0 || c.XS < 0 {
		return fmt.Errorf("energy=%d xs=%d: %w", c.Energy, c.XS, ErrInvalidColumns)
	}

	return nil
}

// Read parses r and returns the selected columns as a Series, in file order.
//
// Errors: ErrInvalidColumns, ErrColumnOutOfRange and ErrParse (both wrapped
// with the 1-based line number), ErrNoData, or the reader's error.
func Read(r io.Reader, cols Columns) (series.Series, error) {
	if err := cols.Validate(); err != nil {
		return nil, err
	}
	need := max(cols.Energy, cols.XS) + 1

	var out series.Series
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.Index(text, commentMark); i >= 0 {
			text = text[:i]
		}
		cells := strings.Fields(text)
		if len(cells) == 0 {
			continue
		}
		if len(cells) < need {
			return nil, fmt.Errorf("line %d has %d cells, need %d: %w", line, len(cells), need, ErrColumnOutOfRange)
		}
		e, err := parseCell(cells[cols.Energy])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		x, err := parseCell(cells[cols.XS])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, series.Sample{Energy: e, XS: x})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tabular: read: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}

	return out, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string, cols Columns) (series.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Read(f, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Preamble returns raw lines start..stop (zero-based, inclusive) of r without
// their line terminators. Lines past the end of r are simply absent.
func Preamble(r io.Reader, start, stop int) ([]string, error) {
	if start < 0 || start > stop {
		return nil, fmt.Errorf("[%d, %d]: %w", start, stop, ErrInvalidRange)
	}

	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for i := 0; i <= stop && sc.Scan(); i++ {
		if i >= start {
			out = append(out, sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tabular: preamble: %w", err)
	}

	return out, nil
}

// Document is everything Export writes.
type Document struct {
	Preamble     []string // written verbatim, one per line
	EnergyHeader string
	XSHeader     string
	Rows         series.Series
}

// Export writes doc to w: preamble, the "# <energy> <xs>" header line, then
// one "<energy> <xs>" row per sample.
func Export(w io.Writer, doc Document) error {
	bw := bufio.NewWriter(w)
	for _, l := range doc.Preamble {
		bw.WriteString(l)
		bw.WriteByte('\n')
	}
	fmt.Fprintf(bw, "%s %s %s\n", commentMark, doc.EnergyHeader, doc.XSHeader)
	for _, s := range doc.Rows {
		bw.WriteString(FormatFloat(s.Energy))
		bw.WriteByte(' ')
		bw.WriteString(FormatFloat(s.XS))
		bw.WriteByte('\n')
	}

	return bw.Flush() // bufio.Writer keeps the first write error
}

// FormatFloat renders v with six significant digits in the shortest of fixed
// or exponent notation, e.g. 0.5, 13.4986, 1e-05, 1.23457e+06, nan, -inf.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	return strconv.FormatFloat(v, 'g', sigDigits, 64)
}

func parseCell(cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", cell, ErrParse)
	}

	return v, nil
}
