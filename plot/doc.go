// Package plot renders the measured and extrapolated parts of an augmented
// series as a PNG or SVG figure with go-chart.
//
// Series styles use the short matplotlib format strings found in existing
// batch files: an optional colour letter, an optional point marker and an
// optional line style, in any order.
//
//	"o"    points          "-"   solid line
//	"ro"   red points      "--"  dashed line
//	"s-"   points + line   ":"   dotted line
//
// Unsupported output formats (pdf, eps, ...) fail with ErrUnsupportedFormat.
package plot
