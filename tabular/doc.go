// Package tabular reads and writes the whitespace-separated two-column text
// files that carry tabulated cross sections.
//
// Input format:
//
//	# free-form comment lines, kept verbatim on request
//	1.0   10.0   0.3
//	2.0    7.4   0.2
//
// Cells are separated by any run of blanks. A '#' starts a comment that runs
// to the end of the line; lines that are empty after stripping comments are
// skipped. Columns are addressed by zero-based index.
//
// Output format (Export):
//
//	<preamble lines, verbatim>
//	# <energy header> <cross-section header>
//	<energy> <xs>
//
// Numbers are written with six significant digits and trailing zeros
// removed, switching to exponent notation below 1e-4 and from 1e6 upwards.
package tabular
