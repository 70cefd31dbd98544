// Package xsaug augments tabulated nuclear cross sections: it fits an
// exponential model to a window of measured (energy, cross-section) pairs
// and extends the data beyond the measured range with model values.
//
// 🚀 What is xsaug?
//
//	A small toolkit built around one pipeline:
//		• Select: keep the samples inside the fit window
//		• Fit: Levenberg–Marquardt on a·exp(b·x) or a·exp(b·x) + c·exp(d·x)
//		• Extrapolate: evaluate the fit on a linear energy grid
//		• Merge: measured samples up to the window end, then the grid samples
//
// ✨ Why xsaug?
//
//   - Deterministic: no random restarts; reruns give identical output
//   - Isolated: one bad batch entry never stops the others
//   - Batch-file compatible: reads the existing xs_of_int YAML layout
//
// Packages, leaf first:
//
//	series/    Sample, Series, Window; Select, Retain, Merge
//	model/     the two exponential forms and the identifier registry
//	matrix/    dense matrices, LU, Solve, Inverse for the normal equations
//	fit/       Levenberg–Marquardt fitter and Result
//	extrap/    linear grid and model evaluation
//	augment/   Job, Outcome, Orchestrator and failure kinds
//	tabular/   whitespace-separated text input and output
//	config/    YAML batch files (yaml.v3, defaults, validator)
//	plot/      PNG/SVG figures (go-chart)
//	batch/     config-driven Source, file Sink, unit Converter
//	logging/   zerolog setup
//	metrics/   Prometheus recorder and textfile export
//	cmd/xsaug  cobra CLI: augment, convert, models, version
//
// Quick example:
//
//	sel, _ := series.Select(data, series.Window{Start: 1, Stop: 5})
//	res, _ := fit.Fit(sel, model.Single(), []float64{10, -0.3})
//	tail, _ := extrap.Evaluate(extrap.Spec{Start: 6, Stop: 10, Count: 5}, res)
//	out := series.Merge(data, 5, tail)
//
//	go install github.com/katalvlaran/xsaug/cmd/xsaug@latest
package xsaug
