// Package augment runs the fit → extrapolate → merge pipeline over a batch
// of named entries.
//
// 🚀 What is it?
//
//	For every entry a Source produces a Job (measured samples, fit window,
//	model, initial guess, extrapolation grid). Augment then
//
//	  1. selects the samples inside the fit window,
//	  2. fits the model with Levenberg–Marquardt,
//	  3. evaluates the fit on the extrapolation grid,
//	  4. appends the extrapolated samples to the measured samples up to the
//	     window's upper bound,
//
//	and a Sink consumes the Outcome (export, plot, ...).
//
// ✨ Guarantees:
//   - Isolation: a failing entry never stops its siblings; every failure is
//     reported with its entry name and kind (see Kind).
//   - Order: Report.Entries follows the input name order regardless of the
//     number of workers.
//   - Determinism: the numeric pipeline has no randomness, so reruns produce
//     identical outcomes.
//
// ⚙️ Usage:
//
//	orch := augment.New(src, sink, augment.WithWorkers(4), augment.WithLogger(log))
//	rep := orch.Run(ctx, names)
//	if err := rep.Err(); err != nil {
//	    os.Exit(1)
//	}
package augment
