// Package extrap synthesises points beyond the measured range by evaluating a
// fitted model on a linear energy grid.
//
// A Spec{Start, Stop, Count} describes the grid:
//
//	Count == 1  →  [Start]
//	Count >= 2  →  Start, Start+Δ, ..., Stop   with Δ = (Stop−Start)/(Count−1)
//
// The final point is assigned Stop exactly so accumulated rounding never moves
// the upper bound. Evaluate pairs every grid energy with the model value at
// that energy using the fitted parameters. Both functions are pure.
package extrap
