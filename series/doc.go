// Package series holds the energy/cross-section data model and the two
// pure transformations the augmentation pipeline applies to it.
//
// What:
//
//	Sample is one (energy, cross-section) pair; Series is an ordered slice of
//	samples whose insertion order is meaningful (energy-ascending by caller
//	contract, not enforced).
//
//	Select (fit-window selection) keeps the samples whose energy lies in an
//	inclusive Window, preserving order.
//
//	Merge (dataset merging) concatenates the samples at or below a cutoff
//	energy with an extrapolated tail, positionally:
//
//	    Merge(orig, cutoff, tail) = Retain(orig, cutoff) ++ tail
//
//	No sort, no de-duplication: if the tail starts below the cutoff the
//	output carries overlapping energies exactly as produced.
//
// Ownership:
//
//	Every function returns a freshly allocated Series; inputs are never
//	mutated and outputs never alias inputs.
package series
