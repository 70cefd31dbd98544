package series

// Select returns the samples of s whose energy lies in w (inclusive),
// preserving their relative order.
//
// Errors:
//   - ErrInvalidWindow when w fails Validate.
//   - ErrEmptyWindow when nothing matches; regression cannot run on zero points.
//
// Complexity: O(n) time, O(m) memory for m matches.
func Select(s Series, w Window) (Series, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	var out Series
	for _, p := range s {
		if w.Contains(p.Energy) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyWindow
	}

	return out, nil
}

// Retain returns the samples with energy <= cutoff, in original order.
// A NaN energy never compares <= and is therefore dropped.
func Retain(s Series, cutoff float64) Series {
	out := make(Series, 0, len(s))
	for _, p := range s {
		if p.Energy <= cutoff {
			out = append(out, p)
		}
	}

	return out
}

// Merge builds the augmented series: Retain(orig, cutoff) followed by tail,
// positionally. Overlapping or out-of-order energies are kept as they are.
//
// Invariant: len(result) == len(Retain(orig, cutoff)) + len(tail).
func Merge(orig Series, cutoff float64, tail Series) Series {
	head := Retain(orig, cutoff)
	out := make(Series, 0, len(head)+len(tail))
	out = append(out, head...)
	out = append(out, tail...)

	return out
}
