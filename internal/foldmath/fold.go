// Package foldmath implements the triangular-wave bounded-value fold (spec
// §4.5) used both by carrier's BoundedMap and by adaptor kinds that keep
// their own meta-parameters (e.g. BitFlip's self-adapting probability)
// inside a closed interval. It lives below both packages so neither has to
// import the other just to share this one formula.
package foldmath

import "math"

// Fold maps v into [lo, hi] by reflecting it back and forth across the
// boundaries, as if the interval were a mirror at each end, instead of
// clamping or wrapping. A value that overshoots one end by exactly the
// interval width lands on the other end; values further out keep
// bouncing, and shifting v by twice the width leaves the result unchanged.
func Fold(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	width := hi - lo
	if width == 0 {
		return lo
	}
	x := v - lo
	period := 2 * width
	x = math.Mod(x, period)
	if x < 0 {
		x += period
	}
	if x > width {
		x = period - x
	}
	return lo + x
}
