package binning

import (
	"math"
	"slices"
)

// MinMax returns the smallest and largest value. ok is false for an empty
// slice.
func MinMax(values []float64) (lo, hi float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	return slices.Min(values), slices.Max(values), true
}

// Expand widens [lo, hi] symmetrically around its midpoint to width when
// the span is below minRange. expanded reports whether widening happened.
func Expand(lo, hi, minRange, width float64) (newLo, newHi float64, expanded bool) {
	if hi-lo >= minRange {
		return lo, hi, false
	}
	mid := lo + (hi-lo)/2
	half := width / 2
	return mid - half, mid + half, true
}

// Linspace returns n+1 evenly spaced edges covering [lo, hi]. The first and
// last edge are exactly lo and hi.
func Linspace(lo, hi float64, n int) []float64 {
	edges := make([]float64, n+1)
	step := (hi - lo) / float64(n)
	for k := range edges {
		edges[k] = lo + float64(k)*step
	}
	edges[n] = hi
	return edges
}

// FirstNonIncreasing returns the index of the first edge that is not
// strictly greater than its predecessor or is not finite, or -1 when the
// edges are valid.
func FirstNonIncreasing(edges []float64) int {
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return i
		}
		if i > 0 && e <= edges[i-1] {
			return i
		}
	}
	return -1
}

// maxWidenings bounds the span doubling in Resolve.
const maxWidenings = 64

// Resolve returns n+1 strictly increasing edges covering [lo, hi].
//
// A span below minRange is first widened to width around its midpoint.
// When the edges still collapse under floating-point rounding (large
// magnitudes, many bins), the span starts over at a few ulps per bin and
// doubles around the midpoint until every edge is distinct. widened
// reports whether the span changed; ok is false when no finite strictly
// increasing edges exist.
func Resolve(lo, hi float64, n int, minRange, width float64) (edges []float64, widened, ok bool) {
	newLo, newHi, widened := Expand(lo, hi, minRange, width)
	edges = Linspace(newLo, newHi, n)
	if FirstNonIncreasing(edges) < 0 {
		return edges, widened, true
	}

	mid := lo/2 + hi/2
	span := max(newHi-newLo, width, 4*float64(n)*ulp(mid))
	for range maxWidenings {
		newLo = min(mid-span/2, lo)
		newHi = max(mid+span/2, hi)
		edges = Linspace(newLo, newHi, n)
		if FirstNonIncreasing(edges) < 0 {
			return edges, true, true
		}
		span *= 2
	}
	return nil, true, false
}

// ulp returns the gap between |x| and the next larger float64.
func ulp(x float64) float64 {
	x = math.Abs(x)
	return math.Nextafter(x, math.Inf(1)) - x
}
