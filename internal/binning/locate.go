package binning

import "sort"

// Position describes where a value lies relative to a dimension's edges.
type Position int8

const (
	// Inside means the value lies within [first edge, last edge].
	Inside Position = iota
	// Below means the value is smaller than the first edge.
	Below
	// Above means the value is larger than the last edge.
	Above
)

// Locate returns the bin index of x for the given edges (len >= 2). Values
// outside the edges are clamped into the first or last bin and reported
// through the returned Position.
func Locate(edges []float64, x float64) (int, Position) {
	last := len(edges) - 1
	switch {
	case x < edges[0]:
		return 0, Below
	case x > edges[last]:
		return last - 1, Above
	case x == edges[last]:
		return last - 1, Inside
	}
	// Largest k with edges[k] <= x.
	k := sort.Search(len(edges), func(i int) bool { return edges[i] > x }) - 1
	return k, Inside
}
