// Package ndslice partitions a dataset of N-dimensional numeric
// observations into a rectilinear grid of bins.
//
// A slicer is configured once, set up against a dataset, and then read:
// per bin it reports the lower-corner coordinates and the rows that fall
// inside. Callers run their own per-bin statistics over those rows.
//
// # Quick Start
//
//	tbl, _ := dataset.FromColumns(map[string][]float64{
//	    "H":    hValues,
//	    "time": timeValues,
//	})
//
//	s, _ := ndslice.NewNDSlicer([]string{"H", "time"}, ndslice.WithBins(20))
//	if err := s.Setup(tbl); err != nil {
//	    return err
//	}
//
//	bins, _ := s.Bins()
//	for i, b := range bins {
//	    fmt.Println(i, b.Left, b.Rows.Len())
//	}
//
// # Bin Edges
//
// Edges are either explicit (WithEdges) or derived at Setup from the
// minimum and maximum of each column, split into WithBins or
// WithBinsPerDimension evenly spaced bins (DefaultBins when unset).
// Within a dimension a bin includes its left edge and excludes its right
// edge; the last bin includes both. A column whose span is below the
// minimum range is widened around its midpoint and reported as a
// DiagDegenerateRange diagnostic rather than an error.
//
// # Ordering
//
// Bins are numbered row-major over the dimensions in the order given to
// NewNDSlicer, with the last dimension varying fastest. Bin(i) decodes i
// directly, so random access costs O(dimensions).
//
// # Equality
//
// Equal compares partition kind and bin edges only. Two NDSlicers built
// from different datasets are equal when their edges coincide; an
// NDSlicer never equals a UniSlicer.
package ndslice
