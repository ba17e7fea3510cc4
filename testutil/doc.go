// Package testutil provides testing utilities for ndslice.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for evenly spaced, shuffled and uniformly
// random columns, and for assembling them into datasets.
//
// # Column Generation
//
//	rng := testutil.NewRNG(seed)
//	col := testutil.EvenlySpaced(1000, 0, 1) // 0, 1/999, ..., 1
//	rng.Shuffle(col)
//
// # Datasets
//
//	tbl := rng.DataValues(1000, 0, 1, 3, true) // columns testdata0..testdata2
package testutil
