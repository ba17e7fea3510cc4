// Package dataset defines the tabular input consumed by partitions.
//
// A Dataset exposes named numeric columns that share a single row count.
// Row r of every column describes the same observation.
//
//	tbl, err := dataset.FromColumns(map[string][]float64{
//	    "H":   hValues,
//	    "mag": magValues,
//	})
package dataset
