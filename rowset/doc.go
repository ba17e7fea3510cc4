// Package rowset provides the row-index sets attached to each bin of a
// partition.
//
// A RowSet is a thin wrapper around a 32-bit Roaring bitmap. Row indices
// are positions in the input dataset, so a single set can address up to
// math.MaxUint32 rows.
package rowset
