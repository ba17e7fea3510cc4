package rowset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// RowSet is an ordered set of dataset row indices.
// The zero value is not usable; call New or Of.
type RowSet struct {
	rb *roaring.Bitmap
}

// New creates a new empty row set.
func New() *RowSet {
	return &RowSet{
		rb: roaring.New(),
	}
}

// Of creates a row set containing the given rows.
func Of(rows ...int) *RowSet {
	s := New()
	for _, r := range rows {
		s.Add(r)
	}
	return s
}

// Add adds a row index to the set.
func (s *RowSet) Add(row int) {
	s.rb.Add(uint32(row))
}

// Contains checks if a row index is in the set.
func (s *RowSet) Contains(row int) bool {
	if row < 0 {
		return false
	}
	return s.rb.Contains(uint32(row))
}

// IsEmpty returns true if the set is empty.
func (s *RowSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of rows in the set.
func (s *RowSet) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *RowSet) Clone() *RowSet {
	return &RowSet{
		rb: s.rb.Clone(),
	}
}

// All returns an iterator over the rows in ascending order.
func (s *RowSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Slice returns the rows in ascending order.
func (s *RowSet) Slice() []int {
	out := make([]int, 0, s.Len())
	for r := range s.All() {
		out = append(out, r)
	}
	return out
}

// Or adds every row of other to s.
func (s *RowSet) Or(other *RowSet) {
	s.rb.Or(other.rb)
}

// Intersects reports whether s and other share at least one row.
func (s *RowSet) Intersects(other *RowSet) bool {
	return s.rb.Intersects(other.rb)
}

// Union returns a new set holding the rows of every input set.
func Union(sets ...*RowSet) *RowSet {
	out := New()
	for _, s := range sets {
		if s != nil {
			out.Or(s)
		}
	}
	return out
}

// Optimize compacts the underlying containers once the set is complete.
func (s *RowSet) Optimize() {
	s.rb.RunOptimize()
}

// SizeInBytes returns the in-memory size of the set.
func (s *RowSet) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// AddRange adds every row in [lo, hi).
func (s *RowSet) AddRange(lo, hi int) {
	if hi <= lo {
		return
	}
	s.rb.AddRange(uint64(lo), uint64(hi))
}
