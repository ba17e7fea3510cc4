package dataset

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrColumnNotFound is returned when a requested column does not exist.
	ErrColumnNotFound = errors.New("column not found")

	// ErrEmptyColumnName is returned when a column is added without a name.
	ErrEmptyColumnName = errors.New("column name must not be empty")
)

// ErrRowCountMismatch indicates a column whose length differs from the
// table's row count.
type ErrRowCountMismatch struct {
	Column   string
	Expected int
	Actual   int
}

func (e *ErrRowCountMismatch) Error() string {
	return fmt.Sprintf("column %q has %d rows, expected %d", e.Column, e.Actual, e.Expected)
}

// Dataset is a collection of named numeric columns with aligned rows.
type Dataset interface {
	// Len returns the number of rows.
	Len() int
	// Column returns the values of the named column. The returned slice
	// must not be modified by the caller.
	Column(name string) ([]float64, error)
}

// Table is an in-memory Dataset.
type Table struct {
	rows  int
	names []string
	cols  map[string][]float64
}

// NewTable creates an empty table. The row count is fixed by the first
// column added.
func NewTable() *Table {
	return &Table{
		rows: -1,
		cols: make(map[string][]float64),
	}
}

// FromColumns builds a table from a name->values map. Columns are added in
// sorted name order.
func FromColumns(cols map[string][]float64) (*Table, error) {
	t := NewTable()
	for _, name := range slices.Sorted(maps.Keys(cols)) {
		if err := t.Add(name, cols[name]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Add adds or replaces a column. The values are copied.
func (t *Table) Add(name string, values []float64) error {
	if name == "" {
		return ErrEmptyColumnName
	}
	_, replacing := t.cols[name]
	if t.rows >= 0 && len(values) != t.rows && !(replacing && len(t.cols) == 1) {
		return &ErrRowCountMismatch{Column: name, Expected: t.rows, Actual: len(values)}
	}
	if !replacing {
		t.names = append(t.names, name)
	}
	t.cols[name] = slices.Clone(values)
	t.rows = len(values)
	return nil
}

// Len implements Dataset. An empty table has zero rows.
func (t *Table) Len() int {
	if t.rows < 0 {
		return 0
	}
	return t.rows
}

// Column implements Dataset.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return col, nil
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Select returns a new table holding only the given rows, in the given
// order. Indices outside [0, Len()) panic, like slice indexing.
func (t *Table) Select(rows []int) *Table {
	out := NewTable()
	for _, name := range t.names {
		src := t.cols[name]
		dst := make([]float64, len(rows))
		for i, r := range rows {
			dst[i] = src[r]
		}
		out.names = append(out.names, name)
		out.cols[name] = dst
	}
	out.rows = len(rows)
	return out
}
