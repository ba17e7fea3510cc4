package ndslice

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoDimensions is returned when a slicer is constructed without dimensions.
	ErrNoDimensions = errors.New("at least one dimension is required")

	// ErrInvalidBinCount is returned when a bin count is not positive.
	ErrInvalidBinCount = errors.New("bin count must be positive")

	// ErrInvalidRange is returned for a negative minimum range or a
	// degenerate width that is smaller than the minimum range.
	ErrInvalidRange = errors.New("degenerate width must be positive and not below the minimum range")

	// ErrNotReady is returned when bins are read before Setup has completed.
	ErrNotReady = errors.New("slicer is not set up")

	// ErrNilDataset is returned when Setup is called with a nil dataset.
	ErrNilDataset = errors.New("dataset is nil")
)

// ErrDuplicateDimension indicates a dimension name given more than once.
type ErrDuplicateDimension struct {
	Name string
}

func (e *ErrDuplicateDimension) Error() string {
	return fmt.Sprintf("duplicate dimension %q", e.Name)
}

// ErrLengthMismatch indicates a per-dimension list whose length does not
// match the number of dimensions, or a column that cannot be indexed.
type ErrLengthMismatch struct {
	What     string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", e.What, e.Expected, e.Actual)
}

// ErrNonIncreasingEdges indicates explicit edges that are not strictly
// increasing (or not finite) at Index, or that hold fewer than two values.
type ErrNonIncreasingEdges struct {
	Dimension int
	Index     int
}

func (e *ErrNonIncreasingEdges) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("edges of dimension %d need at least two values", e.Dimension)
	}
	return fmt.Sprintf("edges of dimension %d are not strictly increasing at index %d", e.Dimension, e.Index)
}

// ErrMissingField indicates a dimension absent from the dataset.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMissingField struct {
	Name  string
	cause error
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("missing field %q", e.Name)
}

func (e *ErrMissingField) Unwrap() error { return e.cause }

// ErrNonFinite indicates a NaN or infinite value in a dimension column.
type ErrNonFinite struct {
	Dimension string
	Row       int
}

func (e *ErrNonFinite) Error() string {
	return fmt.Sprintf("non-finite value in %q at row %d", e.Dimension, e.Row)
}

// ErrBinOutOfRange indicates a flat bin index outside [0, Total).
type ErrBinOutOfRange struct {
	Index int
	Total int
}

func (e *ErrBinOutOfRange) Error() string {
	return fmt.Sprintf("bin index %d out of range [0, %d)", e.Index, e.Total)
}

// ErrOutOfRange indicates a point coordinate outside a dimension's edges.
type ErrOutOfRange struct {
	Dimension string
	Value     float64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("value %g outside the edges of %q", e.Value, e.Dimension)
}

// ErrRowOutOfRange indicates a row index outside the dataset used at setup.
type ErrRowOutOfRange struct {
	Row  int
	Rows int
}

func (e *ErrRowOutOfRange) Error() string {
	return fmt.Sprintf("row %d out of range [0, %d)", e.Row, e.Rows)
}

// ErrTooManyRows indicates a dataset larger than a row set can address.
type ErrTooManyRows struct {
	Rows int
}

func (e *ErrTooManyRows) Error() string {
	return fmt.Sprintf("%d rows exceed the limit of %d", e.Rows, uint64(math.MaxUint32))
}

// ErrUnresolvableRange indicates a data range for which no finite, strictly
// increasing edges exist.
type ErrUnresolvableRange struct {
	Dimension string
	Min       float64
	Max       float64
}

func (e *ErrUnresolvableRange) Error() string {
	return fmt.Sprintf("cannot resolve finite edges for %q over [%g, %g]", e.Dimension, e.Min, e.Max)
}
