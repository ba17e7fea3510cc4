// Package radix converts between flat bin indices and per-dimension index
// tuples using a row-major mixed-radix encoding (last dimension varies
// fastest).
package radix

import (
	"errors"
	"math"
)

var (
	// ErrInvalidShape is returned for an empty shape or a non-positive extent.
	ErrInvalidShape = errors.New("radix: shape must be non-empty with positive extents")

	// ErrShapeOverflow is returned when the product of extents overflows int.
	ErrShapeOverflow = errors.New("radix: shape size overflows int")
)

// Shape holds the extent of each dimension and the precomputed strides.
type Shape struct {
	extents []int
	strides []int
	size    int
}

// NewShape creates a shape from per-dimension extents.
func NewShape(extents []int) (Shape, error) {
	if len(extents) == 0 {
		return Shape{}, ErrInvalidShape
	}
	strides := make([]int, len(extents))
	size := 1
	for d := len(extents) - 1; d >= 0; d-- {
		if extents[d] <= 0 {
			return Shape{}, ErrInvalidShape
		}
		if size > math.MaxInt/extents[d] {
			return Shape{}, ErrShapeOverflow
		}
		strides[d] = size
		size *= extents[d]
	}
	return Shape{
		extents: append([]int(nil), extents...),
		strides: strides,
		size:    size,
	}, nil
}

// Size returns the product of all extents.
func (s Shape) Size() int { return s.size }

// Dims returns the number of dimensions.
func (s Shape) Dims() int { return len(s.extents) }

// Extent returns the extent of dimension d.
func (s Shape) Extent(d int) int { return s.extents[d] }

// Encode flattens a per-dimension index tuple. The tuple is assumed valid.
func (s Shape) Encode(idx []int) int {
	flat := 0
	for d, k := range idx {
		flat += k * s.strides[d]
	}
	return flat
}

// Decode writes the tuple for flat into dst (len Dims) and returns it.
// A nil dst allocates.
func (s Shape) Decode(flat int, dst []int) []int {
	if dst == nil {
		dst = make([]int, len(s.extents))
	}
	for d, stride := range s.strides {
		dst[d] = flat / stride
		flat %= stride
	}
	return dst
}
