package ndslice

import (
	"iter"

	"github.com/hupe1980/ndslice/dataset"
	"github.com/hupe1980/ndslice/rowset"
)

// Kind identifies a partition variant. Partitions of different kinds are
// never equal.
type Kind uint8

const (
	// KindUni is the single-bin partition.
	KindUni Kind = iota + 1
	// KindND is the N-dimensional rectilinear partition.
	KindND
)

func (k Kind) String() string {
	switch k {
	case KindUni:
		return "UniSlicer"
	case KindND:
		return "NDSlicer"
	default:
		return "Unknown"
	}
}

// Bin describes one bin of a partition.
type Bin struct {
	// Index is the flat bin index.
	Index int
	// Left holds the lower edge of the bin in every dimension.
	Left []float64
	// Right holds the upper edge of the bin in every dimension.
	Right []float64
	// Rows holds the dataset rows assigned to the bin.
	Rows *rowset.RowSet
}

// Slicer is the contract shared by all partition variants.
type Slicer interface {
	// Kind reports the partition variant.
	Kind() Kind
	// Setup computes the row-to-bin assignment for data, replacing any
	// previous assignment. On error the previous state is kept.
	Setup(data dataset.Dataset) error
	// TotalBins returns the number of bins, or ErrNotReady when it is not
	// yet known.
	TotalBins() (int, error)
	// Bin returns the i-th bin in iteration order.
	Bin(i int) (Bin, error)
	// Bins returns a restartable sequence over all bins in flat-index order.
	Bins() (iter.Seq2[int, Bin], error)
	// Equal reports whether other has the same kind and bin geometry.
	Equal(other Slicer) bool
}

var (
	_ Slicer = (*NDSlicer)(nil)
	_ Slicer = (*UniSlicer)(nil)
)
