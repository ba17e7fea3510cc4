package ndslice

import (
	"iter"
	"math"
	"time"

	"github.com/hupe1980/ndslice/dataset"
	"github.com/hupe1980/ndslice/rowset"
)

// UniSlicer treats the whole dataset as a single bin.
type UniSlicer struct {
	opts  options
	ready bool
	rows  int
}

// NewUniSlicer creates a single-bin slicer. Only the logging and metrics
// options apply.
func NewUniSlicer(optFns ...Option) *UniSlicer {
	return &UniSlicer{opts: applyOptions(optFns)}
}

// Kind implements Slicer.
func (u *UniSlicer) Kind() Kind { return KindUni }

// Setup implements Slicer. Every row of data lands in bin 0.
func (u *UniSlicer) Setup(data dataset.Dataset) (err error) {
	start := time.Now()
	rows := 0
	defer func() {
		bins := 0
		if err == nil {
			bins = 1
		}
		u.opts.metricsCollector.RecordSetup(rows, bins, time.Since(start), err)
		u.opts.logger.WithKind(KindUni).LogSetup(rows, bins, err)
	}()

	if data == nil {
		return ErrNilDataset
	}
	rows = data.Len()
	if uint64(rows) > math.MaxUint32 {
		return &ErrTooManyRows{Rows: rows}
	}
	u.rows = rows
	u.ready = true
	return nil
}

// TotalBins implements Slicer.
func (u *UniSlicer) TotalBins() (int, error) {
	if !u.ready {
		return 0, ErrNotReady
	}
	return 1, nil
}

// Bin implements Slicer.
func (u *UniSlicer) Bin(i int) (b Bin, err error) {
	start := time.Now()
	defer func() {
		u.opts.metricsCollector.RecordLookup(time.Since(start), err)
	}()

	if !u.ready {
		return Bin{}, ErrNotReady
	}
	if i != 0 {
		return Bin{}, &ErrBinOutOfRange{Index: i, Total: 1}
	}
	return u.bin(), nil
}

// Bins implements Slicer.
func (u *UniSlicer) Bins() (iter.Seq2[int, Bin], error) {
	if !u.ready {
		return nil, ErrNotReady
	}
	return func(yield func(int, Bin) bool) {
		yield(0, u.bin())
	}, nil
}

func (u *UniSlicer) bin() Bin {
	rows := rowset.New()
	rows.AddRange(0, u.rows)
	return Bin{Index: 0, Left: []float64{}, Right: []float64{}, Rows: rows}
}

// Equal implements Slicer. All UniSlicers are equal to each other and to
// nothing else.
func (u *UniSlicer) Equal(other Slicer) bool {
	o, ok := other.(*UniSlicer)
	return ok && o != nil
}
