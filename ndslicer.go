package ndslice

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/ndslice/dataset"
	"github.com/hupe1980/ndslice/internal/binning"
	"github.com/hupe1980/ndslice/internal/radix"
	"github.com/hupe1980/ndslice/rowset"
)

// NDSlicer partitions rows into a rectilinear grid of bins over one or more
// numeric dimensions.
//
// Bins are ordered row-major over the dimensions as given: the last
// dimension varies fastest. Within a dimension every bin is closed on the
// left and open on the right, except the last one which also includes its
// right edge.
//
// An NDSlicer is not safe for concurrent Setup calls. Once set up it may be
// read concurrently.
type NDSlicer struct {
	dims     []string
	opts     options
	counts   []int // per-dimension bin counts when edges are data-derived
	explicit bool

	edges [][]float64 // nil until resolved
	shape radix.Shape

	ready   bool
	rows    int
	bins    map[int]*rowset.RowSet // non-empty bins only
	rowBins []int
	diags   []Diagnostic
}

// NewNDSlicer creates a slicer over the named dimensions.
//
// Without options every dimension gets DefaultBins bins spanning the data
// range found at Setup. Configuration errors are reported here.
func NewNDSlicer(dimensions []string, optFns ...Option) (*NDSlicer, error) {
	if len(dimensions) == 0 {
		return nil, ErrNoDimensions
	}
	seen := make(map[string]struct{}, len(dimensions))
	for _, name := range dimensions {
		if _, dup := seen[name]; dup {
			return nil, &ErrDuplicateDimension{Name: name}
		}
		seen[name] = struct{}{}
	}

	opts := applyOptions(optFns)
	if math.IsNaN(opts.minRange) || opts.minRange < 0 ||
		!(opts.degenerateWidth > 0) || opts.degenerateWidth < opts.minRange {
		return nil, ErrInvalidRange
	}

	s := &NDSlicer{
		dims: slices.Clone(dimensions),
		opts: opts,
	}

	if opts.edges != nil {
		if err := s.initExplicitEdges(opts.edges); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := s.initCounts(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *NDSlicer) initExplicitEdges(edges [][]float64) error {
	if len(edges) != len(s.dims) {
		return &ErrLengthMismatch{What: "edge lists", Expected: len(s.dims), Actual: len(edges)}
	}
	counts := make([]int, len(edges))
	for d, e := range edges {
		if len(e) < 2 {
			return &ErrNonIncreasingEdges{Dimension: d, Index: -1}
		}
		if i := binning.FirstNonIncreasing(e); i >= 0 {
			return &ErrNonIncreasingEdges{Dimension: d, Index: i}
		}
		counts[d] = len(e) - 1
	}
	shape, err := radix.NewShape(counts)
	if err != nil {
		return fmt.Errorf("bin shape: %w", err)
	}
	s.explicit = true
	s.edges = edges
	s.shape = shape
	return nil
}

func (s *NDSlicer) initCounts() error {
	counts := s.opts.binsPerDim
	if counts != nil {
		if len(counts) != len(s.dims) {
			return &ErrLengthMismatch{What: "bin counts", Expected: len(s.dims), Actual: len(counts)}
		}
	} else {
		counts = make([]int, len(s.dims))
		for d := range counts {
			counts[d] = s.opts.bins
		}
	}
	for d, n := range counts {
		if n <= 0 {
			return fmt.Errorf("%w: dimension %q has %d", ErrInvalidBinCount, s.dims[d], n)
		}
	}
	if _, err := radix.NewShape(counts); err != nil {
		return fmt.Errorf("bin shape: %w", err)
	}
	s.counts = counts
	return nil
}

// Kind implements Slicer.
func (s *NDSlicer) Kind() Kind { return KindND }

// Dimensions returns the dimension names in bin order.
func (s *NDSlicer) Dimensions() []string {
	return slices.Clone(s.dims)
}

// Edges returns a copy of the bin edges per dimension, or nil when they are
// not resolved yet.
func (s *NDSlicer) Edges() [][]float64 {
	if s.edges == nil {
		return nil
	}
	out := make([][]float64, len(s.edges))
	for d, e := range s.edges {
		out[d] = slices.Clone(e)
	}
	return out
}

// Diagnostics returns the warnings produced by the last successful Setup.
func (s *NDSlicer) Diagnostics() []Diagnostic {
	return slices.Clone(s.diags)
}

// TotalBins implements Slicer. It is known at construction for explicit
// edges and after Setup otherwise.
func (s *NDSlicer) TotalBins() (int, error) {
	if s.edges == nil {
		return 0, ErrNotReady
	}
	return s.shape.Size(), nil
}

// Setup implements Slicer.
//
// Data-derived edges span [min, max] of each column. A span below the
// configured minimum range, or too narrow for its bins to stay distinct in
// floating point, is widened around its midpoint and reported as a
// DiagDegenerateRange diagnostic.
func (s *NDSlicer) Setup(data dataset.Dataset) (err error) {
	start := time.Now()
	rows, bins := 0, 0
	defer func() {
		s.opts.metricsCollector.RecordSetup(rows, bins, time.Since(start), err)
		s.opts.logger.WithKind(KindND).LogSetup(rows, bins, err)
	}()

	if data == nil {
		return ErrNilDataset
	}
	rows = data.Len()
	if uint64(rows) > math.MaxUint32 {
		return &ErrTooManyRows{Rows: rows}
	}

	cols, err := s.columns(data, rows)
	if err != nil {
		return err
	}

	var diags []Diagnostic
	edges, shape := s.edges, s.shape
	if !s.explicit {
		if edges, diags, err = s.resolveEdges(cols); err != nil {
			return err
		}
		if shape, err = radix.NewShape(s.counts); err != nil {
			return fmt.Errorf("bin shape: %w", err)
		}
	}
	for d, col := range cols {
		if lo, hi, ok := binning.MinMax(col); ok && lo == hi {
			diags = append(diags, Diagnostic{
				Code:      DiagConstantColumn,
				Dimension: s.dims[d],
				Message:   fmt.Sprintf("column %q is constant (value %g)", s.dims[d], lo),
			})
		}
	}

	rowBins, clamped, err := s.assign(cols, edges, shape, rows)
	if err != nil {
		return err
	}
	for d, n := range clamped {
		if n > 0 {
			diags = append(diags, Diagnostic{
				Code:      DiagClampedRows,
				Dimension: s.dims[d],
				Message:   fmt.Sprintf("%d rows outside the edges of %q placed in the nearest bin", n, s.dims[d]),
			})
		}
	}

	assignment := make(map[int]*rowset.RowSet)
	for r, flat := range rowBins {
		set, ok := assignment[flat]
		if !ok {
			set = rowset.New()
			assignment[flat] = set
		}
		set.Add(r)
	}
	for _, set := range assignment {
		set.Optimize()
	}

	s.edges = edges
	s.shape = shape
	s.rows = rows
	s.bins = assignment
	s.rowBins = rowBins
	s.diags = diags
	s.ready = true
	bins = shape.Size()

	for _, d := range diags {
		s.opts.metricsCollector.RecordDiagnostic(d.Code)
		s.opts.logger.LogDiagnostic(d)
	}
	return nil
}

// columns fetches and validates every dimension column.
func (s *NDSlicer) columns(data dataset.Dataset, rows int) ([][]float64, error) {
	cols := make([][]float64, len(s.dims))
	for d, name := range s.dims {
		col, err := data.Column(name)
		if err != nil {
			return nil, &ErrMissingField{Name: name, cause: err}
		}
		if len(col) != rows {
			return nil, &ErrLengthMismatch{
				What:     fmt.Sprintf("rows in column %q", name),
				Expected: rows,
				Actual:   len(col),
			}
		}
		for r, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &ErrNonFinite{Dimension: name, Row: r}
			}
		}
		cols[d] = col
	}
	return cols, nil
}

// resolveEdges derives evenly spaced, strictly increasing edges from the
// column ranges.
func (s *NDSlicer) resolveEdges(cols [][]float64) ([][]float64, []Diagnostic, error) {
	var diags []Diagnostic
	edges := make([][]float64, len(cols))
	for d, col := range cols {
		name := s.dims[d]
		lo, hi, _ := binning.MinMax(col)
		e, widened, ok := binning.Resolve(lo, hi, s.counts[d], s.opts.minRange, s.opts.degenerateWidth)
		if !ok {
			return nil, nil, &ErrUnresolvableRange{Dimension: name, Min: lo, Max: hi}
		}
		if widened {
			newLo, newHi := e[0], e[len(e)-1]
			var msg string
			if lo == hi {
				msg = fmt.Sprintf("binMin = binMax for %q (maybe the data is single-valued?): "+
					"decreasing binMin to %g and increasing binMax to %g", name, newLo, newHi)
			} else {
				msg = fmt.Sprintf("span %g of %q is too narrow for %d bins: "+
					"decreasing binMin to %g and increasing binMax to %g", hi-lo, name, s.counts[d], newLo, newHi)
			}
			diags = append(diags, Diagnostic{Code: DiagDegenerateRange, Dimension: name, Message: msg})
		}
		s.opts.logger.WithDimension(name).Debug("edges resolved",
			"bins", s.counts[d],
			"min", e[0],
			"max", e[len(e)-1],
		)
		edges[d] = e
	}
	return edges, diags, nil
}

// assign locates every row and returns its flat bin index, together with
// the number of clamped rows per dimension. Rows are split into contiguous
// chunks located concurrently.
func (s *NDSlicer) assign(cols [][]float64, edges [][]float64, shape radix.Shape, rows int) ([]int, []int, error) {
	rowBins := make([]int, rows)
	workers := min(s.opts.parallelism, max(rows, 1))
	chunk := (rows + workers - 1) / workers
	clampedPerWorker := make([][]int, workers)

	var g errgroup.Group
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, rows)
		clamped := make([]int, len(cols))
		clampedPerWorker[w] = clamped
		g.Go(func() error {
			idx := make([]int, len(cols))
			for r := lo; r < hi; r++ {
				for d, col := range cols {
					k, pos := binning.Locate(edges[d], col[r])
					if pos != binning.Inside {
						clamped[d]++
					}
					idx[d] = k
				}
				rowBins[r] = shape.Encode(idx)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	total := make([]int, len(cols))
	for _, clamped := range clampedPerWorker {
		for d, n := range clamped {
			total[d] += n
		}
	}
	return rowBins, total, nil
}

// Bin implements Slicer. The bin is decoded directly from i without
// walking the preceding bins.
func (s *NDSlicer) Bin(i int) (b Bin, err error) {
	start := time.Now()
	defer func() {
		s.opts.metricsCollector.RecordLookup(time.Since(start), err)
	}()

	if !s.ready {
		return Bin{}, ErrNotReady
	}
	if i < 0 || i >= s.shape.Size() {
		return Bin{}, &ErrBinOutOfRange{Index: i, Total: s.shape.Size()}
	}
	return s.bin(i, make([]int, len(s.dims))), nil
}

// Bins implements Slicer.
func (s *NDSlicer) Bins() (iter.Seq2[int, Bin], error) {
	if !s.ready {
		return nil, ErrNotReady
	}
	return func(yield func(int, Bin) bool) {
		idx := make([]int, len(s.dims))
		for i := range s.shape.Size() {
			if !yield(i, s.bin(i, idx)) {
				return
			}
		}
	}, nil
}

func (s *NDSlicer) bin(i int, idx []int) Bin {
	idx = s.shape.Decode(i, idx)
	left := make([]float64, len(idx))
	right := make([]float64, len(idx))
	for d, k := range idx {
		left[d] = s.edges[d][k]
		right[d] = s.edges[d][k+1]
	}
	rows, ok := s.bins[i]
	if ok {
		rows = rows.Clone()
	} else {
		rows = rowset.New()
	}
	return Bin{Index: i, Left: left, Right: right, Rows: rows}
}

// BinOfRow returns the flat index of the bin the given dataset row was
// assigned to.
func (s *NDSlicer) BinOfRow(row int) (int, error) {
	if !s.ready {
		return 0, ErrNotReady
	}
	if row < 0 || row >= s.rows {
		return 0, &ErrRowOutOfRange{Row: row, Rows: s.rows}
	}
	return s.rowBins[row], nil
}

// Locate returns the flat index of the bin containing point, which holds
// one coordinate per dimension. Unlike Setup, coordinates outside the
// edges are rejected instead of clamped.
func (s *NDSlicer) Locate(point []float64) (int, error) {
	if s.edges == nil {
		return 0, ErrNotReady
	}
	if len(point) != len(s.dims) {
		return 0, &ErrLengthMismatch{What: "point coordinates", Expected: len(s.dims), Actual: len(point)}
	}
	idx := make([]int, len(point))
	for d, v := range point {
		if math.IsNaN(v) {
			return 0, &ErrOutOfRange{Dimension: s.dims[d], Value: v}
		}
		k, pos := binning.Locate(s.edges[d], v)
		if pos != binning.Inside {
			return 0, &ErrOutOfRange{Dimension: s.dims[d], Value: v}
		}
		idx[d] = k
	}
	return s.shape.Encode(idx), nil
}

// Equal implements Slicer. Two NDSlicers are equal when they have the same
// number of dimensions and numerically identical edges in each. Dimension
// names and row assignments are ignored. Slicers without resolved edges
// are never equal.
func (s *NDSlicer) Equal(other Slicer) bool {
	o, ok := other.(*NDSlicer)
	if !ok || o == nil {
		return false
	}
	if s.edges == nil || o.edges == nil || len(s.edges) != len(o.edges) {
		return false
	}
	for d := range s.edges {
		if !slices.Equal(s.edges[d], o.edges[d]) {
			return false
		}
	}
	return true
}
