package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/ndslice/dataset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Shuffle permutes values in place.
func (r *RNG) Shuffle(values []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// EvenlySpaced returns size values from minVal to maxVal inclusive with a
// constant step. With size 1 the single value is minVal.
func EvenlySpaced(size int, minVal, maxVal float64) []float64 {
	values := make([]float64, size)
	if size == 1 {
		values[0] = minVal
		return values
	}
	step := (maxVal - minVal) / float64(size-1)
	for i := range values {
		values[i] = minVal + float64(i)*step
	}
	return values
}

// ColumnName returns the name DataValues gives to dimension d.
func ColumnName(d int) string {
	return fmt.Sprintf("testdata%d", d)
}

// ColumnNames returns the names of the first nd DataValues columns.
func ColumnNames(nd int) []string {
	names := make([]string, nd)
	for d := range names {
		names[d] = ColumnName(d)
	}
	return names
}

// DataValues builds a table with nd evenly spaced columns of size values
// in [minVal, maxVal]. With shuffle set, every column is permuted the same
// way, so row r holds the same value in every column.
func (r *RNG) DataValues(size int, minVal, maxVal float64, nd int, shuffle bool) *dataset.Table {
	base := EvenlySpaced(size, minVal, maxVal)
	if shuffle {
		r.Shuffle(base)
	}
	tbl := dataset.NewTable()
	for d := range nd {
		// Columns share a length, so Add cannot fail.
		_ = tbl.Add(ColumnName(d), base)
	}
	return tbl
}

// UniformValues builds a table with nd independent uniform random columns
// in [minVal, maxVal).
func (r *RNG) UniformValues(size int, minVal, maxVal float64, nd int) *dataset.Table {
	tbl := dataset.NewTable()
	for d := range nd {
		col := make([]float64, size)
		r.FillUniformRange(col, minVal, maxVal)
		_ = tbl.Add(ColumnName(d), col)
	}
	return tbl
}

// GridCenters builds a table holding perBin rows at the center of every
// cell of an n^nd grid over [0, 1) in each dimension. Row order is
// row-major over the cells.
func GridCenters(n, perBin, nd int) *dataset.Table {
	cells := 1
	for range nd {
		cells *= n
	}
	cols := make([][]float64, nd)
	for d := range cols {
		cols[d] = make([]float64, 0, cells*perBin)
	}
	idx := make([]int, nd)
	for c := range cells {
		rem := c
		for d := nd - 1; d >= 0; d-- {
			idx[d] = rem % n
			rem /= n
		}
		for range perBin {
			for d := range cols {
				cols[d] = append(cols[d], (float64(idx[d])+0.5)/float64(n))
			}
		}
	}
	tbl := dataset.NewTable()
	for d, col := range cols {
		_ = tbl.Add(ColumnName(d), col)
	}
	return tbl
}
