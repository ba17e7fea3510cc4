package binning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinMax(t *testing.T) {
	lo, hi, ok := MinMax([]float64{3, -1, 7, 2})
	require.True(t, ok)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.0, hi)

	_, _, ok = MinMax(nil)
	assert.False(t, ok)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name         string
		lo, hi       float64
		wantLo       float64
		wantHi       float64
		wantExpanded bool
	}{
		{"wide range untouched", 0, 1, 0, 1, false},
		{"zero span", 0, 0, -0.5, 0.5, true},
		{"tiny span", 5, 5 + 1e-15, 4.5, 5.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, expanded := Expand(tt.lo, tt.hi, 1e-12, 1.0)
			assert.Equal(t, tt.wantExpanded, expanded)
			assert.InDelta(t, tt.wantLo, lo, 1e-12)
			assert.InDelta(t, tt.wantHi, hi, 1e-12)
		})
	}
}

func TestLinspace(t *testing.T) {
	for _, n := range []int{1, 5, 25, 74} {
		edges := Linspace(0, 1, n)
		require.Len(t, edges, n+1)
		assert.Equal(t, 0.0, edges[0])
		assert.Equal(t, 1.0, edges[n])
		for k := 1; k <= n; k++ {
			assert.InDelta(t, 1.0/float64(n), edges[k]-edges[k-1], 1e-12)
		}
		assert.Equal(t, -1, FirstNonIncreasing(edges))
	}
}

func TestFirstNonIncreasing(t *testing.T) {
	assert.Equal(t, -1, FirstNonIncreasing([]float64{0, 1, 2}))
	assert.Equal(t, 2, FirstNonIncreasing([]float64{0, 1, 1}))
	assert.Equal(t, 1, FirstNonIncreasing([]float64{0, -1}))
	assert.Equal(t, 1, FirstNonIncreasing([]float64{0, math.NaN()}))
	assert.Equal(t, 0, FirstNonIncreasing([]float64{math.Inf(-1), 0}))
}

func TestLocate(t *testing.T) {
	edges := []float64{0, 1, 2, 3}

	tests := []struct {
		x       float64
		wantBin int
		wantPos Position
	}{
		{0, 0, Inside},
		{0.5, 0, Inside},
		{1, 1, Inside}, // interior edge belongs to the bin above
		{2.999, 2, Inside},
		{3, 2, Inside}, // last bin is closed
		{-0.1, 0, Below},
		{3.1, 2, Above},
	}
	for _, tt := range tests {
		k, pos := Locate(edges, tt.x)
		assert.Equal(t, tt.wantBin, k, "x=%v", tt.x)
		assert.Equal(t, tt.wantPos, pos, "x=%v", tt.x)
	}
}

func TestLocate_SingleBin(t *testing.T) {
	edges := []float64{-0.5, 0.5}
	k, pos := Locate(edges, 0)
	assert.Equal(t, 0, k)
	assert.Equal(t, Inside, pos)
}

func assertStrictlyIncreasing(t *testing.T, edges []float64) {
	t.Helper()
	assert.Equal(t, -1, FirstNonIncreasing(edges), "edges %v", edges)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		lo, hi      float64
		n           int
		wantWidened bool
	}{
		{"regular range", 0, 1, 10, false},
		{"zero span near zero", 0, 0, 10, true},
		{"zero span at large magnitude", 1e17, 1e17, 4, true},
		{"narrow span at large magnitude", 1e16, 1e16 + 4, 100, true},
		{"negative large magnitude", -3e18, -3e18, 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, widened, ok := Resolve(tt.lo, tt.hi, tt.n, 1e-12, 1.0)
			require.True(t, ok)
			require.Len(t, edges, tt.n+1)
			assert.Equal(t, tt.wantWidened, widened)
			assertStrictlyIncreasing(t, edges)
			assert.LessOrEqual(t, edges[0], tt.lo)
			assert.GreaterOrEqual(t, edges[tt.n], tt.hi)
		})
	}
}

func TestResolve_Unresolvable(t *testing.T) {
	_, _, ok := Resolve(-math.MaxFloat64, math.MaxFloat64, 10, 1e-12, 1.0)
	assert.False(t, ok)
}
