package rowset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowSet_Basic(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())

	s.Add(7)
	s.Add(3)
	s.Add(7)

	assert.False(t, s.IsEmpty())
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(-1))
	assert.Equal(t, []int{3, 7}, s.Slice())
}

func TestRowSet_IterationStopsEarly(t *testing.T) {
	s := Of(1, 2, 3, 4)

	var seen []int
	for r := range s.All() {
		seen = append(seen, r)
		if r == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestRowSet_CloneIsIndependent(t *testing.T) {
	s := Of(1, 2)
	c := s.Clone()
	c.Add(9)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, c.Len())
}

func TestRowSet_UnionAndIntersects(t *testing.T) {
	a := Of(0, 1)
	b := Of(2, 3)
	c := Of(3, 4)

	assert.False(t, a.Intersects(b))
	assert.True(t, b.Intersects(c))

	u := Union(a, nil, b, c)
	require.Equal(t, 5, u.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, u.Slice())

	a.Or(c)
	assert.Equal(t, []int{0, 1, 3, 4}, a.Slice())
}

func TestRowSet_Optimize(t *testing.T) {
	s := New()
	for i := range 10000 {
		s.Add(i)
	}
	before := s.SizeInBytes()
	s.Optimize()
	assert.LessOrEqual(t, s.SizeInBytes(), before)
	assert.Equal(t, 10000, s.Len())
}

func TestRowSet_AddRange(t *testing.T) {
	s := New()
	s.AddRange(2, 5)
	assert.Equal(t, []int{2, 3, 4}, s.Slice())

	s.AddRange(5, 5)
	assert.Equal(t, 3, s.Len())
}
