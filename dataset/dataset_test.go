package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AddAndColumn(t *testing.T) {
	tbl := NewTable()
	assert.Equal(t, 0, tbl.Len())

	require.NoError(t, tbl.Add("a", []float64{1, 2, 3}))
	require.NoError(t, tbl.Add("b", []float64{4, 5, 6}))

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"a", "b"}, tbl.Names())

	col, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, col)
}

func TestTable_AddCopiesValues(t *testing.T) {
	values := []float64{1, 2}
	tbl := NewTable()
	require.NoError(t, tbl.Add("a", values))

	values[0] = 99
	col, err := tbl.Column("a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, col[0])
}

func TestTable_Errors(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Add("a", []float64{1, 2, 3}))

	t.Run("row count mismatch", func(t *testing.T) {
		err := tbl.Add("b", []float64{1})
		var rc *ErrRowCountMismatch
		require.ErrorAs(t, err, &rc)
		assert.Equal(t, "b", rc.Column)
		assert.Equal(t, 3, rc.Expected)
		assert.Equal(t, 1, rc.Actual)
	})

	t.Run("empty name", func(t *testing.T) {
		assert.ErrorIs(t, tbl.Add("", nil), ErrEmptyColumnName)
	})

	t.Run("missing column", func(t *testing.T) {
		_, err := tbl.Column("nope")
		assert.ErrorIs(t, err, ErrColumnNotFound)
		assert.Contains(t, err.Error(), "nope")
	})
}

func TestTable_ReplaceSingleColumnChangesRowCount(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.Add("a", []float64{1, 2, 3}))
	require.NoError(t, tbl.Add("a", []float64{1}))

	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, []string{"a"}, tbl.Names())
}

func TestFromColumns(t *testing.T) {
	tbl, err := FromColumns(map[string][]float64{
		"y": {3, 4},
		"x": {1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tbl.Names())
	assert.Equal(t, 2, tbl.Len())

	_, err = FromColumns(map[string][]float64{
		"x": {1, 2},
		"y": {3},
	})
	var rc *ErrRowCountMismatch
	assert.ErrorAs(t, err, &rc)
}

func TestTable_Select(t *testing.T) {
	tbl, err := FromColumns(map[string][]float64{
		"x": {10, 11, 12, 13},
		"y": {20, 21, 22, 23},
	})
	require.NoError(t, err)

	sub := tbl.Select([]int{3, 1})
	assert.Equal(t, 2, sub.Len())

	x, err := sub.Column("x")
	require.NoError(t, err)
	assert.Equal(t, []float64{13, 11}, x)

	y, err := sub.Column("y")
	require.NoError(t, err)
	assert.Equal(t, []float64{23, 21}, y)
}
