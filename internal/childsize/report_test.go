package childsize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture() *Stats {
	return &Stats{
		Groups: map[string]Entry{
			"c": {Count: 1, Total: 100, Average: 100, Max: 100, Min: 100},
			"a": {Count: 3, Total: 60, Average: 20, Max: 30, Min: 10},
			"b": {Count: 2, Total: 60, Average: 30, Max: 50, Min: 10},
		},
	}
}

func keysOf(rows []Row) []string {
	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, row.Key)
	}

	return keys
}

func TestRowsSortByTotal(t *testing.T) {
	t.Parallel()

	rows := reportFixture().Rows(SortTotal, false)

	// a and b tie on total and fall back to key order.
	assert.Equal(t, []string{"a", "b", "c"}, keysOf(rows))
}

func TestRowsSortByCount(t *testing.T) {
	t.Parallel()

	rows := reportFixture().Rows(SortCount, false)

	assert.Equal(t, []string{"c", "b", "a"}, keysOf(rows))
}

func TestRowsSortByAverage(t *testing.T) {
	t.Parallel()

	rows := reportFixture().Rows(SortAverage, false)

	assert.Equal(t, []string{"a", "b", "c"}, keysOf(rows))
}

func TestRowsSortByMin(t *testing.T) {
	t.Parallel()

	rows := reportFixture().Rows(SortMin, false)

	// a and b tie on min and fall back to key order.
	assert.Equal(t, []string{"a", "b", "c"}, keysOf(rows))
}

func TestRowsReverse(t *testing.T) {
	t.Parallel()

	stats := reportFixture()

	forward := keysOf(stats.Rows(SortMax, false))
	backward := keysOf(stats.Rows(SortMax, true))

	require.Len(t, backward, len(forward))

	for i, key := range forward {
		assert.Equal(t, key, backward[len(backward)-1-i])
	}
}

func TestRowsIsPermutation(t *testing.T) {
	t.Parallel()

	stats := reportFixture()
	rows := stats.Rows(SortTotal, false)

	require.Len(t, rows, len(stats.Groups))

	for _, row := range rows {
		entry, ok := stats.Groups[row.Key]
		require.True(t, ok, "row %q not present in groups", row.Key)
		assert.Equal(t, entry, row.Entry)
	}
}

func TestRowsDeterministicTies(t *testing.T) {
	t.Parallel()

	stats := reportFixture()

	first := keysOf(stats.Rows(SortMin, false))

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, keysOf(stats.Rows(SortMin, false)))
	}
}

func TestRowsEmpty(t *testing.T) {
	t.Parallel()

	stats := &Stats{Groups: map[string]Entry{}}

	assert.Empty(t, stats.Rows(SortTotal, false))
	assert.Empty(t, stats.Rows(SortTotal, true))
}
