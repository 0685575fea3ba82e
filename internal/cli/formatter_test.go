package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/childsize/internal/childsize"
)

func formatterFixture() *childsize.Stats {
	return &childsize.Stats{
		Groups: map[string]childsize.Entry{
			"root/a": {Count: 2, Total: 40, Average: 20, Max: 30, Min: 10},
			"root/b": {Count: 1, Total: 20, Average: 20, Max: 20, Min: 20},
		},
		Summary:    childsize.Entry{Count: 3, Total: 60, Average: 20, Max: 30, Min: 10},
		FileCount:  3,
		TotalBytes: 60,
	}
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	options := childsize.Options{Sort: childsize.SortTotal}

	require.NoError(t, PrintTable(formatterFixture(), options, &buf))

	out := buf.String()
	assert.Contains(t, out, "DIRECTORY")
	assert.Contains(t, out, "root/a")
	assert.Contains(t, out, "root/b")
	assert.NotContains(t, out, SummaryLabel)
}

func TestPrintTableSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	options := childsize.Options{Sort: childsize.SortTotal, Summary: true}

	require.NoError(t, PrintTable(formatterFixture(), options, &buf))

	assert.Contains(t, buf.String(), SummaryLabel)
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	options := childsize.Options{Sort: childsize.SortTotal, Reverse: true}

	require.NoError(t, PrintJSON(formatterFixture(), options, &buf))

	var payload struct {
		Rows []struct {
			Key   string `json:"key"`
			Count uint64 `json:"count"`
			Total uint64 `json:"total"`
		} `json:"rows"`
		Summary   childsize.Entry `json:"summary"`
		FileCount int64           `json:"file_count"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))

	require.Len(t, payload.Rows, 2)

	// Reverse puts the largest total first.
	assert.Equal(t, "root/a", payload.Rows[0].Key)
	assert.Equal(t, "root/b", payload.Rows[1].Key)
	assert.Equal(t, uint64(3), payload.Summary.Count)
	assert.Equal(t, int64(3), payload.FileCount)
}
