package childsize

import (
	"fmt"
	"strings"
	"time"
)

// Entry holds running size statistics for one group of files.
type Entry struct {
	// Count is the number of files folded in.
	Count uint64 `json:"count"`
	// Total is the cumulative size of folded files in bytes.
	Total uint64 `json:"total"`
	// Average is Total divided by Count, computed by Finalize.
	Average uint64 `json:"average"`
	// Max is the largest folded size.
	Max uint64 `json:"max"`
	// Min is the smallest folded size.
	Min uint64 `json:"min"`
}

// Add folds one file size into the entry. The first fold seeds both Min
// and Max, so an entry with Count == 0 carries no sentinel values.
func (e *Entry) Add(size uint64) {
	if e.Count == 0 || size < e.Min {
		e.Min = size
	}

	if size > e.Max {
		e.Max = size
	}

	e.Count++
	e.Total += size
}

// Finalize computes the average. Empty entries keep an average of zero.
func (e *Entry) Finalize() {
	if e.Count == 0 {
		e.Average = 0

		return
	}

	e.Average = uint64(float64(e.Total) / float64(e.Count))
}

// SortMode selects the entry field that orders the report.
type SortMode int

// Accepted sort modes, in --sort flag order.
const (
	SortCount SortMode = iota
	SortTotal
	SortAverage
	SortMax
	SortMin
)

// SortModes lists the accepted --sort values.
//
//nolint:gochecknoglobals // Config constant
var SortModes = []string{"count", "total", "average", "max", "min"}

// ParseSortMode converts a --sort value to its SortMode, case-insensitively.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(s) {
	case "count":
		return SortCount, nil
	case "total":
		return SortTotal, nil
	case "average":
		return SortAverage, nil
	case "max":
		return SortMax, nil
	case "min":
		return SortMin, nil
	default:
		return 0, fmt.Errorf("unknown sort mode %q: must be one of %v", s, SortModes)
	}
}

// String returns the flag spelling of the mode.
func (m SortMode) String() string {
	if m < SortCount || m > SortMin {
		return "unknown"
	}

	return SortModes[m]
}

// field returns the entry field this mode orders by. Adding a sort mode
// means one new constant, one parse case and one arm here.
func (m SortMode) field(e Entry) uint64 {
	switch m {
	case SortCount:
		return e.Count
	case SortTotal:
		return e.Total
	case SortAverage:
		return e.Average
	case SortMax:
		return e.Max
	case SortMin:
		return e.Min
	default:
		return 0
	}
}

// Options configures aggregation and CLI behavior.
type Options struct {
	// Roots are the paths to walk, in order.
	Roots []string
	// Patterns are globs matched against file base names (empty = all).
	Patterns []string
	// Sort selects the report ordering field.
	Sort SortMode
	// Reverse flips the report order.
	Reverse bool
	// Summary appends the grand summary block to the report.
	Summary bool
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
}

// Stats holds the finalized aggregation for one run.
type Stats struct {
	// Groups maps each directory key to its finalized entry.
	Groups map[string]Entry `json:"groups"`
	// Summary folds in every qualifying file across all groups and roots.
	Summary Entry `json:"summary"`
	// FileCount is the total number of files aggregated.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of all aggregated files.
	TotalBytes int64 `json:"total_bytes"`
	// ErrorCount is the number of roots and entries skipped due to errors.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken for the walk.
	Elapsed time.Duration `json:"elapsed"`
}
