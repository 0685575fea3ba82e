package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/childsize/internal/childsize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// SummaryLabel marks the summary row in place of a directory key.
	SummaryLabel = "ALL FILES"
)

// PrintJSON outputs the sorted rows plus the run summary in JSON format.
func PrintJSON(stats *childsize.Stats, options childsize.Options, writer io.Writer) error {
	payload := struct {
		Rows       []childsize.Row `json:"rows"`
		Summary    childsize.Entry `json:"summary"`
		FileCount  int64           `json:"file_count"`
		TotalBytes int64           `json:"total_bytes"`
		ErrorCount int64           `json:"error_count"`
		Elapsed    time.Duration   `json:"elapsed"`
	}{
		Rows:       stats.Rows(options.Sort, options.Reverse),
		Summary:    stats.Summary,
		FileCount:  stats.FileCount,
		TotalBytes: stats.TotalBytes,
		ErrorCount: stats.ErrorCount,
		Elapsed:    stats.Elapsed,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs statistics in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(stats *childsize.Stats, options childsize.Options, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "COUNT\tTOTAL\tAVERAGE\tMAX\tMIN\tDIRECTORY")

	for _, row := range stats.Rows(options.Sort, options.Reverse) {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			row.Count,
			humanize.IBytes(row.Total),
			humanize.IBytes(row.Average),
			humanize.IBytes(row.Max),
			humanize.IBytes(row.Min),
			filepath.ToSlash(row.Key))
	}

	if options.Summary {
		fmt.Fprintln(w, "-----\t-----\t-----\t-----\t-----\t-----")
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			stats.Summary.Count,
			humanize.IBytes(stats.Summary.Total),
			humanize.IBytes(stats.Summary.Average),
			humanize.IBytes(stats.Summary.Max),
			humanize.IBytes(stats.Summary.Min),
			SummaryLabel)
	}

	if stats.ErrorCount > 0 {
		fmt.Fprintf(w, "\nSkipped entries:\t%d\n", stats.ErrorCount)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}
