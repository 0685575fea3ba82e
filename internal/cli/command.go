package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/idelchi/childsize/internal/childsize"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		childsize aggregates file sizes by parent directory and reports
		count, total, average, max and min per directory.

		Usage:

			childsize [flags] [path...]

		Positional Arguments:
		  path                   Directories to walk, in order. Defaults to the current directory.

		Sorting:
		  Rows are sorted ascending by the --sort field, ties broken by directory.
		  Use --reverse for largest-first output.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var (
		options    childsize.Options
		sortStr    string
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	pflag.StringSliceVarP(
		&options.Patterns,
		"glob",
		"g",
		[]string{},
		"Globs matched against file names (e.g., *.go,*.md). Empty matches everything",
	)
	pflag.StringVarP(&sortStr, "sort", "s", "total", "Sort field: count, total, average, max or min")
	pflag.BoolVarP(&options.Reverse, "reverse", "r", false, "Reverse the sort order")
	pflag.BoolVarP(&options.Summary, "summary", "S", false, "Append a summary row across all matched files")
	pflag.StringVar(&minSizeStr, "min-size", "0KB", "Minimum file size (e.g., 1KB)")
	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	mode, err := childsize.ParseSortMode(sortStr)
	if err != nil {
		return err
	}

	options.Sort = mode

	if pflag.NArg() == 0 {
		options.Roots = []string{"."}
	} else {
		options.Roots = pflag.Args()
	}

	// Parse minSize string to bytes
	if minSizeStr != "" {
		size, err := humanize.ParseBytes(minSizeStr)
		if err != nil {
			return fmt.Errorf("invalid min-size: %w", err)
		}

		options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
	}

	return logic(options)
}
