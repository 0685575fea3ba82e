package childsize

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
func startProgressReporter(ctx context.Context, agg *aggregator, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(agg.progress())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run walks every root in opt.Roots in order, aggregates qualifying files
// by their parent directory, and returns the finalized statistics.
//
// Glob patterns that fail to compile abort the run before any traversal
// begins. Per-entry filesystem errors (permission, vanished files, dangling
// symlinks) and unreadable roots are counted and skipped, so a run always
// produces a report over whatever was aggregated. The walk can be cancelled
// via ctx; progress updates are sent to progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Stats, error) {
	log := logger{enabled: opt.Debug}

	if len(opt.Roots) == 0 {
		opt.Roots = []string{"."}
	}

	filter, err := NewFilter(opt.Patterns)
	if err != nil {
		return nil, err
	}

	log.printf("[debug]: glob patterns:\n")

	for _, p := range opt.Patterns {
		log.printf("[debug]:   - %s\n", p)
	}

	agg := newAggregator()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, agg, progressHook, opt.ProgressInterval)

	start := time.Now()

	// Configure fastwalk. Lexical ordering keeps per-directory visits stable.
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
		Sort:   fastwalk.SortLexical,
	}

	for _, root := range opt.Roots {
		// Normalize to native format to handle both C:/Path and C:\Path inputs
		root = filepath.Clean(root)

		if err := walkRoot(ctx, conf, root, opt.MinSize, filter, agg, log); err != nil {
			return nil, err
		}
	}

	stats := agg.finalize()

	stats.Elapsed = time.Since(start)

	return stats, nil
}

// walkRoot traverses a single root and records every qualifying file. Roots
// that cannot be read are skipped with the error counter bumped; only
// cancellation surfaces as an error.
//
//nolint:varnamelen // d is standard for DirEntry
func walkRoot(
	ctx context.Context,
	conf *fastwalk.Config,
	root string,
	minSize int64,
	filter *Filter,
	agg *aggregator,
	log logger,
) error {
	rootInfo, err := os.Stat(root)
	if err != nil {
		log.printf("[debug]: skipping root %s: %v\n", root, err)
		agg.addError()

		return nil
	}

	if !rootInfo.IsDir() {
		log.printf("[debug]: skipping root %s: not a directory\n", root)
		agg.addError()

		return nil
	}

	// Bound the walk to the root's filesystem, so mount points beneath it
	// are pruned rather than followed.
	rootDev, boundDevice := deviceID(rootInfo)

	return fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)
			agg.addError()

			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if d.IsDir() {
			if !boundDevice || path == root {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				agg.addError()

				return filepath.SkipDir
			}

			if dev, ok := deviceID(info); ok && dev != rootDev {
				log.printf("[debug]: skipping directory (different filesystem): %s\n", path)

				return filepath.SkipDir
			}

			return nil
		}

		// Only regular files are aggregated
		if !d.Type().IsRegular() {
			return nil
		}

		if !filter.Matches(path) {
			log.printf("[debug]: excluding file (glob filter): %s\n", path)

			return nil
		}

		info, err := d.Info()
		if err != nil {
			agg.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if info.Size() < minSize {
			return nil
		}

		key, err := GroupKey(path, root)
		if err != nil {
			// Unreachable with paths seeded from root; fall back to the
			// empty key rather than dropping the file or aborting.
			log.printf("[debug]: %v\n", err)
		}

		agg.record(key, uint64(info.Size())) //nolint:gosec // Regular file sizes are non-negative

		return nil
	})
}
