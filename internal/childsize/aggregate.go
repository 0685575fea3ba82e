package childsize

import "sync"

// aggregator folds file sizes from concurrent fastwalk callbacks using a mutex.
// It owns the per-directory entries and the run-wide summary; nothing else
// mutates them.
type aggregator struct {
	mu         sync.Mutex // Protect concurrent access
	groups     map[string]*Entry
	summary    Entry
	fileCount  int64
	totalBytes int64
	errorCount int64
}

// newAggregator creates an empty aggregator.
func newAggregator() *aggregator {
	return &aggregator{
		groups: make(map[string]*Entry),
	}
}

// addError increments the error counter. This operation is protected by a
// mutex since fastwalk calls the callback from multiple goroutines concurrently.
func (a *aggregator) addError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errorCount++
}

// record folds size into the entry for key and into the summary. This
// operation is protected by a mutex since fastwalk calls the callback from
// multiple goroutines concurrently.
func (a *aggregator) record(key string, size uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.groups[key]
	if !ok {
		entry = &Entry{}
		a.groups[key] = entry
	}

	entry.Add(size)
	a.summary.Add(size)

	a.fileCount++
	a.totalBytes += int64(size) //nolint:gosec // File sizes fit in int64
}

// progress returns the live counters for the progress reporter.
func (a *aggregator) progress() (files, bytes int64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.fileCount, a.totalBytes
}

// finalize computes every entry's average, including the summary's, and
// produces the final Stats. Called exactly once, after all roots are walked.
func (a *aggregator) finalize() *Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	groups := make(map[string]Entry, len(a.groups))

	for key, entry := range a.groups {
		entry.Finalize()
		groups[key] = *entry
	}

	a.summary.Finalize()

	return &Stats{
		Groups:     groups,
		Summary:    a.summary,
		FileCount:  a.fileCount,
		TotalBytes: a.totalBytes,
		ErrorCount: a.errorCount,
	}
}
