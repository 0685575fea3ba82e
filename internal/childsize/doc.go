// Package childsize aggregates file sizes by parent directory.
//
// It walks one or more root paths using fastwalk for parallel traversal,
// folds every qualifying file into a per-directory accumulator plus a
// run-wide summary, and reports the groups sorted by a selectable metric.
package childsize
