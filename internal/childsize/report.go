package childsize

import "sort"

// Row is one reported group.
type Row struct {
	// Key is the directory the row aggregates.
	Key string `json:"key"`

	Entry
}

// Rows returns the groups ordered by the selected field ascending, ties
// broken by key, reversed when requested. The stats are not mutated; the
// result is always a permutation of the groups.
func (s *Stats) Rows(by SortMode, reverse bool) []Row {
	rows := make([]Row, 0, len(s.Groups))

	for key, entry := range s.Groups {
		rows = append(rows, Row{Key: key, Entry: entry})
	}

	sort.Slice(rows, func(i, j int) bool {
		fi, fj := by.field(rows[i].Entry), by.field(rows[j].Entry)
		if fi != fj {
			return fi < fj
		}

		return rows[i].Key < rows[j].Key
	})

	if reverse {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	return rows
}
