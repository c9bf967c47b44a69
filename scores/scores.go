// Package scores persists the high score table of blockfall as a short YAML list.
package scores

import (
	"errors"
	"slices"
)

// MaxEntries is the size of the high score table.
const MaxEntries = 10

// ErrCorrupt is returned when a score file exists but cannot be parsed.
var ErrCorrupt = errors.New("scores: corrupt score file")

// Insert adds score to list and returns the table sorted in descending order and
// truncated to MaxEntries. Negative scores are dropped. list is not modified.
func Insert(list []int, score int) []int {
	return normalize(append(slices.Clone(list), score))
}

func normalize(list []int) []int {
	out := make([]int, 0, len(list))
	for _, s := range list {
		if s >= 0 {
			out = append(out, s)
		}
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })
	if len(out) > MaxEntries {
		out = out[:MaxEntries]
	}
	return out
}

// MemoryStore keeps the table in memory. The zero value is ready to use.
type MemoryStore struct {
	list []int
}

func (m *MemoryStore) Load() ([]int, error) {
	return slices.Clone(m.list), nil
}

func (m *MemoryStore) Save(score int) error {
	m.list = Insert(m.list, score)
	return nil
}
