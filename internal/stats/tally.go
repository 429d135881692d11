package stats

import "sort"

// tally counts by key while remembering first-seen key order, so
// tie-breaks stay deterministic across runs (Go map iteration is not).
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string, n int) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key] += n
}

// top returns the n highest counts, descending, first-seen order breaking
// ties.
func (t *tally) top(n int) []Ranked {
	ranked := make([]Ranked, 0, len(t.order))
	for _, key := range t.order {
		ranked = append(ranked, Ranked{Key: key, Count: t.counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
