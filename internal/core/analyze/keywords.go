package analyze

import "sort"

// DefaultTopK is the keyword list length when the caller does not ask for one
const DefaultTopK = 10

// KeywordCount pairs a keyword with its occurrence count
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// TopKeywords flattens keywords across entries, counts occurrences per exact
// string (case sensitive, no normalization), and returns the k most frequent.
// Ties preserve first-seen order, so results are deterministic for a given
// input ordering. k <= 0 falls back to DefaultTopK
func TopKeywords(entries []Entry, k int) []KeywordCount {
	if k <= 0 {
		k = DefaultTopK
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, e := range entries {
		for _, kw := range e.Keywords {
			if _, seen := counts[kw]; !seen {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	out := make([]KeywordCount, 0, len(order))
	for _, kw := range order {
		out = append(out, KeywordCount{Keyword: kw, Count: counts[kw]})
	}

	// stable keeps first-seen order within equal counts
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > k {
		out = out[:k]
	}
	return out
}
