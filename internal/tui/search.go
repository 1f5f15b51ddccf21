package tui

import "github.com/sahilm/fuzzy"

// fuzzyMatcher scores case-insensitive subsequence matches. The scratch
// slice is reused between calls and never influences a later result.
type fuzzyMatcher struct {
	scratch [1]string
}

func newFuzzyMatcher() *fuzzyMatcher {
	return &fuzzyMatcher{}
}

// score returns the match score of query against haystack. An empty query
// matches everything with a neutral score of zero.
func (f *fuzzyMatcher) score(query, haystack string) (int, bool) {
	if query == "" {
		return 0, true
	}
	f.scratch[0] = haystack
	found := fuzzy.Find(query, f.scratch[:])
	f.scratch[0] = ""
	if len(found) == 0 {
		return 0, false
	}
	return found[0].Score, true
}

func (f *fuzzyMatcher) matches(query, haystack string) bool {
	_, ok := f.score(query, haystack)
	return ok
}

// matchIndices returns, in tree order, the indices of items whose searchable
// text matches query. An empty query yields no matches.
func (f *fuzzyMatcher) matchIndices(query string, items []treeItem) []int {
	if query == "" {
		return nil
	}
	var out []int
	for i, it := range items {
		if f.matches(query, searchableText(it)) {
			out = append(out, i)
		}
	}
	return out
}
