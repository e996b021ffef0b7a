package search

import (
	"github.com/nikbrunner/radiogrid/internal/model"
	"github.com/sahilm/fuzzy"
)

// SearchResult represents a fuzzy search match.
type SearchResult struct {
	Option         *model.Option
	Index          int // position of the option in its group
	MatchedIndexes []int
	Score          int
}

// optionLabels implements fuzzy.Source for an option slice.
type optionLabels []*model.Option

func (ol optionLabels) String(i int) string {
	return ol[i].Label
}

func (ol optionLabels) Len() int {
	return len(ol)
}

// FuzzySearchOptions searches the options of a group by label.
// Returns results sorted by match score (best first).
func FuzzySearchOptions(group *model.Group, query string) []SearchResult {
	if query == "" || group == nil {
		return nil
	}

	options := make(optionLabels, len(group.Options))
	for i := range group.Options {
		options[i] = &group.Options[i]
	}

	matches := fuzzy.FindFrom(query, options)

	results := make([]SearchResult, len(matches))
	for i, m := range matches {
		results[i] = SearchResult{
			Option:         options[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// BestEligible returns the group index of the best match that can take
// focus, or -1.
func BestEligible(group *model.Group, query string) int {
	for _, r := range FuzzySearchOptions(group, query) {
		if r.Option.Eligible() {
			return r.Index
		}
	}
	return -1
}
