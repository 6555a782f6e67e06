package service

import (
	"sort"

	"persona-service/model"
)

// AggregateInterests counts items per origin and ranks origins by
// count, descending. Ties keep first-seen order, so the ranking is
// stable for identical input.
func AggregateInterests(items []model.ContentItem) []model.InterestEntry {
	counts := make(map[string]int)
	var order []string
	for _, it := range items {
		if _, seen := counts[it.Origin]; !seen {
			order = append(order, it.Origin)
		}
		counts[it.Origin]++
	}

	entries := make([]model.InterestEntry, 0, len(order))
	for _, origin := range order {
		entries = append(entries, model.InterestEntry{Origin: origin, Count: counts[origin]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
