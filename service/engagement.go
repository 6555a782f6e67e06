package service

import (
	"math"

	"persona-service/model"
)

const (
	topOriginCount   = 3
	topInterestCount = 5
)

// SummarizeEngagement computes the aggregate counters. Post and
// comment totals come from the original group sizes rather than being
// re-derived from the merged kind tags. AvgScore is the mean over all
// items, rounded to 2 decimals, and 0 when there are no items.
func SummarizeEngagement(items []model.ContentItem, totalPosts, totalComments int) model.EngagementSummary {
	summary := model.EngagementSummary{
		TotalPosts:    totalPosts,
		TotalComments: totalComments,
		TopOrigins:    []model.InterestEntry{},
	}
	if len(items) == 0 {
		return summary
	}

	sum := 0
	for _, it := range items {
		sum += it.Score
	}
	summary.AvgScore = math.Round(float64(sum)/float64(len(items))*100) / 100

	interests := AggregateInterests(items)
	if len(interests) > topOriginCount {
		interests = interests[:topOriginCount]
	}
	summary.TopOrigins = interests
	return summary
}
