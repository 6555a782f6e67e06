package service

import (
	"testing"

	"persona-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredItem(origin string, score int) model.ContentItem {
	return model.ContentItem{Kind: model.KindComment, Origin: origin, Text: "x", Score: score}
}

func TestSummarizeEngagementAverageRounding(t *testing.T) {
	items := []model.ContentItem{
		scoredItem("a", 1),
		scoredItem("a", 2),
		scoredItem("a", 2),
	}

	summary := SummarizeEngagement(items, 0, 3)
	assert.Equal(t, 1.67, summary.AvgScore) // 5/3 rounds up
}

func TestSummarizeEngagementHalfRoundsUp(t *testing.T) {
	// 1/8 = 0.125 must round to 0.13, not 0.12.
	items := make([]model.ContentItem, 8)
	for i := range items {
		items[i] = scoredItem("a", 0)
	}
	items[0].Score = 1

	summary := SummarizeEngagement(items, 0, 8)
	assert.Equal(t, 0.13, summary.AvgScore)
}

func TestSummarizeEngagementTotalsFromGroups(t *testing.T) {
	items := []model.ContentItem{
		scoredItem("a", 4),
		scoredItem("b", 6),
	}

	summary := SummarizeEngagement(items, 1, 1)
	assert.Equal(t, 1, summary.TotalPosts)
	assert.Equal(t, 1, summary.TotalComments)
	assert.Equal(t, len(items), summary.TotalPosts+summary.TotalComments)
	assert.Equal(t, 5.0, summary.AvgScore)
}

func TestSummarizeEngagementEmpty(t *testing.T) {
	summary := SummarizeEngagement(nil, 0, 0)

	assert.Equal(t, 0, summary.TotalPosts)
	assert.Equal(t, 0, summary.TotalComments)
	assert.Equal(t, 0.0, summary.AvgScore)
	assert.Empty(t, summary.TopOrigins)
}

func TestSummarizeEngagementTopOriginsCapped(t *testing.T) {
	items := []model.ContentItem{
		scoredItem("a", 0), scoredItem("a", 0), scoredItem("a", 0),
		scoredItem("b", 0), scoredItem("b", 0),
		scoredItem("c", 0),
		scoredItem("d", 0),
	}

	summary := SummarizeEngagement(items, 0, len(items))
	require.Len(t, summary.TopOrigins, 3)
	assert.Equal(t, "a", summary.TopOrigins[0].Origin)
	assert.Equal(t, "b", summary.TopOrigins[1].Origin)
	assert.Equal(t, "c", summary.TopOrigins[2].Origin)
}
