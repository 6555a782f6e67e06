package service

import (
	"fmt"
	"strings"

	"persona-service/model"
)

// EmptyActivitySummary is the summary for users with no analyzable
// activity.
const EmptyActivitySummary = "No public posts or comments found for analysis."

// BuildPersona runs the full inference pipeline over one user's raw
// posts and comments. With no activity it short-circuits to a
// degenerate result without evaluating any trait rules.
func BuildPersona(username string, posts, comments []model.RawItem) model.PersonaResult {
	items := NormalizeItems(posts, comments)

	result := model.PersonaResult{
		Username:  username,
		Interests: []model.InterestEntry{},
		Traits:    []model.TraitDetection{},
	}
	if len(items) == 0 {
		result.Summary = EmptyActivitySummary
		result.Engagement = model.EngagementSummary{TopOrigins: []model.InterestEntry{}}
		return result
	}

	interests := AggregateInterests(items)

	topNames := make([]string, 0, topOriginCount)
	for i, entry := range interests {
		if i == topOriginCount {
			break
		}
		topNames = append(topNames, entry.Origin)
	}
	result.Summary = fmt.Sprintf(
		"Active user with %d posts and %d comments. Primary interests include %s.",
		len(posts), len(comments), strings.Join(topNames, ", "))

	if len(interests) > topInterestCount {
		interests = interests[:topInterestCount]
	}
	result.Interests = interests
	result.Traits = DetectTraits(items)
	result.Engagement = SummarizeEngagement(items, len(posts), len(comments))
	return result
}
