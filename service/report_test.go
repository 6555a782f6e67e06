package service

import (
	"strings"
	"testing"
	"time"

	"persona-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureResult() model.PersonaResult {
	return model.PersonaResult{
		Username: "kojied",
		Summary:  "Active user with 1 posts and 1 comments. Primary interests include golang.",
		Interests: []model.InterestEntry{
			{Origin: "golang", Count: 2},
		},
		Traits: []model.TraitDetection{
			{
				Trait:      "Technology Enthusiast",
				Confidence: 60,
				Evidence: []model.EvidenceRef{
					{Kind: "post", Snippet: "Generics are here", Origin: "golang"},
					{Kind: "comment", Snippet: "clean code", Origin: "golang"},
				},
			},
		},
		Engagement: model.EngagementSummary{
			TotalPosts:    1,
			TotalComments: 1,
			AvgScore:      0.5,
			TopOrigins:    []model.InterestEntry{{Origin: "golang", Count: 2}},
		},
	}
}

func TestRenderReportDeterministic(t *testing.T) {
	result := fixtureResult()
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	first := RenderReport(result, ts)
	second := RenderReport(result, ts)
	assert.Equal(t, first, second)
}

func TestRenderReportLayout(t *testing.T) {
	result := fixtureResult()
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

	report := RenderReport(result, ts)
	banner := strings.Repeat("=", 50)

	assert.True(t, strings.HasPrefix(report, banner+"\nREDDIT USER PERSONA ANALYSIS\n"+banner+"\n"))
	assert.True(t, strings.HasSuffix(report, banner+"\n"))

	assert.Contains(t, report, "Username: u/kojied\n")
	assert.Contains(t, report, "Generated: 2024-01-02 15:04:05\n")
	assert.Contains(t, report, "SUMMARY\n"+strings.Repeat("-", 50)+"\n")
	assert.Contains(t, report, "1. r/golang (2 items)\n")
	assert.Contains(t, report, "1. Technology Enthusiast (60% confidence)\n")
	assert.Contains(t, report, "   - [post in r/golang] \"Generics are here\"\n")
	assert.Contains(t, report, "   - [comment in r/golang] \"clean code\"\n")
	assert.Contains(t, report, "Total Posts: 1\n")
	assert.Contains(t, report, "Total Comments: 1\n")
	assert.Contains(t, report, "Average Score: 0.50\n")
	assert.Contains(t, report, "Top Subreddits: golang\n")
}

func TestRenderReportSectionOrder(t *testing.T) {
	report := RenderReport(fixtureResult(), time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC))

	sections := []string{
		"REDDIT USER PERSONA ANALYSIS",
		"Username:",
		"Generated:",
		"SUMMARY",
		"TOP INTERESTS",
		"PERSONALITY TRAITS",
		"ENGAGEMENT STATISTICS",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(report, section)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestReportFilename(t *testing.T) {
	ts := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "persona_kojied_20240102_150405.txt", ReportFilename("kojied", ts))
}
