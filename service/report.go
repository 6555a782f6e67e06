package service

import (
	"fmt"
	"strings"
	"time"

	"persona-service/model"
)

const bannerWidth = 50

// RenderReport serializes a persona into the plain-text report. The
// generation timestamp is injected so identical inputs always render
// identical text.
func RenderReport(result model.PersonaResult, generatedAt time.Time) string {
	rule := strings.Repeat("=", bannerWidth)
	sub := strings.Repeat("-", bannerWidth)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("REDDIT USER PERSONA ANALYSIS\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Username: u/%s\n", result.Username)
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	b.WriteString("SUMMARY\n")
	b.WriteString(sub + "\n")
	b.WriteString(result.Summary + "\n\n")

	b.WriteString("TOP INTERESTS\n")
	b.WriteString(sub + "\n")
	for i, entry := range result.Interests {
		fmt.Fprintf(&b, "%d. r/%s (%d items)\n", i+1, entry.Origin, entry.Count)
	}
	b.WriteString("\n")

	b.WriteString("PERSONALITY TRAITS\n")
	b.WriteString(sub + "\n")
	for i, trait := range result.Traits {
		fmt.Fprintf(&b, "%d. %s (%d%% confidence)\n", i+1, trait.Trait, trait.Confidence)
		for _, ev := range trait.Evidence {
			fmt.Fprintf(&b, "   - [%s in r/%s] \"%s\"\n", ev.Kind, ev.Origin, ev.Snippet)
		}
	}
	b.WriteString("\n")

	b.WriteString("ENGAGEMENT STATISTICS\n")
	b.WriteString(sub + "\n")
	fmt.Fprintf(&b, "Total Posts: %d\n", result.Engagement.TotalPosts)
	fmt.Fprintf(&b, "Total Comments: %d\n", result.Engagement.TotalComments)
	fmt.Fprintf(&b, "Average Score: %.2f\n", result.Engagement.AvgScore)

	names := make([]string, 0, len(result.Engagement.TopOrigins))
	for _, entry := range result.Engagement.TopOrigins {
		names = append(names, entry.Origin)
	}
	fmt.Fprintf(&b, "Top Subreddits: %s\n\n", strings.Join(names, ", "))

	b.WriteString(rule + "\n")
	return b.String()
}

// ReportFilename derives the stored artifact name for one run.
func ReportFilename(username string, generatedAt time.Time) string {
	return fmt.Sprintf("persona_%s_%s.txt", username, generatedAt.Format("20060102_150405"))
}
