package utils

import (
	"regexp"
	"strings"
)

var profilePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)reddit\.com/u/([^/?#\s]+)`),
	regexp.MustCompile(`(?i)reddit\.com/user/([^/?#\s]+)`),
	regexp.MustCompile(`(?i)reddit\.com/users/([^/?#\s]+)`),
}

// ExtractUsername pulls a Reddit username out of a profile URL, a
// u/-prefixed handle, or a bare username. Returns "" when nothing
// usable is found.
func ExtractUsername(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http") {
		return strings.TrimPrefix(raw, "u/")
	}
	for _, p := range profilePatterns {
		if m := p.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
	}
	return ""
}

// Truncate caps text at maxLen characters, marking the cut with an
// ellipsis.
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}
