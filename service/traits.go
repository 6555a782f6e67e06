package service

import (
	"strings"

	"persona-service/model"
	"persona-service/utils"
)

const maxEvidence = 2

// traitRule is one entry of the fixed trait catalog. Rules either
// match a keyword set against the item text (or origin, when
// MatchOrigin is set) or, for comment-only rules, require the text to
// exceed MinTextLen. A rule fires only when its match count strictly
// exceeds Threshold; confidence is matchCount*Multiplier capped at 100.
type traitRule struct {
	Label        string
	Keywords     []string
	MatchOrigin  bool
	CommentsOnly bool
	MinTextLen   int
	Threshold    int
	Multiplier   int
	SnippetLen   int
}

// Catalog order is evaluation and output order.
var traitRules = []traitRule{
	{
		Label:      "Helpful and Supportive",
		Keywords:   []string{"help", "advice", "suggestion", "recommend", "try this", "solution"},
		Threshold:  3,
		Multiplier: 10,
		SnippetLen: 100,
	},
	{
		Label:      "Technology Enthusiast",
		Keywords:   []string{"code", "programming", "software", "tech", "development", "algorithm"},
		Threshold:  2,
		Multiplier: 15,
		SnippetLen: 100,
	},
	{
		Label:       "Creative and Artistic",
		Keywords:    []string{"art", "music", "writing", "photography", "design", "creative"},
		MatchOrigin: true,
		Threshold:   1,
		Multiplier:  20,
		SnippetLen:  100,
	},
	{
		Label:        "Thoughtful Communicator",
		CommentsOnly: true,
		MinTextLen:   200,
		Threshold:    5,
		Multiplier:   8,
		SnippetLen:   150,
	},
}

func (r traitRule) matches(item model.ContentItem) bool {
	if r.CommentsOnly {
		return item.Kind == model.KindComment && len(item.Text) > r.MinTextLen
	}
	field := item.Text
	if r.MatchOrigin {
		field = item.Origin
	}
	field = strings.ToLower(field)
	for _, kw := range r.Keywords {
		if strings.Contains(field, kw) {
			return true
		}
	}
	return false
}

// DetectTraits evaluates the trait catalog over the combined item
// sequence. Rules are independent, so one item can back several
// traits. Zero detections is a valid outcome.
func DetectTraits(items []model.ContentItem) []model.TraitDetection {
	traits := []model.TraitDetection{}
	for _, rule := range traitRules {
		var matched []model.ContentItem
		for _, it := range items {
			if rule.matches(it) {
				matched = append(matched, it)
			}
		}
		if len(matched) <= rule.Threshold {
			continue
		}

		confidence := len(matched) * rule.Multiplier
		if confidence > 100 {
			confidence = 100
		}

		cited := matched
		if len(cited) > maxEvidence {
			cited = cited[:maxEvidence]
		}
		evidence := make([]model.EvidenceRef, 0, len(cited))
		for _, it := range cited {
			evidence = append(evidence, model.EvidenceRef{
				Kind:    evidenceKind(it),
				Snippet: utils.Truncate(it.Text, rule.SnippetLen),
				Origin:  it.Origin,
			})
		}

		traits = append(traits, model.TraitDetection{
			Trait:      rule.Label,
			Evidence:   evidence,
			Confidence: confidence,
		})
	}
	return traits
}

// evidenceKind re-derives the citation tag from the raw title: any
// item that carried a title is labeled a post. This intentionally
// does not consult the normalized Kind field.
func evidenceKind(item model.ContentItem) string {
	if item.Title != "" {
		return model.KindPost
	}
	return model.KindComment
}
