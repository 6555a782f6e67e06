package service

import "persona-service/model"

// NormalizeItems merges raw posts and comments into one ordered
// sequence, posts first, each group keeping its original order. A
// post's text is its title, falling back to the body; a comment's
// text is its body. Missing fields degrade to defaults, so this never
// fails.
func NormalizeItems(posts, comments []model.RawItem) []model.ContentItem {
	items := make([]model.ContentItem, 0, len(posts)+len(comments))
	for _, p := range posts {
		text := p.Title
		if text == "" {
			text = p.Selftext
		}
		items = append(items, model.ContentItem{
			Kind:   model.KindPost,
			Origin: p.Subreddit,
			Text:   text,
			Score:  scoreOrZero(p.Score),
			Title:  p.Title,
		})
	}
	for _, c := range comments {
		items = append(items, model.ContentItem{
			Kind:   model.KindComment,
			Origin: c.Subreddit,
			Text:   c.Body,
			Score:  scoreOrZero(c.Score),
		})
	}
	return items
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
