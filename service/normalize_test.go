package service

import (
	"testing"

	"persona-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNormalizeItemsOrderAndFallbacks(t *testing.T) {
	posts := []model.RawItem{
		{Title: "First post", Subreddit: "golang", Score: intPtr(5)},
		{Title: "", Selftext: "body only", Subreddit: "rust"},
	}
	comments := []model.RawItem{
		{Body: "a comment", Subreddit: "python", Score: intPtr(-2)},
	}

	items := NormalizeItems(posts, comments)
	require.Len(t, items, 3)

	assert.Equal(t, model.KindPost, items[0].Kind)
	assert.Equal(t, "First post", items[0].Text)
	assert.Equal(t, "First post", items[0].Title)
	assert.Equal(t, "golang", items[0].Origin)
	assert.Equal(t, 5, items[0].Score)

	// Title missing: text falls back to the body, Title stays empty.
	assert.Equal(t, "body only", items[1].Text)
	assert.Empty(t, items[1].Title)

	assert.Equal(t, model.KindComment, items[2].Kind)
	assert.Equal(t, "a comment", items[2].Text)
	assert.Empty(t, items[2].Title)
	assert.Equal(t, -2, items[2].Score)
}

func TestNormalizeItemsDefaults(t *testing.T) {
	posts := []model.RawItem{{Subreddit: "golang"}}
	comments := []model.RawItem{{Subreddit: "rust"}}

	items := NormalizeItems(posts, comments)
	require.Len(t, items, 2)

	for _, it := range items {
		assert.Equal(t, 0, it.Score)
		assert.Equal(t, "", it.Text)
	}
}

func TestNormalizeItemsEmptyInput(t *testing.T) {
	items := NormalizeItems(nil, nil)
	assert.Empty(t, items)
}
