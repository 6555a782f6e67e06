package reddit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"persona-service/config"
	"persona-service/model"
)

var (
	ErrUserNotFound = errors.New("reddit user not found or account is suspended")
	ErrRateLimited  = errors.New("reddit rate limit exceeded")
)

// Client fetches user activity from Reddit's public JSON API.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:   cfg.RedditBaseURL,
		userAgent: cfg.RedditUserAgent,
		client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// FetchUserActivity pulls a user's newest posts and comments. Any
// failure aborts the whole analysis; there are no retries here.
func (c *Client) FetchUserActivity(ctx context.Context, username string, postLimit, commentLimit int) (*model.UserActivity, error) {
	postsURL := fmt.Sprintf("%s/user/%s/submitted.json?limit=%d", c.baseURL, username, postLimit)
	posts, err := c.fetchListing(ctx, postsURL)
	if err != nil {
		return nil, fmt.Errorf("fetching posts for u/%s: %w", username, err)
	}

	commentsURL := fmt.Sprintf("%s/user/%s/comments.json?limit=%d", c.baseURL, username, commentLimit)
	comments, err := c.fetchListing(ctx, commentsURL)
	if err != nil {
		return nil, fmt.Errorf("fetching comments for u/%s: %w", username, err)
	}

	log.Printf("[INFO] Fetched %d posts and %d comments for u/%s", len(posts), len(comments), username)
	return &model.UserActivity{Posts: posts, Comments: comments}, nil
}

func (c *Client) fetchListing(ctx context.Context, url string) ([]model.RawItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	log.Printf("[DEBUG] GET %s -> %d in %v", url, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUserNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var listing model.RedditListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, err
	}

	items := make([]model.RawItem, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		items = append(items, child.Data)
	}
	return items, nil
}
