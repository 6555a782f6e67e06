package model

// RawItem is a loosely typed post or comment record straight off the
// Reddit API. Posts carry title/selftext, comments carry body; the
// score can be missing entirely.
type RawItem struct {
	Title     string `json:"title"`
	Selftext  string `json:"selftext"`
	Body      string `json:"body"`
	Subreddit string `json:"subreddit"`
	Score     *int   `json:"score"`
}

// UserActivity groups one user's raw posts and comments.
type UserActivity struct {
	Posts    []RawItem
	Comments []RawItem
}

// RedditListing is the Reddit API listing envelope.
type RedditListing struct {
	Data struct {
		Children []struct {
			Data RawItem `json:"data"`
		} `json:"children"`
	} `json:"data"`
}
