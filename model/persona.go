package model

import "time"

const (
	KindPost    = "post"
	KindComment = "comment"
)

// ContentItem is the normalized unit of user activity. Every item has
// exactly one kind and its text is always a plain string, so keyword
// matching downstream never has to deal with missing fields.
type ContentItem struct {
	Kind   string `json:"kind"`
	Origin string `json:"origin"`
	Text   string `json:"text"`
	Score  int    `json:"score"`
	// Title carries the raw post title through normalization. Evidence
	// citations label anything that had a title as a post.
	Title string `json:"title,omitempty"`
}

// InterestEntry is one origin community with its item count.
type InterestEntry struct {
	Origin string `json:"origin" bson:"origin"`
	Count  int    `json:"count" bson:"count"`
}

// EvidenceRef cites a single item supporting a trait detection.
type EvidenceRef struct {
	Kind    string `json:"kind"`
	Snippet string `json:"snippet"`
	Origin  string `json:"origin"`
}

// TraitDetection is one fired rule from the trait catalog.
type TraitDetection struct {
	Trait      string        `json:"trait"`
	Evidence   []EvidenceRef `json:"evidence"`
	Confidence int           `json:"confidence"`
}

// EngagementSummary holds the aggregate activity counters.
type EngagementSummary struct {
	TotalPosts    int             `json:"total_posts"`
	TotalComments int             `json:"total_comments"`
	AvgScore      float64         `json:"avg_score"`
	TopOrigins    []InterestEntry `json:"top_origins"`
}

// PersonaResult is the full output of one analysis run.
type PersonaResult struct {
	Username   string            `json:"username"`
	Summary    string            `json:"summary"`
	Interests  []InterestEntry   `json:"interests"`
	Traits     []TraitDetection  `json:"traits"`
	Engagement EngagementSummary `json:"engagement"`
}

// Report is the rendered text artifact persisted for download.
type Report struct {
	Filename    string    `json:"filename" bson:"filename"`
	Username    string    `json:"username" bson:"username"`
	Body        string    `json:"body,omitempty" bson:"body"`
	GeneratedAt time.Time `json:"generated_at" bson:"generated_at"`
}

// AnalyzeProfileRequest is the incoming HTTP analysis request.
type AnalyzeProfileRequest struct {
	ProfileURL string `json:"profile_url" binding:"required"`
}

// AnalyzeRequest is a queued analysis job consumed by the worker.
type AnalyzeRequest struct {
	Username     string `json:"username"`
	PostLimit    int    `json:"postLimit"`
	CommentLimit int    `json:"commentLimit"`
	RequestID    string `json:"requestId"`
}

// AnalyzeResult is published after a queued analysis finishes.
type AnalyzeResult struct {
	Username   string    `json:"username"`
	ReportFile string    `json:"reportFile,omitempty"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	AnalyzedAt time.Time `json:"analyzedAt"`
	RequestID  string    `json:"requestId"`
}
