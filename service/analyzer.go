package service

import (
	"context"
	"time"

	"persona-service/config"
	"persona-service/metrics"
	"persona-service/model"
)

// Fetcher supplies a user's raw Reddit activity.
type Fetcher interface {
	FetchUserActivity(ctx context.Context, username string, postLimit, commentLimit int) (*model.UserActivity, error)
}

// ReportSaver persists rendered reports.
type ReportSaver interface {
	Save(ctx context.Context, report model.Report) error
}

// Analyzer ties the pipeline together: fetch, infer, render, persist.
type Analyzer struct {
	fetcher      Fetcher
	reports      ReportSaver
	postLimit    int
	commentLimit int
	now          func() time.Time
}

func NewAnalyzer(fetcher Fetcher, reports ReportSaver, cfg *config.Config) *Analyzer {
	return &Analyzer{
		fetcher:      fetcher,
		reports:      reports,
		postLimit:    cfg.PostLimit,
		commentLimit: cfg.CommentLimit,
		now:          time.Now,
	}
}

// AnalyzeUser runs one full analysis with the configured fetch limits.
func (a *Analyzer) AnalyzeUser(ctx context.Context, username string) (*model.PersonaResult, *model.Report, error) {
	return a.AnalyzeUserWithLimits(ctx, username, 0, 0)
}

// AnalyzeUserWithLimits runs one full analysis; non-positive limits
// fall back to the configured defaults. A fetch failure aborts before
// any inference happens.
func (a *Analyzer) AnalyzeUserWithLimits(ctx context.Context, username string, postLimit, commentLimit int) (*model.PersonaResult, *model.Report, error) {
	if postLimit <= 0 {
		postLimit = a.postLimit
	}
	if commentLimit <= 0 {
		commentLimit = a.commentLimit
	}

	start := time.Now()
	activity, err := a.fetcher.FetchUserActivity(ctx, username, postLimit, commentLimit)
	metrics.RedditFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, nil, err
	}

	result := BuildPersona(username, activity.Posts, activity.Comments)

	generatedAt := a.now()
	report := model.Report{
		Filename:    ReportFilename(username, generatedAt),
		Username:    username,
		Body:        RenderReport(result, generatedAt),
		GeneratedAt: generatedAt,
	}
	if err := a.reports.Save(ctx, report); err != nil {
		return nil, nil, err
	}
	return &result, &report, nil
}
