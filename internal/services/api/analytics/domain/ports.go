package domain

import "context"

// ServicePort is the analytics surface other modules may call
type ServicePort interface {
	MoodTrends(ctx context.Context, userID string) (MoodTrendsResult, error)
	TopKeywords(ctx context.Context, userID string, k int) (TopKeywordsResult, error)
	GenerateInsights(ctx context.Context, userID, startDate, endDate string) (InsightOutcome, error)
	WeeklyInsights(ctx context.Context, userID string) (InsightOutcome, error)
}

// Completer produces chat completion choices for insight generation.
// Zero choices is a legal response the service normalizes
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) ([]string, error)
}
