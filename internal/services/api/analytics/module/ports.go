package module

import (
	"context"

	"voicejournal/internal/services/api/analytics/domain"
	analyticssvc "voicejournal/internal/services/api/analytics/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAnalyticsPort struct{ svc *analyticssvc.Service }

// MoodTrends returns per-day sentiment counts for the user
func (a adaptAnalyticsPort) MoodTrends(ctx context.Context, userID string) (domain.MoodTrendsResult, error) {
	return a.svc.MoodTrends(ctx, userID)
}

// TopKeywords returns the user's most frequent keywords
func (a adaptAnalyticsPort) TopKeywords(
	ctx context.Context,
	userID string,
	k int,
) (domain.TopKeywordsResult, error) {
	return a.svc.TopKeywords(ctx, userID, k)
}

// GenerateInsights runs the insight pipeline for an inclusive date period
func (a adaptAnalyticsPort) GenerateInsights(
	ctx context.Context,
	userID, startDate, endDate string,
) (domain.InsightOutcome, error) {
	return a.svc.GenerateInsights(ctx, userID, startDate, endDate)
}

// WeeklyInsights runs the insight pipeline for the trailing week
func (a adaptAnalyticsPort) WeeklyInsights(ctx context.Context, userID string) (domain.InsightOutcome, error) {
	return a.svc.WeeklyInsights(ctx, userID)
}
