// Package http wires analytics routes to the service port
package http

import (
	"net/http"
	"strconv"

	perr "voicejournal/internal/platform/errors"

	"voicejournal/internal/modkit/httpkit"
	"voicejournal/internal/services/api/analytics/domain"
)

// Register mounts the analytics routes on r
func Register(r httpkit.Router, svc domain.ServicePort) {
	httpkit.Get(r, "/mood-trends", moodTrendsHandler(svc))
	httpkit.Get(r, "/top-keywords", topKeywordsHandler(svc))
	httpkit.Get(r, "/insights", insightsHandler(svc))
	httpkit.Get(r, "/weekly-insights", weeklyInsightsHandler(svc))
}

// moodTrendsHandler godoc
// @Summary Mood trends over time
// @Description Buckets the caller's entries by calendar day with per-sentiment counts
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.MoodTrendsResult
// @Router /analytics/mood-trends [get]
func moodTrendsHandler(svc domain.ServicePort) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		return svc.MoodTrends(r.Context(), httpkit.MustUser(r))
	}
}

// topKeywordsHandler godoc
// @Summary Most frequent keywords
// @Description Ranks the caller's keywords by occurrence count, ties in first-seen order
// @Tags analytics
// @Produce json
// @Param k query int false "List length, default 10, max 50"
// @Success 200 {object} domain.TopKeywordsResult
// @Router /analytics/top-keywords [get]
func topKeywordsHandler(svc domain.ServicePort) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		k, _ := strconv.Atoi(r.URL.Query().Get("k"))
		return svc.TopKeywords(r.Context(), httpkit.MustUser(r), k)
	}
}

// insightsHandler godoc
// @Summary Generate period insights
// @Description Tallies sentiment for an inclusive date period and asks the AI for a summary
// @Tags analytics
// @Produce json
// @Param start_date query string true "Period start, YYYY-MM-DD"
// @Param end_date query string true "Period end, YYYY-MM-DD, inclusive"
// @Success 200 {object} domain.InsightResult
// @Failure 400 {object} httpkit.Envelope
// @Router /analytics/insights [get]
func insightsHandler(svc domain.ServicePort) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		start := r.URL.Query().Get("start_date")
		end := r.URL.Query().Get("end_date")
		if start == "" || end == "" {
			return nil, perr.Validationf("start_date and end_date are required")
		}
		out, err := svc.GenerateInsights(r.Context(), httpkit.MustUser(r), start, end)
		if err != nil {
			return nil, err
		}
		return outcomeBody(out), nil
	}
}

// weeklyInsightsHandler godoc
// @Summary Insights for the trailing week
// @Description Generates insights for the last seven days, today included
// @Tags analytics
// @Produce json
// @Success 200 {object} domain.InsightResult
// @Router /analytics/weekly-insights [get]
func weeklyInsightsHandler(svc domain.ServicePort) func(*http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		out, err := svc.WeeklyInsights(r.Context(), httpkit.MustUser(r))
		if err != nil {
			return nil, err
		}
		return outcomeBody(out), nil
	}
}

func outcomeBody(out domain.InsightOutcome) any {
	if out.Empty {
		return domain.EmptyPeriodResult{Message: domain.EmptyPeriodMessage}
	}
	return out.InsightResult
}
