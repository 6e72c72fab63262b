// Package service implements the analytics aggregations and the insight pipeline
package service

import (
	"context"
	"time"

	"voicejournal/internal/core/analyze"
	"voicejournal/internal/modkit/repokit"
	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/logger"
	"voicejournal/internal/services/api/analytics/domain"
	"voicejournal/internal/services/api/analytics/repo"
)

const (
	// DefaultMaxTokens bounds the completion budget per insight
	DefaultMaxTokens = 200

	maxTopK     = 50
	weeklySpan  = 7
	defaultTopK = analyze.DefaultTopK
)

// Options tunes the insight pipeline
type Options struct {
	// MaxTokens is the completion token budget, DefaultMaxTokens when zero
	MaxTokens int

	// ReadThrough serves a cached insight for the exact period when present
	// instead of regenerating. Off by default so insights always reflect the
	// latest entries
	ReadThrough bool
}

// Service implements domain.ServicePort
type Service struct {
	pg        repokit.TxRunner
	binder    repokit.Binder[repo.Repo]
	completer domain.Completer
	opts      Options
	now       func() time.Time
}

// NewService constructs the analytics service. Panics if pg, binder or
// completer are nil
func NewService(
	pg repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	completer domain.Completer,
	opts Options,
) *Service {
	if pg == nil {
		panic("analytics: pg TxRunner is required")
	}
	if binder == nil {
		panic("analytics: repo binder is required")
	}
	if completer == nil {
		panic("analytics: completer is required")
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	return &Service{pg: pg, binder: binder, completer: completer, opts: opts, now: time.Now}
}

// MoodTrends buckets the user's entries by calendar day and tallies sentiment
func (s *Service) MoodTrends(ctx context.Context, userID string) (domain.MoodTrendsResult, error) {
	rows, err := s.binder.Bind(s.pg).ListEntries(ctx, userID)
	if err != nil {
		return domain.MoodTrendsResult{}, err
	}
	return domain.MoodTrendsResult{MoodTrends: analyze.ComputeMoodTrends(toAnalyzeEntries(rows))}, nil
}

// TopKeywords ranks the user's keywords by frequency. k defaults to 10 and
// is capped at 50
func (s *Service) TopKeywords(ctx context.Context, userID string, k int) (domain.TopKeywordsResult, error) {
	if k <= 0 {
		k = defaultTopK
	}
	if k > maxTopK {
		k = maxTopK
	}

	rows, err := s.binder.Bind(s.pg).ListEntries(ctx, userID)
	if err != nil {
		return domain.TopKeywordsResult{}, err
	}

	ranked := analyze.TopKeywords(toAnalyzeEntries(rows), k)
	pairs := make([]domain.KeywordPair, 0, len(ranked))
	for _, kc := range ranked {
		pairs = append(pairs, domain.KeywordPair(kc))
	}
	return domain.TopKeywordsResult{TopKeywords: pairs}, nil
}

// GenerateInsights runs the insight pipeline for an inclusive date period:
// fetch the period's entries, tally sentiment, ask the completion model for
// a summary, cache the result, return it. A failed completion degrades to
// the fallback summary; store failures stay fatal
func (s *Service) GenerateInsights(
	ctx context.Context,
	userID, startDate, endDate string,
) (domain.InsightOutcome, error) {
	start, err := time.Parse(analyze.DateLayout, startDate)
	if err != nil {
		return domain.InsightOutcome{}, perr.Validationf("start_date must be a YYYY-MM-DD date")
	}
	end, err := time.Parse(analyze.DateLayout, endDate)
	if err != nil {
		return domain.InsightOutcome{}, perr.Validationf("end_date must be a YYYY-MM-DD date")
	}
	if end.Before(start) {
		return domain.InsightOutcome{}, perr.Validationf("start_date must not be after end_date")
	}

	r := s.binder.Bind(s.pg)
	insightID := domain.InsightID(userID, startDate, endDate)

	if s.opts.ReadThrough {
		cached, err := r.GetInsight(ctx, insightID)
		switch {
		case err == nil:
			return outcomeFromRow(cached), nil
		case !perr.IsNotFound(err):
			return domain.InsightOutcome{}, err
		}
	}

	rows, err := r.ListEntriesRange(ctx, userID, start, end)
	if err != nil {
		return domain.InsightOutcome{}, err
	}
	if len(rows) == 0 {
		// a period without entries is a normal outcome and is never cached
		return domain.InsightOutcome{Empty: true}, nil
	}

	entries := toAnalyzeEntries(rows)
	counts := analyze.SentimentCounts(entries)

	transcriptions := make([]string, 0, len(rows))
	for _, row := range rows {
		transcriptions = append(transcriptions, row.Transcription)
	}
	prompt := analyze.BuildInsightPrompt(startDate, endDate, transcriptions)

	summary := analyze.FallbackSummary
	choices, err := s.completer.Complete(ctx, analyze.InsightSystemPrompt, prompt, s.opts.MaxTokens)
	switch {
	case err == nil:
		summary = analyze.NormalizeCompletion(choices)
	case ctx.Err() != nil:
		// the caller went away mid-generation, abandon the cache write
		return domain.InsightOutcome{}, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "insight generation cancelled")
	default:
		logger.C(ctx).Warn().Err(err).
			Str("user_id", userID).
			Str("period", startDate+".."+endDate).
			Msg("completion failed, serving fallback summary")
	}

	row := repo.InsightRow{
		InsightID:    insightID,
		UserID:       userID,
		StartDate:    start,
		EndDate:      end,
		Summary:      summary,
		Positive:     counts.Positive,
		Neutral:      counts.Neutral,
		Negative:     counts.Negative,
		TotalEntries: counts.Total(),
		CreatedAt:    s.now().UTC(),
	}
	if err := r.UpsertInsight(ctx, row); err != nil {
		return domain.InsightOutcome{}, err
	}

	return domain.InsightOutcome{
		InsightResult: domain.InsightResult{
			Summary:         summary,
			SentimentCounts: counts,
			TotalEntries:    counts.Total(),
		},
	}, nil
}

// WeeklyInsights generates insights for the trailing seven days, today included
func (s *Service) WeeklyInsights(ctx context.Context, userID string) (domain.InsightOutcome, error) {
	end := s.now().UTC()
	start := end.AddDate(0, 0, -(weeklySpan - 1))
	return s.GenerateInsights(ctx, userID,
		start.Format(analyze.DateLayout), end.Format(analyze.DateLayout))
}

func toAnalyzeEntries(rows []repo.EntryRow) []analyze.Entry {
	out := make([]analyze.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, analyze.Entry{
			CreatedAt:     row.CreatedAt,
			Sentiment:     analyze.Sentiment(row.Sentiment),
			Keywords:      row.Keywords,
			Transcription: row.Transcription,
		})
	}
	return out
}

func outcomeFromRow(row repo.InsightRow) domain.InsightOutcome {
	return domain.InsightOutcome{
		InsightResult: domain.InsightResult{
			Summary: row.Summary,
			SentimentCounts: analyze.MoodCounts{
				Positive: row.Positive,
				Neutral:  row.Neutral,
				Negative: row.Negative,
			},
			TotalEntries: row.TotalEntries,
		},
	}
}
