// Package domain holds the analytics module's wire types and ports
package domain

import (
	"encoding/json"

	"voicejournal/internal/core/analyze"
)

// EmptyPeriodMessage is returned when an insight period holds no entries.
// An empty period is a normal outcome, not an error
const EmptyPeriodMessage = "No journal entries for this period."

// MoodTrendsResult maps calendar days to per-sentiment counts
type MoodTrendsResult struct {
	MoodTrends map[string]analyze.MoodCounts `json:"moodTrends"`
}

// KeywordPair serializes as a [keyword, count] tuple
type KeywordPair analyze.KeywordCount

// MarshalJSON emits the pair as a two element array. Keywords are stored
// verbatim, so escaping is left to the encoder
func (p KeywordPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Keyword, p.Count})
}

// TopKeywordsResult lists the most frequent keywords as tuples
type TopKeywordsResult struct {
	TopKeywords []KeywordPair `json:"topKeywords"`
}

// InsightResult is the generated period insight
type InsightResult struct {
	Summary         string             `json:"summary"`
	SentimentCounts analyze.MoodCounts `json:"sentimentCounts"`
	TotalEntries    int                `json:"totalEntries"`
}

// InsightOutcome wraps InsightResult with the empty-period sentinel.
// Empty means no entries matched the period and nothing was cached
type InsightOutcome struct {
	Empty bool
	InsightResult
}

// EmptyPeriodResult is the body returned for an empty period
type EmptyPeriodResult struct {
	Message string `json:"message" example:"No journal entries for this period."`
}

// InsightID builds the deterministic cache key for a user and period
func InsightID(userID, startDate, endDate string) string {
	return userID + "#" + startDate + "#" + endDate
}
