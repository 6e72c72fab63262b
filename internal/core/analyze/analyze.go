// Package analyze holds the pure aggregation logic behind the analytics endpoints.
// Everything here is deterministic and free of I/O so it can be tested without a store
package analyze

import "time"

// Sentiment is one of the three recognized mood labels
type Sentiment string

// Recognized sentiment labels. Anything else is coerced to SentimentNeutral
// at write time, so aggregation only ever sees these three
const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether s is one of the three recognized labels
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Coerce maps any unrecognized sentiment to neutral.
// This is the single fallback policy applied at write time
func Coerce(s Sentiment) Sentiment {
	if s.Valid() {
		return s
	}
	return SentimentNeutral
}

// Entry is the minimal projection of a journal entry the aggregators need
type Entry struct {
	CreatedAt     time.Time
	Sentiment     Sentiment
	Keywords      []string
	Transcription string
}

// MoodCounts tallies entries per sentiment label
type MoodCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Total returns the sum of the three counters
func (m MoodCounts) Total() int { return m.Positive + m.Neutral + m.Negative }

// add increments the counter matching s, coercing unknowns to neutral
func (m *MoodCounts) add(s Sentiment) {
	switch Coerce(s) {
	case SentimentPositive:
		m.Positive++
	case SentimentNegative:
		m.Negative++
	default:
		m.Neutral++
	}
}
