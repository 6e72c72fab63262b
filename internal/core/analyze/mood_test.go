package analyze_test

import (
	"testing"
	"time"

	"voicejournal/internal/core/analyze"
)

func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestComputeMoodTrends_ExampleScenario(t *testing.T) {
	entries := []analyze.Entry{
		{Sentiment: analyze.SentimentPositive, CreatedAt: ts(t, "2024-01-01T10:00:00Z")},
		{Sentiment: analyze.SentimentNegative, CreatedAt: ts(t, "2024-01-01T12:00:00Z")},
		{Sentiment: analyze.SentimentPositive, CreatedAt: ts(t, "2024-01-02T09:00:00Z")},
	}

	trends := analyze.ComputeMoodTrends(entries)

	if len(trends) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(trends))
	}
	if got := trends["2024-01-01"]; got != (analyze.MoodCounts{Positive: 1, Neutral: 0, Negative: 1}) {
		t.Fatalf("2024-01-01: got %+v", got)
	}
	if got := trends["2024-01-02"]; got != (analyze.MoodCounts{Positive: 1, Neutral: 0, Negative: 0}) {
		t.Fatalf("2024-01-02: got %+v", got)
	}
}

func TestComputeMoodTrends_CountersSumToEntriesPerDate(t *testing.T) {
	entries := []analyze.Entry{
		{Sentiment: analyze.SentimentPositive, CreatedAt: ts(t, "2024-03-05T08:00:00Z")},
		{Sentiment: analyze.SentimentNeutral, CreatedAt: ts(t, "2024-03-05T09:00:00Z")},
		{Sentiment: analyze.SentimentNegative, CreatedAt: ts(t, "2024-03-05T10:00:00Z")},
		{Sentiment: analyze.SentimentNeutral, CreatedAt: ts(t, "2024-03-06T10:00:00Z")},
	}

	trends := analyze.ComputeMoodTrends(entries)

	perDate := map[string]int{}
	for _, e := range entries {
		perDate[e.CreatedAt.Format(analyze.DateLayout)]++
	}
	for date, counts := range trends {
		if counts.Total() != perDate[date] {
			t.Fatalf("%s: counters sum to %d, want %d", date, counts.Total(), perDate[date])
		}
	}
}

func TestComputeMoodTrends_UnknownSentimentCountsAsNeutral(t *testing.T) {
	entries := []analyze.Entry{
		{Sentiment: "ecstatic", CreatedAt: ts(t, "2024-01-01T10:00:00Z")},
		{Sentiment: "", CreatedAt: ts(t, "2024-01-01T11:00:00Z")},
	}

	trends := analyze.ComputeMoodTrends(entries)

	if got := trends["2024-01-01"]; got != (analyze.MoodCounts{Neutral: 2}) {
		t.Fatalf("got %+v, want all-neutral", got)
	}
}

func TestComputeMoodTrends_EmptyInput(t *testing.T) {
	if got := analyze.ComputeMoodTrends(nil); len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestSentimentCounts(t *testing.T) {
	entries := []analyze.Entry{
		{Sentiment: analyze.SentimentPositive},
		{Sentiment: analyze.SentimentPositive},
		{Sentiment: analyze.SentimentNegative},
		{Sentiment: "weird"},
	}

	got := analyze.SentimentCounts(entries)
	want := analyze.MoodCounts{Positive: 2, Neutral: 1, Negative: 1}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
	if got.Total() != len(entries) {
		t.Fatalf("total %d, want %d", got.Total(), len(entries))
	}
}

func TestCoerce(t *testing.T) {
	if analyze.Coerce("positive") != analyze.SentimentPositive {
		t.Fatal("positive should pass through")
	}
	if analyze.Coerce("angry") != analyze.SentimentNeutral {
		t.Fatal("unknown should coerce to neutral")
	}
	if analyze.Coerce("") != analyze.SentimentNeutral {
		t.Fatal("empty should coerce to neutral")
	}
}
