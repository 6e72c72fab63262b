package analyze

// DateLayout is the calendar-day bucket key format
const DateLayout = "2006-01-02"

// ComputeMoodTrends groups entries by calendar day and tallies sentiment per day.
// The day is the entry's recorded timestamp truncated to a date, no timezone
// conversion beyond what the timestamp itself carries.
// Empty input yields an empty map
func ComputeMoodTrends(entries []Entry) map[string]MoodCounts {
	trends := make(map[string]MoodCounts, len(entries))
	for _, e := range entries {
		date := e.CreatedAt.Format(DateLayout)
		counts := trends[date]
		counts.add(e.Sentiment)
		trends[date] = counts
	}
	return trends
}

// SentimentCounts tallies all entries into a single MoodCounts,
// used by the insight generator for period totals
func SentimentCounts(entries []Entry) MoodCounts {
	var counts MoodCounts
	for _, e := range entries {
		counts.add(e.Sentiment)
	}
	return counts
}
