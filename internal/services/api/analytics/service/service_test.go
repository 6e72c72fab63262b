package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"voicejournal/internal/core/analyze"
	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/store"
	"voicejournal/internal/platform/testkit"
	"voicejournal/internal/services/api/analytics/domain"
	"voicejournal/internal/services/api/analytics/repo"
)

type noopTx struct{}

func (noopTx) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (noopTx) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (noopTx) QueryRow(context.Context, string, ...any) store.Row             { return nil }
func (noopTx) Tx(ctx context.Context, fn func(q store.RowQuerier) error) error {
	return fn(noopTx{})
}

type fakeRepo struct {
	entries  []repo.EntryRow
	insights map[string]repo.InsightRow
	upserts  int
}

type fakeBinder struct{ r *fakeRepo }

func (b fakeBinder) Bind(store.RowQuerier) repo.Repo { return b.r }

func (f *fakeRepo) ListEntries(context.Context, string) ([]repo.EntryRow, error) {
	return f.entries, nil
}

func (f *fakeRepo) ListEntriesRange(_ context.Context, _ string, start, end time.Time) ([]repo.EntryRow, error) {
	var out []repo.EntryRow
	for _, e := range f.entries {
		day := e.CreatedAt.Truncate(24 * time.Hour)
		if !day.Before(start) && !day.After(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpsertInsight(_ context.Context, row repo.InsightRow) error {
	if f.insights == nil {
		f.insights = make(map[string]repo.InsightRow)
	}
	f.insights[row.InsightID] = row
	f.upserts++
	return nil
}

func (f *fakeRepo) GetInsight(_ context.Context, insightID string) (repo.InsightRow, error) {
	row, ok := f.insights[insightID]
	if !ok {
		return repo.InsightRow{}, perr.NotFoundf("no rows")
	}
	return row, nil
}

type stubCompleter struct {
	choices []string
	err     error
	calls   int
	block   chan struct{} // when set, waits for close before returning
}

func (c *stubCompleter) Complete(ctx context.Context, _, _ string, _ int) ([]string, error) {
	c.calls++
	if c.block != nil {
		select {
		case <-c.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.choices, nil
}

func day(d string) time.Time {
	t, err := time.Parse(analyze.DateLayout, d)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(d, sentiment, transcription string, keywords ...string) repo.EntryRow {
	return repo.EntryRow{
		CreatedAt:     day(d),
		Sentiment:     sentiment,
		Keywords:      keywords,
		Transcription: transcription,
	}
}

func newService(f *fakeRepo, c *stubCompleter, opts Options) *Service {
	return NewService(noopTx{}, fakeBinder{r: f}, c, opts)
}

func TestMoodTrends(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{
		entry("2024-01-01", "positive", "a"),
		entry("2024-01-01", "negative", "b"),
		entry("2024-01-02", "neutral", "c"),
	}}
	s := newService(f, &stubCompleter{}, Options{})

	out, err := s.MoodTrends(context.Background(), "u1")
	testkit.MustNoErr(t, err)

	want := map[string]analyze.MoodCounts{
		"2024-01-01": {Positive: 1, Negative: 1},
		"2024-01-02": {Neutral: 1},
	}
	if len(out.MoodTrends) != len(want) {
		t.Fatalf("got %d buckets, want %d", len(out.MoodTrends), len(want))
	}
	for k, v := range want {
		if out.MoodTrends[k] != v {
			t.Fatalf("bucket %s: got %+v want %+v", k, out.MoodTrends[k], v)
		}
	}
}

func TestTopKeywordsClampAndOrder(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{
		entry("2024-01-01", "neutral", "x", "b", "a"),
		entry("2024-01-02", "neutral", "y", "a", "b", "c"),
	}}
	s := newService(f, &stubCompleter{}, Options{})

	out, err := s.TopKeywords(context.Background(), "u1", 2)
	testkit.MustNoErr(t, err)

	if len(out.TopKeywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(out.TopKeywords))
	}
	// b and a both occur twice; b was seen first
	if out.TopKeywords[0].Keyword != "b" || out.TopKeywords[1].Keyword != "a" {
		t.Fatalf("tie must preserve first-seen order, got %+v", out.TopKeywords)
	}

	// oversized k is capped, zero falls back to the default
	if _, err := s.TopKeywords(context.Background(), "u1", 9000); err != nil {
		t.Fatal(err)
	}
	empty, err := s.TopKeywords(context.Background(), "u1", 0)
	testkit.MustNoErr(t, err)
	if empty.TopKeywords == nil {
		t.Fatal("topKeywords must serialize as a list, not null")
	}
}

func TestTopKeywordsPairJSONShape(t *testing.T) {
	p := domain.KeywordPair{Keyword: "walk", Count: 3}
	b, err := p.MarshalJSON()
	testkit.MustNoErr(t, err)
	if string(b) != `["walk",3]` {
		t.Fatalf("unexpected tuple encoding %s", b)
	}

	// keywords are stored verbatim, so control characters must survive a
	// full encode pass as valid JSON
	raw, err := json.Marshal(domain.TopKeywordsResult{
		TopKeywords: []domain.KeywordPair{{Keyword: "bell\acoffee", Count: 2}},
	})
	testkit.MustNoErr(t, err)

	var round struct {
		TopKeywords [][2]any `json:"topKeywords"`
	}
	testkit.MustNoErr(t, json.Unmarshal(raw, &round))
	if len(round.TopKeywords) != 1 || round.TopKeywords[0][0] != "bell\acoffee" {
		t.Fatalf("control character keyword must round-trip, got %+v", round.TopKeywords)
	}
}

func TestGenerateInsightsHappyPath(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{
		entry("2024-01-01", "positive", "went for a walk"),
		entry("2024-01-02", "negative", "rough day"),
		entry("2024-01-03", "neutral", "quiet evening"),
	}}
	c := &stubCompleter{choices: []string{"  You had a balanced week.  "}}
	s := newService(f, c, Options{})

	out, err := s.GenerateInsights(context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)

	if out.Empty {
		t.Fatal("period with entries must not be empty")
	}
	if out.Summary != "You had a balanced week." {
		t.Fatalf("summary must be the trimmed first choice, got %q", out.Summary)
	}
	want := analyze.MoodCounts{Positive: 1, Neutral: 1, Negative: 1}
	if out.SentimentCounts != want || out.TotalEntries != 3 {
		t.Fatalf("unexpected counts %+v total %d", out.SentimentCounts, out.TotalEntries)
	}

	cached, err := f.GetInsight(context.Background(), domain.InsightID("u1", "2024-01-01", "2024-01-07"))
	testkit.MustNoErr(t, err)
	if cached.Summary != out.Summary || cached.TotalEntries != 3 {
		t.Fatalf("cached insight mismatch %+v", cached)
	}
}

func TestGenerateInsightsEmptyPeriodSkipsCache(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{entry("2024-06-01", "positive", "later")}}
	c := &stubCompleter{choices: []string{"unused"}}
	s := newService(f, c, Options{})

	out, err := s.GenerateInsights(context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)

	if !out.Empty {
		t.Fatal("expected the empty-period sentinel")
	}
	if c.calls != 0 {
		t.Fatal("empty period must not invoke the completion model")
	}
	if f.upserts != 0 {
		t.Fatal("empty period must not write to the cache")
	}
}

func TestGenerateInsightsEmptyChoicesFallback(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{
		entry("2024-01-01", "positive", "a"),
		entry("2024-01-02", "positive", "b"),
	}}
	s := newService(f, &stubCompleter{choices: nil}, Options{})

	out, err := s.GenerateInsights(context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)

	if out.Summary != analyze.FallbackSummary {
		t.Fatalf("expected fallback summary, got %q", out.Summary)
	}
	if out.SentimentCounts.Positive != 2 || out.TotalEntries != 2 {
		t.Fatalf("counts must survive a degraded completion, got %+v", out.SentimentCounts)
	}
	if f.upserts != 1 {
		t.Fatal("degraded insight must still be cached")
	}
}

func TestGenerateInsightsCompleterErrorDegrades(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{entry("2024-01-01", "negative", "a")}}
	s := newService(f, &stubCompleter{err: errors.New("rate limited")}, Options{})

	out, err := s.GenerateInsights(context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)

	if out.Summary != analyze.FallbackSummary {
		t.Fatalf("collaborator failure must degrade to the fallback, got %q", out.Summary)
	}
	if f.upserts != 1 {
		t.Fatal("fallback insight must still be cached")
	}
}

func TestGenerateInsightsOverwriteIsIdempotent(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{entry("2024-01-01", "positive", "a")}}
	c := &stubCompleter{choices: []string{"first"}}
	s := newService(f, c, Options{})

	_, err := s.GenerateInsights(context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)

	c.choices = []string{"second"}
	out, err := s.GenerateInsights(context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)

	if out.Summary != "second" {
		t.Fatalf("regeneration must overwrite, got %q", out.Summary)
	}
	if len(f.insights) != 1 {
		t.Fatalf("same period must stay a single cache row, got %d", len(f.insights))
	}
	row := f.insights[domain.InsightID("u1", "2024-01-01", "2024-01-07")]
	if row.Summary != "second" {
		t.Fatalf("cache row must hold the latest summary, got %q", row.Summary)
	}
}

func TestGenerateInsightsCancellationSkipsCacheWrite(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{entry("2024-01-01", "positive", "a")}}
	c := &stubCompleter{block: make(chan struct{})}
	s := newService(f, c, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GenerateInsights(ctx, "u1", "2024-01-01", "2024-01-07")
	if err == nil {
		t.Fatal("cancelled generation must fail")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if f.upserts != 0 {
		t.Fatal("cancelled generation must not write to the cache")
	}
}

func TestGenerateInsightsValidation(t *testing.T) {
	s := newService(&fakeRepo{}, &stubCompleter{}, Options{})

	cases := []struct{ start, end string }{
		{"not-a-date", "2024-01-07"},
		{"2024-01-01", "01/07/2024"},
		{"2024-01-07", "2024-01-01"},
	}
	for _, tc := range cases {
		_, err := s.GenerateInsights(context.Background(), "u1", tc.start, tc.end)
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("start=%s end=%s: expected validation error, got %v", tc.start, tc.end, err)
		}
	}
}

func TestGenerateInsightsReadThrough(t *testing.T) {
	id := domain.InsightID("u1", "2024-01-01", "2024-01-07")
	f := &fakeRepo{
		entries: []repo.EntryRow{entry("2024-01-01", "positive", "a")},
		insights: map[string]repo.InsightRow{
			id: {InsightID: id, Summary: "cached", Positive: 9, TotalEntries: 9},
		},
	}
	c := &stubCompleter{choices: []string{"fresh"}}

	// read-through off regenerates
	out, err := newService(f, c, Options{}).GenerateInsights(
		context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)
	if out.Summary != "fresh" || c.calls != 1 {
		t.Fatalf("default must always regenerate, got %q after %d calls", out.Summary, c.calls)
	}

	// read-through on serves the cached row without calling the model
	f.insights[id] = repo.InsightRow{InsightID: id, Summary: "cached", Positive: 9, TotalEntries: 9}
	out, err = newService(f, c, Options{ReadThrough: true}).GenerateInsights(
		context.Background(), "u1", "2024-01-01", "2024-01-07")
	testkit.MustNoErr(t, err)
	if out.Summary != "cached" || out.TotalEntries != 9 {
		t.Fatalf("read-through must serve the cached insight, got %+v", out)
	}
	if c.calls != 1 {
		t.Fatalf("read-through hit must not invoke the model, calls=%d", c.calls)
	}
}

func TestWeeklyInsightsSpansSevenDays(t *testing.T) {
	f := &fakeRepo{entries: []repo.EntryRow{
		entry("2024-03-04", "positive", "in range"),
		entry("2024-02-26", "negative", "too old"),
	}}
	c := &stubCompleter{choices: []string{"weekly"}}
	s := newService(f, c, Options{})
	s.now = func() time.Time { return day("2024-03-10") }

	out, err := s.WeeklyInsights(context.Background(), "u1")
	testkit.MustNoErr(t, err)

	if out.TotalEntries != 1 || out.SentimentCounts.Positive != 1 {
		t.Fatalf("week must cover the trailing 7 days only, got %+v", out)
	}
	if _, ok := f.insights[domain.InsightID("u1", "2024-03-04", "2024-03-10")]; !ok {
		t.Fatalf("unexpected cache keys %v", f.insights)
	}
}

func TestNewServicePanicsOnNilDeps(t *testing.T) {
	f := fakeBinder{r: &fakeRepo{}}
	c := &stubCompleter{}
	testkit.MustPanic(t, func() { NewService(nil, f, c, Options{}) })
	testkit.MustPanic(t, func() { NewService(noopTx{}, nil, c, Options{}) })
	testkit.MustPanic(t, func() { NewService(noopTx{}, f, nil, Options{}) })
}
