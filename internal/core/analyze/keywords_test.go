package analyze_test

import (
	"fmt"
	"testing"

	"voicejournal/internal/core/analyze"
)

func TestTopKeywords_CountsAndOrder(t *testing.T) {
	entries := []analyze.Entry{
		{Keywords: []string{"work", "sleep", "work"}},
		{Keywords: []string{"sleep", "work", "coffee"}},
	}

	got := analyze.TopKeywords(entries, 10)

	want := []analyze.KeywordCount{
		{Keyword: "work", Count: 3},
		{Keyword: "sleep", Count: 2},
		{Keyword: "coffee", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d keywords, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestTopKeywords_TiesPreserveFirstSeenOrder(t *testing.T) {
	// b appears first, both end at count 2, so b must come first
	entries := []analyze.Entry{
		{Keywords: []string{"b", "a", "b", "a"}},
	}

	got := analyze.TopKeywords(entries, 10)

	if len(got) != 2 {
		t.Fatalf("got %d keywords, want 2", len(got))
	}
	if got[0] != (analyze.KeywordCount{Keyword: "b", Count: 2}) {
		t.Fatalf("first: got %+v", got[0])
	}
	if got[1] != (analyze.KeywordCount{Keyword: "a", Count: 2}) {
		t.Fatalf("second: got %+v", got[1])
	}
}

func TestTopKeywords_TruncatesToK(t *testing.T) {
	var entries []analyze.Entry
	for i := 0; i < 15; i++ {
		entries = append(entries, analyze.Entry{Keywords: []string{fmt.Sprintf("kw%02d", i)}})
	}

	got := analyze.TopKeywords(entries, 5)
	if len(got) != 5 {
		t.Fatalf("got %d keywords, want 5", len(got))
	}
}

func TestTopKeywords_DefaultK(t *testing.T) {
	var entries []analyze.Entry
	for i := 0; i < 15; i++ {
		entries = append(entries, analyze.Entry{Keywords: []string{fmt.Sprintf("kw%02d", i)}})
	}

	got := analyze.TopKeywords(entries, 0)
	if len(got) != analyze.DefaultTopK {
		t.Fatalf("got %d keywords, want %d", len(got), analyze.DefaultTopK)
	}
}

func TestTopKeywords_CountsNonIncreasingAndPositive(t *testing.T) {
	entries := []analyze.Entry{
		{Keywords: []string{"x", "y", "x", "z", "z", "z"}},
		{Keywords: []string{"y", "x"}},
	}

	got := analyze.TopKeywords(entries, 10)
	prev := int(^uint(0) >> 1)
	for _, kc := range got {
		if kc.Count < 1 {
			t.Fatalf("count below 1: %+v", kc)
		}
		if kc.Count > prev {
			t.Fatalf("counts increased: %+v after %d", kc, prev)
		}
		prev = kc.Count
	}
}

func TestTopKeywords_NilKeywordsContributeNothing(t *testing.T) {
	entries := []analyze.Entry{
		{Keywords: nil},
		{Keywords: []string{"solo"}},
	}

	got := analyze.TopKeywords(entries, 10)
	if len(got) != 1 || got[0].Keyword != "solo" {
		t.Fatalf("got %+v", got)
	}
}

func TestTopKeywords_EmptyInput(t *testing.T) {
	if got := analyze.TopKeywords(nil, 10); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}

func TestTopKeywords_CaseSensitive(t *testing.T) {
	entries := []analyze.Entry{
		{Keywords: []string{"Work", "work"}},
	}

	got := analyze.TopKeywords(entries, 10)
	if len(got) != 2 {
		t.Fatalf("expected case-sensitive distinct keywords, got %+v", got)
	}
}
