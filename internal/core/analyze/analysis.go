package analyze

import (
	"encoding/json"
	"strings"
)

// AnalysisSystemPrompt asks the completion model for a structured take on a
// single transcribed entry
const AnalysisSystemPrompt = "Analyze this journal entry for sentiment, keywords, and summary. " +
	`Respond with a single JSON object of the form ` +
	`{"sentiment":"positive|neutral|negative","summary":"...","keywords":["..."]} and nothing else.`

// Analysis is the structured result of analyzing one entry
type Analysis struct {
	Sentiment Sentiment `json:"sentiment"`
	Summary   string    `json:"summary"`
	Keywords  []string  `json:"keywords"`
}

// ParseAnalysis extracts a structured Analysis from completion output.
// The model does not always honor the JSON instruction, so anything that is
// not parseable degrades to a neutral analysis carrying the raw text as the
// summary. Absent or blank output degrades to the fallback summary.
// The returned sentiment is always one of the three recognized labels and
// keywords is never nil
func ParseAnalysis(choices []string) Analysis {
	raw := ""
	if len(choices) > 0 {
		raw = strings.TrimSpace(choices[0])
	}
	if raw == "" {
		return Analysis{Sentiment: SentimentNeutral, Summary: FallbackSummary, Keywords: []string{}}
	}

	var a Analysis
	if body, ok := jsonObject(raw); ok && json.Unmarshal([]byte(body), &a) == nil {
		a.Sentiment = Coerce(a.Sentiment)
		a.Summary = strings.TrimSpace(a.Summary)
		if a.Keywords == nil {
			a.Keywords = []string{}
		}
		return a
	}
	return Analysis{Sentiment: SentimentNeutral, Summary: raw, Keywords: []string{}}
}

// jsonObject trims prose or code fences around the first {...} span
func jsonObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
