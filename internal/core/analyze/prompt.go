package analyze

import (
	"fmt"
	"strings"
)

// InsightSystemPrompt frames the completion model as a journaling assistant
const InsightSystemPrompt = "You are a reflective journaling assistant. " +
	"You read a user's journal entries for a period and respond with a short, warm, plain-text insight."

// FallbackSummary is returned when the completion collaborator fails or
// produces no usable text. The pipeline never fails on generation alone
const FallbackSummary = "AI could not generate insights."

// BuildInsightPrompt assembles the user prompt for period insights: the date
// range, the newline-joined transcriptions, and three fixed instructions
func BuildInsightPrompt(startDate, endDate string, transcriptions []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Journal entries from %s to %s:\n\n", startDate, endDate)
	b.WriteString(strings.Join(transcriptions, "\n"))
	b.WriteString("\n\n")
	b.WriteString("1. Summarize the overall mood and content of these entries.\n")
	b.WriteString("2. Identify recurring themes or emotions.\n")
	b.WriteString("3. Offer one actionable tip for the user's wellbeing.")
	return b.String()
}

// NormalizeCompletion extracts usable prose from the first completion choice.
// Absent or whitespace-only text collapses to FallbackSummary, the single
// point where malformed generative output is absorbed
func NormalizeCompletion(choices []string) string {
	if len(choices) == 0 {
		return FallbackSummary
	}
	text := strings.TrimSpace(choices[0])
	if text == "" {
		return FallbackSummary
	}
	return text
}
