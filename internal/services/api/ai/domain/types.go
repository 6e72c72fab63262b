// Package domain holds the ai module's wire types and ports
package domain

// AnalyzeInput carries a recorded journal entry as base64 audio
type AnalyzeInput struct {
	Audio  string `json:"audio" validate:"required,base64"`
	Format string `json:"format,omitempty" validate:"omitempty,alphanum" example:"webm"`
}

// AnalyzeResult is the transcription plus its structured analysis
type AnalyzeResult struct {
	Transcription string   `json:"transcription"`
	Sentiment     string   `json:"sentiment" example:"positive"`
	Summary       string   `json:"summary"`
	Keywords      []string `json:"keywords"`
}
