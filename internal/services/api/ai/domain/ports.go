package domain

import "context"

// ServicePort is the ai surface other modules may call
type ServicePort interface {
	Analyze(ctx context.Context, in AnalyzeInput) (AnalyzeResult, error)
}

// Transcriber turns recorded audio into text. A failed transcription is
// fatal to the request
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, format string) (string, error)
}

// Completer produces chat completion choices for entry analysis
type Completer interface {
	Complete(ctx context.Context, system, user string, maxTokens int) ([]string, error)
}
