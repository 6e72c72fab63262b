// Package service implements the transcribe-then-analyze pipeline
package service

import (
	"context"
	"encoding/base64"

	"voicejournal/internal/core/analyze"
	perr "voicejournal/internal/platform/errors"
	"voicejournal/internal/platform/logger"
	"voicejournal/internal/services/api/ai/domain"
)

const defaultFormat = "webm"

// Options tunes the analysis pipeline
type Options struct {
	// MaxTokens is the completion token budget, zero means provider default
	MaxTokens int
}

// Service implements domain.ServicePort
type Service struct {
	transcriber domain.Transcriber
	completer   domain.Completer
	opts        Options
}

// NewService constructs the ai service. Panics if transcriber or completer
// are nil
func NewService(transcriber domain.Transcriber, completer domain.Completer, opts Options) *Service {
	if transcriber == nil {
		panic("ai: transcriber is required")
	}
	if completer == nil {
		panic("ai: completer is required")
	}
	return &Service{transcriber: transcriber, completer: completer, opts: opts}
}

// Analyze transcribes the audio and derives sentiment, summary and keywords
// from the transcription. Transcription failures are fatal; a failed or
// malformed analysis degrades to a neutral result so the transcription is
// never lost
func (s *Service) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeResult, error) {
	audio, err := base64.StdEncoding.DecodeString(in.Audio)
	if err != nil {
		return domain.AnalyzeResult{}, perr.InvalidArgf("audio must be base64 encoded")
	}
	if len(audio) == 0 {
		return domain.AnalyzeResult{}, perr.InvalidArgf("audio must not be empty")
	}
	format := in.Format
	if format == "" {
		format = defaultFormat
	}

	text, err := s.transcriber.Transcribe(ctx, audio, format)
	if err != nil {
		return domain.AnalyzeResult{}, err
	}

	choices, err := s.completer.Complete(ctx, analyze.AnalysisSystemPrompt, text, s.opts.MaxTokens)
	if err != nil {
		if ctx.Err() != nil {
			return domain.AnalyzeResult{}, perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "analysis cancelled")
		}
		logger.C(ctx).Warn().Err(err).Msg("analysis completion failed, serving neutral result")
		choices = nil
	}
	a := analyze.ParseAnalysis(choices)

	return domain.AnalyzeResult{
		Transcription: text,
		Sentiment:     string(a.Sentiment),
		Summary:       a.Summary,
		Keywords:      a.Keywords,
	}, nil
}
