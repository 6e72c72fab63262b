// Package http wires the ai routes to the service port
package http

import (
	"net/http"

	"voicejournal/internal/modkit/httpkit"
	"voicejournal/internal/services/api/ai/domain"
)

// Register mounts the ai routes on r
func Register(r httpkit.Router, svc domain.ServicePort) {
	httpkit.PostJSON(r, "/analyze", analyzeHandler(svc))
}

// analyzeHandler godoc
// @Summary Transcribe and analyze a voice recording
// @Description Whisper transcription followed by sentiment, summary and keyword extraction
// @Tags ai
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Base64 audio and its container format"
// @Success 200 {object} domain.AnalyzeResult
// @Failure 502 {object} httpkit.Envelope
// @Router /ai/analyze [post]
func analyzeHandler(svc domain.ServicePort) func(*http.Request, domain.AnalyzeInput) (any, error) {
	return func(r *http.Request, in domain.AnalyzeInput) (any, error) {
		return svc.Analyze(r.Context(), in)
	}
}
