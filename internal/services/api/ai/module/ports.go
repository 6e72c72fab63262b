package module

import (
	"context"

	"voicejournal/internal/services/api/ai/domain"
	aisvc "voicejournal/internal/services/api/ai/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptAIPort struct{ svc *aisvc.Service }

// Analyze transcribes audio and derives its structured analysis
func (a adaptAIPort) Analyze(ctx context.Context, in domain.AnalyzeInput) (domain.AnalyzeResult, error) {
	return a.svc.Analyze(ctx, in)
}
