// Package modkit provides module wiring and shared dependencies
package modkit

import (
	"voicejournal/internal/modkit/repokit"
	"voicejournal/internal/platform/config"
	"voicejournal/internal/platform/logger"
)

// Deps carries the process-wide dependencies every module receives.
// Pure wiring, no behavior
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
}
