package modkit

import (
	"voicejournal/internal/modkit/httpkit"
)

// Module is what the composition root needs from every feature module:
// routes to mount, a name for the registry, and an optional port set
// other modules can look up
type Module interface {
	MountRoutes(r httpkit.Router)
	Ports() any
	Name() string
}
