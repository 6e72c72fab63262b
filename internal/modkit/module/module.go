// Package module holds the module contract and the bootstrap ports registry
package module

import (
	"voicejournal/internal/modkit/httpkit"
)

// Module mirrors the modkit contract; it lives here so the registry can be
// imported without pulling in the full modkit package
type Module interface {
	MountRoutes(r httpkit.Router)
	Ports() any
	Name() string
}
