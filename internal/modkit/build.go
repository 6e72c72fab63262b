package modkit

import (
	"net/http"

	"voicejournal/internal/modkit/httpkit"
)

// Built is the resolved module configuration after all options ran
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	Ports     any
	SwaggerOn bool

	// Subrouter wraps the module router; defaults to identity.
	// Register attaches extra endpoints; defaults to a no-op
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build folds opts into a Built with safe hook defaults
func Build(opts ...Option) Built {
	b := Built{
		Subrouter: func(r httpkit.Router) httpkit.Router { return r },
		Register:  func(httpkit.Router) {},
	}
	for _, o := range opts {
		o(&b)
	}
	return b
}
