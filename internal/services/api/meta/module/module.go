// Package module exposes the unauthenticated meta endpoints as a modkit module
package module

import (
	"net/http"
	"time"

	modkit "voicejournal/internal/modkit"
	"voicejournal/internal/modkit/httpkit"

	metahttp "voicejournal/internal/services/api/meta/http"
)

// ServiceName identifies this binary in health and service payloads
const ServiceName = "voicejournal-api"

// Module serves health, readiness, version and service info.
// It carries no ports; nothing depends on meta
type Module struct {
	built     modkit.Built
	startedAt time.Time
	mount     func(httpkit.Router)
}

// New constructs the meta module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{built: b, startedAt: time.Now()}
	m.mount = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			PG:          deps.PG,
		})
		if b.Register != nil {
			b.Register(r)
		}
	}
	return m
}

// MountRoutes mounts the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.built.Prefix, func(rr httpkit.Router) {
		for _, mw := range m.built.Mw {
			rr.Use(mw)
		}
		if m.built.Subrouter != nil {
			rr = m.built.Subrouter(rr)
		}
		m.mount(rr)
	})
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.built.Prefix }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.built.Mw }

// Ports returns nil, meta exports nothing
func (m *Module) Ports() any { return nil }
