// Package module wires analytics into the API using modkit
package module

import (
	"net/http"

	modkit "voicejournal/internal/modkit"
	"voicejournal/internal/modkit/httpkit"
	str "voicejournal/internal/platform/strings"
	analyticshttp "voicejournal/internal/services/api/analytics/http"
	analyticsrepo "voicejournal/internal/services/api/analytics/repo"
	analyticssvc "voicejournal/internal/services/api/analytics/service"
	"voicejournal/internal/services/api/analytics/domain"
)

// Module implements the analytics module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *analyticssvc.Service
}

// New constructs the analytics module. The completer must be supplied via
// modkit.WithPorts since the AI adapter lives outside this module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("analytics"), modkit.WithPrefix("/analytics")},
		opts...,
	)...)

	completer, ok := b.Ports.(domain.Completer)
	if !ok || completer == nil {
		panic("analytics: a domain.Completer port is required")
	}

	cfg := deps.Cfg.Prefix("ANALYTICS_")
	svc := analyticssvc.NewService(deps.PG, analyticsrepo.NewPG(), completer, analyticssvc.Options{
		MaxTokens:   cfg.MayInt("MAX_TOKENS", analyticssvc.DefaultMaxTokens),
		ReadThrough: cfg.MayBool("READ_THROUGH", false),
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptAnalyticsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyticshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
