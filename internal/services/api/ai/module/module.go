// Package module wires the ai pipeline into the API using modkit
package module

import (
	"net/http"

	modkit "voicejournal/internal/modkit"
	"voicejournal/internal/modkit/httpkit"
	str "voicejournal/internal/platform/strings"
	aihttp "voicejournal/internal/services/api/ai/http"
	aisvc "voicejournal/internal/services/api/ai/service"
	"voicejournal/internal/services/api/ai/domain"
)

// Ports bundles the collaborators the ai module needs from outside
type Ports struct {
	Transcriber domain.Transcriber
	Completer   domain.Completer
}

// Module implements the ai module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc *aisvc.Service
}

// New constructs the ai module. Collaborators come in via modkit.WithPorts
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append(
		[]modkit.Option{modkit.WithName("ai"), modkit.WithPrefix("/ai")},
		opts...,
	)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("ai: module Ports are required")
	}

	cfg := deps.Cfg.Prefix("AI_")
	svc := aisvc.NewService(ports.Transcriber, ports.Completer, aisvc.Options{
		MaxTokens: cfg.MayInt("MAX_TOKENS", 0),
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
	m.ports = adaptAIPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		aihttp.Register(r, m.svc)
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
