// Package api provides the HTTP API for the application
package api

import (
	"context"

	"voicejournal/internal/platform/config"
	"voicejournal/internal/platform/logger"
	phttp "voicejournal/internal/platform/net/http"
	"voicejournal/internal/platform/net/middleware"
	"voicejournal/internal/platform/store"

	"voicejournal/internal/modkit"
	"voicejournal/internal/modkit/httpkit"
	"voicejournal/internal/modkit/module"
	"voicejournal/internal/modkit/swaggerkit"

	"voicejournal/internal/adapters/ai/openai"
	"voicejournal/internal/adapters/identity"

	aimod "voicejournal/internal/services/api/ai/module"
	analyticsmod "voicejournal/internal/services/api/analytics/module"
	entriesmod "voicejournal/internal/services/api/entries/module"
	metamod "voicejournal/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Store         *store.Store
	Logger        *logger.Logger
	EnableSwagger bool

	// Auth overrides the JWKS verifier, used by tests
	Auth middleware.AuthPort
}

// completerAdapter flattens the OpenAI completion response to its choice
// texts, which is all the domain ports care about
type completerAdapter struct{ c *openai.Client }

func (a completerAdapter) Complete(ctx context.Context, system, user string, maxTokens int) ([]string, error) {
	out, err := a.c.Complete(ctx, system, user, maxTokens)
	if err != nil {
		return nil, err
	}
	return out.Choices, nil
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := logger.Get()
	if opt.Logger != nil {
		log = opt.Logger
	}

	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// collaborator config lives at the environment root (AUTH_*, OPENAI_*),
	// not under the service prefix
	root := config.New()

	authPort := opt.Auth
	if authPort == nil {
		authPort = identity.New(identity.FromConf(root.Prefix("AUTH_")), *log)
	}
	requireAuth := modkit.WithMiddlewares(httpkit.Auth(authPort))

	aiClient, err := openai.New(openai.FromConf(root.Prefix("OPENAI_")), *log)
	if err != nil {
		// the API cannot serve its AI surfaces without a configured provider
		panic(err)
	}
	completer := completerAdapter{c: aiClient}

	mods := []module.Module{
		metamod.New(deps),
		entriesmod.New(deps, requireAuth),
		analyticsmod.New(deps, requireAuth, modkit.WithPorts(completer)),
		aimod.New(deps, requireAuth, modkit.WithPorts(aimod.Ports{
			Transcriber: aiClient,
			Completer:   completer,
		})),
	}

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
