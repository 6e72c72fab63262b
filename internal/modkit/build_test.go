package modkit

import (
	"net/http"
	"testing"

	"voicejournal/internal/modkit/httpkit"
)

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	b := Build()

	if b.Name != "" || b.Prefix != "" {
		t.Fatalf("defaults must be empty, got name=%q prefix=%q", b.Name, b.Prefix)
	}
	if b.Ports != nil || b.SwaggerOn || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults %+v", b)
	}

	// default hooks: identity subrouter, no-op register
	var r httpkit.Router
	if got := b.Subrouter(r); got != r {
		t.Fatal("default Subrouter must be identity")
	}
	b.Register(r) // must not panic
}

func TestBuildAppliesOptions(t *testing.T) {
	t.Parallel()

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }

	subCalled := 0
	regCalled := 0

	b := Build(
		WithName("entries"),
		WithPrefix("/entries"),
		WithMiddlewares(mwA),
		WithMiddlewares(mwB),
		WithPorts("a port"),
		WithSwagger(true),
		WithSubrouter(func(in httpkit.Router) httpkit.Router { subCalled++; return in }),
		WithRegister(func(httpkit.Router) { regCalled++ }),
	)

	if b.Name != "entries" || b.Prefix != "/entries" {
		t.Fatalf("got name=%q prefix=%q", b.Name, b.Prefix)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("middlewares must accumulate, got %d", len(b.Mw))
	}
	if p, ok := b.Ports.(string); !ok || p != "a port" {
		t.Fatalf("ports mismatch %v", b.Ports)
	}
	if !b.SwaggerOn {
		t.Fatal("swagger flag lost")
	}

	b.Subrouter(nil)
	b.Register(nil)
	if subCalled != 1 || regCalled != 1 {
		t.Fatalf("hooks not wired: sub=%d reg=%d", subCalled, regCalled)
	}
}
