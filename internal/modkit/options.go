package modkit

import (
	"net/http"

	"voicejournal/internal/modkit/httpkit"
)

// Option configures a module at construction time.
// Options apply directly to the Built value returned by Build
type Option func(*Built)

// WithName sets the module name used for the ports registry and logs
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix sets the route prefix the module mounts under
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends per-module middleware, outermost first
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the collaborator ports it cannot construct itself.
// The concrete type is owned by the receiving module
func WithPorts[T any](p T) Option {
	return func(b *Built) { b.Ports = p }
}

// WithSwagger toggles swagger exposure for this module
func WithSwagger(enabled bool) Option {
	return func(b *Built) { b.SwaggerOn = enabled }
}

// WithSubrouter wraps the module router before routes are registered
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister attaches extra endpoints after the module's own
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.Register = fn }
}
