package http

import "net/http"

// Handler is the bare handler function the platform routes against
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the mounting surface handed to modules. Concrete
// implementations adapt a real mux (chi) behind it
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Put(path string, h Handler)
	Patch(path string, h Handler)
	Delete(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// Mux exposes the underlying handler for http.Server
	Mux() http.Handler
}
