// Package swaggerkit mounts the Swagger UI and its JSON document
package swaggerkit

import (
	"net/http"

	phttp "voicejournal/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const docsPrefix = "/api/docs"

// Mount wires the docs UI under /api/docs when enabled. Disabled mounts
// nothing so production builds carry no docs surface
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(docsPrefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPrefix+"/", http.StatusPermanentRedirect)
	})
	r.Get(docsPrefix+"/doc.json", serveDocJSON())
	r.Handle(docsPrefix+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docsPrefix+"/doc.json"),
	))
}
