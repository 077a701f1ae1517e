// Package swaggerkit serves Swagger UI over the embedded OpenAPI document
package swaggerkit

import (
	_ "embed"
	"net/http"

	phttp "polyglot/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Base is where the UI lives, the document is served at Base + "/doc.json"
const Base = "/api/docs"

//go:embed openapi.json
var openAPI []byte

// Mount registers the UI and document, nothing when disabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	doc := Base + "/doc.json"
	r.Get(Base, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, Base+"/", http.StatusPermanentRedirect)
	})
	r.Get(doc, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(openAPI)
	})
	r.Handle(Base+"/*", httpSwagger.Handler(httpSwagger.InstanceName("api"), httpSwagger.URL(doc)))
}
