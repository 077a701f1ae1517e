package http

import "net/http"

// Handler is a plain handler func
type Handler = func(http.ResponseWriter, *http.Request)

// Router is what modules mount against, chi sits behind it
// the API is read only so only GET and POST are registered directly
type Router interface {
	Get(path string, h Handler)
	Post(path string, h Handler)
	Handle(path string, h http.Handler)

	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	Mux() http.Handler
}
