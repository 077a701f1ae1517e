package httpkit

import (
	"net/http"
	"strings"
)

// Middleware wraps a handler
type Middleware = func(http.Handler) http.Handler

// Scope mounts fn on a subrouter at prefix with mw applied to it alone
func Scope(r Router, prefix string, mw []Middleware, fn func(Router)) {
	r.Route(prefix, func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		fn(sub)
	})
}

// APIPrefix is the path a given API version is served under, "v1" gives "/api/v1"
func APIPrefix(version string) string { return "/api/" + strings.Trim(version, "/") }

// MountAPIV1 scopes fn under /api/v1
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
//		detect.MountRoutes(api)
//	})
func MountAPIV1(r Router, mw []Middleware, fn func(Router)) { Scope(r, APIPrefix("v1"), mw, fn) }
