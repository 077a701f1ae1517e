// Package httpkit is the handler and routing surface modules build on
// modules import it instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "polyglot/internal/platform/net/http"
	"polyglot/internal/platform/net/http/bind"
)

type (
	Envelope = phttp.Envelope
	Response = phttp.Response
	Handler  = phttp.Handler
	Router   = phttp.Router
)

func OK(data any) Response     { return phttp.OK(data) }
func Error(err error) Response { return phttp.Error(err) }

// Text is written as text/plain, outside the envelope
func Text(s string) Response { return phttp.Text(s) }

// Handle adapts a Response-returning func
func Handle(fn func(*http.Request) Response) Handler { return phttp.Handle(fn) }

// Call adapts a handler returning a value or an error
// a returned Response is written as is, anything else lands in the envelope's data
func Call(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response { return result(fn(r)) })
}

// JSON decodes and validates the body into T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return Error(err)
		}
		return result(fn(r, in))
	})
}

// Get registers h for GET path
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// PostJSON registers h for POST path with a JSON body of type T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

func result(out any, err error) Response {
	if err != nil {
		return Error(err)
	}
	if resp, ok := out.(Response); ok {
		return resp
	}
	return OK(out)
}
