// Package http writes every JSON response in one envelope shape
package http

import (
	"encoding/json"
	stdhttp "net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	perr "polyglot/internal/platform/errors"
)

// Envelope is the body of every JSON response, success or failure
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// RetryAfter is the Retry-After value sent with retryable errors, in seconds
const RetryAfter = "1"

func envelope(r *stdhttp.Request, status int) Envelope {
	return Envelope{
		StatusCode: status,
		Status:     stdhttp.StatusText(status),
		RequestID:  chimw.GetReqID(r.Context()),
	}
}

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a 200 envelope around data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	env := envelope(r, stdhttp.StatusOK)
	env.Data = data
	JSON(w, stdhttp.StatusOK, env)
}

// RespondError writes err as an envelope with the status its code maps to
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status := perr.HTTPStatus(err)
	if perr.Retryable(err) {
		w.Header().Set("Retry-After", RetryAfter)
	}
	wire := perr.WireFrom(err)
	env := envelope(r, status)
	env.Code, env.Error, env.Field = wire.Code, wire.Message, wire.Field
	JSON(w, status, env)
}

// Response is what return-style handlers hand back
// an error Body always becomes an error envelope, whatever Status says
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
	raw    bool // string Body written as text/plain without the envelope
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Text returns a 200 text/plain response
func Text(s string) Response { return Response{Status: stdhttp.StatusOK, Body: s, raw: true} }

// Error returns a response carrying err
func Error(err error) Response { return Response{Body: err} }

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	if err, ok := resp.Body.(error); ok && err != nil {
		RespondError(w, r, err)
		return
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if s, ok := resp.Body.(string); ok && resp.raw {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(s))
		return
	}

	env := envelope(r, status)
	env.Data = resp.Body
	JSON(w, status, env)
}
