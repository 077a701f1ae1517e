// Package errors carries a machine readable code alongside each error
// import it as perr
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies an error for callers and the HTTP layer
//
//nolint:revive
type ErrorCode uint16

const (
	ErrorCodeUnknown         ErrorCode = iota // unclassified
	ErrorCodePanic                            // recovered by middleware
	ErrorCodeUnavailable                      // resource not loaded or gone
	ErrorCodeTooManyRequests                  // shed by the in flight limit
	ErrorCodeInvalidArgument                  // bad configuration or call arguments
	ErrorCodeValidation                       // decoded body failed validation
	ErrorCodeJSON                             // body did not decode
	ErrorCodeTokenizer                        // segmenter failed on valid text
	ErrorCodeModel                            // classifier load or inference failed
)

type codeInfo struct {
	name      string
	status    int
	retryable bool
}

var codes = map[ErrorCode]codeInfo{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError, false},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError, false},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable, true},
	ErrorCodeTooManyRequests: {"too_many_requests", http.StatusTooManyRequests, true},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusUnprocessableEntity, false},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest, false},
	ErrorCodeJSON:            {"json", http.StatusBadRequest, false},
	ErrorCodeTokenizer:       {"tokenizer", http.StatusInternalServerError, false},
	ErrorCodeModel:           {"model", http.StatusInternalServerError, false},
}

func (c ErrorCode) info() codeInfo {
	if i, ok := codes[c]; ok {
		return i
	}
	return codes[ErrorCodeUnknown]
}

// String is the snake case name used in logs
func (c ErrorCode) String() string { return c.info().name }

// HTTPStatusCode maps a code to its response status, unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int { return c.info().status }

// Error is a coded error, msg is shown to clients and orig never is
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.orig != nil:
		return e.msg + ": " + e.orig.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending request field, "" when none
func (e *Error) Field() string { return e.field }

// Wire is the error as it appears in a response envelope
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// WireFrom converts err for a response, foreign errors become Unknown with their text
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return Wire{Code: e.code, Message: e.msg, Field: e.field}
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// As finds the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf extracts the code from err, Unknown when it carries none
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err has the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus returns the response status for err
func HTTPStatus(err error) int { return CodeOf(err).info().status }

// Retryable reports whether the same input may succeed later
// tokenizer and model failures are deterministic for a given text
func Retryable(err error) bool { return err != nil && CodeOf(err).info().retryable }

// WithField returns a copy of err naming field, foreign errors pass through
func WithField(err error, field string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.field = field
	return &c
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Newf(code ErrorCode, format string, a ...any) error { return New(code, fmt.Sprintf(format, a...)) }

// Wrap keeps orig as the cause, it shows in Error() but not on the wire
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return Wrap(orig, code, fmt.Sprintf(format, a...))
}

func InvalidArgf(format string, a ...any) error  { return Newf(ErrorCodeInvalidArgument, format, a...) }
func Tokenizerf(format string, a ...any) error   { return Newf(ErrorCodeTokenizer, format, a...) }
func Modelf(format string, a ...any) error       { return Newf(ErrorCodeModel, format, a...) }
func JSONErrf(format string, a ...any) error     { return Newf(ErrorCodeJSON, format, a...) }
func PanicErrf(format string, a ...any) error    { return Newf(ErrorCodePanic, format, a...) }
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }
func Internalf(format string, a ...any) error    { return Newf(ErrorCodeUnknown, format, a...) }
