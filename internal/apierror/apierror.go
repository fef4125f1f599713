// Package apierror maps failures of the HTTP API to status codes and a JSON body.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

type Kind string

const (
	KindBadRequest             Kind = "bad_request"
	KindInvalidToken           Kind = "invalid_token"
	KindInvalidCredentials     Kind = "invalid_credentials"
	KindNotFound               Kind = "not_found"
	KindUnsupportedIntegration Kind = "unsupported_integration"
	KindInternal               Kind = "internal"
)

// Status returns the HTTP status for k.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest, KindUnsupportedIntegration:
		return http.StatusBadRequest
	case KindInvalidToken, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ApiError is the JSON body returned for every failed request.
type ApiError struct {
	Type   Kind   `json:"type"`
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// Error is a failure with a client-visible message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func BadRequest(format string, args ...any) *Error {
	return New(KindBadRequest, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

// Internal reports an unexpected failure. The cause's text is passed on to
// the client.
func Internal(err error) *Error {
	msg := "internal server error"
	if err != nil {
		msg += ": " + err.Error()
	}
	return Wrap(KindInternal, err, msg)
}

// Write logs err and writes it as an ApiError. Errors that are not *Error are
// reported as internal.
func Write(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(err)
	}
	body := ApiError{
		Type:   apiErr.Kind,
		Status: apiErr.Kind.Status(),
		Msg:    apiErr.Msg,
	}

	log.Printf("API error: %v", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		log.Printf("Error encoding API error: %v", encErr)
	}
}

// Recoverer turns a panicking handler into an internal ApiError response.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rvr, debug.Stack())
			Write(w, Internal(fmt.Errorf("%v", rvr)))
		}()
		next.ServeHTTP(w, r)
	})
}
