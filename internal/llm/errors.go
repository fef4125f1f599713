package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a model call failed.
type ErrorKind string

const (
	KindTransport         ErrorKind = "TRANSPORT"
	KindTimeout           ErrorKind = "TIMEOUT"
	KindProvider          ErrorKind = "PROVIDER"
	KindSafetyBlocked     ErrorKind = "SAFETY_BLOCKED"
	KindMalformedResponse ErrorKind = "MALFORMED_RESPONSE"
	KindEmptyResponse     ErrorKind = "EMPTY_RESPONSE"
)

// ModelError is returned by Client.Generate. errors.Is matches on Kind, so
// callers can compare against the sentinels below.
type ModelError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ModelError) Error() string {
	if e.Message == "" {
		return "llm " + string(e.Kind)
	}
	return fmt.Sprintf("llm %s: %s", e.Kind, e.Message)
}

func (e *ModelError) Unwrap() error { return e.Err }

func (e *ModelError) Is(target error) bool {
	t, ok := target.(*ModelError)
	return ok && t.Kind == e.Kind
}

var (
	// ErrTransport indicates the provider could not be reached.
	ErrTransport = &ModelError{Kind: KindTransport}

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = &ModelError{Kind: KindTimeout}

	// ErrProvider indicates the provider answered with a non-success status.
	ErrProvider = &ModelError{Kind: KindProvider}

	// ErrSafetyBlocked indicates the prompt or the answer was blocked by the safety filters.
	ErrSafetyBlocked = &ModelError{Kind: KindSafetyBlocked}

	// ErrMalformedResponse indicates the response body could not be decoded.
	ErrMalformedResponse = &ModelError{Kind: KindMalformedResponse}

	// ErrEmptyResponse indicates a well-formed response without any text.
	ErrEmptyResponse = &ModelError{Kind: KindEmptyResponse}
)

func newError(kind ErrorKind, err error, format string, args ...any) *ModelError {
	return &ModelError{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the kind of a model error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var me *ModelError
	if errors.As(err, &me) {
		return me.Kind
	}
	return ""
}
