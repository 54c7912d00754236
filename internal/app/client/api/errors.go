package api

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportKind classifies a TransportError for machine checks.
type TransportKind string

const (
	KindNetwork TransportKind = "network"
	KindTimeout TransportKind = "timeout"
	KindHTTP    TransportKind = "http"
)

// ValidationError is a client-side precondition failure. Requests failing
// validation never reach the network.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// TransportError covers network failures, timeouts and non-2xx responses.
// StatusCode is zero when the request never produced a response.
type TransportError struct {
	Kind       TransportKind
	StatusCode int
	Detail     string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Detail != "":
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	case e.StatusCode != 0:
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	case e.Detail != "":
		return fmt.Sprintf("%s error: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s error", e.Kind)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError specializes TransportError for delete/download calls on an
// identifier that no longer exists on the server.
type NotFoundError struct {
	TransportError
}

// Unwrap exposes the embedded TransportError so errors.As finds both types.
func (e *NotFoundError) Unwrap() error {
	return &e.TransportError
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTimeout reports whether err is a TransportError caused by the request
// timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	if errors.As(err, &te) {
		return te.Kind == KindTimeout
	}
	return false
}
