package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure the request pipeline reports.
type Kind int

const (
	// KindAPI is a business rejection reported in the envelope (code + message).
	KindAPI Kind = iota + 1
	// KindUnauthorized ends the session: refresh failed or the retry got 401.
	KindUnauthorized
	// KindEmptyResponse is an empty body on a non-2xx status.
	KindEmptyResponse
	// KindParse is a non-empty body that is not a valid envelope or payload.
	KindParse
	// KindNetwork is a transport failure: DNS, refused connection, timeout, cancellation.
	KindNetwork
)

// Sentinels matched by *Error through errors.Is.
var (
	ErrAPI           = errors.New("api error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrEmptyResponse = errors.New("empty response")
	ErrParse         = errors.New("parse error")
	ErrNetwork       = errors.New("network error")
)

func (k Kind) String() string {
	switch k {
	case KindAPI:
		return "api"
	case KindUnauthorized:
		return "unauthorized"
	case KindEmptyResponse:
		return "empty_response"
	case KindParse:
		return "parse"
	case KindNetwork:
		return "network"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindAPI:
		return ErrAPI
	case KindUnauthorized:
		return ErrUnauthorized
	case KindEmptyResponse:
		return ErrEmptyResponse
	case KindParse:
		return ErrParse
	case KindNetwork:
		return ErrNetwork
	default:
		return nil
	}
}

// Error is the typed failure returned by the pipeline. Code and Message are
// set for KindAPI; Err holds the underlying cause when there is one.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
	case KindEmptyResponse:
		return fmt.Sprintf("empty response (%d %s)", e.Status, http.StatusText(e.Status))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind.sentinel(), e.Err)
	}
	return e.Kind.sentinel().Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the pipeline kind of err, or 0 if err did not come from the
// pipeline.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// APIErrorCode returns the envelope error code when err is a KindAPI error.
func APIErrorCode(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindAPI {
		return e.Code, true
	}
	return "", false
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

func parseError(status int, err error) *Error {
	return &Error{Kind: KindParse, Status: status, Err: err}
}
