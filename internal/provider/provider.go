// Package provider defines the narrow contract the generation service
// requires from an LLM backend. Concrete adapters live under
// internal/adapter/provider; the service is unaware of which vendor it
// talks to.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// Adapter sends one prompt (plus optional system instruction) to a remote
// text-completion endpoint and returns the raw response text.
//
// Implementations must honor ctx cancellation and return an *Error for
// transport, auth, timeout, and rate-limit failures.
type Adapter interface {
	Complete(ctx context.Context, prompt, systemPrompt string) (string, error)
	Name() string
}

// ErrorKind classifies a provider failure.
type ErrorKind string

const (
	ErrorKindTimeout     ErrorKind = "timeout"
	ErrorKindAuth        ErrorKind = "auth"
	ErrorKindTransport   ErrorKind = "transport"
	ErrorKindRateLimited ErrorKind = "rate_limited"
)

// Error is a classified failure from a provider adapter. It always wraps
// the underlying SDK/transport error.
type Error struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err as a provider Error of the given kind.
func NewError(kind ErrorKind, providerName string, err error) *Error {
	return &Error{Kind: kind, Provider: providerName, Err: err}
}

// IsProviderError reports whether err is (or wraps) a provider Error and
// returns it when so.
func IsProviderError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// KindFromContextErr maps a context error to the matching ErrorKind.
// Deadline expiry is a timeout; everything else is transport.
func KindFromContextErr(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorKindTimeout
	}
	return ErrorKindTransport
}
