package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestError_wrapsUnderlying(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewError(ErrorKindTransport, "claude", inner)

	if !errors.Is(err, inner) {
		t.Error("provider error should wrap the underlying error")
	}

	wrapped := fmt.Errorf("call failed: %w", err)
	pe, ok := IsProviderError(wrapped)
	if !ok {
		t.Fatal("IsProviderError() should find the error through wrapping")
	}
	if pe.Kind != ErrorKindTransport {
		t.Errorf("Kind = %q, want %q", pe.Kind, ErrorKindTransport)
	}
	if pe.Provider != "claude" {
		t.Errorf("Provider = %q, want claude", pe.Provider)
	}
}

func TestIsProviderError_plainError(t *testing.T) {
	if _, ok := IsProviderError(errors.New("boom")); ok {
		t.Error("plain error should not be a provider error")
	}
}

func TestKindFromContextErr(t *testing.T) {
	if got := KindFromContextErr(context.DeadlineExceeded); got != ErrorKindTimeout {
		t.Errorf("deadline: got %q, want timeout", got)
	}
	if got := KindFromContextErr(context.Canceled); got != ErrorKindTransport {
		t.Errorf("canceled: got %q, want transport", got)
	}
}
