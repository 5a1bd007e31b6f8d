package provider

import (
	"context"
	"fmt"
	"log/slog"
)

// Failover chains two adapters: every call goes to the primary first,
// and any provider failure moves straight to the secondary. There is no
// same-provider retry; the per-request failure budget is one extra call.
type Failover struct {
	primary   Adapter
	secondary Adapter
	log       *slog.Logger
}

// NewFailover wraps primary with secondary as its fallback.
func NewFailover(primary, secondary Adapter, logger *slog.Logger) *Failover {
	return &Failover{
		primary:   primary,
		secondary: secondary,
		log:       logger.With("adapter", "failover"),
	}
}

func (f *Failover) Name() string {
	return f.primary.Name() + "+" + f.secondary.Name()
}

// Complete tries the primary adapter, then the secondary. When both
// fail, the returned error wraps the secondary's so callers still see a
// classified provider error.
func (f *Failover) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	text, err := f.primary.Complete(ctx, prompt, systemPrompt)
	if err == nil {
		return text, nil
	}

	// The caller is gone; the secondary call would fail the same way.
	if ctx.Err() != nil {
		return "", err
	}

	f.log.WarnContext(ctx, "primary provider failed, trying fallback",
		slog.String("primary", f.primary.Name()),
		slog.String("fallback", f.secondary.Name()),
		slog.String("error", err.Error()),
	)

	text, err2 := f.secondary.Complete(ctx, prompt, systemPrompt)
	if err2 != nil {
		return "", fmt.Errorf("primary %s failed (%v); fallback %s: %w",
			f.primary.Name(), err, f.secondary.Name(), err2)
	}
	return text, nil
}
