// Package anthropic adapts the Anthropic Messages API to the provider
// contract used by the generation service.
package anthropic

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sublingo/sublingo-backend/internal/provider"
)

const providerName = "claude"

// Adapter sends completion requests to Claude.
type Adapter struct {
	client    sdk.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// New creates an Adapter for the given model. timeout bounds every
// Complete call regardless of the caller's context.
func New(apiKey, model string, timeout time.Duration, logger *slog.Logger) *Adapter {
	return &Adapter{
		client:    sdk.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: 2048,
		timeout:   timeout,
		log:       logger.With("adapter", providerName),
	}
}

func (a *Adapter) Name() string { return providerName }

// Complete sends one prompt to Claude and returns the raw response text.
// Failures come back as *provider.Error classified by kind.
func (a *Adapter) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	params := sdk.MessageNewParams{
		Model:     sdk.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	}
	if systemPrompt != "" {
		params.System = []sdk.TextBlockParam{{Text: systemPrompt}}
	}

	start := time.Now()
	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		kind := classify(err)
		a.log.ErrorContext(ctx, "completion failed",
			slog.String("model", a.model),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return "", provider.NewError(kind, providerName, err)
	}

	if len(msg.Content) == 0 {
		return "", provider.NewError(provider.ErrorKindTransport, providerName,
			errors.New("empty message content"))
	}

	text := msg.Content[0].Text
	a.log.DebugContext(ctx, "completion ok",
		slog.String("model", a.model),
		slog.Int("response_len", len(text)),
		slog.Duration("took", time.Since(start)),
	)
	return text, nil
}

// classify maps an SDK error to a provider error kind. API errors carry
// an HTTP status; everything else is a context or transport failure.
func classify(err error) provider.ErrorKind {
	var apierr *sdk.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return provider.ErrorKindAuth
		case http.StatusTooManyRequests:
			return provider.ErrorKindRateLimited
		case http.StatusRequestTimeout, http.StatusGatewayTimeout:
			return provider.ErrorKindTimeout
		default:
			return provider.ErrorKindTransport
		}
	}
	return provider.KindFromContextErr(err)
}
