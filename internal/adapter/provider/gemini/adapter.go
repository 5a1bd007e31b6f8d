// Package gemini adapts the Google Gemini API to the provider contract
// used by the generation service.
package gemini

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/sublingo/sublingo-backend/internal/provider"
)

const providerName = "gemini"

// Adapter sends completion requests to Gemini.
type Adapter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	log     *slog.Logger
}

// New creates an Adapter for the given model. timeout bounds every
// Complete call regardless of the caller's context.
func New(ctx context.Context, apiKey, model string, timeout time.Duration, logger *slog.Logger) (*Adapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, provider.NewError(provider.ErrorKindTransport, providerName, err)
	}
	return &Adapter{
		client:  client,
		model:   model,
		timeout: timeout,
		log:     logger.With("adapter", providerName),
	}, nil
}

func (a *Adapter) Name() string { return providerName }

// Complete sends one prompt to Gemini and returns the raw response text.
// The system prompt travels as a system instruction; JSON output is
// requested via the response MIME type, though the response still goes
// through the full salvage pipeline like any other provider text.
func (a *Adapter) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}

	start := time.Now()
	resp, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		cfg,
	)
	if err != nil {
		kind := classify(err)
		a.log.ErrorContext(ctx, "completion failed",
			slog.String("model", a.model),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return "", provider.NewError(kind, providerName, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", provider.NewError(provider.ErrorKindTransport, providerName,
			errors.New("empty candidate content"))
	}

	text := resp.Candidates[0].Content.Parts[0].Text
	a.log.DebugContext(ctx, "completion ok",
		slog.String("model", a.model),
		slog.Int("response_len", len(text)),
		slog.Duration("took", time.Since(start)),
	)
	return text, nil
}

// classify maps a genai error to a provider error kind.
func classify(err error) provider.ErrorKind {
	var apierr genai.APIError
	if errors.As(err, &apierr) {
		switch apierr.Code {
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
