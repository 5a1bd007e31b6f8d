package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sublingo/sublingo-backend/internal/adapter/provider/anthropic"
	"github.com/sublingo/sublingo-backend/internal/adapter/provider/gemini"
	"github.com/sublingo/sublingo-backend/internal/config"
	"github.com/sublingo/sublingo-backend/internal/provider"
	"github.com/sublingo/sublingo-backend/internal/service/generation"
	"github.com/sublingo/sublingo-backend/internal/transport/middleware"
	"github.com/sublingo/sublingo-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// provider adapters and the generation service, and serves the REST API
// until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("provider", cfg.LLM.Provider),
		slog.String("fallback_provider", cfg.LLM.FallbackProvider),
		slog.String("log_level", cfg.Log.Level),
	)

	adapter, err := buildAdapter(ctx, cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("build adapter: %w", err)
	}

	svc, err := generation.NewService(logger, adapter, generation.DefaultPolicy(), cfg.Generation.AnalysisCacheSize)
	if err != nil {
		return fmt.Errorf("generation service: %w", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(
		rest.NewGenerationHandler(svc, logger),
		rest.NewHealthHandler(BuildVersion(), adapter.Name()),
	)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// buildAdapter constructs the configured provider adapter, wrapped in a
// failover pair when a fallback provider is configured.
func buildAdapter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (provider.Adapter, error) {
	primary, err := newAdapter(ctx, cfg.Provider, cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.FallbackProvider == "" {
		return primary, nil
	}

	secondary, err := newAdapter(ctx, cfg.FallbackProvider, cfg, logger)
	if err != nil {
		return nil, err
	}
	return provider.NewFailover(primary, secondary, logger), nil
}

func newAdapter(ctx context.Context, name string, cfg config.LLMConfig, logger *slog.Logger) (provider.Adapter, error) {
	switch name {
	case config.ProviderAnthropic:
		return anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.Timeout, logger), nil
	case config.ProviderGemini:
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.Timeout, logger)
	default:
		return nil, fmt.Errorf("unknown llm provider %q", name)
	}
}
