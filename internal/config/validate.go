package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.Generation.AnalysisCacheSize <= 0 {
		return fmt.Errorf("generation.analysis_cache_size must be > 0 (got %d)", c.Generation.AnalysisCacheSize)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	if err := l.validateProvider(l.Provider); err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	if l.FallbackProvider != "" {
		if l.FallbackProvider == l.Provider {
			return fmt.Errorf("fallback_provider must differ from provider (both %q)", l.Provider)
		}
		if err := l.validateProvider(l.FallbackProvider); err != nil {
			return fmt.Errorf("fallback_provider: %w", err)
		}
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	return nil
}

func (l *LLMConfig) validateProvider(name string) error {
	switch name {
	case ProviderAnthropic:
		if l.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
	case ProviderGemini:
		if l.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown provider %q (want %q or %q)", name, ProviderAnthropic, ProviderGemini)
	}
	return nil
}
