package generation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sublingo/sublingo-backend/internal/domain"
)

func analysisCacheKey(in AnalyzeWordInput) string {
	return fmt.Sprintf("%s|%s|%s|%s",
		domain.NormalizeText(in.Word), in.OutputLanguage, in.UserLevel,
		domain.NormalizeText(in.Context))
}

// AnalyzeWord analyzes a known word in context. Provider or parsing
// failures degrade to a synthetic analysis; the only error returned is
// an input-contract violation. Only cleanly parsed provider analyses
// are cached.
func (s *Service) AnalyzeWord(ctx context.Context, in AnalyzeWordInput) (*domain.WordAnalysis, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key := analysisCacheKey(in)
	if hit, ok := s.cache.Get(key); ok {
		s.log.DebugContext(ctx, "analysis cache hit", slog.String("word", in.Word))
		return &hit, nil
	}

	raw, err := s.adapter.Complete(ctx, buildAnalyzePrompt(in), analyzeSystemPrompt)
	if err != nil {
		s.log.WarnContext(ctx, "provider failed, synthesizing analysis",
			slog.String("word", in.Word), slog.String("error", err.Error()))
		return synthesizeAnalysis(in), nil
	}

	obj, source, err := salvage(raw)
	if err != nil {
		s.log.WarnContext(ctx, "analysis response unsalvageable",
			slog.String("word", in.Word), slog.Int("raw_len", len(raw)))
		return synthesizeAnalysis(in), nil
	}

	var c analysisCandidate
	if err := decode(obj, &c); err != nil {
		return synthesizeAnalysis(in), nil
	}

	result := normalizeAnalysis(c, in, source)
	// Only clean parses are cached; a repaired result may have lost
	// content and must not be replayed for the cache's lifetime.
	if result.Source == domain.ResultSourceProvider {
		s.cache.Add(key, *result)
	}
	return result, nil
}
