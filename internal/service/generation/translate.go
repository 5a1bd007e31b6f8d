package generation

import (
	"context"
	"log/slog"

	"github.com/sublingo/sublingo-backend/internal/domain"
)

// TranslateAndAnalyze translates an unknown word and produces the full
// learning breakdown, including a ready-to-use flashcard suggestion.
// Provider or parsing failures degrade to a synthetic result.
func (s *Service) TranslateAndAnalyze(ctx context.Context, in TranslateInput) (*domain.TranslationAnalysis, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.adapter.Complete(ctx, buildTranslatePrompt(in), analyzeSystemPrompt)
	if err != nil {
		s.log.WarnContext(ctx, "provider failed, synthesizing translation",
			slog.String("word", in.Word), slog.String("error", err.Error()))
		return synthesizeTranslation(in), nil
	}

	obj, source, err := salvage(raw)
	if err != nil {
		s.log.WarnContext(ctx, "translation response unsalvageable",
			slog.String("word", in.Word), slog.Int("raw_len", len(raw)))
		return synthesizeTranslation(in), nil
	}

	var c translationCandidate
	if err := decode(obj, &c); err != nil {
		return synthesizeTranslation(in), nil
	}

	return normalizeTranslation(c, in, source), nil
}
