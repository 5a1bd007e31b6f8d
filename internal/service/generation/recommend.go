package generation

import (
	"context"
	"log/slog"

	"github.com/sublingo/sublingo-backend/internal/domain"
)

// GenerateRecommendations turns a progress snapshot into a short,
// priority-ordered set of study suggestions. The provider is asked
// first; the rule-based synthesizer covers failures and empty answers.
func (s *Service) GenerateRecommendations(ctx context.Context, progress domain.UserProgress) (*domain.RecommendationSet, error) {
	raw, err := s.adapter.Complete(ctx, buildRecommendationsPrompt(progress), batchSystemPrompt)
	if err != nil {
		s.log.WarnContext(ctx, "provider failed, synthesizing recommendations",
			slog.String("error", err.Error()))
		return s.synthesizeRecommendations(progress), nil
	}

	obj, source, err := salvage(raw)
	if err != nil {
		return s.synthesizeRecommendations(progress), nil
	}

	var c recommendationsCandidate
	if err := decode(obj, &c); err != nil {
		return s.synthesizeRecommendations(progress), nil
	}

	recs := s.normalizeRecommendations(c)
	if len(recs) == 0 {
		return s.synthesizeRecommendations(progress), nil
	}
	return &domain.RecommendationSet{
		Recommendations: recs,
		Source:          source,
	}, nil
}
