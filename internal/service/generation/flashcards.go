package generation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sublingo/sublingo-backend/internal/domain"
	"github.com/sublingo/sublingo-backend/internal/llmjson"
)

// GenerateFlashcards produces a flashcard batch: one provider call for
// the whole batch, then parse → repair → structural rebuild → synthesize
// in order of preference. A rebuild that recovers fewer cards than
// requested is returned as a partial batch with honest metadata, never
// padded with fabricated cards posing as provider content.
func (s *Service) GenerateFlashcards(ctx context.Context, in FlashcardsInput) (*domain.FlashcardSet, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	want := in.cardCount()

	raw, err := s.adapter.Complete(ctx, buildFlashcardsPrompt(in), batchSystemPrompt)
	if err != nil {
		s.log.WarnContext(ctx, "provider failed, synthesizing flashcards",
			slog.Int("want", want), slog.String("error", err.Error()))
		return s.synthesizeFlashcards(in), nil
	}

	var (
		candidates []cardCandidate
		sessionID  string
		source     domain.ResultSource
	)
	if obj, src, serr := salvage(raw); serr == nil {
		var c flashcardsCandidate
		if derr := decode(obj, &c); derr == nil {
			candidates = c.Cards
			sessionID = string(c.SessionID)
			source = src
		}
	}

	if len(candidates) == 0 {
		// Last provider-content chance: per-record pattern salvage.
		frags, rerr := llmjson.RebuildCards(raw, want)
		if rerr != nil {
			s.log.WarnContext(ctx, "flashcard response unsalvageable",
				slog.Int("want", want), slog.Int("raw_len", len(raw)))
			return s.synthesizeFlashcards(in), nil
		}
		candidates = fragmentsToCandidates(frags)
		source = domain.ResultSourceRepaired
	}

	if len(candidates) > want {
		candidates = candidates[:want]
	}
	cards := make([]domain.Flashcard, 0, len(candidates))
	for i, c := range candidates {
		cards = append(cards, s.normalizeCard(c, i, want, wordAt(in.Words, i), in.Config))
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	set := &domain.FlashcardSet{
		SessionID:    sessionID,
		Cards:        cards,
		Metadata:     domain.ComputeSessionMetadata(cards),
		Source:       source,
		PartialBatch: len(cards) < want,
	}
	if set.PartialBatch {
		s.log.WarnContext(ctx, "partial flashcard batch",
			slog.Int("want", want), slog.Int("got", len(cards)))
	}
	return set, nil
}
