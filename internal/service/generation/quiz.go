package generation

import (
	"context"
	"log/slog"

	"github.com/sublingo/sublingo-backend/internal/domain"
	"github.com/sublingo/sublingo-backend/internal/llmjson"
)

// GenerateQuiz produces a quiz batch with the same salvage ladder as
// flashcards. Estimated time is always recomputed from the question
// count, never trusted from the response.
func (s *Service) GenerateQuiz(ctx context.Context, in QuizInput) (*domain.Quiz, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	want := in.questionCount()

	raw, err := s.adapter.Complete(ctx, buildQuizPrompt(in), batchSystemPrompt)
	if err != nil {
		s.log.WarnContext(ctx, "provider failed, synthesizing quiz",
			slog.Int("want", want), slog.String("error", err.Error()))
		return s.synthesizeQuiz(in), nil
	}

	var (
		candidates []questionCandidate
		source     domain.ResultSource
	)
	if obj, src, serr := salvage(raw); serr == nil {
		var c quizCandidate
		if derr := decode(obj, &c); derr == nil {
			candidates = c.Questions
			source = src
		}
	}

	if len(candidates) == 0 {
		frags, rerr := llmjson.RebuildQuestions(raw, want)
		if rerr != nil {
			s.log.WarnContext(ctx, "quiz response unsalvageable",
				slog.Int("want", want), slog.Int("raw_len", len(raw)))
			return s.synthesizeQuiz(in), nil
		}
		for _, f := range frags {
			candidates = append(candidates, questionCandidate{
				ID:          looseString(f.ID),
				Type:        looseString(f.Type),
				Question:    looseString(f.Question),
				Answer:      looseString(f.Answer),
				Options:     looseStrings(f.Options),
				Difficulty:  looseString(f.Difficulty),
				Explanation: looseString(f.Explanation),
			})
		}
		source = domain.ResultSourceRepaired
	}

	if len(candidates) > want {
		candidates = candidates[:want]
	}
	questions := make([]domain.QuizQuestion, 0, len(candidates))
	for i, c := range candidates {
		questions = append(questions, normalizeQuestion(c, i, wordAt(in.Words, i), in))
	}

	quiz := &domain.Quiz{
		Questions:        questions,
		EstimatedTimeSec: len(questions) * quizSecondsPerQuestion,
		Source:           source,
		PartialBatch:     len(questions) < want,
	}
	if quiz.PartialBatch {
		s.log.WarnContext(ctx, "partial quiz batch",
			slog.Int("want", want), slog.Int("got", len(questions)))
	}
	return quiz, nil
}
