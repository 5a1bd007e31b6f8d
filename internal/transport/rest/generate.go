// Package rest exposes the generation service over a small JSON API.
//
// Handlers only decode input and encode output; all defaulting, repair
// and fallback behavior lives in the generation service, so a handler
// error always means the request itself was unacceptable.
package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/sublingo/sublingo-backend/internal/domain"
	"github.com/sublingo/sublingo-backend/internal/service/generation"
)

type generationService interface {
	AnalyzeWord(ctx context.Context, in generation.AnalyzeWordInput) (*domain.WordAnalysis, error)
	TranslateAndAnalyze(ctx context.Context, in generation.TranslateInput) (*domain.TranslationAnalysis, error)
	GenerateFlashcards(ctx context.Context, in generation.FlashcardsInput) (*domain.FlashcardSet, error)
	GenerateQuiz(ctx context.Context, in generation.QuizInput) (*domain.Quiz, error)
	GenerateRecommendations(ctx context.Context, progress domain.UserProgress) (*domain.RecommendationSet, error)
}

// GenerationHandler serves the word analysis and content generation
// endpoints.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, log *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: log.With("handler", "generation")}
}

// AnalyzeWord handles POST /api/v1/words/analyze.
func (h *GenerationHandler) AnalyzeWord(w http.ResponseWriter, r *http.Request) {
	var in generation.AnalyzeWordInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	analysis, err := h.svc.AnalyzeWord(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// TranslateWord handles POST /api/v1/words/translate.
func (h *GenerationHandler) TranslateWord(w http.ResponseWriter, r *http.Request) {
	var in generation.TranslateInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	analysis, err := h.svc.TranslateAndAnalyze(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// GenerateFlashcards handles POST /api/v1/flashcards/generate.
func (h *GenerationHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var in generation.FlashcardsInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	set, err := h.svc.GenerateFlashcards(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// GenerateQuiz handles POST /api/v1/tests/generate.
func (h *GenerationHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var in generation.QuizInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}

	quiz, err := h.svc.GenerateQuiz(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// GenerateRecommendations handles POST /api/v1/recommendations/generate.
func (h *GenerationHandler) GenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	var progress domain.UserProgress
	if err := decodeJSON(r, &progress); err != nil {
		writeError(w, err)
		return
	}

	set, err := h.svc.GenerateRecommendations(r.Context(), progress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}
