package rest

import "net/http"

// NewRouter builds the routing table for the REST API.
func NewRouter(gen *GenerationHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/words/analyze", gen.AnalyzeWord)
	mux.HandleFunc("POST /api/v1/words/translate", gen.TranslateWord)
	mux.HandleFunc("POST /api/v1/flashcards/generate", gen.GenerateFlashcards)
	mux.HandleFunc("POST /api/v1/tests/generate", gen.GenerateQuiz)
	mux.HandleFunc("POST /api/v1/recommendations/generate", gen.GenerateRecommendations)

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /live", health.Live)

	return mux
}
