// Package generation implements the LLM-backed content generation
// pipeline: word analysis, translation analysis, flashcard batches, quiz
// batches, and learning recommendations.
//
// Every operation follows the same shape: build a prompt, call the
// provider adapter once, then salvage the response through extraction
// and repair. When the provider fails or nothing can be salvaged, a
// deterministic synthesizer produces a schema-valid result from the
// request inputs alone. Callers therefore never see a provider or
// parsing failure; they see a result whose Source field says how it was
// produced.
package generation

import (
	"encoding/json"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sublingo/sublingo-backend/internal/domain"
	"github.com/sublingo/sublingo-backend/internal/llmjson"
	"github.com/sublingo/sublingo-backend/internal/provider"
)

const defaultCacheSize = 256

// Policy holds the tunable generation rules. The mastery mapping is a
// table value rather than hardcoded logic because its exact shape is a
// product decision that has already changed more than once.
type Policy struct {
	// MasteryTypes maps a mastery level to card types in preference
	// order. The first type that survives premium gating and the
	// session's type filter wins.
	MasteryTypes map[domain.MasteryLevel][]domain.CardType

	// MaxRecommendations caps a recommendation set.
	MaxRecommendations int

	// AccuracyReviewThreshold: average accuracy strictly below this
	// yields a high-priority review recommendation.
	AccuracyReviewThreshold float64

	// RetentionThreshold: mastered/total strictly below this yields a
	// retention recommendation.
	RetentionThreshold float64
}

// DefaultPolicy returns the standard generation rules.
func DefaultPolicy() Policy {
	return Policy{
		MasteryTypes: map[domain.MasteryLevel][]domain.CardType{
			domain.MasteryLevelNew:      {domain.CardTypeClassic},
			domain.MasteryLevelLearning: {domain.CardTypeContextual},
			domain.MasteryLevelFamiliar: {domain.CardTypeAudio, domain.CardTypeContextual},
			domain.MasteryLevelMastered: {domain.CardTypeSpeed, domain.CardTypeAudio, domain.CardTypeContextual},
		},
		MaxRecommendations:      3,
		AccuracyReviewThreshold: 0.7,
		RetentionThreshold:      0.5,
	}
}

// Service is the generation orchestrator. Stateless across calls except
// for the analysis cache; safe for concurrent use.
type Service struct {
	adapter provider.Adapter
	policy  Policy
	cache   *lru.Cache[string, domain.WordAnalysis]
	log     *slog.Logger
}

// NewService creates a generation Service around the given provider
// adapter. cacheSize bounds the word-analysis LRU cache; zero or
// negative selects the default.
func NewService(log *slog.Logger, adapter provider.Adapter, policy Policy, cacheSize int) (*Service, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, domain.WordAnalysis](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create analysis cache: %w", err)
	}
	return &Service{
		adapter: adapter,
		policy:  policy,
		cache:   cache,
		log:     log.With("service", "generation"),
	}, nil
}

// salvage turns raw provider text into a parseable JSON candidate.
// Direct extraction first; when that fails, one repair pass and a second
// extraction. The returned source records whether repair was needed.
func salvage(raw string) (json.RawMessage, domain.ResultSource, error) {
	if obj, err := llmjson.Extract(raw); err == nil {
		return obj, domain.ResultSourceProvider, nil
	}
	repaired := llmjson.Repair(llmjson.StripNoise(raw))
	obj, err := llmjson.Extract(repaired)
	if err != nil {
		return nil, domain.ResultSourceSynthetic, err
	}
	return obj, domain.ResultSourceRepaired, nil
}

// decode unmarshals a salvaged candidate into the per-operation loose
// shape. The candidate is known-valid JSON, so failures here mean the
// top-level shape is wrong (e.g. a bare array where an object was
// expected), which the caller treats like any other salvage failure.
func decode(obj json.RawMessage, v any) error {
	return json.Unmarshal(obj, v)
}
