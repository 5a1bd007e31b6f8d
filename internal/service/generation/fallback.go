package generation

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/sublingo/sublingo-backend/internal/domain"
)

// Fallback synthesis: pure functions of the request inputs that never
// touch the provider. Results are schema-valid and marked synthetic;
// option ordering is the only non-deterministic part.

const quizSecondsPerQuestion = 30

// Per-type base timing and points, used when the provider omitted them.
func typeDefaults(t domain.CardType) (timeLimitMs, points int) {
	switch t {
	case domain.CardTypeContextual:
		return 20000, 15
	case domain.CardTypeAudio:
		return 25000, 20
	case domain.CardTypeSpeed:
		return 5000, 50
	default: // classic
		return 15000, 10
	}
}

// fallbackTiming derives synthesized-card timing from difficulty, with
// type modifiers: speed cards get tighter and more rewarding, audio
// cards get extra listening time.
func fallbackTiming(d domain.Difficulty, t domain.CardType) (timeLimitMs, points int) {
	switch d {
	case domain.DifficultyEasy:
		timeLimitMs, points = 20000, 10
	case domain.DifficultyHard:
		timeLimitMs, points = 10000, 20
	default:
		timeLimitMs, points = 15000, 15
	}
	switch t {
	case domain.CardTypeSpeed:
		timeLimitMs -= 5000
		points += 5
	case domain.CardTypeAudio:
		timeLimitMs += 5000
		points += 5
	}
	return timeLimitMs, points
}

// typeAllowed reports whether a card type survives the session's type
// filter and premium entitlement.
func typeAllowed(t domain.CardType, cfg SessionConfig) bool {
	if t.IsPremium() && !cfg.IsPremium {
		return false
	}
	if len(cfg.Types) == 0 {
		return true
	}
	for _, st := range cfg.Types {
		if st == t {
			return true
		}
	}
	return false
}

// cardTypeFor picks a card type: the mastery preference table first,
// then cycling through the session's requested types when no mastery
// signal exists, then classic.
func (s *Service) cardTypeFor(m domain.MasteryLevel, cfg SessionConfig, idx int) domain.CardType {
	if prefs, ok := s.policy.MasteryTypes[m]; ok {
		for _, t := range prefs {
			if typeAllowed(t, cfg) {
				return t
			}
		}
	}
	if len(cfg.Types) > 0 {
		if t := cfg.Types[idx%len(cfg.Types)]; typeAllowed(t, cfg) {
			return t
		}
		for _, t := range cfg.Types {
			if typeAllowed(t, cfg) {
				return t
			}
		}
	}
	return domain.CardTypeClassic
}

// gateCardType downgrades a provider-chosen type that violates the
// premium entitlement: audio falls to contextual, speed to classic.
func gateCardType(t domain.CardType, cfg SessionConfig) domain.CardType {
	if !t.IsPremium() || cfg.IsPremium {
		return t
	}
	if t == domain.CardTypeAudio {
		return domain.CardTypeContextual
	}
	return domain.CardTypeClassic
}

// cardDifficulty resolves a card's difficulty bucket. Fixed session
// difficulty wins; "adaptive" (and unset) applies a position curve per
// user level: beginners get mostly easy cards, intermediates a spread,
// advanced learners medium then hard.
func cardDifficulty(cfg SessionConfig, idx, total int) domain.Difficulty {
	if d := domain.Difficulty(cfg.Difficulty); d.IsValid() {
		return d
	}
	if total <= 0 {
		total = 1
	}
	pos := float64(idx) / float64(total)
	switch levelOrDefault(cfg.UserLevel) {
	case domain.CEFRLevelA1, domain.CEFRLevelA2:
		if pos < 0.7 {
			return domain.DifficultyEasy
		}
		return domain.DifficultyMedium
	case domain.CEFRLevelC1, domain.CEFRLevelC2:
		if pos < 0.5 {
			return domain.DifficultyMedium
		}
		return domain.DifficultyHard
	default:
		if pos < 0.4 {
			return domain.DifficultyEasy
		}
		if pos < 0.8 {
			return domain.DifficultyMedium
		}
		return domain.DifficultyHard
	}
}

// blankWord replaces the first case-insensitive occurrence of word in
// sentence with a blank.
func blankWord(sentence, word string) (string, bool) {
	if word == "" || sentence == "" {
		return "", false
	}
	i := strings.Index(strings.ToLower(sentence), strings.ToLower(word))
	if i < 0 {
		return "", false
	}
	return sentence[:i] + "_____" + sentence[i+len(word):], true
}

// decorateCard fills the type-specific fields of a card: contextual
// blanking, audio metadata, speed timings.
func decorateCard(card *domain.Flashcard, w WordInput, providerContext string) {
	switch card.Type {
	case domain.CardTypeContextual:
		ctx := providerContext
		if ctx == "" {
			ctx = w.Context
		}
		card.OriginalContext = ctx
		if blanked, ok := blankWord(ctx, w.Text); ok {
			card.Context = blanked
		} else {
			card.Context = fmt.Sprintf("The word _____ means %q.", answerFor(w))
		}
	case domain.CardTypeAudio:
		card.Phonetic = "/" + domain.NormalizeText(w.Text) + "/"
		if card.AudioMetadata == nil {
			card.AudioMetadata = &domain.AudioMetadata{Accent: "neutral", Speed: "normal", Gender: "neutral"}
		}
	case domain.CardTypeSpeed:
		card.ShowTimeMs = 2000
		card.ResponseTimeMs = 3000
		card.SpeedBonus = true
	}
}

// shuffledOptions returns a shuffled copy.
func shuffledOptions(opts []string) []string {
	out := make([]string, len(opts))
	copy(out, opts)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func syntheticExamples(word, context string) []string {
	example := fmt.Sprintf("I learned the word %q today.", word)
	if context != "" {
		return []string{context, example}
	}
	return []string{example}
}

// ---------------------------------------------------------------------------
// Per-operation synthesizers
// ---------------------------------------------------------------------------

func synthesizeAnalysis(in AnalyzeWordInput) *domain.WordAnalysis {
	return normalizeAnalysis(analysisCandidate{}, in, domain.ResultSourceSynthetic)
}

func synthesizeTranslation(in TranslateInput) *domain.TranslationAnalysis {
	out := normalizeTranslation(translationCandidate{}, in, domain.ResultSourceSynthetic)
	out.FlashcardSuggestion.Options = shuffledOptions(out.FlashcardSuggestion.Options)
	return out
}

func (s *Service) synthesizeFlashcards(in FlashcardsInput) *domain.FlashcardSet {
	count := in.cardCount()
	cards := make([]domain.Flashcard, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, s.syntheticCard(in.Words[i], i, count, in.Config))
	}
	return &domain.FlashcardSet{
		SessionID: uuid.NewString(),
		Cards:     cards,
		Metadata:  domain.ComputeSessionMetadata(cards),
		Source:    domain.ResultSourceSynthetic,
	}
}

func (s *Service) syntheticCard(w WordInput, idx, total int, cfg SessionConfig) domain.Flashcard {
	cardType := s.cardTypeFor(w.MasteryLevel, cfg, idx)
	difficulty := cardDifficulty(cfg, idx, total)
	timeLimit, points := fallbackTiming(difficulty, cardType)
	answer := answerFor(w)

	card := domain.Flashcard{
		ID:          fmt.Sprintf("card_%d", idx+1),
		WordID:      domain.NormalizeText(w.Text),
		Type:        cardType,
		Question:    fmt.Sprintf("What does %q mean?", w.Text),
		Answer:      answer,
		Options:     shuffledOptions(normalizeOptions(answer, distractorsFor(answer))),
		Difficulty:  difficulty,
		TimeLimitMs: timeLimit,
		Points:      points,

		QuestionLanguage: cfg.SourceLanguage,
		AnswerLanguage:   cfg.TargetLanguage,
	}
	decorateCard(&card, w, "")
	return card
}

func (s *Service) synthesizeQuiz(in QuizInput) *domain.Quiz {
	count := in.questionCount()
	questions := make([]domain.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		q := normalizeQuestion(questionCandidate{}, i, in.Words[i], in)
		q.Options = shuffledOptions(q.Options)
		questions = append(questions, q)
	}
	return &domain.Quiz{
		Questions:        questions,
		EstimatedTimeSec: len(questions) * quizSecondsPerQuestion,
		Source:           domain.ResultSourceSynthetic,
	}
}

// synthesizeRecommendations applies the rule thresholds: low accuracy
// yields a high-priority review, low retention a medium-priority one,
// weak areas a focused exercise suggestion.
func (s *Service) synthesizeRecommendations(p domain.UserProgress) *domain.RecommendationSet {
	var recs []domain.Recommendation

	if p.AverageAccuracy < s.policy.AccuracyReviewThreshold {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationTypeReviewSession,
			Content:  "Review your recent mistakes before learning new words",
			Priority: domain.PriorityHigh,
			Reason:   fmt.Sprintf("average accuracy is %.0f%%", p.AverageAccuracy*100),
		})
	}
	if p.MasteryRatio() < s.policy.RetentionThreshold {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationTypeReviewSession,
			Content:  "Spend more time reviewing words you have already studied",
			Priority: domain.PriorityMedium,
			Reason:   fmt.Sprintf("%d of %d words mastered", p.MasteredWords, p.TotalWords),
		})
	}
	if len(p.WeakAreas) > 0 {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationTypeExerciseType,
			Content:  fmt.Sprintf("Practice exercises focused on %s", strings.Join(p.WeakAreas, ", ")),
			Priority: domain.PriorityMedium,
			Reason:   "these areas show the most errors",
		})
	}
	if len(recs) == 0 {
		recs = append(recs, domain.Recommendation{
			Type:     domain.RecommendationTypeWordToLearn,
			Content:  "Keep up the pace: add a few new words to your deck",
			Priority: domain.PriorityLow,
			Reason:   "progress is on track",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.Rank() < recs[j].Priority.Rank()
	})
	if len(recs) > s.policy.MaxRecommendations {
		recs = recs[:s.policy.MaxRecommendations]
	}
	return &domain.RecommendationSet{
		Recommendations: recs,
		Source:          domain.ResultSourceSynthetic,
	}
}
