package domain

// CEFRLevel is the Common European Framework six-point proficiency scale.
type CEFRLevel string

const (
	CEFRLevelA1 CEFRLevel = "A1"
	CEFRLevelA2 CEFRLevel = "A2"
	CEFRLevelB1 CEFRLevel = "B1"
	CEFRLevelB2 CEFRLevel = "B2"
	CEFRLevelC1 CEFRLevel = "C1"
	CEFRLevelC2 CEFRLevel = "C2"
)

func (l CEFRLevel) String() string { return string(l) }

func (l CEFRLevel) IsValid() bool {
	switch l {
	case CEFRLevelA1, CEFRLevelA2, CEFRLevelB1, CEFRLevelB2, CEFRLevelC1, CEFRLevelC2:
		return true
	}
	return false
}

// Difficulty maps a CEFR level to a coarse card difficulty bucket.
// A1/A2 → easy, B1/B2 → medium, C1/C2 → hard.
func (l CEFRLevel) Difficulty() Difficulty {
	switch l {
	case CEFRLevelA1, CEFRLevelA2:
		return DifficultyEasy
	case CEFRLevelB1, CEFRLevelB2:
		return DifficultyMedium
	case CEFRLevelC1, CEFRLevelC2:
		return DifficultyHard
	}
	return DifficultyMedium
}

// MasteryLevel is the caller-supplied familiarity tag for a word.
type MasteryLevel string

const (
	MasteryLevelNew      MasteryLevel = "NEW"
	MasteryLevelLearning MasteryLevel = "LEARNING"
	MasteryLevelFamiliar MasteryLevel = "FAMILIAR"
	MasteryLevelMastered MasteryLevel = "MASTERED"
)

func (m MasteryLevel) String() string { return string(m) }

func (m MasteryLevel) IsValid() bool {
	switch m {
	case MasteryLevelNew, MasteryLevelLearning, MasteryLevelFamiliar, MasteryLevelMastered:
		return true
	}
	return false
}

// CardType identifies one of the four flashcard kinds.
type CardType string

const (
	CardTypeClassic    CardType = "classic"
	CardTypeContextual CardType = "contextual"
	CardTypeAudio      CardType = "audio"
	CardTypeSpeed      CardType = "speed"
)

func (t CardType) String() string { return string(t) }

func (t CardType) IsValid() bool {
	switch t {
	case CardTypeClassic, CardTypeContextual, CardTypeAudio, CardTypeSpeed:
		return true
	}
	return false
}

// IsPremium reports whether the card type requires a premium entitlement.
func (t CardType) IsPremium() bool {
	return t == CardTypeAudio || t == CardTypeSpeed
}

// Difficulty is the per-card difficulty bucket.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// QuestionType identifies the kind of quiz question.
type QuestionType string

const (
	QuestionTypeMultipleChoice    QuestionType = "multiple_choice"
	QuestionTypeFillBlank         QuestionType = "fill_blank"
	QuestionTypeContextCompletion QuestionType = "context_completion"
)

func (q QuestionType) String() string { return string(q) }

func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTypeMultipleChoice, QuestionTypeFillBlank, QuestionTypeContextCompletion:
		return true
	}
	return false
}

// RecommendationType categorizes a learning recommendation.
type RecommendationType string

const (
	RecommendationTypeWordToLearn   RecommendationType = "word_to_learn"
	RecommendationTypeExerciseType  RecommendationType = "exercise_type"
	RecommendationTypeReviewSession RecommendationType = "review_session"
)

func (r RecommendationType) String() string { return string(r) }

func (r RecommendationType) IsValid() bool {
	switch r {
	case RecommendationTypeWordToLearn, RecommendationTypeExerciseType, RecommendationTypeReviewSession:
		return true
	}
	return false
}

// Priority orders recommendations (high before medium before low).
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns a sortable weight: high=0, medium=1, low=2.
// Unknown priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// ResultSource marks how a generation result was produced, so callers can
// tell a degraded (repaired or fully synthetic) response from a genuine one.
type ResultSource string

const (
	// ResultSourceProvider: parsed directly from the provider response.
	ResultSourceProvider ResultSource = "provider"
	// ResultSourceRepaired: provider content recovered via repair/rebuild.
	ResultSourceRepaired ResultSource = "repaired"
	// ResultSourceSynthetic: produced by the fallback synthesizer without
	// usable provider content.
	ResultSourceSynthetic ResultSource = "synthetic"
)

func (s ResultSource) String() string { return string(s) }

func (s ResultSource) IsValid() bool {
	switch s {
	case ResultSourceProvider, ResultSourceRepaired, ResultSourceSynthetic:
		return true
	}
	return false
}

// IsDegraded reports whether the result is not a clean provider parse.
func (s ResultSource) IsDegraded() bool {
	return s != ResultSourceProvider
}
