package generation

import (
	"github.com/sublingo/sublingo-backend/internal/domain"
)

// SessionDifficultyAdaptive selects the position-based difficulty curve
// instead of a fixed bucket.
const SessionDifficultyAdaptive = "adaptive"

const maxBatchSize = 50

// WordInput is one vocabulary word submitted for batch generation.
type WordInput struct {
	Text         string              `json:"text"`
	Translation  string              `json:"translation"`
	Context      string              `json:"context,omitempty"`
	MasteryLevel domain.MasteryLevel `json:"masteryLevel,omitempty"`
}

// AnalyzeWordInput holds the parameters for analyzing a known word.
type AnalyzeWordInput struct {
	Word           string           `json:"word"`
	Context        string           `json:"context,omitempty"`
	OutputLanguage string           `json:"outputLanguage,omitempty"`
	UserLevel      domain.CEFRLevel `json:"userLevel,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i *AnalyzeWordInput) Validate() error {
	var errs []domain.FieldError

	if i.Word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if i.UserLevel != "" && !i.UserLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "userLevel", Message: "must be A1-C2"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TranslateInput holds the parameters for translating and analyzing an
// unknown word.
type TranslateInput struct {
	Word           string              `json:"word"`
	Context        string              `json:"context,omitempty"`
	SourceLanguage string              `json:"sourceLanguage"`
	TargetLanguage string              `json:"targetLanguage"`
	UserLevel      domain.CEFRLevel    `json:"userLevel,omitempty"`
	MasteryLevel   domain.MasteryLevel `json:"masteryLevel,omitempty"`
}

// Validate checks all fields and collects all errors.
func (i *TranslateInput) Validate() error {
	var errs []domain.FieldError

	if i.Word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	if i.SourceLanguage == "" {
		errs = append(errs, domain.FieldError{Field: "sourceLanguage", Message: "required"})
	}
	if i.TargetLanguage == "" {
		errs = append(errs, domain.FieldError{Field: "targetLanguage", Message: "required"})
	}
	if i.UserLevel != "" && !i.UserLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "userLevel", Message: "must be A1-C2"})
	}
	if i.MasteryLevel != "" && !i.MasteryLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "masteryLevel", Message: "must be NEW, LEARNING, FAMILIAR, or MASTERED"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SessionConfig is the caller-supplied configuration for a flashcard
// batch. Entitlement flags arrive here and are treated as opaque facts.
type SessionConfig struct {
	Types             []domain.CardType `json:"types,omitempty"`
	Difficulty        string            `json:"difficulty,omitempty"` // easy|medium|hard|adaptive
	Count             int               `json:"count"`
	UserLevel         domain.CEFRLevel  `json:"userLevel,omitempty"`
	IsPremium         bool              `json:"isPremium"`
	SourceLanguage    string            `json:"sourceLanguage,omitempty"`
	TargetLanguage    string            `json:"targetLanguage,omitempty"`
	LearningDirection string            `json:"learningDirection,omitempty"`
}

// FlashcardsInput holds the parameters for generating a flashcard batch.
type FlashcardsInput struct {
	Words  []WordInput   `json:"words"`
	Config SessionConfig `json:"sessionConfig"`
}

// Validate checks all fields and collects all errors.
func (i *FlashcardsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "at least one word required"})
	}
	if len(i.Words) > maxBatchSize {
		errs = append(errs, domain.FieldError{Field: "words", Message: "too many words"})
	}
	for _, w := range i.Words {
		if w.Text == "" {
			errs = append(errs, domain.FieldError{Field: "words", Message: "word text must not be empty"})
			break
		}
	}
	if i.Config.Count < 0 || i.Config.Count > maxBatchSize {
		errs = append(errs, domain.FieldError{Field: "sessionConfig.count", Message: "must be between 0 and 50"})
	}
	for _, t := range i.Config.Types {
		if !t.IsValid() {
			errs = append(errs, domain.FieldError{Field: "sessionConfig.types", Message: "unknown card type"})
			break
		}
	}
	switch i.Config.Difficulty {
	case "", SessionDifficultyAdaptive:
	default:
		if !domain.Difficulty(i.Config.Difficulty).IsValid() {
			errs = append(errs, domain.FieldError{Field: "sessionConfig.difficulty", Message: "must be easy, medium, hard, or adaptive"})
		}
	}
	if i.Config.UserLevel != "" && !i.Config.UserLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sessionConfig.userLevel", Message: "must be A1-C2"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// cardCount returns the number of cards to produce: one per word,
// bounded by the requested count when set.
func (i *FlashcardsInput) cardCount() int {
	n := len(i.Words)
	if i.Config.Count > 0 && i.Config.Count < n {
		n = i.Config.Count
	}
	return n
}

// QuizInput holds the parameters for generating a quiz batch.
type QuizInput struct {
	Words         []WordInput         `json:"words"`
	TestType      domain.QuestionType `json:"testType,omitempty"`
	TargetLevel   domain.CEFRLevel    `json:"targetLevel,omitempty"`
	QuestionCount int                 `json:"questionCount"`
}

// Validate checks all fields and collects all errors.
func (i *QuizInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Words) == 0 {
		errs = append(errs, domain.FieldError{Field: "words", Message: "at least one word required"})
	}
	if len(i.Words) > maxBatchSize {
		errs = append(errs, domain.FieldError{Field: "words", Message: "too many words"})
	}
	if i.TestType != "" && !i.TestType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "testType", Message: "unknown test type"})
	}
	if i.TargetLevel != "" && !i.TargetLevel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "targetLevel", Message: "must be A1-C2"})
	}
	if i.QuestionCount < 0 || i.QuestionCount > maxBatchSize {
		errs = append(errs, domain.FieldError{Field: "questionCount", Message: "must be between 0 and 50"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// questionCount returns the number of questions to produce: one per
// word, bounded by the requested count when set.
func (i *QuizInput) questionCount() int {
	n := len(i.Words)
	if i.QuestionCount > 0 && i.QuestionCount < n {
		n = i.QuestionCount
	}
	return n
}
