package domain

// WordAnalysis is the result of analyzing a single known word in context.
// Every field except Etymology is guaranteed non-empty by the generation
// service, regardless of provider behavior.
type WordAnalysis struct {
	Word            string       `json:"word"`
	Translation     string       `json:"translation"`
	Definition      string       `json:"definition"`
	Difficulty      CEFRLevel    `json:"difficulty"`
	CEFRLevel       CEFRLevel    `json:"cefr_level"`
	ContextAnalysis string       `json:"context_analysis"`
	UsageExamples   []string     `json:"usage_examples"`
	Synonyms        []string     `json:"synonyms"`
	Etymology       string       `json:"etymology,omitempty"`
	Source          ResultSource `json:"source"`
}

// SentenceAnalysis is the nested context breakdown of a translation result.
// Always present (possibly with placeholder values), never nil.
type SentenceAnalysis struct {
	OriginalSentence   string `json:"originalSentence"`
	TranslatedSentence string `json:"translatedSentence"`
	GrammarNotes       string `json:"grammarNotes"`
	Usage              string `json:"usage"`
}

// LearningData groups supplementary vocabulary for a translated word.
// Slices may be empty but are never nil.
type LearningData struct {
	Synonyms      []string `json:"synonyms"`
	RelatedWords  []string `json:"relatedWords"`
	CommonPhrases []string `json:"commonPhrases"`
}

// FlashcardSuggestion is a ready-to-use card proposal embedded in a
// translation result. Options always holds OptionCount entries including
// Answer.
type FlashcardSuggestion struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Options     []string `json:"options"`
	Hint        string   `json:"hint,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// TranslationAnalysis is the result of translating and analyzing an
// unknown word.
type TranslationAnalysis struct {
	Word                    string              `json:"word"`
	Translation             string              `json:"translation"`
	AlternativeTranslations []string            `json:"alternativeTranslations"`
	ContextTranslation      string              `json:"contextTranslation"`
	Definition              string              `json:"definition"`
	Difficulty              CEFRLevel           `json:"difficulty"`
	CEFRLevel               CEFRLevel           `json:"cefr_level"`
	ContextAnalysis         SentenceAnalysis    `json:"contextAnalysis"`
	LearningData            LearningData        `json:"learningData"`
	FlashcardSuggestion     FlashcardSuggestion `json:"flashcardSuggestion"`
	Source                  ResultSource        `json:"source"`
}
