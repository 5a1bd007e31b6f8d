package domain

// OptionCount is the fixed length of every options list. The answer is
// always one of the options.
const OptionCount = 4

// Flashcard is one generated quiz/flashcard item. Immutable once returned
// from the generation service.
type Flashcard struct {
	ID          string     `json:"id"`
	WordID      string     `json:"wordId"`
	Type        CardType   `json:"type"`
	SubType     string     `json:"subType,omitempty"`
	Question    string     `json:"question"`
	Answer      string     `json:"answer"`
	Options     []string   `json:"options"`
	Hints       []string   `json:"hints,omitempty"`
	Explanation string     `json:"explanation,omitempty"`
	Difficulty  Difficulty `json:"difficulty"`
	TimeLimitMs int        `json:"timeLimit"`
	Points      int        `json:"points"`

	QuestionLanguage string `json:"questionLanguage,omitempty"`
	AnswerLanguage   string `json:"answerLanguage,omitempty"`

	// Contextual cards only.
	Context            string `json:"context,omitempty"`
	OriginalContext    string `json:"originalContext,omitempty"`
	ContextExplanation string `json:"contextExplanation,omitempty"`
	ContextTranslation string `json:"contextTranslation,omitempty"`

	// Audio cards only.
	AudioURL      string         `json:"audioUrl,omitempty"`
	Phonetic      string         `json:"phonetic,omitempty"`
	AudioMetadata *AudioMetadata `json:"audioMetadata,omitempty"`

	// Speed cards only.
	ShowTimeMs     int  `json:"showTime,omitempty"`
	ResponseTimeMs int  `json:"responseTime,omitempty"`
	SpeedBonus     bool `json:"speedBonus,omitempty"`
}

// AudioMetadata describes the pronunciation recording of an audio card.
type AudioMetadata struct {
	Accent string `json:"accent"`
	Speed  string `json:"speed"`
	Gender string `json:"gender"`
}

// HasAnswerOption reports whether Answer appears in Options.
func (c *Flashcard) HasAnswerOption() bool {
	for _, o := range c.Options {
		if o == c.Answer {
			return true
		}
	}
	return false
}

// DifficultyMix is the per-bucket card count of a session.
// Easy + Medium + Hard always equals SessionMetadata.TotalCards.
type DifficultyMix struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// SessionMetadata summarizes a generated flashcard batch.
type SessionMetadata struct {
	TotalCards       int           `json:"totalCards"`
	EstimatedTimeSec int           `json:"estimatedTime"`
	DifficultyMix    DifficultyMix `json:"difficultyMix"`
}

// FlashcardSet is the result of one flashcard batch generation.
type FlashcardSet struct {
	SessionID string          `json:"sessionId"`
	Cards     []Flashcard     `json:"cards"`
	Metadata  SessionMetadata `json:"metadata"`
	Source    ResultSource    `json:"source"`
	// PartialBatch is set when structural rebuild recovered fewer cards
	// than requested. Metadata reflects the true (reduced) count.
	PartialBatch bool `json:"partialBatch,omitempty"`
}

// ComputeSessionMetadata derives batch metadata from the cards themselves.
// Aggregates are always recomputed here, never taken from provider output,
// since summary numbers are the least reliable fields in an LLM response.
func ComputeSessionMetadata(cards []Flashcard) SessionMetadata {
	var meta SessionMetadata
	meta.TotalCards = len(cards)

	totalMs := 0
	for _, c := range cards {
		totalMs += c.TimeLimitMs
		switch c.Difficulty {
		case DifficultyEasy:
			meta.DifficultyMix.Easy++
		case DifficultyHard:
			meta.DifficultyMix.Hard++
		default:
			meta.DifficultyMix.Medium++
		}
	}
	meta.EstimatedTimeSec = totalMs / 1000
	return meta
}
