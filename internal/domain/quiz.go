package domain

// QuizQuestion is one multiple-choice/fill-blank test question.
// Options always holds OptionCount entries including Answer.
type QuizQuestion struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Question    string       `json:"question"`
	Answer      string       `json:"answer"`
	Options     []string     `json:"options"`
	Difficulty  CEFRLevel    `json:"difficulty"`
	Explanation string       `json:"explanation,omitempty"`
}

// Quiz is the result of one quiz batch generation.
type Quiz struct {
	Questions        []QuizQuestion `json:"questions"`
	EstimatedTimeSec int            `json:"estimatedTime"`
	Source           ResultSource   `json:"source"`

	// PartialBatch is set when structural rebuild recovered fewer
	// questions than requested. Missing questions are reported, never
	// fabricated to fill the count.
	PartialBatch bool `json:"partialBatch,omitempty"`
}
