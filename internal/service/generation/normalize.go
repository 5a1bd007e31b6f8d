package generation

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sublingo/sublingo-backend/internal/domain"
	"github.com/sublingo/sublingo-backend/internal/llmjson"
)

// ---------------------------------------------------------------------------
// Loose candidate types
//
// Provider JSON is parsed into these instead of the domain types so that
// a wrong-typed field (number where a string belongs, null, a single
// string where an array belongs) degrades to a zero value instead of
// failing the whole unmarshal. The defaulting policy then lives in one
// place per operation rather than scattered nil checks.
// ---------------------------------------------------------------------------

// looseString accepts a JSON string, number, or bool; null and composite
// values become "".
type looseString string

func (v *looseString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" || s[0] == '{' || s[0] == '[' {
		*v = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*v = looseString(strings.TrimSpace(str))
		return nil
	}
	*v = looseString(s)
	return nil
}

func (v looseString) or(def string) string {
	if v == "" {
		return def
	}
	return string(v)
}

// looseStrings accepts an array (keeping only non-empty scalar
// elements), a single scalar, or null.
type looseStrings []string

func (v *looseStrings) UnmarshalJSON(b []byte) error {
	*v = nil
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	var arr []looseString
	if err := json.Unmarshal(b, &arr); err == nil {
		for _, e := range arr {
			if e != "" {
				*v = append(*v, string(e))
			}
		}
		return nil
	}
	var one looseString
	if err := json.Unmarshal(b, &one); err == nil && one != "" {
		*v = looseStrings{string(one)}
	}
	return nil
}

// looseInt accepts a JSON number or a numeric string; everything else
// becomes 0.
type looseInt int

func (v *looseInt) UnmarshalJSON(b []byte) error {
	*v = 0
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*v = looseInt(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			*v = looseInt(n)
		}
	}
	return nil
}

// parseCEFR reads a CEFR tag case-insensitively.
func parseCEFR(s string) (domain.CEFRLevel, bool) {
	l := domain.CEFRLevel(strings.ToUpper(strings.TrimSpace(s)))
	return l, l.IsValid()
}

func cefrOrDefault(c looseString, fallback domain.CEFRLevel) domain.CEFRLevel {
	if l, ok := parseCEFR(string(c)); ok {
		return l
	}
	return levelOrDefault(fallback)
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

// normalizeOptions enforces the options invariant: exactly
// domain.OptionCount distinct non-empty entries with answer among them.
// Existing entries keep their order; truncation never drops the answer;
// padding draws from the static confusable tables first and generic
// placeholders last.
func normalizeOptions(answer string, opts []string) []string {
	out := make([]string, 0, domain.OptionCount)
	seen := make(map[string]bool, len(opts))
	for _, o := range opts {
		o = strings.TrimSpace(o)
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}

	if len(out) > domain.OptionCount {
		kept := out[:domain.OptionCount:domain.OptionCount]
		if answer != "" && !contains(kept, answer) && contains(out, answer) {
			kept[domain.OptionCount-1] = answer
		}
		out = kept
	}

	if answer != "" && !contains(out, answer) {
		if len(out) == domain.OptionCount {
			out[domain.OptionCount-1] = answer
		} else {
			out = append(out, answer)
		}
	}

	for _, d := range distractorsFor(answer) {
		if len(out) == domain.OptionCount {
			break
		}
		if d != answer && !contains(out, d) {
			out = append(out, d)
		}
	}
	for i := 1; len(out) < domain.OptionCount; i++ {
		g := fmt.Sprintf("option%d", i)
		if !contains(out, g) {
			out = append(out, g)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Word analysis
// ---------------------------------------------------------------------------

type analysisCandidate struct {
	Word            looseString  `json:"word"`
	Translation     looseString  `json:"translation"`
	Definition      looseString  `json:"definition"`
	Difficulty      looseString  `json:"difficulty"`
	CEFRLevel       looseString  `json:"cefr_level"`
	ContextAnalysis looseString  `json:"context_analysis"`
	UsageExamples   looseStrings `json:"usage_examples"`
	Synonyms        looseStrings `json:"synonyms"`
	Etymology       looseString  `json:"etymology"`
}

func normalizeAnalysis(c analysisCandidate, in AnalyzeWordInput, source domain.ResultSource) *domain.WordAnalysis {
	word := c.Word.or(in.Word)
	level := cefrOrDefault(c.CEFRLevel, in.UserLevel)

	out := &domain.WordAnalysis{
		Word:            word,
		Translation:     c.Translation.or(fmt.Sprintf("translation for %q", word)),
		Definition:      c.Definition.or(fmt.Sprintf("definition for %q", word)),
		Difficulty:      cefrOrDefault(c.Difficulty, level),
		CEFRLevel:       level,
		ContextAnalysis: c.ContextAnalysis.or(fmt.Sprintf("context analysis for %q", word)),
		UsageExamples:   c.UsageExamples,
		Synonyms:        c.Synonyms,
		Etymology:       string(c.Etymology),
		Source:          source,
	}
	if len(out.UsageExamples) == 0 {
		out.UsageExamples = syntheticExamples(word, in.Context)
	}
	if out.Synonyms == nil {
		out.Synonyms = []string{}
	}
	return out
}

// ---------------------------------------------------------------------------
// Translation analysis
// ---------------------------------------------------------------------------

type translationCandidate struct {
	Word                    looseString  `json:"word"`
	Translation             looseString  `json:"translation"`
	AlternativeTranslations looseStrings `json:"alternativeTranslations"`
	ContextTranslation      looseString  `json:"contextTranslation"`
	Definition              looseString  `json:"definition"`
	Difficulty              looseString  `json:"difficulty"`
	CEFRLevel               looseString  `json:"cefr_level"`
	ContextAnalysis         struct {
		OriginalSentence   looseString `json:"originalSentence"`
		TranslatedSentence looseString `json:"translatedSentence"`
		GrammarNotes       looseString `json:"grammarNotes"`
		Usage              looseString `json:"usage"`
	} `json:"contextAnalysis"`
	LearningData struct {
		Synonyms      looseStrings `json:"synonyms"`
		RelatedWords  looseStrings `json:"relatedWords"`
		CommonPhrases looseStrings `json:"commonPhrases"`
	} `json:"learningData"`
	FlashcardSuggestion struct {
		Question    looseString  `json:"question"`
		Answer      looseString  `json:"answer"`
		Options     looseStrings `json:"options"`
		Hint        looseString  `json:"hint"`
		Explanation looseString  `json:"explanation"`
	} `json:"flashcardSuggestion"`
}

func normalizeTranslation(c translationCandidate, in TranslateInput, source domain.ResultSource) *domain.TranslationAnalysis {
	word := c.Word.or(in.Word)
	translation := c.Translation.or(fmt.Sprintf("translation for %q", word))
	level := cefrOrDefault(c.CEFRLevel, in.UserLevel)

	answer := c.FlashcardSuggestion.Answer.or(translation)

	out := &domain.TranslationAnalysis{
		Word:                    word,
		Translation:             translation,
		AlternativeTranslations: c.AlternativeTranslations,
		ContextTranslation:      c.ContextTranslation.or(fmt.Sprintf("context translation for %q", word)),
		Definition:              c.Definition.or(fmt.Sprintf("definition for %q", word)),
		Difficulty:              cefrOrDefault(c.Difficulty, level),
		CEFRLevel:               level,
		ContextAnalysis: domain.SentenceAnalysis{
			OriginalSentence:   c.ContextAnalysis.OriginalSentence.or(in.Context),
			TranslatedSentence: c.ContextAnalysis.TranslatedSentence.or(fmt.Sprintf("translation of the sentence with %q", word)),
			GrammarNotes:       c.ContextAnalysis.GrammarNotes.or("no special grammar notes"),
			Usage:              c.ContextAnalysis.Usage.or("neutral register"),
		},
		LearningData: domain.LearningData{
			Synonyms:      c.LearningData.Synonyms,
			RelatedWords:  c.LearningData.RelatedWords,
			CommonPhrases: c.LearningData.CommonPhrases,
		},
		FlashcardSuggestion: domain.FlashcardSuggestion{
			Question:    c.FlashcardSuggestion.Question.or(fmt.Sprintf("What does %q mean?", word)),
			Answer:      answer,
			Options:     normalizeOptions(answer, c.FlashcardSuggestion.Options),
			Hint:        string(c.FlashcardSuggestion.Hint),
			Explanation: string(c.FlashcardSuggestion.Explanation),
		},
		Source: source,
	}
	if out.AlternativeTranslations == nil {
		out.AlternativeTranslations = []string{}
	}
	if out.LearningData.Synonyms == nil {
		out.LearningData.Synonyms = []string{}
	}
	if out.LearningData.RelatedWords == nil {
		out.LearningData.RelatedWords = []string{}
	}
	if out.LearningData.CommonPhrases == nil {
		out.LearningData.CommonPhrases = []string{}
	}
	return out
}

// ---------------------------------------------------------------------------
// Flashcards
// ---------------------------------------------------------------------------

type flashcardsCandidate struct {
	SessionID looseString     `json:"sessionId"`
	Cards     []cardCandidate `json:"cards"`
}

type cardCandidate struct {
	ID          looseString  `json:"id"`
	WordID      looseString  `json:"wordId"`
	Type        looseString  `json:"type"`
	Question    looseString  `json:"question"`
	Answer      looseString  `json:"answer"`
	Options     looseStrings `json:"options"`
	Difficulty  looseString  `json:"difficulty"`
	Explanation looseString  `json:"explanation"`
	Context     looseString  `json:"context"`
	TimeLimitMs looseInt     `json:"timeLimit"`
	Points      looseInt     `json:"points"`
}

// normalizeCard turns one candidate card into a valid Flashcard, pairing
// it with the input word at the same batch position for defaults.
func (s *Service) normalizeCard(c cardCandidate, idx, total int, w WordInput, cfg SessionConfig) domain.Flashcard {
	cardType := domain.CardType(strings.ToLower(string(c.Type)))
	if !cardType.IsValid() {
		cardType = s.cardTypeFor(w.MasteryLevel, cfg, idx)
	}
	cardType = gateCardType(cardType, cfg)

	answer := c.Answer.or(answerFor(w))
	difficulty := domain.Difficulty(strings.ToLower(string(c.Difficulty)))
	if !difficulty.IsValid() {
		difficulty = cardDifficulty(cfg, idx, total)
	}

	timeLimit, points := typeDefaults(cardType)
	if c.TimeLimitMs > 0 {
		timeLimit = int(c.TimeLimitMs)
	}
	if c.Points > 0 {
		points = int(c.Points)
	}

	card := domain.Flashcard{
		ID:          c.ID.or(fmt.Sprintf("card_%d", idx+1)),
		WordID:      c.WordID.or(domain.NormalizeText(w.Text)),
		Type:        cardType,
		Question:    c.Question.or(fmt.Sprintf("What does %q mean?", w.Text)),
		Answer:      answer,
		Options:     normalizeOptions(answer, c.Options),
		Explanation: string(c.Explanation),
		Difficulty:  difficulty,
		TimeLimitMs: timeLimit,
		Points:      points,

		QuestionLanguage: cfg.SourceLanguage,
		AnswerLanguage:   cfg.TargetLanguage,
	}
	decorateCard(&card, w, string(c.Context))
	return card
}

// cardsFromFragments converts rebuilt record fragments into candidate
// cards so they run through the same normalization as a parsed batch.
func fragmentsToCandidates(frags []llmjson.Fragment) []cardCandidate {
	out := make([]cardCandidate, len(frags))
	for i, f := range frags {
		out[i] = cardCandidate{
			ID:          looseString(f.ID),
			WordID:      looseString(f.WordID),
			Type:        looseString(f.Type),
			Question:    looseString(f.Question),
			Answer:      looseString(f.Answer),
			Options:     looseStrings(f.Options),
			Difficulty:  looseString(f.Difficulty),
			Explanation: looseString(f.Explanation),
		}
	}
	return out
}

// wordAt pairs a card position with its input word; positions past the
// input list reuse the last word rather than inventing one.
func wordAt(words []WordInput, idx int) WordInput {
	if len(words) == 0 {
		return WordInput{}
	}
	if idx >= len(words) {
		return words[len(words)-1]
	}
	return words[idx]
}

func answerFor(w WordInput) string {
	if w.Translation != "" {
		return w.Translation
	}
	return w.Text
}

// ---------------------------------------------------------------------------
// Quiz
// ---------------------------------------------------------------------------

type quizCandidate struct {
	Questions []questionCandidate `json:"questions"`
}

type questionCandidate struct {
	ID          looseString  `json:"id"`
	Type        looseString  `json:"type"`
	Question    looseString  `json:"question"`
	Answer      looseString  `json:"answer"`
	Options     looseStrings `json:"options"`
	Difficulty  looseString  `json:"difficulty"`
	Explanation looseString  `json:"explanation"`
}

func normalizeQuestion(c questionCandidate, idx int, w WordInput, in QuizInput) domain.QuizQuestion {
	qType := domain.QuestionType(strings.ToLower(string(c.Type)))
	if !qType.IsValid() {
		qType = in.TestType
		if qType == "" {
			qType = domain.QuestionTypeMultipleChoice
		}
	}
	answer := c.Answer.or(answerFor(w))
	return domain.QuizQuestion{
		ID:          c.ID.or(fmt.Sprintf("q%d", idx+1)),
		Type:        qType,
		Question:    c.Question.or(fmt.Sprintf("What does %q mean?", w.Text)),
		Answer:      answer,
		Options:     normalizeOptions(answer, c.Options),
		Difficulty:  cefrOrDefault(c.Difficulty, in.TargetLevel),
		Explanation: string(c.Explanation),
	}
}

// ---------------------------------------------------------------------------
// Recommendations
// ---------------------------------------------------------------------------

type recommendationsCandidate struct {
	Recommendations []recommendationCandidate `json:"recommendations"`
}

type recommendationCandidate struct {
	Type     looseString `json:"type"`
	Content  looseString `json:"content"`
	Priority looseString `json:"priority"`
	Reason   looseString `json:"reason"`
}

// normalizeRecommendations keeps entries with real content, defaults the
// tags, caps the set, and orders it by priority. An empty result means
// the candidate carried nothing usable and the caller should synthesize.
func (s *Service) normalizeRecommendations(c recommendationsCandidate) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, len(c.Recommendations))
	for _, rc := range c.Recommendations {
		if rc.Content == "" {
			continue
		}
		recType := domain.RecommendationType(strings.ToLower(string(rc.Type)))
		if !recType.IsValid() {
			recType = domain.RecommendationTypeReviewSession
		}
		priority := domain.Priority(strings.ToLower(string(rc.Priority)))
		if !priority.IsValid() {
			priority = domain.PriorityMedium
		}
		out = append(out, domain.Recommendation{
			Type:     recType,
			Content:  string(rc.Content),
			Priority: priority,
			Reason:   rc.Reason.or("suggested by your study history"),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	if len(out) > s.policy.MaxRecommendations {
		out = out[:s.policy.MaxRecommendations]
	}
	return out
}
