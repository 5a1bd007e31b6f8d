package generation

import (
	"fmt"
	"strings"

	"github.com/sublingo/sublingo-backend/internal/domain"
)

// Prompt builders. The wording here is a tunable parameter, not a
// contract: the pipeline must survive any response shape regardless of
// how well the model followed these instructions.

const analyzeSystemPrompt = "You are a language-learning assistant. " +
	"Respond with a single valid JSON object and nothing else: no markdown, no commentary."

const batchSystemPrompt = "You are a language-learning content generator. " +
	"Respond with a single valid JSON object and nothing else: no markdown, no commentary."

func buildAnalyzePrompt(in AnalyzeWordInput) string {
	level := "B1"
	if in.UserLevel != "" {
		level = in.UserLevel.String()
	}
	lang := in.OutputLanguage
	if lang == "" {
		lang = "en"
	}
	return fmt.Sprintf(`Analyze the word "%s" as it appears in this context:
%q

The learner's level is %s. Write translation and explanations in %q.

Output ONLY a valid JSON object matching this exact schema:
{
  "word": "<the word>",
  "translation": "<translation>",
  "definition": "<clear definition for the learner's level>",
  "difficulty": "<A1|A2|B1|B2|C1|C2>",
  "cefr_level": "<A1|A2|B1|B2|C1|C2>",
  "context_analysis": "<how the word functions in the given context>",
  "usage_examples": ["<example sentence 1>", "<example sentence 2>"],
  "synonyms": ["<synonym 1>", "<synonym 2>"],
  "etymology": "<brief origin, or empty string>"
}`, in.Word, in.Context, level, lang)
}

func buildTranslatePrompt(in TranslateInput) string {
	level := "B1"
	if in.UserLevel != "" {
		level = in.UserLevel.String()
	}
	return fmt.Sprintf(`Translate the %s word "%s" into %s and analyze it for a %s-level learner.
Context sentence: %q

Output ONLY a valid JSON object matching this exact schema:
{
  "word": "<the word>",
  "translation": "<primary translation>",
  "alternativeTranslations": ["<alt 1>", "<alt 2>"],
  "contextTranslation": "<the full context sentence translated>",
  "definition": "<definition in the target language>",
  "difficulty": "<A1|A2|B1|B2|C1|C2>",
  "cefr_level": "<A1|A2|B1|B2|C1|C2>",
  "contextAnalysis": {
    "originalSentence": "<the context sentence>",
    "translatedSentence": "<its translation>",
    "grammarNotes": "<grammar worth noting>",
    "usage": "<register and typical usage>"
  },
  "learningData": {
    "synonyms": ["..."],
    "relatedWords": ["..."],
    "commonPhrases": ["..."]
  },
  "flashcardSuggestion": {
    "question": "<question text>",
    "answer": "<answer text>",
    "options": ["<answer and three distractors>"],
    "hint": "<short hint>",
    "explanation": "<why the answer is correct>"
  }
}`, in.SourceLanguage, in.Word, in.TargetLanguage, level, in.Context)
}

func buildFlashcardsPrompt(in FlashcardsInput) string {
	count := in.cardCount()
	var words strings.Builder
	for i, w := range in.Words {
		if i == count {
			break
		}
		fmt.Fprintf(&words, "- %q (translation: %q, mastery: %s)\n",
			w.Text, w.Translation, masteryOrDefault(w.MasteryLevel))
	}
	types := "classic, contextual"
	if len(in.Config.Types) > 0 {
		names := make([]string, len(in.Config.Types))
		for i, t := range in.Config.Types {
			names[i] = t.String()
		}
		types = strings.Join(names, ", ")
	}
	return fmt.Sprintf(`Create exactly %d flashcards, one per word:
%s
Allowed card types: %s. Difficulty: %s. Learner level: %s.

Output ONLY a valid JSON object matching this exact schema:
{
  "sessionId": "<any identifier>",
  "cards": [
    {
      "id": "card_1",
      "wordId": "<the word>",
      "type": "<classic|contextual|audio|speed>",
      "question": "<question text>",
      "answer": "<answer text>",
      "options": ["<exactly 4 options including the answer>"],
      "difficulty": "<easy|medium|hard>",
      "explanation": "<one-sentence explanation>"
    }
  ]
}

Rules:
- Card ids must be sequential: card_1, card_2, ...
- Exactly 4 options per card; the answer must be one of them
- Never repeat an option within a card`, count, words.String(), types,
		difficultyOrDefault(in.Config.Difficulty), levelOrDefault(in.Config.UserLevel))
}

func buildQuizPrompt(in QuizInput) string {
	count := in.questionCount()
	var words strings.Builder
	for i, w := range in.Words {
		if i == count {
			break
		}
		fmt.Fprintf(&words, "- %q (translation: %q)\n", w.Text, w.Translation)
	}
	testType := domain.QuestionTypeMultipleChoice
	if in.TestType != "" {
		testType = in.TestType
	}
	return fmt.Sprintf(`Create exactly %d %s quiz questions, one per word:
%s
Target level: %s.

Output ONLY a valid JSON object matching this exact schema:
{
  "questions": [
    {
      "id": "q1",
      "type": "%s",
      "question": "<question text>",
      "answer": "<answer text>",
      "options": ["<exactly 4 options including the answer>"],
      "difficulty": "<A1|A2|B1|B2|C1|C2>",
      "explanation": "<one-sentence explanation>"
    }
  ]
}

Rules:
- Question ids must be sequential: q1, q2, ...
- Exactly 4 options per question; the answer must be one of them`,
		count, testType, words.String(), levelOrDefault(in.TargetLevel), testType)
}

func buildRecommendationsPrompt(p domain.UserProgress) string {
	return fmt.Sprintf(`A learner has studied %d words, mastered %d, with average accuracy %.2f.
Weak areas: %s.

Suggest at most 3 study recommendations. Output ONLY a valid JSON object matching this exact schema:
{
  "recommendations": [
    {
      "type": "<word_to_learn|exercise_type|review_session>",
      "content": "<what to do>",
      "priority": "<high|medium|low>",
      "reason": "<why>"
    }
  ]
}`, p.TotalWords, p.MasteredWords, p.AverageAccuracy, strings.Join(p.WeakAreas, ", "))
}

func masteryOrDefault(m domain.MasteryLevel) domain.MasteryLevel {
	if m == "" {
		return domain.MasteryLevelNew
	}
	return m
}

func levelOrDefault(l domain.CEFRLevel) domain.CEFRLevel {
	if l == "" {
		return domain.CEFRLevelB1
	}
	return l
}

func difficultyOrDefault(d string) string {
	if d == "" {
		return SessionDifficultyAdaptive
	}
	return d
}
