package generation

import (
	"testing"

	"github.com/sublingo/sublingo-backend/internal/domain"
)

func TestCardDifficulty_fixed(t *testing.T) {
	cfg := SessionConfig{Difficulty: "hard"}
	for i := 0; i < 5; i++ {
		if d := cardDifficulty(cfg, i, 5); d != domain.DifficultyHard {
			t.Errorf("card %d: %s, want hard", i, d)
		}
	}
}

func TestCardDifficulty_adaptiveCurve(t *testing.T) {
	tests := []struct {
		level domain.CEFRLevel
		want  []domain.Difficulty // over a 10-card batch
	}{
		{
			level: domain.CEFRLevelA1,
			want: []domain.Difficulty{
				"easy", "easy", "easy", "easy", "easy", "easy", "easy",
				"medium", "medium", "medium",
			},
		},
		{
			level: domain.CEFRLevelB1,
			want: []domain.Difficulty{
				"easy", "easy", "easy", "easy",
				"medium", "medium", "medium", "medium",
				"hard", "hard",
			},
		},
		{
			level: domain.CEFRLevelC2,
			want: []domain.Difficulty{
				"medium", "medium", "medium", "medium", "medium",
				"hard", "hard", "hard", "hard", "hard",
			},
		},
	}
	for _, tt := range tests {
		cfg := SessionConfig{Difficulty: SessionDifficultyAdaptive, UserLevel: tt.level}
		for i, want := range tt.want {
			if got := cardDifficulty(cfg, i, len(tt.want)); got != want {
				t.Errorf("%s card %d: %s, want %s", tt.level, i, got, want)
			}
		}
	}
}

func TestCardTypeFor(t *testing.T) {
	s := &Service{policy: DefaultPolicy()}

	tests := []struct {
		name    string
		mastery domain.MasteryLevel
		cfg     SessionConfig
		idx     int
		want    domain.CardType
	}{
		{"new word", domain.MasteryLevelNew, SessionConfig{}, 0, domain.CardTypeClassic},
		{"learning word", domain.MasteryLevelLearning, SessionConfig{}, 0, domain.CardTypeContextual},
		{"familiar premium", domain.MasteryLevelFamiliar, SessionConfig{IsPremium: true}, 0, domain.CardTypeAudio},
		{"familiar free", domain.MasteryLevelFamiliar, SessionConfig{}, 0, domain.CardTypeContextual},
		{"mastered premium", domain.MasteryLevelMastered, SessionConfig{IsPremium: true}, 0, domain.CardTypeSpeed},
		{"mastered free", domain.MasteryLevelMastered, SessionConfig{}, 0, domain.CardTypeContextual},
		{
			"no mastery cycles through session types",
			"", SessionConfig{Types: []domain.CardType{domain.CardTypeClassic, domain.CardTypeContextual}},
			1, domain.CardTypeContextual,
		},
		{
			"mastery preference filtered by session types",
			domain.MasteryLevelNew,
			SessionConfig{Types: []domain.CardType{domain.CardTypeContextual}},
			0, domain.CardTypeContextual,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.cardTypeFor(tt.mastery, tt.cfg, tt.idx); got != tt.want {
				t.Errorf("cardTypeFor() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestGateCardType(t *testing.T) {
	free := SessionConfig{IsPremium: false}
	if got := gateCardType(domain.CardTypeAudio, free); got != domain.CardTypeContextual {
		t.Errorf("audio for free user = %s, want contextual", got)
	}
	if got := gateCardType(domain.CardTypeSpeed, free); got != domain.CardTypeClassic {
		t.Errorf("speed for free user = %s, want classic", got)
	}
	premium := SessionConfig{IsPremium: true}
	if got := gateCardType(domain.CardTypeSpeed, premium); got != domain.CardTypeSpeed {
		t.Errorf("speed for premium user = %s, want speed", got)
	}
}

func TestFallbackTiming(t *testing.T) {
	tests := []struct {
		difficulty domain.Difficulty
		cardType   domain.CardType
		wantTime   int
		wantPoints int
	}{
		{domain.DifficultyEasy, domain.CardTypeClassic, 20000, 10},
		{domain.DifficultyMedium, domain.CardTypeClassic, 15000, 15},
		{domain.DifficultyHard, domain.CardTypeClassic, 10000, 20},
		{domain.DifficultyMedium, domain.CardTypeSpeed, 10000, 20},
		{domain.DifficultyMedium, domain.CardTypeAudio, 20000, 20},
	}
	for _, tt := range tests {
		gotTime, gotPoints := fallbackTiming(tt.difficulty, tt.cardType)
		if gotTime != tt.wantTime || gotPoints != tt.wantPoints {
			t.Errorf("fallbackTiming(%s, %s) = %d/%d, want %d/%d",
				tt.difficulty, tt.cardType, gotTime, gotPoints, tt.wantTime, tt.wantPoints)
		}
	}
}

func TestBlankWord(t *testing.T) {
	got, ok := blankWord("The Dog sleeps on the mat.", "dog")
	if !ok || got != "The _____ sleeps on the mat." {
		t.Errorf("blankWord() = %q, %v", got, ok)
	}

	if _, ok := blankWord("No match here.", "dog"); ok {
		t.Error("blankWord() should report a miss")
	}
	if _, ok := blankWord("", "dog"); ok {
		t.Error("blankWord() on empty sentence should report a miss")
	}
}

func TestDistractorsFor(t *testing.T) {
	if d := distractorsFor("Bonjour"); len(d) == 0 {
		t.Error("lookup must normalize case")
	}
	if d := distractorsFor("hello"); len(d) == 0 {
		t.Error("English table miss")
	}
	if d := distractorsFor("zymurgy"); d != nil {
		t.Errorf("unknown word should return nil, got %v", d)
	}
}
