package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"  Hello World  ", "hello world"},
		{"week-end", "week-end"},
		{"don't", "don't"},
		{"many    spaces", "many spaces"},
		{"", ""},
		{"   ", ""},
		{"Café", "café"},
	}
	for _, tt := range tests {
		if got := NormalizeText(tt.in); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserProgress_MasteryRatio(t *testing.T) {
	p := UserProgress{TotalWords: 50, MasteredWords: 15}
	if got := p.MasteryRatio(); got != 0.3 {
		t.Errorf("MasteryRatio() = %v, want 0.3", got)
	}
	if (UserProgress{}).MasteryRatio() != 0 {
		t.Error("MasteryRatio() with zero total should be 0")
	}
}
