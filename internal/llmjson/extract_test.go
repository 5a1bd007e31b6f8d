package llmjson

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "clean object",
			raw:  `{"word": "bonjour"}`,
			want: `{"word": "bonjour"}`,
		},
		{
			name: "markdown fence",
			raw:  "```json\n{\"word\": \"bonjour\"}\n```",
			want: `{"word": "bonjour"}`,
		},
		{
			name: "chat control tokens",
			raw:  `<|im_start|>{"word": "bonjour"}<|im_end|>`,
			want: `{"word": "bonjour"}`,
		},
		{
			name: "assistant role prefix",
			raw:  `assistant {"word": "bonjour"}`,
			want: `{"word": "bonjour"}`,
		},
		{
			name: "surrounding prose",
			raw:  `Here is the analysis you asked for: {"word": "bonjour"} Hope it helps!`,
			want: `{"word": "bonjour"}`,
		},
		{
			name: "nested object",
			raw:  `{"a": {"b": {"c": 1}}}`,
			want: `{"a": {"b": {"c": 1}}}`,
		},
		{
			name: "braces inside string values",
			raw:  `{"question": "use { and } freely", "answer": "ok"}`,
			want: `{"question": "use { and } freely", "answer": "ok"}`,
		},
		{
			name: "skips unparseable span",
			raw:  `{this is not json} {"word": "chien"}`,
			want: `{"word": "chien"}`,
		},
		{
			name: "bare top-level array",
			raw:  `["a", "b"]`,
			want: `["a", "b"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.raw)
			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Extract() = %s, want %s", got, tt.want)
			}
			if !json.Valid(got) {
				t.Errorf("Extract() returned invalid JSON: %s", got)
			}
		})
	}
}

func TestExtract_noJSON(t *testing.T) {
	for _, raw := range []string{
		"",
		"I could not produce a response.",
		"{truncated and never closed",
		"{bad} {also bad}",
	} {
		if _, err := Extract(raw); !errors.Is(err, ErrNoJSON) {
			t.Errorf("Extract(%q) error = %v, want ErrNoJSON", raw, err)
		}
	}
}

func TestStripNoise(t *testing.T) {
	raw := "<|system|>```json\n{\"a\": 1}\n``` <|end|>"
	if got := StripNoise(raw); got != `{"a": 1}` {
		t.Errorf("StripNoise() = %q", got)
	}
}
