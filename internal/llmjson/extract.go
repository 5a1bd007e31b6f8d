// Package llmjson recovers structured JSON from noisy, frequently malformed
// LLM completion text. It is the salvage layer between raw provider output
// and the generation service: extraction isolates a parseable object,
// repair fixes near-miss syntax, and rebuild reconstructs known batch
// shapes field-by-field when nothing else parses.
package llmjson

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSON is returned when no parseable JSON object exists in the
// response, even after cleanup.
var ErrNoJSON = errors.New("no valid JSON object found in response")

var (
	chatTokenRe = regexp.MustCompile(`<\|[^|]*\|>`)
	fenceOpenRe = regexp.MustCompile("```(?:json)?[ \t]*")
	// A stray role name the model sometimes emits before the object.
	rolePrefixRe = regexp.MustCompile(`(?:^|\n)\s*assistant\s*(\{)`)
)

// StripNoise removes non-content markers from raw completion text:
// chat-control tokens (<|...|>), markdown code fences, and a stray
// "assistant" role token directly before an opening brace.
func StripNoise(raw string) string {
	s := chatTokenRe.ReplaceAllString(raw, "")
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = rolePrefixRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// Extract isolates the first complete, balanced {...} span that parses as
// JSON. Balance is tracked by brace depth with string-literal awareness,
// so braces inside quoted values do not confuse the scan. When a balanced
// span fails to parse, scanning continues at the next opening brace
// rather than aborting; Extract fails only when no span parses at all.
func Extract(raw string) (json.RawMessage, error) {
	cleaned := StripNoise(raw)

	start := -1
	depth := 0
	for i := 0; i < len(cleaned); {
		switch cleaned[i] {
		case '"':
			i = scanString(cleaned, i)
			continue
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 && start >= 0 {
					candidate := cleaned[start : i+1]
					if json.Valid([]byte(candidate)) {
						return json.RawMessage(candidate), nil
					}
					// Not parseable: keep looking for the next span.
					start = -1
				}
			}
		}
		i++
	}

	// The model may have answered with a bare top-level array.
	if json.Valid([]byte(cleaned)) {
		return json.RawMessage(cleaned), nil
	}
	return nil, ErrNoJSON
}

// scanString returns the index just past the string literal opening at
// s[i] (which must be '"'). Unterminated strings consume to end of input.
func scanString(s string, i int) int {
	i++
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '"':
			return i + 1
		}
		i++
	}
	return len(s)
}
