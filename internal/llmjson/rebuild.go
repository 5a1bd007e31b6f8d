package llmjson

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrNoRecords is returned when pattern salvage finds no recoverable
// records in the text.
var ErrNoRecords = errors.New("no records recovered from response")

// Fragment is one record recovered field-by-field from a broken batch
// response. Absent fields are zero; the caller decides which fragments
// are complete enough to keep and fills defaults for the rest.
type Fragment struct {
	ID          string
	WordID      string
	Type        string
	Question    string
	Answer      string
	Options     []string
	Difficulty  string
	Explanation string
}

var (
	cardIDRe     = regexp.MustCompile(`"id"\s*:\s*"(card_\d+)"`)
	questionIDRe = regexp.MustCompile(`"id"\s*:\s*"(q\d+)"`)

	stringLiteralRe = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// RebuildCards salvages flashcard records from text where neither
// extraction nor repair produced parseable JSON. It anchors on the
// sequential card identifiers ("card_1", "card_2", ...) that batch
// prompts require, and scans each identifier's surrounding segment for
// the nearest question, answer, options, and related fields. At most
// want fragments are returned; fewer than want is a valid outcome the
// caller must surface as a partial batch.
func RebuildCards(s string, want int) ([]Fragment, error) {
	return rebuild(s, cardIDRe, want)
}

// RebuildQuestions salvages quiz question records ("q1", "q2", ...) the
// same way RebuildCards salvages flashcards.
func RebuildQuestions(s string, want int) ([]Fragment, error) {
	return rebuild(s, questionIDRe, want)
}

func rebuild(s string, idRe *regexp.Regexp, want int) ([]Fragment, error) {
	locs := idRe.FindAllStringSubmatchIndex(s, -1)
	if len(locs) == 0 {
		return nil, ErrNoRecords
	}

	frags := make([]Fragment, 0, len(locs))
	for i, loc := range locs {
		segEnd := len(s)
		if i+1 < len(locs) {
			segEnd = locs[i+1][0]
		}
		seg := s[loc[0]:segEnd]

		f := Fragment{
			ID:          s[loc[2]:loc[3]],
			WordID:      fieldString(seg, "wordId"),
			Type:        fieldString(seg, "type"),
			Question:    fieldString(seg, "question"),
			Answer:      fieldString(seg, "answer"),
			Options:     fieldStrings(seg, "options"),
			Difficulty:  fieldString(seg, "difficulty"),
			Explanation: fieldString(seg, "explanation"),
		}
		// A record with neither question nor answer carries nothing
		// worth normalizing.
		if f.Question == "" && f.Answer == "" {
			continue
		}
		frags = append(frags, f)
	}

	if len(frags) == 0 {
		return nil, ErrNoRecords
	}
	if want > 0 && len(frags) > want {
		frags = frags[:want]
	}
	return frags, nil
}

// fieldString finds `"key": "value"` in seg and returns the unescaped
// value, or "" when the key is absent or its value is cut off.
func fieldString(seg, key string) string {
	re := regexp.MustCompile(`"` + key + `"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	m := re.FindStringSubmatch(seg)
	if m == nil {
		return ""
	}
	return unescape(m[1])
}

// fieldStrings finds `"key": [ ... ]` in seg and returns the string
// literals inside the brackets.
func fieldStrings(seg, key string) []string {
	re := regexp.MustCompile(`"` + key + `"\s*:\s*\[([^\]]*)\]`)
	m := re.FindStringSubmatch(seg)
	if m == nil {
		return nil
	}
	var out []string
	for _, lit := range stringLiteralRe.FindAllStringSubmatch(m[1], -1) {
		out = append(out, unescape(lit[1]))
	}
	return out
}

func unescape(s string) string {
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return s
	}
	return u
}
