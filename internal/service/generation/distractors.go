package generation

import "github.com/sublingo/sublingo-backend/internal/domain"

// Static confusable tables, keyed by the normalized answer. A lookup hit
// yields stable, plausible same-language distractors; a miss means the
// caller pads with generic placeholders instead.

var translationDistractors = map[string][]string{
	// French
	"bonjour":    {"au revoir", "merci", "s'il vous plaît"},
	"au revoir":  {"bonjour", "merci", "pardon"},
	"merci":      {"de rien", "pardon", "bonjour"},
	"oui":        {"non", "peut-être", "jamais"},
	"non":        {"oui", "toujours", "peut-être"},
	"chien":      {"chat", "cheval", "vache"},
	"chat":       {"chien", "lapin", "souris"},
	"maison":     {"jardin", "voiture", "école"},
	"eau":        {"vin", "lait", "café"},
	"pain":       {"fromage", "beurre", "lait"},

	// English
	"hello":     {"goodbye", "thank you", "please"},
	"goodbye":   {"hello", "welcome", "sorry"},
	"thank you": {"please", "sorry", "excuse me"},
	"yes":       {"no", "maybe", "never"},
	"no":        {"yes", "always", "maybe"},
	"dog":       {"cat", "horse", "cow"},
	"cat":       {"dog", "rabbit", "mouse"},
	"house":     {"garden", "car", "school"},
	"water":     {"wine", "milk", "coffee"},
	"bread":     {"cheese", "butter", "milk"},
}

// Near-homophones for audio-oriented cards.
var phoneticDistractors = map[string][]string{
	"hello": {"halo", "hollow", "hero"},
	"world": {"word", "whirled", "ward"},
	"right": {"write", "rite", "light"},
	"their": {"there", "they're", "three"},
	"see":   {"sea", "she", "saw"},
}

// distractorsFor returns the static distractor pool for an answer, or
// nil when no table covers it.
func distractorsFor(answer string) []string {
	key := domain.NormalizeText(answer)
	if d, ok := translationDistractors[key]; ok {
		return d
	}
	if d, ok := phoneticDistractors[key]; ok {
		return d
	}
	return nil
}
