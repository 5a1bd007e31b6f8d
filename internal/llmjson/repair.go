package llmjson

import "strings"

// A rewriteRule is one pure text transform applied during Repair. Rules
// are string-aware: none of them touches content inside JSON string
// literals, which keeps them safe to re-apply.
type rewriteRule struct {
	name  string
	apply func(string) string
}

// Rule order matters for idempotence: orphan removal can expose a
// trailing comma, so it runs before the comma rules.
var rewriteRules = []rewriteRule{
	{"drop-orphan-strings", dropOrphanStrings},
	{"drop-trailing-commas", dropTrailingCommas},
	{"insert-missing-commas", insertMissingCommas},
}

// Repair applies the ordered rewrite rules once each. Every rule is a
// fixpoint on its own output, and the ordering is chosen so that no rule
// reintroduces work for an earlier one: Repair(Repair(x)) == Repair(x).
// Valid JSON passes through byte-identical.
func Repair(s string) string {
	for _, r := range rewriteRules {
		s = r.apply(s)
	}
	return s
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// dropTrailingCommas removes a comma whose next non-whitespace character
// closes a container, e.g. `["a","b",]` or `{"k": 1,}`.
func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '"' {
			j := scanString(s, i)
			b.WriteString(s[i:j])
			i = j
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(s) && isJSONSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				i++ // drop the comma, keep surrounding whitespace
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

// insertMissingCommas adds the comma the model omitted between two
// sibling values: a closing `}` or `]` directly followed (modulo
// whitespace) by the start of another value (`{`, `[` or `"`).
func insertMissingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		c := s[i]
		if c == '"' {
			j := scanString(s, i)
			b.WriteString(s[i:j])
			i = j
			continue
		}
		b.WriteByte(c)
		i++
		if c == '}' || c == ']' {
			j := i
			for j < len(s) && isJSONSpace(s[j]) {
				j++
			}
			if j < len(s) && (s[j] == '{' || s[j] == '[' || s[j] == '"') {
				b.WriteByte(',')
			}
		}
	}
	return b.String()
}

// dropOrphanStrings removes lines holding a bare string literal in
// object position. Object members need a "key": value pair, so a lone
// quoted string there is truncation debris; the same line inside an
// array is a legitimate element and stays.
func dropOrphanStrings(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	var stack []byte
	for _, line := range lines {
		if isBareStringLine(line) && topContainer(stack) == '{' {
			continue
		}
		out = append(out, line)
		trackContainers(&stack, line)
	}
	return strings.Join(out, "\n")
}

// isBareStringLine reports whether the line is exactly one string
// literal, optionally comma-terminated, with no key or value attached.
func isBareStringLine(line string) bool {
	t := strings.TrimSpace(line)
	t = strings.TrimSuffix(t, ",")
	t = strings.TrimSpace(t)
	if len(t) < 2 || t[0] != '"' {
		return false
	}
	return scanString(t, 0) == len(t)
}

func topContainer(stack []byte) byte {
	if len(stack) == 0 {
		return 0
	}
	return stack[len(stack)-1]
}

// trackContainers updates the open-container stack with the braces and
// brackets found on one line, skipping string literals.
func trackContainers(stack *[]byte, line string) {
	for i := 0; i < len(line); {
		switch line[i] {
		case '"':
			i = scanString(line, i)
			continue
		case '{', '[':
			*stack = append(*stack, line[i])
		case '}', ']':
			if n := len(*stack); n > 0 {
				*stack = (*stack)[:n-1]
			}
		}
		i++
	}
}
