// Package fallback provides the deterministic, network-free generators used
// when no external provider succeeds. Every function here is total: it always
// returns a usable result.
package fallback

import (
	"strings"
	"unicode"
)

// maxTopicTokens bounds how many meaningful title tokens form the topic.
const maxTopicTokens = 4

// stopWords is the fixed English stop-word set stripped during topic extraction.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"of": true, "to": true, "in": true, "on": true, "for": true, "with": true,
	"at": true, "by": true, "from": true, "is": true, "are": true, "was": true,
	"were": true, "be": true, "been": true, "being": true, "it": true,
	"its": true, "as": true, "about": true, "into": true, "your": true,
	"my": true, "our": true, "their": true, "this": true, "that": true,
	"these": true, "those": true, "how": true, "what": true, "why": true,
	"when": true, "where": true, "who": true, "will": true, "can": true,
	"you": true, "we": true, "they": true, "do": true, "does": true,
	"not": true, "no": true, "so": true, "if": true, "then": true,
}

// ExtractTopic reduces a post title to its meaningful core: lowercased,
// punctuation stripped, stop words removed, first four remaining tokens.
// Falls back to the raw title when nothing survives, so the result is never
// empty for a non-empty title. Idempotent on its own output.
func ExtractTopic(title string) string {
	cleaned := stripPunctuation(strings.ToLower(title))

	var kept []string
	for _, token := range strings.Fields(cleaned) {
		if stopWords[token] {
			continue
		}
		kept = append(kept, token)
		if len(kept) == maxTopicTokens {
			break
		}
	}

	if len(kept) == 0 {
		return strings.TrimSpace(title)
	}
	return strings.Join(kept, " ")
}

// stripPunctuation replaces non-alphanumeric runes with spaces.
func stripPunctuation(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}
