package fallback

import (
	"fmt"
	"strings"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

// typoDictionary is the fixed lookup of common misspellings.
var typoDictionary = map[string]string{
	"teh":        "the",
	"recieve":    "receive",
	"seperate":   "separate",
	"definately": "definitely",
	"occured":    "occurred",
	"untill":     "until",
	"wich":       "which",
	"becuase":    "because",
	"thier":      "their",
	"alot":       "a lot",
	"accomodate": "accommodate",
	"existance":  "existence",
}

// Grammar performs a fixed-dictionary typo lookup plus a terminal-punctuation
// check. It is intentionally shallow: a usable answer beats no answer when no
// provider is reachable.
func Grammar(content string) types.GrammarResult {
	issues := []types.GrammarIssue{}
	seen := make(map[string]bool)

	for _, raw := range strings.Fields(content) {
		word := strings.ToLower(strings.Trim(raw, ".,;:!?\"'()[]"))
		correction, isTypo := typoDictionary[word]
		if !isTypo || seen[word] {
			continue
		}
		seen[word] = true
		issues = append(issues, types.GrammarIssue{
			Text:       word,
			Error:      "Possible spelling mistake",
			Suggestion: correction,
		})
	}

	trimmed := strings.TrimSpace(content)
	if runes := []rune(trimmed); len(runes) > 0 && !strings.ContainsRune(".!?\")", runes[len(runes)-1]) {
		issues = append(issues, types.GrammarIssue{
			Text:       lastWords(trimmed, 5),
			Error:      "Text does not end with terminal punctuation",
			Suggestion: "End the final sentence with a period, question mark, or exclamation point",
		})
	}

	summary := "No obvious grammar issues found"
	if len(issues) > 0 {
		summary = fmt.Sprintf("Found %d potential issue(s)", len(issues))
	}

	return types.GrammarResult{
		Success:  true,
		Errors:   issues,
		Summary:  summary,
		Provider: types.BuiltinProvider,
	}
}

// lastWords returns the trailing n words of s for issue context.
func lastWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return strings.Join(words, " ")
}
