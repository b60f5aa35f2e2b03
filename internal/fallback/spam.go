package fallback

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

const (
	maxAllowedLinks   = 5
	minRepeatRun      = 10
	confidencePerHit  = 30
	confidenceCeiling = 95
)

// urlPattern matches URL-like substrings.
var urlPattern = regexp.MustCompile(`(?i)(https?://|www\.)\S+`)

// promotionalPhrases is the fixed list of promotional markers.
var promotionalPhrases = []string{
	"buy now",
	"click here",
	"limited time",
	"act now",
	"free money",
	"make money fast",
	"100% free",
	"no credit check",
	"risk-free",
	"winner",
	"congratulations you",
}

// Spam applies rule-based heuristics: excessive links, promotional phrasing,
// and long repeated character runs. Two or more indicators mark the content
// as spam.
func Spam(content string) types.SpamResult {
	indicators := []string{}
	lower := strings.ToLower(content)

	if links := urlPattern.FindAllString(content, -1); len(links) > maxAllowedLinks {
		indicators = append(indicators, fmt.Sprintf("excessive links (%d)", len(links)))
	}

	for _, phrase := range promotionalPhrases {
		if strings.Contains(lower, phrase) {
			indicators = append(indicators, fmt.Sprintf("promotional phrase: %q", phrase))
		}
	}

	if run := longestRepeatRun(content); run >= minRepeatRun {
		indicators = append(indicators, fmt.Sprintf("character repeated %d times consecutively", run))
	}

	confidence := len(indicators) * confidencePerHit
	if confidence > confidenceCeiling {
		confidence = confidenceCeiling
	}

	return types.SpamResult{
		Success:    true,
		IsSpam:     len(indicators) > 1,
		Confidence: confidence,
		Indicators: indicators,
		Provider:   types.BuiltinProvider,
	}
}

// longestRepeatRun returns the length of the longest run of one repeated rune.
// Go's regexp has no backreferences, so this is a plain scan.
func longestRepeatRun(s string) int {
	var prev rune
	current, longest := 0, 0
	for _, r := range s {
		if r == prev {
			current++
		} else {
			prev = r
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}
