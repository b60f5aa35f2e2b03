// Package rules provides the deterministic pattern-based violation detector.
// It is pure, synchronous, and always runs regardless of AI availability.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

// maxExcerptSamples bounds how many matched substrings are kept per category.
const maxExcerptSamples = 3

// categoryRule binds a violation category to its patterns and the severity
// implied by any match in that category.
type categoryRule struct {
	category    types.Category
	severity    types.Severity
	description string
	patterns    []*regexp.Regexp
}

// ruleTable is the fixed category/pattern table, compiled at package init.
// Immutable after load; safe for concurrent use.
var ruleTable = []categoryRule{
	{
		category:    types.CategoryProfanity,
		severity:    types.SeverityLow,
		description: "Content contains profane language",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(damn|dammit|crap|bullshit)\b`),
			regexp.MustCompile(`(?i)\b(wtf|stfu|ffs)\b`),
			regexp.MustCompile(`(?i)\bf+u+c+k+\w*\b`),
			regexp.MustCompile(`(?i)\bs+h+i+t+\w*\b`),
		},
	},
	{
		category:    types.CategorySpam,
		severity:    types.SeverityMedium,
		description: "Content contains spam or promotional patterns",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(buy now|click here|limited time offer|act now|order today)\b`),
			regexp.MustCompile(`(?i)\b(make money fast|work from home|earn \$?\d+|get rich quick)\b`),
			regexp.MustCompile(`(?i)\b(100% free|no credit check|risk[- ]free|double your)\b`),
			regexp.MustCompile(`(?i)\bcongratulations,? you('ve| have)? won\b`),
		},
	},
	{
		category:    types.CategoryPersonalAttack,
		severity:    types.SeverityMedium,
		description: "Content contains personal attacks or insults",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\byou('re| are)\s+(so\s+|such\s+an?\s+|an?\s+)?(stupid|dumb|idiot(ic)?|moron(ic)?|pathetic|worthless|loser)\b`),
			regexp.MustCompile(`(?i)\b(shut up|nobody (likes|cares about) you)\b`),
			regexp.MustCompile(`(?i)\byou\s+(idiot|moron|imbecile|fool)\b`),
		},
	},
	{
		category:    types.CategoryHateSpeech,
		severity:    types.SeverityHigh,
		description: "Content contains hateful or discriminatory language",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bi hate (all|every|those)\s+\w+\s*(people|person|group)s?\b`),
			regexp.MustCompile(`(?i)\bgo back to (where you came from|your country)\b`),
			regexp.MustCompile(`(?i)\b(all|those)\s+\w+\s+(people\s+)?(are|should be)\s+(banned|removed|eliminated)\b`),
			regexp.MustCompile(`(?i)\b(subhuman|vermin)\b`),
		},
	},
	{
		category:    types.CategoryViolence,
		severity:    types.SeverityCritical,
		description: "Content contains violent threats",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\bi('ll| will| am going to|m going to)\s+(hurt|kill|beat|attack|destroy)\s+(you|him|her|them)\b`),
			regexp.MustCompile(`(?i)\b(kill yourself|deserve to die|watch your back)\b`),
			regexp.MustCompile(`(?i)\b(shoot|stab|bomb)\s+(you|him|her|them|everyone)\b`),
		},
	},
}

// Detect scans title and content against the fixed rule table and returns the
// matched violations plus the maximum severity across matched categories.
// A clean input yields an empty slice and SeverityNone.
func Detect(title, content string) ([]types.Violation, types.Severity) {
	buffer := strings.TrimSpace(title + " " + content)

	var violations []types.Violation
	severity := types.SeverityNone

	for _, rule := range ruleTable {
		total := 0
		var samples []string
		for _, pattern := range rule.patterns {
			matches := pattern.FindAllString(buffer, -1)
			total += len(matches)
			for _, m := range matches {
				if len(samples) < maxExcerptSamples {
					samples = append(samples, m)
				}
			}
		}
		if total == 0 {
			continue
		}

		violations = append(violations, types.Violation{
			Category:        rule.category,
			Description:     fmt.Sprintf("%s (%d occurrence(s))", rule.description, total),
			Excerpt:         strings.Join(samples, ", "),
			Location:        "content",
			OccurrenceCount: total,
			Source:          types.SourceRule,
		})
		severity = types.MaxSeverity(severity, rule.severity)
	}

	return violations, severity
}
