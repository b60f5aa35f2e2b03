// Package types provides type definitions for structured data used throughout the content-intelligence system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Severity is the ordered risk level attached to a violation or report.
type Severity string

// Severity levels, ordered from none to critical.
const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityPriority maps each severity to its numeric rank for ordering.
var severityPriority = map[Severity]int{
	SeverityNone:     0,
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// Priority returns the numeric rank of the severity (0-4).
// Unknown values rank as none.
func (s Severity) Priority() int {
	return severityPriority[s]
}

// MaxSeverity returns the higher-ranked of two severities.
func MaxSeverity(a, b Severity) Severity {
	if b.Priority() > a.Priority() {
		return b
	}
	return a
}

// ParseSeverity normalizes a severity string reported by an external backend.
// Unrecognized values map to none so a malformed reply can never raise the verdict.
func ParseSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityLow:
		return SeverityLow
	case SeverityMedium:
		return SeverityMedium
	case SeverityHigh:
		return SeverityHigh
	case SeverityCritical:
		return SeverityCritical
	default:
		return SeverityNone
	}
}

// Category classifies why content was flagged.
type Category string

// Violation categories.
const (
	CategoryHateSpeech     Category = "hate_speech"
	CategorySpam           Category = "spam"
	CategoryInappropriate  Category = "inappropriate_content"
	CategoryPersonalAttack Category = "personal_attacks"
	CategoryPlagiarism     Category = "plagiarism"
	CategoryProfanity      Category = "profanity"
	CategoryHarassment     Category = "harassment"
	CategoryViolence       Category = "violence"
	CategoryMisleading     Category = "misleading_information"
)

// flagKeywords maps keyword fragments found in backend flag strings to categories,
// checked in order. Backends are instructed to use our category names but are not
// trusted to comply exactly.
var flagKeywords = []struct {
	keyword  string
	category Category
}{
	{"hate", CategoryHateSpeech},
	{"spam", CategorySpam},
	{"advert", CategorySpam},
	{"attack", CategoryPersonalAttack},
	{"insult", CategoryPersonalAttack},
	{"plagiar", CategoryPlagiarism},
	{"profan", CategoryProfanity},
	{"obscen", CategoryProfanity},
	{"harass", CategoryHarassment},
	{"bully", CategoryHarassment},
	{"violen", CategoryViolence},
	{"threat", CategoryViolence},
	{"mislead", CategoryMisleading},
	{"misinform", CategoryMisleading},
	{"inappropriate", CategoryInappropriate},
	{"sexual", CategoryInappropriate},
	{"explicit", CategoryInappropriate},
}

// CategoryFromFlag maps a free-form flag string from an AI backend to a category
// via keyword containment. Returns false when no keyword matches.
func CategoryFromFlag(flag string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(flag))
	if normalized == "" {
		return "", false
	}
	for _, fk := range flagKeywords {
		if strings.Contains(normalized, fk.keyword) {
			return fk.category, true
		}
	}
	return "", false
}

// ViolationSource identifies which analyzer produced a violation.
type ViolationSource string

// Violation sources.
const (
	SourceRule ViolationSource = "rule"
	SourceAI   ViolationSource = "ai"
)

// Violation represents a single content-policy finding. Immutable once constructed.
type Violation struct {
	Category        Category        `json:"category"`
	Description     string          `json:"description"`
	Excerpt         string          `json:"excerpt,omitempty"`
	Location        string          `json:"location"`
	OccurrenceCount int             `json:"occurrence_count"`
	Source          ViolationSource `json:"source"`
}

// SourcesUsed records which analyzers contributed to a report.
type SourcesUsed struct {
	RuleBased bool `json:"rule_based"`
	AI        bool `json:"ai"`
}

// ViolationReport is the complete, merged verdict for one piece of content.
// Created fresh per call and never mutated after construction.
type ViolationReport struct {
	HasViolations bool        `json:"has_violations"`
	IsClean       bool        `json:"is_clean"`
	Severity      Severity    `json:"severity"`
	Violations    []Violation `json:"violations"`
	AnalyzedAt    time.Time   `json:"analyzed_at"`
	SourcesUsed   SourcesUsed `json:"sources_used"`
}

// NewViolationReport constructs a report from a merged violation list,
// deriving HasViolations/IsClean and stamping the analysis time.
func NewViolationReport(violations []Violation, severity Severity, sources SourcesUsed) ViolationReport {
	if violations == nil {
		violations = []Violation{}
	}
	return ViolationReport{
		HasViolations: len(violations) > 0,
		IsClean:       len(violations) == 0,
		Severity:      severity,
		Violations:    violations,
		AnalyzedAt:    time.Now().UTC(),
		SourcesUsed:   sources,
	}
}
