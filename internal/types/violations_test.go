package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverity_Priority(t *testing.T) {
	assert.Equal(t, 0, SeverityNone.Priority())
	assert.Equal(t, 1, SeverityLow.Priority())
	assert.Equal(t, 2, SeverityMedium.Priority())
	assert.Equal(t, 3, SeverityHigh.Priority())
	assert.Equal(t, 4, SeverityCritical.Priority())
	assert.Equal(t, 0, Severity("bogus").Priority())
}

func TestMaxSeverity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Severity
		expected Severity
	}{
		{"critical beats low", SeverityLow, SeverityCritical, SeverityCritical},
		{"order independent", SeverityCritical, SeverityLow, SeverityCritical},
		{"equal severities", SeverityMedium, SeverityMedium, SeverityMedium},
		{"none loses to everything", SeverityNone, SeverityLow, SeverityLow},
		{"both none", SeverityNone, SeverityNone, SeverityNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaxSeverity(tt.a, tt.b))
		})
	}
}

func TestParseSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, ParseSeverity("high"))
	assert.Equal(t, SeverityHigh, ParseSeverity(" HIGH "))
	assert.Equal(t, SeverityCritical, ParseSeverity("Critical"))
	assert.Equal(t, SeverityNone, ParseSeverity(""))
	assert.Equal(t, SeverityNone, ParseSeverity("extreme"))
}

func TestCategoryFromFlag(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		expected Category
		matched  bool
	}{
		{"exact category name", "hate_speech", CategoryHateSpeech, true},
		{"free-form phrasing", "Hateful language detected", CategoryHateSpeech, true},
		{"threat maps to violence", "threatening language", CategoryViolence, true},
		{"insult maps to personal attacks", "insulting remarks", CategoryPersonalAttack, true},
		{"advertising maps to spam", "advertisement", CategorySpam, true},
		{"bullying maps to harassment", "bullying behavior", CategoryHarassment, true},
		{"misinformation", "misinformation about vaccines", CategoryMisleading, true},
		{"unknown flag", "questionable vibes", "", false},
		{"empty flag", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, matched := CategoryFromFlag(tt.flag)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.expected, category)
		})
	}
}

func TestNewViolationReport_Derivations(t *testing.T) {
	violations := []Violation{
		{
			Category:        CategoryProfanity,
			Description:     "Content contains profane language",
			Location:        "content",
			OccurrenceCount: 2,
			Source:          SourceRule,
		},
	}

	report := NewViolationReport(violations, SeverityLow, SourcesUsed{RuleBased: true})
	assert.True(t, report.HasViolations)
	assert.False(t, report.IsClean)
	assert.Equal(t, SeverityLow, report.Severity)
	assert.False(t, report.AnalyzedAt.IsZero())
	assert.True(t, report.SourcesUsed.RuleBased)
	assert.False(t, report.SourcesUsed.AI)
}

func TestNewViolationReport_Clean(t *testing.T) {
	report := NewViolationReport(nil, SeverityNone, SourcesUsed{RuleBased: true})
	assert.False(t, report.HasViolations)
	assert.True(t, report.IsClean)
	assert.NotNil(t, report.Violations)
	assert.Empty(t, report.Violations)
}

func TestViolationReport_JSONMarshaling(t *testing.T) {
	report := NewViolationReport([]Violation{
		{
			Category:        CategoryViolence,
			Description:     "Content contains violent threats",
			Excerpt:         "I will hurt you",
			Location:        "content",
			OccurrenceCount: 1,
			Source:          SourceRule,
		},
	}, SeverityCritical, SourcesUsed{RuleBased: true, AI: true})

	jsonBytes, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"severity":"critical"`)
	assert.Contains(t, string(jsonBytes), `"category":"violence"`)
	assert.Contains(t, string(jsonBytes), `"source":"rule"`)
	assert.Contains(t, string(jsonBytes), `"rule_based":true`)

	var unmarshaled ViolationReport
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, report.Severity, unmarshaled.Severity)
	assert.Len(t, unmarshaled.Violations, 1)
	assert.Equal(t, CategoryViolence, unmarshaled.Violations[0].Category)
}
