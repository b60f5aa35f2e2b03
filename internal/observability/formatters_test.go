package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

func TestPrintViolationReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := types.NewViolationReport([]types.Violation{
		{
			Category:        types.CategoryViolence,
			Description:     "Content contains violent threats",
			Excerpt:         "I will hurt you",
			Location:        "content",
			OccurrenceCount: 1,
			Source:          types.SourceRule,
		},
	}, types.SeverityCritical, types.SourcesUsed{RuleBased: true})

	p.PrintViolationReport(&report)
	output := buf.String()

	assert.Contains(t, output, "CONTENT VIOLATIONS")
	assert.Contains(t, output, "critical")
	assert.Contains(t, output, "violence")
	assert.Contains(t, output, "rules")
}

func TestPrintViolationReport_Clean(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := types.NewViolationReport(nil, types.SeverityNone, types.SourcesUsed{RuleBased: true})
	p.PrintViolationReport(&report)

	assert.Contains(t, buf.String(), "NO VIOLATIONS FOUND")
}

func TestPrintViolationReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintViolationReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintParagraphs(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.ParagraphsResult{
		Success:  true,
		Provider: "gemini",
		Paragraphs: []types.Paragraph{
			{ID: "1", Text: "Opening words.", Type: "intro"},
			{ID: "2", Text: "Middle words.", Type: "body"},
		},
	}

	p.PrintParagraphs(&result)
	output := buf.String()

	assert.Contains(t, output, "GENERATED PARAGRAPHS")
	assert.Contains(t, output, "gemini")
	assert.Contains(t, output, "[intro]")
	assert.Contains(t, output, "Opening words.")
}

func TestPrintParagraphs_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintParagraphs(&types.ParagraphsResult{Success: true})

	assert.Empty(t, buf.String())
}

func TestPrintSpam(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.SpamResult{
		Success:    true,
		IsSpam:     true,
		Confidence: 90,
		Indicators: []string{"excessive links (7)"},
		Provider:   types.BuiltinProvider,
	}

	p.PrintSpam(&result)
	output := buf.String()

	assert.Contains(t, output, "SPAM DETECTION")
	assert.Contains(t, output, "SPAM")
	assert.Contains(t, output, "90%")
	assert.Contains(t, output, "excessive links")
}

func TestPrintKeywords(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := types.KeywordsResult{
		Success:  true,
		Keywords: []string{"go", "testing"},
		Tags:     []string{"dev"},
		SEOTitle: "Testing in Go",
		Provider: "openai",
	}

	p.PrintKeywords(&result)
	output := buf.String()

	assert.Contains(t, output, "SEO KEYWORDS")
	assert.Contains(t, output, "go, testing")
	assert.Contains(t, output, "Testing in Go")
}
