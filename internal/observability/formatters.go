// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintViolationReport outputs the moderation verdict for a post.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolationReport(report *types.ViolationReport) {
	if report == nil {
		return
	}

	if report.IsClean {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Severity: %s\n", report.Severity))

	sources := []string{}
	if report.SourcesUsed.RuleBased {
		sources = append(sources, "rules")
	}
	if report.SourcesUsed.AI {
		sources = append(sources, "ai")
	}
	sb.WriteString(fmt.Sprintf("Sources:  %s\n\n", strings.Join(sources, ", ")))

	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(report.Violations)))

	count := min(len(report.Violations), maxItemsToShow)
	for i := 0; i < count; i++ {
		v := report.Violations[i]
		description := v.Description
		if len(description) > 45 {
			description = description[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s, x%d)\n", v.Category, v.Source, v.OccurrenceCount))
		sb.WriteString(fmt.Sprintf("  %s\n", description))
		if v.Excerpt != "" {
			excerpt := v.Excerpt
			if len(excerpt) > 45 {
				excerpt = excerpt[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  matched: %s\n", excerpt))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.Violations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more violations", len(report.Violations)-maxItemsToShow))
	}

	p.printBox("CONTENT VIOLATIONS", sb.String())
}

// PrintParagraphs outputs generated paragraph suggestions.
func (p *Printer) PrintParagraphs(result *types.ParagraphsResult) {
	if result == nil || len(result.Paragraphs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider: %s\n\n", result.Provider))

	for i, paragraph := range result.Paragraphs {
		text := paragraph.Text
		if len(text) > 50 {
			text = text[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("[%s]\n", paragraph.Type))
		sb.WriteString(fmt.Sprintf("  %s\n", text))
		if i < len(result.Paragraphs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GENERATED PARAGRAPHS", sb.String())
}

// PrintKeywords outputs the SEO keyword suggestions.
func (p *Printer) PrintKeywords(result *types.KeywordsResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider: %s\n\n", result.Provider))

	if len(result.Keywords) > 0 {
		keywords := strings.Join(result.Keywords, ", ")
		if len(keywords) > 50 {
			keywords = keywords[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", keywords))
	}
	if len(result.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:     %s\n", strings.Join(result.Tags, ", ")))
	}
	if result.SEOTitle != "" {
		sb.WriteString(fmt.Sprintf("Title:    %s\n", result.SEOTitle))
	}
	if result.MetaDescription != "" {
		description := result.MetaDescription
		if len(description) > 50 {
			description = description[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Meta:     %s\n", description))
	}

	p.printBox("SEO KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGrammar outputs grammar check findings.
func (p *Printer) PrintGrammar(result *types.GrammarResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider: %s\n", result.Provider))
	sb.WriteString(fmt.Sprintf("Summary:  %s\n", result.Summary))

	if len(result.Errors) > 0 {
		sb.WriteString("\n")
		count := min(len(result.Errors), maxItemsToShow)
		for i := 0; i < count; i++ {
			issue := result.Errors[i]
			sb.WriteString(fmt.Sprintf("⚠ %s: %s\n", issue.Text, issue.Error))
			if issue.Suggestion != "" {
				sb.WriteString(fmt.Sprintf("  suggestion: %s\n", issue.Suggestion))
			}
		}
		if len(result.Errors) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more issues\n", len(result.Errors)-maxItemsToShow))
		}
	}

	p.printBox("GRAMMAR CHECK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSpam outputs the spam detection verdict.
func (p *Printer) PrintSpam(result *types.SpamResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider:   %s\n", result.Provider))
	verdict := "not spam"
	if result.IsSpam {
		verdict = "SPAM"
	}
	sb.WriteString(fmt.Sprintf("Verdict:    %s\n", verdict))
	sb.WriteString(fmt.Sprintf("Confidence: %d%%\n", result.Confidence))

	if len(result.Indicators) > 0 {
		sb.WriteString("\nIndicators:\n")
		for _, indicator := range result.Indicators {
			sb.WriteString(fmt.Sprintf("  • %s\n", indicator))
		}
	}

	p.printBox("SPAM DETECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTopics outputs suggested topic ideas.
func (p *Printer) PrintTopics(result *types.TopicsResult) {
	if result == nil || len(result.Topics) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Provider: %s\n\n", result.Provider))
	for _, topic := range result.Topics {
		sb.WriteString(fmt.Sprintf("  • %s\n", topic))
	}

	p.printBox("TOPIC IDEAS", strings.TrimSuffix(sb.String(), "\n"))
}
