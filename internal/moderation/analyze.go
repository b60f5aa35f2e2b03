// Package moderation merges the pattern rule engine and optional AI analysis
// into a single violation verdict. The aggregator is total: it never returns
// an error, and a failed AI call degrades to a rule-only report.
package moderation

import (
	"context"
	"log"

	"github.com/Ab-xo/content-intelligence/internal/parsing"
	"github.com/Ab-xo/content-intelligence/internal/prompts"
	"github.com/Ab-xo/content-intelligence/internal/provider"
	"github.com/Ab-xo/content-intelligence/internal/rules"
	"github.com/Ab-xo/content-intelligence/internal/types"
)

// Analyzer coordinates rule-based and AI-based content analysis.
type Analyzer struct {
	chain *provider.Chain
}

// New creates an Analyzer. A nil chain disables the AI branch entirely.
func New(chain *provider.Chain) *Analyzer {
	return &Analyzer{chain: chain}
}

// aiViolation is the per-finding shape expected from the moderation backend.
type aiViolation struct {
	Flag        string `json:"flag"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// aiModerationResponse is the overall shape expected from the moderation backend.
type aiModerationResponse struct {
	Violations []aiViolation `json:"violations"`
	Severity   string        `json:"severity"`
}

// Analyze runs the pattern rule engine and, when requested, one AI analysis
// over the same text, then merges the results de-duplicated by category.
// Rule-sourced entries win on category conflicts.
func (a *Analyzer) Analyze(ctx context.Context, title, content string, useAI bool) types.ViolationReport {
	ruleViolations, ruleSeverity := rules.Detect(title, content)

	sources := types.SourcesUsed{RuleBased: true}
	merged := make([]types.Violation, 0, len(ruleViolations))
	seen := make(map[types.Category]bool)

	for _, v := range ruleViolations {
		merged = append(merged, v)
		seen[v.Category] = true
	}

	severity := ruleSeverity

	if useAI && a.chain != nil {
		aiViolations, aiSeverity, ok := a.analyzeWithAI(ctx, title, content)
		if ok {
			sources.AI = true
			severity = types.MaxSeverity(severity, aiSeverity)
			for _, v := range aiViolations {
				if seen[v.Category] {
					// Both sources flagged this category; the rule entry
					// stays, SourcesUsed already records the AI contribution.
					continue
				}
				merged = append(merged, v)
				seen[v.Category] = true
			}
		}
	}

	return types.NewViolationReport(merged, severity, sources)
}

// analyzeWithAI performs one orchestrated moderation call. Every failure mode
// (exhaustion, parse failure, panic in a dependency) is absorbed and reported
// as ok=false so the AI branch can never poison the rule-based result.
func (a *Analyzer) analyzeWithAI(ctx context.Context, title, content string) (violations []types.Violation, severity types.Severity, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[moderation] AI analysis panicked, treating as unavailable: %v", r)
			violations, severity, ok = nil, types.SeverityNone, false
		}
	}()

	systemPrompt := prompts.MustGet("moderation.json", "system")
	userPrompt := prompts.Format(prompts.MustGet("moderation.json", "analyze-content"), map[string]string{
		"Title":   title,
		"Content": content,
	})

	result, err := a.chain.Try(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[moderation] AI analysis unavailable: %v", err)
		return nil, types.SeverityNone, false
	}

	var resp aiModerationResponse
	if err := parsing.Decode(result.Output, &resp); err != nil {
		log.Printf("[moderation] AI response from %s not parseable: %v", result.ProviderID, err)
		return nil, types.SeverityNone, false
	}

	severity = types.ParseSeverity(resp.Severity)
	for _, v := range resp.Violations {
		category, matched := types.CategoryFromFlag(v.Flag)
		if !matched {
			log.Printf("[moderation] ignoring unrecognized AI flag %q", v.Flag)
			continue
		}
		description := v.Description
		if description == "" {
			description = "Flagged by AI analysis"
		}
		violations = append(violations, types.Violation{
			Category:        category,
			Description:     description,
			Location:        "content",
			OccurrenceCount: 1,
			Source:          types.SourceAI,
		})
		severity = types.MaxSeverity(severity, types.ParseSeverity(v.Severity))
	}

	return violations, severity, true
}
