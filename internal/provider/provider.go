// Package provider defines the external backend abstraction and the ordered
// fallback orchestrator that tries each configured backend under its own timeout.
package provider

import (
	"context"
	"fmt"
	"strings"
)

// Provider is a single classification/generation backend. Implementations are
// a closed set of variants; new backends are added here, never by branching on
// provider names deeper in the pipeline.
type Provider interface {
	// ID returns the stable provider identifier reported in results.
	ID() string
	// Available reports whether the provider can be attempted at all
	// (credentials present). Checked once per orchestrator call.
	Available() bool
	// Invoke sends a system/user prompt pair and returns the raw text reply.
	Invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Result is the outcome of one successful provider attempt.
type Result struct {
	ProviderID string
	Output     string
}

// ExhaustedError reports that every candidate in the chain was skipped or failed.
type ExhaustedError struct {
	Attempted []string
}

func (e *ExhaustedError) Error() string {
	if len(e.Attempted) == 0 {
		return "all providers exhausted: none available"
	}
	return fmt.Sprintf("all providers exhausted: attempted %s", strings.Join(e.Attempted, ", "))
}
