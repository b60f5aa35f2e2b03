package provider

import (
	"context"
	"log"
	"time"
)

// DefaultAttemptTimeout bounds a single provider attempt when no explicit
// timeout is configured.
const DefaultAttemptTimeout = 30 * time.Second

// Chain attempts a prioritized list of providers, each under its own timeout,
// and returns the first success. Candidates run strictly in order, never
// concurrently: each backend is billed and rate-limited differently and the
// first success is authoritative.
//
// The chain holds no mutable state after construction and is safe for
// concurrent use.
type Chain struct {
	providers []Provider
	timeout   time.Duration
}

// NewChain creates a Chain over the given providers in priority order.
// A non-positive timeout falls back to DefaultAttemptTimeout.
func NewChain(timeout time.Duration, providers ...Provider) *Chain {
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	return &Chain{providers: providers, timeout: timeout}
}

// Providers returns the configured candidates in priority order.
func (c *Chain) Providers() []Provider {
	return c.providers
}

// Try walks the candidate list and returns the first successful result.
// Unavailable candidates are skipped silently; a failed or timed-out attempt
// is logged and the next candidate is tried; no retry within a candidate.
// When every candidate is exhausted, or the caller's context is done, Try
// returns an *ExhaustedError so callers can fall back deterministically.
func (c *Chain) Try(ctx context.Context, systemPrompt, userPrompt string) (*Result, error) {
	var attempted []string

	for _, p := range c.providers {
		// Respect an outer deadline: abandon remaining candidates rather than
		// exceed the caller's budget.
		if err := ctx.Err(); err != nil {
			log.Printf("[provider] outer context done, abandoning remaining candidates: %v", err)
			break
		}

		if !p.Available() {
			continue
		}

		attempted = append(attempted, p.ID())

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		output, err := p.Invoke(attemptCtx, systemPrompt, userPrompt)
		cancel()

		if err != nil {
			log.Printf("[provider] %s failed, trying next candidate: %v", p.ID(), err)
			continue
		}

		return &Result{ProviderID: p.ID(), Output: output}, nil
	}

	return nil, &ExhaustedError{Attempted: attempted}
}
