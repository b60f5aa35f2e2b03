// Package parsing extracts structured JSON from raw LLM replies.
// Backends are instructed to respond with only JSON but are not trusted to
// comply, so the parser is deliberately permissive: it tries a direct parse,
// then fenced code blocks, then brace matching, before giving up.
package parsing

import (
	"encoding/json"
	"strings"
)

// ParseStructured extracts a JSON object from a raw backend reply.
// Returns a *ParseError when no strategy yields valid JSON; never panics.
func ParseStructured(raw string) (map[string]any, error) {
	var result map[string]any
	if err := Decode(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Decode extracts JSON from a raw backend reply into v.
func Decode(raw string, v any) error {
	snippet, err := Extract(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(snippet), v); err != nil {
		return &ParseError{Message: "extracted JSON does not match expected shape", Cause: err}
	}
	return nil
}

// Extract locates the JSON payload inside a raw backend reply and returns it
// verbatim. Strategies, in order: direct parse, fenced code block interior,
// first balanced top-level {...} span.
func Extract(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &ParseError{Message: "empty response"}
	}

	// Strategy 1: the whole reply is JSON.
	if json.Valid([]byte(trimmed)) {
		return trimmed, nil
	}

	// Strategy 2: JSON wrapped in a markdown code fence.
	if inner := extractFencedBlock(trimmed); inner != "" && json.Valid([]byte(inner)) {
		return inner, nil
	}

	// Strategy 3: first balanced object span inside surrounding prose.
	if span := extractJSONObject(trimmed); span != "" && json.Valid([]byte(span)) {
		return span, nil
	}

	return "", &ParseError{Message: "no valid JSON found in response"}
}

// extractFencedBlock returns the interior of the first ``` fenced block,
// skipping a language identifier line if present. Empty string if no fence.
func extractFencedBlock(text string) string {
	start := strings.Index(text, "```")
	if start < 0 {
		return ""
	}
	rest := text[start+3:]
	end := strings.Index(rest, "```")
	if end < 0 {
		return ""
	}
	block := rest[:end]

	// Skip a language identifier on the first line (```json, ```javascript).
	if idx := strings.Index(block, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(block[:idx])
		if firstLine != "" && len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
			block = block[idx+1:]
		}
	}

	return strings.TrimSpace(block)
}

// extractJSONObject returns the first balanced top-level {...} span in text,
// tracking string literals and escapes so braces inside strings do not count.
// Empty string if no balanced object is found.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}

	return ""
}
