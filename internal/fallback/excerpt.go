package fallback

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

// Excerpt strips markup from the content and accumulates whole sentences up to
// maxLength. A sentence is never cut mid-way unless the very first sentence
// alone exceeds the budget, in which case it is hard-truncated with an ellipsis.
func Excerpt(content string, maxLength int) types.ExcerptResult {
	plain := collapseSpaces(stripHTML(content))

	return types.ExcerptResult{
		Success:  true,
		Excerpt:  accumulateSentences(plain, maxLength),
		Provider: types.BuiltinProvider,
	}
}

// stripHTML removes markup, returning the document text. Input that is not
// HTML passes through unchanged apart from whitespace handling.
func stripHTML(content string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	return doc.Text()
}

// accumulateSentences greedily appends whole sentences while the budget holds.
func accumulateSentences(text string, maxLength int) string {
	text = strings.TrimSpace(text)
	if text == "" || maxLength <= 0 {
		return ""
	}
	if len(text) <= maxLength {
		return text
	}

	sentences := splitSentences(text)

	var sb strings.Builder
	for _, sentence := range sentences {
		candidate := len(sentence)
		if sb.Len() > 0 {
			candidate += sb.Len() + 1
		}
		if candidate > maxLength {
			break
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(sentence)
	}

	// A single leading sentence longer than the whole budget: hard truncate.
	if sb.Len() == 0 {
		return truncate(text, maxLength)
	}

	return sb.String()
}

// splitSentences splits text on terminal punctuation, keeping the punctuation
// attached to its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i, r := range text {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Split only at end of text or before whitespace, so decimals and
		// abbreviations mid-token survive.
		next := i + 1
		if next < len(text) && text[next] != ' ' && text[next] != '\n' && text[next] != '\t' {
			continue
		}
		sentence := strings.TrimSpace(text[start:next])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = next
	}

	if tail := strings.TrimSpace(text[start:]); tail != "" {
		sentences = append(sentences, tail)
	}

	return sentences
}
