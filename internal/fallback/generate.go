package fallback

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

const (
	maxKeywords      = 8
	maxTags          = 5
	seoTitleLimit    = 60
	metaDescLimit    = 155
	minKeywordLength = 4
)

// Paragraphs generates an intro/body/conclusion set from the template table.
// Always succeeds; the provider is reported as builtin.
func Paragraphs(title, category string) types.ParagraphsResult {
	topic := ExtractTopic(title)
	tpl := templatesFor(category)

	paragraphs := []types.Paragraph{
		{ID: uuid.NewString(), Text: fill(pick(tpl.intros), topic), Type: "intro"},
		{ID: uuid.NewString(), Text: fill(pick(tpl.bodies), topic), Type: "body"},
		{ID: uuid.NewString(), Text: fill(pick(tpl.conclusions), topic), Type: "conclusion"},
	}

	return types.ParagraphsResult{
		Success:    true,
		Paragraphs: paragraphs,
		Provider:   types.BuiltinProvider,
	}
}

// Keywords derives SEO keywords and metadata from token frequency in the content.
func Keywords(title, content, category string) types.KeywordsResult {
	keywords := topKeywords(title+" "+content, maxKeywords)

	tags := make([]string, 0, maxTags)
	if c := strings.ToLower(strings.TrimSpace(category)); c != "" {
		tags = append(tags, c)
	}
	for _, kw := range keywords {
		if len(tags) >= maxTags {
			break
		}
		tags = append(tags, kw)
	}

	return types.KeywordsResult{
		Success:         true,
		Keywords:        keywords,
		Tags:            tags,
		SEOTitle:        truncate(strings.TrimSpace(title), seoTitleLimit),
		MetaDescription: metaDescription(content),
		Provider:        types.BuiltinProvider,
	}
}

// TopicIdeas returns the fixed idea list for a category.
func TopicIdeas(category string) types.TopicsResult {
	ideas := topicIdeasFor(category)
	topics := make([]string, len(ideas))
	copy(topics, ideas)

	return types.TopicsResult{
		Success:  true,
		Topics:   topics,
		Provider: types.BuiltinProvider,
	}
}

// improvementTable is the fixed phrase-substitution table for content improvement.
// Ordered so longer phrases are checked before their substrings.
var improvementTable = []struct {
	from string
	to   string
}{
	{"due to the fact that", "because"},
	{"at this point in time", "now"},
	{"in order to", "to"},
	{"for the purpose of", "for"},
	{"in the event that", "if"},
	{"very unique", "unique"},
	{"irregardless", "regardless"},
	{"alot", "a lot"},
	{"utilize", "use"},
	{"basically", ""},
}

// Improve applies the fixed phrase-substitution table to the content and
// reports which substitutions fired.
func Improve(content string) types.ImproveResult {
	improved := content
	var changes []string

	for _, sub := range improvementTable {
		replaced, count := replaceAllFold(improved, sub.from, sub.to)
		if count == 0 {
			continue
		}
		improved = replaced
		if sub.to == "" {
			changes = append(changes, fmt.Sprintf("Removed filler word %q (%dx)", sub.from, count))
		} else {
			changes = append(changes, fmt.Sprintf("Replaced %q with %q (%dx)", sub.from, sub.to, count))
		}
	}

	improved = tidySpacing(improved)
	if len(changes) == 0 {
		changes = append(changes, "No common wording issues found")
	}

	return types.ImproveResult{
		Success:         true,
		ImprovedContent: improved,
		ChangesMade:     changes,
		Provider:        types.BuiltinProvider,
	}
}

// topKeywords returns the most frequent meaningful tokens in descending
// frequency order, ties broken alphabetically for determinism.
func topKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	for _, token := range strings.Fields(stripPunctuation(strings.ToLower(text))) {
		if len(token) < minKeywordLength || stopWords[token] {
			continue
		}
		counts[token]++
	}

	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})

	if len(tokens) > limit {
		tokens = tokens[:limit]
	}
	return tokens
}

// metaDescription builds a description from the leading sentences of the
// plain-text content, bounded to the meta description limit.
func metaDescription(content string) string {
	plain := collapseSpaces(stripHTML(content))
	if plain == "" {
		return ""
	}
	return accumulateSentences(plain, metaDescLimit)
}

// truncate bounds s to limit bytes, cutting at a rune boundary and appending
// an ellipsis when cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	if limit > 3 {
		cut = limit - 3
	}
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if limit <= 3 {
		return s[:cut]
	}
	return s[:cut] + "..."
}

// replaceAllFold replaces every case-insensitive occurrence of from with to,
// returning the result and the number of replacements. Matching walks s rune
// by rune, so case pairs whose byte lengths differ cannot misalign the output.
func replaceAllFold(s, from, to string) (string, int) {
	if from == "" {
		return s, 0
	}
	fromRunes := utf8.RuneCountInString(from)

	var sb strings.Builder
	count := 0
	i := 0
	for i < len(s) {
		if width, ok := foldPrefix(s[i:], from, fromRunes); ok {
			sb.WriteString(to)
			i += width
			count++
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		sb.WriteString(s[i : i+size])
		i += size
	}
	return sb.String(), count
}

// foldPrefix reports whether s begins with a case-insensitive match of from,
// returning the byte width of the matched prefix.
func foldPrefix(s, from string, fromRunes int) (int, bool) {
	width := 0
	for n := 0; n < fromRunes; n++ {
		if width >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[width:])
		width += size
	}
	if strings.EqualFold(s[:width], from) {
		return width, true
	}
	return 0, false
}

// collapseSpaces flattens all whitespace (including newlines) to single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// tidySpacing collapses doubled spaces left by substitutions while
// preserving line structure.
func tidySpacing(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.ReplaceAll(s, " .", ".")
	s = strings.ReplaceAll(s, " ,", ",")
	return strings.TrimSpace(s)
}
