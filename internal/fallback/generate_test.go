package fallback

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

func TestParagraphs_Structure(t *testing.T) {
	result := Paragraphs("Getting Started with Docker", "technology")

	require.True(t, result.Success)
	assert.Equal(t, types.BuiltinProvider, result.Provider)
	require.Len(t, result.Paragraphs, 3)

	assert.Equal(t, "intro", result.Paragraphs[0].Type)
	assert.Equal(t, "body", result.Paragraphs[1].Type)
	assert.Equal(t, "conclusion", result.Paragraphs[2].Type)

	seen := map[string]bool{}
	for _, p := range result.Paragraphs {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Text)
		assert.NotContains(t, p.Text, "{topic}")
		assert.False(t, seen[p.ID], "paragraph IDs must be unique")
		seen[p.ID] = true
	}
}

func TestParagraphs_TopicEmbedded(t *testing.T) {
	result := Paragraphs("Getting Started with Docker", "technology")

	for _, p := range result.Paragraphs {
		assert.Contains(t, strings.ToLower(p.Text), "getting started docker")
	}
}

func TestParagraphs_UnknownCategoryFallsBackToGeneral(t *testing.T) {
	result := Paragraphs("My travels in Patagonia", "travel-diary")

	require.True(t, result.Success)
	require.Len(t, result.Paragraphs, 3)
	for _, p := range result.Paragraphs {
		assert.NotEmpty(t, p.Text)
	}
}

func TestKeywords_FrequencyAndDeterminism(t *testing.T) {
	content := "Kubernetes orchestrates containers. Kubernetes schedules containers across nodes. Containers are portable."

	first := Keywords("Kubernetes basics", content, "technology")
	require.True(t, first.Success)
	assert.Equal(t, types.BuiltinProvider, first.Provider)
	require.NotEmpty(t, first.Keywords)

	// Highest-frequency tokens lead.
	assert.Equal(t, "containers", first.Keywords[0])
	assert.Equal(t, "kubernetes", first.Keywords[1])

	second := Keywords("Kubernetes basics", content, "technology")
	assert.Equal(t, first.Keywords, second.Keywords)
	assert.Equal(t, first.Tags, second.Tags)
}

func TestKeywords_TagsLeadWithCategory(t *testing.T) {
	result := Keywords("Simple gardening tips", "Gardening rewards patience. Gardening also rewards planning.", "Lifestyle")

	require.NotEmpty(t, result.Tags)
	assert.Equal(t, "lifestyle", result.Tags[0])
	assert.LessOrEqual(t, len(result.Tags), maxTags)
}

func TestKeywords_SEOTitleBounded(t *testing.T) {
	longTitle := strings.Repeat("a very long title ", 10)
	result := Keywords(longTitle, "Some content about titles.", "")

	assert.LessOrEqual(t, len(result.SEOTitle), seoTitleLimit)
	assert.True(t, strings.HasSuffix(result.SEOTitle, "..."))
}

func TestKeywords_MetaDescriptionBounded(t *testing.T) {
	content := strings.Repeat("This sentence pads the article body with useful words. ", 20)
	result := Keywords("Padding", content, "")

	assert.NotEmpty(t, result.MetaDescription)
	assert.LessOrEqual(t, len(result.MetaDescription), metaDescLimit)
}

func TestTopicIdeas_KnownAndUnknownCategory(t *testing.T) {
	tech := TopicIdeas("technology")
	require.True(t, tech.Success)
	assert.Equal(t, types.BuiltinProvider, tech.Provider)
	assert.Len(t, tech.Topics, 5)

	unknown := TopicIdeas("underwater-basketweaving")
	assert.Len(t, unknown.Topics, 5)
}

func TestTopicIdeas_ReturnsCopy(t *testing.T) {
	first := TopicIdeas("science")
	first.Topics[0] = "mutated"

	second := TopicIdeas("science")
	assert.NotEqual(t, "mutated", second.Topics[0])
}

func TestImprove_Substitutions(t *testing.T) {
	result := Improve("We did this due to the fact that it was needed. In order to win, utilize every advantage.")

	require.True(t, result.Success)
	assert.Equal(t, types.BuiltinProvider, result.Provider)
	assert.Contains(t, result.ImprovedContent, "because it was needed")
	assert.Contains(t, result.ImprovedContent, "to win")
	assert.Contains(t, result.ImprovedContent, "use every advantage")
	assert.NotEmpty(t, result.ChangesMade)
}

func TestImprove_CaseInsensitive(t *testing.T) {
	result := Improve("Due To The Fact That it rained, we stayed in.")

	assert.Contains(t, result.ImprovedContent, "because it rained")
}

func TestImprove_FillerRemovalTidiesSpacing(t *testing.T) {
	result := Improve("This is basically a test.")

	assert.Equal(t, "This is a test.", result.ImprovedContent)
}

func TestImprove_CleanContentReportsNoChanges(t *testing.T) {
	content := "This text is already concise."
	result := Improve(content)

	require.True(t, result.Success)
	assert.Equal(t, content, result.ImprovedContent)
	require.Len(t, result.ChangesMade, 1)
	assert.Equal(t, "No common wording issues found", result.ChangesMade[0])
}

func TestImprove_PreservesLineStructure(t *testing.T) {
	content := "First paragraph here.\n\nSecond paragraph in order to test newlines."
	result := Improve(content)

	assert.Contains(t, result.ImprovedContent, "\n\n")
	assert.Contains(t, result.ImprovedContent, "to test newlines")
}

func TestImprove_MultibyteCasePairsPreserved(t *testing.T) {
	// İ (U+0130) and ẞ (U+1E9E) change byte length under case mapping; the
	// substitution must never splice mid-rune around them.
	result := Improve("İİİİİİ in order to talk")

	require.True(t, result.Success)
	assert.True(t, utf8.ValidString(result.ImprovedContent))
	assert.Equal(t, "İİİİİİ to talk", result.ImprovedContent)

	result = Improve("STRAẞE utilize STRAẞE")
	assert.True(t, utf8.ValidString(result.ImprovedContent))
	assert.Contains(t, result.ImprovedContent, "STRAẞE use STRAẞE")
}

func TestTruncate_RuneBoundary(t *testing.T) {
	// Cutting must land on a rune boundary even when the limit falls inside
	// a multibyte character.
	out := truncate(strings.Repeat("é", 40), 22)

	assert.LessOrEqual(t, len(out), 22)
	assert.True(t, utf8.ValidString(out))
	assert.True(t, strings.HasSuffix(out, "..."))
}

func FuzzImprove(f *testing.F) {
	f.Add("This is basically a test.")
	f.Add("İİİİİİ in order to")
	f.Add("utilize UTILIZE utilize")
	f.Add("STRAẞE alot straße")
	f.Add("")

	f.Fuzz(func(t *testing.T, content string) {
		result := Improve(content)
		if !result.Success {
			t.Fatalf("Improve must always succeed, got failure for %q", content)
		}
		if utf8.ValidString(content) && !utf8.ValidString(result.ImprovedContent) {
			t.Errorf("Improve produced invalid UTF-8 from valid input %q", content)
		}
	})
}
