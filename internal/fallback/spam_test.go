package fallback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ab-xo/content-intelligence/internal/types"
)

func TestSpam_CleanContent(t *testing.T) {
	result := Spam("I wrote about my weekend hiking trip. The weather was lovely.")

	require.True(t, result.Success)
	assert.Equal(t, types.BuiltinProvider, result.Provider)
	assert.False(t, result.IsSpam)
	assert.Equal(t, 0, result.Confidence)
	assert.Empty(t, result.Indicators)
	assert.NotNil(t, result.Indicators)
}

func TestSpam_SingleIndicatorIsNotSpam(t *testing.T) {
	result := Spam("Check out this limited time discount at the local bakery.")

	assert.False(t, result.IsSpam)
	require.Len(t, result.Indicators, 1)
	assert.Equal(t, confidencePerHit, result.Confidence)
}

func TestSpam_MultipleIndicators(t *testing.T) {
	result := Spam("Buy now! This limited time offer is 100% free. Click here!")

	assert.True(t, result.IsSpam)
	assert.GreaterOrEqual(t, len(result.Indicators), 2)
	assert.Greater(t, result.Confidence, confidencePerHit)
}

func TestSpam_ExcessiveLinks(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString("see https://example.com/page ")
	}

	result := Spam(sb.String())
	require.Len(t, result.Indicators, 1)
	assert.Contains(t, result.Indicators[0], "excessive links")
}

func TestSpam_FewLinksAllowed(t *testing.T) {
	result := Spam("Sources: https://a.example https://b.example https://c.example")

	assert.Empty(t, result.Indicators)
}

func TestSpam_RepeatedCharacterRun(t *testing.T) {
	result := Spam("AMAZING" + strings.Repeat("!", 15) + " deal")

	require.Len(t, result.Indicators, 1)
	assert.Contains(t, result.Indicators[0], "repeated")
}

func TestSpam_ShortRepeatRunIgnored(t *testing.T) {
	result := Spam("Well...... that was unexpected")

	assert.Empty(t, result.Indicators)
}

func TestSpam_ConfidenceCeiling(t *testing.T) {
	content := "buy now click here limited time act now free money make money fast 100% free no credit check risk-free winner"

	result := Spam(content)
	assert.True(t, result.IsSpam)
	assert.Equal(t, confidenceCeiling, result.Confidence)
}

func TestSpam_Deterministic(t *testing.T) {
	content := "Buy now! Click here for free money."
	first := Spam(content)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, Spam(content))
	}
}
