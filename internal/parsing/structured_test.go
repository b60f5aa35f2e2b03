package parsing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructured_Strategies(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "direct JSON",
			input: `{"reply": "hello"}`,
		},
		{
			name:  "json code fence",
			input: "```json\n{\"reply\": \"hello\"}\n```",
		},
		{
			name:  "generic code fence",
			input: "```\n{\"reply\": \"hello\"}\n```",
		},
		{
			name:  "prose around the object",
			input: "Sure, here is the JSON you asked for:\n{\"reply\": \"hello\"}\nLet me know if you need more.",
		},
		{
			name:  "braces inside string literals",
			input: `before {"reply": "a {nested} value with \"quotes\""} after`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseStructured(tt.input)
			require.NoError(t, err)
			assert.NotEmpty(t, result["reply"])
		})
	}
}

func TestParseStructured_Failures(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "   \n\t  "},
		{"plain prose", "I could not produce the requested output."},
		{"unbalanced braces", `{"reply": "never closed`},
		{"fence without JSON", "```\nnot json at all\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStructured(tt.input)
			require.Error(t, err)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr))
		})
	}
}

func TestDecode_ShapeMismatch(t *testing.T) {
	var target struct {
		Reply string `json:"reply"`
	}

	// Valid JSON whose field type conflicts with the target shape.
	err := Decode(`{"reply": 42}`, &target)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.NotNil(t, parseErr.Unwrap())
}

func TestDecode_TypedTarget(t *testing.T) {
	var target struct {
		Topics []string `json:"topics"`
	}

	input := "```json\n{\"topics\": [\"a\", \"b\", \"c\"]}\n```"
	require.NoError(t, Decode(input, &target))
	assert.Equal(t, []string{"a", "b", "c"}, target.Topics)
}

func TestExtract_ReturnsVerbatimSnippet(t *testing.T) {
	snippet, err := Extract(`noise {"is_spam": true, "confidence": 80} noise`)
	require.NoError(t, err)
	assert.Equal(t, `{"is_spam": true, "confidence": 80}`, snippet)
}

func TestExtract_FenceLanguageIdentifierSkipped(t *testing.T) {
	snippet, err := Extract("```javascript\n{\"reply\": \"ok\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"reply": "ok"}`, snippet)
}

func TestExtract_PrefersWholeReply(t *testing.T) {
	// When the whole reply is valid JSON, nothing is stripped.
	input := `{"outer": {"inner": "value"}}`
	snippet, err := Extract(input)
	require.NoError(t, err)
	assert.Equal(t, input, snippet)
}
