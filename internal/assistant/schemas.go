package assistant

// JSON Schemas used to shape-validate parsed provider replies before trusting
// them. A reply that parses as JSON but fails its schema is treated as a miss
// and demoted to the builtin fallback.

const paragraphsSchema = `{
	"type": "object",
	"required": ["paragraphs"],
	"properties": {
		"paragraphs": {
			"type": "array",
			"minItems": 2,
			"items": {
				"type": "object",
				"required": ["text"],
				"properties": {
					"text": {"type": "string", "minLength": 1},
					"type": {"type": "string"}
				}
			}
		}
	}
}`

const keywordsSchema = `{
	"type": "object",
	"required": ["keywords"],
	"properties": {
		"keywords": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string"}
		},
		"tags": {
			"type": "array",
			"items": {"type": "string"}
		},
		"seo_title": {"type": "string"},
		"meta_description": {"type": "string"}
	}
}`

const grammarSchema = `{
	"type": "object",
	"required": ["errors"],
	"properties": {
		"errors": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["text", "error"],
				"properties": {
					"text": {"type": "string"},
					"error": {"type": "string"},
					"suggestion": {"type": "string"}
				}
			}
		},
		"summary": {"type": "string"}
	}
}`

const improveSchema = `{
	"type": "object",
	"required": ["improved_content"],
	"properties": {
		"improved_content": {"type": "string", "minLength": 1},
		"changes_made": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

const topicsSchema = `{
	"type": "object",
	"required": ["topics"],
	"properties": {
		"topics": {
			"type": "array",
			"minItems": 3,
			"items": {"type": "string", "minLength": 1}
		}
	}
}`

const chatSchema = `{
	"type": "object",
	"required": ["reply"],
	"properties": {
		"reply": {"type": "string", "minLength": 1}
	}
}`

const spamSchema = `{
	"type": "object",
	"required": ["is_spam", "confidence"],
	"properties": {
		"is_spam": {"type": "boolean"},
		"confidence": {"type": "integer", "minimum": 0, "maximum": 100},
		"indicators": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

const excerptSchema = `{
	"type": "object",
	"required": ["excerpt"],
	"properties": {
		"excerpt": {"type": "string", "minLength": 1}
	}
}`
