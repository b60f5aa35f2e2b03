package types

// BuiltinProvider is the provider ID reported when a result came from the
// deterministic fallback generator rather than an external backend.
const BuiltinProvider = "builtin"

// Paragraph is a single generated paragraph with its structural role.
type Paragraph struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Type string `json:"type"` // intro, body, conclusion
}

// ParagraphsResult is the outcome of a paragraph-suggestion call.
type ParagraphsResult struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
	Provider   string      `json:"provider,omitempty"`
}

// KeywordsResult carries SEO keywords and metadata suggestions.
type KeywordsResult struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message,omitempty"`
	Keywords        []string `json:"keywords"`
	Tags            []string `json:"tags"`
	SEOTitle        string   `json:"seo_title"`
	MetaDescription string   `json:"meta_description"`
	Provider        string   `json:"provider,omitempty"`
}

// GrammarIssue is a single grammar or spelling finding.
type GrammarIssue struct {
	Text       string `json:"text"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion"`
}

// GrammarResult is the outcome of a grammar check.
type GrammarResult struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message,omitempty"`
	Errors   []GrammarIssue `json:"errors"`
	Summary  string         `json:"summary"`
	Provider string         `json:"provider,omitempty"`
}

// ImproveResult carries a rewritten version of the content.
type ImproveResult struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message,omitempty"`
	ImprovedContent string   `json:"improved_content"`
	ChangesMade     []string `json:"changes_made"`
	Provider        string   `json:"provider,omitempty"`
}

// TopicsResult carries topic ideas for a category.
type TopicsResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message,omitempty"`
	Topics   []string `json:"topics"`
	Provider string   `json:"provider,omitempty"`
}

// ChatResult is a single assistant reply.
type ChatResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Reply    string `json:"reply"`
	Provider string `json:"provider,omitempty"`
}

// SpamResult is a spam verdict with supporting indicators.
type SpamResult struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	IsSpam     bool     `json:"is_spam"`
	Confidence int      `json:"confidence"` // 0-100
	Indicators []string `json:"indicators"`
	Provider   string   `json:"provider,omitempty"`
}

// ExcerptResult carries a bounded excerpt of the content.
type ExcerptResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Excerpt  string `json:"excerpt"`
	Provider string `json:"provider,omitempty"`
}
