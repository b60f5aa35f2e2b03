// Package assistant is the public facade of the content intelligence pipeline.
// Every operation attempts the provider chain first and falls back to the
// deterministic builtin generators, so a caller always receives a well-formed
// result: the only outward signal of degradation is the provider field.
package assistant

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Ab-xo/content-intelligence/internal/config"
	"github.com/Ab-xo/content-intelligence/internal/fallback"
	"github.com/Ab-xo/content-intelligence/internal/moderation"
	"github.com/Ab-xo/content-intelligence/internal/parsing"
	"github.com/Ab-xo/content-intelligence/internal/prompts"
	"github.com/Ab-xo/content-intelligence/internal/provider"
	"github.com/Ab-xo/content-intelligence/internal/types"
)

// Assistant exposes the content analysis and generation operations.
// Safe for concurrent use; it holds only immutable configuration.
type Assistant struct {
	chain    *provider.Chain
	analyzer *moderation.Analyzer
}

// New builds an Assistant from configuration. Providers without credentials
// stay in the chain but report themselves unavailable and are skipped.
func New(cfg *config.Config) *Assistant {
	geminiModel := cfg.GeminiModel
	if geminiModel == "" {
		geminiModel = config.DefaultGeminiModel
	}
	openaiModel := cfg.OpenAIModel
	if openaiModel == "" {
		openaiModel = config.DefaultOpenAIModel
	}

	chain := provider.NewChain(cfg.ProviderTimeout(),
		provider.NewGeminiProvider(cfg.GeminiAPIKey, geminiModel),
		provider.NewOpenAIProvider(cfg.OpenAIAPIKey, openaiModel),
	)

	return NewWithChain(chain)
}

// NewWithChain builds an Assistant over an explicit provider chain.
// Tests inject fake providers here.
func NewWithChain(chain *provider.Chain) *Assistant {
	return &Assistant{
		chain:    chain,
		analyzer: moderation.New(chain),
	}
}

// AnalyzeForViolations produces the merged rule/AI verdict for a post.
// It never fails; with useAI disabled or all providers down the report is
// rule-based only.
func (a *Assistant) AnalyzeForViolations(ctx context.Context, title, content string, useAI bool) types.ViolationReport {
	return a.analyzer.Analyze(ctx, title, content, useAI)
}

// aiParagraphsResponse mirrors the paragraphs prompt contract.
type aiParagraphsResponse struct {
	Paragraphs []struct {
		Text string `json:"text"`
		Type string `json:"type"`
	} `json:"paragraphs"`
}

// GenerateParagraphs suggests intro/body/conclusion paragraphs for a draft.
// A title shorter than 5 characters is rejected before any provider is contacted.
func (a *Assistant) GenerateParagraphs(ctx context.Context, title, category string) types.ParagraphsResult {
	req := types.ParagraphRequest{Title: title, Category: category}
	if err := req.Validate(); err != nil {
		return types.ParagraphsResult{
			Success:    false,
			Message:    "title must be at least 5 characters",
			Paragraphs: []types.Paragraph{},
		}
	}

	userPrompt := prompts.Format(prompts.MustGet("generation.json", "paragraphs"), map[string]string{
		"Title":    title,
		"Category": category,
	})

	var resp aiParagraphsResponse
	if providerID, ok := a.tryStructured(ctx, prompts.MustGet("generation.json", "paragraphs-system"), userPrompt, paragraphsSchema, &resp); ok {
		slotTypes := []string{"intro", "body", "conclusion"}
		paragraphs := make([]types.Paragraph, 0, len(resp.Paragraphs))
		for i, p := range resp.Paragraphs {
			pType := p.Type
			if pType == "" {
				if i < len(slotTypes) {
					pType = slotTypes[i]
				} else {
					pType = "body"
				}
			}
			paragraphs = append(paragraphs, types.Paragraph{
				ID:   uuid.NewString(),
				Text: p.Text,
				Type: pType,
			})
		}
		return types.ParagraphsResult{Success: true, Paragraphs: paragraphs, Provider: providerID}
	}

	return fallback.Paragraphs(title, category)
}

// aiKeywordsResponse mirrors the keywords prompt contract.
type aiKeywordsResponse struct {
	Keywords        []string `json:"keywords"`
	Tags            []string `json:"tags"`
	SEOTitle        string   `json:"seo_title"`
	MetaDescription string   `json:"meta_description"`
}

// GenerateKeywords suggests SEO keywords, tags, and metadata for a post.
func (a *Assistant) GenerateKeywords(ctx context.Context, title, content, category string) types.KeywordsResult {
	req := types.KeywordRequest{Title: title, Content: content, Category: category}
	if err := req.Validate(); err != nil {
		return types.KeywordsResult{
			Success:  false,
			Message:  "title and content are required",
			Keywords: []string{},
			Tags:     []string{},
		}
	}

	userPrompt := prompts.Format(prompts.MustGet("generation.json", "keywords"), map[string]string{
		"Title":    title,
		"Content":  content,
		"Category": category,
	})

	var resp aiKeywordsResponse
	if providerID, ok := a.tryStructured(ctx, prompts.MustGet("generation.json", "keywords-system"), userPrompt, keywordsSchema, &resp); ok {
		return types.KeywordsResult{
			Success:         true,
			Keywords:        resp.Keywords,
			Tags:            resp.Tags,
			SEOTitle:        resp.SEOTitle,
			MetaDescription: resp.MetaDescription,
			Provider:        providerID,
		}
	}

	return fallback.Keywords(title, content, category)
}

// aiGrammarResponse mirrors the grammar prompt contract.
type aiGrammarResponse struct {
	Errors []struct {
		Text       string `json:"text"`
		Error      string `json:"error"`
		Suggestion string `json:"suggestion"`
	} `json:"errors"`
	Summary string `json:"summary"`
}

// CheckGrammar reports grammar and spelling findings for the content.
func (a *Assistant) CheckGrammar(ctx context.Context, content string) types.GrammarResult {
	if content == "" {
		return types.GrammarResult{
			Success: false,
			Message: "content is required",
			Errors:  []types.GrammarIssue{},
		}
	}

	userPrompt := prompts.Format(prompts.MustGet("generation.json", "grammar"), map[string]string{
		"Content": content,
	})

	var resp aiGrammarResponse
	if providerID, ok := a.tryStructured(ctx, prompts.MustGet("generation.json", "grammar-system"), userPrompt, grammarSchema, &resp); ok {
		issues := make([]types.GrammarIssue, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			issues = append(issues, types.GrammarIssue{Text: e.Text, Error: e.Error, Suggestion: e.Suggestion})
		}
		summary := resp.Summary
		if summary == "" {
			summary = "Grammar check complete"
		}
		return types.GrammarResult{Success: true, Errors: issues, Summary: summary, Provider: providerID}
	}

	return fallback.Grammar(content)
}

// aiImproveResponse mirrors the improve prompt contract.
type aiImproveResponse struct {
	ImprovedContent string   `json:"improved_content"`
	ChangesMade     []string `json:"changes_made"`
}

// ImproveContent rewrites the content for clarity and reports the changes.
func (a *Assistant) ImproveContent(ctx context.Context, content string) types.ImproveResult {
	if content == "" {
		return types.ImproveResult{
			Success: false,
			Message: "content is required",
		}
	}

	userPrompt := prompts.Format(prompts.MustGet("generation.json", "improve"), map[string]string{
		"Content": content,
	})

	var resp aiImproveResponse
	if providerID, ok := a.tryStructured(ctx, prompts.MustGet("generation.json", "improve-system"), userPrompt, improveSchema, &resp); ok {
		return types.ImproveResult{
			Success:         true,
			ImprovedContent: resp.ImprovedContent,
			ChangesMade:     resp.ChangesMade,
			Provider:        providerID,
		}
	}

	return fallback.Improve(content)
}

// aiTopicsResponse mirrors the topics prompt contract.
type aiTopicsResponse struct {
	Topics []string `json:"topics"`
}

// GenerateTopicIdeas suggests post topics for a category.
func (a *Assistant) GenerateTopicIdeas(ctx context.Context, category string) types.TopicsResult {
	userPrompt := prompts.Format(prompts.MustGet("generation.json", "topics"), map[string]string{
		"Category": category,
	})

	var resp aiTopicsResponse
	if providerID, ok := a.tryStructured(ctx, prompts.MustGet("generation.json", "topics-system"), userPrompt, topicsSchema, &resp); ok {
		return types.TopicsResult{Success: true, Topics: resp.Topics, Provider: providerID}
	}

	return fallback.TopicIdeas(category)
}

// aiChatResponse mirrors the chat prompt contract.
type aiChatResponse struct {
	Reply string `json:"reply"`
}

// Chat produces a single assistant reply. The reply is never empty.
func (a *Assistant) Chat(ctx context.Context, message, chatContext string) types.ChatResult {
	req := types.ChatRequest{Message: message, Context: chatContext}
	if err := req.Validate(); err != nil {
		return types.ChatResult{
			Success: false,
			Message: "message is required",
		}
	}

	userPrompt := prompts.Format(prompts.MustGet("chat.json", "chat"), map[string]string{
		"Message": message,
		"Context": chatContext,
	})

	var resp aiChatResponse
	if providerID, ok := a.tryStructured(ctx, prompts.MustGet("chat.json", "chat-system"), userPrompt, chatSchema, &resp); ok {
		return types.ChatResult{Success: true, Reply: resp.Reply, Provider: providerID}
	}

	return fallback.Chat(message, chatContext)
}

// aiSpamResponse mirrors the spam prompt contract.
type aiSpamResponse struct {
	IsSpam     bool     `json:"is_spam"`
	Confidence int      `json:"confidence"`
	Indicators []string `json:"indicators"`
}

// DetectSpam produces a spam verdict with a 0-100 confidence.
func (a *Assistant) DetectSpam(ctx context.Context, content string) types.SpamResult {
	if content == "" {
		return types.SpamResult{
			Success:    false,
			Message:    "content is required",
			Indicators: []string{},
		}
	}

	userPrompt := prompts.Format(prompts.MustGet("generation.json", "spam"), map[string]string{
		"Content": content,
	})

	var resp aiSpamResponse
	if providerID, ok := a.tryStructured(ctx, prompts.MustGet("generation.json", "spam-system"), userPrompt, spamSchema, &resp); ok {
		indicators := resp.Indicators
		if indicators == nil {
			indicators = []string{}
		}
		return types.SpamResult{
			Success:    true,
			IsSpam:     resp.IsSpam,
			Confidence: resp.Confidence,
			Indicators: indicators,
			Provider:   providerID,
		}
	}

	return fallback.Spam(content)
}

// aiExcerptResponse mirrors the excerpt prompt contract.
type aiExcerptResponse struct {
	Excerpt string `json:"excerpt"`
}

// GenerateExcerpt produces a bounded, markup-free excerpt of the content.
func (a *Assistant) GenerateExcerpt(ctx context.Context, content string, maxLength int) types.ExcerptResult {
	req := types.ExcerptRequest{Content: content, MaxLength: maxLength}
	if err := req.Validate(); err != nil {
		return types.ExcerptResult{
			Success: false,
			Message: "content is required and max_length must be at least 20",
		}
	}

	userPrompt := prompts.Format(prompts.MustGet("generation.json", "excerpt"), map[string]string{
		"Content":   content,
		"MaxLength": strconv.Itoa(maxLength),
	})
	systemPrompt := prompts.Format(prompts.MustGet("generation.json", "excerpt-system"), map[string]string{
		"MaxLength": strconv.Itoa(maxLength),
	})

	var resp aiExcerptResponse
	if providerID, ok := a.tryStructured(ctx, systemPrompt, userPrompt, excerptSchema, &resp); ok {
		// An over-budget reply counts as a shape failure; never truncate it here.
		if len(resp.Excerpt) <= maxLength {
			return types.ExcerptResult{Success: true, Excerpt: resp.Excerpt, Provider: providerID}
		}
		log.Printf("[assistant] %s excerpt exceeded budget (%d > %d), using builtin", providerID, len(resp.Excerpt), maxLength)
	}

	return fallback.Excerpt(content, maxLength)
}

// tryStructured runs one orchestrated provider call and accepts the reply only
// if structured JSON can be extracted and it validates against the operation's
// schema. Every failure mode is logged and reported as ok=false so the caller
// falls through to the builtin generator.
func (a *Assistant) tryStructured(ctx context.Context, systemPrompt, userPrompt, schema string, v any) (string, bool) {
	if a.chain == nil {
		return "", false
	}

	result, err := a.chain.Try(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("[assistant] providers exhausted, using builtin: %v", err)
		return "", false
	}

	snippet, err := parsing.Extract(result.Output)
	if err != nil {
		log.Printf("[assistant] %s reply not parseable, using builtin: %v", result.ProviderID, err)
		return "", false
	}

	validation, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(snippet),
	)
	if err != nil || !validation.Valid() {
		log.Printf("[assistant] %s reply failed shape validation, using builtin", result.ProviderID)
		return "", false
	}

	if err := json.Unmarshal([]byte(snippet), v); err != nil {
		log.Printf("[assistant] %s reply not decodable, using builtin: %v", result.ProviderID, err)
		return "", false
	}

	return result.ProviderID, true
}
