package provider

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIProvider invokes the OpenAI chat completions API.
type OpenAIProvider struct {
	apiKey string
	model  string
	client openai.Client
}

// NewOpenAIProvider creates an OpenAI-backed provider. An empty apiKey
// produces a provider that reports itself unavailable.
func NewOpenAIProvider(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}
}

// ID returns the provider identifier.
func (p *OpenAIProvider) ID() string { return "openai" }

// Available reports whether an API key is configured.
func (p *OpenAIProvider) Available() bool { return p.apiKey != "" }

// Invoke sends the prompt pair as system+user chat messages and returns the
// assistant reply text.
func (p *OpenAIProvider) Invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	params := openai.ChatCompletionNewParams{
		Model:       p.model,
		Messages:    messages,
		Temperature: openai.Float(0.1),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
