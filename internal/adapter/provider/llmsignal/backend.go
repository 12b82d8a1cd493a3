package llmsignal

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// completion is one structured-output request to a model backend.
type completion struct {
	System    string
	Prompt    string
	Schema    *Schema
	MaxTokens int
}

// backend sends a completion to a model and returns its raw text output.
type backend interface {
	Complete(ctx context.Context, req completion) (string, error)
	Name() string
}

// --- Anthropic ---

type anthropicBackend struct {
	client anthropic.Client
	model  string
}

func newAnthropicBackend(apiKey, model, baseURL string) *anthropicBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = "claude-haiku-4-5"
	}
	return &anthropicBackend{client: anthropic.NewClient(opts...), model: model}
}

func (b *anthropicBackend) Name() string { return "anthropic" }

func (b *anthropicBackend) Complete(ctx context.Context, req completion) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := b.client.Messages.New(ctx, params)
	if err != nil {
		return "", mapAnthropicError(err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", &ErrInvalidResponse{Err: fmt.Errorf("no text content in Anthropic response")}
}

func mapAnthropicError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// --- OpenAI (and OpenAI-compatible endpoints via BaseURL) ---

type openaiBackend struct {
	client *openai.Client
	model  string
}

func newOpenAIBackend(apiKey, model, baseURL string) *openaiBackend {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &openaiBackend{client: openai.NewClientWithConfig(cfg), model: model}
}

func (b *openaiBackend) Name() string { return "openai" }

func (b *openaiBackend) Complete(ctx context.Context, req completion) (string, error) {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:               b.model,
		Messages:            messages,
		MaxCompletionTokens: req.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := b.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &ErrInvalidResponse{Err: fmt.Errorf("no choices in OpenAI response")}
	}
	return resp.Choices[0].Message.Content, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// --- Gemini ---

type geminiBackend struct {
	client *genai.Client
	model  string
}

func newGeminiBackend(ctx context.Context, apiKey, model string) (*geminiBackend, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llmsignal: create gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &geminiBackend{client: client, model: model}, nil
}

func (b *geminiBackend) Name() string { return "gemini" }

func (b *geminiBackend) Complete(ctx context.Context, req completion) (string, error) {
	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens:  int32(req.MaxTokens),
		ResponseMIMEType: "application/json",
	}
	if req.System != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}

	contents := []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: req.Prompt}}}}

	result, err := b.client.Models.GenerateContent(ctx, b.model, contents, cfg)
	if err != nil {
		return "", mapGeminiError(err)
	}
	return result.Text(), nil
}

func mapGeminiError(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}
