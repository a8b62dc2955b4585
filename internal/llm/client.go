// ABOUTME: OpenAI-compatible chat client used for answer generation
// ABOUTME: Works against OpenAI or any compatible endpoint (Ollama, vLLM) via base URL
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultChatModel is the default model for chat completions
const DefaultChatModel = "gpt-4o-mini"

var (
	// ErrModelUnavailable indicates the endpoint rejected or could not serve the model
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrEmptyCompletion indicates the endpoint returned no choices
	ErrEmptyCompletion = errors.New("no completion choices returned")
)

// ClientConfig holds configuration for the chat client
type ClientConfig struct {
	APIKey    string
	BaseURL   string
	ChatModel string
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	chatModel := os.Getenv("DOCAGENT_CHAT_MODEL")
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &ClientConfig{
		APIKey:    apiKey,
		BaseURL:   os.Getenv("DOCAGENT_LLM_BASE_URL"),
		ChatModel: chatModel,
	}
}

// Client wraps an OpenAI-compatible chat completion API
type Client struct {
	client    *openai.Client
	chatModel string
}

// NewClient creates a chat client with the given API key using default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a chat client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" && config.BaseURL == "" {
		return nil, fmt.Errorf("API key is required when no custom base URL is set")
	}

	cfg := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(config.BaseURL, "/")
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &Client{
		client:    openai.NewClientWithConfig(cfg),
		chatModel: chatModel,
	}, nil
}

// ChatModel returns the configured default model identifier
func (c *Client) ChatModel() string {
	return c.chatModel
}

// Generate runs a single chat completion for the assembled prompt. No retries:
// the caller decides whether a failed generation is worth repeating, since a
// retry here would double-charge slow local models.
func (c *Client) Generate(ctx context.Context, prompt, modelID string) (string, error) {
	if modelID == "" {
		modelID = c.chatModel
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelID,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && (apiErr.HTTPStatusCode == 404 || apiErr.HTTPStatusCode == 503) {
			return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
