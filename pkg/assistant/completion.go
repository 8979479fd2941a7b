package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"slate-seo/pkg/httpclient"
)

// DefaultModel is the chat model used when none is configured.
const DefaultModel = openai.GPT4oMini

var errEmptyCompletion = errors.New("completion returned no choices")

// Completer sends one system/user message pair to a language model and returns its answer.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// OpenAIConfig configures OpenAICompleter.
type OpenAIConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the API endpoint, e.g. for a proxy or a test server.
	BaseURL string
	Timeout time.Duration
}

// OpenAICompleter is a Completer backed by the OpenAI chat completions API.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

func NewOpenAICompleter(cfg OpenAIConfig) *OpenAICompleter {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = httpclient.NewClient(httpclient.APIClient, cfg.Timeout)

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAICompleter{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

// Complete sends a single non-streaming chat completion request.
func (c *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
