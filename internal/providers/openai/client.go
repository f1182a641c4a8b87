package openai

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"gambling-buddy-service/internal/metrics"
)

const (
	sourceName         = "openai"
	defaultModel       = "gpt-4.1"
	defaultTemperature = 0.7
)

// chatCompleter is the slice of the OpenAI SDK the client depends on,
// kept narrow so tests can stub it.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config controls the chat-completion collaborator.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	Metrics     *metrics.Recorder
}

// Client submits system/user prompt pairs to the OpenAI chat-completion API
// and returns the raw generated text. No retries; a failure surfaces as
// *GenerationError.
type Client struct {
	api         chatCompleter
	model       string
	temperature float32
	metrics     *metrics.Recorder
}

// NewClient constructs an OpenAI client with the provided configuration.
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = defaultTemperature
	}
	return &Client{
		api:         openai.NewClient(cfg.APIKey),
		model:       model,
		temperature: temperature,
		metrics:     cfg.Metrics,
	}
}

// Model reports the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Generate submits one system instruction and one user prompt with a bounded
// output-token budget and returns the generated text unmodified.
func (c *Client) Generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	start := time.Now()
	content, err := c.generate(ctx, system, user, maxTokens)
	c.metrics.RecordLLMRequest(c.model, time.Since(start), err)
	return content, err
}

func (c *Client) generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: strings.TrimSpace(system)},
			{Role: openai.ChatMessageRoleUser, Content: strings.TrimSpace(user)},
		},
		MaxTokens:   maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", &GenerationError{Model: c.model, Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &GenerationError{Model: c.model}
	}
	return resp.Choices[0].Message.Content, nil
}
