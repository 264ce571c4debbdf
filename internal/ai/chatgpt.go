package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/example/wordlearner/internal/config"
)

// ChatGPT is a Capability backed by any OpenAI-compatible chat completion
// endpoint, typically a model server running on the same machine.
type ChatGPT struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// New creates a ChatGPT capability from the configuration
func New(cfg *config.Config) *ChatGPT {
	clientConfig := openai.DefaultConfig(cfg.AIAPIKey)
	if cfg.AIBaseURL != "" {
		clientConfig.BaseURL = strings.TrimRight(cfg.AIBaseURL, "/")
	}

	return &ChatGPT{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.AIModel,
		maxTokens:   cfg.AIMaxTokens,
		temperature: cfg.AITemperature,
	}
}

// Availability asks the server for the configured model. A server that answers
// but does not know the model means it still has to be pulled.
func (c *ChatGPT) Availability(ctx context.Context) (Status, error) {
	_, err := c.client.GetModel(ctx, c.model)
	if err == nil {
		return StatusAvailable, nil
	}
	if httpStatus(err) == http.StatusNotFound {
		return StatusDownloadable, nil
	}
	return StatusUnavailable, fmt.Errorf("failed to look up model %q: %w", c.model, err)
}

func httpStatus(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

// CreateSession returns a session that prefixes every prompt with systemPrompt
func (c *ChatGPT) CreateSession(ctx context.Context, systemPrompt string) (Session, error) {
	return &chatSession{parent: c, systemPrompt: systemPrompt}, nil
}

type chatSession struct {
	parent       *ChatGPT
	systemPrompt string
}

func (s *chatSession) Prompt(ctx context.Context, text string) (string, error) {
	c := s.parent
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
