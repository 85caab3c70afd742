// Package llm builds review prompts and performs the single blocking call to
// the Anthropic Messages API that produces the review.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/schema"

	"github.com/sevigo/critic/internal/config"
	"github.com/sevigo/critic/internal/core"
)

// Client sends review requests to an Anthropic model. One attempt per
// invocation; no retries, no backoff, no timeout beyond the transport's
// default.
type Client struct {
	model     llms.Model
	modelName string
	maxTokens int
	logger    *slog.Logger
}

// NewClient builds the Anthropic-backed client from validated configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	model, err := anthropic.New(
		anthropic.WithToken(cfg.AnthropicAPIKey),
		anthropic.WithModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Anthropic client: %w", err)
	}
	return NewClientWithModel(model, cfg.Model, cfg.MaxTokens, logger), nil
}

// NewClientWithModel wires a Client around an existing model. Tests use this
// to substitute a fake for the remote service.
func NewClientWithModel(model llms.Model, modelName string, maxTokens int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{model: model, modelName: modelName, maxTokens: maxTokens, logger: logger}
}

// Review performs exactly one generation call and returns the first content
// choice's text. Failures are logged here with their kind and message; the
// caller only sees that no review was produced, not why.
func (c *Client) Review(ctx context.Context, req core.ReviewRequest) (string, error) {
	resp, err := c.model.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(schema.ChatMessageTypeSystem, req.System),
			llms.TextParts(schema.ChatMessageTypeHuman, req.User),
		},
		llms.WithMaxTokens(c.maxTokens),
	)
	if err != nil {
		c.logger.Error("anthropic API call failed",
			"model", c.modelName,
			"kind", fmt.Sprintf("%T", err),
			"error", err,
		)
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		c.logger.Error("anthropic returned an empty response", "model", c.modelName)
		return "", errors.New("anthropic returned an empty response")
	}

	return resp.Choices[0].Content, nil
}
