package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"lexibot/internal/domain"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/avast/retry-go"
)

// CompletionRequest carries one prompt to the completion service
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int64
	Temperature float64
}

// Completer is the text-completion service behind the tutor. Implementations
// return the completion text or a classified error.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Client implements Completer on the Anthropic API
type Client struct {
	client      anthropic.Client
	model       anthropic.Model
	maxAttempts uint
}

// NewClient creates a new completion client
func NewClient(apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, domain.NewError(domain.ClassServiceMisconfigured, "completion API key is not set", nil)
	}

	return &Client{
		client:      anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:       anthropic.Model("claude-sonnet-4-5-20250929"),
		maxAttempts: 3,
	}, nil
}

// Complete sends one prompt and returns the completion text. Transient
// failures (rate limits, server errors) are retried with backoff;
// configuration failures are not.
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	var text string

	err := retry.Do(
		func() error {
			var err error
			text, err = c.complete(ctx, req)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.maxAttempts),
		retry.Delay(500*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
	)

	return text, err
}

func (c *Client) complete(ctx context.Context, req CompletionRequest) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   req.MaxTokens,
		Temperature: anthropic.Float(req.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", classify(err)
	}

	var b strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			b.WriteString(block.AsText().Text)
		}
	}

	if b.Len() == 0 {
		return "", domain.NewError(domain.ClassServiceUnavailable, "empty completion response", nil)
	}

	return b.String(), nil
}

// classify maps a remote failure to the error taxonomy
func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			return domain.NewError(domain.ClassQuotaExceeded, "completion quota exceeded", err)
		case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
			return domain.NewError(domain.ClassServiceMisconfigured, "completion service rejected credentials", err)
		}
	}
	return domain.NewError(domain.ClassServiceUnavailable, "completion request failed", err)
}

// isRetryable reports whether the classified error is worth another attempt
func isRetryable(err error) bool {
	switch domain.ClassOf(err) {
	case domain.ClassQuotaExceeded, domain.ClassServiceUnavailable:
		return true
	}
	return false
}

// Disabled is a Completer for deployments without an API key. Every call
// fails as misconfigured, which the pipelines turn into local fallbacks
// where one exists.
type Disabled struct{}

// Complete implements Completer
func (Disabled) Complete(context.Context, CompletionRequest) (string, error) {
	return "", domain.NewError(domain.ClassServiceMisconfigured, "completion service is not configured", nil)
}
