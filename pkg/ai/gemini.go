package ai

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"

	"github.com/smartmeethq/meeting-assistant-api/pkg/config"
)

// GeminiClient calls the Gemini API for text generation
type GeminiClient struct {
	apiKey       string
	model        string
	timeout      time.Duration
	maxRetryTime time.Duration
}

// NewGeminiClient creates a Gemini client using values from the provided config
func NewGeminiClient(cfg *config.LLMConfig) *GeminiClient {
	return &GeminiClient{
		apiKey:       cfg.GeminiAPIKey,
		model:        cfg.GeminiModel,
		timeout:      cfg.Timeout,
		maxRetryTime: cfg.MaxRetryTime,
	}
}

// Generate sends the prompt to Gemini and returns the model's text reply.
// Each call is bounded by the configured timeout; transient failures are
// retried with exponential backoff up to the configured max retry time.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	var reply string
	generateFn := func() error {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create gemini client: %w", err))
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("generate content: %w", err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return fmt.Errorf("empty response from gemini")
		}

		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text == "" {
			return fmt.Errorf("empty response from gemini")
		}

		reply = text
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = g.maxRetryTime

	if err := backoff.Retry(generateFn, backoff.WithContext(bo, ctx)); err != nil {
		return "", err
	}
	return reply, nil
}
