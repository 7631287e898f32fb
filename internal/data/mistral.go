package data

import (
	"context"
	"fmt"
	"time"

	"github.com/cryptopulse/telegram-sentiment-bridge/internal/biz/repo"

	openai "github.com/sashabaranov/go-openai"
)

const (
	mistralBaseURL = "https://api.mistral.ai/v1"

	defaultMistralModel   = "mistral-large-latest"
	defaultMistralTimeout = 60 * time.Second
)

// mistralRepo implements the classifier repository against Mistral's
// OpenAI-compatible chat completion endpoint.
type mistralRepo struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewMistralRepo creates a Mistral classifier repository. The timeout bounds
// every completion call so a hanging classifier cannot pin a request
// goroutine indefinitely.
func NewMistralRepo(apiKey, model string, timeout time.Duration) repo.ClassifierRepo {
	if model == "" {
		model = defaultMistralModel
	}
	if timeout <= 0 {
		timeout = defaultMistralTimeout
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = mistralBaseURL

	return &mistralRepo{
		client:  openai.NewClientWithConfig(config),
		model:   model,
		timeout: timeout,
	}
}

// Complete sends a single user-turn prompt and returns the raw reply text.
func (r *mistralRepo) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return resp.Choices[0].Message.Content, nil
}
