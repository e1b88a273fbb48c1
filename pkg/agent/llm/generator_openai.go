package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

var ErrEmptyResponse = errors.New("no choices returned")

type OpenAiCompleter struct {
	client *openai.Client
}

var _ Completer = (*OpenAiCompleter)(nil)

// NewOpenAiCompleter creates a completer for the OpenAI API. A non-empty baseUrl
// points the client at an OpenAI compatible endpoint.
func NewOpenAiCompleter(apiKey string, baseUrl string) *OpenAiCompleter {
	config := openai.DefaultConfig(apiKey)
	if baseUrl != "" {
		config.BaseURL = baseUrl
	}

	return &OpenAiCompleter{
		client: openai.NewClientWithConfig(config),
	}
}

func (c *OpenAiCompleter) Complete(ctx context.Context, messages []Message, temperature float32, model string, seed int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    toOpenAiMessages(messages),
		Temperature: temperature,
		Seed:        &seed,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

func toOpenAiMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return out
}
