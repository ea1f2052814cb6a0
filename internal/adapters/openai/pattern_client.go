package openai

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/emails"
)

// PatternClient is an implementation of the PatternPredictor interface
// using OpenAI
type PatternClient struct {
	client       *openai.Client
	modelName    string
	maxTokens    int
	temperature  float32
	topP         float32
	logger       *zap.Logger
	promptFormat string
}

// NewPatternClient creates a new OpenAI pattern predictor
func NewPatternClient(
	client *openai.Client,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	logger *zap.Logger,
) *PatternClient {
	return &PatternClient{
		client:      client,
		modelName:   modelName,
		maxTokens:   maxTokens,
		temperature: temperature,
		topP:        topP,
		logger:      logger,
		promptFormat: `Based on common email patterns for tech companies, what is the most likely
email format for %s? Consider company size, industry trends,
and common practices. Return only the most probable pattern from this list:

- first@domain.com
- first.last@domain.com
- firstlast@domain.com
- first_last@domain.com
- first.l@domain.com
- flast@domain.com
- f.last@domain.com
- last@domain.com

Just return the single most likely pattern, nothing else.`,
	}
}

// PredictPattern asks the model which address format a company most
// likely uses
func (c *PatternClient) PredictPattern(ctx context.Context, company string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You predict the most likely email format used by a company.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(c.promptFormat, company),
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
		TopP:        c.topP,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion with OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	answer := resp.Choices[0].Message.Content
	pattern := emails.MapAnswer(answer)
	if pattern == "" {
		c.logger.Debug("Model answer did not match a known format",
			zap.String("company", company),
			zap.String("answer", answer))
		return "", fmt.Errorf("unrecognized format answer: %q", answer)
	}
	return pattern, nil
}
