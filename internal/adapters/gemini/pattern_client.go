package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/mikey/referral-contacts/internal/emails"
)

// PatternClient is an implementation of the PatternPredictor interface
// using Google Gemini
type PatternClient struct {
	client       *genai.Client
	model        *genai.GenerativeModel
	modelName    string
	logger       *zap.Logger
	promptFormat string
}

// NewPatternClient creates a new Gemini pattern predictor
func NewPatternClient(
	apiKey string,
	modelName string,
	maxTokens int,
	temperature float32,
	topP float32,
	logger *zap.Logger,
) (*PatternClient, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)
	model.SetTopP(topP)
	model.SetMaxOutputTokens(int32(maxTokens))

	return &PatternClient{
		client:    client,
		model:     model,
		modelName: modelName,
		logger:    logger,
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
	}, nil
}

// Close closes the Gemini client
func (c *PatternClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// PredictPattern asks the model which address format a company most
// likely uses
func (c *PatternClient) PredictPattern(ctx context.Context, company string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(c.promptFormat, company)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	answer := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	pattern := emails.MapAnswer(answer)
	if pattern == "" {
		c.logger.Debug("Model answer did not match a known format",
			zap.String("company", company),
			zap.String("answer", answer))
		return "", fmt.Errorf("unrecognized format answer: %q", answer)
	}
	return pattern, nil
}
