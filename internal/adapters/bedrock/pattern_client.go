package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/emails"
)

// PatternClient is an implementation of the PatternPredictor interface
// using Amazon Bedrock
type PatternClient struct {
	client       *bedrockruntime.Client
	modelID      string
	maxTokens    int
	temperature  float32
	topP         float32
	logger       *zap.Logger
	promptFormat string
}

// NewPatternClient creates a new Bedrock pattern predictor
func NewPatternClient(
	client *bedrockruntime.Client,
	modelID string,
	maxTokens int,
	temperature float32,
	topP float32,
	logger *zap.Logger,
) *PatternClient {
	return &PatternClient{
		client:      client,
		modelID:     modelID,
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
	prompt := fmt.Sprintf(c.promptFormat, company)

	var payload []byte
	var err error
	if c.isAnthropicModel() {
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":               prompt,
			"max_tokens_to_sample": c.maxTokens,
			"temperature":          c.temperature,
			"top_p":                c.topP,
		})
	} else {
		payload, err = json.Marshal(map[string]interface{}{
			"prompt":      prompt,
			"max_tokens":  c.maxTokens,
			"temperature": c.temperature,
			"top_p":       c.topP,
		})
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     &c.modelID,
		Body:        payload,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	var answer string
	if c.isAnthropicModel() {
		var claudeResp struct {
			Completion string `json:"completion"`
		}
		if err := json.Unmarshal(resp.Body, &claudeResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal Claude response: %w", err)
		}
		answer = claudeResp.Completion
	} else {
		var genericResp struct {
			Output   string `json:"output"`
			Text     string `json:"text"`
			Response string `json:"response"`
		}
		if err := json.Unmarshal(resp.Body, &genericResp); err != nil {
			return "", fmt.Errorf("failed to unmarshal model response: %w", err)
		}
		switch {
		case genericResp.Output != "":
			answer = genericResp.Output
		case genericResp.Text != "":
			answer = genericResp.Text
		case genericResp.Response != "":
			answer = genericResp.Response
		default:
			answer = string(resp.Body)
		}
	}

	pattern := emails.MapAnswer(answer)
	if pattern == "" {
		c.logger.Debug("Model answer did not match a known format",
			zap.String("company", company),
			zap.String("answer", answer))
		return "", fmt.Errorf("unrecognized format answer: %q", answer)
	}
	return pattern, nil
}

// isAnthropicModel checks if the model is an Anthropic Claude model
func (c *PatternClient) isAnthropicModel() bool {
	return strings.HasPrefix(c.modelID, "anthropic.claude")
}
