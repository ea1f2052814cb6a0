package gemini

import (
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/config"
	"github.com/mikey/referral-contacts/internal/core"
)

// Factory creates new instances of PatternClient
type Factory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewFactory creates a new factory for PatternClient instances
func NewFactory(cfg *config.Config, logger *zap.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreatePatternPredictor creates a new PatternClient
func (f *Factory) CreatePatternPredictor() (core.PatternPredictor, error) {
	geminiCfg := f.cfg.GetGemini()

	return NewPatternClient(
		geminiCfg.APIKey,
		geminiCfg.ModelName,
		geminiCfg.MaxTokens,
		geminiCfg.Temperature,
		geminiCfg.TopP,
		f.logger,
	)
}
