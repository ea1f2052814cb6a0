package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/adapters/bedrock"
	"github.com/mikey/referral-contacts/internal/adapters/gemini"
	"github.com/mikey/referral-contacts/internal/adapters/openai"
	"github.com/mikey/referral-contacts/internal/config"
	"github.com/mikey/referral-contacts/internal/core"
)

// PredictorFactory creates email-pattern predictors
type PredictorFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewPredictorFactory creates a new predictor factory
func NewPredictorFactory(cfg *config.Config, logger *zap.Logger) *PredictorFactory {
	return &PredictorFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreatePatternPredictor creates a pattern predictor based on the
// configuration. An empty provider is valid and yields nil: email
// guessing then uses the static pattern order only.
func (f *PredictorFactory) CreatePatternPredictor() (core.PatternPredictor, error) {
	predictorCfg := f.cfg.GetPredictor()

	switch predictorCfg.Provider {
	case "":
		return nil, nil
	case "openai":
		factory := openai.NewFactory(f.cfg, f.logger)
		return factory.CreatePatternPredictor()
	case "gemini":
		factory := gemini.NewFactory(f.cfg, f.logger)
		return factory.CreatePatternPredictor()
	case "bedrock":
		factory := bedrock.NewFactory(f.cfg, f.logger)
		return factory.CreatePatternPredictor()
	default:
		return nil, fmt.Errorf("unsupported predictor provider: %s", predictorCfg.Provider)
	}
}
