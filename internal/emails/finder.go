package emails

import (
	"context"

	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/domains"
)

// Finder produces ranked candidate email addresses for a person at a
// company. When a pattern predictor is configured its prediction is tried
// first; failures fall back to the static pattern order.
type Finder struct {
	predictor core.PatternPredictor
	logger    *zap.Logger
}

// NewFinder creates a new Finder. predictor may be nil.
func NewFinder(predictor core.PatternPredictor, logger *zap.Logger) *Finder {
	return &Finder{
		predictor: predictor,
		logger:    logger,
	}
}

// PossibleEmails returns deduplicated candidate addresses for the person,
// crossing every candidate company domain with every pattern.
func (f *Finder) PossibleEmails(ctx context.Context, first, last, company string) []string {
	candidateDomains := domains.Candidates(company)

	patterns := Patterns
	if f.predictor != nil {
		if predicted, err := f.predictor.PredictPattern(ctx, company); err != nil {
			f.logger.Debug("Email pattern prediction failed, using static order",
				zap.String("company", company),
				zap.Error(err))
		} else if predicted != "" {
			reordered := []string{predicted}
			for _, p := range Patterns {
				if p != predicted {
					reordered = append(reordered, p)
				}
			}
			patterns = reordered
		}
	}

	seen := make(map[string]bool)
	var result []string
	for _, domain := range candidateDomains {
		for _, pattern := range patterns {
			email := Render(pattern, first, last, domain)
			if email == "" || !IsValidFormat(email) {
				continue
			}
			if !seen[email] {
				seen[email] = true
				result = append(result, email)
			}
		}
	}
	return result
}
