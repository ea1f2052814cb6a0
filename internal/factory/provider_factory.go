package factory

import (
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/adapters/clearbit"
	"github.com/mikey/referral-contacts/internal/adapters/pdl"
	"github.com/mikey/referral-contacts/internal/config"
	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/utils"
)

// ProviderFactory creates the external data provider clients
type ProviderFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	names  *utils.NameProcessor
}

// NewProviderFactory creates a new provider factory
func NewProviderFactory(cfg *config.Config, logger *zap.Logger, names *utils.NameProcessor) *ProviderFactory {
	return &ProviderFactory{
		cfg:    cfg,
		logger: logger,
		names:  names,
	}
}

// CreateCompanyInfoClient creates the Clearbit company-info client
func (f *ProviderFactory) CreateCompanyInfoClient() core.CompanyInfoClient {
	clearbitCfg := f.cfg.GetClearbit()
	return clearbit.NewClient(clearbitCfg.APIKey, clearbitCfg.BaseURL, nil, f.logger)
}

// CreatePeopleSearchClient creates the People Data Labs search client
func (f *ProviderFactory) CreatePeopleSearchClient() core.PeopleSearchClient {
	pdlCfg := f.cfg.GetPDL()
	return pdl.NewClient(
		pdlCfg.APIKey,
		pdlCfg.BaseURL,
		nil,
		f.logger,
		f.names,
		pdlCfg.TargetRecruiters,
		pdlCfg.TargetEmployees,
	)
}
