package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/config"
	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/emails"
	"github.com/mikey/referral-contacts/internal/factory"
	"github.com/mikey/referral-contacts/internal/logging"
	"github.com/mikey/referral-contacts/internal/ports"
	"github.com/mikey/referral-contacts/internal/server"
	"github.com/mikey/referral-contacts/internal/synth"
	"github.com/mikey/referral-contacts/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register shared utilities
	if err := container.Provide(utils.NewNameProcessor); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewProviderFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewPredictorFactory); err != nil {
		return nil, err
	}

	// Register contact cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.ContactCache, error) {
		return f.CreateContactCache()
	}); err != nil {
		return nil, err
	}

	// Register provider clients
	if err := container.Provide(func(f *factory.ProviderFactory) core.CompanyInfoClient {
		return f.CreateCompanyInfoClient()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ProviderFactory) core.PeopleSearchClient {
		return f.CreatePeopleSearchClient()
	}); err != nil {
		return nil, err
	}

	// Register pattern predictor (may be nil when unconfigured)
	if err := container.Provide(func(f *factory.PredictorFactory) (core.PatternPredictor, error) {
		return f.CreatePatternPredictor()
	}); err != nil {
		return nil, err
	}

	// Register fallback generator
	if err := container.Provide(func(logger *zap.Logger) core.FallbackGenerator {
		return synth.NewGenerator(logger)
	}); err != nil {
		return nil, err
	}

	// Register resolver service
	if err := container.Provide(func(
		cfg *config.Config,
		cache core.ContactCache,
		companyInfo core.CompanyInfoClient,
		people core.PeopleSearchClient,
		fallback core.FallbackGenerator,
		logger *zap.Logger,
	) *core.ResolverService {
		resolverCfg := cfg.GetResolver()
		return core.NewResolverService(
			cache,
			companyInfo,
			people,
			fallback,
			logger,
			resolverCfg.DefaultLimit,
			resolverCfg.MinCachedRecruiters,
			resolverCfg.MinCachedEmployees,
		)
	}); err != nil {
		return nil, err
	}

	// Register email finder
	if err := container.Provide(func(predictor core.PatternPredictor, logger *zap.Logger) *emails.Finder {
		return emails.NewFinder(predictor, logger)
	}); err != nil {
		return nil, err
	}

	// Register HTTP API
	if err := container.Provide(func(
		cfg *config.Config,
		resolver *core.ResolverService,
		finder *emails.Finder,
		names *utils.NameProcessor,
		logger *zap.Logger,
	) (ports.ContactAPI, error) {
		readTimeout, err := cfg.GetDuration("server.read_timeout")
		if err != nil {
			return nil, err
		}
		writeTimeout, err := cfg.GetDuration("server.write_timeout")
		if err != nil {
			return nil, err
		}
		return server.NewHTTPServer(
			resolver,
			finder,
			names,
			logger,
			cfg.GetString("server.listen_address"),
			readTimeout,
			writeTimeout,
		), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}
