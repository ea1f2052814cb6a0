package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/config"
	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/factory"
	"github.com/mikey/referral-contacts/internal/logging"
	"github.com/mikey/referral-contacts/internal/synth"
	"github.com/mikey/referral-contacts/internal/utils"
)

var (
	// Lookup flags
	company  = flag.String("company", "", "Company to resolve contacts for (required)")
	jobTitle = flag.String("title", "", "Target job title used for relevance matching")
	limit    = flag.Int("limit", 15, "Maximum contacts to request from providers")

	// Cache flags
	cacheType  = flag.String("cache", "memory", "Contact cache type (memory, sqlite, mysql)")
	sqlitePath = flag.String("sqlite-path", "./referral_contacts.db", "SQLite database path")
	mysqlDSN   = flag.String("mysql-dsn", "", "MySQL DSN")

	// Provider flags
	clearbitKey = flag.String("clearbit-api-key", "", "API key for Clearbit")
	pdlKey      = flag.String("pdl-api-key", "", "API key for People Data Labs")

	// Logging flags
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog    = flag.Bool("json-log", false, "Output logs in JSON format")
	configFile = flag.String("config", "", "Path to config file (overrides command line flags)")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var cfg *config.Config
	if *configFile != "" {
		cfg, err = config.NewFromFile(*configFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		logger.Info("Loaded configuration from file", zap.String("file", cfg.GetViper().ConfigFileUsed()))
		// The lookup target always comes from flags
		cfg.GetViper().Set("lookup.company", *company)
		cfg.GetViper().Set("lookup.job_title", *jobTitle)
		cfg.GetViper().Set("lookup.limit", *limit)
	} else {
		cfg = createConfigFromFlags()
	}

	if cfg.GetString("lookup.company") == "" {
		fmt.Println("Usage: contact-lookup -company <name> [-title <job title>]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	names := utils.NewNameProcessor(logger)

	cacheFactory := factory.NewCacheFactory(cfg, logger)
	contactCache, err := cacheFactory.CreateContactCache()
	if err != nil {
		logger.Fatal("Failed to create contact cache", zap.Error(err))
	}

	providerFactory := factory.NewProviderFactory(cfg, logger, names)
	resolverCfg := cfg.GetResolver()

	resolver := core.NewResolverService(
		contactCache,
		providerFactory.CreateCompanyInfoClient(),
		providerFactory.CreatePeopleSearchClient(),
		synth.NewGenerator(logger),
		logger,
		resolverCfg.DefaultLimit,
		resolverCfg.MinCachedRecruiters,
		resolverCfg.MinCachedEmployees,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startTime := time.Now()
	resolution, err := resolver.ResolveContacts(ctx, cfg.GetString("lookup.company"), cfg.GetString("lookup.job_title"), cfg.GetInt("lookup.limit"))
	if err != nil {
		logger.Fatal("Failed to resolve contacts", zap.Error(err))
	}
	resolver.WaitForPersist()
	duration := time.Since(startTime)

	fmt.Printf("\n=== Contacts for %s ===\n", cfg.GetString("lookup.company"))
	fmt.Printf("Source: %s\n", resolution.Source)
	fmt.Printf("Lookup time: %v\n", duration)

	fmt.Printf("\nRecruiters (%d):\n", len(resolution.Results.Recruiters))
	for _, contact := range resolution.Results.Recruiters {
		printContact(contact)
	}

	fmt.Printf("\nEmployees (%d):\n", len(resolution.Results.Employees))
	for _, contact := range resolution.Results.Employees {
		printContact(contact)
	}

	if closer, ok := contactCache.(interface{ Close() }); ok {
		closer.Close()
	}
}

func printContact(contact core.Contact) {
	fmt.Printf("  %-24s %-36s %s", contact.Name, contact.Email, contact.Position)
	if contact.RelevanceScore > 0 {
		fmt.Printf(" (relevance %d)", contact.RelevanceScore)
	}
	fmt.Println()
}

// createConfigFromFlags creates a configuration from command line flags
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()

	v.Set("lookup.company", *company)
	v.Set("lookup.job_title", *jobTitle)
	v.Set("lookup.limit", *limit)

	v.Set("cache.type", *cacheType)
	v.Set("cache.sqlite_path", *sqlitePath)
	if *mysqlDSN != "" {
		v.Set("cache.mysql_dsn", *mysqlDSN)
	}

	v.Set("clearbit.api_key", *clearbitKey)
	v.Set("pdl.api_key", *pdlKey)

	return config.NewFromViper(v)
}
