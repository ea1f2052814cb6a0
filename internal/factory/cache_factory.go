package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/adapters/cache"
	"github.com/mikey/referral-contacts/internal/config"
	"github.com/mikey/referral-contacts/internal/core"
)

// CacheFactory creates contact caches based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateContactCache creates a contact cache based on the configuration
func (f *CacheFactory) CreateContactCache() (core.ContactCache, error) {
	cacheType := f.cfg.GetString("cache.type")
	maxRecruiters := f.cfg.GetInt("cache.max_recruiters")
	maxEmployees := f.cfg.GetInt("cache.max_employees")

	switch cacheType {
	case "memory":
		return cache.NewMemoryCache(f.logger, maxRecruiters, maxEmployees), nil
	case "sqlite":
		sqlitePath := f.cfg.GetString("cache.sqlite_path")
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(sqlitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return cache.NewSQLiteCache(sqlitePath, f.logger, maxRecruiters, maxEmployees)
	case "mysql":
		mysqlDSN := f.cfg.GetString("cache.mysql_dsn")
		return cache.NewMySQLCache(mysqlDSN, f.logger, maxRecruiters, maxEmployees)
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cacheType)
	}
}
