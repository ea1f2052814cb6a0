package core

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrInvalidCompany is returned when a resolution is requested without a
// company name. It is the only caller error the resolver produces.
var ErrInvalidCompany = errors.New("company name is required")

// ResolverService coordinates contact resolution: cache first, then live
// providers, then synthesis. It never fails just because a provider is
// down or unconfigured.
type ResolverService struct {
	cache               ContactCache
	companyInfo         CompanyInfoClient
	people              PeopleSearchClient
	fallback            FallbackGenerator
	logger              *zap.Logger
	defaultLimit        int
	minCachedRecruiters int
	minCachedEmployees  int

	persistWG sync.WaitGroup
}

// NewResolverService creates a new resolver service
func NewResolverService(
	cache ContactCache,
	companyInfo CompanyInfoClient,
	people PeopleSearchClient,
	fallback FallbackGenerator,
	logger *zap.Logger,
	defaultLimit int,
	minCachedRecruiters int,
	minCachedEmployees int,
) *ResolverService {
	return &ResolverService{
		cache:               cache,
		companyInfo:         companyInfo,
		people:              people,
		fallback:            fallback,
		logger:              logger,
		defaultLimit:        defaultLimit,
		minCachedRecruiters: minCachedRecruiters,
		minCachedEmployees:  minCachedEmployees,
	}
}

// ResolveContacts returns ranked outreach contacts for a company. jobTitle
// may be empty; limit <= 0 selects the configured default. The cache is
// authoritative once it holds enough contacts, live providers fill the gap
// otherwise, and synthesis is the last resort.
func (s *ResolverService) ResolveContacts(ctx context.Context, company, jobTitle string, limit int) (*Resolution, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, ErrInvalidCompany
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	cached := s.fetchCached(ctx, company)
	if len(cached.Recruiters) >= s.minCachedRecruiters && len(cached.Employees) >= s.minCachedEmployees {
		s.logger.Info("Serving contacts from cache",
			zap.String("company", company),
			zap.Int("recruiters", len(cached.Recruiters)),
			zap.Int("employees", len(cached.Employees)))
		return &Resolution{Results: cached, Source: SourceDatabase}, nil
	}

	if live := s.fetchLive(ctx, company, jobTitle, limit); !live.IsEmpty() {
		s.schedulePersist(company, live)
		return &Resolution{Results: live, Source: SourceProvider}, nil
	}

	// Partial cache beats synthetic data
	if !cached.IsEmpty() {
		s.logger.Info("Live fetch produced nothing, using partial cache",
			zap.String("company", company))
		return &Resolution{Results: cached, Source: SourceDatabase}, nil
	}

	s.logger.Info("Synthesizing contacts",
		zap.String("company", company),
		zap.String("job_title", jobTitle))
	return &Resolution{Results: s.fallback.Generate(company, jobTitle), Source: SourceFallback}, nil
}

// fetchCached treats the cache as best-effort: any error collapses to an
// empty set so the live path can still run.
func (s *ResolverService) fetchCached(ctx context.Context, company string) *ContactSet {
	cached, err := s.cache.FetchByCompany(ctx, company)
	if err != nil {
		s.logger.Warn("Contact cache unavailable", zap.String("company", company), zap.Error(err))
		return &ContactSet{}
	}
	if cached == nil {
		return &ContactSet{}
	}
	return cached
}

// fetchLive runs the provider chain. Every provider failure collapses to
// nil here; nothing past this method ever sees a provider error.
func (s *ResolverService) fetchLive(ctx context.Context, company, jobTitle string, limit int) *ContactSet {
	info, err := s.companyInfo.Lookup(ctx, company)
	if err != nil {
		s.logger.Warn("Company info lookup failed", zap.String("company", company), zap.Error(err))
		return nil
	}
	if info == nil || info.Domain == "" {
		s.logger.Debug("No company domain resolved", zap.String("company", company))
		return nil
	}

	set, err := s.people.Search(ctx, PeopleQuery{
		Company:  company,
		Domain:   info.Domain,
		JobTitle: jobTitle,
		Limit:    limit,
	})
	if err != nil {
		s.logger.Warn("People search failed",
			zap.String("company", company),
			zap.String("domain", info.Domain),
			zap.Error(err))
		return nil
	}
	return set
}

// schedulePersist writes provider results back to the cache without
// gating the response. Synthetic results never reach this path.
func (s *ResolverService) schedulePersist(company string, set *ContactSet) {
	s.persistWG.Add(1)
	go func() {
		defer s.persistWG.Done()
		if err := s.cache.Upsert(context.Background(), company, set); err != nil {
			s.logger.Error("Failed to persist contacts",
				zap.String("company", company),
				zap.Error(err))
		}
	}()
}

// WaitForPersist blocks until in-flight cache writes finish. Used on
// shutdown and in tests.
func (s *ResolverService) WaitForPersist() {
	s.persistWG.Wait()
}
