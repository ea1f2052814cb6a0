package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/roles"
)

// entry is a stored contact row keyed by (company, email)
type entry struct {
	id         string
	fullName   string
	email      string
	company    string
	jobTitle   string
	profileURL string
	updatedAt  time.Time
}

// MemoryCache is an in-memory implementation of the ContactCache interface
type MemoryCache struct {
	// lowercase company -> email -> entry
	companies     map[string]map[string]*entry
	mu            sync.RWMutex
	logger        *zap.Logger
	maxRecruiters int
	maxEmployees  int
}

// NewMemoryCache creates a new in-memory contact cache
func NewMemoryCache(logger *zap.Logger, maxRecruiters, maxEmployees int) *MemoryCache {
	return &MemoryCache{
		companies:     make(map[string]map[string]*entry),
		logger:        logger,
		maxRecruiters: maxRecruiters,
		maxEmployees:  maxEmployees,
	}
}

// FetchByCompany retrieves cached contacts whose stored company name
// contains the query, case-insensitively, partitioned by recruiting title
func (c *MemoryCache) FetchByCompany(ctx context.Context, company string) (*core.ContactSet, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(company))
	set := &core.ContactSet{}

	for storedCompany, byEmail := range c.companies {
		if !strings.Contains(storedCompany, needle) {
			continue
		}
		for _, e := range byEmail {
			contact := e.toContact()
			if roles.IsRecruiterTitle(contact.Position) {
				if len(set.Recruiters) < c.maxRecruiters {
					set.Recruiters = append(set.Recruiters, contact)
				}
			} else if len(set.Employees) < c.maxEmployees {
				set.Employees = append(set.Employees, contact)
			}
		}
	}

	return set, nil
}

// Upsert stores every contact of the set; an existing (company, email)
// row is overwritten but keeps its original id
func (c *MemoryCache) Upsert(ctx context.Context, company string, set *core.ContactSet) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(company))
	byEmail, ok := c.companies[key]
	if !ok {
		byEmail = make(map[string]*entry)
		c.companies[key] = byEmail
	}

	now := time.Now()
	for _, contact := range append(append([]core.Contact{}, set.Recruiters...), set.Employees...) {
		if contact.Email == "" {
			continue
		}
		id := uuid.NewString()
		if existing, ok := byEmail[contact.Email]; ok {
			id = existing.id
		}
		byEmail[contact.Email] = &entry{
			id:         id,
			fullName:   contact.Name,
			email:      contact.Email,
			company:    company,
			jobTitle:   contact.Position,
			profileURL: contact.ProfileURL,
			updatedAt:  now,
		}
	}

	c.logger.Debug("Upserted contacts into memory cache",
		zap.String("company", company),
		zap.Int("count", set.Total()))
	return nil
}

func (e *entry) toContact() core.Contact {
	position := e.jobTitle
	if position == "" {
		position = "Employee"
	}
	return core.Contact{
		ID:       e.id,
		Name:     e.fullName,
		Email:    e.email,
		Position: position,
		Company:  e.company,
		// Stored rows predate connection tracking
		ConnectionLevel: 2,
		ProfileURL:      e.profileURL,
	}
}
