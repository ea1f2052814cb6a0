package core_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/emails"
)

type fakeCache struct {
	mu       sync.Mutex
	set      *core.ContactSet
	fetchErr error
	fetches  int
	upserts  int
	upserted map[string]*core.ContactSet
}

func (f *fakeCache) FetchByCompany(ctx context.Context, company string) (*core.ContactSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.set, nil
}

func (f *fakeCache) Upsert(ctx context.Context, company string, set *core.ContactSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if f.upserted == nil {
		f.upserted = make(map[string]*core.ContactSet)
	}
	f.upserted[company] = set
	return nil
}

type fakeCompanyInfo struct {
	info  *core.CompanyInfo
	err   error
	calls int
}

func (f *fakeCompanyInfo) Lookup(ctx context.Context, company string) (*core.CompanyInfo, error) {
	f.calls++
	return f.info, f.err
}

type fakePeople struct {
	set   *core.ContactSet
	err   error
	calls int
	query core.PeopleQuery
}

func (f *fakePeople) Search(ctx context.Context, query core.PeopleQuery) (*core.ContactSet, error) {
	f.calls++
	f.query = query
	return f.set, f.err
}

type fakeFallback struct {
	calls int
}

func (f *fakeFallback) Generate(company, jobTitle string) *core.ContactSet {
	f.calls++
	return &core.ContactSet{
		Recruiters: []core.Contact{
			{ID: "r1", Name: "Jessica Williams", Email: "jessica.williams@acme.com", Position: "Technical Recruiter", Company: company},
		},
		Employees: []core.Contact{
			{ID: "e1", Name: "Alex Rodriguez", Email: "alex.rodriguez@acme.com", Position: "Software Engineer", Company: company, RelevanceScore: 95},
		},
	}
}

func contact(id, email, position string) core.Contact {
	return core.Contact{ID: id, Name: "Person " + id, Email: email, Position: position, Company: "Acme"}
}

func newService(cache *fakeCache, info *fakeCompanyInfo, people *fakePeople, fallback *fakeFallback) *core.ResolverService {
	return core.NewResolverService(cache, info, people, fallback, zap.NewNop(), 15, 2, 3)
}

func TestResolveContactsInvalidInput(t *testing.T) {
	cache := &fakeCache{set: &core.ContactSet{}}
	info := &fakeCompanyInfo{}
	people := &fakePeople{}
	svc := newService(cache, info, people, &fakeFallback{})

	for _, company := range []string{"", "   "} {
		_, err := svc.ResolveContacts(context.Background(), company, "", 0)
		require.ErrorIs(t, err, core.ErrInvalidCompany)
	}

	// Rejected before any collaborator is touched
	assert.Zero(t, cache.fetches)
	assert.Zero(t, info.calls)
	assert.Zero(t, people.calls)
}

func TestResolveContactsCacheSufficient(t *testing.T) {
	cache := &fakeCache{set: &core.ContactSet{
		Recruiters: []core.Contact{
			contact("r1", "a@acme.com", "Recruiter"),
			contact("r2", "b@acme.com", "Talent Partner"),
		},
		Employees: []core.Contact{
			contact("e1", "c@acme.com", "Engineer"),
			contact("e2", "d@acme.com", "Designer"),
			contact("e3", "e@acme.com", "PM"),
		},
	}}
	info := &fakeCompanyInfo{}
	people := &fakePeople{}
	svc := newService(cache, info, people, &fakeFallback{})

	res, err := svc.ResolveContacts(context.Background(), "Acme", "", 0)
	require.NoError(t, err)
	assert.Equal(t, core.SourceDatabase, res.Source)
	assert.Len(t, res.Results.Recruiters, 2)
	assert.Len(t, res.Results.Employees, 3)

	// Cache is authoritative once sufficient: no live calls at all
	assert.Zero(t, info.calls)
	assert.Zero(t, people.calls)
	assert.Zero(t, cache.upserts)
}

func TestResolveContactsProviderPath(t *testing.T) {
	cache := &fakeCache{set: &core.ContactSet{}}
	info := &fakeCompanyInfo{info: &core.CompanyInfo{Name: "Acme", Domain: "acme.com"}}
	people := &fakePeople{set: &core.ContactSet{
		Recruiters: []core.Contact{contact("r1", "rec@acme.com", "Recruiter")},
		Employees:  []core.Contact{contact("e1", "eng@acme.com", "Engineer")},
	}}
	svc := newService(cache, info, people, &fakeFallback{})

	res, err := svc.ResolveContacts(context.Background(), "Acme", "Frontend Engineer", 10)
	require.NoError(t, err)
	assert.Equal(t, core.SourceProvider, res.Source)
	assert.Equal(t, 1, people.calls)
	assert.Equal(t, "acme.com", people.query.Domain)
	assert.Equal(t, "Frontend Engineer", people.query.JobTitle)
	assert.Equal(t, 10, people.query.Limit)

	// Provider results are persisted, without gating the response
	svc.WaitForPersist()
	assert.Equal(t, 1, cache.upserts)
	assert.Equal(t, people.set, cache.upserted["Acme"])
}

func TestResolveContactsDefaultLimit(t *testing.T) {
	cache := &fakeCache{set: &core.ContactSet{}}
	info := &fakeCompanyInfo{info: &core.CompanyInfo{Domain: "acme.com"}}
	people := &fakePeople{set: &core.ContactSet{Employees: []core.Contact{contact("e1", "a@acme.com", "Engineer")}}}
	svc := newService(cache, info, people, &fakeFallback{})

	_, err := svc.ResolveContacts(context.Background(), "Acme", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 15, people.query.Limit)
	svc.WaitForPersist()
}

func TestResolveContactsPartialCacheBeatsFallback(t *testing.T) {
	// One cached recruiter is below sufficiency but above nothing
	cache := &fakeCache{set: &core.ContactSet{
		Recruiters: []core.Contact{contact("r1", "rec@acme.com", "Recruiter")},
	}}
	info := &fakeCompanyInfo{} // nil info simulates a missing credential
	people := &fakePeople{}
	fallback := &fakeFallback{}
	svc := newService(cache, info, people, fallback)

	res, err := svc.ResolveContacts(context.Background(), "Acme", "", 0)
	require.NoError(t, err)
	assert.Equal(t, core.SourceDatabase, res.Source)
	require.Len(t, res.Results.Recruiters, 1)
	assert.Equal(t, "rec@acme.com", res.Results.Recruiters[0].Email)
	assert.Zero(t, fallback.calls)
	assert.Zero(t, people.calls)
	assert.Zero(t, cache.upserts)
}

func TestResolveContactsSynthesisOnTotalMiss(t *testing.T) {
	cache := &fakeCache{set: &core.ContactSet{}}
	info := &fakeCompanyInfo{}
	people := &fakePeople{}
	fallback := &fakeFallback{}
	svc := newService(cache, info, people, fallback)

	res, err := svc.ResolveContacts(context.Background(), "Acme Corp", "Frontend Engineer", 0)
	require.NoError(t, err)
	assert.Equal(t, core.SourceFallback, res.Source)
	assert.Equal(t, 1, fallback.calls)

	// Synthetic data never reaches the cache
	svc.WaitForPersist()
	assert.Zero(t, cache.upserts)
}

func TestResolveContactsProviderErrorsAreSwallowed(t *testing.T) {
	tests := []struct {
		name   string
		info   *fakeCompanyInfo
		people *fakePeople
	}{
		{"company info fails", &fakeCompanyInfo{err: errors.New("boom")}, &fakePeople{}},
		{"people search fails", &fakeCompanyInfo{info: &core.CompanyInfo{Domain: "acme.com"}}, &fakePeople{err: errors.New("boom")}},
		{"people search empty", &fakeCompanyInfo{info: &core.CompanyInfo{Domain: "acme.com"}}, &fakePeople{set: &core.ContactSet{}}},
		{"no domain", &fakeCompanyInfo{info: &core.CompanyInfo{Name: "Acme"}}, &fakePeople{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &fakeCache{set: &core.ContactSet{}}
			svc := newService(cache, tt.info, tt.people, &fakeFallback{})

			res, err := svc.ResolveContacts(context.Background(), "Acme", "", 0)
			require.NoError(t, err)
			assert.Equal(t, core.SourceFallback, res.Source)
		})
	}
}

func TestResolveContactsCacheErrorDoesNotBlock(t *testing.T) {
	cache := &fakeCache{fetchErr: errors.New("storage down")}
	info := &fakeCompanyInfo{info: &core.CompanyInfo{Domain: "acme.com"}}
	people := &fakePeople{set: &core.ContactSet{Employees: []core.Contact{contact("e1", "a@acme.com", "Engineer")}}}
	svc := newService(cache, info, people, &fakeFallback{})

	res, err := svc.ResolveContacts(context.Background(), "Acme", "", 0)
	require.NoError(t, err)
	assert.Equal(t, core.SourceProvider, res.Source)
	svc.WaitForPersist()
}

func TestResolvedSetInvariants(t *testing.T) {
	cache := &fakeCache{set: &core.ContactSet{}}
	svc := newService(cache, &fakeCompanyInfo{}, &fakePeople{}, &fakeFallback{})

	res, err := svc.ResolveContacts(context.Background(), "Acme", "Engineer", 0)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range append(append([]core.Contact{}, res.Results.Recruiters...), res.Results.Employees...) {
		require.NotEmpty(t, c.Email)
		assert.True(t, emails.IsValidFormat(c.Email), "email %q fails syntax check", c.Email)
		assert.False(t, seen[strings.ToLower(c.Email)], "email %q appears in both lists", c.Email)
		seen[strings.ToLower(c.Email)] = true
	}
}
