package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/adapters/cache"
	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/emails"
	"github.com/mikey/referral-contacts/internal/synth"
	"github.com/mikey/referral-contacts/internal/utils"
)

type nilCompanyInfo struct{}

func (nilCompanyInfo) Lookup(ctx context.Context, company string) (*core.CompanyInfo, error) {
	return nil, nil
}

type nilPeople struct{}

func (nilPeople) Search(ctx context.Context, query core.PeopleQuery) (*core.ContactSet, error) {
	return nil, nil
}

func newTestServer(t *testing.T) (*HTTPServer, *cache.MemoryCache) {
	t.Helper()
	logger := zap.NewNop()
	store := cache.NewMemoryCache(logger, 5, 10)
	resolver := core.NewResolverService(store, nilCompanyInfo{}, nilPeople{}, synth.NewGenerator(logger), logger, 15, 2, 3)
	finder := emails.NewFinder(nil, logger)
	names := utils.NewNameProcessor(logger)
	return NewHTTPServer(resolver, finder, names, logger, "127.0.0.1:0", 5*time.Second, 5*time.Second), store
}

func postJSON(t *testing.T, s *HTTPServer, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, req)
	return rr
}

func TestLookupRejectsBadInput(t *testing.T) {
	s, _ := newTestServer(t)

	for _, body := range []string{`{not json`, `{"company":""}`, `{"company":"   "}`} {
		rr := postJSON(t, s, "/api/contacts/lookup", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid request data", resp.Error)
	}
}

func TestLookupSynthesizedResults(t *testing.T) {
	s, _ := newTestServer(t)

	rr := postJSON(t, s, "/api/contacts/lookup", `{"company":"Acme Corp","jobTitle":"Frontend Engineer"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp lookupResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, core.SourceFallback, resp.Source)
	require.NotNil(t, resp.Results)
	assert.Len(t, resp.Results.Recruiters, 3)
	assert.Len(t, resp.Results.Employees, 4)
	for _, c := range resp.Results.Recruiters {
		assert.True(t, strings.HasSuffix(c.Email, "@acme.com"), "email %q", c.Email)
	}
}

func TestLookupServesCachedResults(t *testing.T) {
	s, store := newTestServer(t)

	seed := &core.ContactSet{
		Recruiters: []core.Contact{
			{Name: "R One", Email: "r1@acme.com", Position: "Recruiter"},
			{Name: "R Two", Email: "r2@acme.com", Position: "Talent Partner"},
		},
		Employees: []core.Contact{
			{Name: "E One", Email: "e1@acme.com", Position: "Engineer"},
			{Name: "E Two", Email: "e2@acme.com", Position: "Designer"},
			{Name: "E Three", Email: "e3@acme.com", Position: "PM"},
		},
	}
	require.NoError(t, store.Upsert(context.Background(), "Acme", seed))

	rr := postJSON(t, s, "/api/contacts/lookup", `{"company":"Acme"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp lookupResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, core.SourceDatabase, resp.Source)
	assert.Len(t, resp.Results.Recruiters, 2)
	assert.Len(t, resp.Results.Employees, 3)
}

func TestGuessEmails(t *testing.T) {
	s, _ := newTestServer(t)

	rr := postJSON(t, s, "/api/emails/guess", `{"name":"Jane Doe","company":"Acme"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp guessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Emails)
	assert.Equal(t, "jane@acme.com", resp.Emails[0])
	for _, e := range resp.Emails {
		assert.True(t, emails.IsValidFormat(e), "email %q", e)
	}
}

func TestGuessRequiresNameAndCompany(t *testing.T) {
	s, _ := newTestServer(t)

	for _, body := range []string{`{"name":"Jane Doe"}`, `{"company":"Acme"}`, `{}`} {
		rr := postJSON(t, s, "/api/emails/guess", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
	}
}
