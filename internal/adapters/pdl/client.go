// Package pdl adapts the People Data Labs person-search API to the
// PeopleSearchClient port. Provider record shapes never leak past the
// normalization in this package.
package pdl

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/roles"
	"github.com/mikey/referral-contacts/internal/utils"
)

const defaultBaseURL = "https://api.peopledatalabs.com"

// searchRequest is the provider query envelope
type searchRequest struct {
	Query   searchQuery `json:"query"`
	Dataset string      `json:"dataset"`
	Size    int         `json:"size"`
}

type searchQuery struct {
	Company          string `json:"company"`
	CompanyDomain    string `json:"company_domain"`
	Size             int    `json:"size"`
	JobTitleLevels   string `json:"job_title_levels,omitempty"`
	JobTitleKeywords string `json:"job_title_keywords,omitempty"`
}

type searchResponse struct {
	Data []personRecord `json:"data"`
}

// personRecord mirrors the heterogeneous provider payload; most fields
// are optional
type personRecord struct {
	ID   string `json:"id"`
	Name struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	WorkEmail             string   `json:"work_email"`
	Emails                []string `json:"emails"`
	JobTitle              string   `json:"job_title"`
	CurrentEmployer       string   `json:"current_employer"`
	CurrentEmployerDomain string   `json:"current_employer_domain"`
	Company               string   `json:"company"`
	LinkedinURL           string   `json:"linkedin_url"`
	LinkedinUsername      string   `json:"linkedin_username"`
	RelevanceScore        int      `json:"relevance_score"`
}

// Client searches for people at a company
type Client struct {
	apiKey           string
	baseURL          string
	httpClient       *http.Client
	logger           *zap.Logger
	names            *utils.NameProcessor
	targetRecruiters int
	targetEmployees  int
}

// NewClient creates a new People Data Labs client. An empty apiKey is
// valid: searches then report no data without touching the network.
func NewClient(
	apiKey, baseURL string,
	httpClient *http.Client,
	logger *zap.Logger,
	names *utils.NameProcessor,
	targetRecruiters, targetEmployees int,
) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		apiKey:           apiKey,
		baseURL:          baseURL,
		httpClient:       httpClient,
		logger:           logger,
		names:            names,
		targetRecruiters: targetRecruiters,
		targetEmployees:  targetEmployees,
	}
}

// Search queries the provider and returns normalized, classified
// contacts. All failure modes collapse to a nil set; never an error the
// orchestrator would have to handle.
func (c *Client) Search(ctx context.Context, query core.PeopleQuery) (*core.ContactSet, error) {
	if c.apiKey == "" {
		c.logger.Warn("PDL API key not configured")
		return nil, nil
	}

	body, err := json.Marshal(buildRequest(query))
	if err != nil {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v5/person/search", bytes.NewReader(body))
	if err != nil {
		return nil, nil
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("PDL request failed", zap.String("company", query.Company), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("PDL returned unexpected status",
			zap.String("company", query.Company),
			zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("Failed to decode PDL response", zap.Error(err))
		return nil, nil
	}

	set := &core.ContactSet{}
	seen := make(map[string]bool)
	for _, person := range payload.Data {
		contact := c.normalize(person, query)
		if contact == nil {
			continue
		}
		// Duplicate addresses across records would break the
		// recruiter/employee partition; first record wins
		email := strings.ToLower(contact.Email)
		if seen[email] {
			continue
		}
		seen[email] = true
		if roles.IsRecruiterTitle(contact.Position) {
			set.Recruiters = append(set.Recruiters, *contact)
		} else {
			set.Employees = append(set.Employees, *contact)
		}
		// Enough of both kinds: stop paying for normalization we
		// will not use
		if len(set.Recruiters) >= c.targetRecruiters && len(set.Employees) >= c.targetEmployees {
			break
		}
	}

	c.logger.Debug("PDL search finished",
		zap.String("company", query.Company),
		zap.Int("recruiters", len(set.Recruiters)),
		zap.Int("employees", len(set.Employees)))
	return set, nil
}

// buildRequest narrows the provider query by seniority and title keywords
// when a target job title is known
func buildRequest(query core.PeopleQuery) searchRequest {
	q := searchQuery{
		Company:       query.Company,
		CompanyDomain: query.Domain,
		// Request a few extra so filtering still leaves enough
		Size: query.Limit + 5,
	}

	if query.JobTitle != "" {
		q.JobTitleLevels = "senior,manager,director"
		title := strings.ToLower(query.JobTitle)
		switch {
		case strings.Contains(title, "engineer") || strings.Contains(title, "developer"):
			q.JobTitleKeywords = "engineer,developer,engineering"
		case strings.Contains(title, "product"):
			q.JobTitleKeywords = "product,manager,owner"
		case strings.Contains(title, "design"):
			q.JobTitleKeywords = "design,designer,ux,ui"
		}
	}

	return searchRequest{
		Query:   q,
		Dataset: "all",
		Size:    query.Limit + 5,
	}
}

// normalize converts a provider record to a Contact, or nil when the
// record lacks a name or any derivable email
func (c *Client) normalize(person personRecord, query core.PeopleQuery) *core.Contact {
	if person.Name.First == "" || person.Name.Last == "" {
		return nil
	}

	email := person.WorkEmail
	if email == "" {
		employerDomain := person.CurrentEmployerDomain
		if employerDomain == "" {
			employerDomain = query.Domain
		}
		for _, candidate := range person.Emails {
			if employerDomain != "" && strings.Contains(candidate, employerDomain) {
				email = candidate
				break
			}
		}
		if email == "" && len(person.Emails) > 0 {
			email = person.Emails[0]
		}
	}
	if email == "" {
		// The downstream send pipeline needs an address; drop the record
		return nil
	}

	position := person.JobTitle
	if position == "" {
		position = "Employee"
	}

	company := person.CurrentEmployer
	if company == "" {
		company = person.Company
	}

	profileURL := person.LinkedinURL
	if profileURL == "" && person.LinkedinUsername != "" {
		profileURL = "https://linkedin.com/in/" + person.LinkedinUsername
	}

	id := person.ID
	if id == "" {
		id = "pdl-" + uuid.NewString()
	}

	relevance := person.RelevanceScore
	if relevance == 0 {
		relevance = 85
	}

	return &core.Contact{
		ID:       id,
		Name:     c.names.SanitizeUTF8(person.Name.First + " " + person.Name.Last),
		Email:    email,
		Position: position,
		Company:  company,
		// Provider records carry no graph distance; assume 2nd degree
		ConnectionLevel: 2,
		ProfileURL:      profileURL,
		RelevanceScore:  relevance,
	}
}
