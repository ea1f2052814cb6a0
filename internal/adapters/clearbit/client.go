// Package clearbit adapts the Clearbit company-enrichment API to the
// CompanyInfoClient port. Every failure mode collapses to a nil
// CompanyInfo: missing credential, 404, non-2xx status, transport error,
// malformed payload.
package clearbit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mikey/referral-contacts/internal/core"
)

const defaultBaseURL = "https://company.clearbit.com"

// companyResponse mirrors the provider payload; provider field names stop
// at this type
type companyResponse struct {
	Name     string `json:"name"`
	Domain   string `json:"domain"`
	Category struct {
		Industry string `json:"industry"`
	} `json:"category"`
}

// Client looks up company metadata by name
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	titleCaser cases.Caser
}

// NewClient creates a new Clearbit client. An empty apiKey is valid: every
// lookup then reports "not found" without touching the network.
func NewClient(apiKey, baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
		titleCaser: cases.Title(language.English),
	}
}

// Lookup resolves a company name to its metadata, or nil when the
// provider cannot help
func (c *Client) Lookup(ctx context.Context, company string) (*core.CompanyInfo, error) {
	if c.apiKey == "" {
		c.logger.Warn("Clearbit API key not configured")
		return nil, nil
	}

	reqURL := c.baseURL + "/v2/companies/find?name=" + url.QueryEscape(company)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, nil
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Clearbit request failed", zap.String("company", company), zap.Error(err))
		return nil, nil
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Parsed below
	case resp.StatusCode == http.StatusNotFound:
		c.logger.Debug("Company not found in Clearbit", zap.String("company", company))
		return nil, nil
	default:
		c.logger.Warn("Clearbit returned unexpected status",
			zap.String("company", company),
			zap.Int("status", resp.StatusCode))
		return nil, nil
	}

	var payload companyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Warn("Failed to decode Clearbit response", zap.Error(err))
		return nil, nil
	}

	name := payload.Name
	if name == "" {
		name = c.titleCaser.String(company)
	}

	return &core.CompanyInfo{
		Name:     name,
		Domain:   payload.Domain,
		Industry: payload.Category.Industry,
	}, nil
}
