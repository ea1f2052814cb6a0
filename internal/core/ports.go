package core

import (
	"context"
)

// ContactCache defines the interface for the durable contact cache
type ContactCache interface {
	// FetchByCompany retrieves cached contacts for a company,
	// pre-partitioned into recruiters and employees
	FetchByCompany(ctx context.Context, company string) (*ContactSet, error)

	// Upsert stores every contact of the set for the company, keyed by
	// (company, email); an existing row with the same key is overwritten
	Upsert(ctx context.Context, company string, set *ContactSet) error
}

// CompanyInfoClient defines the interface for the company-metadata provider.
// A nil CompanyInfo with a nil error is the valid "not found or not
// configured" state.
type CompanyInfoClient interface {
	Lookup(ctx context.Context, company string) (*CompanyInfo, error)
}

// PeopleSearchClient defines the interface for the people-data provider.
// A nil ContactSet with a nil error means no usable records were found.
type PeopleSearchClient interface {
	Search(ctx context.Context, query PeopleQuery) (*ContactSet, error)
}

// FallbackGenerator defines the interface for the synthetic contact
// generator used when neither the cache nor a live provider produced data
type FallbackGenerator interface {
	Generate(company, jobTitle string) *ContactSet
}

// PatternPredictor defines the interface for LLM-backed email format
// prediction. The returned pattern uses the placeholder vocabulary of the
// emails package ({first}, {last}, {first_initial}, {last_initial}, {domain}).
type PatternPredictor interface {
	PredictPattern(ctx context.Context, company string) (string, error)
}
