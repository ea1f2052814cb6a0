package core

// Contact represents a resolved person of interest at a company
type Contact struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Position        string `json:"position"`
	Company         string `json:"company"`
	ConnectionLevel int    `json:"connectionLevel,omitempty"`
	ProfileURL      string `json:"profileUrl,omitempty"`
	RelevanceScore  int    `json:"relevanceScore,omitempty"`
}

// ContactSet partitions resolved contacts into recruiting and
// non-recruiting roles. A contact belongs to exactly one list.
type ContactSet struct {
	Recruiters []Contact `json:"recruiters"`
	Employees  []Contact `json:"employees"`
}

// IsEmpty reports whether the set contains no contacts at all
func (s *ContactSet) IsEmpty() bool {
	return s == nil || (len(s.Recruiters) == 0 && len(s.Employees) == 0)
}

// Total returns the number of contacts across both lists
func (s *ContactSet) Total() int {
	if s == nil {
		return 0
	}
	return len(s.Recruiters) + len(s.Employees)
}

// Source tells the caller where a resolution came from
type Source string

const (
	// SourceDatabase means the result was served from the contact cache
	SourceDatabase Source = "database"
	// SourceProvider means the result came from a live external data provider
	SourceProvider Source = "external_provider"
	// SourceFallback means the result was synthesized locally
	SourceFallback Source = "fallback"
)

// CompanyInfo is the normalized company record returned by the
// company-info provider
type CompanyInfo struct {
	Name     string
	Domain   string
	Industry string
}

// Resolution is the orchestrator's result: the contacts plus a
// provenance tag for how much to trust them
type Resolution struct {
	Results *ContactSet `json:"results"`
	Source  Source      `json:"source"`
}

// PeopleQuery describes a people-search provider request
type PeopleQuery struct {
	Company  string
	Domain   string
	JobTitle string
	Limit    int
}
