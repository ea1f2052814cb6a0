package roles

import (
	"strings"
)

// recruiterKeywords marks a title as recruiting/talent-acquisition.
// Matching is case-insensitive substring.
var recruiterKeywords = []string{
	"recruit", "talent", "acquisition", "sourcer", "hiring", "hr",
}

// IsRecruiterTitle reports whether a job title denotes a recruiting role.
// Every title falls on exactly one side of the recruiter/employee split.
func IsRecruiterTitle(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range recruiterKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// ExtractKeywords maps a free-form job title to a small controlled
// vocabulary of topical keywords used for relevance matching. An empty or
// unrecognized title yields the generic fallback, so the result is never
// empty.
func ExtractKeywords(jobTitle string) []string {
	title := strings.ToLower(jobTitle)

	var keywords []string

	// Technical roles
	if strings.Contains(title, "engineer") || strings.Contains(title, "developer") || strings.Contains(title, "programmer") {
		keywords = append(keywords, "engineer", "developer", "engineering")

		if strings.Contains(title, "front") {
			keywords = append(keywords, "frontend", "front-end", "ui")
		}
		if strings.Contains(title, "back") {
			keywords = append(keywords, "backend", "back-end", "server")
		}
		if strings.Contains(title, "full") {
			keywords = append(keywords, "fullstack", "full-stack")
		}
		if strings.Contains(title, "mobile") {
			keywords = append(keywords, "mobile", "ios", "android")
		}
		if strings.Contains(title, "data") {
			keywords = append(keywords, "data", "database")
		}
		if strings.Contains(title, "ml") || strings.Contains(title, "machine learning") {
			keywords = append(keywords, "ml", "machine learning", "ai")
		}
		if strings.Contains(title, "devops") {
			keywords = append(keywords, "devops", "infrastructure", "platform")
		}
	}

	// Design roles
	if strings.Contains(title, "design") {
		keywords = append(keywords, "design", "designer")

		if strings.Contains(title, "ui") || strings.Contains(title, "ux") {
			keywords = append(keywords, "ui", "ux", "product")
		}
		if strings.Contains(title, "graphic") {
			keywords = append(keywords, "graphic", "visual")
		}
	}

	// Product roles
	if strings.Contains(title, "product") {
		keywords = append(keywords, "product")

		if strings.Contains(title, "manager") {
			keywords = append(keywords, "manager", "management")
		}
		if strings.Contains(title, "owner") {
			keywords = append(keywords, "owner")
		}
	}

	// Data roles
	if strings.Contains(title, "data") {
		keywords = append(keywords, "data")

		if strings.Contains(title, "scientist") {
			keywords = append(keywords, "scientist", "science")
		}
		if strings.Contains(title, "analyst") {
			keywords = append(keywords, "analyst", "analytics")
		}
		if strings.Contains(title, "engineer") {
			keywords = append(keywords, "engineer", "engineering")
		}
	}

	// Management roles
	if strings.Contains(title, "manager") || strings.Contains(title, "director") || strings.Contains(title, "lead") {
		keywords = append(keywords, "manager", "lead", "director", "head")
	}

	if len(keywords) == 0 {
		keywords = append(keywords, "employee", "team")
	}

	return keywords
}

// HasKeyword reports whether the keyword set contains the given term
func HasKeyword(keywords []string, term string) bool {
	for _, k := range keywords {
		if k == term {
			return true
		}
	}
	return false
}
