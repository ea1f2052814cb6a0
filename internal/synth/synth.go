// Package synth manufactures plausible-looking contacts when no real data
// is obtainable. Name, title and email assignment are deterministic from
// the inputs; only the profile-URL numeric suffix is randomized.
package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/roles"
)

type rosterName struct {
	first string
	last  string
}

var recruiterTitles = []string{
	"Technical Recruiter",
	"Senior Technical Recruiter",
	"Talent Acquisition Specialist",
	"Recruiting Manager",
	"Technical Sourcer",
	"University Recruiter",
	"Talent Acquisition Partner",
}

var recruiterRoster = []rosterName{
	{"Jessica", "Williams"},
	{"Sarah", "Johnson"},
	{"Michael", "Chen"},
	{"David", "Rodriguez"},
	{"Rachel", "Patel"},
	{"Jennifer", "Thompson"},
	{"Emily", "Wilson"},
}

var employeeRoster = []rosterName{
	{"Alex", "Rodriguez"},
	{"Jamie", "Smith"},
	{"Taylor", "Johnson"},
	{"Jordan", "Lee"},
	{"Casey", "Brown"},
	{"Morgan", "Davis"},
	{"Sam", "Wilson"},
	{"Avery", "Martinez"},
}

var positionLevels = []string{"Senior", "Staff", "Principal", "Lead", ""}

const (
	recruiterCount = 3
	employeeCount  = 4
)

// GenerateRecruiters fabricates recruiter contacts for a company
func GenerateRecruiters(company, domain string) []core.Contact {
	recruiters := make([]core.Contact, 0, recruiterCount)
	for i, name := range recruiterRoster[:recruiterCount] {
		recruiters = append(recruiters, core.Contact{
			ID:              fmt.Sprintf("r%d", i+1),
			Name:            name.first + " " + name.last,
			Email:           workEmail(name, domain),
			Position:        recruiterTitles[i%len(recruiterTitles)],
			Company:         company,
			ConnectionLevel: i%3 + 1,
			ProfileURL:      profileURL(name),
		})
	}
	return recruiters
}

// GenerateEmployees fabricates employee contacts whose titles match the
// role keywords derived from the target job title. Relevance decreases
// strictly by position so the first entry ranks highest.
func GenerateEmployees(company, domain string, keywords []string) []core.Contact {
	titles := positionTitles(keywords)

	employees := make([]core.Contact, 0, employeeCount)
	for i, name := range employeeRoster[:employeeCount] {
		position := titles[i%len(titles)]
		if level := positionLevels[i%len(positionLevels)]; level != "" {
			position = level + " " + position
		}
		employees = append(employees, core.Contact{
			ID:              fmt.Sprintf("e%d", i+1),
			Name:            name.first + " " + name.last,
			Email:           workEmail(name, domain),
			Position:        position,
			Company:         company,
			ConnectionLevel: i%3 + 1,
			RelevanceScore:  95 - i*5,
			ProfileURL:      profileURL(name),
		})
	}
	return employees
}

// positionTitles picks title templates for the dominant role keyword
func positionTitles(keywords []string) []string {
	var titles []string

	switch {
	case roles.HasKeyword(keywords, "engineer") || roles.HasKeyword(keywords, "developer"):
		titles = append(titles, "Software Engineer", "Software Developer", "Engineering Manager")
		if roles.HasKeyword(keywords, "frontend") {
			titles = append(titles, "Frontend Engineer", "UI Engineer", "Frontend Developer")
		}
		if roles.HasKeyword(keywords, "backend") {
			titles = append(titles, "Backend Engineer", "Systems Engineer", "Infrastructure Engineer")
		}
		if roles.HasKeyword(keywords, "fullstack") {
			titles = append(titles, "Full Stack Engineer", "Full Stack Developer")
		}
	case roles.HasKeyword(keywords, "data"):
		titles = append(titles, "Data Scientist", "Data Engineer", "Data Analyst")
	case roles.HasKeyword(keywords, "design"):
		titles = append(titles, "Product Designer", "UX Designer", "UI Designer")
	case roles.HasKeyword(keywords, "product"):
		titles = append(titles, "Product Manager", "Technical Product Manager")
	default:
		titles = append(titles, "Team Member", "Project Manager", "Team Lead")
	}

	return titles
}

func workEmail(name rosterName, domain string) string {
	return fmt.Sprintf("%s.%s@%s", strings.ToLower(name.first), strings.ToLower(name.last), domain)
}

// profileURL is the only field with a randomized component
func profileURL(name rosterName) string {
	return fmt.Sprintf("https://linkedin.com/in/%s%s%d",
		strings.ToLower(name.first), strings.ToLower(name.last), rand.Intn(100))
}
