package synth

import (
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/domains"
	"github.com/mikey/referral-contacts/internal/roles"
)

// Generator is the resolver's last-resort contact source
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new Generator
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate builds a full synthetic contact set for a company, with
// employee titles matched to the target job title's role keywords
func (g *Generator) Generate(company, jobTitle string) *core.ContactSet {
	domain := domains.Guess(company)
	keywords := roles.ExtractKeywords(jobTitle)

	g.logger.Debug("Generating synthetic contacts",
		zap.String("company", company),
		zap.String("domain", domain),
		zap.Strings("keywords", keywords))

	return &core.ContactSet{
		Recruiters: GenerateRecruiters(company, domain),
		Employees:  GenerateEmployees(company, domain, keywords),
	}
}
