// Package domains maps free-form company names to plausible internet
// domains. The guess is knowingly approximate: it backs synthetic email
// construction and provider queries, not anything security sensitive.
package domains

import (
	"regexp"
	"strings"
)

// knownDomains covers companies whose real domain differs from (or should
// win over) the synthesized <name>.com guess.
var knownDomains = map[string]string{
	"google":     "google.com",
	"meta":       "meta.com",
	"facebook":   "fb.com",
	"microsoft":  "microsoft.com",
	"apple":      "apple.com",
	"amazon":     "amazon.com",
	"netflix":    "netflix.com",
	"coinbase":   "coinbase.com",
	"stripe":     "stripe.com",
	"airbnb":     "airbnb.com",
	"uber":       "uber.com",
	"lyft":       "lyft.com",
	"twitter":    "twitter.com",
	"linkedin":   "linkedin.com",
	"dropbox":    "dropbox.com",
	"salesforce": "salesforce.com",
	"adobe":      "adobe.com",
	"intel":      "intel.com",
	"cisco":      "cisco.com",
}

var (
	legalSuffixRe   = regexp.MustCompile(`(?i)\s+(inc|co|corp|llc)\.?$`)
	nonWordRe       = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	nonAlnumRe      = regexp.MustCompile(`[^a-z0-9]`)
	genericSuffixes = map[string]bool{"inc": true, "corp": true, "co": true, "llc": true, "ltd": true}
)

// extensions tried when expanding candidate domains for email guessing
var extensions = []string{"com", "co", "io", "net", "org", "ai"}

// Normalize strips legal suffixes and punctuation from a company name and
// collapses it to a single lowercase token.
func Normalize(company string) string {
	name := strings.ToLower(strings.TrimSpace(company))
	for {
		stripped := legalSuffixRe.ReplaceAllString(name, "")
		if stripped == name {
			break
		}
		name = stripped
	}
	name = nonWordRe.ReplaceAllString(name, "")
	name = whitespaceRe.ReplaceAllString(name, "")
	return name
}

// Guess returns the best-guess domain for a company name. Known companies
// resolve through the static table; everything else synthesizes
// <normalized-name>.com. Never fails, always syntactically valid.
func Guess(company string) string {
	name := Normalize(company)
	if name == "" {
		name = "example"
	}
	if domain, ok := knownDomains[name]; ok {
		return domain
	}
	return name + ".com"
}

// Candidates expands a company name into the domain variants a person's
// work email might use: all words joined, hyphen-joined, first word only,
// and the first word with a trailing generic term (Inc, Corp, ...) dropped,
// each crossed with the common extensions. Order is deterministic.
func Candidates(company string) []string {
	cleaned := nonAlnumRe.ReplaceAllString(strings.ToLower(company), " ")
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return nil
	}

	var bases []string
	if len(words) == 1 {
		bases = append(bases, words[0])
	} else {
		bases = append(bases, strings.Join(words, ""))
		bases = append(bases, strings.Join(words, "-"))
		bases = append(bases, words[0])
		if len(words) == 2 && genericSuffixes[words[1]] {
			bases = append(bases, words[0])
		}
	}

	seen := make(map[string]bool)
	var result []string
	for _, base := range bases {
		for _, ext := range extensions {
			domain := base + "." + ext
			if !seen[domain] {
				seen[domain] = true
				result = append(result, domain)
			}
		}
	}
	return result
}
