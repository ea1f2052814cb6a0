// Package emails builds candidate work email addresses from a person's
// name and the shapes companies commonly use.
package emails

import (
	"regexp"
	"strings"
)

// Patterns lists the address shapes tried when guessing a work email,
// in descending order of how common they are.
var Patterns = []string{
	"{first}@{domain}",
	"{first}.{last}@{domain}",
	"{first}{last}@{domain}",
	"{first}_{last}@{domain}",
	"{first}.{last_initial}@{domain}",
	"{first_initial}{last}@{domain}",
	"{first_initial}.{last}@{domain}",
	"{last}@{domain}",
}

// canonicalAnswers maps the spelled-out formats a model is asked to pick
// from back to pattern syntax.
var canonicalAnswers = map[string]string{
	"first@domain.com":      "{first}@{domain}",
	"first.last@domain.com": "{first}.{last}@{domain}",
	"firstlast@domain.com":  "{first}{last}@{domain}",
	"first_last@domain.com": "{first}_{last}@{domain}",
	"first.l@domain.com":    "{first}.{last_initial}@{domain}",
	"flast@domain.com":      "{first_initial}{last}@{domain}",
	"f.last@domain.com":     "{first_initial}.{last}@{domain}",
	"last@domain.com":       "{last}@{domain}",
}

// MapAnswer converts a model's format answer to a pattern. Unknown
// answers map to the empty string.
func MapAnswer(answer string) string {
	return canonicalAnswers[strings.ToLower(strings.TrimSpace(answer))]
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidFormat reports whether a string looks like an email address.
// This is a shape check only, not deliverability verification.
func IsValidFormat(email string) bool {
	return emailRe.MatchString(email)
}

// Render substitutes name and domain parts into a pattern. Placeholders
// with no value render as empty, which can produce an invalid address;
// callers filter through IsValidFormat.
func Render(pattern, first, last, domain string) string {
	first = strings.ToLower(strings.TrimSpace(first))
	last = strings.ToLower(strings.TrimSpace(last))

	replacements := map[string]string{
		"{first}":         first,
		"{last}":          last,
		"{first_initial}": initial(first),
		"{last_initial}":  initial(last),
		"{domain}":        domain,
	}

	email := pattern
	for placeholder, value := range replacements {
		email = strings.ReplaceAll(email, placeholder, value)
	}
	return email
}

func initial(name string) string {
	if name == "" {
		return ""
	}
	return name[:1]
}
