package emails

import (
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{"{first}@{domain}", "jane@acme.com"},
		{"{first}.{last}@{domain}", "jane.doe@acme.com"},
		{"{first}{last}@{domain}", "janedoe@acme.com"},
		{"{first}_{last}@{domain}", "jane_doe@acme.com"},
		{"{first}.{last_initial}@{domain}", "jane.d@acme.com"},
		{"{first_initial}{last}@{domain}", "jdoe@acme.com"},
		{"{first_initial}.{last}@{domain}", "j.doe@acme.com"},
		{"{last}@{domain}", "doe@acme.com"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := Render(tt.pattern, "Jane", "Doe", "acme.com"); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane.doe@acme.com", true},
		{"j@a.io", true},
		{"@acme.com", false},
		{"jane@", false},
		{"jane@acme", false},
		{"jane doe@acme.com", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidFormat(tt.email); got != tt.want {
			t.Errorf("IsValidFormat(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestMapAnswer(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{"first.last@domain.com", "{first}.{last}@{domain}"},
		{"  First.Last@domain.com ", "{first}.{last}@{domain}"},
		{"flast@domain.com", "{first_initial}{last}@{domain}"},
		{"something else entirely", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MapAnswer(tt.answer); got != tt.want {
			t.Errorf("MapAnswer(%q) = %q, want %q", tt.answer, got, tt.want)
		}
	}
}
