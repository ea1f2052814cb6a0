package roles

import (
	"testing"
)

func TestIsRecruiterTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Technical Recruiter", true},
		{"Senior Talent Acquisition Partner", true},
		{"Talent Sourcer", true},
		{"Head of Hiring", true},
		{"HR Business Partner", true},
		{"RECRUITING MANAGER", true},
		{"Software Engineer", false},
		{"Product Manager", false},
		{"Designer", false},
		{"", false},
		{"Chief Executive Officer", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := IsRecruiterTitle(tt.title)
			if got != tt.want {
				t.Errorf("IsRecruiterTitle(%q) = %v, want %v", tt.title, got, tt.want)
			}
			// Classification must be stable across calls
			if again := IsRecruiterTitle(tt.title); again != got {
				t.Errorf("IsRecruiterTitle(%q) not deterministic", tt.title)
			}
		})
	}
}

func TestExtractKeywordsNeverEmpty(t *testing.T) {
	tests := []string{
		"",
		"Assistant to the Regional Manager",
		"Frontend Engineer",
		"Data Scientist",
		"Product Owner",
		"UX Designer",
		"Underwater Basket Weaver",
	}
	for _, title := range tests {
		if got := ExtractKeywords(title); len(got) == 0 {
			t.Errorf("ExtractKeywords(%q) returned an empty set", title)
		}
	}
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		title string
		want  []string
	}{
		{"Frontend Engineer", []string{"engineer", "frontend", "ui"}},
		{"Backend Developer", []string{"developer", "backend", "server"}},
		{"Full Stack Engineer", []string{"fullstack", "full-stack"}},
		{"Machine Learning Engineer", []string{"ml", "ai"}},
		{"Product Manager", []string{"product", "manager", "management"}},
		{"Data Analyst", []string{"data", "analyst", "analytics"}},
		{"Graphic Designer", []string{"design", "graphic", "visual"}},
		{"Engineering Director", []string{"director", "head"}},
		{"Barista", []string{"employee", "team"}},
		{"", []string{"employee", "team"}},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := ExtractKeywords(tt.title)
			for _, want := range tt.want {
				if !HasKeyword(got, want) {
					t.Errorf("ExtractKeywords(%q) = %v, missing %q", tt.title, got, want)
				}
			}
		})
	}
}

func TestExtractKeywordsManagerNotGeneric(t *testing.T) {
	// "Assistant to the Regional Manager" hits the management branch,
	// not the generic fallback
	got := ExtractKeywords("Assistant to the Regional Manager")
	if !HasKeyword(got, "manager") {
		t.Errorf("expected management keywords, got %v", got)
	}
	if HasKeyword(got, "employee") {
		t.Errorf("generic fallback should not fire for management titles, got %v", got)
	}
}
