package schema

import "regexp"

var (
	// Matches local@domain.tld with no whitespace or extra @.
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]{7,20}$`)
)

// CandidateStatuses is the closed status set for the candidate variant.
var CandidateStatuses = []string{"Applied", "Interviewing", "Hired", "Rejected"}

// Candidate is the recruiting variant: one row per applicant.
func Candidate() *Entity {
	return &Entity{
		Name:       "candidate",
		Label:      "Candidate",
		Table:      "candidates",
		Collection: "candidates",

		FilterParam:   "status",
		FilterColumn:  "status",
		SearchColumns: []string{"name", "email", "skills", "applied_position"},

		Fields: []Field{
			{Name: "name", Label: "Name", Type: "string", Required: true, MaxLength: 255},
			{Name: "age", Label: "Age", Type: "int", Required: true, Min: intPtr(18), Max: intPtr(120)},
			{Name: "email", Label: "Email", Type: "email", Required: true, MaxLength: 255, Lowercase: true},
			{Name: "phone", Label: "Phone", Type: "string", MaxLength: 20, Pattern: phonePattern, PatternMsg: "Invalid phone format"},
			{Name: "skills", Label: "Skills", Type: "string"},
			{Name: "experience", Label: "Experience", Type: "string"},
			{Name: "applied_position", Label: "Applied position", Type: "string"},
			{Name: "status", Label: "Status", Type: "string", Enum: CandidateStatuses, Default: "Applied"},
		},
	}
}
