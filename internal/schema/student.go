package schema

// Student is the enrollment variant. Age bounds and the numeric phone
// differ from the candidate variant on purpose; deployments pick one
// ruleset via config rather than merging the two.
func Student() *Entity {
	return &Entity{
		Name:       "student",
		Label:      "Student",
		Table:      "students",
		Collection: "students",

		FilterParam:   "course",
		FilterColumn:  "course_name",
		SearchColumns: []string{"name", "email", "s_code", "course_name"},

		Fields: []Field{
			{Name: "s_roll", Label: "Roll", Type: "int"},
			{Name: "name", Label: "Name", Type: "string", Required: true, MaxLength: 100},
			{Name: "age", Label: "Age", Type: "int", Required: true, Min: intPtr(1), Max: intPtr(120)},
			{Name: "email", Label: "Email", Type: "email", Required: true, MaxLength: 100, Lowercase: true},
			{Name: "phone", Label: "Phone", Type: "int", Min: intPtr(0), BadValueMsg: "Phone must be a valid number"},
			{Name: "s_code", Label: "Code", Type: "string", MaxLength: 100},
			{Name: "address", Label: "Address", Type: "string", MaxLength: 100},
			{Name: "course_name", Label: "Course name", Type: "string", MaxLength: 100},
		},
	}
}

// ForVariant maps a configured variant name to its entity schema.
func ForVariant(name string) *Entity {
	switch name {
	case "student":
		return Student()
	default:
		return Candidate()
	}
}
