package schema

import (
	"fmt"
	"regexp"
)

// Field describes one client-writable column of a record table and the
// constraints the validation pass enforces on it.
type Field struct {
	Name     string
	Label    string // used in error messages ("Name is required")
	Type     string // "string", "int", "email"
	Required bool

	MaxLength   int            // strings; 0 means unlimited
	Min         *int           // ints, inclusive
	Max         *int           // ints, inclusive
	BadValueMsg string         // overrides "<Label> must be a number"
	Pattern     *regexp.Regexp // strings; checked after trimming
	PatternMsg  string         // message when Pattern fails
	Enum        []string       // strings; closed value set

	Default   any  // applied at write time when the value is blank
	Lowercase bool // normalize to lower case at write time
}

// PostgresType returns the Postgres DDL type for this field.
func (f Field) PostgresType() string {
	switch f.Type {
	case "int":
		return "INTEGER"
	case "email", "string":
		if f.MaxLength > 0 {
			return fmt.Sprintf("VARCHAR(%d)", f.MaxLength)
		}
		return "TEXT"
	default:
		return "TEXT"
	}
}

// IsNumeric reports whether values are parsed and stored as integers.
func (f Field) IsNumeric() bool {
	return f.Type == "int"
}

func intPtr(n int) *int { return &n }
