package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"candidate-backend/internal/schema"
)

// Mode selects how absent fields are treated.
type Mode int

const (
	// ModeCreate checks required fields even when they are absent.
	ModeCreate Mode = iota
	// ModeUpdate checks a field only when the input contains it.
	ModeUpdate
)

// ValidateRecord checks the input against the entity schema and returns
// every violation in schema field order. It never mutates the input;
// trimming and parsing here are purely for inspection. An empty result
// means the record is acceptable for persistence.
func ValidateRecord(entity *schema.Entity, body map[string]any, mode Mode) []FieldError {
	var errs []FieldError

	for i := range entity.Fields {
		f := &entity.Fields[i]
		val, present := body[f.Name]

		if !present {
			if mode == ModeUpdate || !f.Required {
				continue
			}
		}
		if fe := checkField(f, val); fe != nil {
			errs = append(errs, *fe)
		}
	}

	errs = append(errs, EvaluateRules(entity, body, mode == ModeCreate)...)
	return errs
}

func checkField(f *schema.Field, val any) *FieldError {
	if isBlank(val) {
		if f.Required {
			return &FieldError{Field: f.Name, Message: f.Label + " is required"}
		}
		return nil
	}

	switch f.Type {
	case "int":
		return checkInt(f, val)
	case "email":
		return checkEmail(f, val)
	default:
		return checkString(f, val)
	}
}

func checkInt(f *schema.Field, val any) *FieldError {
	n, ok := parseInt(val)
	if !ok {
		return &FieldError{Field: f.Name, Message: badValueMessage(f)}
	}
	if f.Min != nil && f.Max != nil {
		if n < *f.Min || n > *f.Max {
			return &FieldError{Field: f.Name, Message: fmt.Sprintf("%s must be between %d and %d", f.Label, *f.Min, *f.Max)}
		}
		return nil
	}
	if f.Min != nil && n < *f.Min {
		return &FieldError{Field: f.Name, Message: badValueMessage(f)}
	}
	return nil
}

func checkEmail(f *schema.Field, val any) *FieldError {
	s := strings.TrimSpace(stringify(val))
	if !schema.EmailPattern.MatchString(s) {
		return &FieldError{Field: f.Name, Message: "Invalid email format"}
	}
	if f.MaxLength > 0 && len(s) > f.MaxLength {
		return &FieldError{Field: f.Name, Message: lengthMessage(f)}
	}
	return nil
}

func checkString(f *schema.Field, val any) *FieldError {
	s := strings.TrimSpace(stringify(val))

	if f.MaxLength > 0 && len(s) > f.MaxLength {
		return &FieldError{Field: f.Name, Message: lengthMessage(f)}
	}
	if f.Pattern != nil && !f.Pattern.MatchString(s) {
		msg := f.PatternMsg
		if msg == "" {
			msg = "Invalid " + strings.ToLower(f.Label) + " format"
		}
		return &FieldError{Field: f.Name, Message: msg}
	}
	if len(f.Enum) > 0 && !contains(f.Enum, s) {
		return &FieldError{Field: f.Name, Message: fmt.Sprintf("%s must be one of: %s", f.Label, strings.Join(f.Enum, ", "))}
	}
	return nil
}

func badValueMessage(f *schema.Field) string {
	if f.BadValueMsg != "" {
		return f.BadValueMsg
	}
	return f.Label + " must be a number"
}

func lengthMessage(f *schema.Field) string {
	return fmt.Sprintf("%s must be at most %d characters", f.Label, f.MaxLength)
}

// isBlank mirrors the "absent, null or empty string" checks the clients
// apply: optional fields may arrive as "" and are treated as unset.
func isBlank(val any) bool {
	switch v := val.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	default:
		return false
	}
}

// parseInt accepts the value shapes a JSON body can carry for a numeric
// field: numbers, numeric strings, and json.Number.
func parseInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func stringify(val any) string {
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprint(val)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
