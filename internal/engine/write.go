package engine

import (
	"fmt"
	"strings"

	"candidate-backend/internal/schema"
)

// NormalizeRecord converts a validated body into the bound values for a
// write, in schema field order: strings trimmed, email lowercased,
// numerics parsed, blank optionals nulled, defaults applied. This runs
// only after validation passes; it is the persistence-side counterpart
// of ValidateRecord and the only place input values are transformed.
func NormalizeRecord(entity *schema.Entity, body map[string]any) []any {
	values := make([]any, 0, len(entity.Fields))
	for i := range entity.Fields {
		values = append(values, normalizeField(&entity.Fields[i], body[entity.Fields[i].Name]))
	}
	return values
}

func normalizeField(f *schema.Field, val any) any {
	if isBlank(val) {
		if f.Default != nil {
			return f.Default
		}
		return nil
	}

	if f.IsNumeric() {
		n, ok := parseInt(val)
		if !ok {
			return nil
		}
		return n
	}

	s := strings.TrimSpace(stringify(val))
	if s == "" {
		if f.Default != nil {
			return f.Default
		}
		return nil
	}
	if f.Lowercase {
		s = strings.ToLower(s)
	}
	return s
}

// BuildInsertSQL builds the parameterized INSERT returning the full row.
func BuildInsertSQL(entity *schema.Entity) string {
	names := entity.FieldNames()
	placeholders := make([]string, len(names))
	for i := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		entity.Table,
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(entity.Columns(), ", "))
}

// BuildUpdateSQL builds the whole-row UPDATE by id. Every writable field
// is replaced and updated_at advances; there are no partial updates.
func BuildUpdateSQL(entity *schema.Entity) string {
	names := entity.FieldNames()
	sets := make([]string, 0, len(names)+1)
	for i, name := range names {
		sets = append(sets, fmt.Sprintf("%s = $%d", name, i+2))
	}
	sets = append(sets, "updated_at = NOW()")
	return fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s",
		entity.Table,
		strings.Join(sets, ", "),
		strings.Join(entity.Columns(), ", "))
}

// BuildDeleteSQL builds the hard delete by id, returning the deleted id
// so the caller can distinguish "deleted" from "was never there".
func BuildDeleteSQL(entity *schema.Entity) string {
	return fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING id", entity.Table)
}
