package engine

import (
	"fmt"
	"strings"

	"candidate-backend/internal/schema"
)

// ListParams carries the two optional list refinements. Filtering is
// purely additive: search and filter clauses combine with AND.
type ListParams struct {
	Search string // free text, matched against the entity's search columns
	Filter string // exact match on the entity's filter column
}

type paramBuilder struct {
	params []any
	n      int
}

func (p *paramBuilder) Add(v any) string {
	p.n++
	p.params = append(p.params, v)
	return fmt.Sprintf("$%d", p.n)
}

// BuildListSQL assembles the parameterized list statement. The search term
// becomes one bound parameter shared by every ILIKE disjunct, since each
// column is tested against the same wildcard-wrapped value. Ordering is
// fixed newest-first; the result is never paginated.
func BuildListSQL(entity *schema.Entity, p ListParams) (string, []any) {
	pb := &paramBuilder{}
	var where []string

	if term := strings.TrimSpace(p.Search); term != "" {
		ph := pb.Add("%" + term + "%")
		parts := make([]string, len(entity.SearchColumns))
		for i, col := range entity.SearchColumns {
			parts[i] = fmt.Sprintf("%s ILIKE %s", col, ph)
		}
		where = append(where, "("+strings.Join(parts, " OR ")+")")
	}

	if val := strings.TrimSpace(p.Filter); val != "" {
		where = append(where, fmt.Sprintf("%s = %s", entity.FilterColumn, pb.Add(val)))
	}

	sql := fmt.Sprintf("SELECT %s FROM %s", strings.Join(entity.Columns(), ", "), entity.Table)
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	return sql, pb.params
}

// BuildGetSQL fetches one record by id.
func BuildGetSQL(entity *schema.Entity) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE id = $1",
		strings.Join(entity.Columns(), ", "), entity.Table)
}
