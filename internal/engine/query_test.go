package engine

import (
	"strings"
	"testing"

	"candidate-backend/internal/schema"
)

func TestBuildListSQL_NoParams(t *testing.T) {
	entity := schema.Candidate()

	sql, params := BuildListSQL(entity, ListParams{})
	if len(params) != 0 {
		t.Fatalf("expected no params, got %v", params)
	}
	if strings.Contains(sql, "WHERE") {
		t.Fatalf("expected no WHERE clause, got %s", sql)
	}
	if !strings.HasSuffix(sql, "ORDER BY created_at DESC") {
		t.Fatalf("expected fixed newest-first ordering, got %s", sql)
	}
	if strings.Contains(sql, "LIMIT") {
		t.Fatalf("list query must not paginate, got %s", sql)
	}
}

func TestBuildListSQL_SearchSharesOneParam(t *testing.T) {
	entity := schema.Candidate()

	sql, params := BuildListSQL(entity, ListParams{Search: "ann"})
	if len(params) != 1 {
		t.Fatalf("expected a single shared search param, got %v", params)
	}
	if params[0] != "%ann%" {
		t.Fatalf("expected wildcard-wrapped term, got %v", params[0])
	}

	// Every search column tests the same bound parameter.
	if got := strings.Count(sql, "$1"); got != len(entity.SearchColumns) {
		t.Fatalf("expected %d uses of $1, got %d in %s", len(entity.SearchColumns), got, sql)
	}
	for _, col := range entity.SearchColumns {
		if !strings.Contains(sql, col+" ILIKE $1") {
			t.Fatalf("expected %s in the disjunction, got %s", col, sql)
		}
	}
	if !strings.Contains(sql, " OR ") {
		t.Fatalf("expected OR-joined disjuncts, got %s", sql)
	}
}

func TestBuildListSQL_FilterIsConjunctive(t *testing.T) {
	entity := schema.Candidate()

	sql, params := BuildListSQL(entity, ListParams{Search: "go", Filter: "Hired"})
	if len(params) != 2 {
		t.Fatalf("expected search + filter params, got %v", params)
	}
	if params[1] != "Hired" {
		t.Fatalf("expected exact-match filter param, got %v", params[1])
	}
	if !strings.Contains(sql, ") AND status = $2") {
		t.Fatalf("expected filter ANDed after the search disjunction, got %s", sql)
	}
}

func TestBuildListSQL_BlankParamsIgnored(t *testing.T) {
	entity := schema.Candidate()

	sql, params := BuildListSQL(entity, ListParams{Search: "   ", Filter: "\t"})
	if len(params) != 0 || strings.Contains(sql, "WHERE") {
		t.Fatalf("blank params must not filter, got %s %v", sql, params)
	}
}

func TestBuildListSQL_StudentVariantColumns(t *testing.T) {
	entity := schema.Student()

	sql, _ := BuildListSQL(entity, ListParams{Search: "x", Filter: "Math"})
	if !strings.Contains(sql, "course_name ILIKE $1") {
		t.Fatalf("expected course_name among search columns, got %s", sql)
	}
	if !strings.Contains(sql, "course_name = $2") {
		t.Fatalf("expected filter bound to course_name, got %s", sql)
	}
	if !strings.Contains(sql, "FROM students") {
		t.Fatalf("expected students table, got %s", sql)
	}
}
