package engine

import (
	"strings"
	"testing"

	"candidate-backend/internal/schema"
)

func TestNormalizeRecord_Candidate(t *testing.T) {
	entity := schema.Candidate()

	values := NormalizeRecord(entity, map[string]any{
		"name":   "  Ann  ",
		"age":    "30",
		"email":  "  ANN@X.COM ",
		"phone":  "",
		"skills": "  Go, SQL ",
	})

	if len(values) != len(entity.Fields) {
		t.Fatalf("expected one value per field, got %d", len(values))
	}
	if values[0] != "Ann" {
		t.Fatalf("expected trimmed name, got %v", values[0])
	}
	if values[1] != 30 {
		t.Fatalf("expected parsed age, got %v (%T)", values[1], values[1])
	}
	if values[2] != "ann@x.com" {
		t.Fatalf("expected lowercased email, got %v", values[2])
	}
	if values[3] != nil {
		t.Fatalf("expected blank optional phone to become nil, got %v", values[3])
	}
	if values[4] != "Go, SQL" {
		t.Fatalf("expected trimmed skills, got %v", values[4])
	}

	// status is the last field; absent means the default applies.
	if values[len(values)-1] != "Applied" {
		t.Fatalf("expected default status Applied, got %v", values[len(values)-1])
	}
}

func TestNormalizeRecord_AbsentOptionalsAreNil(t *testing.T) {
	entity := schema.Student()

	values := NormalizeRecord(entity, map[string]any{
		"name":  "Bo",
		"age":   float64(20),
		"email": "bo@x.com",
	})

	// s_roll is field 0; phone, s_code, address, course_name follow email.
	if values[0] != nil {
		t.Fatalf("expected nil s_roll, got %v", values[0])
	}
	for i := 4; i < len(values); i++ {
		if values[i] != nil {
			t.Fatalf("expected nil for absent optional field %s, got %v",
				entity.Fields[i].Name, values[i])
		}
	}
}

func TestBuildInsertSQL(t *testing.T) {
	entity := schema.Candidate()

	sql := BuildInsertSQL(entity)
	if !strings.HasPrefix(sql, "INSERT INTO candidates (name, age, email, phone, skills, experience, applied_position, status) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)") {
		t.Fatalf("unexpected insert statement: %s", sql)
	}
	if !strings.Contains(sql, "RETURNING id, name") || !strings.Contains(sql, "created_at, updated_at") {
		t.Fatalf("insert must return the full row: %s", sql)
	}
}

func TestBuildUpdateSQL(t *testing.T) {
	entity := schema.Candidate()

	sql := BuildUpdateSQL(entity)
	if !strings.Contains(sql, "UPDATE candidates SET name = $2") {
		t.Fatalf("expected whole-row update keyed by $1: %s", sql)
	}
	if !strings.Contains(sql, "status = $9") {
		t.Fatalf("expected every writable field replaced: %s", sql)
	}
	if !strings.Contains(sql, "updated_at = NOW()") {
		t.Fatalf("expected updated_at to advance: %s", sql)
	}
	if strings.Contains(sql, "created_at =") {
		t.Fatalf("created_at must be immutable: %s", sql)
	}
	if !strings.Contains(sql, "WHERE id = $1 RETURNING") {
		t.Fatalf("expected update by id returning the row: %s", sql)
	}
}

func TestBuildDeleteSQL(t *testing.T) {
	entity := schema.Student()

	sql := BuildDeleteSQL(entity)
	if sql != "DELETE FROM students WHERE id = $1 RETURNING id" {
		t.Fatalf("unexpected delete statement: %s", sql)
	}
}
