package store

import (
	"strings"
	"testing"

	"candidate-backend/internal/schema"
)

func TestBuildColumnDefConstraints(t *testing.T) {
	e := schema.Candidate()

	age := buildColumnDef(e.GetField("age"))
	if !strings.Contains(age, "NOT NULL") || !strings.Contains(age, "CHECK (age >= 18 AND age <= 120)") {
		t.Fatalf("unexpected age column def: %s", age)
	}

	email := buildColumnDef(e.GetField("email"))
	if !strings.Contains(email, "UNIQUE") {
		t.Fatalf("email must be unique: %s", email)
	}

	status := buildColumnDef(e.GetField("status"))
	if !strings.Contains(status, "DEFAULT 'Applied'") {
		t.Fatalf("status must default to Applied: %s", status)
	}
	if !strings.Contains(status, "CHECK (status IN ('Applied', 'Interviewing', 'Hired', 'Rejected'))") {
		t.Fatalf("status enum not enforced: %s", status)
	}
}

func TestBuildColumnDefMinOnly(t *testing.T) {
	phone := buildColumnDef(schema.Student().GetField("phone"))
	if !strings.Contains(phone, "CHECK (phone >= 0)") {
		t.Fatalf("student phone must be non-negative: %s", phone)
	}
	if strings.Contains(phone, "NOT NULL") {
		t.Fatalf("optional column must be nullable: %s", phone)
	}
}

func TestBuildColumnDefOptionalText(t *testing.T) {
	skills := buildColumnDef(schema.Candidate().GetField("skills"))
	if skills != "skills TEXT" {
		t.Fatalf("unexpected skills column def: %s", skills)
	}
}
