package schema

import (
	"reflect"
	"testing"
)

func TestCandidateColumnsOrder(t *testing.T) {
	want := []string{
		"id", "name", "age", "email", "phone", "skills", "experience",
		"applied_position", "status", "created_at", "updated_at",
	}
	got := Candidate().Columns()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
}

func TestForVariant(t *testing.T) {
	if e := ForVariant("student"); e.Name != "student" {
		t.Fatalf("expected student entity, got %s", e.Name)
	}
	if e := ForVariant("candidate"); e.Name != "candidate" {
		t.Fatalf("expected candidate entity, got %s", e.Name)
	}
	// Unrecognized names fall back to the default variant.
	if e := ForVariant(""); e.Name != "candidate" {
		t.Fatalf("expected candidate fallback, got %s", e.Name)
	}
}

func TestGetField(t *testing.T) {
	e := Candidate()

	f := e.GetField("email")
	if f == nil || f.Type != "email" || !f.Required {
		t.Fatalf("unexpected email field: %+v", f)
	}
	if e.GetField("id") != nil {
		t.Fatal("id is not a writable field")
	}
	if e.HasField("no_such_field") {
		t.Fatal("unexpected field reported present")
	}
}

func TestRequiredFields(t *testing.T) {
	var names []string
	for _, f := range Candidate().RequiredFields() {
		names = append(names, f.Name)
	}
	want := []string{"name", "age", "email"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("required = %v, want %v", names, want)
	}
}

func TestPostgresType(t *testing.T) {
	cases := []struct {
		field Field
		want  string
	}{
		{Field{Type: "int"}, "INTEGER"},
		{Field{Type: "string", MaxLength: 255}, "VARCHAR(255)"},
		{Field{Type: "email", MaxLength: 100}, "VARCHAR(100)"},
		{Field{Type: "string"}, "TEXT"},
	}
	for _, c := range cases {
		if got := c.field.PostgresType(); got != c.want {
			t.Fatalf("PostgresType(%+v) = %s, want %s", c.field, got, c.want)
		}
	}
}

func TestStatusEnumClosed(t *testing.T) {
	f := Candidate().GetField("status")
	if f == nil {
		t.Fatal("candidate must have a status field")
	}
	want := []string{"Applied", "Interviewing", "Hired", "Rejected"}
	if !reflect.DeepEqual(f.Enum, want) {
		t.Fatalf("status enum = %v, want %v", f.Enum, want)
	}
	if f.Default != "Applied" {
		t.Fatalf("status default = %v, want Applied", f.Default)
	}
}
