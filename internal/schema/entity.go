package schema

// Entity describes one record table: its writable fields, which columns
// free-text search covers, and which single column the exact-match filter
// applies to. The CRUD engine is parameterized entirely by this value.
type Entity struct {
	Name       string // singular, for messages ("candidate")
	Label      string // capitalized, for messages ("Candidate")
	Table      string // Postgres table name
	Collection string // route segment and list-response key ("candidates")

	FilterParam   string // query parameter name ("status", "course")
	FilterColumn  string // column the filter binds to
	SearchColumns []string

	Fields []Field
	Rules  []Rule
}

// GetField returns a pointer to the field with the given name, or nil.
func (e *Entity) GetField(name string) *Field {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}

// HasField returns true if the entity has a writable field with the given name.
func (e *Entity) HasField(name string) bool {
	return e.GetField(name) != nil
}

// FieldNames returns the writable field names in declaration order.
func (e *Entity) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Name
	}
	return names
}

// Columns returns the full select list: the system columns wrap the
// writable fields. id is the sole primary key and is never client-supplied.
func (e *Entity) Columns() []string {
	cols := make([]string, 0, len(e.Fields)+3)
	cols = append(cols, "id")
	cols = append(cols, e.FieldNames()...)
	cols = append(cols, "created_at", "updated_at")
	return cols
}

// RequiredFields returns the fields checked even when absent on create.
func (e *Entity) RequiredFields() []Field {
	var fields []Field
	for _, f := range e.Fields {
		if f.Required {
			fields = append(fields, f)
		}
	}
	return fields
}
