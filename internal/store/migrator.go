package store

import (
	"context"
	"fmt"
	"strings"

	"candidate-backend/internal/schema"
)

type Migrator struct {
	store *Store
}

func NewMigrator(store *Store) *Migrator {
	return &Migrator{store: store}
}

// Migrate ensures the record table matches the entity schema. Creates the
// table if it doesn't exist, or adds missing columns to an existing one.
func (m *Migrator) Migrate(ctx context.Context, entity *schema.Entity) error {
	exists, err := m.tableExists(ctx, entity.Table)
	if err != nil {
		return fmt.Errorf("check table exists: %w", err)
	}

	if !exists {
		return m.createTable(ctx, entity)
	}

	return m.alterTable(ctx, entity)
}

// TableReady runs a cheap probe so startup can report whether init-db
// has been applied yet.
func (m *Migrator) TableReady(ctx context.Context, entity *schema.Entity) error {
	_, err := m.store.Pool.Exec(ctx, fmt.Sprintf("SELECT 1 FROM %s LIMIT 1", entity.Table))
	return err
}

func (m *Migrator) tableExists(ctx context.Context, tableName string) (bool, error) {
	var exists bool
	err := m.store.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM information_schema.tables WHERE table_name = $1 AND table_schema = 'public')`,
		tableName,
	).Scan(&exists)
	return exists, err
}

func (m *Migrator) createTable(ctx context.Context, entity *schema.Entity) error {
	cols := []string{"id SERIAL PRIMARY KEY"}
	for i := range entity.Fields {
		cols = append(cols, buildColumnDef(&entity.Fields[i]))
	}
	cols = append(cols,
		"created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()",
		"updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()",
	)

	sql := fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", entity.Table, strings.Join(cols, ",\n  "))

	if _, err := m.store.Pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("create table %s: %w", entity.Table, err)
	}
	return nil
}

func (m *Migrator) alterTable(ctx context.Context, entity *schema.Entity) error {
	existing, err := m.getColumns(ctx, entity.Table)
	if err != nil {
		return fmt.Errorf("get columns for %s: %w", entity.Table, err)
	}

	for i := range entity.Fields {
		f := &entity.Fields[i]
		if _, ok := existing[f.Name]; ok {
			continue
		}
		// New columns are added nullable; the CHECK and UNIQUE constraints
		// only apply to tables created from scratch.
		sql := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", entity.Table, f.Name, f.PostgresType())
		if _, err := m.store.Pool.Exec(ctx, sql); err != nil {
			return fmt.Errorf("add column %s.%s: %w", entity.Table, f.Name, err)
		}
	}
	return nil
}

func buildColumnDef(f *schema.Field) string {
	col := f.Name + " " + f.PostgresType()

	if f.Required {
		col += " NOT NULL"
	}
	if f.Type == "email" {
		col += " UNIQUE"
	}
	if f.Default != nil {
		col += fmt.Sprintf(" DEFAULT '%v'", f.Default)
	}

	// Range and enum constraints back the validation layer; a row that
	// slips past it still fails here with a CHECK violation.
	if f.Min != nil && f.Max != nil {
		col += fmt.Sprintf(" CHECK (%s >= %d AND %s <= %d)", f.Name, *f.Min, f.Name, *f.Max)
	} else if f.Min != nil {
		col += fmt.Sprintf(" CHECK (%s >= %d)", f.Name, *f.Min)
	}
	if len(f.Enum) > 0 {
		quoted := make([]string, len(f.Enum))
		for i, v := range f.Enum {
			quoted[i] = "'" + v + "'"
		}
		col += fmt.Sprintf(" CHECK (%s IN (%s))", f.Name, strings.Join(quoted, ", "))
	}

	return col
}

func (m *Migrator) getColumns(ctx context.Context, tableName string) (map[string]string, error) {
	rows, err := m.store.Pool.Query(ctx,
		`SELECT column_name, data_type FROM information_schema.columns WHERE table_name = $1 AND table_schema = 'public'`,
		tableName,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]string)
	for rows.Next() {
		var name, dataType string
		if err := rows.Scan(&name, &dataType); err != nil {
			return nil, err
		}
		cols[name] = dataType
	}
	return cols, rows.Err()
}
