// Command init-db applies the active variant's table schema once, the
// setup step the server's startup probe checks for.
package main

import (
	"context"
	"fmt"
	"os"

	"candidate-backend/internal/config"
	"candidate-backend/internal/schema"
	"candidate-backend/internal/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	entity := schema.ForVariant(cfg.Variant)

	db, err := store.New(ctx, cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		if store.ErrorCode(err) == store.CodeInvalidCatalog {
			fmt.Fprintf(os.Stderr, "→ Create the database first: CREATE DATABASE %s;\n", cfg.Database.Name)
		}
		os.Exit(1)
	}
	defer db.Close()

	if err := store.NewMigrator(db).Migrate(ctx, entity); err != nil {
		fmt.Fprintf(os.Stderr, "schema application failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Database schema applied successfully (table %q).\n", entity.Table)
}
