package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"candidate-backend/internal/config"
	"candidate-backend/internal/engine"
	"candidate-backend/internal/logging"
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

	log := logging.Configure(logging.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	log.Info().
		Int("port", cfg.Server.Port).
		Str("variant", cfg.Variant).
		Msg("config loaded")

	db, err := store.New(ctx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("database connected")

	entity := schema.ForVariant(cfg.Variant)
	probeTable(ctx, db, entity, log)

	app := fiber.New(fiber.Config{
		ErrorHandler: engine.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(engine.RequestID())

	handler := engine.NewHandler(db, entity)
	engine.RegisterRoutes(app, handler)

	// Unknown /api paths answer JSON, not the index page.
	app.Use("/api", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	app.Static("/", cfg.Server.StaticDir)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info().Str("addr", addr).Msg("starting server")
		if err := app.Listen(addr); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

// probeTable reports at startup whether init-db has been applied, so a
// misconfigured deployment fails loudly before the first request.
func probeTable(ctx context.Context, db *store.Store, entity *schema.Entity, log zerolog.Logger) {
	if err := store.NewMigrator(db).TableReady(ctx, entity); err != nil {
		log.Warn().Err(err).
			Str("table", entity.Table).
			Msg("record table is not ready; run: go run ./cmd/init-db")
		return
	}
	log.Info().Str("table", entity.Table).Msg("record table is ready")
}
