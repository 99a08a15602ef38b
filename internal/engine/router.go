package engine

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RegisterRoutes mounts the resource under /api/<collection> plus the
// health probe. API routes are registered before the static UI so /api/*
// is never served as a file.
func RegisterRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": h.entity.Label + " Management API is running",
		})
	})

	records := api.Group("/" + h.entity.Collection)
	records.Get("/", h.List)
	records.Get("/:id", h.GetByID)
	records.Post("/", h.Create)
	records.Put("/:id", h.Update)
	records.Delete("/:id", h.Delete)
}

// RequestID tags every request with a fresh id, echoed in the response
// header and attached to server-side logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals("request_id", id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}
