package engine

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"candidate-backend/internal/schema"
	"candidate-backend/internal/store"
)

// Handler serves the CRUD resource for one entity schema. Which schema is
// active is a deployment choice; the handler itself is variant-agnostic.
type Handler struct {
	store  *store.Store
	entity *schema.Entity
}

func NewHandler(s *store.Store, entity *schema.Entity) *Handler {
	return &Handler{store: s, entity: entity}
}

func (h *Handler) Entity() *schema.Entity {
	return h.entity
}

// List handles GET /api/<records>. Empty result sets are a valid answer,
// not an error.
func (h *Handler) List(c *fiber.Ctx) error {
	params := ListParams{
		Search: c.Query("search"),
		Filter: c.Query(h.entity.FilterParam),
	}

	sql, args := BuildListSQL(h.entity, params)
	rows, err := store.QueryRows(c.Context(), h.store.Pool, sql, args...)
	if err != nil {
		return h.storeError(fmt.Sprintf("list %s", h.entity.Collection), err)
	}
	if rows == nil {
		rows = []map[string]any{}
	}

	return c.JSON(fiber.Map{h.entity.Collection: rows})
}

// GetByID handles GET /api/<records>/:id.
func (h *Handler) GetByID(c *fiber.Ctx) error {
	id, appErr := h.parseID(c)
	if appErr != nil {
		return appErr
	}

	row, err := store.QueryRow(c.Context(), h.store.Pool, BuildGetSQL(h.entity), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound(h.entity)
		}
		return h.storeError(fmt.Sprintf("get %s/%d", h.entity.Name, id), err)
	}

	return c.JSON(row)
}

// Create handles POST /api/<records>. The store assigns id and timestamps.
func (h *Handler) Create(c *fiber.Ctx) error {
	body, appErr := parseBody(c)
	if appErr != nil {
		return appErr
	}

	if errs := ValidateRecord(h.entity, body, ModeCreate); len(errs) > 0 {
		return ValidationFailed(errs)
	}

	values := NormalizeRecord(h.entity, body)
	row, err := store.QueryRow(c.Context(), h.store.Pool, BuildInsertSQL(h.entity), values...)
	if err != nil {
		return h.storeError(fmt.Sprintf("create %s", h.entity.Name), err)
	}

	return c.Status(fiber.StatusCreated).JSON(row)
}

// Update handles PUT /api/<records>/:id. The row is replaced whole, so the
// body is validated like a create; id and created_at never change.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, appErr := h.parseID(c)
	if appErr != nil {
		return appErr
	}

	body, appErr := parseBody(c)
	if appErr != nil {
		return appErr
	}

	if errs := ValidateRecord(h.entity, body, ModeCreate); len(errs) > 0 {
		return ValidationFailed(errs)
	}

	args := append([]any{id}, NormalizeRecord(h.entity, body)...)
	row, err := store.QueryRow(c.Context(), h.store.Pool, BuildUpdateSQL(h.entity), args...)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound(h.entity)
		}
		return h.storeError(fmt.Sprintf("update %s/%d", h.entity.Name, id), err)
	}

	return c.JSON(row)
}

// Delete handles DELETE /api/<records>/:id. Hard delete; deleting the
// same id twice yields 404 the second time.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, appErr := h.parseID(c)
	if appErr != nil {
		return appErr
	}

	_, err := store.QueryRow(c.Context(), h.store.Pool, BuildDeleteSQL(h.entity), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFound(h.entity)
		}
		return h.storeError(fmt.Sprintf("delete %s/%d", h.entity.Name, id), err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) parseID(c *fiber.Ctx) (int, *AppError) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, BadRequest(fmt.Sprintf("Invalid %s ID", h.entity.Name))
	}
	return id, nil
}

func parseBody(c *fiber.Ctx) (map[string]any, *AppError) {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return nil, BadRequest("Invalid JSON body")
	}
	return body, nil
}

// storeError maps anticipated store failures to their fixed responses and
// hands anything else, wrapped with context, to the central error handler.
func (h *Handler) storeError(op string, err error) error {
	if appErr := MapStoreError(h.entity, err); appErr != nil {
		return appErr
	}
	return fmt.Errorf("%s: %w", op, err)
}
