package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"candidate-backend/internal/schema"
	"candidate-backend/internal/store"
)

// FieldError is one client-correctable violation. Validation reports all
// of them in a single pass so the UI can highlight every invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError carries an HTTP status and either a field-error list
// (validation) or a single message (everything else).
type AppError struct {
	Status  int
	Message string
	Errors  []FieldError
}

func (e *AppError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("validation failed: %d field error(s)", len(e.Errors))
	}
	return e.Message
}

func ValidationFailed(errs []FieldError) *AppError {
	return &AppError{Status: 400, Errors: errs}
}

func BadRequest(msg string) *AppError {
	return &AppError{Status: 400, Message: msg}
}

func NotFound(entity *schema.Entity) *AppError {
	return &AppError{Status: 404, Message: entity.Label + " not found"}
}

func Conflict(msg string) *AppError {
	return &AppError{Status: 409, Message: msg}
}

// MapStoreError translates store failures into the fixed status contract.
// Returns nil when the error is not one of the anticipated cases; the
// caller then lets the central handler log it and answer a generic 500.
func MapStoreError(entity *schema.Entity, err error) *AppError {
	switch store.ErrorCode(err) {
	case store.CodeUniqueViolation:
		return Conflict(fmt.Sprintf("A %s with this email already exists", entity.Name))
	case store.CodeCheckViolation:
		return BadRequest(fmt.Sprintf("Validation failed: check %s values", constrainedFields(entity)))
	case store.CodeUndefinedTable:
		return &AppError{Status: 500, Message: fmt.Sprintf(
			"Database table %q does not exist. Run: go run ./cmd/init-db", entity.Table)}
	}

	if store.IsConnectionError(err) {
		return &AppError{Status: 500, Message: "Cannot connect to database. Check configuration and that PostgreSQL is running."}
	}

	return nil
}

// ErrorHandler renders AppError with its status and body shape (field
// errors as {"errors": [...]}, everything else as {"error": "..."}) and
// turns any other failure into a logged 500.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *AppError
		if errors.As(err, &appErr) {
			if len(appErr.Errors) > 0 {
				return c.Status(appErr.Status).JSON(fiber.Map{"errors": appErr.Errors})
			}
			return c.Status(appErr.Status).JSON(fiber.Map{"error": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) && fiberErr.Code != fiber.StatusInternalServerError {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		requestID, _ := c.Locals("request_id").(string)
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")

		msg := err.Error()
		if msg == "" {
			msg = "Internal server error"
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
	}
}

// constrainedFields names the columns that carry CHECK constraints, for
// the 23514 hint ("check age and status values").
func constrainedFields(entity *schema.Entity) string {
	var names []string
	for _, f := range entity.Fields {
		if f.Min != nil || f.Max != nil || len(f.Enum) > 0 {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return "field"
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
