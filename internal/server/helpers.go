package server

import (
	"errors"

	"healthforum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps the core's error kinds to HTTP status codes.
func statusForError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return fiber.StatusNotFound
		case models.CodeValidation:
			return fiber.StatusBadRequest
		case models.CodeUnauthorized, models.CodeInvalidCredentials:
			return fiber.StatusUnauthorized
		case models.CodeForbidden:
			return fiber.StatusForbidden
		case models.CodeDuplicateEmail:
			return fiber.StatusConflict
		}
	}
	return fiber.StatusInternalServerError
}

// fail writes the standardized error response for err.
func fail(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, statusForError(err), err)
}
