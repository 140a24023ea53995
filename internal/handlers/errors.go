package handlers

import (
	"github.com/alrodriguezdg/youstream/internal/apperrors"
	"github.com/alrodriguezdg/youstream/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// statusFor is the single place error kinds turn into HTTP statuses.
// Conflicts map to 400, not 409: existing clients key off that code.
func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation, apperrors.KindConflict:
		return fiber.StatusBadRequest
	case apperrors.KindAuth:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(dto.ErrorResponse{
		Success: false,
		Message: apperrors.MessageOf(err),
	})
}
