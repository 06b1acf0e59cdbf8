package serverutils

import (
	"errors"

	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates service errors into structured HTTP
// responses. Nothing below the controllers is allowed to leak a raw error
// past this point.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, verr.Error()))
		case errors.Is(err, apperror.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid content format"})
		case errors.Is(err, apperror.ErrInvalidToken):
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		case errors.Is(err, apperror.ErrUnauthorized):
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
		case errors.Is(err, apperror.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Content not found"})
		case errors.Is(err, apperror.ErrAssistantUnavailable):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Assistant is not available"})
		}

		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			return ctx.Status(ferr.Code).JSON(ErrorResponse(ferr.Code, ferr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
