package serverutils

import (
	"errors"

	"portfolio-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware turns errors that escaped a handler into the JSON
// envelope. Handlers that map their own errors never reach it.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		details := map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": code,
			"error":  err.Error(),
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled request error", details)
		} else {
			log.Warn("HTTP", "Request failed", details)
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
