package controller

import (
	"errors"

	"portfolio-be/internal/editor"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, editor.ErrNoActiveDraft):
		return fiber.StatusConflict
	case errors.Is(err, editor.ErrConfirmationRequired):
		return fiber.StatusPreconditionRequired
	case errors.Is(err, editor.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, editor.ErrUnknownField), errors.Is(err, editor.ErrInvalidField):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrOAuthUnsupported),
		errors.Is(err, service.ErrInvalidOAuthState),
		errors.Is(err, service.ErrMissingAuthCode):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrRemoteUnavailable):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// respondError writes known errors with their status. Anything else is
// returned so the error middleware logs it.
func respondError(ctx *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code == fiber.StatusInternalServerError {
		return err
	}
	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
}
