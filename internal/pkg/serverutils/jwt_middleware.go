package serverutils

import (
	"context"
	"strings"

	"portfolio-be/internal/entity"

	"github.com/gofiber/fiber/v2"
)

const (
	TokenCookieName = "admin_token"

	LocalUserID  = "user_id"
	LocalSession = "session"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*entity.Session, error)
}

// TokenFromRequest reads the bearer header, falling back to the cookie set
// at login.
func TokenFromRequest(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return ctx.Cookies(TokenCookieName)
}

// JwtMiddleware admits a request only when its token names the stored
// session.
func JwtMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := TokenFromRequest(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing token"))
		}

		session, err := verifier.VerifyToken(ctx.UserContext(), tokenStr)
		if err != nil || session == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token"))
		}

		ctx.Locals(LocalUserID, session.Id)
		ctx.Locals(LocalSession, session)
		return ctx.Next()
	}
}

// SessionFromCtx returns the session placed by JwtMiddleware.
func SessionFromCtx(ctx *fiber.Ctx) *entity.Session {
	session, _ := ctx.Locals(LocalSession).(*entity.Session)
	return session
}
