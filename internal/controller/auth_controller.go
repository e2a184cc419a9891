package controller

import (
	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
	GitHubLogin(ctx *fiber.Ctx) error
	GitHubCheck(ctx *fiber.Ctx) error
}

type authController struct {
	gate         service.ISessionGate
	oauth        service.IOAuthService
	secureCookie bool
}

func NewAuthController(gate service.ISessionGate, oauth service.IOAuthService, secureCookie bool) IAuthController {
	return &authController{gate: gate, oauth: oauth, secureCookie: secureCookie}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
	h.Get("/session", c.Session)
	h.Get("/github", c.GitHubLogin)
	h.Get("/github/check", c.GitHubCheck)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	session, err := c.gate.Authenticate(ctx.UserContext(), req.Password)
	if err != nil {
		return respondError(ctx, err)
	}
	token, err := c.gate.IssueToken(session)
	if err != nil {
		return err
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.TokenCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   c.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return ctx.JSON(serverutils.SuccessResponse("Login successful", dto.LoginResponse{
		AccessToken: token,
		User:        session,
	}))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.gate.SignOut(ctx.UserContext()); err != nil {
		return err
	}
	ctx.ClearCookie(serverutils.TokenCookieName)
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}

func (c *authController) Session(ctx *fiber.Ctx) error {
	res := dto.SessionResponse{}
	if token := serverutils.TokenFromRequest(ctx); token != "" {
		if session, err := c.gate.VerifyToken(ctx.UserContext(), token); err == nil {
			res.IsAuthenticated = true
			res.User = session
		}
	}
	return ctx.JSON(serverutils.SuccessResponse("Session", res))
}

// GitHubLogin redirects to the authorize URL, or returns it as JSON when
// called with ?redirect=false.
func (c *authController) GitHubLogin(ctx *fiber.Ctx) error {
	url, err := c.oauth.LoginURL(ctx.UserContext())
	if err != nil {
		return err
	}
	if !ctx.QueryBool("redirect", true) {
		return ctx.JSON(serverutils.SuccessResponse("GitHub authorize URL", dto.OAuthLoginResponse{URL: url}))
	}
	return ctx.Redirect(url)
}

func (c *authController) GitHubCheck(ctx *fiber.Ctx) error {
	session, err := c.oauth.CheckToken(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	if session == nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, service.ErrUnauthorized.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("GitHub identity verified", dto.SessionResponse{
		IsAuthenticated: true,
		User:            session,
	}))
}
