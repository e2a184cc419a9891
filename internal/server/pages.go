package server

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"strings"

	"portfolio-be/internal/pkg/logger"
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/shell.html
var templateFS embed.FS

type View string

const (
	ViewPortfolio View = "portfolio"
	ViewLogin     View = "login"
	ViewDashboard View = "dashboard"
	ViewCallback  View = "callback"
)

const (
	LoginPath     = "/admin/login"
	DashboardPath = "/admin/dashboard"
)

// ResolveRoute maps a request path to the view it renders. Unknown paths,
// including unknown /admin subpaths, fall through to the public portfolio.
func ResolveRoute(path string) View {
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	switch path {
	case "/admin", LoginPath:
		return ViewLogin
	case DashboardPath:
		return ViewDashboard
	case "/admin/callback":
		return ViewCallback
	}
	return ViewPortfolio
}

type shellData struct {
	Title   string
	View    View
	Message string
}

type PageHandler struct {
	gate   service.ISessionGate
	oauth  service.IOAuthService
	shell  *template.Template
	logger logger.ILogger
}

func NewPageHandler(gate service.ISessionGate, oauth service.IOAuthService, log logger.ILogger) *PageHandler {
	return &PageHandler{
		gate:   gate,
		oauth:  oauth,
		shell:  template.Must(template.ParseFS(templateFS, "templates/shell.html")),
		logger: log,
	}
}

func (h *PageHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/*", h.Serve)
}

func (h *PageHandler) Serve(ctx *fiber.Ctx) error {
	switch ResolveRoute(ctx.Path()) {
	case ViewLogin:
		if h.hasSession(ctx) {
			return ctx.Redirect(DashboardPath)
		}
		return h.render(ctx, fiber.StatusOK, shellData{Title: "Admin Login", View: ViewLogin})
	case ViewDashboard:
		if !h.hasSession(ctx) {
			return ctx.Redirect(LoginPath)
		}
		return h.render(ctx, fiber.StatusOK, shellData{Title: "Admin Dashboard", View: ViewDashboard})
	case ViewCallback:
		err := h.oauth.HandleCallback(ctx.UserContext(), ctx.Query("code"), ctx.Query("state"))
		if err == nil {
			return ctx.Redirect(DashboardPath)
		}
		h.logger.Warn("Pages", "OAuth callback rejected", map[string]interface{}{"error": err.Error()})
		return h.render(ctx, callbackStatus(err), shellData{Title: "Sign-in failed", View: ViewCallback, Message: err.Error()})
	}
	return h.render(ctx, fiber.StatusOK, shellData{Title: "Charchit Dhawan", View: ViewPortfolio})
}

func (h *PageHandler) hasSession(ctx *fiber.Ctx) bool {
	token := serverutils.TokenFromRequest(ctx)
	if token == "" {
		return false
	}
	_, err := h.gate.VerifyToken(ctx.UserContext(), token)
	return err == nil
}

func (h *PageHandler) render(ctx *fiber.Ctx, status int, data shellData) error {
	var buf bytes.Buffer
	if err := h.shell.Execute(&buf, data); err != nil {
		return err
	}
	ctx.Type("html", "utf-8")
	return ctx.Status(status).Send(buf.Bytes())
}

// callbackStatus keeps the known OAuth outcomes at 400 and anything else,
// such as a store failure, at 500.
func callbackStatus(err error) int {
	if errors.Is(err, service.ErrInvalidOAuthState) ||
		errors.Is(err, service.ErrMissingAuthCode) ||
		errors.Is(err, service.ErrOAuthUnsupported) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
