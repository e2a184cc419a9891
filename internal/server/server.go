package server

import (
	"log"

	"portfolio-be/internal/bootstrap"
	"portfolio-be/internal/config"
	"portfolio-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Static("/", cfg.App.StaticDir)

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.PortfolioController.RegisterRoutes(api)
	c.ContactController.RegisterRoutes(api)

	admin := api.Group("/admin", serverutils.JwtMiddleware(c.SessionGate))
	c.AdminController.RegisterRoutes(admin)
	c.PostController.RegisterRoutes(admin)
	c.ExperienceController.RegisterRoutes(admin)

	// Unmatched /api paths must not fall through to the page shell.
	api.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	NewPageHandler(c.SessionGate, c.OAuthService, c.Logger).RegisterRoutes(app)
}
