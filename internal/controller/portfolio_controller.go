package controller

import (
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPortfolioController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	Writing(ctx *fiber.Ctx) error
	Post(ctx *fiber.Ctx) error
	Experience(ctx *fiber.Ctx) error
}

type portfolioController struct {
	service service.IPortfolioService
}

func NewPortfolioController(service service.IPortfolioService) IPortfolioController {
	return &portfolioController{service: service}
}

func (c *portfolioController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/portfolio")
	h.Get("/", c.Overview)
	h.Get("/writing", c.Writing)
	h.Get("/writing/:id", c.Post)
	h.Get("/experience", c.Experience)
}

func (c *portfolioController) Overview(ctx *fiber.Ctx) error {
	res, err := c.service.Overview(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Portfolio", res))
}

func (c *portfolioController) Writing(ctx *fiber.Ctx) error {
	posts, err := c.service.Writing(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Writing", posts))
}

func (c *portfolioController) Post(ctx *fiber.Ctx) error {
	post, err := c.service.Post(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Post", post))
}

func (c *portfolioController) Experience(ctx *fiber.Ctx) error {
	entries, err := c.service.Experience(ctx.UserContext())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Experience", entries))
}
