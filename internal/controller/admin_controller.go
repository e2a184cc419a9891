package controller

import (
	"portfolio-be/internal/pkg/serverutils"
	"portfolio-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Dashboard(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
	Logs(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

// RegisterRoutes expects r to be guarded by the session middleware already.
func (c *adminController) RegisterRoutes(r fiber.Router) {
	r.Get("/dashboard", c.Dashboard)
	r.Get("/profile", c.Profile)
	r.Get("/logs", c.Logs)
}

func (c *adminController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.UserContext(), serverutils.SessionFromCtx(ctx))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}

func (c *adminController) Profile(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Profile", c.service.Profile()))
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	res, err := c.service.Logs(ctx.Query("level"), ctx.QueryInt("limit", 50), ctx.QueryInt("offset", 0))
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}
