package controller

import (
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHotlineController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type hotlineController struct {
	hotlineService service.IHotlineService
}

func NewHotlineController(hotlineService service.IHotlineService) IHotlineController {
	return &hotlineController{
		hotlineService: hotlineService,
	}
}

func (c *hotlineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/hotline/v1")
	h.Get("", c.List)
}

// List filters the directory by the optional country query. An empty query
// returns the whole table for the country picker.
func (c *hotlineController) List(ctx *fiber.Ctx) error {
	res, err := c.hotlineService.List(ctx.Context(), ctx.Query("country"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list hotlines", res))
}
