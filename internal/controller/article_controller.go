package controller

import (
	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IArticleController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	GenerateDraft(ctx *fiber.Ctx) error
	Summarize(ctx *fiber.Ctx) error
	Related(ctx *fiber.Ctx) error
	ReadAloud(ctx *fiber.Ctx) error
}

type articleController struct {
	articleService service.IArticleService
}

func NewArticleController(articleService service.IArticleService) IArticleController {
	return &articleController{
		articleService: articleService,
	}
}

func (c *articleController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/article/v1")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("generate", c.GenerateDraft)
	h.Get(":slug", c.Show)
	h.Get(":slug/summary", c.Summarize)
	h.Get(":slug/related", c.Related)
	h.Get(":slug/read-aloud", c.ReadAloud)
}

func (c *articleController) List(ctx *fiber.Ctx) error {
	res, err := c.articleService.GetAll(ctx.Context(), ctx.Query("tag"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list articles", res))
}

func (c *articleController) Show(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")
	sessionID := serverutils.SessionID(ctx)

	res, err := c.articleService.Show(ctx.Context(), slug, sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show article", res))
}

func (c *articleController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateArticleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.articleService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create article", res))
}

func (c *articleController) GenerateDraft(ctx *fiber.Ctx) error {
	var req dto.GenerateDraftRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.articleService.GenerateDraft(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate draft", res))
}

func (c *articleController) Summarize(ctx *fiber.Ctx) error {
	res, err := c.articleService.Summarize(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success summarize article", res))
}

func (c *articleController) Related(ctx *fiber.Ctx) error {
	res, err := c.articleService.Related(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list related articles", res))
}

func (c *articleController) ReadAloud(ctx *fiber.Ctx) error {
	res, err := c.articleService.ReadAloud(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success assemble read aloud text", res))
}
