package controller

import (
	"mindwell-be/internal/dto"
	"mindwell-be/internal/pkg/serverutils"
	"mindwell-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	SetCalm(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Start)
	h.Get("", c.Show)
	h.Put("calm", c.SetCalm)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	res, err := c.sessionService.Start(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	sessionID := serverutils.SessionID(ctx)
	if sessionID == "" {
		return serverutils.NewApiError(400, "Missing session header")
	}

	res, err := c.sessionService.Show(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) SetCalm(ctx *fiber.Ctx) error {
	sessionID := serverutils.SessionID(ctx)
	if sessionID == "" {
		return serverutils.NewApiError(400, "Missing session header")
	}

	var req dto.SetCalmRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.sessionService.SetCalm(ctx.Context(), sessionID, *req.Calm)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update calm mode", res))
}
