package handler

import (
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/dto"
	"github.com/fadilmartias/bid-analyzer/internal/middleware"
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"github.com/fadilmartias/bid-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type MonitorHandler struct {
	uc *usecase.MonitorUsecase
}

func NewMonitorHandler(uc *usecase.MonitorUsecase) *MonitorHandler {
	return &MonitorHandler{uc: uc}
}

func (h *MonitorHandler) RegisterRoutes(app fiber.Router) {
	g := app.Group("/tenders")
	g.Get("/", h.Current)
	g.Get("/keywords", h.Keywords)
	g.Post("/search", middleware.RateLimiter(10, time.Minute), h.Search)
	g.Post("/translate", middleware.RateLimiter(20, time.Minute), h.Translate)
}

func (h *MonitorHandler) Keywords(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get keywords",
		Data:    fiber.Map{"keywords": h.uc.Keywords(c.UserContext())},
	})
}

func (h *MonitorHandler) Search(c *fiber.Ctx) error {
	var req dto.TenderSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	view, err := h.uc.Search(c.UserContext(), req.Keywords)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search tenders",
		Data:    view,
	})
}

func (h *MonitorHandler) Current(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get tenders",
		Data:    h.uc.Current(),
	})
}

func (h *MonitorHandler) Translate(c *fiber.Ctx) error {
	view, err := h.uc.Translate(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success toggle tender language",
		Data:    view,
	})
}
