package handler

import (
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/dto"
	"github.com/fadilmartias/bid-analyzer/internal/middleware"
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"github.com/fadilmartias/bid-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ChecklistHandler struct {
	uc *usecase.ChecklistUsecase
}

func NewChecklistHandler(uc *usecase.ChecklistUsecase) *ChecklistHandler {
	return &ChecklistHandler{uc: uc}
}

func (h *ChecklistHandler) RegisterRoutes(app fiber.Router) {
	g := app.Group("/checklist")
	g.Get("/", h.Current)
	g.Get("/types", h.Types)
	g.Post("/", middleware.RateLimiter(10, time.Minute), h.Generate)
	g.Put("/sections/:index/notes", h.SetNote)
	g.Post("/translate", middleware.RateLimiter(20, time.Minute), h.Translate)
}

func (h *ChecklistHandler) Types(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get tender types",
		Data:    h.uc.TenderTypes(),
	})
}

func (h *ChecklistHandler) Generate(c *fiber.Ctx) error {
	var req dto.ChecklistRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	view, err := h.uc.Generate(c.UserContext(), req.TenderType)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success generate checklist",
		Data:    view,
	})
}

func (h *ChecklistHandler) SetNote(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "section index must be a number",
		}, err)
	}
	var req dto.ChecklistNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	view, err := h.uc.SetNote(index, req.Note)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update note",
		Data:    view,
	})
}

func (h *ChecklistHandler) Current(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get checklist",
		Data:    h.uc.Current(),
	})
}

func (h *ChecklistHandler) Translate(c *fiber.Ctx) error {
	view, err := h.uc.Translate(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success toggle checklist language",
		Data:    view,
	})
}
