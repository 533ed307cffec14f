package handler

import (
	"github.com/fadilmartias/bid-analyzer/internal/dto"
	"github.com/fadilmartias/bid-analyzer/internal/response"
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"github.com/fadilmartias/bid-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
)

type HistoryHandler struct {
	uc       *usecase.HistoryUsecase
	analyzer *usecase.AnalyzerUsecase
}

func NewHistoryHandler(uc *usecase.HistoryUsecase, analyzer *usecase.AnalyzerUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc, analyzer: analyzer}
}

func (h *HistoryHandler) RegisterRoutes(app fiber.Router) {
	g := app.Group("/history")
	g.Get("/", h.List)
	g.Get("/similar", h.Similar)
	g.Get("/:id", h.Get)
	g.Post("/:id/view", h.View)
	g.Delete("/", h.Clear)
}

func (h *HistoryHandler) List(c *fiber.Ctx) error {
	entries := h.uc.List()
	p := response.Paginate(c.QueryInt("page", 1), c.QueryInt("page_size", 20), len(entries))
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get history",
		Data:       dto.NewHistoryItemDTOs(entries[p.From:p.To]),
		Pagination: &p,
	})
}

func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	entry, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get history entry",
		Data:    entry,
	})
}

// View makes a stored analysis the analyzer's displayed result.
func (h *HistoryHandler) View(c *fiber.Ctx) error {
	view, err := h.analyzer.Show(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success show history entry",
		Data:    view,
	})
}

func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), c.QueryBool("confirm", false)); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success clear history",
	})
}

func (h *HistoryHandler) Similar(c *fiber.Ctx) error {
	entries, err := h.uc.Similar(c.UserContext(), c.Query("q"), c.QueryInt("limit", 5))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success search similar analyses",
		Data:    dto.NewHistoryItemDTOs(entries),
	})
}
