package handler

import (
	"errors"
	"io"
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/dto"
	"github.com/fadilmartias/bid-analyzer/internal/middleware"
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"github.com/fadilmartias/bid-analyzer/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxUploadSize = 5 * 1024 * 1024

type AnalyzerHandler struct {
	uc  *usecase.AnalyzerUsecase
	log *zap.Logger
}

func NewAnalyzerHandler(uc *usecase.AnalyzerUsecase, log *zap.Logger) *AnalyzerHandler {
	return &AnalyzerHandler{uc: uc, log: log}
}

func (h *AnalyzerHandler) RegisterRoutes(app fiber.Router) {
	g := app.Group("/analyze")
	g.Get("/", h.Current)
	g.Post("/", middleware.RateLimiter(10, time.Minute), h.Analyze)
	g.Post("/upload", middleware.RateLimiter(10, time.Minute), h.Upload)
	g.Post("/translate", middleware.RateLimiter(20, time.Minute), h.Translate)
}

func (h *AnalyzerHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	return h.analyze(c, req.BidText)
}

func (h *AnalyzerHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("document")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "document file is required",
		}, err)
	}
	if file.Size > maxUploadSize {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusRequestEntityTooLarge,
			Message: "document file size is too large (max 5MB)",
		})
	}

	f, err := file.Open()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot read document"}, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{Message: "cannot read document"}, err)
	}

	text, err := util.ExtractDocumentText(file.Filename, data, h.log)
	if err != nil {
		code := fiber.StatusUnprocessableEntity
		if errors.Is(err, util.ErrUnsupportedDocument) {
			code = fiber.StatusBadRequest
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: "failed to extract document text",
		}, err)
	}
	return h.analyze(c, text)
}

func (h *AnalyzerHandler) analyze(c *fiber.Ctx, bidText string) error {
	view, entry, err := h.uc.Analyze(c.UserContext(), bidText)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success analyze bid",
		Data:    view,
		Meta:    fiber.Map{"historyId": entry.ID, "timestamp": entry.Timestamp},
	})
}

func (h *AnalyzerHandler) Current(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get current analysis",
		Data:    h.uc.Current(),
	})
}

func (h *AnalyzerHandler) Translate(c *fiber.Ctx) error {
	view, err := h.uc.Translate(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success toggle analysis language",
		Data:    view,
	})
}
