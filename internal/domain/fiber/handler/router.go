package handler

import (
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Usecases groups the four views served over HTTP.
type Usecases struct {
	Analyzer  *usecase.AnalyzerUsecase
	Monitor   *usecase.MonitorUsecase
	Checklist *usecase.ChecklistUsecase
	History   *usecase.HistoryUsecase
}

func RegisterRoutes(app fiber.Router, uc Usecases, log *zap.Logger) {
	NewAnalyzerHandler(uc.Analyzer, log).RegisterRoutes(app)
	NewMonitorHandler(uc.Monitor).RegisterRoutes(app)
	NewChecklistHandler(uc.Checklist).RegisterRoutes(app)
	NewHistoryHandler(uc.History, uc.Analyzer).RegisterRoutes(app)
}
