package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/service"
	"go.uber.org/zap"
)

var ErrIndexDisabled = errors.New("similarity search is not configured")

type HistoryUsecase struct {
	store HistoryStore
	index AnalysisIndex
	log   *zap.Logger
}

// NewHistoryUsecase wires the history view. index may be nil.
func NewHistoryUsecase(store HistoryStore, index AnalysisIndex, log *zap.Logger) *HistoryUsecase {
	return &HistoryUsecase{store: store, index: index, log: log}
}

func (uc *HistoryUsecase) List() []model.HistoricalAnalysis {
	return uc.store.History()
}

func (uc *HistoryUsecase) Get(id string) (model.HistoricalAnalysis, error) {
	return uc.store.Get(id)
}

func (uc *HistoryUsecase) Clear(ctx context.Context, confirmed bool) error {
	if err := uc.store.Clear(ctx, confirmed); err != nil {
		return err
	}
	if uc.index != nil {
		if err := uc.index.Clear(ctx); err != nil {
			uc.log.Warn("failed to clear analysis index", zap.Error(err))
		}
	}
	return nil
}

// Similar returns stored analyses closest to text, skipping index hits that
// are no longer in the history.
func (uc *HistoryUsecase) Similar(ctx context.Context, text string, topK int) ([]model.HistoricalAnalysis, error) {
	if uc.index == nil {
		return nil, ErrIndexDisabled
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("query: %w", service.ErrEmptyInput)
	}
	if topK <= 0 {
		topK = 5
	}
	ids, err := uc.index.Similar(ctx, text, topK)
	if err != nil {
		return nil, err
	}
	out := make([]model.HistoricalAnalysis, 0, len(ids))
	for _, id := range ids {
		entry, err := uc.store.Get(id)
		if err != nil {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}
