package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/service"
	"github.com/fadilmartias/bid-analyzer/internal/toggle"
	"go.uber.org/zap"
)

type AnalysisView struct {
	Analysis *model.BidAnalysis `json:"analysis"`
	State    toggle.State       `json:"state"`
}

// AnalyzerUsecase backs the analyzer view: analyze a bid, show it, translate it.
type AnalyzerUsecase struct {
	gateway service.ModelGatewayInterface
	store   HistoryStore
	index   AnalysisIndex
	opts    Options
	log     *zap.Logger

	busy    busyFlag
	display toggle.Toggle[model.BidAnalysis]
}

// NewAnalyzerUsecase wires the analyzer view. index may be nil.
func NewAnalyzerUsecase(gateway service.ModelGatewayInterface, store HistoryStore, index AnalysisIndex, opts Options, log *zap.Logger) *AnalyzerUsecase {
	return &AnalyzerUsecase{gateway: gateway, store: store, index: index, opts: opts, log: log}
}

// Analyze runs one analysis. The history is only written after a fully parsed reply.
func (uc *AnalyzerUsecase) Analyze(ctx context.Context, bidText string) (*AnalysisView, *model.HistoricalAnalysis, error) {
	if strings.TrimSpace(bidText) == "" {
		return nil, nil, fmt.Errorf("bid text: %w", service.ErrEmptyInput)
	}
	release, err := uc.busy.acquire()
	if err != nil {
		return nil, nil, err
	}
	defer release()

	uc.display.Clear()

	callCtx, cancel := withTimeout(ctx, uc.opts.Timeout)
	defer cancel()
	analysis, err := uc.gateway.AnalyzeBid(callCtx, bidText)
	if err != nil {
		uc.log.Warn("analysis failed", zap.Error(err))
		return nil, nil, err
	}

	entry, err := uc.store.Append(ctx, *analysis)
	if err != nil {
		return nil, nil, err
	}
	uc.display.Reset(*analysis)

	if uc.index != nil {
		if err := uc.index.Index(ctx, entry); err != nil {
			uc.log.Warn("failed to index analysis", zap.String("id", entry.ID), zap.Error(err))
		}
	}

	return uc.Current(), &entry, nil
}

// Show displays a stored history entry in the analyzer view.
func (uc *AnalyzerUsecase) Show(id string) (*AnalysisView, error) {
	release, err := uc.busy.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	entry, err := uc.store.Get(id)
	if err != nil {
		return nil, err
	}
	uc.display.Reset(entry.Analysis)
	return uc.Current(), nil
}

// Current returns the displayed analysis, or a view with a nil analysis.
func (uc *AnalyzerUsecase) Current() *AnalysisView {
	v, state, ok := uc.display.Current()
	if !ok {
		return &AnalysisView{State: state}
	}
	return &AnalysisView{Analysis: &v, State: state}
}

// Translate switches between the source analysis and its translation.
func (uc *AnalyzerUsecase) Translate(ctx context.Context) (*AnalysisView, error) {
	release, err := uc.busy.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := withTimeout(ctx, uc.opts.Timeout)
	defer cancel()
	_, _, err = uc.display.Flip(callCtx, func(ctx context.Context, v model.BidAnalysis) (model.BidAnalysis, error) {
		return service.TranslateObject(ctx, uc.gateway, v, uc.opts.TargetLanguage)
	})
	if err != nil {
		uc.log.Warn("translation failed", zap.Error(err))
		return nil, err
	}
	return uc.Current(), nil
}

func (uc *AnalyzerUsecase) Busy() bool {
	return uc.busy.Busy()
}
