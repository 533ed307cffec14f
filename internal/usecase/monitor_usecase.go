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

type TenderListView struct {
	Tenders []model.MonitoredTender `json:"tenders"`
	State   toggle.State            `json:"state"`
}

// MonitorUsecase backs the tender monitor view.
type MonitorUsecase struct {
	gateway service.ModelGatewayInterface
	store   HistoryStore
	opts    Options
	log     *zap.Logger

	busy    busyFlag
	display toggle.Toggle[[]model.MonitoredTender]
}

func NewMonitorUsecase(gateway service.ModelGatewayInterface, store HistoryStore, opts Options, log *zap.Logger) *MonitorUsecase {
	return &MonitorUsecase{gateway: gateway, store: store, opts: opts, log: log}
}

func (uc *MonitorUsecase) Keywords(ctx context.Context) string {
	return uc.store.RecallKeywords(ctx)
}

// Search asks the model for tenders and remembers the keywords once it succeeds.
func (uc *MonitorUsecase) Search(ctx context.Context, keywords string) (*TenderListView, error) {
	if strings.TrimSpace(keywords) == "" {
		return nil, fmt.Errorf("keywords: %w", service.ErrEmptyInput)
	}
	release, err := uc.busy.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	uc.display.Clear()

	callCtx, cancel := withTimeout(ctx, uc.opts.Timeout)
	defer cancel()
	tenders, err := uc.gateway.FindTenders(callCtx, keywords)
	if err != nil {
		uc.log.Warn("tender search failed", zap.Error(err))
		return nil, err
	}
	if err := uc.store.RememberKeywords(ctx, keywords); err != nil {
		uc.log.Warn("failed to remember keywords", zap.Error(err))
	}
	uc.display.Reset(tenders)
	return uc.Current(), nil
}

func (uc *MonitorUsecase) Current() *TenderListView {
	v, state, _ := uc.display.Current()
	return &TenderListView{Tenders: v, State: state}
}

func (uc *MonitorUsecase) Translate(ctx context.Context) (*TenderListView, error) {
	release, err := uc.busy.acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	callCtx, cancel := withTimeout(ctx, uc.opts.Timeout)
	defer cancel()
	_, _, err = uc.display.Flip(callCtx, func(ctx context.Context, v []model.MonitoredTender) ([]model.MonitoredTender, error) {
		return service.TranslateObject(ctx, uc.gateway, v, uc.opts.TargetLanguage)
	})
	if err != nil {
		uc.log.Warn("translation failed", zap.Error(err))
		return nil, err
	}
	return uc.Current(), nil
}
