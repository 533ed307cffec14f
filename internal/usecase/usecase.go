package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/model"
)

// ErrBusy is returned when a view already has a model call in flight.
var ErrBusy = errors.New("a request for this view is already in progress")

// busyFlag allows one in-flight operation per view.
type busyFlag struct {
	busy atomic.Bool
}

func (f *busyFlag) acquire() (release func(), err error) {
	if !f.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	return func() { f.busy.Store(false) }, nil
}

func (f *busyFlag) Busy() bool {
	return f.busy.Load()
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// HistoryStore is the part of the result store the views use.
type HistoryStore interface {
	Append(ctx context.Context, analysis model.BidAnalysis) (model.HistoricalAnalysis, error)
	History() []model.HistoricalAnalysis
	Get(id string) (model.HistoricalAnalysis, error)
	Clear(ctx context.Context, confirmed bool) error
	RememberKeywords(ctx context.Context, keywords string) error
	RecallKeywords(ctx context.Context) string
}

// AnalysisIndex is the optional similarity index over history entries.
type AnalysisIndex interface {
	Index(ctx context.Context, entry model.HistoricalAnalysis) error
	Similar(ctx context.Context, text string, topK int) ([]string, error)
	Clear(ctx context.Context) error
}

// Options shared by every view.
type Options struct {
	TargetLanguage string
	Timeout        time.Duration
}
