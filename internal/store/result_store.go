// Package store keeps the analysis history and the remembered tender keywords.
//
// Lifecycle: Load once at startup, then every mutating call writes the full
// value through to durable storage before the in-memory state changes.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HistoryKey  = "bidAnalysisHistory"
	KeywordsKey = "tenderMonitorKeywords"

	DefaultKeywords = "Solar, ICT, Huawei RAN"

	timestampLayout = "1/2/2006, 3:04:05 PM"
)

var (
	ErrConfirmationRequired = errors.New("clearing history requires explicit confirmation")
	ErrNotFound             = errors.New("history entry not found")
)

type ResultStore struct {
	repo repository.StorageRepository
	log  *zap.Logger
	now  func() time.Time

	mu      sync.RWMutex
	history []model.HistoricalAnalysis
}

func NewResultStore(repo repository.StorageRepository, log *zap.Logger) *ResultStore {
	return &ResultStore{repo: repo, log: log, now: time.Now}
}

// Load replaces the in-memory history with the persisted one. Any read or
// decode failure resets to an empty history; nothing is returned to the caller.
func (s *ResultStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = []model.HistoricalAnalysis{}
	raw, err := s.repo.Get(ctx, HistoryKey)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return
	}
	if err != nil {
		s.log.Warn("failed to read history, starting empty", zap.Error(err))
		return
	}
	var saved []model.HistoricalAnalysis
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.log.Warn("failed to parse history, starting empty", zap.Error(err))
		return
	}
	if saved != nil {
		s.history = saved
	}
	s.log.Info("history loaded", zap.Int("entries", len(s.history)))
}

// Append stores a new entry at the head of the history.
func (s *ResultStore) Append(ctx context.Context, analysis model.BidAnalysis) (model.HistoricalAnalysis, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return model.HistoricalAnalysis{}, fmt.Errorf("generate history id: %w", err)
	}
	entry := model.HistoricalAnalysis{
		ID:        id.String(),
		Timestamp: s.now().Format(timestampLayout),
		Analysis:  analysis,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]model.HistoricalAnalysis, 0, len(s.history)+1)
	updated = append(updated, entry)
	updated = append(updated, s.history...)
	if err := s.persist(ctx, updated); err != nil {
		return model.HistoricalAnalysis{}, err
	}
	s.history = updated
	return entry, nil
}

func (s *ResultStore) persist(ctx context.Context, history []model.HistoricalAnalysis) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.repo.Set(ctx, HistoryKey, string(raw)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Clear empties the history and removes the persisted key. confirmed must be true.
func (s *ResultStore) Clear(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Remove(ctx, HistoryKey); err != nil {
		return fmt.Errorf("remove history: %w", err)
	}
	s.history = []model.HistoricalAnalysis{}
	s.log.Info("history cleared")
	return nil
}

// History returns the entries newest first.
func (s *ResultStore) History() []model.HistoricalAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.HistoricalAnalysis, len(s.history))
	copy(out, s.history)
	return out
}

func (s *ResultStore) Get(id string) (model.HistoricalAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.history {
		if h.ID == id {
			return h, nil
		}
	}
	return model.HistoricalAnalysis{}, ErrNotFound
}

func (s *ResultStore) RememberKeywords(ctx context.Context, keywords string) error {
	if err := s.repo.Set(ctx, KeywordsKey, keywords); err != nil {
		return fmt.Errorf("save keywords: %w", err)
	}
	return nil
}

// RecallKeywords returns the last remembered keywords or DefaultKeywords.
func (s *ResultStore) RecallKeywords(ctx context.Context) string {
	kw, err := s.repo.Get(ctx, KeywordsKey)
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.log.Warn("failed to read keywords", zap.Error(err))
		}
		return DefaultKeywords
	}
	return kw
}
