package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/pgvector/pgvector-go"
)

type AnalysisIndexRepository interface {
	Upsert(ctx context.Context, entry *model.AnalysisEmbedding) error
	SearchSimilar(ctx context.Context, embedding pgvector.Vector, topK int) ([]string, error)
	DeleteAll(ctx context.Context) error
}

// AnalysisIndexService embeds history entries so similar past bids can be found.
type AnalysisIndexService struct {
	embedder Embedder
	repo     AnalysisIndexRepository
}

func NewAnalysisIndexService(embedder Embedder, repo AnalysisIndexRepository) *AnalysisIndexService {
	return &AnalysisIndexService{embedder: embedder, repo: repo}
}

func (s *AnalysisIndexService) Index(ctx context.Context, entry model.HistoricalAnalysis) error {
	emb, err := s.embedder.GenerateEmbedding(ctx, indexText(entry.Analysis))
	if err != nil {
		return fmt.Errorf("embed analysis %s: %w", entry.ID, err)
	}
	return s.repo.Upsert(ctx, &model.AnalysisEmbedding{
		HistoryID: entry.ID,
		Title:     entry.Title(),
		Embedding: pgvector.NewVector(emb),
		CreatedAt: time.Now(),
	})
}

func (s *AnalysisIndexService) Similar(ctx context.Context, text string, topK int) ([]string, error) {
	emb, err := s.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, err
	}
	return s.repo.SearchSimilar(ctx, pgvector.NewVector(emb), topK)
}

func (s *AnalysisIndexService) Clear(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// indexText flattens the parts of an analysis that describe what is being procured.
func indexText(a model.BidAnalysis) string {
	var b strings.Builder
	b.WriteString(a.Summary.ProjectName)
	b.WriteString("\n")
	b.WriteString(a.Summary.IssuingEntity)
	b.WriteString("\n")
	b.WriteString(string(a.ClientCapabilitiesFit.PrimaryDomain))
	b.WriteString("\n")
	b.WriteString(strings.Join(a.Relevance.RelevantKeywordsFound, ", "))
	for _, li := range a.LineItems {
		b.WriteString("\n")
		b.WriteString(li.Name)
		if li.Description != "" {
			b.WriteString(": ")
			b.WriteString(li.Description)
		}
	}
	return b.String()
}
