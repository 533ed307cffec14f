package model

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// AnalysisEmbedding indexes a history entry for similarity search.
type AnalysisEmbedding struct {
	HistoryID string          `gorm:"type:varchar(64);primaryKey" json:"history_id"`
	Title     string          `json:"title"`
	Embedding pgvector.Vector `gorm:"type:vector(3072)" json:"embedding"`
	CreatedAt time.Time       `json:"created_at"`
}

func (a *AnalysisEmbedding) TableName() string {
	return "analysis_embeddings"
}
