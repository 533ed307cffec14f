package repository

import (
	"context"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnalysisIndexRepository struct {
	db *gorm.DB
}

func NewAnalysisIndexRepository(db *gorm.DB) *AnalysisIndexRepository {
	return &AnalysisIndexRepository{db}
}

func (r *AnalysisIndexRepository) Upsert(ctx context.Context, entry *model.AnalysisEmbedding) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(entry).Error
}

// SearchSimilar returns history ids ordered by embedding distance.
func (r *AnalysisIndexRepository) SearchSimilar(ctx context.Context, embedding pgvector.Vector, topK int) ([]string, error) {
	var ids []string

	err := r.db.WithContext(ctx).Raw(`
        SELECT history_id
        FROM analysis_embeddings
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, topK).Scan(&ids).Error

	return ids, err
}

func (r *AnalysisIndexRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.AnalysisEmbedding{}).Error
}
