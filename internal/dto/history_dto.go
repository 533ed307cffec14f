package dto

import "github.com/fadilmartias/bid-analyzer/internal/model"

// HistoryItemDTO is the list row of the history view.
type HistoryItemDTO struct {
	ID             string       `json:"id"`
	Timestamp      string       `json:"timestamp"`
	Title          string       `json:"title"`
	IsRelevant     bool         `json:"isRelevant"`
	RelevanceScore int          `json:"relevanceScore"`
	PrimaryDomain  model.Domain `json:"primaryDomain"`
}

func NewHistoryItemDTO(h model.HistoricalAnalysis) HistoryItemDTO {
	return HistoryItemDTO{
		ID:             h.ID,
		Timestamp:      h.Timestamp,
		Title:          h.Title(),
		IsRelevant:     h.Analysis.Relevance.IsRelevant,
		RelevanceScore: int(h.Analysis.Relevance.RelevanceScore),
		PrimaryDomain:  h.Analysis.ClientCapabilitiesFit.PrimaryDomain,
	}
}

func NewHistoryItemDTOs(entries []model.HistoricalAnalysis) []HistoryItemDTO {
	out := make([]HistoryItemDTO, len(entries))
	for i, e := range entries {
		out[i] = NewHistoryItemDTO(e)
	}
	return out
}
