package model

// HistoricalAnalysis is one stored analysis. ID is a UUIDv7, so it sorts by creation time.
type HistoricalAnalysis struct {
	ID        string      `json:"id"`
	Timestamp string      `json:"timestamp"`
	Analysis  BidAnalysis `json:"analysis"`
}

func (h HistoricalAnalysis) Title() string {
	if h.Analysis.Summary.ProjectName == "" {
		return "Untitled Analysis"
	}
	return h.Analysis.Summary.ProjectName
}
