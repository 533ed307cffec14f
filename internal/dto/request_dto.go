package dto

type AnalyzeRequest struct {
	BidText string `json:"bidText"`
}

type TenderSearchRequest struct {
	Keywords string `json:"keywords"`
}

type ChecklistRequest struct {
	TenderType string `json:"tenderType"`
}

type ChecklistNoteRequest struct {
	Note string `json:"note"`
}
