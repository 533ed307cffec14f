package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BidAnalysis is the structured result of one bid analysis request.
//
//	{
//	  "summary": {"projectName", "issuingEntity", "submissionDeadline", "bidType", "projectManager", "estimatedBudget"},
//	  "relevance": {"isRelevant", "relevanceScore", "reasoning", "relevantKeywordsFound", "scoreBreakdown", "strategicAlignment"},
//	  "clientCapabilitiesFit": {"primaryDomain", "offeringMatchDetails"},
//	  "lineItems": [{"name", "description", "quantity", "specifications"}],
//	  "requiredDocuments": ["string"],
//	  "flagsForHumanReview": [{"priority", "description"}]
//	}
type BidAnalysis struct {
	Summary               Summary               `json:"summary"`
	Relevance             Relevance             `json:"relevance"`
	ClientCapabilitiesFit ClientCapabilitiesFit `json:"clientCapabilitiesFit"`
	LineItems             []LineItem            `json:"lineItems"`
	RequiredDocuments     []string              `json:"requiredDocuments"`
	FlagsForHumanReview   []Flag                `json:"flagsForHumanReview"`
}

type Summary struct {
	ProjectName        string `json:"projectName"`
	IssuingEntity      string `json:"issuingEntity"`
	SubmissionDeadline string `json:"submissionDeadline"`
	BidType            string `json:"bidType"`
	ProjectManager     string `json:"projectManager"`
	EstimatedBudget    string `json:"estimatedBudget"`
}

type Relevance struct {
	IsRelevant            bool            `json:"isRelevant"`
	RelevanceScore        Score           `json:"relevanceScore"`
	Reasoning             string          `json:"reasoning"`
	RelevantKeywordsFound []string        `json:"relevantKeywordsFound"`
	ScoreBreakdown        *ScoreBreakdown `json:"scoreBreakdown"`
	StrategicAlignment    string          `json:"strategicAlignment"`
}

// ScoreBreakdown caps: keyword 40, domain 30, client 20, strategic 10.
type ScoreBreakdown struct {
	KeywordMatch   Score `json:"keywordMatch"`
	DomainFit      Score `json:"domainFit"`
	ClientMatch    Score `json:"clientMatch"`
	StrategicValue Score `json:"strategicValue"`
}

func (b ScoreBreakdown) Total() int {
	return int(b.KeywordMatch + b.DomainFit + b.ClientMatch + b.StrategicValue)
}

// Validate checks every sub-score against its cap and the total against 100.
func (b ScoreBreakdown) Validate() error {
	parts := []struct {
		name  string
		score Score
		limit Score
	}{
		{"keywordMatch", b.KeywordMatch, 40},
		{"domainFit", b.DomainFit, 30},
		{"clientMatch", b.ClientMatch, 20},
		{"strategicValue", b.StrategicValue, 10},
	}
	for _, p := range parts {
		if p.score < 0 || p.score > p.limit {
			return fmt.Errorf("scoreBreakdown.%s %d outside 0-%d", p.name, p.score, p.limit)
		}
	}
	if total := b.Total(); total > 100 {
		return fmt.Errorf("scoreBreakdown total %d above 100", total)
	}
	return nil
}

type Domain string

const (
	DomainSolar             Domain = "Solar"
	DomainICT               Domain = "ICT"
	DomainTelecomms         Domain = "Telecomms"
	DomainCivilConstruction Domain = "Civil Construction"
	DomainHealthcare        Domain = "Healthcare"
	DomainOther             Domain = "Other"
)

type ClientCapabilitiesFit struct {
	PrimaryDomain        Domain `json:"primaryDomain"`
	OfferingMatchDetails string `json:"offeringMatchDetails"`
}

type LineItem struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Quantity       Quantity `json:"quantity"`
	Specifications string   `json:"specifications"`
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Flag struct {
	Priority    Priority `json:"priority"`
	Description string   `json:"description"`
}

// Validate checks the value ranges the model is asked to respect.
func (a *BidAnalysis) Validate() error {
	if a.Relevance.RelevanceScore < 0 || a.Relevance.RelevanceScore > 100 {
		return fmt.Errorf("relevanceScore %d outside 0-100", a.Relevance.RelevanceScore)
	}
	if b := a.Relevance.ScoreBreakdown; b != nil {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	for i, f := range a.FlagsForHumanReview {
		if !f.Priority.Valid() {
			return fmt.Errorf("flagsForHumanReview[%d]: unknown priority %q", i, f.Priority)
		}
	}
	return nil
}

// Score is an integer score; the model sometimes emits fractional numbers.
type Score int

func (s *Score) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("score: %w", err)
	}
	*s = Score(math.Round(f))
	return nil
}

// Quantity holds either a number or free text such as "As needed".
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*q = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = Quantity(s)
	default:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("quantity: unexpected value %s", raw)
		}
		*q = Quantity(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}
