package service

import (
	"context"
	"sync"
)

const validAnalysisJSON = `{
  "summary": {
    "projectName": "Supply of Solar Street Lights",
    "issuingEntity": "City of Harare",
    "submissionDeadline": "2025-03-14",
    "bidType": "Open Domestic Tender",
    "projectManager": "N/A",
    "estimatedBudget": "USD 250,000"
  },
  "relevance": {
    "isRelevant": true,
    "relevanceScore": 82,
    "reasoning": "Core solar lighting scope.",
    "relevantKeywordsFound": ["Solar", "LED"],
    "scoreBreakdown": {"keywordMatch": 35, "domainFit": 27, "clientMatch": 12, "strategicValue": 8},
    "strategicAlignment": "Municipal reference project."
  },
  "clientCapabilitiesFit": {
    "primaryDomain": "Solar",
    "offeringMatchDetails": "Matches the solar street lighting range."
  },
  "lineItems": [
    {"name": "Solar street light", "description": "60W all-in-one", "quantity": 120, "specifications": "IP65"}
  ],
  "requiredDocuments": ["Tax clearance", "PRAZ registration"],
  "flagsForHumanReview": [
    {"priority": "High", "description": "Bid bond of 2% required."}
  ]
}`

// fakeGenerator returns canned replies in order and records every request.
type fakeGenerator struct {
	mu       sync.Mutex
	replies  []string
	err      error
	requests []GenerateRequest
}

func (f *fakeGenerator) Name() string { return "fake" }

func (f *fakeGenerator) GenerateStructured(_ context.Context, req GenerateRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", &APIError{Provider: "fake", Message: "no reply queued"}
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
