package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/store"
)

// fakeGateway answers from fixed values. When gate is set every call blocks
// until it is closed, after signalling on started.
type fakeGateway struct {
	mu sync.Mutex

	analysis  *model.BidAnalysis
	tenders   []model.MonitoredTender
	checklist model.Checklist
	err       error

	translateErr error
	translated   [][]byte

	gate    chan struct{}
	started chan struct{}
	calls   int
}

func (f *fakeGateway) enter(ctx context.Context) error {
	f.mu.Lock()
	f.calls++
	gate, started := f.gate, f.started
	f.mu.Unlock()
	if gate == nil {
		return nil
	}
	started <- struct{}{}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeGateway) AnalyzeBid(ctx context.Context, _ string) (*model.BidAnalysis, error) {
	if err := f.enter(ctx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	a := *f.analysis
	return &a, nil
}

func (f *fakeGateway) FindTenders(ctx context.Context, _ string) ([]model.MonitoredTender, error) {
	if err := f.enter(ctx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return append([]model.MonitoredTender(nil), f.tenders...), nil
}

func (f *fakeGateway) GenerateChecklist(ctx context.Context, _ string) (model.Checklist, error) {
	if err := f.enter(ctx); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.checklist.WithoutUserNotes(), nil
}

// TranslateJSON upper-cases every string value, keeping structure.
func (f *fakeGateway) TranslateJSON(ctx context.Context, raw []byte, _ string) ([]byte, error) {
	if err := f.enter(ctx); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.translated = append(f.translated, append([]byte(nil), raw...))
	f.mu.Unlock()
	if f.translateErr != nil {
		return nil, f.translateErr
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return json.Marshal(upperStrings(v))
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func upperStrings(v any) any {
	switch t := v.(type) {
	case string:
		return strings.ToUpper(t)
	case []any:
		for i := range t {
			t[i] = upperStrings(t[i])
		}
	case map[string]any:
		for k := range t {
			t[k] = upperStrings(t[k])
		}
	}
	return v
}

type memStore struct {
	mu       sync.Mutex
	history  []model.HistoricalAnalysis
	keywords string
	next     int
}

func (m *memStore) Append(_ context.Context, a model.BidAnalysis) (model.HistoricalAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	entry := model.HistoricalAnalysis{ID: fmt.Sprintf("id-%d", m.next), Timestamp: "1/2/2025, 3:04:05 PM", Analysis: a}
	m.history = append([]model.HistoricalAnalysis{entry}, m.history...)
	return entry, nil
}

func (m *memStore) History() []model.HistoricalAnalysis {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.HistoricalAnalysis{}, m.history...)
}

func (m *memStore) Get(id string) (model.HistoricalAnalysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.history {
		if h.ID == id {
			return h, nil
		}
	}
	return model.HistoricalAnalysis{}, store.ErrNotFound
}

func (m *memStore) Clear(_ context.Context, confirmed bool) error {
	if !confirmed {
		return store.ErrConfirmationRequired
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.history = nil
	return nil
}

func (m *memStore) RememberKeywords(_ context.Context, kw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keywords = kw
	return nil
}

func (m *memStore) RecallKeywords(context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keywords == "" {
		return store.DefaultKeywords
	}
	return m.keywords
}

type fakeIndex struct {
	mu      sync.Mutex
	indexed []string
	hits    []string
	err     error
	cleared bool
}

func (f *fakeIndex) Index(_ context.Context, e model.HistoricalAnalysis) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexed = append(f.indexed, e.ID)
	return f.err
}

func (f *fakeIndex) Similar(context.Context, string, int) ([]string, error) {
	return f.hits, f.err
}

func (f *fakeIndex) Clear(context.Context) error {
	f.cleared = true
	return f.err
}

func testAnalysis() *model.BidAnalysis {
	return &model.BidAnalysis{
		Summary:               model.Summary{ProjectName: "Solar Boreholes", IssuingEntity: "ZINWA"},
		Relevance:             model.Relevance{IsRelevant: true, RelevanceScore: 74, Reasoning: "pumping"},
		ClientCapabilitiesFit: model.ClientCapabilitiesFit{PrimaryDomain: model.DomainSolar},
		LineItems:             []model.LineItem{{Name: "Solar pump", Quantity: "12"}},
		RequiredDocuments:     []string{"Tax clearance"},
		FlagsForHumanReview:   []model.Flag{{Priority: model.PriorityLow, Description: "check"}},
	}
}
