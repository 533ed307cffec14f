package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/bid-analyzer/internal/model"
	"github.com/fadilmartias/bid-analyzer/internal/service"
	"github.com/fadilmartias/bid-analyzer/internal/store"
	"github.com/fadilmartias/bid-analyzer/internal/toggle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testTenders() []model.MonitoredTender {
	return []model.MonitoredTender{
		{Title: "Rural Solar Mini-Grids", IssuingEntity: "REA", Source: "The Herald", Keywords: []string{"Solar"}},
		{Title: "Campus WAN Upgrade", IssuingEntity: "UZ", Source: "PRAZ Portal", Keywords: []string{"ICT"}},
	}
}

func TestSearchRemembersKeywordsOnSuccess(t *testing.T) {
	st := &memStore{}
	uc := NewMonitorUsecase(&fakeGateway{tenders: testTenders()}, st, testOpts, zaptest.NewLogger(t))
	assert.Equal(t, store.DefaultKeywords, uc.Keywords(context.Background()))

	view, err := uc.Search(context.Background(), "Solar, ICT")
	require.NoError(t, err)
	assert.Len(t, view.Tenders, 2)
	assert.Equal(t, toggle.Source, view.State)
	assert.Equal(t, "Solar, ICT", uc.Keywords(context.Background()))
}

func TestSearchFailureKeepsKeywords(t *testing.T) {
	st := &memStore{keywords: "Huawei RAN"}
	uc := NewMonitorUsecase(&fakeGateway{err: &service.APIError{Provider: "fake", Message: "down"}}, st, testOpts, zaptest.NewLogger(t))

	_, err := uc.Search(context.Background(), "Solar")
	var apiErr *service.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Huawei RAN", uc.Keywords(context.Background()))
	assert.Nil(t, uc.Current().Tenders)
}

func TestSearchEmptyKeywords(t *testing.T) {
	gw := &fakeGateway{tenders: testTenders()}
	uc := NewMonitorUsecase(gw, &memStore{}, testOpts, zaptest.NewLogger(t))

	_, err := uc.Search(context.Background(), " ")
	assert.ErrorIs(t, err, service.ErrEmptyInput)
	assert.Zero(t, gw.callCount())
}

func TestMonitorTranslateToggle(t *testing.T) {
	gw := &fakeGateway{tenders: testTenders()}
	uc := NewMonitorUsecase(gw, &memStore{}, testOpts, zaptest.NewLogger(t))
	_, err := uc.Search(context.Background(), "Solar")
	require.NoError(t, err)

	view, err := uc.Translate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, toggle.Translated, view.State)
	assert.Equal(t, "RURAL SOLAR MINI-GRIDS", view.Tenders[0].Title)

	view, err = uc.Translate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testTenders(), view.Tenders)
}
