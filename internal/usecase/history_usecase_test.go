package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/bid-analyzer/internal/service"
	"github.com/fadilmartias/bid-analyzer/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestHistoryClear(t *testing.T) {
	st := &memStore{}
	idx := &fakeIndex{}
	uc := NewHistoryUsecase(st, idx, zaptest.NewLogger(t))
	_, err := st.Append(context.Background(), *testAnalysis())
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Clear(context.Background(), false), store.ErrConfirmationRequired)
	assert.Len(t, uc.List(), 1)
	assert.False(t, idx.cleared)

	require.NoError(t, uc.Clear(context.Background(), true))
	assert.Empty(t, uc.List())
	assert.True(t, idx.cleared)
}

func TestHistorySimilar(t *testing.T) {
	st := &memStore{}
	first, err := st.Append(context.Background(), *testAnalysis())
	require.NoError(t, err)
	second, err := st.Append(context.Background(), *testAnalysis())
	require.NoError(t, err)

	uc := NewHistoryUsecase(st, &fakeIndex{hits: []string{second.ID, "deleted", first.ID}}, zaptest.NewLogger(t))
	got, err := uc.Similar(context.Background(), "solar pumps", 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)

	_, err = uc.Similar(context.Background(), " ", 3)
	assert.ErrorIs(t, err, service.ErrEmptyInput)
}

func TestHistorySimilarWithoutIndex(t *testing.T) {
	uc := NewHistoryUsecase(&memStore{}, nil, zaptest.NewLogger(t))
	_, err := uc.Similar(context.Background(), "solar", 5)
	assert.ErrorIs(t, err, ErrIndexDisabled)
}
