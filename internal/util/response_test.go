package util

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/fadilmartias/bid-analyzer/internal/service"
	"github.com/fadilmartias/bid-analyzer/internal/store"
	"github.com/fadilmartias/bid-analyzer/internal/toggle"
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantKind   string
	}{
		{err: &service.ConfigError{Message: "no key"}, wantStatus: http.StatusServiceUnavailable, wantKind: "config_error"},
		{err: fmt.Errorf("analyze: %w", &service.APIError{Message: "quota"}), wantStatus: http.StatusBadGateway, wantKind: "api_error"},
		{err: &service.ParseError{Message: "truncated"}, wantStatus: http.StatusBadGateway, wantKind: "parse_error"},
		{err: fmt.Errorf("bid text: %w", service.ErrEmptyInput), wantStatus: http.StatusBadRequest, wantKind: "invalid_input"},
		{err: ErrUnsupportedDocument, wantStatus: http.StatusBadRequest, wantKind: "invalid_input"},
		{err: usecase.ErrBusy, wantStatus: http.StatusConflict, wantKind: "busy"},
		{err: toggle.ErrStale, wantStatus: http.StatusConflict, wantKind: "busy"},
		{err: store.ErrConfirmationRequired, wantStatus: http.StatusPreconditionRequired, wantKind: "confirmation_required"},
		{err: store.ErrNotFound, wantStatus: http.StatusNotFound, wantKind: "not_found"},
		{err: toggle.ErrEmpty, wantStatus: http.StatusNotFound, wantKind: "not_found"},
		{err: usecase.ErrSectionOutOfRange, wantStatus: http.StatusBadRequest, wantKind: "invalid_input"},
		{err: usecase.ErrIndexDisabled, wantStatus: http.StatusNotImplemented, wantKind: "not_configured"},
		{err: fmt.Errorf("disk full"), wantStatus: http.StatusInternalServerError, wantKind: "internal_error"},
	}
	for _, tt := range tests {
		status, kind := ClassifyError(tt.err)
		assert.Equal(t, tt.wantStatus, status, tt.err.Error())
		assert.Equal(t, tt.wantKind, kind, tt.err.Error())
	}
}
