package util

import (
	"errors"
	"runtime/debug"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/response"
	"github.com/fadilmartias/bid-analyzer/internal/service"
	"github.com/fadilmartias/bid-analyzer/internal/store"
	"github.com/fadilmartias/bid-analyzer/internal/toggle"
	"github.com/fadilmartias/bid-analyzer/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type OrderedSuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Kind       string `json:"kind,omitempty"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse sends the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(OrderedSuccessResponse{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	})
}

// ErrorResponse sends the standard error envelope. When Code is zero the
// status and kind are derived from err.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	var err error
	if len(errs) > 0 {
		err = errs[0]
	}
	status, kind := ClassifyError(err)
	if params.Code != 0 {
		status = params.Code
	}

	resp := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
		Kind:    kind,
		Details: params.Details,
	}
	if err != nil && resp.Message == "" {
		resp.Message = err.Error()
	}
	if !config.LoadAppConfig().IsProduction() {
		if err != nil {
			resp.DevMessage = err.Error()
			if status >= fiber.StatusInternalServerError {
				resp.Trace = string(debug.Stack())
			}
		}
		if params.DevMessage != "" {
			resp.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			resp.Trace = params.Trace
		}
	}
	return c.Status(status).JSON(resp)
}

// ClassifyError maps domain errors to an HTTP status and a short kind label.
func ClassifyError(err error) (int, string) {
	var (
		cfgErr   *service.ConfigError
		apiErr   *service.APIError
		parseErr *service.ParseError
	)
	switch {
	case err == nil:
		return fiber.StatusInternalServerError, ""
	case errors.As(err, &cfgErr):
		return fiber.StatusServiceUnavailable, "config_error"
	case errors.As(err, &apiErr):
		return fiber.StatusBadGateway, "api_error"
	case errors.As(err, &parseErr):
		return fiber.StatusBadGateway, "parse_error"
	case errors.Is(err, service.ErrEmptyInput), errors.Is(err, ErrUnsupportedDocument):
		return fiber.StatusBadRequest, "invalid_input"
	case errors.Is(err, usecase.ErrBusy), errors.Is(err, toggle.ErrStale):
		return fiber.StatusConflict, "busy"
	case errors.Is(err, store.ErrConfirmationRequired):
		return fiber.StatusPreconditionRequired, "confirmation_required"
	case errors.Is(err, store.ErrNotFound), errors.Is(err, toggle.ErrEmpty):
		return fiber.StatusNotFound, "not_found"
	case errors.Is(err, usecase.ErrSectionOutOfRange):
		return fiber.StatusBadRequest, "invalid_input"
	case errors.Is(err, usecase.ErrIndexDisabled):
		return fiber.StatusNotImplemented, "not_configured"
	}
	return fiber.StatusInternalServerError, "internal_error"
}
