package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/prompt"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type OpenRouterService struct {
	cfg    config.OpenRouterConfig
	client *resty.Client
	log    *zap.Logger
}

func NewOpenRouterService(cfg config.OpenRouterConfig, log *zap.Logger) *OpenRouterService {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json")
	return &OpenRouterService{cfg: cfg, client: client, log: log}
}

func (s *OpenRouterService) Name() string {
	return config.ProviderOpenRouter
}

func (s *OpenRouterService) GenerateStructured(ctx context.Context, req GenerateRequest) (string, error) {
	if s.cfg.APIKey == "" {
		return "", &ConfigError{Message: "OPENROUTER_API_KEY environment variable not set"}
	}

	messages := []map[string]string{}
	if strings.TrimSpace(req.SystemInstruction) != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.SystemInstruction})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.Prompt})

	responseFormat := map[string]any{"type": "json_object"}
	if req.Schema != nil {
		responseFormat = map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "structured_output",
				"strict": false,
				"schema": prompt.ToJSONSchema(req.Schema),
			},
		}
	}

	s.log.Debug("openrouter generate", zap.String("model", s.cfg.Model), zap.Int("prompt_chars", len(req.Prompt)))
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(s.cfg.APIKey).
		SetBody(map[string]any{
			"model":           s.cfg.Model,
			"messages":        messages,
			"response_format": responseFormat,
			"temperature":     0.1,
		}).
		Post("/chat/completions")
	if err != nil {
		s.log.Error("openrouter request failed", zap.Error(err))
		return "", &APIError{Provider: s.Name(), Message: err.Error(), Err: err}
	}

	body := resp.String()
	if resp.IsError() {
		msg := gjson.Get(body, "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", &APIError{Provider: s.Name(), Message: fmt.Sprintf("status %d: %s", resp.StatusCode(), msg)}
	}

	// OpenRouter reports upstream provider failures with a 200 and an error object.
	if msg := gjson.Get(body, "error.message"); msg.Exists() {
		return "", &APIError{Provider: s.Name(), Message: msg.String()}
	}

	text := gjson.Get(body, "choices.0.message.content")
	if !text.Exists() {
		return "", &APIError{Provider: s.Name(), Message: "no choices in response"}
	}
	return strings.TrimSpace(text.String()), nil
}
