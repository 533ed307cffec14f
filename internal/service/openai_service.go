package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/prompt"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
)

// OpenAIService talks to OpenAI or an Azure OpenAI deployment. The schema is
// carried inside the system message since JSON mode does not take one.
type OpenAIService struct {
	cfg    config.OpenAIConfig
	client *openai.Client
	log    *zap.Logger
}

func NewOpenAIService(cfg config.OpenAIConfig, log *zap.Logger) *OpenAIService {
	s := &OpenAIService{cfg: cfg, log: log}
	if cfg.APIKey == "" {
		return s
	}
	switch cfg.Provider {
	case "azure":
		s.client = openai.NewClient(
			azure.WithEndpoint(cfg.Endpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
			option.WithMaxRetries(0),
		)
	default:
		s.client = openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.Endpoint),
			option.WithMaxRetries(0),
		)
	}
	return s
}

func (s *OpenAIService) Name() string {
	return config.ProviderOpenAI
}

func (s *OpenAIService) GenerateStructured(ctx context.Context, req GenerateRequest) (string, error) {
	if s.client == nil {
		return "", &ConfigError{Message: "OPENAI_API_KEY environment variable not set"}
	}

	system := strings.TrimSpace(req.SystemInstruction)
	if req.Schema != nil {
		schema, err := json.Marshal(prompt.ToJSONSchema(req.Schema))
		if err != nil {
			return "", fmt.Errorf("encode schema: %w", err)
		}
		system += "\n\nRespond only with JSON matching this JSON Schema:\n" + string(schema)
	} else {
		system += "\n\nRespond only with JSON."
	}

	s.log.Debug("openai generate", zap.String("model", s.cfg.Model), zap.Int("prompt_chars", len(req.Prompt)))
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.F(s.cfg.Model),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(strings.TrimSpace(system)),
			openai.UserMessage(req.Prompt),
		}),
		Temperature: openai.F(0.1),
	})
	if err != nil {
		s.log.Error("openai request failed", zap.Error(err))
		return "", &APIError{Provider: s.Name(), Message: err.Error(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &APIError{Provider: s.Name(), Message: "no choices in response"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
