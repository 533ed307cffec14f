package service

import (
	"fmt"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"go.uber.org/zap"
)

// NewStructuredGenerator picks the backend named by MODEL_PROVIDER.
func NewStructuredGenerator(provider string, log *zap.Logger) (StructuredGenerator, error) {
	switch provider {
	case config.ProviderGemini, "":
		return NewGeminiService(*config.LoadGeminiConfig(), log), nil
	case config.ProviderOpenRouter:
		return NewOpenRouterService(*config.LoadOpenRouterConfig(), log), nil
	case config.ProviderOpenAI:
		return NewOpenAIService(*config.LoadOpenAIConfig(), log), nil
	default:
		return nil, fmt.Errorf("unknown MODEL_PROVIDER %q", provider)
	}
}
